package audit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pauloryan091/agmais/internal/dbtest"
	"github.com/pauloryan091/agmais/internal/logging"
	"github.com/pauloryan091/agmais/internal/models"
)

func TestDispatcherWritesOnClose(t *testing.T) {
	conn, db := dbtest.Conn(t)
	d := NewDispatcher(New(conn), logging.Discard())

	id := uint(9)
	d.Dispatch(Event{
		OwnerID:  3,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &id,
		Metadata: map[string]string{"status": "pending"},
	})
	d.Close()

	var rows []models.AuditLog
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, uint(3), rows[0].OwnerUserID)
	assert.Equal(t, "appointment_created", rows[0].Action)
	assert.JSONEq(t, `{"status":"pending"}`, rows[0].Metadata)
}

func TestDispatchAfterCloseIsDropped(t *testing.T) {
	conn, db := dbtest.Conn(t)
	d := NewDispatcher(New(conn), logging.Discard())
	d.Close()
	d.Close()

	d.Dispatch(Event{OwnerID: 1, Action: "late"})

	var n int64
	require.NoError(t, db.Model(&models.AuditLog{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestListIsOwnerScopedAndPaged(t *testing.T) {
	conn, _ := dbtest.Conn(t)
	l := New(conn)
	ctx := t.Context()

	for i := 0; i < 3; i++ {
		require.NoError(t, l.Log(ctx, 1, "appointment_created", "appointment", nil, nil))
	}
	require.NoError(t, l.Log(ctx, 1, "appointment_deleted", "appointment", nil, nil))
	require.NoError(t, l.Log(ctx, 2, "appointment_created", "appointment", nil, nil))

	logs, total, err := l.List(ctx, 1, Filter{Action: "appointment_created", Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, logs, 2)

	logs, total, err = l.List(ctx, 2, Filter{Page: 1, Limit: 50})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, logs, 1)
}
