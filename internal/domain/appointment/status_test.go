package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pauloryan091/agmais/internal/dto"
	"github.com/pauloryan091/agmais/internal/httperr"
	"github.com/pauloryan091/agmais/internal/models"
)

func TestParseStatus(t *testing.T) {
	cases := map[string]Status{
		"pending":     StatusPending,
		" Confirmed ": StatusConfirmed,
		"done":        StatusDone,
		"canceled":    StatusCanceled,
		"pendente":    StatusPending,
		"confirmado":  StatusConfirmed,
		"realizado":   StatusDone,
		"CANCELADO":   StatusCanceled,
	}
	for raw, want := range cases {
		got, err := ParseStatus(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}
}

func TestParseStatusRejects(t *testing.T) {
	for _, raw := range []string{"archived", "cancelled", ""} {
		_, err := ParseStatus(raw)
		assert.True(t, httperr.Is(err, httperr.KindValidation), raw)
	}
}

func TestEveryTransitionAllowed(t *testing.T) {
	for _, from := range Statuses {
		for _, to := range Statuses {
			ap := &models.Appointment{Status: string(from)}
			require.NoError(t, SetStatus(ap, to))
			assert.Equal(t, string(to), ap.Status)
		}
	}
}

func TestSetStatusInvalidLeavesRow(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusPending)}
	assert.Error(t, SetStatus(ap, Status("archived")))
	assert.Equal(t, string(StatusPending), ap.Status)
}

func TestNormalizeDateTime(t *testing.T) {
	d, err := NormalizeDate(" 2025-01-10 ")
	require.NoError(t, err)
	assert.Equal(t, "2025-01-10", d)

	_, err = NormalizeDate("10/01/2025")
	assert.True(t, httperr.Is(err, httperr.KindValidation))

	tm, err := NormalizeTime("09:30:00")
	require.NoError(t, err)
	assert.Equal(t, "09:30", tm)

	_, err = NormalizeTime("25:00")
	assert.Error(t, err)
}

func TestSnapshotOfDanglingView(t *testing.T) {
	service := "Haircut"
	v := &dto.AppointmentView{ID: 3, Date: "2025-01-10", Time: "10:00", Status: "pending", ServiceName: &service}

	s := SnapshotOf(v)
	assert.Equal(t, "", s.ClientName)
	assert.Equal(t, "", s.ClientEmail)
	assert.Equal(t, "Haircut", s.ServiceName)
	assert.Equal(t, StatusPending, s.Status)
}
