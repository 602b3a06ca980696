package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pauloryan091/agmais/internal/dbtest"
	"github.com/pauloryan091/agmais/internal/httperr"
	"github.com/pauloryan091/agmais/internal/infra/repository"
	"github.com/pauloryan091/agmais/internal/models"
)

func TestClientLifecycle(t *testing.T) {
	conn, _ := dbtest.Conn(t)
	uc := NewClients(repository.NewClientGormRepository(conn), nil)
	ctx := t.Context()

	_, err := uc.Create(ctx, 1, &models.Client{Name: "  "})
	assert.True(t, httperr.HasCode(err, "name_required"))

	bob, err := uc.Create(ctx, 1, &models.Client{Name: " Bob ", Email: "bob@x.com", Phone: "6199"})
	require.NoError(t, err)
	assert.Equal(t, "Bob", bob.Name)
	assert.Equal(t, uint(1), bob.OwnerUserID)

	_, err = uc.Create(ctx, 1, &models.Client{Name: "Alice"})
	require.NoError(t, err)

	list, err := uc.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Alice", list[0].Name)

	updated, err := uc.Update(ctx, 1, bob.ID, &models.Client{Name: "Robert"})
	require.NoError(t, err)
	assert.Equal(t, "Robert", updated.Name)
	assert.Empty(t, updated.Email)
	assert.Empty(t, updated.Phone)

	require.NoError(t, uc.Delete(ctx, 1, bob.ID))
	_, err = uc.Get(ctx, 1, bob.ID)
	assert.True(t, httperr.Is(err, httperr.KindNotFound))
}

func TestServiceIsOwnerScoped(t *testing.T) {
	conn, _ := dbtest.Conn(t)
	uc := NewServices(repository.NewServiceGormRepository(conn), nil)
	ctx := t.Context()

	cut, err := uc.Create(ctx, 1, &models.Service{Name: "Haircut", Description: "30 min"})
	require.NoError(t, err)

	_, err = uc.Get(ctx, 2, cut.ID)
	assert.True(t, httperr.Is(err, httperr.KindNotFound))

	_, err = uc.Update(ctx, 2, cut.ID, &models.Service{Name: "Stolen"})
	assert.True(t, httperr.Is(err, httperr.KindNotFound))

	err = uc.Delete(ctx, 2, cut.ID)
	assert.True(t, httperr.Is(err, httperr.KindNotFound))

	own, err := uc.Get(ctx, 1, cut.ID)
	require.NoError(t, err)
	assert.Equal(t, "Haircut", own.Name)

	other, err := uc.List(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, other)
}
