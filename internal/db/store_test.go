package db

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pauloryan091/agmais/internal/config"
	"github.com/pauloryan091/agmais/internal/httperr"
	"github.com/pauloryan091/agmais/internal/logging"
	"github.com/pauloryan091/agmais/internal/models"
)

func fileConfig(t *testing.T) *config.Config {
	cfg := config.Default()
	cfg.DBPath = filepath.Join(t.TempDir(), "agenda.db")
	return cfg
}

func TestStoreUnavailableWhenFileMissing(t *testing.T) {
	store := NewStore(fileConfig(t), logging.Discard())
	defer store.Close()

	ok, err := store.Bootstrap(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = store.Session(context.Background())
	assert.True(t, httperr.Is(err, httperr.KindStoreUnavailable))
}

func TestBootstrapCreatesAndSeeds(t *testing.T) {
	cfg := fileConfig(t)
	cfg.CreateIfMissing = true

	store := NewStore(cfg, logging.Discard())
	defer store.Close()

	ok, err := store.Bootstrap(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Greater(t, store.FileSize(), int64(0))

	db, err := store.Session(context.Background())
	require.NoError(t, err)

	var admin models.User
	require.NoError(t, db.Where("email = ?", DefaultAdminEmail).First(&admin).Error)
	assert.NotEqual(t, DefaultAdminPassword, admin.Password)

	report, err := Inspect(db)
	require.NoError(t, err)
	assert.Contains(t, report.Tables, "appointments")
	assert.Equal(t, int64(1), report.Counts["users"])
}

func TestStoreDegradesWhenFileRemoved(t *testing.T) {
	cfg := fileConfig(t)
	cfg.CreateIfMissing = true

	store := NewStore(cfg, logging.Discard())
	defer store.Close()

	_, err := store.Bootstrap(context.Background())
	require.NoError(t, err)

	require.NoError(t, os.Remove(cfg.DBPath))

	_, err = store.Session(context.Background())
	assert.True(t, httperr.Is(err, httperr.KindStoreUnavailable))
	assert.False(t, store.Exists())
}

func TestSeedAdminIsIdempotent(t *testing.T) {
	cfg := config.Default()
	cfg.DBPath = ":memory:"

	db, err := Open(cfg, logging.Discard())
	require.NoError(t, err)

	created, err := SeedAdmin(db, "Admin", "admin@x.com", "pw")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = SeedAdmin(db, "Admin", "admin@x.com", "pw")
	require.NoError(t, err)
	assert.False(t, created)
}
