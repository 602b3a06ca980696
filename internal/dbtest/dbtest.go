// Package dbtest opens throwaway in-memory stores for tests.
package dbtest

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/pauloryan091/agmais/internal/config"
	dbpkg "github.com/pauloryan091/agmais/internal/db"
	"github.com/pauloryan091/agmais/internal/logging"
)

// New returns a migrated private sqlite database closed with the test.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	cfg := config.Default()
	cfg.DBPath = ":memory:"

	db, err := dbpkg.Open(cfg, logging.Discard())
	require.NoError(t, err)

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// Conn is New wrapped for repositories.
func Conn(t testing.TB) (dbpkg.Conn, *gorm.DB) {
	db := New(t)
	return dbpkg.Static(db), db
}
