package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/pauloryan091/agmais/internal/config"
	"github.com/pauloryan091/agmais/internal/httperr"
)

var ErrMissingFile = errors.New("database file not found")

// Store owns the process-wide connection. For the sqlite driver the file
// is checked on every call: while it is absent every session request fails
// with a store-unavailable error, and the connection is reopened once the
// file comes back.
type Store struct {
	cfg *config.Config
	log logrus.FieldLogger

	mu sync.Mutex
	db *gorm.DB
}

func NewStore(cfg *config.Config, log logrus.FieldLogger) *Store {
	return &Store{cfg: cfg, log: log}
}

// Exists reports whether the backing store is present.
func (s *Store) Exists() bool {
	if s.cfg.DBDriver != "sqlite" || isMemoryPath(s.cfg.DBPath) {
		return true
	}
	_, err := os.Stat(s.cfg.DBPath)
	return err == nil
}

func (s *Store) Session(ctx context.Context) (*gorm.DB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.Exists() {
		s.closeLocked()
		return nil, httperr.ErrStoreUnavailable(fmt.Errorf("%w: %s", ErrMissingFile, s.cfg.DBPath))
	}

	if s.db == nil {
		db, err := Open(s.cfg, s.log)
		if err != nil {
			return nil, httperr.ErrStoreUnavailable(err)
		}
		s.db = db
		s.log.WithField("driver", s.cfg.DBDriver).Info("database opened")
	}

	return s.db.WithContext(ctx), nil
}

// SQL exposes the pool for health checks.
func (s *Store) SQL(ctx context.Context) (*sql.DB, error) {
	db, err := s.Session(ctx)
	if err != nil {
		return nil, err
	}
	return db.DB()
}

func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closeLocked()
}

func (s *Store) closeLocked() error {
	if s.db == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	s.db = nil
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// FileSize returns the sqlite file size in bytes, or -1 when unknown.
func (s *Store) FileSize() int64 {
	if s.cfg.DBDriver != "sqlite" || isMemoryPath(s.cfg.DBPath) {
		return -1
	}
	info, err := os.Stat(s.cfg.DBPath)
	if err != nil {
		return -1
	}
	return info.Size()
}

func isMemoryPath(path string) bool {
	return path == ":memory:" || strings.HasPrefix(path, "file::memory:")
}
