package db

import (
	"context"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"github.com/sirupsen/logrus"

	"github.com/pauloryan091/agmais/internal/config"
	"github.com/pauloryan091/agmais/internal/logging"
	"github.com/pauloryan091/agmais/internal/models"
)

// Conn hands out a request-scoped gorm session. Repositories depend on it
// instead of a raw *gorm.DB so an absent store surfaces as an error.
type Conn interface {
	Session(ctx context.Context) (*gorm.DB, error)
}

type staticConn struct {
	db *gorm.DB
}

// Static wraps an already opened database.
func Static(db *gorm.DB) Conn {
	return staticConn{db: db}
}

func (s staticConn) Session(ctx context.Context) (*gorm.DB, error) {
	return s.db.WithContext(ctx), nil
}

// Open connects with the configured driver and migrates the schema.
func Open(cfg *config.Config, log logrus.FieldLogger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dialector = postgres.Open(cfg.DBUrl)
	default:
		dialector = sqlite.Open(cfg.DBPath)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
		Logger:         logging.NewGormLogger(log),

		// appointments keep dangling client/service ids
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	if cfg.DBDriver == "sqlite" {
		// one writer; also keeps ":memory:" databases shared
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
		sqlDB.SetConnMaxIdleTime(10 * time.Minute)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}
