package db

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/pauloryan091/agmais/internal/models"
)

const (
	DefaultAdminName     = "Administrador"
	DefaultAdminEmail    = "admin@exemplo.com"
	DefaultAdminPassword = "123456"
)

// Bootstrap prepares the store at startup. A missing sqlite file is created
// only when create_if_missing is set; a freshly created store gets the
// default admin account when seed_admin is set. It returns whether the
// store is usable.
func (s *Store) Bootstrap(ctx context.Context) (bool, error) {
	existed := s.Exists()
	if !existed && !s.cfg.CreateIfMissing {
		s.log.WithField("path", s.cfg.DBPath).
			Warn("database file not found; API will answer store unavailable until it exists")
		return false, nil
	}

	s.mu.Lock()
	if s.db == nil {
		db, err := Open(s.cfg, s.log)
		if err != nil {
			s.mu.Unlock()
			return false, err
		}
		s.db = db
	}
	db := s.db.WithContext(ctx)
	s.mu.Unlock()

	if !existed && s.cfg.SeedAdmin {
		created, err := SeedAdmin(db, DefaultAdminName, DefaultAdminEmail, DefaultAdminPassword)
		if err != nil {
			return false, err
		}
		if created {
			s.log.WithField("email", DefaultAdminEmail).Info("default admin user created")
		}
	}

	report, err := Inspect(db)
	if err != nil {
		return true, err
	}

	s.log.WithFields(map[string]any{
		"driver": s.cfg.DBDriver,
		"size":   s.FileSize(),
		"tables": report.Tables,
		"counts": report.Counts,
	}).Info("database ready")

	return true, nil
}

// SeedAdmin inserts the admin user unless the email is already taken.
func SeedAdmin(db *gorm.DB, name, email, password string) (bool, error) {
	var existing models.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("seed admin lookup: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, fmt.Errorf("seed admin hash: %w", err)
	}

	user := models.User{Name: name, Email: email, Password: string(hashed)}
	if err := db.Create(&user).Error; err != nil {
		return false, fmt.Errorf("seed admin insert: %w", err)
	}
	return true, nil
}
