package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/pauloryan091/agmais/internal/httperr"
)

// ownedBy is the only place the ownership predicate is written.
func ownedBy(table string, ownerID uint) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(table+".owner_user_id = ?", ownerID)
	}
}

// notFoundOr maps a missing row to the given not-found error and anything
// else to an internal one.
func notFoundOr(err error, notFound error, internalCode string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return wrapInternal(internalCode, err)
}

// wrapInternal keeps typed errors (store unavailable, conflicts) intact.
func wrapInternal(code string, err error) error {
	var typed *httperr.Error
	if errors.As(err, &typed) {
		return err
	}
	return httperr.ErrInternal(code, err)
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}

	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func likePattern(term string) string {
	return "%" + strings.ToLower(strings.TrimSpace(term)) + "%"
}
