package repository

import (
	"context"
	"strings"

	dbpkg "github.com/pauloryan091/agmais/internal/db"
	"github.com/pauloryan091/agmais/internal/domain/user"
	"github.com/pauloryan091/agmais/internal/httperr"
	"github.com/pauloryan091/agmais/internal/models"
)

type UserGormRepository struct {
	conn dbpkg.Conn
}

func NewUserGormRepository(conn dbpkg.Conn) *UserGormRepository {
	return &UserGormRepository{conn: conn}
}

var errUserNotFound = httperr.ErrNotFound("email_not_registered", "Email não cadastrado")

func (r *UserGormRepository) FindByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {

	db, err := r.conn.Session(ctx)
	if err != nil {
		return nil, err
	}

	var u models.User
	if err := db.
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&u).Error; err != nil {
		return nil, notFoundOr(err, errUserNotFound, "user_lookup_failed")
	}
	return &u, nil
}

func (r *UserGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	db, err := r.conn.Session(ctx)
	if err != nil {
		return nil, err
	}

	var u models.User
	if err := db.First(&u, id).Error; err != nil {
		return nil, notFoundOr(err, httperr.ErrNotFound("user_not_found", "Usuário não encontrado"), "user_lookup_failed")
	}
	return &u, nil
}

// EmailTaken reports whether another user already holds email.
func (r *UserGormRepository) EmailTaken(
	ctx context.Context,
	email string,
	exceptID uint,
) (bool, error) {

	db, err := r.conn.Session(ctx)
	if err != nil {
		return false, err
	}

	var count int64
	if err := db.Model(&models.User{}).
		Where("LOWER(email) = ? AND id <> ?", strings.ToLower(strings.TrimSpace(email)), exceptID).
		Count(&count).Error; err != nil {
		return false, wrapInternal("user_lookup_failed", err)
	}
	return count > 0, nil
}

func (r *UserGormRepository) Create(
	ctx context.Context,
	u *models.User,
) error {

	db, err := r.conn.Session(ctx)
	if err != nil {
		return err
	}

	if err := db.Create(u).Error; err != nil {
		if isUniqueViolation(err) {
			return httperr.ErrConflict("email_taken", "Email já cadastrado")
		}
		return wrapInternal("user_create_failed", err)
	}
	return nil
}

func (r *UserGormRepository) Update(
	ctx context.Context,
	u *models.User,
) error {

	db, err := r.conn.Session(ctx)
	if err != nil {
		return err
	}

	if err := db.Model(u).
		Select("name", "email", "password").
		Updates(u).Error; err != nil {
		if isUniqueViolation(err) {
			return httperr.ErrConflict("email_taken", "Este email já está em uso")
		}
		return wrapInternal("user_update_failed", err)
	}
	return nil
}

var _ user.Repository = (*UserGormRepository)(nil)
