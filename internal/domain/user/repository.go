package user

import (
	"context"

	"github.com/pauloryan091/agmais/internal/models"
)

type Repository interface {
	FindByEmail(
		ctx context.Context,
		email string,
	) (*models.User, error)

	GetByID(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	// EmailTaken ignores the user with exceptID.
	EmailTaken(
		ctx context.Context,
		email string,
		exceptID uint,
	) (bool, error)

	Create(
		ctx context.Context,
		u *models.User,
	) error

	Update(
		ctx context.Context,
		u *models.User,
	) error
}
