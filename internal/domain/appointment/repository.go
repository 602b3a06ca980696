package appointment

import (
	"context"

	"github.com/pauloryan091/agmais/internal/dto"
	"github.com/pauloryan091/agmais/internal/models"
)

// Repository is scoped by owner on every call. A row owned by someone else
// is reported exactly like a missing one.
type Repository interface {
	// -------- Client / Service --------
	GetClient(
		ctx context.Context,
		ownerID uint,
		clientID uint,
	) (*models.Client, error)

	GetService(
		ctx context.Context,
		ownerID uint,
		serviceID uint,
	) (*models.Service, error)

	// -------- Appointment --------
	List(
		ctx context.Context,
		ownerID uint,
	) ([]dto.AppointmentView, error)

	Get(
		ctx context.Context,
		ownerID uint,
		appointmentID uint,
	) (*models.Appointment, error)

	GetView(
		ctx context.Context,
		ownerID uint,
		appointmentID uint,
	) (*dto.AppointmentView, error)

	Create(
		ctx context.Context,
		ap *models.Appointment,
	) error

	Update(
		ctx context.Context,
		ap *models.Appointment,
	) error

	Delete(
		ctx context.Context,
		ownerID uint,
		appointmentID uint,
	) error
}
