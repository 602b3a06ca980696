package appointment

import (
	"context"

	"github.com/pauloryan091/agmais/internal/audit"
	domain "github.com/pauloryan091/agmais/internal/domain/appointment"
)

type DeleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	ownerID uint,
	appointmentID uint,
) error {

	if err := uc.repo.Delete(ctx, ownerID, appointmentID); err != nil {
		return err
	}

	dispatch(uc.audit, audit.Event{
		OwnerID:  ownerID,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &appointmentID,
	})
	return nil
}
