package appointment

import (
	"context"

	domain "github.com/pauloryan091/agmais/internal/domain/appointment"
	"github.com/pauloryan091/agmais/internal/dto"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

// Execute returns the owner's appointments, most recent date first.
func (uc *ListAppointments) Execute(
	ctx context.Context,
	ownerID uint,
) ([]dto.AppointmentView, error) {
	return uc.repo.List(ctx, ownerID)
}
