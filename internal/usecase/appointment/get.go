package appointment

import (
	"context"

	domain "github.com/pauloryan091/agmais/internal/domain/appointment"
	"github.com/pauloryan091/agmais/internal/dto"
)

type GetAppointment struct {
	repo domain.Repository
}

func NewGetAppointment(repo domain.Repository) *GetAppointment {
	return &GetAppointment{repo: repo}
}

func (uc *GetAppointment) Execute(
	ctx context.Context,
	ownerID uint,
	appointmentID uint,
) (*dto.AppointmentView, error) {
	return uc.repo.GetView(ctx, ownerID, appointmentID)
}
