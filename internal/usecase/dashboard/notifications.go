package dashboard

import (
	"context"
	"fmt"

	"github.com/pauloryan091/agmais/internal/domain/appointment"
	domain "github.com/pauloryan091/agmais/internal/domain/dashboard"
	"github.com/pauloryan091/agmais/internal/dto"
	"github.com/pauloryan091/agmais/internal/timezone"
)

type ListNotifications struct {
	repo  domain.Repository
	clock *timezone.Clock
}

func NewListNotifications(
	repo domain.Repository,
	clock *timezone.Clock,
) *ListNotifications {
	return &ListNotifications{
		repo:  repo,
		clock: clock,
	}
}

func (uc *ListNotifications) Execute(
	ctx context.Context,
	ownerID uint,
) ([]dto.Notification, error) {

	today, err := uc.repo.CountAppointmentsOn(ctx, ownerID, uc.clock.Today())
	if err != nil {
		return nil, err
	}

	counts, err := uc.repo.CountAppointmentsByStatus(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	var pending int64
	for _, c := range counts {
		if appointment.Status(c.Status) == appointment.StatusPending {
			pending += c.Total
		}
	}

	items := []dto.Notification{}

	if today > 0 {
		items = append(items, dto.Notification{
			ID:      1,
			Title:   "Agendamentos hoje",
			Message: fmt.Sprintf("Você tem %d agendamento(s) para hoje", today),
			Kind:    "info",
			Icon:    "calendar-day",
		})
	}

	if pending > 0 {
		items = append(items, dto.Notification{
			ID:      2,
			Title:   "Agendamentos pendentes",
			Message: fmt.Sprintf("Você tem %d agendamento(s) pendentes", pending),
			Kind:    "warning",
			Icon:    "clock",
		})
	}

	return items, nil
}
