package dashboard

import (
	"context"

	appointment "github.com/pauloryan091/agmais/internal/domain/appointment"
	domain "github.com/pauloryan091/agmais/internal/domain/dashboard"
	"github.com/pauloryan091/agmais/internal/dto"
	"github.com/pauloryan091/agmais/internal/timezone"
)

type GetStats struct {
	repo      domain.Repository
	clock     *timezone.Clock
	unitPrice float64
}

// NewGetStats estimates revenue as the month's appointment count times
// unitPrice.
func NewGetStats(
	repo domain.Repository,
	clock *timezone.Clock,
	unitPrice float64,
) *GetStats {
	return &GetStats{
		repo:      repo,
		clock:     clock,
		unitPrice: unitPrice,
	}
}

func (uc *GetStats) Execute(
	ctx context.Context,
	ownerID uint,
) (*dto.Stats, error) {

	now := uc.clock.Current()
	stats := &dto.Stats{Timestamp: now}

	var err error

	// --------------------------------------------------
	// 1️⃣ Hoje e mês corrente
	// --------------------------------------------------
	if stats.Today, err = uc.repo.CountAppointmentsOn(ctx, ownerID, uc.clock.Today()); err != nil {
		return nil, err
	}
	if stats.Month, err = uc.repo.CountAppointmentsInMonth(ctx, ownerID, uc.clock.Month()); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2️⃣ Totais
	// --------------------------------------------------
	if stats.Clients, err = uc.repo.CountClients(ctx, ownerID); err != nil {
		return nil, err
	}
	if stats.Services, err = uc.repo.CountServices(ctx, ownerID); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3️⃣ Por status
	// --------------------------------------------------
	counts, err := uc.repo.CountAppointmentsByStatus(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	for _, c := range counts {
		switch appointment.Status(c.Status) {
		case appointment.StatusPending:
			stats.Pending += c.Total
		case appointment.StatusConfirmed:
			stats.Confirmed += c.Total
		case appointment.StatusDone:
			stats.Done += c.Total
		case appointment.StatusCanceled:
			stats.Canceled += c.Total
		}
	}

	stats.Revenue = float64(stats.Month) * uc.unitPrice
	return stats, nil
}
