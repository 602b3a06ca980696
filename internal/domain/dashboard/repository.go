package dashboard

import (
	"context"

	"github.com/pauloryan091/agmais/internal/dto"
	"github.com/pauloryan091/agmais/internal/models"
)

// Repository holds the read-only aggregate queries, all owner scoped.
type Repository interface {
	// -------- Counters --------
	CountAppointmentsOn(ctx context.Context, ownerID uint, date string) (int64, error)
	CountAppointmentsInMonth(ctx context.Context, ownerID uint, month string) (int64, error)
	CountAppointmentsByStatus(ctx context.Context, ownerID uint) ([]dto.StatusCount, error)
	CountClients(ctx context.Context, ownerID uint) (int64, error)
	CountServices(ctx context.Context, ownerID uint) (int64, error)

	// -------- Rankings --------
	TopServices(ctx context.Context, ownerID uint, limit int) ([]dto.RankItem, error)
	TopClients(ctx context.Context, ownerID uint, limit int) ([]dto.RankItem, error)

	// -------- Recent rows --------
	RecentAppointments(ctx context.Context, ownerID uint, limit int) ([]dto.AppointmentView, error)
	LatestAppointments(ctx context.Context, ownerID uint, limit int) ([]dto.AppointmentView, error)
	LatestClients(ctx context.Context, ownerID uint, limit int) ([]models.Client, error)

	// -------- Search --------
	SearchClients(ctx context.Context, ownerID uint, term string, limit int) ([]dto.ClientHit, error)
	SearchServices(ctx context.Context, ownerID uint, term string, limit int) ([]dto.ServiceHit, error)
	SearchAppointments(ctx context.Context, ownerID uint, term string, limit int) ([]dto.AppointmentView, error)
}
