package dashboard

import (
	"context"

	domain "github.com/pauloryan091/agmais/internal/domain/dashboard"
	"github.com/pauloryan091/agmais/internal/dto"
)

const (
	recentLimit = 10
	rankLimit   = 5
)

type GetDashboard struct {
	repo  domain.Repository
	stats *GetStats
}

func NewGetDashboard(
	repo domain.Repository,
	stats *GetStats,
) *GetDashboard {
	return &GetDashboard{
		repo:  repo,
		stats: stats,
	}
}

func (uc *GetDashboard) Execute(
	ctx context.Context,
	ownerID uint,
) (*dto.Dashboard, error) {

	stats, err := uc.stats.Execute(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	recent, err := uc.repo.RecentAppointments(ctx, ownerID, recentLimit)
	if err != nil {
		return nil, err
	}

	services, err := uc.repo.TopServices(ctx, ownerID, rankLimit)
	if err != nil {
		return nil, err
	}

	clients, err := uc.repo.TopClients(ctx, ownerID, rankLimit)
	if err != nil {
		return nil, err
	}

	return &dto.Dashboard{
		Stats:           *stats,
		Recent:          nonNil(recent),
		TopServices:     nonNil(services),
		FrequentClients: nonNil(clients),
	}, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
