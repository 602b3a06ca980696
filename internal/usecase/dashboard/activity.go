package dashboard

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/pauloryan091/agmais/internal/domain/appointment"
	domain "github.com/pauloryan091/agmais/internal/domain/dashboard"
	"github.com/pauloryan091/agmais/internal/dto"
)

const (
	activityPerKind = 5
	activityLimit   = 10
)

type RecentActivity struct {
	repo domain.Repository
}

func NewRecentActivity(repo domain.Repository) *RecentActivity {
	return &RecentActivity{repo: repo}
}

// Execute merges the latest appointments and clients, newest first.
func (uc *RecentActivity) Execute(
	ctx context.Context,
	ownerID uint,
) ([]dto.Activity, error) {

	appointments, err := uc.repo.LatestAppointments(ctx, ownerID, activityPerKind)
	if err != nil {
		return nil, err
	}

	clients, err := uc.repo.LatestClients(ctx, ownerID, activityPerKind)
	if err != nil {
		return nil, err
	}

	items := make([]dto.Activity, 0, len(appointments)+len(clients))

	for _, a := range appointments {
		items = append(items, dto.Activity{
			Kind:        "agendamento",
			Description: fmt.Sprintf("Agendamento para %s - %s", orDash(a.ClientName), orDash(a.ServiceName)),
			Details:     fmt.Sprintf("%s às %s", displayDate(a.Date), a.Time),
			Status:      a.Status,
			At:          a.CreatedAt,
		})
	}

	for _, c := range clients {
		items = append(items, dto.Activity{
			Kind:        "cliente",
			Description: "Novo cliente cadastrado: " + c.Name,
			Details:     "Cliente adicionado ao sistema",
			At:          c.CreatedAt,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].At.After(items[j].At)
	})

	if len(items) > activityLimit {
		items = items[:activityLimit]
	}
	return items, nil
}

func displayDate(raw string) string {
	d, err := time.Parse(appointment.DateLayout, raw)
	if err != nil {
		return raw
	}
	return d.Format("02/01/2006")
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}
