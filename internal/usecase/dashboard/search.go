package dashboard

import (
	"context"
	"strings"

	domain "github.com/pauloryan091/agmais/internal/domain/dashboard"
	"github.com/pauloryan091/agmais/internal/dto"
	"github.com/pauloryan091/agmais/internal/httperr"
)

const searchLimit = 5

type Search struct {
	repo domain.Repository
}

func NewSearch(repo domain.Repository) *Search {
	return &Search{repo: repo}
}

// Execute matches term as a case-insensitive substring.
func (uc *Search) Execute(
	ctx context.Context,
	ownerID uint,
	term string,
) (*dto.SearchResults, error) {

	term = strings.TrimSpace(term)
	if term == "" {
		return nil, httperr.ErrValidation("search_term_required", "Informe um termo de busca")
	}

	clients, err := uc.repo.SearchClients(ctx, ownerID, term, searchLimit)
	if err != nil {
		return nil, err
	}

	services, err := uc.repo.SearchServices(ctx, ownerID, term, searchLimit)
	if err != nil {
		return nil, err
	}

	appointments, err := uc.repo.SearchAppointments(ctx, ownerID, term, searchLimit)
	if err != nil {
		return nil, err
	}

	return &dto.SearchResults{
		Clients:      nonNil(clients),
		Services:     nonNil(services),
		Appointments: nonNil(appointments),
	}, nil
}
