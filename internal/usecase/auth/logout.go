package auth

import (
	"context"

	"github.com/pauloryan091/agmais/internal/session"
)

type Logout struct {
	sessions *session.Manager
}

func NewLogout(sessions *session.Manager) *Logout {
	return &Logout{sessions: sessions}
}

// Execute always succeeds from the caller's point of view: a missing or
// unknown token leaves nothing to destroy.
func (uc *Logout) Execute(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return uc.sessions.Destroy(ctx, token)
}
