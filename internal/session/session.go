package session

import (
	"context"
	"errors"
	"time"
)

const CookieName = "agmais_session"

var ErrNotFound = errors.New("session not found")

// Session is the server-side record of a logged-in user.
type Session struct {
	ID        string    `json:"id"`
	UserID    uint      `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type Store interface {
	Save(ctx context.Context, s *Session, ttl time.Duration) error
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}
