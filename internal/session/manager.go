package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/pauloryan091/agmais/internal/httperr"
)

type Manager struct {
	store Store
	codec *Codec
	ttl   time.Duration
}

func NewManager(store Store, codec *Codec, ttl time.Duration) *Manager {
	return &Manager{store: store, codec: codec, ttl: ttl}
}

func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Create stores a new session and returns the signed cookie value.
func (m *Manager) Create(
	ctx context.Context,
	userID uint,
	name string,
	email string,
) (string, *Session, error) {

	s := &Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      name,
		Email:     email,
		CreatedAt: time.Now(),
	}

	if err := m.store.Save(ctx, s, m.ttl); err != nil {
		return "", nil, httperr.ErrInternal("session_save_failed", err)
	}

	token, err := m.codec.Sign(s.ID, userID)
	if err != nil {
		return "", nil, httperr.ErrInternal("session_sign_failed", err)
	}
	return token, s, nil
}

// Resolve turns a cookie value back into its session.
func (m *Manager) Resolve(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, httperr.ErrUnauthorized("missing_session")
	}

	id, err := m.codec.Parse(token)
	if err != nil {
		return nil, httperr.ErrUnauthorized("invalid_session")
	}

	s, err := m.store.Get(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, httperr.ErrUnauthorized("session_expired")
	}
	if err != nil {
		return nil, httperr.ErrInternal("session_lookup_failed", err)
	}
	return s, nil
}

// Refresh rewrites the stored record, e.g. after a profile change.
func (m *Manager) Refresh(ctx context.Context, s *Session) error {
	if err := m.store.Save(ctx, s, m.ttl); err != nil {
		return httperr.ErrInternal("session_save_failed", err)
	}
	return nil
}

// Destroy removes the record behind token. Unknown or invalid tokens are
// ignored.
func (m *Manager) Destroy(ctx context.Context, token string) error {
	id, err := m.codec.Parse(token)
	if err != nil {
		return nil
	}
	return m.store.Delete(ctx, id)
}
