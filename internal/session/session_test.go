package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pauloryan091/agmais/internal/httperr"
)

func storeContract(t *testing.T, store Store) {
	ctx := context.Background()

	s := &Session{ID: "abc", UserID: 7, Name: "Ana", Email: "ana@x.com"}
	require.NoError(t, store.Save(ctx, s, time.Hour))

	got, err := store.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, uint(7), got.UserID)
	assert.Equal(t, "ana@x.com", got.Email)

	require.NoError(t, store.Delete(ctx, "abc"))

	_, err = store.Get(ctx, "abc")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore(t *testing.T) {
	storeContract(t, NewMemoryStore())
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore()
	now := time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	require.NoError(t, store.Save(context.Background(), &Session{ID: "x"}, time.Minute))

	now = now.Add(2 * time.Minute)
	_, err := store.Get(context.Background(), "x")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	storeContract(t, NewRedisStore(client))
}

func TestRedisStoreTTL(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	store := NewRedisStore(client)
	require.NoError(t, store.Save(context.Background(), &Session{ID: "ttl"}, time.Minute))

	mr.FastForward(2 * time.Minute)

	_, err := store.Get(context.Background(), "ttl")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCodecRejectsTamperedAndExpired(t *testing.T) {
	codec := NewCodec("secret", time.Hour)

	token, err := codec.Sign("sid-1", 3)
	require.NoError(t, err)

	id, err := codec.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "sid-1", id)

	_, err = NewCodec("other", time.Hour).Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	codec.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = codec.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestManagerLifecycle(t *testing.T) {
	ctx := context.Background()
	m := NewManager(NewMemoryStore(), NewCodec("secret", time.Hour), time.Hour)

	token, s, err := m.Create(ctx, 1, "Ana", "ana@x.com")
	require.NoError(t, err)

	got, err := m.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, s.ID, got.ID)

	got.Name = "Ana Maria"
	require.NoError(t, m.Refresh(ctx, got))

	again, err := m.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", again.Name)

	require.NoError(t, m.Destroy(ctx, token))

	_, err = m.Resolve(ctx, token)
	assert.True(t, httperr.Is(err, httperr.KindUnauthorized))

	_, err = m.Resolve(ctx, "")
	assert.True(t, httperr.Is(err, httperr.KindUnauthorized))

	assert.NoError(t, m.Destroy(ctx, "garbage"))
}
