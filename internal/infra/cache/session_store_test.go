package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unit-service/internal/domain/session"
)

func newTestStore(t *testing.T) (*SessionStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewSessionStore(client), mr
}

func newTestSession(token string, ttl time.Duration) *session.Session {
	now := time.Now()
	return &session.Session{
		Token:       token,
		PersonalKey: uuid.New(),
		CreatedAt:   now,
		ExpiresAt:   now.Add(ttl),
	}
}

func TestSessionStoreSaveAndCheck(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, newTestSession("token-1", time.Hour)))

	active, err := store.HasActiveSession(ctx, "token-1")
	require.NoError(t, err)
	assert.True(t, active)

	active, err = store.HasActiveSession(ctx, "token-2")
	require.NoError(t, err)
	assert.False(t, active)
}

func TestSessionStoreExactTokenMatch(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, newTestSession("token-1", time.Hour)))

	// A prefix or superstring of a live token must not read as active.
	active, err := store.HasActiveSession(ctx, "token-1x")
	require.NoError(t, err)
	assert.False(t, active)
}

func TestSessionStoreExpiry(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, newTestSession("token-1", time.Minute)))

	mr.FastForward(2 * time.Minute)

	active, err := store.HasActiveSession(ctx, "token-1")
	require.NoError(t, err)
	assert.False(t, active)
}

func TestSessionStoreRevoke(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, newTestSession("token-1", time.Hour)))
	require.NoError(t, store.Revoke(ctx, "token-1"))

	active, err := store.HasActiveSession(ctx, "token-1")
	require.NoError(t, err)
	assert.False(t, active)
}

func TestSessionStoreRejectsExpiredSession(t *testing.T) {
	store, _ := newTestStore(t)

	err := store.Save(context.Background(), newTestSession("token-1", -time.Minute))
	assert.Error(t, err)
}

func TestSessionStoreHashesTokens(t *testing.T) {
	store, mr := newTestStore(t)

	require.NoError(t, store.Save(context.Background(), newTestSession("token-1", time.Hour)))

	// The raw credential never appears in a key.
	for _, key := range mr.Keys() {
		assert.NotContains(t, key, "token-1")
	}
}
