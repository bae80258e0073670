package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noteboard/config"
	"noteboard/internal/domain/service"
)

func newTestStore(t *testing.T) (service.SessionStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cfg := &config.Config{
		Session: &config.SessionConfig{TTL: time.Hour},
	}

	return NewRedisStore(client, cfg), mr
}

func TestRedisStore_CreateAndResolve(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	token, err := store.Create(ctx, 42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := store.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestRedisStore_CreateRotatesTokens(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	first, err := store.Create(ctx, 1)
	require.NoError(t, err)
	second, err := store.Create(ctx, 1)
	require.NoError(t, err)

	// Each login gets its own opaque token.
	assert.NotEqual(t, first, second)
}

func TestRedisStore_ResolveUnknownToken(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Resolve(context.Background(), "no-such-token")
	assert.ErrorIs(t, err, service.ErrSessionNotFound)
}

func TestRedisStore_ResolveEmptyToken(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Resolve(context.Background(), "")
	assert.ErrorIs(t, err, service.ErrSessionNotFound)
}

func TestRedisStore_Destroy(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	token, err := store.Create(ctx, 7)
	require.NoError(t, err)

	require.NoError(t, store.Destroy(ctx, token))

	_, err = store.Resolve(ctx, token)
	assert.ErrorIs(t, err, service.ErrSessionNotFound)
}

func TestRedisStore_DestroyMissingSession(t *testing.T) {
	store, _ := newTestStore(t)

	// Logging out without a session succeeds.
	assert.NoError(t, store.Destroy(context.Background(), "never-existed"))
}

func TestRedisStore_SessionExpires(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	token, err := store.Create(ctx, 9)
	require.NoError(t, err)

	mr.FastForward(2 * time.Hour)

	_, err = store.Resolve(ctx, token)
	assert.ErrorIs(t, err, service.ErrSessionNotFound)
}
