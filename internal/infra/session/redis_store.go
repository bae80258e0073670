// Package session implements the server-side session store on Redis.
// Each session is a single opaque token mapped to the owning user's ID with a
// TTL; logout simply deletes the key.
package session

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"noteboard/config"
	"noteboard/internal/domain/service"
	"noteboard/internal/errors"
)

const keyPrefix = "session:"

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
}

// NewRedisClient creates the Redis client used by the session store and wires
// its lifecycle (ping on start, close on stop).
func NewRedisClient(params Params) (*redis.Client, error) {
	cfg := params.Config.Redis
	if cfg == nil {
		return nil, errors.New("redis configuration is missing")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return errors.Wrap(client.Ping(ctx).Err(), "failed to ping Redis")
		},
		OnStop: func(_ context.Context) error {
			return errors.WithStack(client.Close())
		},
	})

	return client, nil
}

// redisStore is a concrete implementation of the SessionStore interface.
type redisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore is the constructor for redisStore.
func NewRedisStore(client *redis.Client, cfg *config.Config) service.SessionStore {
	return &redisStore{
		client: client,
		ttl:    cfg.Session.TTL,
	}
}

// Create stores a fresh session token for the user. Tokens are random UUIDs;
// the user ID is the stored value, never encoded into the token itself.
func (s *redisStore) Create(ctx context.Context, userID int64) (string, error) {
	token := uuid.NewString()

	if err := s.client.Set(ctx, keyPrefix+token, strconv.FormatInt(userID, 10), s.ttl).Err(); err != nil {
		return "", errors.Wrap(err, "failed to store session")
	}

	return token, nil
}

// Resolve returns the user ID bound to the token.
func (s *redisStore) Resolve(ctx context.Context, token string) (int64, error) {
	if token == "" {
		return 0, service.ErrSessionNotFound
	}

	val, err := s.client.Get(ctx, keyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return 0, service.ErrSessionNotFound
	}
	if err != nil {
		return 0, errors.Wrap(err, "failed to read session")
	}

	userID, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		// A corrupt value is treated as no session rather than a server error.
		return 0, service.ErrSessionNotFound
	}

	return userID, nil
}

// Destroy removes the session. Deleting a missing key is a no-op in Redis,
// which matches the contract.
func (s *redisStore) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	return errors.Wrap(s.client.Del(ctx, keyPrefix+token).Err(), "failed to delete session")
}
