// Package redis stores the per-session flow state in Redis.
package redis

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"insureflow/config"
	"insureflow/internal/domain/lifecycle"
	"insureflow/internal/errors"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the Redis client shared by the session repositories
func New(params Params) (*goredis.Client, error) {
	if params.Config.Redis == nil {
		return nil, errors.New("redis configuration is missing")
	}

	client := goredis.NewClient(&goredis.Options{
		Addr:     params.Config.Redis.Addr,
		Password: params.Config.Redis.Password,
		DB:       params.Config.Redis.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}

			params.Logger.Info("Redis connected", slog.String("addr", params.Config.Redis.Addr))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}

// jsonStore keeps one JSON document per session under prefix+sessionID.
type jsonStore[T any] struct {
	client   goredis.Cmdable
	prefix   string
	ttl      time.Duration
	notFound error
}

func (s *jsonStore[T]) key(sessionID string) string {
	return s.prefix + sessionID
}

func (s *jsonStore[T]) load(ctx context.Context, sessionID string) (*T, error) {
	raw, err := s.client.Get(ctx, s.key(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, s.notFound
		}

		return nil, errors.Wrapf(err, "failed to get %s", s.key(sessionID))
	}

	value := new(T)
	if err := json.Unmarshal(raw, value); err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s", s.key(sessionID))
	}

	return value, nil
}

func (s *jsonStore[T]) save(ctx context.Context, sessionID string, value *T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "failed to encode %s", s.key(sessionID))
	}

	if err := s.client.Set(ctx, s.key(sessionID), raw, s.ttl).Err(); err != nil {
		return errors.Wrapf(err, "failed to set %s", s.key(sessionID))
	}

	return nil
}

func (s *jsonStore[T]) delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.key(sessionID)).Err(); err != nil {
		return errors.Wrapf(err, "failed to delete %s", s.key(sessionID))
	}

	return nil
}

func sessionTTL(cfg *config.Config) time.Duration {
	if cfg == nil || cfg.Session == nil {
		return 0
	}

	return cfg.Session.TTL
}
