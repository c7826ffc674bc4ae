package api

import (
	"context"
	"testing"
	"time"

	"github.com/dropbox/godropbox/time2"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github/uniagent/go-broker/internal/broker"
	"github/uniagent/go-broker/internal/broker/chain"
	"github/uniagent/go-broker/internal/broker/engine"
	"github/uniagent/go-broker/internal/broker/pending"
	"github/uniagent/go-broker/internal/config"
	"github/uniagent/go-broker/internal/metrics"
)

// PROVIDERS - define here only providers that for various reasons (e.g. cyclic dependency) can't live in their corresponding packages
// or for wrapping providers that only accept sub-configs to prevent the requirements for defining providers for sub-configs.
// https://github.com/google/wire/blob/main/docs/guide.md#defining-providers

const redisPingTimeout = 5 * time.Second

func NewClock(t ...*testing.T) time2.Clock {
	var clock time2.Clock

	useMock := len(t) > 0 && t[0] != nil

	if useMock {
		clock = time2.NewMockClock(time.Now())
	} else {
		clock = time2.DefaultClock
	}

	return clock
}

func NewMetrics(t ...*testing.T) *metrics.Service {
	// per-test registries keep parallel test servers from colliding on
	// duplicate collector registration
	if len(t) > 0 && t[0] != nil {
		return metrics.New(prometheus.NewRegistry())
	}

	return metrics.New(prometheus.DefaultRegisterer)
}

func NewEngineClient(cfg config.Server) (EngineClient, error) { //nolint:ireturn
	return engine.NewClient(cfg.Engine)
}

func NewResolver() chain.Service { //nolint:ireturn
	return chain.NewService()
}

// NewPendingStore selects the pending store implementation from the config.
// The redis variant is only needed for multi-process deployments, both honor
// the same TTL and exactly-once-claim contract.
func NewPendingStore(cfg config.Server, clock time2.Clock) (PendingStore, error) { //nolint:ireturn
	switch cfg.Broker.PendingStore {
	case "", "memory":
		return pending.NewMemoryStore(cfg.Broker.PendingTTL, clock), nil
	case "redis":
		if cfg.Broker.RedisEndpoint == "" {
			return nil, errors.New("pending store is set to redis but no redis endpoint is configured")
		}

		client := redis.NewClient(&redis.Options{
			Addr: cfg.Broker.RedisEndpoint,
		})

		ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
		defer cancel()

		if err := client.Ping(ctx).Err(); err != nil {
			return nil, errors.Wrap(err, "failed to ping redis")
		}

		log.Info().Str("endpoint", cfg.Broker.RedisEndpoint).Msg("Using redis-backed pending store")

		return pending.NewRedisStore(client, cfg.Broker.PendingTTL, clock), nil
	default:
		return nil, errors.Errorf("unknown pending store kind: %q", cfg.Broker.PendingStore)
	}
}

func NewBrokerService(
	cfg config.Server,
	resolver chain.Service,
	engineClient EngineClient,
	store PendingStore,
	metricsService *metrics.Service,
) BrokerService { //nolint:ireturn
	return broker.NewService(cfg, resolver, engineClient, store, metricsService)
}

func NoTest() []*testing.T {
	return nil
}
