package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/internal/config"
	"github.com/aretw0/turing/pkg/adapters/memory"
	"github.com/aretw0/turing/pkg/adapters/redis"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/observability"
	"github.com/aretw0/turing/pkg/ports"
	"github.com/prometheus/client_golang/prometheus"
)

// engineSetup is the wiring shared by the long-running commands.
type engineSetup struct {
	Engine   *turing.Engine
	Registry *prometheus.Registry
	close    func() error
}

// Close releases the result store.
func (s *engineSetup) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// newEngine builds an engine from the configuration. Results are cached in Redis when
// an address is configured and in memory otherwise. A non-nil audit logger receives
// one record per transition and per halt.
func newEngine(ctx context.Context, cfg config.Config, logger, audit *slog.Logger) (*engineSetup, error) {
	setup := &engineSetup{}

	var store ports.ResultStore
	if cfg.Redis.Addr != "" {
		var opts []redis.Option
		if cfg.Redis.TTL > 0 {
			opts = append(opts, redis.WithTTL(cfg.Redis.TTL))
		}
		if cfg.Redis.Prefix != "" {
			opts = append(opts, redis.WithPrefix(cfg.Redis.Prefix))
		}
		rs := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, opts...)
		if err := rs.Ping(ctx); err != nil {
			_ = rs.Close()
			return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Redis.Addr, err)
		}
		logger.Info("Using Redis result store", "addr", cfg.Redis.Addr)
		store = rs
		setup.close = rs.Close
	} else {
		store = memory.NewStore()
	}

	var hooks domain.LifecycleHooks
	if audit != nil {
		hooks = observability.LoggingHooks(audit)
	}
	if cfg.Metrics.Enabled {
		setup.Registry = prometheus.NewRegistry()
		metrics := observability.NewMetrics(setup.Registry)
		hooks = hooks.Merge(metrics.Hooks())
	}

	setup.Engine = turing.New(
		turing.WithMaxSteps(cfg.MaxSteps),
		turing.WithLogger(logger),
		turing.WithStore(store),
		turing.WithLifecycleHooks(hooks),
	)
	return setup, nil
}
