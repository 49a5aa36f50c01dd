package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/Domenick1991/airboard/config"
	"github.com/Domenick1991/airboard/internal/cache"
	"github.com/Domenick1991/airboard/internal/kafka"
	"github.com/Domenick1991/airboard/internal/repository"
	"github.com/Domenick1991/airboard/internal/service/flights"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewFlightService wires the configured flight source and the optional Redis
// cache. The returned cleanup releases them in reverse order.
func NewFlightService(ctx context.Context, cfg *config.Config) (*flights.FlightService, func(), error) {
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	var repo repository.FlightRepository
	switch cfg.Board.Source {
	case config.SourcePostgres:
		pool, err := pgxpool.New(ctx, cfg.Database.DSN())
		if err != nil {
			return nil, nil, fmt.Errorf("connect postgres: %w", err)
		}
		closers = append(closers, pool.Close)
		repo = repository.NewFlightRepository(pool)
	case config.SourceFile:
		repo = repository.NewFileFlightRepository(cfg.Board.FixturesPath)
	default:
		return nil, nil, fmt.Errorf("unknown board.source %q", cfg.Board.Source)
	}

	var opts []flights.FlightServiceOption
	if cfg.Redis.Addr != "" && cfg.Board.CacheTTLSeconds > 0 {
		redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Board.CacheTTLSeconds)*time.Second)
		closers = append(closers, func() { _ = redisCache.Close() })
		opts = append(opts, flights.WithCache(redisCache))
	}

	return flights.NewFlightService(repo, opts...), cleanup, nil
}

// NewProducer returns nil when no brokers or topic are configured.
func NewProducer(cfg config.KafkaConfig) *kafka.Producer {
	if len(cfg.Brokers) == 0 || cfg.BoardTopic == "" {
		return nil
	}
	return kafka.NewProducer(cfg.Brokers)
}
