package infra

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NewMongoClient connects to MongoDB using the Stable API v1 and blocks until
// the deployment answers a ping or cfg.StoreConnectTimeout elapses.
func NewMongoClient(ctx context.Context, cfg *Config, logger zerolog.Logger) (*mongo.Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)
	opts := options.Client().
		ApplyURI(cfg.MongoURI).
		SetServerAPIOptions(serverAPI).
		SetConnectTimeout(10 * time.Second)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	ping := func() (struct{}, error) {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return struct{}{}, client.Database("admin").RunCommand(pingCtx, bson.D{{Key: "ping", Value: 1}}).Err()
	}
	if err := retryStartup(ctx, cfg, logger, "mongo", ping); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	logger.Info().Str("database", cfg.MongoDatabase).Msg("connected to mongo")
	return client, nil
}

// NewDBPool initializes a pgx connection pool and waits for the first
// successful ping.
func NewDBPool(ctx context.Context, cfg *Config, logger zerolog.Logger) (*pgxpool.Pool, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	poolCfg.MaxConns = 10
	poolCfg.MinConns = 1
	poolCfg.MaxConnLifetime = time.Hour
	poolCfg.MaxConnIdleTime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	ping := func() (struct{}, error) {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return struct{}{}, pool.Ping(pingCtx)
	}
	if err := retryStartup(ctx, cfg, logger, "postgres", ping); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	logger.Info().Msg("connected to postgres")
	return pool, nil
}

func retryStartup(ctx context.Context, cfg *Config, logger zerolog.Logger, store string, op backoff.Operation[struct{}]) error {
	notify := func(err error, wait time.Duration) {
		logger.Warn().Err(err).Str("store", store).Dur("retry_in", wait).Msg("store not reachable yet")
	}
	_, err := backoff.Retry(ctx, op,
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxElapsedTime(cfg.StoreConnectTimeout),
		backoff.WithNotify(notify),
	)
	return err
}
