package main

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"causes/internal/adapter/repo"
	"causes/internal/domain"
	"causes/internal/infra"
)

type store struct {
	causes        domain.CauseRepository
	contributions domain.ContributionRepository
	health        domain.HealthChecker
	close         func()
}

// openStore connects the configured backend and returns its repositories.
// It only returns once the backend has answered a ping.
func openStore(ctx context.Context, cfg *infra.Config, logger zerolog.Logger) (*store, error) {
	switch cfg.StoreDriver {
	case infra.StoreDriverPostgres:
		pool, err := infra.NewDBPool(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
		runner := infra.NewSQLRunner(pool, logger)
		if err := repo.EnsureSchema(ctx, runner); err != nil {
			pool.Close()
			return nil, err
		}
		return &store{
			causes:        repo.NewCauseRepositoryPG(runner),
			contributions: repo.NewContributionRepositoryPG(runner),
			health:        runner,
			close:         pool.Close,
		}, nil

	default:
		client, err := infra.NewMongoClient(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
		db := client.Database(cfg.MongoDatabase)
		contributions := repo.NewContributionRepositoryMongo(db.Collection(repo.ContributionsCollection))
		if err := contributions.EnsureIndexes(ctx); err != nil {
			logger.Warn().Err(err).Msg("could not create contribution indexes")
		}
		return &store{
			causes:        repo.NewCauseRepositoryMongo(db.Collection(repo.CausesCollection)),
			contributions: contributions,
			health:        repo.MongoHealth{Client: client},
			close: func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := client.Disconnect(ctx); err != nil {
					logger.Error().Err(err).Msg("failed to disconnect mongo")
				}
			},
		}, nil
	}
}
