package app

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/football-portal/internal/config"
	"github.com/riskibarqy/football-portal/internal/domain/competition"
	"github.com/riskibarqy/football-portal/internal/domain/match"
	"github.com/riskibarqy/football-portal/internal/domain/news"
	"github.com/riskibarqy/football-portal/internal/domain/player"
	"github.com/riskibarqy/football-portal/internal/domain/team"
	"github.com/riskibarqy/football-portal/internal/domain/transfer"
	"github.com/riskibarqy/football-portal/internal/domain/user"
	repocache "github.com/riskibarqy/football-portal/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/football-portal/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/football-portal/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/football-portal/internal/platform/cache"
	"github.com/riskibarqy/football-portal/internal/platform/logging"
)

type repositories struct {
	competitions competition.Repository
	teams        team.Repository
	players      player.Repository
	matches      match.Repository
	transfers    transfer.Repository
	news         news.Repository
	users        user.Repository
}

// buildRepositories picks the storage driver. The returned db is nil for
// the memory driver.
func buildRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger, observe func(hit bool)) (repositories, *sqlx.DB, error) {
	var (
		repos repositories
		db    *sqlx.DB
	)

	switch cfg.StorageDriver {
	case config.StorageMemory:
		repos = repositories{
			competitions: memory.NewCompetitionRepository(memory.SeedCompetitions()),
			teams:        memory.NewTeamRepository(memory.SeedTeams()),
			players:      memory.NewPlayerRepository(memory.SeedPlayers()),
			matches:      memory.NewMatchRepository(memory.SeedMatches()),
			transfers:    memory.NewTransferRepository(memory.SeedTransfers()),
			news:         memory.NewNewsRepository(memory.SeedNews()),
			users:        memory.NewUserRepository(nil),
		}
	case config.StoragePostgres:
		var err error
		db, err = openDB(ctx, cfg)
		if err != nil {
			return repositories{}, nil, err
		}
		repos = repositories{
			competitions: postgres.NewCompetitionRepository(db),
			teams:        postgres.NewTeamRepository(db),
			players:      postgres.NewPlayerRepository(db),
			matches:      postgres.NewMatchRepository(db),
			transfers:    postgres.NewTransferRepository(db),
			news:         postgres.NewNewsRepository(db),
			users:        postgres.NewUserRepository(db),
		}
	default:
		return repositories{}, nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}

	if cfg.RepositoryCacheEnabled {
		store := cache.NewStore(cfg.RepositoryCacheTTL, cache.WithObserver(observe))
		repos.competitions = repocache.NewCompetitionRepository(repos.competitions, store)
		repos.teams = repocache.NewTeamRepository(repos.teams, store)
		logger.Info("repository read cache enabled", "ttl", cfg.RepositoryCacheTTL.String())
	}

	logger.Info("storage ready", "driver", cfg.StorageDriver)
	return repos, db, nil
}
