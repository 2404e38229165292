package app

import (
	"context"
	"fmt"

	"github.com/riskibarqy/scouting/internal/config"
	"github.com/riskibarqy/scouting/internal/infrastructure/repository"
	"github.com/riskibarqy/scouting/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/scouting/internal/infrastructure/repository/jsonfile"
	"github.com/riskibarqy/scouting/internal/infrastructure/repository/memory"
	idgen "github.com/riskibarqy/scouting/internal/platform/id"
	"github.com/riskibarqy/scouting/internal/platform/logging"
	"github.com/riskibarqy/scouting/internal/usecase"
)

// App holds the wired repositories and services of one process.
type App struct {
	Config   config.Config
	Logger   *logging.Logger
	Registry *repository.Registry
	Repos    repository.Repositories

	Auth    *usecase.AuthService
	Players *usecase.PlayerService
	Teams   *usecase.TeamService
	Matches *usecase.MatchService
	Reports *usecase.ReportService
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.NewNop()
	}

	open, err := backendOpener(cfg)
	if err != nil {
		return nil, err
	}

	registry, repos, err := repository.Build(cache.Wrap(open, cfg.CacheTTL, logger), logger)
	if err != nil {
		return nil, fmt.Errorf("build repositories: %w", err)
	}

	hasher := usecase.NewBcryptHasher(cfg.BcryptCost)
	if cfg.Storage == config.StorageMemory {
		hash, err := hasher.Hash(memory.DemoPassword)
		if err != nil {
			return nil, fmt.Errorf("hash demo password: %w", err)
		}
		if err := memory.Seed(ctx, repos, hash); err != nil {
			return nil, err
		}
		logger.InfoContext(ctx, "memory storage seeded", "repositories", registry.Names())
	}

	svcLogger := logger.Named("usecase")
	app := &App{
		Config:   cfg,
		Logger:   logger,
		Registry: registry,
		Repos:    repos,
		Auth: usecase.NewAuthService(
			repos.Players,
			repos.ClubMembers,
			repos.Referees,
			repos.Teams,
			hasher,
			svcLogger,
		),
		Players: usecase.NewPlayerService(repos.Players, repos.Teams, svcLogger),
		Teams:   usecase.NewTeamService(repos.Teams, repos.Players, repos.ClubMembers, svcLogger),
		Matches: usecase.NewMatchService(
			repos.Matches,
			repos.Teams,
			repos.Players,
			repos.ClubMembers,
			repos.Referees,
			idgen.NewPrefixedGenerator("match"),
			svcLogger,
		),
		Reports: usecase.NewReportService(repos.Players, repos.Teams, svcLogger),
	}

	logger.InfoContext(ctx, "app ready", "storage", cfg.Storage, "cache_ttl", cfg.CacheTTL, "data_dir", cfg.DataDir, "env", cfg.AppEnv)
	return app, nil
}

func backendOpener(cfg config.Config) (repository.OpenFunc, error) {
	switch cfg.Storage {
	case config.StorageFile:
		return func(typeName string) (repository.Backend, error) {
			return jsonfile.Open(cfg.DataDir, typeName)
		}, nil
	case config.StorageMemory:
		return func(typeName string) (repository.Backend, error) {
			return memory.NewBackend(typeName), nil
		}, nil
	default:
		return nil, fmt.Errorf("unsupported storage %q", cfg.Storage)
	}
}
