package app

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/football-portal/external/apifootball"
	"github.com/riskibarqy/football-portal/internal/config"
	"github.com/riskibarqy/football-portal/internal/infrastructure/auth"
	"github.com/riskibarqy/football-portal/internal/interfaces/httpapi"
	"github.com/riskibarqy/football-portal/internal/platform/cache"
	"github.com/riskibarqy/football-portal/internal/platform/id"
	"github.com/riskibarqy/football-portal/internal/platform/logging"
	"github.com/riskibarqy/football-portal/internal/platform/metrics"
	"github.com/riskibarqy/football-portal/internal/usecase"
)

const warmTimeout = 30 * time.Second

// App holds the wired HTTP server and the resources it owns.
type App struct {
	Server *http.Server
	Feed   *usecase.FeedService

	db     *sqlx.DB
	logger *logging.Logger
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	base := logging.OrDefault(logger)
	logger = base.Named("app")
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	var recorder *metrics.Recorder
	if cfg.MetricsEnabled {
		recorder = metrics.NewRecorder()
	}

	repos, db, err := buildRepositories(ctx, cfg, logger, recorder.CacheObserver("repository"))
	if err != nil {
		return nil, fmt.Errorf("build repositories: %w", err)
	}

	secret := cfg.JWTSecret
	if secret == "" {
		secret = devSecret()
		logger.Warn("AUTH_JWT_SECRET is empty, using a random development secret")
	}
	issuer, err := auth.NewJWTIssuer(secret, cfg.TokenTTL, cfg.JWTIssuer)
	if err != nil {
		closeDB(db, logger)
		return nil, fmt.Errorf("build token issuer: %w", err)
	}

	clientCfg := apifootball.ClientConfig{
		BaseURL:        cfg.FootballAPIURL,
		APIKey:         cfg.FootballAPIKey,
		Timeout:        cfg.FootballAPITimeout,
		MaxRetries:     cfg.FootballAPIMaxRetries,
		Logger:         base,
		CircuitBreaker: cfg.FootballCircuit,
	}
	if recorder != nil {
		clientCfg.Metrics = recorder
	}
	provider := apifootball.NewClient(clientCfg)

	responseCache := cache.NewStore(
		cfg.FootballCacheTTL,
		cache.WithMaxEntries(cfg.FootballCacheMaxEntries),
		cache.WithObserver(recorder.CacheObserver("feed")),
	)

	feedCfg := usecase.DefaultFeedConfig()
	feedCfg.MajorLeagueIDs = cfg.MajorLeagueIDs
	feedCfg.FeaturedDays = cfg.FeaturedDays
	feedCfg.FeaturedLimit = cfg.FeaturedLimit
	feedCfg.RangeMaxDays = cfg.RangeMaxDays
	feedCfg.FetchConcurrency = cfg.FetchConcurrency
	feedCfg.TopScorersLimit = cfg.TopScorersLimit
	feedCfg.Location = cfg.DisplayTimezone

	var fallbacks usecase.FallbackRecorder
	if recorder != nil {
		fallbacks = recorder
	}
	feedSvc := usecase.NewFeedService(
		provider,
		responseCache,
		repos.matches,
		repos.teams,
		repos.competitions,
		feedCfg,
		base,
		fallbacks,
	)

	idGen := id.NewUUIDGenerator()
	authSvc := usecase.NewAuthService(repos.users, auth.NewBcryptHasher(cfg.BcryptCost), issuer, idGen)

	handler := httpapi.NewHandler(httpapi.Services{
		Feed:         feedSvc,
		Auth:         authSvc,
		Competitions: usecase.NewCompetitionService(repos.competitions, idGen),
		Teams:        usecase.NewTeamService(repos.teams, repos.competitions, idGen),
		Players:      usecase.NewPlayerService(repos.players, repos.teams, idGen),
		Matches:      usecase.NewMatchService(repos.matches, repos.teams, repos.competitions, idGen),
		Transfers:    usecase.NewTransferService(repos.transfers, repos.players, idGen),
		News:         usecase.NewNewsService(repos.news, idGen, base),
		Users:        usecase.NewUserService(repos.users),
	}, base)

	routerCfg := httpapi.RouterConfig{CORSAllowedOrigins: cfg.CORSOrigins}
	if recorder != nil {
		routerCfg.Metrics = recorder.Handler()
		routerCfg.Observer = recorder
	}
	router := httpapi.NewRouter(handler, authSvc, base, routerCfg)

	return &App{
		Server: &http.Server{
			Addr:         cfg.HTTPAddr,
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		Feed:   feedSvc,
		db:     db,
		logger: logger,
	}, nil
}

// Warm pre-fills the feed cache, bounded by warmTimeout.
func (a *App) Warm(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, warmTimeout)
	defer cancel()

	started := time.Now()
	a.Feed.Warm(ctx)
	a.logger.Info("feed cache warmed", "duration", time.Since(started).String())
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func closeDB(db *sqlx.DB, logger *logging.Logger) {
	if db == nil {
		return
	}
	if err := db.Close(); err != nil {
		logger.Warn("close database failed", "error", err)
	}
}

func devSecret() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "football-portal-development-secret"
	}
	return hex.EncodeToString(buf)
}
