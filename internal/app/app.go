package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/matchdayhq/roster-api/internal/config"
	"github.com/matchdayhq/roster-api/internal/domain/player"
	"github.com/matchdayhq/roster-api/internal/domain/suggestion"
	"github.com/matchdayhq/roster-api/internal/infrastructure/repository/memory"
	"github.com/matchdayhq/roster-api/internal/infrastructure/repository/postgres"
	"github.com/matchdayhq/roster-api/internal/interfaces/httpapi"
	"github.com/matchdayhq/roster-api/internal/platform/cache"
	idgen "github.com/matchdayhq/roster-api/internal/platform/id"
	"github.com/matchdayhq/roster-api/internal/platform/logging"
	"github.com/matchdayhq/roster-api/internal/usecase"
)

// NewHTTPServer wires repositories, services, and the router into a ready
// http.Server. The returned cleanup releases infrastructure resources and
// must be called after the server stops.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	playerRepo, suggestionRepo, cleanup, err := buildRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	var listCache *cache.Store
	if cfg.CacheEnabled {
		listCache = cache.NewStore(cfg.CacheTTL)
	}

	idGen := idgen.NewRandomGenerator()

	rosterSvc := usecase.NewRosterService(playerRepo, idGen, listCache)
	formationSvc := usecase.NewFormationService(playerRepo, nil)
	suggestionSvc := usecase.NewSuggestionService(playerRepo, suggestionRepo, idGen, logger)
	statsSvc := usecase.NewStatsService(playerRepo, logger)

	handler := httpapi.NewHandler(rosterSvc, formationSvc, suggestionSvc, statsSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		cleanup()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, func() error {
		cleanup()
		return nil
	}, nil
}

func buildRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (player.Repository, suggestion.Repository, func(), error) {
	if cfg.DBURL == "" {
		var seed []player.Player
		if cfg.SeedDemoData {
			seed = memory.SeedPlayers()
		}
		logger.Info("using in-memory repositories", "seeded_players", len(seed))
		return memory.NewPlayerRepository(seed), memory.NewSuggestionRepository(), func() {}, nil
	}

	db, err := postgres.Open(ctx, cfg.DBURL)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open database: %w", err)
	}

	logger.Info("using postgres repositories")
	cleanup := func() {
		if err := db.Close(); err != nil {
			logger.Error("close database", "error", err)
		}
	}
	return postgres.NewPlayerRepository(db, logger), postgres.NewSuggestionRepository(db), cleanup, nil
}
