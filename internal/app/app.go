package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/wordlens/wordlens-backend/internal/adapter/postgres"
	favoriterepo "github.com/wordlens/wordlens-backend/internal/adapter/postgres/favorite"
	recentrepo "github.com/wordlens/wordlens-backend/internal/adapter/postgres/recent"
	settingsrepo "github.com/wordlens/wordlens-backend/internal/adapter/postgres/settings"
	wordofdayrepo "github.com/wordlens/wordlens-backend/internal/adapter/postgres/wordofday"
	"github.com/wordlens/wordlens-backend/internal/adapter/provider/freedict"
	"github.com/wordlens/wordlens-backend/internal/adapter/provider/openai"
	"github.com/wordlens/wordlens-backend/internal/config"
	"github.com/wordlens/wordlens-backend/internal/service/explain"
	"github.com/wordlens/wordlens-backend/internal/service/hub"
	settingssvc "github.com/wordlens/wordlens-backend/internal/service/settings"
	"github.com/wordlens/wordlens-backend/internal/transport/middleware"
	"github.com/wordlens/wordlens-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects
// to the database, wires services, and serves HTTP until ctx is
// cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, cfg.Database.DSN); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	favorites := favoriterepo.New(pool)
	recent := recentrepo.New(pool)
	wordOfDay := wordofdayrepo.New(pool)
	settingsRepo := settingsrepo.New(pool)

	dict := freedict.NewProviderWithURL(cfg.Dictionary.BaseURL, cfg.Dictionary.Timeout, logger)
	llm := openai.NewClientWithURL(cfg.LLM.BaseURL, cfg.LLM.Timeout, logger)

	settings := settingssvc.NewService(logger, settingsRepo, cfg.Pipeline)
	explainer := explain.NewService(logger, dict, llm, settings)
	hubSvc := hub.NewService(logger, favorites, recent, wordOfDay, explainer)

	router := rest.NewRouter(rest.Handlers{
		Health:   rest.NewHealthHandler(pool, BuildVersion()),
		Explain:  rest.NewExplainHandler(explainer, hubSvc, logger),
		Hub:      rest.NewHubHandler(hubSvc, logger),
		Settings: rest.NewSettingsHandler(settings, logger),
	})

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		limiter.Limit(120),
	)(router)

	go pruneLoop(ctx, logger, hubSvc, cfg.Pipeline.PruneEvery)

	server := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

type recentPruner interface {
	PruneRecent(ctx context.Context) error
}

// pruneLoop periodically expires old recent searches.
func pruneLoop(ctx context.Context, logger *slog.Logger, pruner recentPruner, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := pruner.PruneRecent(ctx); err != nil {
				logger.Warn("prune recent searches", slog.String("error", err.Error()))
			}
		}
	}
}
