// Package accounts собирает и запускает основной HTTP-сервис:
// аккаунты, подписки, коллекции и прокси каталога.
package accounts

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/sabrinaflix/backend/internal/cache"
	"github.com/sabrinaflix/backend/internal/config"
	"github.com/sabrinaflix/backend/internal/lib/jwt"
	"github.com/sabrinaflix/backend/internal/migrations"
	authservice "github.com/sabrinaflix/backend/internal/services/auth"
	catalogservice "github.com/sabrinaflix/backend/internal/services/catalog"
	libraryservice "github.com/sabrinaflix/backend/internal/services/library"
	subservice "github.com/sabrinaflix/backend/internal/services/subscription"
	"github.com/sabrinaflix/backend/internal/storage/repository"
	"github.com/sabrinaflix/backend/internal/tmdb"
)

type App struct {
	server       *http.Server
	logger       *slog.Logger
	db           *repository.Storage
	subscription *subservice.SubscriptionService
	reconciler   time.Duration
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	jwtMaker := jwt.NewMaker(cfg.JWTSecretKey, cfg.TokenTTL)
	tmdbClient := tmdb.New(cfg.TMDB)

	authService := authservice.NewAuthService(db, jwtMaker)
	subscriptionService := subservice.NewSubscriptionService(db, cacheRedis, logger)
	libraryService := libraryservice.NewLibraryService(db, logger)
	catalogService := catalogservice.NewCatalogService(tmdbClient, cacheRedis, logger)

	router := chi.NewRouter()

	RegisterRoutes(router, logger, cfg.AllowedOrigins,
		authService, subscriptionService, libraryService, catalogService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server:       srv,
		logger:       logger,
		db:           db,
		subscription: subscriptionService,
		reconciler:   cfg.Interval,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	go a.subscription.RunExpiryReconciler(ctx, a.reconciler)

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.db.DB.Close()
		return err
	}
}
