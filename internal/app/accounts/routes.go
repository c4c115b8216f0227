// Package accounts предоставляет маршруты для основного приложения.
package accounts

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/sabrinaflix/backend/internal/http/handlers/auth/fetchuser"
	"github.com/sabrinaflix/backend/internal/http/handlers/auth/login"
	"github.com/sabrinaflix/backend/internal/http/handlers/auth/logout"
	"github.com/sabrinaflix/backend/internal/http/handlers/auth/register"
	"github.com/sabrinaflix/backend/internal/http/handlers/catalog/detail"
	"github.com/sabrinaflix/backend/internal/http/handlers/catalog/popular"
	"github.com/sabrinaflix/backend/internal/http/handlers/catalog/videos"
	"github.com/sabrinaflix/backend/internal/http/handlers/health"
	"github.com/sabrinaflix/backend/internal/http/handlers/playback"
	ratingsget "github.com/sabrinaflix/backend/internal/http/handlers/ratings/get"
	"github.com/sabrinaflix/backend/internal/http/handlers/ratings/rate"
	"github.com/sabrinaflix/backend/internal/http/handlers/saved/check"
	savedlist "github.com/sabrinaflix/backend/internal/http/handlers/saved/list"
	savedremove "github.com/sabrinaflix/backend/internal/http/handlers/saved/remove"
	"github.com/sabrinaflix/backend/internal/http/handlers/saved/save"
	"github.com/sabrinaflix/backend/internal/http/handlers/subscription/starttrial"
	"github.com/sabrinaflix/backend/internal/http/handlers/subscription/status"
	"github.com/sabrinaflix/backend/internal/http/handlers/subscription/upgrade"
	"github.com/sabrinaflix/backend/internal/http/middlewarectx"
	authservice "github.com/sabrinaflix/backend/internal/services/auth"
	catalogservice "github.com/sabrinaflix/backend/internal/services/catalog"
	libraryservice "github.com/sabrinaflix/backend/internal/services/library"
	subservice "github.com/sabrinaflix/backend/internal/services/subscription"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, allowedOrigins []string,
	authService *authservice.AuthService,
	subscriptionService *subservice.SubscriptionService,
	libraryService *libraryservice.LibraryService,
	catalogService *catalogservice.CatalogService,
) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
		middlewarectx.CORSMiddleware(allowedOrigins),
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/signup", register.New(logger, authService).ServeHTTP)
		r.Post("/login", login.New(logger, authService).ServeHTTP)
		r.Post("/logout", logout.New(logger).ServeHTTP)

		r.Get("/catalog/{contentType}/popular", popular.New(logger, catalogService).ServeHTTP)
		r.Get("/catalog/{contentType}/{contentId}", detail.New(logger, catalogService).ServeHTTP)
		r.Get("/catalog/{contentType}/{contentId}/videos", videos.New(logger, catalogService).ServeHTTP)

		r.Get("/health", health.New(logger).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.SessionMiddleware(authService, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))

			r.Get("/fetch-user", fetchuser.New(logger, authService).ServeHTTP)

			r.Post("/subscription/start-trial", starttrial.New(logger, subscriptionService).ServeHTTP)
			r.Post("/subscription/upgrade", upgrade.New(logger, subscriptionService).ServeHTTP)
			r.Get("/subscription/status", status.New(logger, subscriptionService).ServeHTTP)

			r.Post("/ratings", rate.New(logger, libraryService).ServeHTTP)
			r.Get("/ratings/{contentId}/{contentType}", ratingsget.New(logger, libraryService).ServeHTTP)

			r.Post("/save-for-later", save.New(logger, libraryService).ServeHTTP)
			r.Get("/save-for-later", savedlist.New(logger, libraryService).ServeHTTP)
			r.Delete("/save-for-later/{contentId}/{contentType}", savedremove.New(logger, libraryService).ServeHTTP)
			r.Get("/save-for-later/check/{contentId}/{contentType}", check.New(logger, libraryService).ServeHTTP)

			// Просмотр доступен только с активной подпиской
			r.Group(func(r chi.Router) {
				r.Use(middlewarectx.EntitlementMiddleware(logger, subscriptionService))
				r.Get("/playback/{contentType}/{contentId}", playback.New(logger, catalogService).ServeHTTP)
			})
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
