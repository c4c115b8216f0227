// Package detail реализует HTTP-обработчик карточки фильма или сериала.
package detail

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/sabrinaflix/backend/internal/http/response"
	"github.com/sabrinaflix/backend/internal/lib/sl"
	"github.com/sabrinaflix/backend/internal/models"
	"github.com/sabrinaflix/backend/internal/tmdb"
)

// Service описывает интерфейс прокси каталога.
type Service interface {
	Details(ctx context.Context, contentType, contentID string) (*tmdb.Details, error)
}

// Handler обрабатывает HTTP-запросы карточки контента.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Карточка контента
// @Description Возвращает карточку фильма или сериала из внешнего каталога.
// @Tags Catalog
// @Produce  json
// @Param contentType path string true "movie или tv"
// @Param contentId path string true "Идентификатор контента"
// @Success 200 {object} map[string]any "Карточка контента"
// @Failure 400 {object} response.ErrorResponse "Некорректный тип контента"
// @Failure 502 {object} response.ErrorResponse "Внешний каталог недоступен"
// @Router /catalog/{contentType}/{contentId} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.catalog.detail"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	contentType := chi.URLParam(r, "contentType")
	if contentType != models.ContentTypeMovie && contentType != models.ContentTypeTV {
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid content type"))
		return
	}
	contentID := chi.URLParam(r, "contentId")

	result, err := h.service.Details(r.Context(), contentType, contentID)
	if err != nil {
		log.Error("failed to fetch content details", sl.Err(err))
		w.WriteHeader(http.StatusBadGateway)
		render.JSON(w, r, response.Error("metadata provider unavailable"))
		return
	}

	render.JSON(w, r, response.OKWithData(map[string]any{
		"details": result,
	}))
}
