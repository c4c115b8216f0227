// Package videos реализует HTTP-обработчик списка трейлеров контента.
package videos

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
	Videos(ctx context.Context, contentType, contentID string) ([]tmdb.Video, error)
}

// Handler обрабатывает HTTP-запросы списка трейлеров.
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
// @Summary Трейлеры контента
// @Description Возвращает трейлеры и тизеры из внешнего каталога.
// @Tags Catalog
// @Produce  json
// @Param contentType path string true "movie или tv"
// @Param contentId path string true "Идентификатор контента"
// @Success 200 {object} map[string]any "Список видео"
// @Failure 400 {object} response.ErrorResponse "Некорректный тип контента"
// @Failure 502 {object} response.ErrorResponse "Внешний каталог недоступен"
// @Router /catalog/{contentType}/{contentId}/videos [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.catalog.videos"

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

	result, err := h.service.Videos(r.Context(), contentType, contentID)
	if err != nil {
		log.Error("failed to fetch videos", sl.Err(err))
		w.WriteHeader(http.StatusBadGateway)
		render.JSON(w, r, response.Error("metadata provider unavailable"))
		return
	}
	if result == nil {
		result = []tmdb.Video{}
	}

	render.JSON(w, r, response.OKWithData(map[string]any{
		"videos": result,
	}))
}
