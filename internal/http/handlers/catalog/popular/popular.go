// Package popular реализует HTTP-обработчик списков популярного контента.
//
// Данные приходят из внешнего API метаданных через кеширующий прокси,
// чтобы ключ API не попадал в клиентское приложение.
package popular

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

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
	Popular(ctx context.Context, contentType string, page int) (*tmdb.Page, error)
}

// Handler обрабатывает HTTP-запросы списков популярного.
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
// @Summary Популярные фильмы и сериалы
// @Description Возвращает страницу популярного контента внешнего каталога.
// @Tags Catalog
// @Produce  json
// @Param contentType path string true "movie или tv"
// @Param page query int false "Номер страницы" default(1)
// @Success 200 {object} map[string]any "Страница каталога"
// @Failure 400 {object} response.ErrorResponse "Некорректный тип контента"
// @Failure 502 {object} response.ErrorResponse "Внешний каталог недоступен"
// @Router /catalog/{contentType}/popular [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.catalog.popular"

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

	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	result, err := h.service.Popular(r.Context(), contentType, page)
	if err != nil {
		log.Error("failed to fetch popular content", sl.Err(err))
		w.WriteHeader(http.StatusBadGateway)
		render.JSON(w, r, response.Error("metadata provider unavailable"))
		return
	}

	render.JSON(w, r, response.OKWithData(map[string]any{
		"page":         result.Page,
		"results":      result.Results,
		"totalPages":   result.TotalPages,
		"totalResults": result.TotalResults,
	}))
}
