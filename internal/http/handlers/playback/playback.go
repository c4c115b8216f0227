// Package playback реализует HTTP-обработчик выдачи ссылки на просмотр.
// Доступ ограничен middleware проверки подписки.
package playback

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
)

// Service описывает интерфейс получения ссылки на просмотр.
type Service interface {
	Trailer(ctx context.Context, contentType, contentID string) (string, error)
}

// Handler обрабатывает HTTP-запросы на просмотр контента.
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
// @Summary Ссылка на просмотр
// @Description Возвращает ссылку встроенного плеера. Требует активную подписку.
// @Tags Playback
// @Security BearerAuth
// @Produce  json
// @Param contentType path string true "movie или tv"
// @Param contentId path string true "Идентификатор контента"
// @Success 200 {object} map[string]any "Ссылка на плеер"
// @Failure 400 {object} response.ErrorResponse "Некорректный тип контента"
// @Failure 403 {object} response.ErrorResponse "Подписка не активна"
// @Failure 502 {object} response.ErrorResponse "Внешний каталог недоступен"
// @Router /playback/{contentType}/{contentId} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.playback"

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

	playerURL, err := h.service.Trailer(r.Context(), contentType, contentID)
	if err != nil {
		log.Error("failed to resolve player url", sl.Err(err))
		w.WriteHeader(http.StatusBadGateway)
		render.JSON(w, r, response.Error("metadata provider unavailable"))
		return
	}

	render.JSON(w, r, response.OKWithData(map[string]any{
		"playerUrl": playerURL,
	}))
}
