// Package get реализует HTTP-обработчик чтения оценки контента.
//
// Отсутствие оценки не ошибка: в этом случае возвращается rating: null.
package get

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/sabrinaflix/backend/internal/http/middlewarectx"
	"github.com/sabrinaflix/backend/internal/http/response"
	"github.com/sabrinaflix/backend/internal/lib/sl"
	"github.com/sabrinaflix/backend/internal/models"
)

// Service описывает интерфейс бизнес-логики чтения оценки.
type Service interface {
	GetRating(ctx context.Context, userUID, contentID, contentType string) (*models.Rating, error)
}

// Handler обрабатывает HTTP-запросы чтения оценки.
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
// @Summary Оценка пользователя для контента
// @Description Возвращает оценку или null, если контент не оценивался.
// @Tags Ratings
// @Produce  json
// @Security BearerAuth
// @Param contentId path string true "Идентификатор контента"
// @Param contentType path string true "movie или tv"
// @Success 200 {object} map[string]any "Оценка или null"
// @Failure 401 {object} response.ErrorResponse "Нет или невалидный токен"
// @Router /ratings/{contentId}/{contentType} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.ratings.get"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userUID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || userUID == "" {
		log.Error("user identification missing")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("user identification missing"))
		return
	}

	contentID := chi.URLParam(r, "contentId")
	contentType := chi.URLParam(r, "contentType")

	rating, err := h.service.GetRating(r.Context(), userUID, contentID, contentType)
	if err != nil {
		log.Error("failed to get rating", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to get rating"))
		return
	}

	render.JSON(w, r, response.OKWithData(map[string]any{
		"rating": rating,
	}))
}
