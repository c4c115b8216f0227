// Package list реализует HTTP-обработчик чтения списка "смотреть позже".
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/sabrinaflix/backend/internal/http/middlewarectx"
	"github.com/sabrinaflix/backend/internal/http/response"
	"github.com/sabrinaflix/backend/internal/lib/sl"
	"github.com/sabrinaflix/backend/internal/models"
)

// Service описывает интерфейс бизнес-логики чтения списка.
type Service interface {
	ListSavedItems(ctx context.Context, userUID string) ([]*models.SavedItem, error)
}

// Handler обрабатывает HTTP-запросы чтения списка.
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
// @Summary Список "смотреть позже"
// @Description Возвращает сохраненный контент в порядке добавления.
// @Tags SaveForLater
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} map[string]any "Список контента"
// @Failure 401 {object} response.ErrorResponse "Нет или невалидный токен"
// @Router /save-for-later [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.saved.list"

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

	items, err := h.service.ListSavedItems(r.Context(), userUID)
	if err != nil {
		log.Error("failed to list saved items", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list saved items"))
		return
	}
	if items == nil {
		items = []*models.SavedItem{}
	}

	render.JSON(w, r, response.OKWithData(map[string]any{
		"savedItems": items,
	}))
}
