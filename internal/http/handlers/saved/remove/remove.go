// Package remove реализует HTTP-обработчик удаления контента из списка
// "смотреть позже".
//
// Удаление идемпотентно: отсутствие записи не считается ошибкой.
// В ответе возвращается актуальный список после удаления.
package remove

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

// Service описывает интерфейс бизнес-логики удаления из списка.
type Service interface {
	RemoveItem(ctx context.Context, userUID, contentID, contentType string) ([]*models.SavedItem, error)
}

// Handler обрабатывает HTTP-запросы удаления из списка.
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
// @Summary Удаление из "смотреть позже"
// @Description Удаляет контент из списка; повторное удаление — no-op.
// @Tags SaveForLater
// @Produce  json
// @Security BearerAuth
// @Param contentId path string true "Идентификатор контента"
// @Param contentType path string true "movie или tv"
// @Success 200 {object} map[string]any "Актуальный список после удаления"
// @Failure 401 {object} response.ErrorResponse "Нет или невалидный токен"
// @Router /save-for-later/{contentId}/{contentType} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.saved.remove"

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

	items, err := h.service.RemoveItem(r.Context(), userUID, contentID, contentType)
	if err != nil {
		log.Error("failed to remove saved item", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to remove saved item"))
		return
	}
	if items == nil {
		items = []*models.SavedItem{}
	}

	log.Info("item removed", slog.String("content_id", contentID))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"message":    "removed",
		"savedItems": items,
	}))
}
