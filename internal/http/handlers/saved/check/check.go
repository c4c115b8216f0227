// Package check реализует HTTP-обработчик проверки наличия контента
// в списке "смотреть позже".
package check

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
)

// Service описывает интерфейс бизнес-логики проверки списка.
type Service interface {
	CheckSaved(ctx context.Context, userUID, contentID, contentType string) (bool, error)
}

// Handler обрабатывает HTTP-запросы проверки наличия в списке.
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
// @Summary Проверка наличия в "смотреть позже"
// @Description Возвращает признак isSaved для пары (contentId, contentType).
// @Tags SaveForLater
// @Produce  json
// @Security BearerAuth
// @Param contentId path string true "Идентификатор контента"
// @Param contentType path string true "movie или tv"
// @Success 200 {object} map[string]any "Признак наличия"
// @Failure 401 {object} response.ErrorResponse "Нет или невалидный токен"
// @Router /save-for-later/check/{contentId}/{contentType} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.saved.check"

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

	isSaved, err := h.service.CheckSaved(r.Context(), userUID, contentID, contentType)
	if err != nil {
		log.Error("failed to check saved item", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to check saved item"))
		return
	}

	render.JSON(w, r, response.OKWithData(map[string]any{
		"isSaved": isSaved,
	}))
}
