// Package status реализует HTTP-обработчик чтения состояния подписки.
//
// Состояние производное: isActive и статус expired вычисляются из даты
// окончания на момент запроса, чтение ничего не изменяет.
package status

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/sabrinaflix/backend/internal/http/middlewarectx"
	"github.com/sabrinaflix/backend/internal/http/response"
	"github.com/sabrinaflix/backend/internal/lib/sl"
	"github.com/sabrinaflix/backend/internal/models"
	"github.com/sabrinaflix/backend/internal/storage/repository"
)

// Service описывает интерфейс бизнес-логики чтения состояния подписки.
type Service interface {
	GetStatus(ctx context.Context, userUID string) (*models.SubscriptionInfo, error)
}

// Handler обрабатывает HTTP-запросы чтения состояния подписки.
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
// @Summary Состояние подписки
// @Description Возвращает статус, даты и признак isActive на момент запроса.
// @Tags Subscription
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} models.SubscriptionInfo "Состояние подписки"
// @Failure 400 {object} response.ErrorResponse "Пользователь не найден"
// @Failure 401 {object} response.ErrorResponse "Нет или невалидный токен"
// @Router /subscription/status [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.status"

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

	info, err := h.service.GetStatus(r.Context(), userUID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("user not found"))
			return
		}
		log.Error("failed to get subscription status", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to get subscription status"))
		return
	}

	render.JSON(w, r, response.OKWithData(map[string]any{
		"subscriptionStatus":  info.Status,
		"subscriptionEndDate": info.EndDate,
		"trialStartDate":      info.TrialStartDate,
		"isActive":            info.IsActive,
	}))
}
