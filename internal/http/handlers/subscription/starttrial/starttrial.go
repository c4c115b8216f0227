// Package starttrial реализует HTTP-обработчик начала пробного периода.
package starttrial

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
	subservice "github.com/sabrinaflix/backend/internal/services/subscription"
	"github.com/sabrinaflix/backend/internal/storage/repository"
)

// Service описывает интерфейс бизнес-логики начала пробного периода.
type Service interface {
	StartTrial(ctx context.Context, userUID string) (*models.SubscriptionInfo, error)
}

// Handler обрабатывает HTTP-запросы начала пробного периода.
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
// @Summary Начало пробного периода
// @Description Переводит пользователя в статус trial на один календарный месяц.
// @Tags Subscription
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} map[string]any "Пробный период начат"
// @Failure 400 {object} response.ErrorResponse "Подписка уже действует или пользователь не найден"
// @Failure 401 {object} response.ErrorResponse "Нет или невалидный токен"
// @Router /subscription/start-trial [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.starttrial"

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

	info, err := h.service.StartTrial(r.Context(), userUID)
	if err != nil {
		switch {
		case errors.Is(err, subservice.ErrSubscriptionActive):
			log.Info("trial rejected, subscription still active", slog.String("user_uid", userUID))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("subscription is already active"))
		case errors.Is(err, repository.ErrUserNotFound):
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("user not found"))
		default:
			log.Error("failed to start trial", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to start trial"))
		}
		return
	}

	log.Info("trial started", slog.String("user_uid", userUID))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"message":             "free trial started",
		"subscriptionStatus":  info.Status,
		"subscriptionEndDate": info.EndDate,
	}))
}
