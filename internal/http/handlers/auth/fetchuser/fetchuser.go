// Package fetchuser реализует HTTP-обработчик получения текущего пользователя.
//
// Идентификатор пользователя извлекается из контекста запроса, куда его
// кладет сессионный middleware. Хэш пароля в ответ не попадает.
package fetchuser

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

// Service описывает интерфейс бизнес-логики получения пользователя.
type Service interface {
	GetUser(ctx context.Context, userUID string) (*models.User, error)
}

// Handler обрабатывает HTTP-запросы получения текущего пользователя.
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
// @Summary Текущий пользователь
// @Description Возвращает пользователя, которому принадлежит сессия.
// @Tags Auth
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} map[string]any "Данные пользователя"
// @Failure 400 {object} response.ErrorResponse "Пользователь не найден"
// @Failure 401 {object} response.ErrorResponse "Нет или невалидный токен"
// @Router /fetch-user [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.fetchuser"

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

	user, err := h.service.GetUser(r.Context(), userUID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			log.Info("user not found", slog.String("user_uid", userUID))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("user not found"))
			return
		}
		log.Error("failed to fetch user", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to fetch user"))
		return
	}

	render.JSON(w, r, response.OKWithData(map[string]any{
		"user": user,
	}))
}
