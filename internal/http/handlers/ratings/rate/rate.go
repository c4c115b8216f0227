// Package rate реализует HTTP-обработчик сохранения оценки контента.
//
// Повторная оценка той же пары (contentId, contentType) перезаписывает
// предыдущую: в коллекции пользователя остается не более одной записи на пару.
package rate

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/sabrinaflix/backend/internal/http/middlewarectx"
	"github.com/sabrinaflix/backend/internal/http/response"
	"github.com/sabrinaflix/backend/internal/lib/sl"
	"github.com/sabrinaflix/backend/internal/models"
)

// Request — входные данные для оценки контента.
type Request struct {
	ContentID   string `json:"contentId" validate:"required"`
	ContentType string `json:"contentType" validate:"required,oneof=movie tv"`
	Rating      int    `json:"rating" validate:"required,min=1,max=5"`
}

// Service описывает интерфейс бизнес-логики оценок.
type Service interface {
	RateContent(ctx context.Context, userUID string, rating models.Rating) error
}

// Handler обрабатывает HTTP-запросы сохранения оценки.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Оценка контента
// @Description Сохраняет оценку 1-5, перезаписывая предыдущую для той же пары.
// @Tags Ratings
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body Request true "Оценка контента"
// @Success 200 {object} map[string]any "Оценка сохранена"
// @Failure 400 {object} response.ErrorResponse "Некорректные данные"
// @Failure 401 {object} response.ErrorResponse "Нет или невалидный токен"
// @Router /ratings [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.ratings.rate"

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

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	rating := models.Rating{
		ContentID:   req.ContentID,
		ContentType: req.ContentType,
		Rating:      req.Rating,
	}
	if err := h.service.RateContent(r.Context(), userUID, rating); err != nil {
		log.Error("failed to save rating", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to save rating"))
		return
	}

	render.JSON(w, r, response.OKWithData(map[string]any{
		"message": "rating saved",
	}))
}
