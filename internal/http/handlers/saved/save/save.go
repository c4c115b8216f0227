// Package save реализует HTTP-обработчик добавления контента в список
// "смотреть позже".
//
// Метаданные карточки (название, постер, описание) сохраняются снимком
// на момент запроса и позже не синхронизируются с внешним каталогом.
package save

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/sabrinaflix/backend/internal/http/middlewarectx"
	"github.com/sabrinaflix/backend/internal/http/response"
	"github.com/sabrinaflix/backend/internal/lib/sl"
	"github.com/sabrinaflix/backend/internal/models"
	"github.com/sabrinaflix/backend/internal/storage/repository"
)

// Request — входные данные для сохранения контента.
type Request struct {
	ContentID    string `json:"contentId" validate:"required"`
	ContentType  string `json:"contentType" validate:"required,oneof=movie tv"`
	Title        string `json:"title" validate:"required"`
	PosterPath   string `json:"posterPath"`
	BackdropPath string `json:"backdropPath"`
	Overview     string `json:"overview"`
}

// Service описывает интерфейс бизнес-логики списка "смотреть позже".
type Service interface {
	SaveItem(ctx context.Context, userUID string, item models.SavedItem) error
}

// Handler обрабатывает HTTP-запросы добавления в список.
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
// @Summary Добавление в "смотреть позже"
// @Description Сохраняет контент со снимком метаданных; дубликат отклоняется.
// @Tags SaveForLater
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body Request true "Сохраняемый контент"
// @Success 200 {object} map[string]any "Контент сохранен"
// @Failure 400 {object} response.ErrorResponse "Некорректные данные или дубликат"
// @Failure 401 {object} response.ErrorResponse "Нет или невалидный токен"
// @Router /save-for-later [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.saved.save"

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

	item := models.SavedItem{
		ContentID:    req.ContentID,
		ContentType:  req.ContentType,
		Title:        req.Title,
		PosterPath:   req.PosterPath,
		BackdropPath: req.BackdropPath,
		Overview:     req.Overview,
	}
	if err := h.service.SaveItem(r.Context(), userUID, item); err != nil {
		if errors.Is(err, repository.ErrAlreadySaved) {
			log.Info("item already saved", slog.String("content_id", req.ContentID))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("already saved"))
			return
		}
		log.Error("failed to save item", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to save item"))
		return
	}

	render.JSON(w, r, response.OKWithData(map[string]any{
		"message": "saved",
	}))
}
