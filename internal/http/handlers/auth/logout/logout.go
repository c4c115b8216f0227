// Package logout реализует HTTP-обработчик выхода из учетной записи.
//
// Сессионные токены не отзываются на сервере: выданный токен действует
// до истечения срока, удаление токена выполняет клиент. Обработчик
// только подтверждает выход.
package logout

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/sabrinaflix/backend/internal/http/response"
)

// Handler обрабатывает HTTP-запросы выхода.
type Handler struct {
	log *slog.Logger
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger) *Handler {
	return &Handler{
		log: log,
	}
}

// ServeHTTP godoc
// @Summary Выход из учетной записи
// @Description Подтверждает выход; удаление токена выполняет клиент.
// @Tags Auth
// @Produce  json
// @Success 200 {object} map[string]any "Выход выполнен"
// @Router /logout [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, response.OKWithData(map[string]any{
		"message": "logged out successfully",
	}))
}
