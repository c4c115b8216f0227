package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/sabrinaflix/backend/internal/http/response"
	"github.com/sabrinaflix/backend/internal/lib/sl"
)

// EntitlementService определяет интерфейс проверки права на просмотр.
type EntitlementService interface {
	IsEntitled(ctx context.Context, userUID string) (bool, error)
}

// EntitlementMiddleware создает middleware, пропускающий к воспроизведению
// только пользователей с действующей подпиской или пробным периодом.
func EntitlementMiddleware(log *slog.Logger, subService EntitlementService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userUID, ok := r.Context().Value(UserUID).(string)
			if !ok || userUID == "" {
				log.Error("user identification missing")
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("user identification missing"))
				return
			}

			entitled, err := subService.IsEntitled(r.Context(), userUID)
			if err != nil {
				log.Error("failed to check entitlement", sl.Err(err))
				w.WriteHeader(http.StatusInternalServerError)
				render.JSON(w, r, response.Error("internal service error"))
				return
			}

			if !entitled {
				log.Info("playback denied, subscription not active", slog.String("user_uid", userUID))
				w.WriteHeader(http.StatusForbidden)
				render.JSON(w, r, response.Error("subscription required"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
