package middlewarectx

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORSMiddleware возвращает middleware, разрешающий кросс-доменные запросы
// с учетными данными только от origin из списка allowedOrigins.
func CORSMiddleware(allowedOrigins []string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           300,
	})
}
