package server

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS пропускает кросс-доменные запросы только с origin, включая credentials.
// Методы и заголовки не ограничиваются.
func CORS(origin string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{origin},
		AllowCredentials: true,
		AllowedMethods: []string{
			http.MethodDelete, http.MethodGet, http.MethodHead, http.MethodOptions,
			http.MethodPatch, http.MethodPost, http.MethodPut,
		},
		AllowedHeaders:       []string{"*"},
		MaxAge:               600,
		OptionsSuccessStatus: http.StatusOK,
	})
	return c.Handler
}
