package middleware

import (
	"net/http"

	"github.com/rs/cors"

	"github.com/davidbz/brandcost/internal/config"
)

// CORS lets browser front ends call the pricing API from other origins.
// A nil config disables the policy.
func CORS(cfg *config.CORSConfig) Middleware {
	if cfg == nil {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   cfg.AllowedMethods,
		AllowedHeaders:   cfg.AllowedHeaders,
		ExposedHeaders:   []string{"Content-Disposition", "X-Request-Id", "X-Trace-Id"},
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})

	return c.Handler
}
