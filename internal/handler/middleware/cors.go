package middleware

import (
	"log/slog"
	"slices"

	"timewise/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// headers the API sets that a browser client needs to read
var exposedByAPI = []string{RequestIDHeader, "Retry-After", "Content-Disposition"}

func NewCORSMiddleware(cfg config.CORSConfig, logger *slog.Logger) gin.HandlerFunc {
	expose := slices.Clone(cfg.ExposeHeaders)
	for _, h := range exposedByAPI {
		if !slices.Contains(expose, h) {
			expose = append(expose, h)
		}
	}

	logger.Info("CORS configured",
		"allow_origins", cfg.AllowOrigins,
		"allow_credentials", cfg.AllowCredentials,
	)
	return cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    expose,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})
}
