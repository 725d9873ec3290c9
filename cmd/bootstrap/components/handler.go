package components

import (
	"timewise/internal/handler"
	"timewise/internal/handler/api"
	"timewise/internal/handler/middleware"
	"timewise/internal/pkg/config"
	"timewise/internal/pkg/jwt"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewSettingsHandler,
		api.NewAvailabilityHandler,
		api.NewBookingHandler,
		api.NewExportHandler,
		func(s *jwt.Service) middleware.TokenValidator { return s },
		middleware.NewAuthMiddleware,
		func(cfg config.Config) *middleware.RateLimiter {
			return middleware.NewRateLimiter(cfg.RateLimit)
		},
		func(
			auth *api.AuthHandler,
			settings *api.SettingsHandler,
			availability *api.AvailabilityHandler,
			booking *api.BookingHandler,
			export *api.ExportHandler,
		) handler.Handlers {
			return handler.Handlers{
				Auth:         auth,
				Settings:     settings,
				Availability: availability,
				Booking:      booking,
				Export:       export,
			}
		},
	),
	fx.Invoke(handler.NewRouter),
)
