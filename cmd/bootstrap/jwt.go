package bootstrap

import (
	"time"

	"timewise/internal/pkg/clock"
	"timewise/internal/pkg/config"
	"timewise/internal/pkg/errs"
	"timewise/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config, clk clock.Clock) (*jwt.Service, error) {
	duration, err := time.ParseDuration(cfg.JWT.Duration)
	if err != nil {
		return nil, errs.Configuration("invalid JWT_DURATION: " + err.Error())
	}
	return jwt.NewService(cfg.JWT.Secret, duration, clk), nil
}
