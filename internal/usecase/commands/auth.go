package commands

import (
	"context"
	"errors"
	"log/slog"

	reqdto "timewise/internal/handler/dto/request"
	"timewise/internal/pkg/config"
	"timewise/internal/pkg/errs"
	"timewise/internal/pkg/jwt"
	"timewise/internal/pkg/password"
)

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrTokenGeneration    = errs.New("token generation failed")
	ErrAdminNotConfigured = errs.New("admin password hash is not usable")
)

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
}

type authCommandsImpl struct {
	passwordHash string
	jwtService   *jwt.Service
	logger       *slog.Logger
}

func NewAuthCommands(cfg config.Config, jwtService *jwt.Service, logger *slog.Logger) AuthCommands {
	return &authCommandsImpl{
		passwordHash: cfg.Admin.PasswordHash,
		jwtService:   jwtService,
		logger:       logger,
	}
}

func (a *authCommandsImpl) Login(_ context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	err := password.ComparePassword(a.passwordHash, req.Password)
	switch {
	case err == nil:
	case errors.Is(err, password.ErrComparisonFailed), errors.Is(err, password.ErrInvalidPassword):
		a.logger.Warn("admin login rejected")
		return nil, ErrInvalidCredentials
	default:
		return nil, errs.Mark(err, ErrAdminNotConfigured)
	}

	token, expiresAt, err := a.jwtService.GenerateAdminToken()
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}
