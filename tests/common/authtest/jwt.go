//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"timewise/internal/pkg/clock"
	"timewise/internal/pkg/config"
	"timewise/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

// GenerateToken signs an admin token valid at now.
func (h *JWTHelper) GenerateToken(t *testing.T, now time.Time) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	token, _, err := jwt.NewService(h.cfg.Secret, duration, clock.NewMockClock(now)).GenerateAdminToken()
	require.NoError(t, err)
	return token
}

// CreateExpiredToken signs an admin token that expired one minute before now.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, now time.Time) string {
	t.Helper()
	token, _, err := jwt.NewService(h.cfg.Secret, time.Hour, clock.NewMockClock(now.Add(-61*time.Minute))).GenerateAdminToken()
	require.NoError(t, err)
	return token
}
