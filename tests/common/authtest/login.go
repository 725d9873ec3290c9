//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"timewise/internal/handler/dto/request"
	"timewise/internal/pkg/cookie"
	"timewise/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// LoginAdmin returns the session cookie issued for password.
func LoginAdmin(t *testing.T, router *gin.Engine, password string) *http.Cookie {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	sessionCookie := httptest.ExtractCookie(w, cookie.AdminTokenCookieName)
	require.NotNil(t, sessionCookie, "admin session cookie not set")
	require.NotEmpty(t, sessionCookie.Value, "admin session cookie is empty")

	return sessionCookie
}

func LogoutAdmin(t *testing.T, router *gin.Engine, cookies []*http.Cookie) *http.Cookie {
	t.Helper()

	w := httptest.PerformRequestWithCookies(t, router, http.MethodPost, "/api/auth/logout", nil, cookies, "")
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
	return httptest.ExtractCookie(w, cookie.AdminTokenCookieName)
}
