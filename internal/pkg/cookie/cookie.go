package cookie

import (
	"net/http"
	"strings"
	"time"

	"timewise/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	AdminTokenCookieName = "admin_token"
	// only the API reads the session
	cookiePath = "/api"
)

func SetAdminCookie(c *gin.Context, cfg config.CookieConfig, token string, expiry time.Duration) {
	http.SetCookie(c.Writer, adminCookie(cfg, token, int(expiry.Seconds()), time.Now().Add(expiry)))
}

func ClearAdminCookie(c *gin.Context, cfg config.CookieConfig) {
	http.SetCookie(c.Writer, adminCookie(cfg, "", -1, time.Unix(0, 0)))
}

func GetAdminToken(c *gin.Context) string {
	token, err := c.Cookie(AdminTokenCookieName)
	if err != nil {
		return ""
	}
	return token
}

func adminCookie(cfg config.CookieConfig, value string, maxAge int, expires time.Time) *http.Cookie {
	sameSite := parseSameSite(cfg.SameSite)
	return &http.Cookie{
		Name:     AdminTokenCookieName,
		Value:    value,
		Path:     cookiePath,
		Domain:   cfg.Domain,
		MaxAge:   maxAge,
		Expires:  expires.UTC(),
		HttpOnly: true,
		// browsers drop SameSite=None cookies that are not Secure
		Secure:   cfg.Secure || sameSite == http.SameSiteNoneMode,
		SameSite: sameSite,
	}
}

func parseSameSite(sameSite string) http.SameSite {
	switch strings.ToLower(sameSite) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
