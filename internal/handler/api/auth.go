package api

import (
	"net/http"
	"time"

	reqdto "timewise/internal/handler/dto/request"
	resdto "timewise/internal/handler/dto/response"
	"timewise/internal/handler/httperr"
	"timewise/internal/pkg/config"
	"timewise/internal/pkg/cookie"
	"timewise/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds commands.AuthCommands
	cfg  config.Config
}

func NewAuthHandler(cmds commands.AuthCommands, cfg config.Config) *AuthHandler {
	return &AuthHandler{cmds: cmds, cfg: cfg}
}

// @Summary Admin login
// @Description Exchanges the admin password for a session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), req)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	cookie.SetAdminCookie(c, h.cfg.Cookie, result.Token, time.Until(result.ExpiresAt))
	c.JSON(http.StatusOK, resdto.LoginResponse{ExpiresAt: result.ExpiresAt.Unix()})
}

// @Summary Admin logout
// @Tags auth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearAdminCookie(c, h.cfg.Cookie)
	c.Status(http.StatusNoContent)
}
