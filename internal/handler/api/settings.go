package api

import (
	"net/http"

	reqdto "timewise/internal/handler/dto/request"
	resdto "timewise/internal/handler/dto/response"
	"timewise/internal/handler/httperr"
	"timewise/internal/usecase/commands"
	"timewise/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	cmds commands.PolicyCommands
	q    queries.PolicyQueries
}

func NewSettingsHandler(cmds commands.PolicyCommands, q queries.PolicyQueries) *SettingsHandler {
	return &SettingsHandler{cmds: cmds, q: q}
}

// @Summary Get scheduler settings
// @Description Current availability policy. Missing settings are created with defaults on first read.
// @Tags settings
// @Produce json
// @Success 200 {object} resdto.SettingsResponse
// @Failure 500 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /settings [get]
func (h *SettingsHandler) Get(c *gin.Context) {
	policy, err := h.q.GetCurrentPolicy(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPolicy(policy))
}

// @Summary Replace scheduler settings
// @Description Overwrite weekdays, disabled dates and time slots
// @Tags settings
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param request body reqdto.UpdateSettingsRequest true "New settings"
// @Success 200 {object} resdto.SettingsResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /admin/settings [put]
func (h *SettingsHandler) Update(c *gin.Context) {
	var req reqdto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	policy, err := h.cmds.ReplacePolicy(c.Request.Context(), req)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPolicy(policy))
}
