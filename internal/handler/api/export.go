package api

import (
	"net/http"
	"time"

	reqdto "timewise/internal/handler/dto/request"
	"timewise/internal/handler/httperr"
	"timewise/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ExportHandler struct {
	q queries.ExportQueries
}

func NewExportHandler(q queries.ExportQueries) *ExportHandler {
	return &ExportHandler{q: q}
}

// @Summary Download a month of bookings
// @Tags admin
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security CookieAuth
// @Param year query int true "Year"
// @Param month query int true "Month (1-12)"
// @Success 200 {file} file
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /admin/bookings/export [get]
func (h *ExportHandler) Export(c *gin.Context) {
	var query reqdto.MonthQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "year and month are required", nil)
		return
	}
	file, err := h.q.ExportMonth(c.Request.Context(), query.Year, time.Month(query.Month))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+file.Name+`"`)
	c.Data(http.StatusOK, file.ContentType, file.Data)
}
