package middleware

import (
	"log/slog"
	"net/http"

	"timewise/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler writes the envelope of the last public error when a handler
// recorded one without writing a body itself.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		for i := len(c.Errors) - 1; i >= 0; i-- {
			ginErr := c.Errors[i]
			if !ginErr.IsType(gin.ErrorTypePublic) {
				continue
			}
			if resp, ok := ginErr.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}
		if len(c.Errors) == 0 {
			return
		}
		// private errors never leak their text
		resp := httperr.NewResponse(http.StatusInternalServerError, httperr.CodeInternal, "Internal server error", nil)
		c.JSON(resp.Status, resp)
	}
}

func CustomRecovery(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("recovered from panic",
					"panic", rec,
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
					"request_id", GetRequestID(c),
				)
				resp := httperr.NewResponse(http.StatusInternalServerError, httperr.CodeInternal, "Internal server error", nil)
				c.AbortWithStatusJSON(resp.Status, resp)
			}
		}()
		c.Next()
	}
}
