package httperr

import (
	"net/http"

	"timewise/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// Error codes clients can branch on without parsing messages.
const (
	CodeInvalidRequest   = "invalid_request"
	CodeUnauthorized     = "unauthorized"
	CodeSlotFull         = "slot_full"
	CodeDayInPast        = "day_in_past"
	CodeDayNotBookable   = "day_not_bookable"
	CodeSlotNotOffered   = "slot_not_offered"
	CodeRateLimited      = "rate_limited"
	CodeStorageDown      = "storage_unavailable"
	CodeInternal         = "internal"
	CodeValidationFailed = "validation_failed"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

func NewResponse(status int, code, msg string, detail any) Response {
	resp := Response{Status: status, Detail: detail}
	resp.Error.Code = code
	resp.Error.Message = msg
	return resp
}

// AbortWithError picks the code from the status. See AbortWithCode.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	AbortWithCode(c, status, CodeForStatus(status), err, msg, detail)
}

// AbortWithCode keeps the original error on the context for the logging
// middleware. A nil err is replaced by one carrying msg.
func AbortWithCode(c *gin.Context, status int, code string, err error, msg string, detail any) {
	if err == nil {
		err = errs.New(msg)
	}

	resp := NewResponse(status, code, msg, detail)
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

func CodeForStatus(status int) string {
	switch {
	case status == http.StatusUnauthorized:
		return CodeUnauthorized
	case status == http.StatusTooManyRequests:
		return CodeRateLimited
	case status == http.StatusServiceUnavailable:
		return CodeStorageDown
	case status >= 500:
		return CodeInternal
	default:
		return CodeInvalidRequest
	}
}
