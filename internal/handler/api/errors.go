package api

import (
	"net/http"

	"timewise/internal/handler/httperr"
	"timewise/internal/pkg/errs"
	"timewise/internal/usecase/commands"
	"timewise/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	target error
	status int
	code   string
	msg    string
	// echo the cause so the client can show which field is wrong
	withReason bool
}

// first match wins
var usecaseErrors = []errorMapping{
	{target: commands.ErrSlotFull, status: http.StatusConflict, code: httperr.CodeSlotFull, msg: "This time slot is fully booked"},
	{target: commands.ErrDayInPast, status: http.StatusUnprocessableEntity, code: httperr.CodeDayInPast, msg: "Bookings for past dates are not accepted"},
	{target: commands.ErrDayNotBookable, status: http.StatusUnprocessableEntity, code: httperr.CodeDayNotBookable, msg: "This day is not available for booking"},
	{target: commands.ErrSlotNotOffered, status: http.StatusUnprocessableEntity, code: httperr.CodeSlotNotOffered, msg: "This time slot is not offered"},
	{target: commands.ErrInvalidBooking, status: http.StatusBadRequest, code: httperr.CodeValidationFailed, msg: "Invalid booking details", withReason: true},
	{target: commands.ErrInvalidPolicy, status: http.StatusBadRequest, code: httperr.CodeValidationFailed, msg: "Invalid settings", withReason: true},
	{target: errs.ErrDomainValidation, status: http.StatusBadRequest, code: httperr.CodeValidationFailed, msg: "Invalid request", withReason: true},
	{target: commands.ErrInvalidCredentials, status: http.StatusUnauthorized, code: httperr.CodeUnauthorized, msg: "Invalid password"},
	{target: shared.ErrStorageUnavailable, status: http.StatusServiceUnavailable, code: httperr.CodeStorageDown, msg: "Storage is temporarily unavailable, please try again later"},
	{target: shared.ErrStorageAccessDenied, status: http.StatusInternalServerError, code: httperr.CodeInternal, msg: "Storage is not configured correctly"},
}

func abortWithUsecaseError(c *gin.Context, err error) {
	for _, m := range usecaseErrors {
		if !errs.Is(err, m.target) {
			continue
		}
		var detail any
		if m.withReason {
			detail = gin.H{"reason": rootCause(err)}
		}
		if m.status == http.StatusServiceUnavailable {
			c.Header("Retry-After", "30")
		}
		httperr.AbortWithCode(c, m.status, m.code, err, m.msg, detail)
		return
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}

// rootCause returns the innermost message, which is the validation message
// of the domain error without the wrapping context.
func rootCause(err error) string {
	return errs.UnwrapAll(err).Error()
}
