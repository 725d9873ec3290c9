package sheets

import (
	"errors"
	"net/http"
	"strings"

	"timewise/internal/infra"

	"google.golang.org/api/googleapi"
)

// classifyError maps Sheets API failures onto repository error kinds.
// A missing tab shows up as a 400 the API words as "Unable to parse range".
func classifyError(err error) infra.RepositoryErrorKind {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		msg := apiErr.Message
		switch {
		case apiErr.Code == http.StatusBadRequest && strings.Contains(msg, "Unable to parse range"):
			return infra.KindNotFound
		case apiErr.Code == http.StatusBadRequest && strings.Contains(msg, "already exists"):
			return infra.KindAlreadyExists
		case apiErr.Code == http.StatusUnauthorized, apiErr.Code == http.StatusForbidden:
			return infra.KindAccessDenied
		case apiErr.Code == http.StatusNotFound:
			// wrong spreadsheet id
			return infra.KindAccessDenied
		default:
			return infra.KindUnavailable
		}
	}
	// token exchange failures: key and account email do not match
	if strings.Contains(err.Error(), "invalid_grant") {
		return infra.KindAccessDenied
	}
	return infra.KindUnavailable
}
