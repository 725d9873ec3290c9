//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// errorBody mirrors httperr.Response.
type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Detail struct {
		Reason string `json:"reason"`
	} `json:"detail"`
}

func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, targetStruct any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String()) {
		return
	}
	if targetStruct == nil || w.Code >= 300 {
		return
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), targetStruct), "Failed to decode response JSON: %s", w.Body.String())
}

// AssertErrorResponse checks the status and that the public message contains
// expectedErrorMsg. An empty expectedErrorMsg only checks the envelope.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedErrorMsg string) {
	t.Helper()
	body := decodeError(t, w, expectedStatus)
	if expectedErrorMsg != "" {
		assert.Contains(t, body.Error.Message, expectedErrorMsg, "error message mismatch")
	}
}

// AssertErrorReason checks the validation reason echoed in the detail field.
func AssertErrorReason(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedReason string) {
	t.Helper()
	body := decodeError(t, w, expectedStatus)
	assert.Contains(t, body.Detail.Reason, expectedReason, "error reason mismatch")
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int) errorBody {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String())

	var body errorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "Failed to decode error response JSON: %s", w.Body.String())
	assert.NotEmpty(t, body.Error.Code, "error code missing")
	return body
}
