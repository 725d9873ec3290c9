//go:build unit || e2e

package httptest

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// AssertHeaders compares only the listed headers; an empty value asserts absence.
func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for name, want := range expected {
		got := w.Header().Get(name)
		if want == "" {
			assert.Empty(t, got, "header %s should not be set", name)
			continue
		}
		assert.Equal(t, want, got, "header %s mismatch", name)
	}
}
