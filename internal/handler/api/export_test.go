//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"timewise/internal/handler/api"
	"timewise/internal/pkg/errs"
	"timewise/internal/usecase/queries"
	"timewise/tests/common/httptest"
	queriesmock "timewise/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestExportHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	setup := func(t *testing.T) (*gin.Engine, *queriesmock.MockExportQueries) {
		ctrl := gomock.NewController(t)
		q := queriesmock.NewMockExportQueries(ctrl)
		router := gin.New()
		router.GET("/admin/bookings/export", api.NewExportHandler(q).Export)
		return router, q
	}

	t.Run("success: streams the file as an attachment", func(t *testing.T) {
		router, q := setup(t)
		q.EXPECT().ExportMonth(gomock.Any(), 2025, time.July).Return(&queries.ExportFile{
			Name:        "bookings-2025-07.xlsx",
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Data:        []byte("PK\x03\x04"),
		}, nil)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/admin/bookings/export?year=2025&month=7", nil, "")

		require.Equal(t, http.StatusOK, rec.Code)
		httptest.AssertHeaders(t, rec, map[string]string{
			"Content-Disposition": `attachment; filename="bookings-2025-07.xlsx"`,
			"Content-Type":        "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		})
		assert.Equal(t, []byte("PK\x03\x04"), rec.Body.Bytes())
	})

	t.Run("error: month out of range", func(t *testing.T) {
		router, _ := setup(t)
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/admin/bookings/export?year=2025&month=13", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "year and month")
	})

	t.Run("error: storage unavailable", func(t *testing.T) {
		router, q := setup(t)
		q.EXPECT().ExportMonth(gomock.Any(), 2025, time.July).
			Return(nil, errs.Mark(errs.New("timeout"), queries.ErrStorageUnavailable))

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/admin/bookings/export?year=2025&month=7", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusServiceUnavailable, "temporarily unavailable")
	})
}
