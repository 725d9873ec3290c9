//go:build e2e

package admin_test

import (
	"bytes"
	"net/http"
	"testing"
	"time"

	reqdto "timewise/internal/handler/dto/request"
	resdto "timewise/internal/handler/dto/response"
	"timewise/tests/common/authtest"
	"timewise/tests/common/builder"
	"timewise/tests/common/dbtest"
	"timewise/tests/common/httptest"
	"timewise/tests/e2e"

	"github.com/stretchr/testify/suite"
	"github.com/xuri/excelize/v2"
)

const (
	loginURL    = "/api/auth/login"
	settingsURL = "/api/admin/settings"
	exportURL   = "/api/admin/bookings/export"
)

type adminSuite struct {
	e2e.SharedSuite
	jwtHelper *authtest.JWTHelper
}

func TestAdminSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(adminSuite))
}

func (s *adminSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *adminSuite) TestLogin() {
	s.Run("correct password issues a session cookie", func() {
		c := authtest.LoginAdmin(s.T(), s.Router, e2e.AdminPassword)
		s.True(c.HttpOnly)
	})

	s.Run("wrong password is rejected", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL, reqdto.LoginRequest{Password: "nope"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid password")
	})

	s.Run("logout clears the cookie", func() {
		c := authtest.LoginAdmin(s.T(), s.Router, e2e.AdminPassword)
		cleared := authtest.LogoutAdmin(s.T(), s.Router, []*http.Cookie{c})
		s.Require().NotNil(cleared)
		s.Empty(cleared.Value)
	})
}

func (s *adminSuite) TestUpdateSettings() {
	update := reqdto.UpdateSettingsRequest{
		AvailableWeekdays:  []int{1, 2, 3},
		DisabledDates:      []string{"2025-07-02"},
		AvailableTimeSlots: []string{"14:00", "09:00"},
	}

	s.Run("requires an admin session", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, settingsURL, update, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Admin session required")
	})

	s.Run("expired token is rejected", func() {
		token := s.jwtHelper.CreateExpiredToken(s.T(), e2e.Now)
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, settingsURL, update, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired session")
	})

	s.Run("new policy drives availability and booking", func() {
		c := authtest.LoginAdmin(s.T(), s.Router, e2e.AdminPassword)

		rec := httptest.PerformRequestWithCookies(s.T(), s.Router, http.MethodPut, settingsURL, update, []*http.Cookie{c}, "")
		var stored resdto.SettingsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &stored)
		s.Equal([]string{"14:00", "09:00"}, stored.AvailableTimeSlots)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/settings", nil, "")
		var read resdto.SettingsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &read)
		s.Equal(stored, read)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/availability?year=2025&month=7", nil, "")
		var month resdto.MonthAvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &month)
		s.Equal(40, month.Remaining["2025-07-01"])
		s.NotContains(month.Remaining, "2025-07-02", "disabled date")
		s.NotContains(month.Remaining, "2025-07-03", "thursday is no longer offered")

		notOffered := builder.NewBookingBuilder().WithDate("2025-07-01").WithTimeSlot("10:00").BuildCreateRequestDTO()
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/bookings", notOffered, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "not offered")
	})

	s.Run("empty weekdays are rejected", func() {
		token := s.jwtHelper.GenerateToken(s.T(), e2e.Now)
		empty := update
		empty.AvailableWeekdays = []int{}

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, settingsURL, empty, token)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid settings")
		s.Contains(rec.Body.String(), "at least one weekday")
	})
}

func (s *adminSuite) TestExport() {
	s.Run("month bookings are exported as a workbook", func() {
		dbtest.InsertBookings(s.T(), s.DB, "2025-07-01", "09:00", 2)
		dbtest.InsertBookings(s.T(), s.DB, "2025-08-01", "09:00", 1)
		token := s.jwtHelper.GenerateToken(s.T(), e2e.Now)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, exportURL+"?year=2025&month=7", nil, token)

		s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
		s.Contains(rec.Header().Get("Content-Disposition"), ".xlsx")

		f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
		s.Require().NoError(err)
		defer f.Close()
		rows, err := f.GetRows(f.GetSheetName(0))
		s.Require().NoError(err)
		s.Len(rows, 3, "header plus two July bookings")
	})

	s.Run("session expires with the clock", func() {
		token := s.jwtHelper.GenerateToken(s.T(), e2e.Now)
		s.Clock.Add(8 * 24 * time.Hour)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, exportURL+"?year=2025&month=7", nil, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired session")
	})
}
