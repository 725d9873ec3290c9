//go:build e2e

package booking_test

import (
	"net/http"
	"testing"

	resdto "timewise/internal/handler/dto/response"
	"timewise/tests/common/builder"
	"timewise/tests/common/dbtest"
	"timewise/tests/common/httptest"
	"timewise/tests/common/testutil"
	"timewise/tests/e2e"

	"github.com/stretchr/testify/suite"
)

const (
	settingsURL = "/api/settings"
	bookingsURL = "/api/bookings"
)

type bookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(bookingSuite))
}

func (s *bookingSuite) TestSettingsBootstrap() {
	s.Run("first read creates the settings table with defaults", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, settingsURL, nil, "")

		var body resdto.SettingsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal([]int{1, 2, 3, 4, 5, 6}, body.AvailableWeekdays)
		s.Empty(body.DisabledDates)
		s.Len(body.AvailableTimeSlots, 12)

		stored := dbtest.SettingsRows(s.T(), s.DB, s.Config.Storage.SettingsTable)
		s.Equal(map[string]string{
			"availableWeekdays":  "1,2,3,4,5,6",
			"disabledDates":      "",
			"availableTimeSlots": "09:00,10:00,11:00,12:00,13:00,14:00,15:00,16:00,17:00,18:00,19:00,20:00",
		}, stored)
	})

	s.Run("a missing key is healed without touching the others", func() {
		httptest.PerformRequest(s.T(), s.Router, http.MethodGet, settingsURL, nil, "")
		_, err := s.DB.Exec(s.T().Context(),
			"UPDATE "+s.Config.Storage.SettingsTable+" SET setting_value = '2' WHERE setting_key = 'availableWeekdays'")
		s.Require().NoError(err)
		_, err = s.DB.Exec(s.T().Context(),
			"DELETE FROM "+s.Config.Storage.SettingsTable+" WHERE setting_key = 'availableTimeSlots'")
		s.Require().NoError(err)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, settingsURL, nil, "")

		var body resdto.SettingsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal([]int{2}, body.AvailableWeekdays)
		s.Len(body.AvailableTimeSlots, 12)

		stored := dbtest.SettingsRows(s.T(), s.DB, s.Config.Storage.SettingsTable)
		s.Equal("2", stored["availableWeekdays"])
		s.Contains(stored, "availableTimeSlots")
	})
}

func (s *bookingSuite) TestMonthAvailability() {
	s.Run("bookable days carry their remaining capacity", func() {
		dbtest.InsertBookings(s.T(), s.DB, "2025-07-01", "09:00", 5)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/availability?year=2025&month=7", nil, "")

		var body resdto.MonthAvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Remaining, 27, "July 2025 has 27 days from Monday to Saturday")
		s.Equal(12*20-5, body.Remaining["2025-07-01"])
		s.Equal(12*20, body.Remaining["2025-07-02"])
		s.NotContains(body.Remaining, "2025-07-06", "Sunday is not offered")
	})

	s.Run("days before the program start are absent", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/availability?year=2025&month=6", nil, "")

		var body resdto.MonthAvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(map[string]int{"2025-06-30": 240}, body.Remaining)
	})
}

func (s *bookingSuite) TestDaySlots() {
	s.Run("full slots are left out", func() {
		dbtest.InsertBookings(s.T(), s.DB, "2025-07-02", "09:00", 20)
		dbtest.InsertBookings(s.T(), s.DB, "2025-07-02", "10:00", 4)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/availability/2025-07-02/slots", nil, "")

		var body resdto.DayAvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Bookable)
		s.Require().Len(body.Slots, 11)
		s.Equal(resdto.SlotAvailabilityResponse{Time: "10:00", Remaining: 16}, *body.Slots[0])
	})
}

func (s *bookingSuite) TestCreateBooking() {
	reqBody := builder.NewBookingBuilder().WithDate("2025-07-02").BuildCreateRequestDTO()

	s.Run("success: booking is stored", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, reqBody, "")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.NotEmpty(body.ID)
		s.Equal(19, body.RemainingInTimeSlot)
		s.False(body.ConfirmationQueued, "queue is disabled in tests")
		s.Equal(1, dbtest.CountBookings(s.T(), s.DB, "2025-07-02", "10:00"))
	})

	s.Run("same day booking is accepted", func() {
		today := testutil.DtoMap(s.T(), reqBody, testutil.Field("date", "2025-07-01"))
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, today, "")
		s.Equal(http.StatusCreated, rec.Code, rec.Body.String())
	})

	s.Run("error: 409 when the slot is full", func() {
		dbtest.InsertBookings(s.T(), s.DB, "2025-07-02", "10:00", 20)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "fully booked")
		s.Equal(20, dbtest.CountBookings(s.T(), s.DB, "2025-07-02", "10:00"))
	})

	s.Run("error: 422 for days that cannot be booked", func() {
		testCases := []struct {
			name         string
			date         string
			expectInBody string
		}{
			{name: "yesterday", date: "2025-06-30", expectInBody: "past dates"},
			{name: "sunday", date: "2025-07-06", expectInBody: "not available"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, testutil.Field("date", tc.date))
				rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, tc.expectInBody)
			})
		}
	})

	s.Run("error: 400 with the reason for invalid details", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("phone", "555-CALL-NOW"))

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, body, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking details")
		s.Contains(rec.Body.String(), "phone number")
		s.Zero(dbtest.CountBookings(s.T(), s.DB, "2025-07-02", "10:00"))
	})
}
