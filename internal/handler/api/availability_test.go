//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"timewise/internal/domain/availability"
	"timewise/internal/handler/api"
	resdto "timewise/internal/handler/dto/response"
	"timewise/internal/pkg/errs"
	"timewise/internal/usecase/queries"
	"timewise/tests/common/httptest"
	queriesmock "timewise/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockPolicies *queriesmock.MockPolicyQueries
	mockQueries  *queriesmock.MockAvailabilityQueries
	handler      *api.AvailabilityHandler
	policy       availability.Policy
}

func (s *AvailabilityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockPolicies = queriesmock.NewMockPolicyQueries(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.handler = api.NewAvailabilityHandler(s.mockPolicies, s.mockQueries)

	july4, err := availability.ParseDay("2025-07-04")
	s.Require().NoError(err)
	s.policy, err = availability.NewPolicy(
		[]time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday},
		[]availability.Day{july4},
		[]string{"09:00", "10:00"},
	)
	s.Require().NoError(err)

	s.router.GET("/availability", s.handler.Month)
	s.router.GET("/availability/:date/slots", s.handler.Day)
}

func (s *AvailabilityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}

func (s *AvailabilityHandlerTestSuite) TestMonth() {
	s.Run("success: returns remaining capacity keyed by date", func() {
		july1, _ := availability.ParseDay("2025-07-01")
		july2, _ := availability.ParseDay("2025-07-02")
		s.mockPolicies.EXPECT().GetCurrentPolicy(gomock.Any()).Return(s.policy, nil).Times(1)
		s.mockQueries.EXPECT().GetAvailableSlotsForMonth(gomock.Any(), 2025, time.July, s.policy).
			Return(map[availability.Day]int{july1: 40, july2: 0}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability?year=2025&month=7", nil, "")

		var body resdto.MonthAvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(2025, body.Year)
		s.Equal(7, body.Month)
		s.Equal(map[string]int{"2025-07-01": 40, "2025-07-02": 0}, body.Remaining)
	})

	s.Run("error: 400 Bad Request on invalid query", func() {
		for _, q := range []string{"", "?year=2025", "?month=7", "?year=2025&month=13", "?year=2025&month=0", "?year=abc&month=7"} {
			s.Run(q, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability"+q, nil, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "year and month")
			})
		}
	})

	s.Run("error: 503 when the policy cannot be loaded", func() {
		s.mockPolicies.EXPECT().GetCurrentPolicy(gomock.Any()).
			Return(availability.Policy{}, errs.Mark(errs.New("timeout"), queries.ErrStorageUnavailable)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability?year=2025&month=7", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "temporarily unavailable")
	})
}

func (s *AvailabilityHandlerTestSuite) TestDay() {
	s.Run("success: open day lists slots with room", func() {
		day, _ := availability.ParseDay("2025-07-01")
		s.mockPolicies.EXPECT().GetCurrentPolicy(gomock.Any()).Return(s.policy, nil).Times(1)
		s.mockQueries.EXPECT().GetBookableTimeSlotsForDay(gomock.Any(), day, s.policy).
			Return([]queries.SlotAvailability{{Slot: "09:00", Remaining: 3}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability/2025-07-01/slots", nil, "")

		var body resdto.DayAvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("2025-07-01", body.Date)
		s.True(body.Bookable)
		s.Require().Len(body.Slots, 1)
		s.Equal(resdto.SlotAvailabilityResponse{Time: "09:00", Remaining: 3}, *body.Slots[0])
	})

	s.Run("success: disabled day is reported as not bookable", func() {
		day, _ := availability.ParseDay("2025-07-04")
		s.mockPolicies.EXPECT().GetCurrentPolicy(gomock.Any()).Return(s.policy, nil).Times(1)
		s.mockQueries.EXPECT().GetBookableTimeSlotsForDay(gomock.Any(), day, s.policy).
			Return([]queries.SlotAvailability{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability/2025-07-04/slots", nil, "")

		var body resdto.DayAvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.Bookable)
		s.Empty(body.Slots)
	})

	s.Run("error: 400 Bad Request on malformed date", func() {
		for _, d := range []string{"2025-02-30", "07-01-2025", "today"} {
			s.Run(d, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability/"+d+"/slots", nil, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date")
			})
		}
	})
}
