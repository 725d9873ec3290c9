//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"timewise/internal/domain/availability"
	"timewise/internal/handler/api"
	reqdto "timewise/internal/handler/dto/request"
	resdto "timewise/internal/handler/dto/response"
	"timewise/internal/pkg/errs"
	"timewise/internal/usecase/commands"
	"timewise/tests/common/httptest"
	"timewise/tests/common/testutil"
	commandsmock "timewise/tests/mock/commands"
	queriesmock "timewise/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SettingsHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPolicyCommands
	mockQueries  *queriesmock.MockPolicyQueries
	handler      *api.SettingsHandler
}

func (s *SettingsHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPolicyCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockPolicyQueries(s.mockCtrl)
	s.handler = api.NewSettingsHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/settings", s.handler.Get)
	s.router.PUT("/admin/settings", s.handler.Update)
}

func (s *SettingsHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSettingsHandlerSuite(t *testing.T) {
	suite.Run(t, new(SettingsHandlerTestSuite))
}

func (s *SettingsHandlerTestSuite) TestGet() {
	s.Run("success: default policy is rendered in wire format", func() {
		s.mockQueries.EXPECT().GetCurrentPolicy(gomock.Any()).Return(availability.DefaultPolicy(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/settings", nil, "")

		var body resdto.SettingsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal([]int{1, 2, 3, 4, 5, 6}, body.AvailableWeekdays)
		s.Equal([]string{}, body.DisabledDates)
		s.Equal(availability.MasterTimeSlots, body.AvailableTimeSlots)
	})

	s.Run("error: access denied is a server error", func() {
		s.mockQueries.EXPECT().GetCurrentPolicy(gomock.Any()).
			Return(availability.Policy{}, errs.Mark(errs.New("403"), commands.ErrStorageAccessDenied)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/settings", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "not configured")
	})
}

func (s *SettingsHandlerTestSuite) TestUpdate() {
	url := "/admin/settings"
	reqBody := reqdto.UpdateSettingsRequest{
		AvailableWeekdays:  []int{1, 3},
		DisabledDates:      []string{"2025-07-04"},
		AvailableTimeSlots: []string{"09:00", "14:00"},
	}

	s.Run("success: returns the stored policy", func() {
		july4, _ := availability.ParseDay("2025-07-04")
		stored, err := availability.NewPolicy([]time.Weekday{time.Monday, time.Wednesday}, []availability.Day{july4}, []string{"09:00", "14:00"})
		s.Require().NoError(err)
		s.mockCommands.EXPECT().ReplacePolicy(gomock.Any(), reqBody).Return(stored, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")

		var body resdto.SettingsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal([]int{1, 3}, body.AvailableWeekdays)
		s.Equal([]string{"2025-07-04"}, body.DisabledDates)
		s.Equal([]string{"09:00", "14:00"}, body.AvailableTimeSlots)
	})

	s.Run("error: 400 Bad Request when a field is missing", func() {
		for _, field := range []string{"availableWeekdays", "disabledDates", "availableTimeSlots"} {
			s.Run(field, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field(field, nil))
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: rejected policy reports the reason", func() {
		s.mockCommands.EXPECT().ReplacePolicy(gomock.Any(), gomock.Any()).
			Return(availability.Policy{}, errs.Mark(commands.ErrEmptyWeekdays, commands.ErrInvalidPolicy)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid settings")
		s.Contains(rec.Body.String(), "at least one weekday must be available")
	})
}
