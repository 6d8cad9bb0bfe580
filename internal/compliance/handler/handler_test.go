package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"worktime/internal/compliance/handler/mocks"
	"worktime/internal/compliance/models"
	rulesmodels "worktime/internal/rules/models"
	id "worktime/pkg/domain"
	dErrors "worktime/pkg/domain-errors"
	"worktime/pkg/testutil"
)

type HandlerSuite struct {
	suite.Suite
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func newTestRouter(t *testing.T) (http.Handler, *mocks.MockService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockService(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	r := chi.NewRouter()
	New(mockService, logger).Register(r)
	return r, mockService
}

func post(t *testing.T, router http.Handler, body any) *httptest.ResponseRecorder {
	t.Helper()
	req := testutil.NewJSONRequest(t, http.MethodPost, "/compliance/evaluate", body)
	req = testutil.WithRequestTime(req, time.Date(2024, time.March, 5, 2, 0, 0, 0, time.UTC))
	return testutil.DoRequest(router, req)
}

func (s *HandlerSuite) TestEvaluateReturnsPerEmployeeResults() {
	router, svc := newTestRouter(s.T())
	companyID := id.CompanyID(uuid.New())
	okEmployee := id.EmployeeID(uuid.New())
	failedEmployee := id.EmployeeID(uuid.New())
	date := id.DateOf(2024, time.March, 4)

	svc.EXPECT().Evaluate(gomock.Any(), models.EvaluateRequest{CompanyID: companyID, Date: &date}).
		Return(&models.EvaluateResult{
			Success:   false,
			CompanyID: companyID,
			Date:      date,
			Results: []models.EmployeeResult{
				{
					EmployeeID:  okEmployee,
					Success:     true,
					WorkedHours: 10,
					Violations: []models.Violation{{
						Code: models.CodeMaxDailyHours, Severity: rulesmodels.SeverityCritical, Detected: 10, Threshold: 9,
					}},
					Created: []models.Code{models.CodeMaxDailyHours},
				},
				{EmployeeID: failedEmployee, Success: false, Error: "load clock events: timeout"},
			},
		}, nil)

	w := post(s.T(), router, map[string]string{"company_id": companyID.String(), "date": "2024-03-04"})

	s.Equal(http.StatusOK, w.Code)
	var resp EvaluateResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.False(resp.Success)
	s.Equal("2024-03-04", resp.Date)
	s.Require().Len(resp.Results, 2)
	s.Equal(okEmployee.String(), resp.Results[0].EmployeeID)
	s.Require().Len(resp.Results[0].Violations, 1)
	s.Equal("MAX_DAILY_HOURS", resp.Results[0].Violations[0].RuleCode)
	s.Equal("critical", resp.Results[0].Violations[0].Severity)
	s.Equal(10.0, resp.Results[0].Violations[0].DetectedValue)
	s.Equal(9.0, resp.Results[0].Violations[0].Threshold)
	s.False(resp.Results[1].Success)
	s.Equal("load clock events: timeout", resp.Results[1].Error)
}

func (s *HandlerSuite) TestMissingCompanyIsBadRequest() {
	router, _ := newTestRouter(s.T())

	w := post(s.T(), router, map[string]string{"date": "2024-03-04"})

	s.Equal(http.StatusBadRequest, w.Code)
	var resp map[string]string
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("bad_request", resp["error"])
}

func (s *HandlerSuite) TestMalformedInputsAreRejected() {
	router, _ := newTestRouter(s.T())
	companyID := uuid.NewString()

	cases := map[string]map[string]string{
		"bad company":  {"company_id": "nope"},
		"bad date":     {"company_id": companyID, "date": "04/03/2024"},
		"bad employee": {"company_id": companyID, "employee_id": "x"},
	}
	for name, body := range cases {
		s.Run(name, func() {
			w := post(s.T(), router, body)
			assert.Equal(s.T(), http.StatusBadRequest, w.Code)
		})
	}
}

func (s *HandlerSuite) TestConflictIsSurfaced() {
	router, svc := newTestRouter(s.T())
	svc.EXPECT().Evaluate(gomock.Any(), gomock.Any()).
		Return(nil, dErrors.New(dErrors.CodeConflict, "an evaluation for this company and date is already running"))

	w := post(s.T(), router, map[string]string{"company_id": uuid.NewString()})

	s.Equal(http.StatusConflict, w.Code)
}

func (s *HandlerSuite) TestUnexpectedErrorIsGeneric() {
	router, svc := newTestRouter(s.T())
	svc.EXPECT().Evaluate(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset by peer"))

	w := post(s.T(), router, map[string]string{"company_id": uuid.NewString()})

	s.Equal(http.StatusInternalServerError, w.Code)
	s.NotContains(w.Body.String(), "connection reset")
}
