package compliance

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"

	"worktime/internal/audit"
	auditstore "worktime/internal/audit/store"
	clockmodels "worktime/internal/clock/models"
	clockstore "worktime/internal/clock/store"
	"worktime/internal/compliance/lock"
	"worktime/internal/compliance/mocks"
	"worktime/internal/compliance/models"
	violationstore "worktime/internal/compliance/store"
	dirmodels "worktime/internal/directory/models"
	dirstore "worktime/internal/directory/store"
	"worktime/internal/rules"
	rulesmodels "worktime/internal/rules/models"
	rulesstore "worktime/internal/rules/store"
	id "worktime/pkg/domain"
	dErrors "worktime/pkg/domain-errors"
	"worktime/pkg/platform/sentinel"
	"worktime/pkg/requestcontext"
)

type ServiceSuite struct {
	suite.Suite
	ctx        context.Context
	directory  *dirstore.InMemory
	clock      *clockstore.InMemory
	rules      *rulesstore.InMemory
	violations *violationstore.InMemory
	audit      *auditstore.InMemory
	locker     *lock.InMemory
	service    *Service
	company    id.CompanyID
	date       id.Date
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctx = requestcontext.WithTime(context.Background(), time.Date(2024, 3, 5, 2, 0, 0, 0, time.UTC))
	s.directory = dirstore.NewInMemory()
	s.clock = clockstore.NewInMemory()
	s.rules = rulesstore.NewInMemory()
	s.violations = violationstore.NewInMemory()
	s.audit = auditstore.NewInMemory()
	s.locker = lock.NewInMemory()
	s.company = id.CompanyID(uuid.New())
	s.date = id.DateOf(2024, time.March, 4)
	s.Require().NoError(s.directory.CreateCompany(s.ctx, &dirmodels.Company{ID: s.company, Name: "Acme"}))
	s.service = s.newService()
}

func (s *ServiceSuite) newService(opts ...Option) *Service {
	base := []Option{
		WithLocker(s.locker),
		WithAuditPublisher(audit.NewPublisher(s.audit, nil)),
		WithWorkers(2),
	}
	return New(s.directory, s.clock, rules.NewResolver(s.rules, rules.DefaultCatalog()), s.violations, append(base, opts...)...)
}

func (s *ServiceSuite) hire() id.EmployeeID {
	e := &dirmodels.Employee{ID: id.EmployeeID(uuid.New()), CompanyID: s.company, FullName: "Worker", IsActive: true}
	s.Require().NoError(s.directory.CreateEmployee(s.ctx, e))
	return e.ID
}

func (s *ServiceSuite) shift(employee id.EmployeeID, from, to string) {
	for _, p := range []struct {
		typ clockmodels.EventType
		ts  string
	}{{clockmodels.EventEntry, from}, {clockmodels.EventExit, to}} {
		at, err := time.Parse(time.RFC3339, p.ts)
		s.Require().NoError(err)
		s.Require().NoError(s.clock.Append(s.ctx, &clockmodels.ClockEvent{
			ID: id.ClockEventID(uuid.New()), CompanyID: s.company, EmployeeID: employee, Type: p.typ, Timestamp: at,
		}))
	}
}

func (s *ServiceSuite) assign(limit float64, employee *id.EmployeeID, priority int) {
	v := &rulesmodels.RuleVersion{
		ID:        id.RuleVersionID(uuid.New()),
		CompanyID: s.company,
		Version:   1,
		Payload:   rulesmodels.Payload{rulesmodels.CodeMaxDailyHours: {Limit: limit, Severity: rulesmodels.SeverityCritical}},
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	s.Require().NoError(s.rules.CreateVersion(s.ctx, v))
	s.Require().NoError(s.rules.CreateAssignment(s.ctx, &rulesmodels.Assignment{
		ID:            id.AssignmentID(uuid.New()),
		CompanyID:     s.company,
		RuleVersionID: v.ID,
		EmployeeID:    employee,
		Priority:      priority,
		IsActive:      true,
		CreatedAt:     v.CreatedAt,
	}))
}

func (s *ServiceSuite) evaluate() *models.EvaluateResult {
	date := s.date
	result, err := s.service.Evaluate(s.ctx, models.EvaluateRequest{CompanyID: s.company, Date: &date})
	s.Require().NoError(err)
	return result
}

func (s *ServiceSuite) storedCodes() []models.Code {
	stored, err := s.violations.ListByCompanyDay(s.ctx, s.company, s.date)
	s.Require().NoError(err)
	codes := make([]models.Code, 0, len(stored))
	for _, v := range stored {
		codes = append(codes, v.Code)
	}
	return codes
}

func (s *ServiceSuite) TestLongShiftRaisesViolations() {
	emp := s.hire()
	s.shift(emp, "2024-03-04T08:00:00Z", "2024-03-04T18:00:00Z")

	result := s.evaluate()

	s.True(result.Success)
	s.Require().Len(result.Results, 1)
	r := result.Results[0]
	s.True(r.Success)
	s.Equal(10.0, r.WorkedHours)
	s.ElementsMatch([]models.Code{models.CodeBreakRequired, models.CodeMaxDailyHours}, r.Created)
	s.ElementsMatch([]models.Code{models.CodeBreakRequired, models.CodeMaxDailyHours}, s.storedCodes())
}

func (s *ServiceSuite) TestReEvaluationIsIdempotent() {
	emp := s.hire()
	s.shift(emp, "2024-03-04T08:00:00Z", "2024-03-04T18:00:00Z")

	s.evaluate()
	second := s.evaluate()

	r := second.Results[0]
	s.Empty(r.Created)
	s.Empty(r.Cleared)
	s.ElementsMatch([]models.Code{models.CodeBreakRequired, models.CodeMaxDailyHours}, r.Retained)
	s.Len(s.storedCodes(), 2, "one row per triggered rule")
}

func (s *ServiceSuite) TestRaisedLimitClearsStaleViolation() {
	emp := s.hire()
	s.shift(emp, "2024-03-04T08:00:00Z", "2024-03-04T18:00:00Z")
	s.evaluate()

	s.assign(11, nil, 100)
	result := s.evaluate()

	s.Equal([]models.Code{models.CodeMaxDailyHours}, result.Results[0].Cleared)
	s.Equal([]models.Code{models.CodeBreakRequired}, s.storedCodes())

	events, err := s.audit.ListByCompany(s.ctx, s.company, time.Time{})
	s.Require().NoError(err)
	var cleared int
	for _, e := range events {
		if e.Action == audit.ActionViolationCleared {
			cleared++
		}
	}
	s.Equal(1, cleared)
}

func (s *ServiceSuite) TestNumericPriorityBeatsScopeDuringEvaluation() {
	emp := s.hire()
	s.shift(emp, "2024-03-04T08:00:00Z", "2024-03-04T18:00:00Z")
	s.assign(9, &emp, 10)
	s.assign(11, nil, 100)

	result := s.evaluate()

	s.NotContains(result.Results[0].Created, models.CodeMaxDailyHours)
}

func (s *ServiceSuite) TestRestViolationAcrossMidnight() {
	emp := s.hire()
	s.shift(emp, "2024-03-03T15:00:00Z", "2024-03-03T23:00:00Z")
	s.shift(emp, "2024-03-04T08:00:00Z", "2024-03-04T12:00:00Z")

	result := s.evaluate()

	r := result.Results[0]
	s.Require().NotNil(r.RestHours)
	s.Equal(9.0, *r.RestHours)
	s.Contains(r.Created, models.CodeMinDailyRest)
}

func (s *ServiceSuite) TestMissingCompanyIsRejected() {
	_, err := s.service.Evaluate(s.ctx, models.EvaluateRequest{})
	s.True(dErrors.HasCode(err, dErrors.CodeBadRequest))
}

func (s *ServiceSuite) TestDateDefaultsToToday() {
	result, err := s.service.Evaluate(s.ctx, models.EvaluateRequest{CompanyID: s.company})
	s.Require().NoError(err)
	s.Equal(id.DateOf(2024, time.March, 5), result.Date)
}

func (s *ServiceSuite) TestDateDefaultUsesConfiguredZone() {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	s.Require().NoError(err)
	svc := s.newService(WithLocation(tokyo))

	ctx := requestcontext.WithTime(s.ctx, time.Date(2024, 3, 4, 20, 0, 0, 0, time.UTC))
	result, err := svc.Evaluate(ctx, models.EvaluateRequest{CompanyID: s.company})
	s.Require().NoError(err)
	s.Equal(id.DateOf(2024, time.March, 5), result.Date)
}

func (s *ServiceSuite) TestConcurrentRunIsRejected() {
	release, err := s.locker.Acquire(s.ctx, lockKey(s.company, s.date), time.Minute)
	s.Require().NoError(err)
	defer func() { _ = release(s.ctx) }()

	date := s.date
	_, err = s.service.Evaluate(s.ctx, models.EvaluateRequest{CompanyID: s.company, Date: &date})
	s.True(dErrors.HasCode(err, dErrors.CodeConflict))
}

func (s *ServiceSuite) TestLockIsReleasedAfterRun() {
	s.evaluate()
	s.evaluate()
}

func (s *ServiceSuite) TestSingleEmployeeFilter() {
	target := s.hire()
	s.hire()

	date := s.date
	result, err := s.service.Evaluate(s.ctx, models.EvaluateRequest{CompanyID: s.company, Date: &date, EmployeeID: &target})
	s.Require().NoError(err)
	s.Require().Len(result.Results, 1)
	s.Equal(target, result.Results[0].EmployeeID)
}

func (s *ServiceSuite) TestEmployeeOfAnotherCompanyIsNotFound() {
	other := id.CompanyID(uuid.New())
	s.Require().NoError(s.directory.CreateCompany(s.ctx, &dirmodels.Company{ID: other, Name: "Other"}))
	stranger := &dirmodels.Employee{ID: id.EmployeeID(uuid.New()), CompanyID: other, IsActive: true}
	s.Require().NoError(s.directory.CreateEmployee(s.ctx, stranger))

	_, err := s.service.Evaluate(s.ctx, models.EvaluateRequest{CompanyID: s.company, EmployeeID: &stranger.ID})
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *ServiceSuite) TestOneFailingEmployeeDoesNotAbortBatch() {
	broken := s.hire()
	healthy := s.hire()

	ctrl := gomock.NewController(s.T())
	reader := mocks.NewMockEventReader(ctrl)
	reader.EXPECT().ListEmployeeEvents(gomock.Any(), broken, gomock.Any(), gomock.Any()).
		Return(nil, errors.New("malformed event row"))
	reader.EXPECT().ListEmployeeEvents(gomock.Any(), healthy, gomock.Any(), gomock.Any()).
		Return(nil, nil)

	svc := New(s.directory, reader, rules.NewResolver(s.rules, rules.DefaultCatalog()), s.violations, WithLocker(s.locker))
	date := s.date
	result, err := svc.Evaluate(s.ctx, models.EvaluateRequest{CompanyID: s.company, Date: &date})
	s.Require().NoError(err)

	s.False(result.Success)
	byEmployee := map[id.EmployeeID]models.EmployeeResult{}
	for _, r := range result.Results {
		byEmployee[r.EmployeeID] = r
	}
	s.False(byEmployee[broken].Success)
	s.Contains(byEmployee[broken].Error, "malformed event row")
	s.True(byEmployee[healthy].Success)
}

func (s *ServiceSuite) TestPanicIsContainedToEmployee() {
	emp := s.hire()

	ctrl := gomock.NewController(s.T())
	reader := mocks.NewMockEventReader(ctrl)
	reader.EXPECT().ListEmployeeEvents(gomock.Any(), emp, gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, id.EmployeeID, time.Time, time.Time) ([]*clockmodels.ClockEvent, error) {
			panic("corrupt row")
		})

	svc := New(s.directory, reader, rules.NewResolver(s.rules, rules.DefaultCatalog()), s.violations, WithLocker(s.locker))
	date := s.date
	result, err := svc.Evaluate(s.ctx, models.EvaluateRequest{CompanyID: s.company, Date: &date})
	s.Require().NoError(err)
	s.False(result.Results[0].Success)
	s.Contains(result.Results[0].Error, "corrupt row")
}

func (s *ServiceSuite) TestRuleLoadFailureIsTopLevel() {
	ctrl := gomock.NewController(s.T())
	resolver := mocks.NewMockRuleResolver(ctrl)
	resolver.EXPECT().Load(gomock.Any(), s.company).Return(nil, errors.New("db down"))

	svc := New(s.directory, s.clock, resolver, s.violations, WithLocker(s.locker))
	_, err := svc.Evaluate(s.ctx, models.EvaluateRequest{CompanyID: s.company})
	s.True(dErrors.HasCode(err, dErrors.CodeInternal))
}

func (s *ServiceSuite) TestLockBackendFailureIsUnavailable() {
	ctrl := gomock.NewController(s.T())
	locker := mocks.NewMockLocker(ctrl)
	locker.EXPECT().Acquire(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("redis timeout"))

	svc := s.newService(WithLocker(locker))
	_, err := svc.Evaluate(s.ctx, models.EvaluateRequest{CompanyID: s.company})
	s.True(dErrors.HasCode(err, dErrors.CodeUnavailable))
}

func (s *ServiceSuite) TestLockConflictFromBackend() {
	ctrl := gomock.NewController(s.T())
	locker := mocks.NewMockLocker(ctrl)
	locker.EXPECT().Acquire(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, sentinel.ErrConflict)

	svc := s.newService(WithLocker(locker))
	_, err := svc.Evaluate(s.ctx, models.EvaluateRequest{CompanyID: s.company})
	s.True(dErrors.HasCode(err, dErrors.CodeConflict))
}

func (s *ServiceSuite) TestSinkReceivesRaisedChanges() {
	emp := s.hire()
	s.shift(emp, "2024-03-04T08:00:00Z", "2024-03-04T18:00:00Z")

	ctrl := gomock.NewController(s.T())
	sink := mocks.NewMockViolationSink(ctrl)
	sink.EXPECT().Publish(gomock.Any(), gomock.Len(2)).
		DoAndReturn(func(_ context.Context, changes []models.ViolationChange) error {
			for _, c := range changes {
				s.Equal(models.ChangeRaised, c.Kind)
				s.Equal(emp, c.EmployeeID)
			}
			return nil
		})

	s.service = s.newService(WithSink(sink))
	s.True(s.evaluate().Success)
}

func (s *ServiceSuite) TestSinkFailureDoesNotFailEvaluation() {
	emp := s.hire()
	s.shift(emp, "2024-03-04T08:00:00Z", "2024-03-04T18:00:00Z")

	ctrl := gomock.NewController(s.T())
	sink := mocks.NewMockViolationSink(ctrl)
	sink.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker unavailable"))

	s.service = s.newService(WithSink(sink))
	result := s.evaluate()
	s.True(result.Success)
	s.Len(s.storedCodes(), 2)
}

func (s *ServiceSuite) TestBoundedPoolLeavesNoGoroutines() {
	defer goleak.VerifyNone(s.T())

	for i := range 10 {
		emp := s.hire()
		s.shift(emp, fmt.Sprintf("2024-03-04T%02d:00:00Z", 6+i%3), "2024-03-04T18:00:00Z")
	}
	result := s.evaluate()
	s.True(result.Success)
	s.Len(result.Results, 10)
}
