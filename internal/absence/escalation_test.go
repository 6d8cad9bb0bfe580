package absence_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"worktime/internal/absence"
	"worktime/internal/absence/mocks"
	"worktime/internal/absence/models"
	absencestore "worktime/internal/absence/store"
	"worktime/internal/audit"
	auditstore "worktime/internal/audit/store"
	dirmodels "worktime/internal/directory/models"
	dirstore "worktime/internal/directory/store"
	id "worktime/pkg/domain"
	dErrors "worktime/pkg/domain-errors"
	"worktime/pkg/requestcontext"
)

func TestNextEscalation(t *testing.T) {
	tests := []struct {
		flow    models.ApprovalFlow
		current int
		step    int
		role    string
		ok      bool
	}{
		{models.FlowManager, 0, 1, models.RoleManager, true},
		{models.FlowManager, 1, 2, models.RoleAdmin, true},
		{models.FlowManager, 2, 0, "", false},
		{"", 0, 1, models.RoleManager, true},
		{models.FlowAdmin, 0, 1, models.RoleAdmin, true},
		{models.FlowAdmin, 1, 0, "", false},
		{models.FlowMultiLevel, 0, 1, models.RoleManager, true},
		{models.FlowMultiLevel, 1, 2, models.RoleAdmin, true},
		{models.FlowMultiLevel, 2, 3, models.RoleSuperAdmin, true},
		{models.FlowMultiLevel, 3, 0, "", false},
	}
	for _, tt := range tests {
		step, role, ok := absence.NextEscalation(tt.flow, tt.current)
		assert.Equal(t, tt.ok, ok, "%s from %d", tt.flow, tt.current)
		assert.Equal(t, tt.step, step, "%s from %d", tt.flow, tt.current)
		assert.Equal(t, tt.role, role, "%s from %d", tt.flow, tt.current)
	}
}

func TestSLAHoursResolution(t *testing.T) {
	eight := 8
	e := absence.NewEscalator(nil, nil, nil, absence.WithSLA(36, map[string]int{"sick_leave": 12}))

	assert.Equal(t, 8, e.SLAHours(models.AbsenceType{Category: "sick_leave", SLAHours: &eight}))
	assert.Equal(t, 12, e.SLAHours(models.AbsenceType{Category: "sick_leave"}))
	assert.Equal(t, 36, e.SLAHours(models.AbsenceType{Category: "vacation"}))
	assert.Equal(t, absence.DefaultSLAHours, absence.NewEscalator(nil, nil, nil).SLAHours(models.AbsenceType{}))
}

type EscalationSuite struct {
	suite.Suite
	ctx       context.Context
	now       time.Time
	directory *dirstore.InMemory
	store     *absencestore.InMemory
	audit     *auditstore.InMemory
	company   *dirmodels.Company
	manager   *dirmodels.Employee
	employee  *dirmodels.Employee
}

func TestEscalationSuite(t *testing.T) {
	suite.Run(t, new(EscalationSuite))
}

func (s *EscalationSuite) SetupTest() {
	s.now = time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	s.ctx = requestcontext.WithTime(context.Background(), s.now)
	s.directory = dirstore.NewInMemory()
	s.store = absencestore.NewInMemory()
	s.audit = auditstore.NewInMemory()

	s.company = &dirmodels.Company{ID: id.CompanyID(uuid.New()), Name: "Acme", Timezone: "UTC"}
	s.Require().NoError(s.directory.CreateCompany(s.ctx, s.company))
	s.manager = &dirmodels.Employee{ID: id.EmployeeID(uuid.New()), CompanyID: s.company.ID, FullName: "Marta Ruiz", IsActive: true}
	s.Require().NoError(s.directory.CreateEmployee(s.ctx, s.manager))
	s.employee = &dirmodels.Employee{ID: id.EmployeeID(uuid.New()), CompanyID: s.company.ID, FullName: "Luis Pérez", ManagerID: &s.manager.ID, IsActive: true}
	s.Require().NoError(s.directory.CreateEmployee(s.ctx, s.employee))
}

func (s *EscalationSuite) absenceType(flow models.ApprovalFlow, category string, sla *int) *models.AbsenceType {
	t := &models.AbsenceType{ID: uuid.New(), CompanyID: s.company.ID, Name: "Leave", Category: category, SLAHours: sla, ApprovalFlow: flow}
	s.Require().NoError(s.store.SaveAbsenceType(s.ctx, t))
	return t
}

func (s *EscalationSuite) pendingRequest(t *models.AbsenceType, age time.Duration) id.AbsenceRequestID {
	r := &models.Request{
		ID:                  id.AbsenceRequestID(uuid.New()),
		CompanyID:           s.company.ID,
		EmployeeID:          s.employee.ID,
		AbsenceTypeID:       t.ID,
		StartDate:           id.DateOf(2024, 7, 1),
		EndDate:             id.DateOf(2024, 7, 5),
		TotalDays:           5,
		Status:              models.StatusPending,
		CurrentApprovalStep: 1,
		CreatedAt:           s.now.Add(-age),
	}
	s.Require().NoError(s.store.SaveRequest(s.ctx, r))
	return r.ID
}

func (s *EscalationSuite) escalator(opts ...absence.Option) *absence.Escalator {
	opts = append([]absence.Option{absence.WithAuditPublisher(audit.NewPublisher(s.audit, nil))}, opts...)
	return absence.NewEscalator(s.directory, s.store, s.store, opts...)
}

func (s *EscalationSuite) TestManagerFlowEscalatesStepByStep() {
	requestID := s.pendingRequest(s.absenceType(models.FlowManager, "vacation", nil), 50*time.Hour)
	e := s.escalator()

	first, err := e.Run(s.ctx)
	s.Require().NoError(err)
	s.True(first.Success)
	s.Equal(1, first.Processed)
	s.Equal([]id.AbsenceRequestID{requestID}, first.Escalated)

	approvals := s.store.Approvals(requestID)
	s.Require().Len(approvals, 1)
	s.Equal(1, approvals[0].Step)
	s.Equal(models.RoleManager, approvals[0].ApproverRole)
	s.Equal(models.ApprovalActionEscalate, approvals[0].Action)
	s.Contains(approvals[0].Comment, "50.0h > 48h")

	notes := s.store.Notifications()
	s.Require().Len(notes, 1)
	s.Equal(models.NotificationSLAEscalation, notes[0].Kind)
	s.Equal(models.RoleManager, notes[0].RecipientRole)
	s.Require().NotNil(notes[0].RecipientID)
	s.Equal(s.manager.ID, *notes[0].RecipientID)

	second, err := e.Run(s.ctx)
	s.Require().NoError(err)
	s.Equal([]id.AbsenceRequestID{requestID}, second.Escalated)
	approvals = s.store.Approvals(requestID)
	s.Require().Len(approvals, 2)
	s.Equal(models.RoleAdmin, approvals[1].ApproverRole)

	req, err := s.store.GetRequest(s.ctx, requestID)
	s.Require().NoError(err)
	s.Equal(2, req.CurrentApprovalStep)

	third, err := e.Run(s.ctx)
	s.Require().NoError(err)
	s.Empty(third.Escalated)
	s.Len(s.store.Approvals(requestID), 2)

	var escalations int
	for _, ev := range s.audit.All() {
		if ev.Action == audit.ActionAbsenceEscalated {
			escalations++
			s.Equal("system", ev.Actor)
		}
	}
	s.Equal(2, escalations)
}

func (s *EscalationSuite) TestMultiLevelFlowReachesSuperAdmin() {
	sla := 8
	requestID := s.pendingRequest(s.absenceType(models.FlowMultiLevel, "vacation", &sla), 9*time.Hour)
	e := s.escalator()

	for i := 0; i < 4; i++ {
		_, err := e.Run(s.ctx)
		s.Require().NoError(err)
	}
	approvals := s.store.Approvals(requestID)
	s.Require().Len(approvals, 3)
	s.Equal(models.RoleSuperAdmin, approvals[2].ApproverRole)
	s.Equal(3, approvals[2].Step)
}

func (s *EscalationSuite) TestWarningIsSentOncePerQuarter() {
	requestID := s.pendingRequest(s.absenceType(models.FlowAdmin, "vacation", nil), 40*time.Hour)
	e := s.escalator()

	first, err := e.Run(s.ctx)
	s.Require().NoError(err)
	s.Equal([]id.AbsenceRequestID{requestID}, first.Warned)
	s.Empty(first.Escalated)

	notes := s.store.Notifications()
	s.Require().Len(notes, 1)
	s.Equal(models.NotificationSLAWarning, notes[0].Kind)
	s.Equal(absence.ReminderKey(requestID, 3), notes[0].DedupeKey)
	s.Contains(notes[0].Body, "8.0h left")

	second, err := e.Run(s.ctx)
	s.Require().NoError(err)
	s.Empty(second.Warned)
	s.Len(s.store.Notifications(), 1)
	s.Empty(s.store.Approvals(requestID))
}

func (s *EscalationSuite) TestFreshRequestsAreLeftAlone() {
	s.pendingRequest(s.absenceType(models.FlowManager, "vacation", nil), 10*time.Hour)

	res, err := s.escalator().Run(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, res.Processed)
	s.Empty(res.Escalated)
	s.Empty(res.Warned)
	s.Empty(s.store.Notifications())
}

func (s *EscalationSuite) TestCategorySLAOverride() {
	requestID := s.pendingRequest(s.absenceType(models.FlowAdmin, "sick_leave", nil), 9*time.Hour)

	res, err := s.escalator(absence.WithSLA(0, map[string]int{"sick_leave": 8})).Run(s.ctx)
	s.Require().NoError(err)
	s.Equal([]id.AbsenceRequestID{requestID}, res.Escalated)

	notes := s.store.Notifications()
	s.Require().Len(notes, 1)
	s.Equal(models.RoleAdmin, notes[0].RecipientRole)
	s.Nil(notes[0].RecipientID)
}

func (s *EscalationSuite) TestRequestFailuresAreIsolated() {
	leave := s.absenceType(models.FlowManager, "vacation", nil)
	broken := s.pendingRequest(leave, 60*time.Hour)
	healthy := s.pendingRequest(leave, 50*time.Hour)

	requests := mocks.NewMockRequestStore(gomock.NewController(s.T()))
	pending, err := s.store.ListPending(s.ctx)
	s.Require().NoError(err)
	requests.EXPECT().ListPending(gomock.Any()).Return(pending, nil)
	requests.EXPECT().LastApprovalStep(gomock.Any(), broken).Return(0, errors.New("deadlock detected"))
	requests.EXPECT().LastApprovalStep(gomock.Any(), healthy).Return(0, nil)
	requests.EXPECT().RecordEscalation(gomock.Any(), gomock.Any()).Return(nil)

	res, err := absence.NewEscalator(s.directory, requests, s.store).Run(s.ctx)
	s.Require().NoError(err)
	s.False(res.Success)
	s.Equal(2, res.Processed)
	s.Equal([]id.AbsenceRequestID{healthy}, res.Escalated)
	s.Require().Len(res.Failures, 1)
	s.Equal(broken, res.Failures[0].RequestID)
	s.Contains(res.Failures[0].Error, "deadlock detected")
}

func (s *EscalationSuite) TestListFailureIsInternal() {
	requests := mocks.NewMockRequestStore(gomock.NewController(s.T()))
	requests.EXPECT().ListPending(gomock.Any()).Return(nil, errors.New("db down"))

	_, err := absence.NewEscalator(s.directory, requests, s.store).Run(s.ctx)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeInternal))
}
