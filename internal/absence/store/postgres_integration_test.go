//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"worktime/internal/absence/models"
	"worktime/internal/absence/store"
	dirmodels "worktime/internal/directory/models"
	dirstore "worktime/internal/directory/store"
	id "worktime/pkg/domain"
	"worktime/pkg/platform/sentinel"
	"worktime/pkg/testutil/containers"
)

type PostgresAbsenceSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *store.PostgresStore
	company  id.CompanyID
	employee id.EmployeeID
	vacation *models.AbsenceType
}

func TestPostgresAbsenceSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresAbsenceSuite))
}

func (s *PostgresAbsenceSuite) SetupSuite() {
	s.postgres = containers.GetManager().GetPostgres(s.T())
	s.store = store.NewPostgres(s.postgres.DB)
}

func (s *PostgresAbsenceSuite) SetupTest() {
	ctx := context.Background()
	s.Require().NoError(s.postgres.TruncateTables(ctx,
		"notifications", "vacation_balances", "vacation_policies", "absence_approvals",
		"absence_requests", "absence_types", "employees", "companies"))

	directory := dirstore.NewPostgres(s.postgres.DB)
	s.company = id.CompanyID(uuid.New())
	s.Require().NoError(directory.CreateCompany(ctx, &dirmodels.Company{
		ID: s.company, Name: "Acme", Timezone: "UTC", CreatedAt: time.Now(),
	}))
	s.employee = id.EmployeeID(uuid.New())
	s.Require().NoError(directory.CreateEmployee(ctx, &dirmodels.Employee{
		ID: s.employee, CompanyID: s.company, FullName: "Ana García", IsActive: true, CreatedAt: time.Now(),
	}))
	s.vacation = &models.AbsenceType{
		ID: uuid.New(), CompanyID: s.company, Name: "Vacation", Category: "vacation",
		CountsAsVacation: true, ApprovalFlow: models.FlowManager,
	}
	s.Require().NoError(s.store.SaveAbsenceType(ctx, s.vacation))
}

func (s *PostgresAbsenceSuite) request(start, end id.Date, days float64, status models.RequestStatus, created time.Time) *models.Request {
	r := &models.Request{
		ID:            id.AbsenceRequestID(uuid.New()),
		CompanyID:     s.company,
		EmployeeID:    s.employee,
		AbsenceTypeID: s.vacation.ID,
		StartDate:     start,
		EndDate:       end,
		TotalDays:     days,
		Status:        status,
		CreatedAt:     created,
		UpdatedAt:     created,
	}
	s.Require().NoError(s.store.SaveRequest(context.Background(), r))
	return r
}

func (s *PostgresAbsenceSuite) TestSumVacationDaysHonorsYearWindow() {
	ctx := context.Background()
	now := time.Now().UTC()
	s.request(id.DateOf(2024, 2, 5), id.DateOf(2024, 2, 9), 5, models.StatusApproved, now)
	s.request(id.DateOf(2024, 12, 30), id.DateOf(2025, 1, 2), 3, models.StatusApproved, now)
	s.request(id.DateOf(2024, 8, 1), id.DateOf(2024, 8, 2), 2, models.StatusPending, now)

	used, err := s.store.SumVacationDays(ctx, s.employee, 2024, models.StatusApproved)
	s.Require().NoError(err)
	s.Equal(5.0, used)
	pending, err := s.store.SumVacationDays(ctx, s.employee, 2024, models.StatusPending)
	s.Require().NoError(err)
	s.Equal(2.0, pending)
}

func (s *PostgresAbsenceSuite) TestBalanceUpsertAndPolicy() {
	ctx := context.Background()
	_, err := s.store.GetPolicy(ctx, s.company)
	s.ErrorIs(err, sentinel.ErrNotFound)

	s.Require().NoError(s.store.SavePolicy(ctx, &models.VacationPolicy{
		CompanyID: s.company, AnnualDays: 23, Accrual: models.AccrualMonthlyProrate, CarryOverDays: 2, CarryOverDeadlineMonth: 3,
	}))
	policy, err := s.store.GetPolicy(ctx, s.company)
	s.Require().NoError(err)
	s.Equal(models.AccrualMonthlyProrate, policy.Accrual)

	b := &models.Balance{EmployeeID: s.employee, CompanyID: s.company, Year: 2024, EntitledDays: 23, AvailableDays: 23, UpdatedAt: time.Now().UTC()}
	s.Require().NoError(s.store.UpsertBalance(ctx, b))
	b.UsedDays, b.AvailableDays = 4, 19
	s.Require().NoError(s.store.UpsertBalance(ctx, b))

	stored, err := s.store.GetBalance(ctx, s.employee, 2024)
	s.Require().NoError(err)
	s.Equal(4.0, stored.UsedDays)
	s.Equal(19.0, stored.AvailableDays)
}

func (s *PostgresAbsenceSuite) TestEscalationAndNotifications() {
	ctx := context.Background()
	created := time.Now().UTC().Add(-50 * time.Hour).Truncate(time.Microsecond)
	r := s.request(id.DateOf(2024, 7, 1), id.DateOf(2024, 7, 5), 5, models.StatusPending, created)

	pending, err := s.store.ListPending(ctx)
	s.Require().NoError(err)
	s.Require().Len(pending, 1)
	s.Equal(r.ID, pending[0].Request.ID)
	s.Equal(models.FlowManager, pending[0].Type.ApprovalFlow)
	s.Nil(pending[0].Type.SLAHours)

	s.Require().NoError(s.store.RecordEscalation(ctx, &models.Approval{
		ID: uuid.New(), RequestID: r.ID, Step: 1, ApproverRole: models.RoleManager,
		Action: models.ApprovalActionEscalate, CreatedAt: time.Now().UTC(),
	}))
	step, err := s.store.LastApprovalStep(ctx, r.ID)
	s.Require().NoError(err)
	s.Equal(1, step)

	n := &models.Notification{
		ID: uuid.New(), CompanyID: s.company, RecipientRole: models.RoleAdmin,
		Kind: models.NotificationSLAWarning, Title: "t", Body: "b", DedupeKey: "sla_reminder_1_3", CreatedAt: time.Now().UTC(),
	}
	ok, err := s.store.Notify(ctx, n)
	s.Require().NoError(err)
	s.True(ok)
	n.ID = uuid.New()
	ok, err = s.store.Notify(ctx, n)
	s.Require().NoError(err)
	s.False(ok)
}
