//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"worktime/internal/compliance/models"
	"worktime/internal/compliance/store"
	dirmodels "worktime/internal/directory/models"
	dirstore "worktime/internal/directory/store"
	rulesmodels "worktime/internal/rules/models"
	id "worktime/pkg/domain"
	"worktime/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *store.PostgresStore
	company  id.CompanyID
	employee id.EmployeeID
	date     id.Date
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	mgr := containers.GetManager()
	s.postgres = mgr.GetPostgres(s.T())
	s.store = store.NewPostgres(s.postgres.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	ctx := context.Background()
	s.Require().NoError(s.postgres.TruncateTables(ctx, "compliance_violations", "employees", "companies"))

	directory := dirstore.NewPostgres(s.postgres.DB)
	s.company = id.CompanyID(uuid.New())
	s.employee = id.EmployeeID(uuid.New())
	s.date = id.DateOf(2024, time.March, 4)
	s.Require().NoError(directory.CreateCompany(ctx, &dirmodels.Company{ID: s.company, Name: "Acme", Timezone: "UTC", CreatedAt: time.Now()}))
	s.Require().NoError(directory.CreateEmployee(ctx, &dirmodels.Employee{ID: s.employee, CompanyID: s.company, FullName: "W", IsActive: true, CreatedAt: time.Now()}))
}

func (s *PostgresStoreSuite) violation(code models.Code, detected float64) models.Violation {
	versionID := id.RuleVersionID(uuid.New())
	return models.Violation{
		ID:            id.ViolationID(uuid.New()),
		CompanyID:     s.company,
		EmployeeID:    s.employee,
		Code:          code,
		Date:          s.date,
		Severity:      rulesmodels.SeverityCritical,
		Detected:      detected,
		Threshold:     9,
		RuleVersionID: &versionID,
		Evidence:      map[string]any{"limit": 9.0},
		CreatedAt:     time.Now().UTC(),
	}
}

func (s *PostgresStoreSuite) TestReplaceDayIsIdempotent() {
	ctx := context.Background()
	codes := []models.Code{models.CodeMaxDailyHours, models.CodeMinDailyRest}

	for range 2 {
		_, err := s.store.ReplaceDay(ctx, s.employee, s.date, codes, []models.Violation{s.violation(models.CodeMaxDailyHours, 10)})
		s.Require().NoError(err)
	}

	stored, err := s.store.ListByCompanyDay(ctx, s.company, s.date)
	s.Require().NoError(err)
	s.Require().Len(stored, 1)
	s.Equal(models.CodeMaxDailyHours, stored[0].Code)
	s.Equal(10.0, stored[0].Detected)
	s.NotNil(stored[0].RuleVersionID)
	s.Equal(9.0, stored[0].Evidence["limit"])
}

func (s *PostgresStoreSuite) TestReplaceDayClearsAndReports() {
	ctx := context.Background()
	codes := []models.Code{models.CodeMaxDailyHours, models.CodeMinDailyRest}

	_, err := s.store.ReplaceDay(ctx, s.employee, s.date, codes, []models.Violation{
		s.violation(models.CodeMaxDailyHours, 10),
		s.violation(models.CodeMinDailyRest, 9),
	})
	s.Require().NoError(err)

	outcome, err := s.store.ReplaceDay(ctx, s.employee, s.date, codes, []models.Violation{s.violation(models.CodeMaxDailyHours, 11)})
	s.Require().NoError(err)
	s.Equal([]models.Code{models.CodeMaxDailyHours}, outcome.Retained)
	s.Equal([]models.Code{models.CodeMinDailyRest}, outcome.Cleared)
	s.Empty(outcome.Created)
}
