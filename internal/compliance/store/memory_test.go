package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worktime/internal/compliance/models"
	rulesmodels "worktime/internal/rules/models"
	id "worktime/pkg/domain"
)

func violation(company id.CompanyID, employee id.EmployeeID, date id.Date, code models.Code) models.Violation {
	return models.Violation{
		ID:         id.ViolationID(uuid.New()),
		CompanyID:  company,
		EmployeeID: employee,
		Code:       code,
		Date:       date,
		Severity:   rulesmodels.SeverityCritical,
	}
}

func TestReplaceDayReportsChanges(t *testing.T) {
	ctx := context.Background()
	s := NewInMemory()
	company := id.CompanyID(uuid.New())
	employee := id.EmployeeID(uuid.New())
	date := id.DateOf(2024, time.March, 4)
	codes := []models.Code{models.CodeMaxDailyHours, models.CodeMinDailyRest, models.CodeBreakRequired}

	first, err := s.ReplaceDay(ctx, employee, date, codes, []models.Violation{
		violation(company, employee, date, models.CodeMaxDailyHours),
		violation(company, employee, date, models.CodeMinDailyRest),
	})
	require.NoError(t, err)
	assert.Equal(t, []models.Code{models.CodeMaxDailyHours, models.CodeMinDailyRest}, first.Created)

	second, err := s.ReplaceDay(ctx, employee, date, codes, []models.Violation{
		violation(company, employee, date, models.CodeMaxDailyHours),
		violation(company, employee, date, models.CodeBreakRequired),
	})
	require.NoError(t, err)
	assert.Equal(t, []models.Code{models.CodeBreakRequired}, second.Created)
	assert.Equal(t, []models.Code{models.CodeMaxDailyHours}, second.Retained)
	assert.Equal(t, []models.Code{models.CodeMinDailyRest}, second.Cleared)

	stored, err := s.ListByCompanyDay(ctx, company, date)
	require.NoError(t, err)
	assert.Len(t, stored, 2)
}

func TestReplaceDayLeavesUnevaluatedCodes(t *testing.T) {
	ctx := context.Background()
	s := NewInMemory()
	company := id.CompanyID(uuid.New())
	employee := id.EmployeeID(uuid.New())
	sunday := id.DateOf(2024, time.March, 10)

	_, err := s.ReplaceDay(ctx, employee, sunday, []models.Code{models.CodeMinWeeklyRest},
		[]models.Violation{violation(company, employee, sunday, models.CodeMinWeeklyRest)})
	require.NoError(t, err)

	outcome, err := s.ReplaceDay(ctx, employee, sunday, []models.Code{models.CodeMaxDailyHours}, nil)
	require.NoError(t, err)
	assert.Empty(t, outcome.Cleared)

	stored, err := s.ListByCompanyDay(ctx, company, sunday)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, models.CodeMinWeeklyRest, stored[0].Code)
}
