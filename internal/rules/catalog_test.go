package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worktime/internal/platform/config"
	"worktime/internal/rules/models"
)

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()
	cases := map[models.RuleCode]models.RuleParams{
		models.CodeMaxDailyHours:   {Limit: 9, Severity: models.SeverityCritical},
		models.CodeMaxWeeklyHours:  {Limit: 40, Severity: models.SeverityWarn},
		models.CodeMinDailyRest:    {Limit: 12, Severity: models.SeverityCritical},
		models.CodeMinWeeklyRest:   {Limit: 36, Severity: models.SeverityCritical},
		models.CodeBreakAfterHours: {Limit: 6, Severity: models.SeverityWarn},
		models.CodeOvertimeMaxYear: {Limit: 80, Severity: models.SeverityWarn},
	}
	for code, want := range cases {
		got, ok := c.Lookup(code)
		require.True(t, ok, code)
		assert.Equal(t, want, got, code)
	}
}

func TestCatalogFromConfig(t *testing.T) {
	c := CatalogFromConfig(&config.CatalogFile{Rules: map[string]config.CatalogRule{
		"MAX_DAILY_HOURS": {Limit: 8},
		"CUSTOM_RULE":     {Limit: 3, Severity: "critical"},
	}})

	daily, _ := c.Lookup(models.CodeMaxDailyHours)
	assert.Equal(t, models.RuleParams{Limit: 8, Severity: models.SeverityCritical}, daily)
	custom, ok := c.Lookup("CUSTOM_RULE")
	require.True(t, ok)
	assert.Equal(t, models.SeverityCritical, custom.Severity)

	rest, _ := c.Lookup(models.CodeMinDailyRest)
	assert.Equal(t, 12.0, rest.Limit, "untouched defaults are kept")

	assert.Equal(t, DefaultCatalog(), CatalogFromConfig(nil))
}

func TestNilCatalog(t *testing.T) {
	var c *Catalog
	_, ok := c.Lookup(models.CodeMaxDailyHours)
	assert.False(t, ok)
	assert.Empty(t, c.Codes())
}
