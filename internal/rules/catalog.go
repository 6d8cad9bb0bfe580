// Package rules resolves the effective labor rule parameters for an
// employee on a given day.
package rules

import (
	"worktime/internal/platform/config"
	"worktime/internal/rules/models"
)

// Catalog is the fallback rule set consulted when no assignment provides a
// code. It is injected, never global, so tests can shrink or replace it.
type Catalog struct {
	rules map[models.RuleCode]models.RuleParams
}

// DefaultCatalog returns the statutory defaults.
func DefaultCatalog() *Catalog {
	return NewCatalog(map[models.RuleCode]models.RuleParams{
		models.CodeMaxDailyHours:   {Limit: 9, Severity: models.SeverityCritical},
		models.CodeMaxWeeklyHours:  {Limit: 40, Severity: models.SeverityWarn},
		models.CodeMinDailyRest:    {Limit: 12, Severity: models.SeverityCritical},
		models.CodeMinWeeklyRest:   {Limit: 36, Severity: models.SeverityCritical},
		models.CodeBreakAfterHours: {Limit: 6, Severity: models.SeverityWarn},
		models.CodeOvertimeMaxYear: {Limit: 80, Severity: models.SeverityWarn},
	})
}

// NewCatalog builds a catalog from explicit entries. Missing severities fall
// back to the code's standard severity.
func NewCatalog(entries map[models.RuleCode]models.RuleParams) *Catalog {
	c := &Catalog{rules: make(map[models.RuleCode]models.RuleParams, len(entries))}
	for code, params := range entries {
		if params.Severity == "" {
			params.Severity = DefaultSeverity(code)
		}
		c.rules[code] = params
	}
	return c
}

// CatalogFromConfig overlays the file's rules onto the statutory defaults.
func CatalogFromConfig(file *config.CatalogFile) *Catalog {
	c := DefaultCatalog()
	if file == nil {
		return c
	}
	for code, rule := range file.Rules {
		c.rules[models.RuleCode(code)] = models.RuleParams{
			Limit:    rule.Limit,
			Severity: severityOr(models.Severity(rule.Severity), models.RuleCode(code)),
		}
	}
	return c
}

// Lookup returns the default for code.
func (c *Catalog) Lookup(code models.RuleCode) (models.RuleParams, bool) {
	if c == nil {
		return models.RuleParams{}, false
	}
	p, ok := c.rules[code]
	return p, ok
}

// Codes returns every code the catalog provides.
func (c *Catalog) Codes() []models.RuleCode {
	if c == nil {
		return nil
	}
	codes := make([]models.RuleCode, 0, len(c.rules))
	for code := range c.rules {
		codes = append(codes, code)
	}
	return codes
}

// DefaultSeverity is the severity a code carries when a payload omits it.
func DefaultSeverity(code models.RuleCode) models.Severity {
	switch code {
	case models.CodeMaxDailyHours, models.CodeMinDailyRest, models.CodeMinWeeklyRest:
		return models.SeverityCritical
	default:
		return models.SeverityWarn
	}
}

func severityOr(s models.Severity, code models.RuleCode) models.Severity {
	if s.IsValid() {
		return s
	}
	return DefaultSeverity(code)
}
