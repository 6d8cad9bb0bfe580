package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CatalogFile is the on-disk override of the built-in defaults.
//
//	rules:
//	  MAX_DAILY_HOURS: {limit: 8, severity: critical}
//	vacation:
//	  annual_days: 23
//	sla:
//	  default_hours: 24
//	  by_absence_type: {sick_leave: 8}
type CatalogFile struct {
	Rules    map[string]CatalogRule `yaml:"rules"`
	Vacation *VacationPolicy        `yaml:"vacation"`
	SLA      *SLAPolicy             `yaml:"sla"`
}

// CatalogRule is one default rule entry.
type CatalogRule struct {
	Limit    float64 `yaml:"limit"`
	Severity string  `yaml:"severity"`
}

// VacationPolicy is the default accrual policy for companies without one.
type VacationPolicy struct {
	AnnualDays             float64 `yaml:"annual_days"`
	AccrualType            string  `yaml:"accrual_type"`
	CarryOverDays          float64 `yaml:"carry_over_days"`
	CarryOverDeadlineMonth int     `yaml:"carry_over_deadline_month"`
}

// SLAPolicy overrides approval SLA hours.
type SLAPolicy struct {
	DefaultHours  int            `yaml:"default_hours"`
	ByAbsenceType map[string]int `yaml:"by_absence_type"`
}

// LoadCatalogFile reads a catalog override. An empty path yields nil so the
// caller keeps its built-in defaults.
func LoadCatalogFile(path string) (*CatalogFile, error) {
	if path == "" {
		return nil, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	return ParseCatalog(raw)
}

// ParseCatalog decodes catalog YAML and validates every entry.
func ParseCatalog(raw []byte) (*CatalogFile, error) {
	var file CatalogFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("decode catalog yaml: %w", err)
	}
	for code, rule := range file.Rules {
		if rule.Limit <= 0 {
			return nil, fmt.Errorf("rule %s: limit must be positive", code)
		}
		switch rule.Severity {
		case "", "warn", "critical":
		default:
			return nil, fmt.Errorf("rule %s: unknown severity %q", code, rule.Severity)
		}
	}
	if file.Vacation != nil && file.Vacation.AnnualDays < 0 {
		return nil, fmt.Errorf("vacation: annual_days must not be negative")
	}
	if file.SLA != nil && file.SLA.DefaultHours < 0 {
		return nil, fmt.Errorf("sla: default_hours must not be negative")
	}
	return &file, nil
}
