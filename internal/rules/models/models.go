package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	id "worktime/pkg/domain"
)

// RuleCode names a labor rule parameter.
type RuleCode string

const (
	CodeMaxDailyHours   RuleCode = "MAX_DAILY_HOURS"
	CodeMaxWeeklyHours  RuleCode = "MAX_WEEKLY_HOURS"
	CodeMinDailyRest    RuleCode = "MIN_DAILY_REST"
	CodeMinWeeklyRest   RuleCode = "MIN_WEEKLY_REST"
	CodeBreakAfterHours RuleCode = "BREAK_AFTER_HOURS"
	CodeOvertimeMaxYear RuleCode = "OVERTIME_MAX_YEAR"
)

// Severity classifies a violation.
type Severity string

const (
	SeverityWarn     Severity = "warn"
	SeverityCritical Severity = "critical"
)

// IsValid reports whether s is a known severity.
func (s Severity) IsValid() bool {
	return s == SeverityWarn || s == SeverityCritical
}

// RuleParams is one rule's parameters inside a version payload. A bare
// number in the payload is accepted as the limit.
type RuleParams struct {
	Limit    float64  `json:"limit"`
	Severity Severity `json:"severity,omitempty"`
}

func (p *RuleParams) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] != '{' {
		var limit float64
		if err := json.Unmarshal(b, &limit); err != nil {
			return fmt.Errorf("rule params must be an object or a number: %w", err)
		}
		*p = RuleParams{Limit: limit}
		return nil
	}
	type plain RuleParams
	var v plain
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*p = RuleParams(v)
	return nil
}

// Payload is the immutable parameter map of a rule version.
type Payload map[RuleCode]RuleParams

// ParsePayload decodes and validates a version payload.
func ParsePayload(raw []byte) (Payload, error) {
	var p Payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode rule payload: %w", err)
	}
	for code, params := range p {
		if params.Limit < 0 {
			return nil, fmt.Errorf("rule %s: limit must not be negative", code)
		}
		if params.Severity != "" && !params.Severity.IsValid() {
			return nil, fmt.Errorf("rule %s: unknown severity %q", code, params.Severity)
		}
	}
	return p, nil
}

// RuleVersion is a versioned, immutable rule payload. Publishing seals it
// with a payload hash.
type RuleVersion struct {
	ID          id.RuleVersionID
	CompanyID   id.CompanyID
	Version     int
	Payload     Payload
	PayloadHash string
	PublishedAt *time.Time
	CreatedAt   time.Time
}

// IsPublished reports whether the version was sealed.
func (v *RuleVersion) IsPublished() bool {
	return v.PublishedAt != nil
}

// EffectiveOn reports whether the version applies on date. Unpublished
// versions apply immediately; published ones from their publication day.
func (v *RuleVersion) EffectiveOn(date id.Date) bool {
	if v.PublishedAt == nil {
		return true
	}
	_, endOfDay := date.Window(time.UTC)
	return v.PublishedAt.Before(endOfDay)
}

// Assignment binds a rule version to a company or, with EmployeeID set, to
// one employee. Precedence is purely numeric: higher Priority wins whatever
// the scope.
type Assignment struct {
	ID            id.AssignmentID
	CompanyID     id.CompanyID
	RuleVersionID id.RuleVersionID
	EmployeeID    *id.EmployeeID
	Priority      int
	IsActive      bool
	CreatedAt     time.Time
}

// AppliesTo reports whether the assignment's scope covers employeeID. A nil
// employee asks for company-wide assignments only.
func (a *Assignment) AppliesTo(employeeID *id.EmployeeID) bool {
	if a.EmployeeID == nil {
		return true
	}
	return employeeID != nil && *a.EmployeeID == *employeeID
}

// Binding is an assignment joined with its rule version.
type Binding struct {
	Assignment Assignment
	Version    RuleVersion
}

// Source says where an effective rule came from.
type Source string

const (
	SourceAssignment Source = "assignment"
	SourceDefault    Source = "default"
)

// EffectiveRule is the resolved parameter set for one rule code.
type EffectiveRule struct {
	Code          RuleCode
	Limit         float64
	Severity      Severity
	Source        Source
	RuleVersionID *id.RuleVersionID
	AssignmentID  *id.AssignmentID
	Priority      int
}

// RuleSet is the merged outcome of resolution for one employee and day.
type RuleSet map[RuleCode]EffectiveRule

// Get returns the rule for code, if any source provided one.
func (s RuleSet) Get(code RuleCode) (EffectiveRule, bool) {
	r, ok := s[code]
	return r, ok
}

// Codes returns the resolved codes in lexical order.
func (s RuleSet) Codes() []RuleCode {
	codes := make([]RuleCode, 0, len(s))
	for c := range s {
		codes = append(codes, c)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}
