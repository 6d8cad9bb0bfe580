package models

import (
	"time"

	rulesmodels "worktime/internal/rules/models"
	id "worktime/pkg/domain"
)

// Code identifies the kind of breach recorded on a violation row. Most codes
// mirror a rule code; break and overtime tiers are derived from one.
type Code string

const (
	CodeMaxDailyHours Code = "MAX_DAILY_HOURS"
	CodeMinDailyRest  Code = "MIN_DAILY_REST"
	CodeMinWeeklyRest Code = "MIN_WEEKLY_REST"
	CodeBreakRequired Code = "BREAK_REQUIRED"
	CodeOvertime75    Code = "OVERTIME_YTD_75"
	CodeOvertime90    Code = "OVERTIME_YTD_90"
	CodeOvertimeCap   Code = "OVERTIME_YTD_CAP"
)

// OvertimeCodes lists the overtime tiers from lowest to highest.
var OvertimeCodes = []Code{CodeOvertime75, CodeOvertime90, CodeOvertimeCap}

// Violation is one detected breach for (employee, code, date).
type Violation struct {
	ID            id.ViolationID
	CompanyID     id.CompanyID
	EmployeeID    id.EmployeeID
	Code          Code
	Date          id.Date
	Severity      rulesmodels.Severity
	Detected      float64
	Threshold     float64
	RuleVersionID *id.RuleVersionID
	Evidence      map[string]any
	CreatedAt     time.Time
}

// ReplaceOutcome reports how a day's stored violations changed.
type ReplaceOutcome struct {
	Created  []Code
	Retained []Code
	Cleared  []Code
}

// EmployeeResult is the per-employee entry of a batch evaluation.
type EmployeeResult struct {
	EmployeeID  id.EmployeeID
	Success     bool
	Error       string
	WorkedHours float64
	RestHours   *float64
	Sessions    int
	Anomalies   int
	Violations  []Violation
	Created     []Code
	Retained    []Code
	Cleared     []Code
}

// EvaluateRequest selects the company, day and optionally one employee.
type EvaluateRequest struct {
	CompanyID  id.CompanyID
	Date       *id.Date
	EmployeeID *id.EmployeeID
}

// EvaluateResult is the batch outcome. Success is false when any employee
// failed; callers must inspect each result.
type EvaluateResult struct {
	Success   bool
	CompanyID id.CompanyID
	Date      id.Date
	Results   []EmployeeResult
}

// ViolationCount sums violations raised across employees.
func (r *EvaluateResult) ViolationCount() int {
	n := 0
	for _, res := range r.Results {
		n += len(res.Violations)
	}
	return n
}

// ChangeKind tags an event published to the violation sink.
type ChangeKind string

const (
	ChangeRaised  ChangeKind = "raised"
	ChangeCleared ChangeKind = "cleared"
)

// ViolationChange is the message downstream consumers receive when a
// violation appears or disappears for a day.
type ViolationChange struct {
	Kind       ChangeKind    `json:"kind"`
	CompanyID  id.CompanyID  `json:"company_id"`
	EmployeeID id.EmployeeID `json:"employee_id"`
	Date       id.Date       `json:"date"`
	Code       Code          `json:"rule_code"`
	Severity   string        `json:"severity,omitempty"`
	Detected   float64       `json:"detected_value,omitempty"`
	Threshold  float64       `json:"threshold,omitempty"`
	OccurredAt time.Time     `json:"occurred_at"`
}
