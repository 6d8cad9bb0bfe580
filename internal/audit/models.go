package audit

import (
	"time"

	id "worktime/pkg/domain"
)

// EventCategory classifies audit events by their retention needs.
type EventCategory string

const (
	// CategoryCompliance covers labor-law findings and sealed evidence.
	CategoryCompliance EventCategory = "compliance"
	// CategoryOperations covers workflow activity such as escalations.
	CategoryOperations EventCategory = "operations"
)

// Action names what happened.
type Action string

const (
	ActionViolationRaised      Action = "violation_raised"
	ActionViolationCleared     Action = "violation_cleared"
	ActionDailyRootCreated     Action = "daily_root_created"
	ActionDailyRootSealed      Action = "daily_root_sealed"
	ActionDailyRootSealFailed  Action = "daily_root_seal_failed"
	ActionAbsenceEscalated     Action = "absence_escalated"
	ActionVacationRecalculated Action = "vacation_recalculated"
)

var actionCategories = map[Action]EventCategory{
	ActionViolationRaised:      CategoryCompliance,
	ActionViolationCleared:     CategoryCompliance,
	ActionDailyRootCreated:     CategoryCompliance,
	ActionDailyRootSealed:      CategoryCompliance,
	ActionDailyRootSealFailed:  CategoryCompliance,
	ActionAbsenceEscalated:     CategoryOperations,
	ActionVacationRecalculated: CategoryOperations,
}

// Category returns the category an action belongs to, defaulting to operations.
func (a Action) Category() EventCategory {
	if c, ok := actionCategories[a]; ok {
		return c
	}
	return CategoryOperations
}

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	Category  EventCategory
	Timestamp time.Time
	CompanyID id.CompanyID
	Action    Action
	// Subject is the affected entity, e.g. an employee or daily root id.
	Subject   string
	Actor     string
	RequestID string
	Metadata  map[string]any
}
