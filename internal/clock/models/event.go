package models

import (
	"time"

	id "worktime/pkg/domain"
)

// EventType is the direction of a clock punch.
type EventType string

const (
	EventEntry EventType = "entry"
	EventExit  EventType = "exit"
)

// IsValid reports whether t is a known event type.
func (t EventType) IsValid() bool {
	return t == EventEntry || t == EventExit
}

// ClockEvent is an immutable punch recorded by a kiosk, a manual entry or a
// correction flow. Events are append-only; corrections add new events.
type ClockEvent struct {
	ID             id.ClockEventID
	CompanyID      id.CompanyID
	EmployeeID     id.EmployeeID
	Type           EventType
	Timestamp      time.Time // UTC instant
	LocalTimestamp string    // wall-clock reading at the kiosk, informational
	EventHash      string    // empty only for legacy rows
	PreviousHash   string
	Source         string
}
