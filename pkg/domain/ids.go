package domain

import (
	"github.com/google/uuid"

	dErrors "worktime/pkg/domain-errors"
)

// Typed identifiers keep tenant, employee and artifact ids from being mixed up
// at call sites. Construct them from external input via the Parse functions.
type (
	CompanyID        uuid.UUID
	EmployeeID       uuid.UUID
	ClockEventID     uuid.UUID
	RuleVersionID    uuid.UUID
	AssignmentID     uuid.UUID
	ViolationID      uuid.UUID
	DailyRootID      uuid.UUID
	EvidenceID       uuid.UUID
	AbsenceRequestID uuid.UUID
)

func (id CompanyID) String() string        { return uuid.UUID(id).String() }
func (id EmployeeID) String() string       { return uuid.UUID(id).String() }
func (id ClockEventID) String() string     { return uuid.UUID(id).String() }
func (id RuleVersionID) String() string    { return uuid.UUID(id).String() }
func (id AssignmentID) String() string     { return uuid.UUID(id).String() }
func (id ViolationID) String() string      { return uuid.UUID(id).String() }
func (id DailyRootID) String() string      { return uuid.UUID(id).String() }
func (id EvidenceID) String() string       { return uuid.UUID(id).String() }
func (id AbsenceRequestID) String() string { return uuid.UUID(id).String() }

func (id CompanyID) IsNil() bool        { return uuid.UUID(id) == uuid.Nil }
func (id EmployeeID) IsNil() bool       { return uuid.UUID(id) == uuid.Nil }
func (id ClockEventID) IsNil() bool     { return uuid.UUID(id) == uuid.Nil }
func (id RuleVersionID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }
func (id AssignmentID) IsNil() bool     { return uuid.UUID(id) == uuid.Nil }
func (id DailyRootID) IsNil() bool      { return uuid.UUID(id) == uuid.Nil }
func (id EvidenceID) IsNil() bool       { return uuid.UUID(id) == uuid.Nil }
func (id AbsenceRequestID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }

// MarshalText lets typed ids render as plain UUID strings in JSON.
func (id CompanyID) MarshalText() ([]byte, error)     { return []byte(id.String()), nil }
func (id EmployeeID) MarshalText() ([]byte, error)    { return []byte(id.String()), nil }
func (id DailyRootID) MarshalText() ([]byte, error)   { return []byte(id.String()), nil }
func (id EvidenceID) MarshalText() ([]byte, error)    { return []byte(id.String()), nil }
func (id ViolationID) MarshalText() ([]byte, error)   { return []byte(id.String()), nil }
func (id RuleVersionID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }

func parseUUID(kind, s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, kind+" cannot be empty")
	}
	parsed, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "invalid "+kind)
	}
	if parsed == uuid.Nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, kind+" cannot be nil")
	}
	return parsed, nil
}

// ParseCompanyID validates and converts external input into a CompanyID.
func ParseCompanyID(s string) (CompanyID, error) {
	u, err := parseUUID("company_id", s)
	return CompanyID(u), err
}

// ParseEmployeeID validates and converts external input into an EmployeeID.
func ParseEmployeeID(s string) (EmployeeID, error) {
	u, err := parseUUID("employee_id", s)
	return EmployeeID(u), err
}

// ParseEvidenceID validates and converts external input into an EvidenceID.
func ParseEvidenceID(s string) (EvidenceID, error) {
	u, err := parseUUID("evidence_id", s)
	return EvidenceID(u), err
}
