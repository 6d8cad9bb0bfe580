// Package models holds the absence workflow and vacation balance types.
package models

import (
	"time"

	"github.com/google/uuid"

	dirmodels "worktime/internal/directory/models"
	id "worktime/pkg/domain"
)

type ApprovalFlow string

const (
	FlowManager    ApprovalFlow = "manager"
	FlowAdmin      ApprovalFlow = "admin"
	FlowMultiLevel ApprovalFlow = "multi_level"
)

// Approver roles addressed by escalation steps.
const (
	RoleManager    = "manager"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

// AbsenceType is a company-defined kind of leave.
type AbsenceType struct {
	ID               uuid.UUID
	CompanyID        id.CompanyID
	Name             string
	Category         string
	CountsAsVacation bool
	// SLAHours overrides the configured approval SLA when set.
	SLAHours     *int
	ApprovalFlow ApprovalFlow
}

type RequestStatus string

const (
	StatusPending   RequestStatus = "pending"
	StatusApproved  RequestStatus = "approved"
	StatusRejected  RequestStatus = "rejected"
	StatusCancelled RequestStatus = "cancelled"
)

// Request is an employee's absence request.
type Request struct {
	ID                  id.AbsenceRequestID
	CompanyID           id.CompanyID
	EmployeeID          id.EmployeeID
	AbsenceTypeID       uuid.UUID
	StartDate           id.Date
	EndDate             id.Date
	TotalDays           float64
	Status              RequestStatus
	CurrentApprovalStep int
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// PendingRequest is a pending request joined with its absence type.
type PendingRequest struct {
	Request Request
	Type    AbsenceType
}

const ApprovalActionEscalate = "escalate"

// Approval is one step in a request's approval trail.
type Approval struct {
	ID           uuid.UUID
	RequestID    id.AbsenceRequestID
	Step         int
	ApproverRole string
	Action       string
	Comment      string
	CreatedAt    time.Time
}

type AccrualType string

const (
	AccrualAnnual         AccrualType = "annual"
	AccrualMonthlyProrate AccrualType = "monthly_prorate"
)

// VacationPolicy is a company's entitlement policy.
type VacationPolicy struct {
	CompanyID              id.CompanyID
	AnnualDays             float64
	Accrual                AccrualType
	CarryOverDays          float64
	CarryOverDeadlineMonth int
}

// DefaultVacationPolicy applies to companies without a stored policy.
func DefaultVacationPolicy() VacationPolicy {
	return VacationPolicy{
		AnnualDays:             22,
		Accrual:                AccrualAnnual,
		CarryOverDays:          0,
		CarryOverDeadlineMonth: 3,
	}
}

// Balance is an employee's vacation ledger for one year.
type Balance struct {
	EmployeeID    id.EmployeeID
	Year          int
	CompanyID     id.CompanyID
	EntitledDays  float64
	CarriedOver   float64
	UsedDays      float64
	PendingDays   float64
	AvailableDays float64
	UpdatedAt     time.Time
}

// Notification kinds.
const (
	NotificationSLAEscalation = "sla_escalation"
	NotificationSLAWarning    = "sla_warning"
)

// Notification is an in-app message addressed to a role, optionally to a
// specific person holding it.
type Notification struct {
	ID            uuid.UUID
	CompanyID     id.CompanyID
	RecipientRole string
	RecipientID   *id.EmployeeID
	Kind          string
	Title         string
	Body          string
	DedupeKey     string
	CreatedAt     time.Time
}

type RecalculateRequest struct {
	CompanyID  id.CompanyID
	Year       int
	EmployeeID *id.EmployeeID
}

// EmployeeBalance is one entry of a recalculation run.
type EmployeeBalance struct {
	Employee *dirmodels.Employee
	Balance  *Balance
	Success  bool
	Error    string
}

type RecalculateResult struct {
	Success   bool
	CompanyID id.CompanyID
	Year      int
	Results   []EmployeeBalance
}

// RequestFailure records a request the escalator could not process.
type RequestFailure struct {
	RequestID id.AbsenceRequestID
	Error     string
}

type EscalationResult struct {
	Success   bool
	Processed int
	Escalated []id.AbsenceRequestID
	Warned    []id.AbsenceRequestID
	Failures  []RequestFailure
}
