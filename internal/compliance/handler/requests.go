package handler

import (
	"strings"

	"worktime/internal/compliance/models"
	id "worktime/pkg/domain"
	dErrors "worktime/pkg/domain-errors"
)

// EvaluateRequest is the HTTP request body for POST /compliance/evaluate.
type EvaluateRequest struct {
	CompanyID  string `json:"company_id"`
	Date       string `json:"date,omitempty"`
	EmployeeID string `json:"employee_id,omitempty"`

	parsed models.EvaluateRequest
}

func (r *EvaluateRequest) Normalize() {
	r.CompanyID = strings.TrimSpace(r.CompanyID)
	r.Date = strings.TrimSpace(r.Date)
	r.EmployeeID = strings.TrimSpace(r.EmployeeID)
}

// Validate parses the identifiers. Only company_id is required.
func (r *EvaluateRequest) Validate() error {
	if r.CompanyID == "" {
		return dErrors.New(dErrors.CodeBadRequest, "company_id is required")
	}
	companyID, err := id.ParseCompanyID(r.CompanyID)
	if err != nil {
		return err
	}
	r.parsed = models.EvaluateRequest{CompanyID: companyID}

	if r.Date != "" {
		date, err := id.ParseDate(r.Date)
		if err != nil {
			return err
		}
		r.parsed.Date = &date
	}
	if r.EmployeeID != "" {
		employeeID, err := id.ParseEmployeeID(r.EmployeeID)
		if err != nil {
			return err
		}
		r.parsed.EmployeeID = &employeeID
	}
	return nil
}

// Parsed returns the domain request built by Validate.
func (r *EvaluateRequest) Parsed() models.EvaluateRequest {
	return r.parsed
}
