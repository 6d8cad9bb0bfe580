package handler

import (
	"strings"

	"worktime/internal/absence/models"
	id "worktime/pkg/domain"
	dErrors "worktime/pkg/domain-errors"
)

// RecalculateRequest is the body of POST /absence/vacation/recalculate.
type RecalculateRequest struct {
	CompanyID  string `json:"company_id"`
	Year       int    `json:"year"`
	EmployeeID string `json:"employee_id,omitempty"`

	parsed models.RecalculateRequest
}

func (r *RecalculateRequest) Normalize() {
	r.CompanyID = strings.TrimSpace(r.CompanyID)
	r.EmployeeID = strings.TrimSpace(r.EmployeeID)
}

func (r *RecalculateRequest) Validate() error {
	if r.CompanyID == "" || r.Year == 0 {
		return dErrors.New(dErrors.CodeBadRequest, "company_id and year are required")
	}
	companyID, err := id.ParseCompanyID(r.CompanyID)
	if err != nil {
		return err
	}
	r.parsed = models.RecalculateRequest{CompanyID: companyID, Year: r.Year}
	if r.EmployeeID != "" {
		employeeID, err := id.ParseEmployeeID(r.EmployeeID)
		if err != nil {
			return err
		}
		r.parsed.EmployeeID = &employeeID
	}
	return nil
}

func (r *RecalculateRequest) Parsed() models.RecalculateRequest {
	return r.parsed
}
