package handler

import (
	"worktime/internal/absence/models"
)

type RecalculateResponse struct {
	Success            bool              `json:"success"`
	CompanyID          string            `json:"company_id"`
	Year               int               `json:"year"`
	EmployeesProcessed int               `json:"employees_processed"`
	Balances           []EmployeeBalance `json:"balances"`
}

type EmployeeBalance struct {
	EmployeeID      string  `json:"employee_id"`
	EmployeeName    string  `json:"employee_name"`
	Success         bool    `json:"success"`
	Error           string  `json:"error,omitempty"`
	EntitledDays    float64 `json:"entitled_days"`
	CarriedOverDays float64 `json:"carried_over_days"`
	UsedDays        float64 `json:"used_days"`
	PendingDays     float64 `json:"pending_days"`
	AvailableDays   float64 `json:"available_days"`
}

func FromRecalculateResult(result *models.RecalculateResult) *RecalculateResponse {
	resp := &RecalculateResponse{
		Success:            result.Success,
		CompanyID:          result.CompanyID.String(),
		Year:               result.Year,
		EmployeesProcessed: len(result.Results),
		Balances:           make([]EmployeeBalance, 0, len(result.Results)),
	}
	for _, r := range result.Results {
		entry := EmployeeBalance{Success: r.Success, Error: r.Error}
		if r.Employee != nil {
			entry.EmployeeID = r.Employee.ID.String()
			entry.EmployeeName = r.Employee.FullName
		}
		if b := r.Balance; b != nil {
			entry.EntitledDays = b.EntitledDays
			entry.CarriedOverDays = b.CarriedOver
			entry.UsedDays = b.UsedDays
			entry.PendingDays = b.PendingDays
			entry.AvailableDays = b.AvailableDays
		}
		resp.Balances = append(resp.Balances, entry)
	}
	return resp
}

type EscalationResponse struct {
	Success      bool             `json:"success"`
	Processed    int              `json:"processed"`
	Escalated    int              `json:"escalated"`
	EscalatedIDs []string         `json:"escalated_ids"`
	Warned       int              `json:"warned"`
	WarnedIDs    []string         `json:"warned_ids"`
	Failures     []RequestFailure `json:"failures,omitempty"`
}

type RequestFailure struct {
	RequestID string `json:"request_id"`
	Error     string `json:"error"`
}

func FromEscalationResult(result *models.EscalationResult) *EscalationResponse {
	resp := &EscalationResponse{
		Success:      result.Success,
		Processed:    result.Processed,
		Escalated:    len(result.Escalated),
		EscalatedIDs: make([]string, 0, len(result.Escalated)),
		Warned:       len(result.Warned),
		WarnedIDs:    make([]string, 0, len(result.Warned)),
	}
	for _, reqID := range result.Escalated {
		resp.EscalatedIDs = append(resp.EscalatedIDs, reqID.String())
	}
	for _, reqID := range result.Warned {
		resp.WarnedIDs = append(resp.WarnedIDs, reqID.String())
	}
	for _, f := range result.Failures {
		resp.Failures = append(resp.Failures, RequestFailure{RequestID: f.RequestID.String(), Error: f.Error})
	}
	return resp
}
