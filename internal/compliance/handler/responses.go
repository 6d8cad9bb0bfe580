package handler

import (
	"worktime/internal/compliance/models"
)

// EvaluateResponse is the HTTP response for POST /compliance/evaluate.
// A 200 can still carry failed entries; check success on each.
type EvaluateResponse struct {
	Success   bool             `json:"success"`
	CompanyID string           `json:"company_id"`
	Date      string           `json:"date"`
	Results   []EmployeeResult `json:"results"`
}

type EmployeeResult struct {
	EmployeeID  string          `json:"employee_id"`
	Success     bool            `json:"success"`
	Error       string          `json:"error,omitempty"`
	WorkedHours float64         `json:"worked_hours"`
	RestHours   *float64        `json:"rest_hours,omitempty"`
	Anomalies   int             `json:"anomalies,omitempty"`
	Violations  []ViolationBody `json:"violations"`
	Created     []string        `json:"created"`
	Cleared     []string        `json:"cleared"`
}

type ViolationBody struct {
	RuleCode      string  `json:"rule_code"`
	Severity      string  `json:"severity"`
	DetectedValue float64 `json:"detected_value"`
	Threshold     float64 `json:"threshold"`
	RuleVersionID string  `json:"rule_version_id,omitempty"`
}

func FromResult(result *models.EvaluateResult) *EvaluateResponse {
	resp := &EvaluateResponse{
		Success:   result.Success,
		CompanyID: result.CompanyID.String(),
		Date:      result.Date.String(),
		Results:   make([]EmployeeResult, 0, len(result.Results)),
	}
	for _, r := range result.Results {
		entry := EmployeeResult{
			EmployeeID:  r.EmployeeID.String(),
			Success:     r.Success,
			Error:       r.Error,
			WorkedHours: r.WorkedHours,
			RestHours:   r.RestHours,
			Anomalies:   r.Anomalies,
			Violations:  make([]ViolationBody, 0, len(r.Violations)),
			Created:     codeStrings(r.Created),
			Cleared:     codeStrings(r.Cleared),
		}
		for _, v := range r.Violations {
			body := ViolationBody{
				RuleCode:      string(v.Code),
				Severity:      string(v.Severity),
				DetectedValue: v.Detected,
				Threshold:     v.Threshold,
			}
			if v.RuleVersionID != nil {
				body.RuleVersionID = v.RuleVersionID.String()
			}
			entry.Violations = append(entry.Violations, body)
		}
		resp.Results = append(resp.Results, entry)
	}
	return resp
}

func codeStrings(codes []models.Code) []string {
	out := make([]string, len(codes))
	for i, c := range codes {
		out[i] = string(c)
	}
	return out
}
