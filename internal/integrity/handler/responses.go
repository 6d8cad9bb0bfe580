package handler

import (
	"time"

	"worktime/internal/integrity/models"
)

// GenerateResponse is the HTTP response for POST /integrity/daily-roots.
type GenerateResponse struct {
	Success bool            `json:"success"`
	Date    string          `json:"date"`
	Results []CompanyResult `json:"results"`
}

type CompanyResult struct {
	CompanyID       string `json:"company_id"`
	Success         bool   `json:"success"`
	Error           string `json:"error,omitempty"`
	Skipped         bool   `json:"skipped,omitempty"`
	AlreadyExists   bool   `json:"already_exists,omitempty"`
	DailyRootID     string `json:"daily_root_id,omitempty"`
	RootHash        string `json:"root_hash,omitempty"`
	EventCount      int    `json:"event_count"`
	QTSPTimestamped bool   `json:"qtsp_timestamped"`
}

func FromGenerateResult(result *models.GenerateResult) *GenerateResponse {
	resp := &GenerateResponse{
		Success: result.Success,
		Date:    result.Date.String(),
		Results: make([]CompanyResult, 0, len(result.Results)),
	}
	for _, r := range result.Results {
		entry := CompanyResult{
			CompanyID:       r.CompanyID.String(),
			Success:         r.Success,
			Error:           r.Error,
			Skipped:         r.Skipped,
			AlreadyExists:   r.AlreadyExists,
			RootHash:        r.RootHash,
			EventCount:      r.EventCount,
			QTSPTimestamped: r.QTSPTimestamped,
		}
		if r.DailyRootID != nil {
			entry.DailyRootID = r.DailyRootID.String()
		}
		resp.Results = append(resp.Results, entry)
	}
	return resp
}

// ReconcileResponse is the HTTP response for POST /integrity/reconcile.
type ReconcileResponse struct {
	Success    bool            `json:"success"`
	Processed  int             `json:"processed"`
	Sealed     int             `json:"sealed"`
	Pending    int             `json:"pending"`
	Failed     int             `json:"failed"`
	MaxRetries int             `json:"max_retries"`
	Items      []ReconcileItem `json:"items"`
}

type ReconcileItem struct {
	EvidenceID  string     `json:"evidence_id"`
	DailyRootID string     `json:"daily_root_id,omitempty"`
	Status      string     `json:"status"`
	Message     string     `json:"message,omitempty"`
	NextRetryAt *time.Time `json:"next_retry_at,omitempty"`
}

func FromReconcileResult(result *models.ReconcileResult) *ReconcileResponse {
	resp := &ReconcileResponse{
		Success:    result.Success,
		Processed:  len(result.Items),
		Sealed:     result.Count(models.ReconcileSealed),
		Pending:    result.Count(models.ReconcilePending),
		Failed:     result.Count(models.ReconcileFailed),
		MaxRetries: result.Count(models.ReconcileMaxRetries),
		Items:      make([]ReconcileItem, 0, len(result.Items)),
	}
	for _, item := range result.Items {
		entry := ReconcileItem{
			EvidenceID:  item.EvidenceID.String(),
			Status:      string(item.Status),
			Message:     item.Message,
			NextRetryAt: item.NextRetryAt,
		}
		if item.DailyRootID != nil {
			entry.DailyRootID = item.DailyRootID.String()
		}
		resp.Items = append(resp.Items, entry)
	}
	return resp
}
