package models

import (
	"time"

	id "worktime/pkg/domain"
)

// DailyRoot commits to every clock event of one company on one UTC day.
// Sealed flips to true once a qualified timestamp has been obtained.
type DailyRoot struct {
	ID         id.DailyRootID
	CompanyID  id.CompanyID
	Date       id.Date
	RootHash   string
	EventCount int
	Sealed     bool
	SealedAt   *time.Time
	CreatedAt  time.Time
}

type EvidenceType string

const (
	EvidenceDailyTimestamp EvidenceType = "daily_timestamp"
	EvidenceAcknowledgment EvidenceType = "acknowledgment"
)

type EvidenceStatus string

const (
	EvidenceProcessing EvidenceStatus = "processing"
	EvidenceCompleted  EvidenceStatus = "completed"
	EvidenceFailed     EvidenceStatus = "failed"
)

// Evidence tracks one notarization attempt chain with the QTSP.
type Evidence struct {
	ID                 id.EvidenceID
	CompanyID          id.CompanyID
	DailyRootID        *id.DailyRootID
	Type               EvidenceType
	Status             EvidenceStatus
	ProviderEvidenceID string
	TSPToken           string
	TSPTimestamp       *time.Time
	RetryCount         int
	BackoffSeconds     int
	NextRetryAt        *time.Time
	ErrorMessage       string
	CreatedAt          time.Time
	UpdatedAt          time.Time
	CompletedAt        *time.Time
}

// GenerateRequest selects the day and optionally a single company. A nil
// date means yesterday in UTC.
type GenerateRequest struct {
	Date      *id.Date
	CompanyID *id.CompanyID
}

// CompanyResult is the per-company entry of a root generation batch.
type CompanyResult struct {
	CompanyID       id.CompanyID
	Success         bool
	Error           string
	Skipped         bool
	AlreadyExists   bool
	DailyRootID     *id.DailyRootID
	RootHash        string
	EventCount      int
	LegacyEvents    int
	QTSPTimestamped bool
}

type GenerateResult struct {
	Success bool
	Date    id.Date
	Results []CompanyResult
}

// ReconcileStatus is the outcome of one reconciliation attempt.
type ReconcileStatus string

const (
	ReconcileSealed     ReconcileStatus = "sealed"
	ReconcilePending    ReconcileStatus = "pending"
	ReconcileFailed     ReconcileStatus = "failed"
	ReconcileMaxRetries ReconcileStatus = "max_retries"
)

type ReconcileItem struct {
	EvidenceID  id.EvidenceID
	DailyRootID *id.DailyRootID
	Status      ReconcileStatus
	Message     string
	NextRetryAt *time.Time
}

type ReconcileResult struct {
	Success bool
	Items   []ReconcileItem
}

// Count returns how many items ended with status.
func (r *ReconcileResult) Count(status ReconcileStatus) int {
	n := 0
	for _, item := range r.Items {
		if item.Status == status {
			n++
		}
	}
	return n
}
