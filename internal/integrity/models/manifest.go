package models

import (
	"time"

	id "worktime/pkg/domain"
)

const (
	ManifestVersion   = "1.0"
	ManifestAlgorithm = "SHA-256"
)

// Manifest is the read-only export document for a company and period.
type Manifest struct {
	Version     string             `json:"version"`
	GeneratedAt string             `json:"generated_at"`
	Company     ManifestCompany    `json:"company"`
	Period      ManifestPeriod     `json:"period"`
	CaseFileID  string             `json:"case_file_id,omitempty"`
	DailyRoots  []ManifestRoot     `json:"daily_roots"`
	Evidences   []ManifestEvidence `json:"evidences"`
	Stats       ManifestStats      `json:"stats"`
	Integrity   ManifestIntegrity  `json:"integrity"`
}

type ManifestCompany struct {
	ID   id.CompanyID `json:"id"`
	Name string       `json:"name"`
}

type ManifestPeriod struct {
	Start id.Date `json:"start"`
	End   id.Date `json:"end"`
}

type ManifestRoot struct {
	ID         id.DailyRootID `json:"id"`
	Date       id.Date        `json:"date"`
	RootHash   string         `json:"root_hash"`
	EventCount int            `json:"event_count"`
	Sealed     bool           `json:"sealed"`
	SealedAt   *time.Time     `json:"sealed_at,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}

type ManifestEvidence struct {
	ID           id.EvidenceID   `json:"id"`
	ExternalID   string          `json:"external_id,omitempty"`
	Type         EvidenceType    `json:"type"`
	Status       EvidenceStatus  `json:"status"`
	DailyRootID  *id.DailyRootID `json:"daily_root_id,omitempty"`
	Date         *id.Date        `json:"date,omitempty"`
	RootHash     string          `json:"root_hash,omitempty"`
	TSPToken     string          `json:"tsp_token,omitempty"`
	TSPTimestamp *time.Time      `json:"tsp_timestamp,omitempty"`
}

type ManifestStats struct {
	TotalDays     int `json:"total_days"`
	TotalEvents   int `json:"total_events"`
	SealedDays    int `json:"sealed_days"`
	UnsealedDays  int `json:"unsealed_days"`
	EvidenceCount int `json:"evidence_count"`
}

type ManifestIntegrity struct {
	Algorithm string `json:"algorithm"`
	Hash      string `json:"hash"`
}
