package integrity

import (
	"context"
	"time"

	"worktime/internal/audit"
	clockmodels "worktime/internal/clock/models"
	dirmodels "worktime/internal/directory/models"
	"worktime/internal/integrity/models"
	"worktime/internal/integrity/notary"
	id "worktime/pkg/domain"
)

//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks

type CompanyDirectory interface {
	GetCompany(ctx context.Context, companyID id.CompanyID) (*dirmodels.Company, error)
	ListCompanies(ctx context.Context) ([]*dirmodels.Company, error)
}

type EventLister interface {
	ListCompanyEvents(ctx context.Context, companyID id.CompanyID, from, to time.Time) ([]*clockmodels.ClockEvent, error)
}

// RootStore persists daily roots. InsertRoot must not overwrite an existing
// (company, date) row and reports false when one was already present.
type RootStore interface {
	GetRoot(ctx context.Context, companyID id.CompanyID, date id.Date) (*models.DailyRoot, error)
	GetRootByID(ctx context.Context, rootID id.DailyRootID) (*models.DailyRoot, error)
	InsertRoot(ctx context.Context, root *models.DailyRoot) (bool, error)
	MarkSealed(ctx context.Context, rootID id.DailyRootID, sealedAt time.Time) error
	ListRoots(ctx context.Context, companyID id.CompanyID, from, to id.Date) ([]*models.DailyRoot, error)
	// ListUnsealedRoots returns unsealed roots that have no daily timestamp
	// evidence yet, oldest first.
	ListUnsealedRoots(ctx context.Context) ([]*models.DailyRoot, error)
}

type EvidenceStore interface {
	SaveEvidence(ctx context.Context, evidence *models.Evidence) error
	EvidenceForRoot(ctx context.Context, rootID id.DailyRootID) (*models.Evidence, error)
	ListEvidencesForRoots(ctx context.Context, rootIDs []id.DailyRootID) ([]*models.Evidence, error)
	// ListReconcilable returns failed evidences below maxRetries that are due
	// at now (or all of them when force is set) and processing evidences
	// that already have a provider id.
	ListReconcilable(ctx context.Context, now time.Time, force bool, maxRetries int) ([]*models.Evidence, error)
}

// ReconcileStore is the stored state reconciliation works from.
type ReconcileStore interface {
	ListReconcilable(ctx context.Context, now time.Time, force bool, maxRetries int) ([]*models.Evidence, error)
	ListUnsealedRoots(ctx context.Context) ([]*models.DailyRoot, error)
}

// ProviderRefStore caches the QTSP containers created for a company.
type ProviderRefStore interface {
	GetCaseFile(ctx context.Context, companyID id.CompanyID) (string, error)
	SaveCaseFile(ctx context.Context, companyID id.CompanyID, externalID string) error
	GetEvidenceGroup(ctx context.Context, companyID id.CompanyID, yearMonth string) (string, error)
	SaveEvidenceGroup(ctx context.Context, companyID id.CompanyID, yearMonth, externalID string) error
}

type Store interface {
	RootStore
	EvidenceStore
	ProviderRefStore
}

// Notary is the QTSP API surface used for sealing.
type Notary interface {
	CreateCaseFile(ctx context.Context, name, description string) (string, error)
	CreateEvidenceGroup(ctx context.Context, caseFileID, name string) (string, error)
	CreateEvidence(ctx context.Context, groupID string, req notary.EvidenceRequest) (string, error)
	AwaitToken(ctx context.Context, evidenceID string) (*notary.Token, error)
}

// Notarizer timestamps a hash and records the resulting evidence.
type Notarizer interface {
	Notarize(ctx context.Context, req NotarizeRequest) (*NotarizeResponse, error)
}

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}
