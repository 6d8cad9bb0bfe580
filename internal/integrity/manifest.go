package integrity

import (
	"context"
	"errors"
	"strings"

	clockmodels "worktime/internal/clock/models"
	"worktime/internal/integrity/models"
	id "worktime/pkg/domain"
	dErrors "worktime/pkg/domain-errors"
	"worktime/pkg/platform/sentinel"
	"worktime/pkg/requestcontext"
)

// Manifest assembles the export document for a company over [start, end].
// The integrity hash commits to every root hash in date order plus the
// generation timestamp.
func (s *Service) Manifest(ctx context.Context, companyID id.CompanyID, start, end id.Date) (*models.Manifest, error) {
	if companyID.IsNil() {
		return nil, dErrors.New(dErrors.CodeBadRequest, "company_id is required")
	}
	if start.IsZero() || end.IsZero() {
		return nil, dErrors.New(dErrors.CodeBadRequest, "start_date and end_date are required")
	}
	if end.Before(start) {
		return nil, dErrors.New(dErrors.CodeBadRequest, "end_date must not be before start_date")
	}

	company, err := s.directory.GetCompany(ctx, companyID)
	if errors.Is(err, sentinel.ErrNotFound) {
		return nil, dErrors.New(dErrors.CodeNotFound, "company not found")
	}
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load company")
	}
	roots, err := s.store.ListRoots(ctx, companyID, start, end)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list daily roots")
	}
	rootIDs := make([]id.DailyRootID, 0, len(roots))
	for _, r := range roots {
		rootIDs = append(rootIDs, r.ID)
	}
	evidences, err := s.store.ListEvidencesForRoots(ctx, rootIDs)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list evidences")
	}
	caseFileID, err := s.store.GetCaseFile(ctx, companyID)
	if err != nil && !errors.Is(err, sentinel.ErrNotFound) {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load case file")
	}

	m := &models.Manifest{
		Version:     models.ManifestVersion,
		GeneratedAt: requestcontext.Now(ctx).UTC().Format(clockmodels.HashTimestampLayout),
		Company:     models.ManifestCompany{ID: company.ID, Name: company.Name},
		Period:      models.ManifestPeriod{Start: start, End: end},
		CaseFileID:  caseFileID,
		DailyRoots:  make([]models.ManifestRoot, 0, len(roots)),
		Evidences:   make([]models.ManifestEvidence, 0, len(evidences)),
	}

	byID := make(map[id.DailyRootID]*models.DailyRoot, len(roots))
	var concatenated strings.Builder
	for _, r := range roots {
		byID[r.ID] = r
		concatenated.WriteString(r.RootHash)
		m.DailyRoots = append(m.DailyRoots, models.ManifestRoot{
			ID:         r.ID,
			Date:       r.Date,
			RootHash:   r.RootHash,
			EventCount: r.EventCount,
			Sealed:     r.Sealed,
			SealedAt:   r.SealedAt,
			CreatedAt:  r.CreatedAt,
		})
		m.Stats.TotalEvents += r.EventCount
		if r.Sealed {
			m.Stats.SealedDays++
		} else {
			m.Stats.UnsealedDays++
		}
	}
	m.Stats.TotalDays = len(roots)
	m.Stats.EvidenceCount = len(evidences)

	for _, ev := range evidences {
		entry := models.ManifestEvidence{
			ID:           ev.ID,
			ExternalID:   ev.ProviderEvidenceID,
			Type:         ev.Type,
			Status:       ev.Status,
			DailyRootID:  ev.DailyRootID,
			TSPToken:     ev.TSPToken,
			TSPTimestamp: ev.TSPTimestamp,
		}
		if ev.DailyRootID != nil {
			if r, ok := byID[*ev.DailyRootID]; ok {
				date := r.Date
				entry.Date = &date
				entry.RootHash = r.RootHash
			}
		}
		m.Evidences = append(m.Evidences, entry)
	}

	m.Integrity = models.ManifestIntegrity{
		Algorithm: models.ManifestAlgorithm,
		Hash:      clockmodels.SHA256Hex(concatenated.String() + m.GeneratedAt),
	}
	return m, nil
}
