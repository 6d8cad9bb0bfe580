package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"worktime/internal/integrity/models"
	id "worktime/pkg/domain"
	"worktime/pkg/platform/sentinel"
)

type rootKey struct {
	company id.CompanyID
	date    id.Date
}

type groupKey struct {
	company   id.CompanyID
	yearMonth string
}

// InMemory implements the integrity store for tests and local runs. Roots
// are unique per (company, date) like the SQL table.
type InMemory struct {
	mu        sync.RWMutex
	roots     map[id.DailyRootID]*models.DailyRoot
	rootByDay map[rootKey]id.DailyRootID
	evidences map[id.EvidenceID]*models.Evidence
	caseFiles map[id.CompanyID]string
	groups    map[groupKey]string
}

func NewInMemory() *InMemory {
	return &InMemory{
		roots:     make(map[id.DailyRootID]*models.DailyRoot),
		rootByDay: make(map[rootKey]id.DailyRootID),
		evidences: make(map[id.EvidenceID]*models.Evidence),
		caseFiles: make(map[id.CompanyID]string),
		groups:    make(map[groupKey]string),
	}
}

func (s *InMemory) GetRoot(_ context.Context, companyID id.CompanyID, date id.Date) (*models.DailyRoot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rootID, ok := s.rootByDay[rootKey{company: companyID, date: date}]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	root := *s.roots[rootID]
	return &root, nil
}

func (s *InMemory) GetRootByID(_ context.Context, rootID id.DailyRootID) (*models.DailyRoot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	root, ok := s.roots[rootID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *root
	return &cp, nil
}

func (s *InMemory) InsertRoot(_ context.Context, root *models.DailyRoot) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := rootKey{company: root.CompanyID, date: root.Date}
	if _, exists := s.rootByDay[key]; exists {
		return false, nil
	}
	if _, exists := s.roots[root.ID]; exists {
		return false, fmt.Errorf("daily root %s: %w", root.ID, sentinel.ErrConflict)
	}
	cp := *root
	s.roots[root.ID] = &cp
	s.rootByDay[key] = root.ID
	return true, nil
}

func (s *InMemory) MarkSealed(_ context.Context, rootID id.DailyRootID, sealedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	root, ok := s.roots[rootID]
	if !ok {
		return sentinel.ErrNotFound
	}
	root.Sealed = true
	root.SealedAt = &sealedAt
	return nil
}

// ListRoots returns the company's roots with from <= date <= to, oldest first.
func (s *InMemory) ListRoots(_ context.Context, companyID id.CompanyID, from, to id.Date) ([]*models.DailyRoot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.DailyRoot
	for _, r := range s.roots {
		if r.CompanyID != companyID || r.Date.Before(from) || r.Date.After(to) {
			continue
		}
		cp := *r
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (s *InMemory) ListUnsealedRoots(_ context.Context) ([]*models.DailyRoot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	withEvidence := make(map[id.DailyRootID]bool)
	for _, ev := range s.evidences {
		if ev.Type == models.EvidenceDailyTimestamp && ev.DailyRootID != nil {
			withEvidence[*ev.DailyRootID] = true
		}
	}
	var out []*models.DailyRoot
	for _, r := range s.roots {
		if r.Sealed || withEvidence[r.ID] {
			continue
		}
		cp := *r
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out, nil
}

func (s *InMemory) SaveEvidence(_ context.Context, ev *models.Evidence) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ev.DailyRootID != nil && ev.Type == models.EvidenceDailyTimestamp {
		for _, other := range s.evidences {
			if other.ID != ev.ID && other.Type == models.EvidenceDailyTimestamp &&
				other.DailyRootID != nil && *other.DailyRootID == *ev.DailyRootID {
				return fmt.Errorf("evidence for root %s: %w", *ev.DailyRootID, sentinel.ErrConflict)
			}
		}
	}
	cp := *ev
	s.evidences[ev.ID] = &cp
	return nil
}

func (s *InMemory) EvidenceForRoot(_ context.Context, rootID id.DailyRootID) (*models.Evidence, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, ev := range s.evidences {
		if ev.Type == models.EvidenceDailyTimestamp && ev.DailyRootID != nil && *ev.DailyRootID == rootID {
			cp := *ev
			return &cp, nil
		}
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemory) ListEvidencesForRoots(_ context.Context, rootIDs []id.DailyRootID) ([]*models.Evidence, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	wanted := make(map[id.DailyRootID]bool, len(rootIDs))
	for _, rid := range rootIDs {
		wanted[rid] = true
	}
	var out []*models.Evidence
	for _, ev := range s.evidences {
		if ev.DailyRootID != nil && wanted[*ev.DailyRootID] {
			cp := *ev
			out = append(out, &cp)
		}
	}
	sortEvidences(out)
	return out, nil
}

func (s *InMemory) ListReconcilable(_ context.Context, now time.Time, force bool, maxRetries int) ([]*models.Evidence, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Evidence
	for _, ev := range s.evidences {
		if ev.Type != models.EvidenceDailyTimestamp || !reconcilable(ev, now, force, maxRetries) {
			continue
		}
		cp := *ev
		out = append(out, &cp)
	}
	sortEvidences(out)
	return out, nil
}

func reconcilable(ev *models.Evidence, now time.Time, force bool, maxRetries int) bool {
	switch ev.Status {
	case models.EvidenceFailed:
		if ev.RetryCount >= maxRetries {
			return false
		}
		return force || ev.NextRetryAt == nil || !ev.NextRetryAt.After(now)
	case models.EvidenceProcessing:
		return ev.ProviderEvidenceID != ""
	default:
		return false
	}
}

func (s *InMemory) GetCaseFile(_ context.Context, companyID id.CompanyID) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ref, ok := s.caseFiles[companyID]
	if !ok {
		return "", sentinel.ErrNotFound
	}
	return ref, nil
}

func (s *InMemory) SaveCaseFile(_ context.Context, companyID id.CompanyID, externalID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.caseFiles[companyID]; !ok {
		s.caseFiles[companyID] = externalID
	}
	return nil
}

func (s *InMemory) GetEvidenceGroup(_ context.Context, companyID id.CompanyID, yearMonth string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ref, ok := s.groups[groupKey{company: companyID, yearMonth: yearMonth}]
	if !ok {
		return "", sentinel.ErrNotFound
	}
	return ref, nil
}

func (s *InMemory) SaveEvidenceGroup(_ context.Context, companyID id.CompanyID, yearMonth, externalID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := groupKey{company: companyID, yearMonth: yearMonth}
	if _, ok := s.groups[key]; !ok {
		s.groups[key] = externalID
	}
	return nil
}

func sortEvidences(evs []*models.Evidence) {
	sort.Slice(evs, func(i, j int) bool {
		if !evs[i].CreatedAt.Equal(evs[j].CreatedAt) {
			return evs[i].CreatedAt.Before(evs[j].CreatedAt)
		}
		return evs[i].ID.String() < evs[j].ID.String()
	})
}
