// Package store persists rule versions and assignments.
package store

import (
	"context"
	"sync"
	"time"

	"worktime/internal/rules/models"
	id "worktime/pkg/domain"
	"worktime/pkg/platform/sentinel"
)

// InMemory stores rule versions and assignments in memory.
type InMemory struct {
	mu          sync.RWMutex
	versions    map[id.RuleVersionID]*models.RuleVersion
	assignments []*models.Assignment
}

func NewInMemory() *InMemory {
	return &InMemory{versions: make(map[id.RuleVersionID]*models.RuleVersion)}
}

func (s *InMemory) CreateVersion(_ context.Context, v *models.RuleVersion) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.versions[v.ID]; ok {
		return sentinel.ErrConflict
	}
	cp := *v
	s.versions[v.ID] = &cp
	return nil
}

// Publish seals a version. Published versions are immutable.
func (s *InMemory) Publish(_ context.Context, versionID id.RuleVersionID, now time.Time) (*models.RuleVersion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.versions[versionID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	if err := v.Publish(now); err != nil {
		return nil, sentinel.ErrInvalidState
	}
	cp := *v
	return &cp, nil
}

func (s *InMemory) CreateAssignment(_ context.Context, a *models.Assignment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.versions[a.RuleVersionID]; !ok {
		return sentinel.ErrNotFound
	}
	cp := *a
	s.assignments = append(s.assignments, &cp)
	return nil
}

// SetActive toggles an assignment.
func (s *InMemory) SetActive(_ context.Context, assignmentID id.AssignmentID, active bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.assignments {
		if a.ID == assignmentID {
			a.IsActive = active
			return nil
		}
	}
	return sentinel.ErrNotFound
}

// ListBindings returns every assignment of the company joined with its
// version. Filtering by activity, scope and date is the resolver's job.
func (s *InMemory) ListBindings(_ context.Context, companyID id.CompanyID) ([]models.Binding, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Binding
	for _, a := range s.assignments {
		if a.CompanyID != companyID {
			continue
		}
		v, ok := s.versions[a.RuleVersionID]
		if !ok {
			continue
		}
		out = append(out, models.Binding{Assignment: *a, Version: *v})
	}
	return out, nil
}
