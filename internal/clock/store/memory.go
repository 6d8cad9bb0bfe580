// Package store reads and appends clock events.
package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"worktime/internal/clock/models"
	id "worktime/pkg/domain"
	"worktime/pkg/platform/sentinel"
)

// InMemory is an append-only clock event ledger for tests and local runs.
type InMemory struct {
	mu     sync.RWMutex
	events []*models.ClockEvent
	byID   map[id.ClockEventID]struct{}
}

func NewInMemory() *InMemory {
	return &InMemory{byID: make(map[id.ClockEventID]struct{})}
}

// Append records an event. Events are never updated.
func (s *InMemory) Append(_ context.Context, e *models.ClockEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[e.ID]; ok {
		return sentinel.ErrConflict
	}
	cp := *e
	cp.Timestamp = cp.Timestamp.UTC()
	s.events = append(s.events, &cp)
	s.byID[e.ID] = struct{}{}
	return nil
}

// ListCompanyEvents returns a company's events in [from, to) ordered by timestamp.
func (s *InMemory) ListCompanyEvents(_ context.Context, companyID id.CompanyID, from, to time.Time) ([]*models.ClockEvent, error) {
	return s.filter(func(e *models.ClockEvent) bool { return e.CompanyID == companyID }, from, to), nil
}

// ListEmployeeEvents returns an employee's events in [from, to) ordered by timestamp.
func (s *InMemory) ListEmployeeEvents(_ context.Context, employeeID id.EmployeeID, from, to time.Time) ([]*models.ClockEvent, error) {
	return s.filter(func(e *models.ClockEvent) bool { return e.EmployeeID == employeeID }, from, to), nil
}

func (s *InMemory) filter(match func(*models.ClockEvent) bool, from, to time.Time) []*models.ClockEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.ClockEvent
	for _, e := range s.events {
		if !match(e) || e.Timestamp.Before(from) || !e.Timestamp.Before(to) {
			continue
		}
		cp := *e
		out = append(out, &cp)
	}
	sortEvents(out)
	return out
}

// sortEvents orders by timestamp, then id so equal instants stay deterministic.
func sortEvents(events []*models.ClockEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		if !events[i].Timestamp.Equal(events[j].Timestamp) {
			return events[i].Timestamp.Before(events[j].Timestamp)
		}
		return events[i].ID.String() < events[j].ID.String()
	})
}
