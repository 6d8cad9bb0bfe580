// Package store persists absence requests, vacation balances and
// notifications.
package store

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"worktime/internal/absence/models"
	id "worktime/pkg/domain"
	"worktime/pkg/platform/sentinel"
)

type balanceKey struct {
	employee id.EmployeeID
	year     int
}

// InMemory backs the absence services in tests and local runs.
type InMemory struct {
	mu            sync.RWMutex
	types         map[uuid.UUID]*models.AbsenceType
	requests      map[id.AbsenceRequestID]*models.Request
	approvals     map[id.AbsenceRequestID][]models.Approval
	policies      map[id.CompanyID]*models.VacationPolicy
	balances      map[balanceKey]*models.Balance
	notifications []*models.Notification
	dedupe        map[string]struct{}
}

func NewInMemory() *InMemory {
	return &InMemory{
		types:     make(map[uuid.UUID]*models.AbsenceType),
		requests:  make(map[id.AbsenceRequestID]*models.Request),
		approvals: make(map[id.AbsenceRequestID][]models.Approval),
		policies:  make(map[id.CompanyID]*models.VacationPolicy),
		balances:  make(map[balanceKey]*models.Balance),
		dedupe:    make(map[string]struct{}),
	}
}

func (s *InMemory) SaveAbsenceType(_ context.Context, t *models.AbsenceType) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *t
	s.types[t.ID] = &cp
	return nil
}

func (s *InMemory) SaveRequest(_ context.Context, r *models.Request) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.types[r.AbsenceTypeID]; !ok {
		return sentinel.ErrNotFound
	}
	cp := *r
	s.requests[r.ID] = &cp
	return nil
}

func (s *InMemory) GetRequest(_ context.Context, requestID id.AbsenceRequestID) (*models.Request, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.requests[requestID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (s *InMemory) SavePolicy(_ context.Context, p *models.VacationPolicy) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *p
	s.policies[p.CompanyID] = &cp
	return nil
}

func (s *InMemory) GetPolicy(_ context.Context, companyID id.CompanyID) (*models.VacationPolicy, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.policies[companyID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *InMemory) GetBalance(_ context.Context, employeeID id.EmployeeID, year int) (*models.Balance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.balances[balanceKey{employee: employeeID, year: year}]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *b
	return &cp, nil
}

func (s *InMemory) UpsertBalance(_ context.Context, b *models.Balance) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *b
	s.balances[balanceKey{employee: b.EmployeeID, year: b.Year}] = &cp
	return nil
}

func (s *InMemory) SumVacationDays(_ context.Context, employeeID id.EmployeeID, year int, status models.RequestStatus) (float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	first := id.DateOf(year, 1, 1)
	last := id.DateOf(year, 12, 31)
	var total float64
	for _, r := range s.requests {
		t, ok := s.types[r.AbsenceTypeID]
		if !ok || !t.CountsAsVacation || r.EmployeeID != employeeID || r.Status != status {
			continue
		}
		if r.StartDate.Before(first) || r.EndDate.After(last) {
			continue
		}
		total += r.TotalDays
	}
	return total, nil
}

// ListPending returns pending requests oldest first.
func (s *InMemory) ListPending(_ context.Context) ([]*models.PendingRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.PendingRequest
	for _, r := range s.requests {
		if r.Status != models.StatusPending {
			continue
		}
		t, ok := s.types[r.AbsenceTypeID]
		if !ok {
			continue
		}
		out = append(out, &models.PendingRequest{Request: *r, Type: *t})
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].Request, out[j].Request
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID.String() < b.ID.String()
	})
	return out, nil
}

func (s *InMemory) LastApprovalStep(_ context.Context, requestID id.AbsenceRequestID) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	step := 0
	for _, a := range s.approvals[requestID] {
		step = max(step, a.Step)
	}
	return step, nil
}

func (s *InMemory) RecordEscalation(_ context.Context, a *models.Approval) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.requests[a.RequestID]
	if !ok {
		return sentinel.ErrNotFound
	}
	s.approvals[a.RequestID] = append(s.approvals[a.RequestID], *a)
	r.CurrentApprovalStep = a.Step
	r.UpdatedAt = a.CreatedAt
	return nil
}

// Approvals returns a request's approval trail in insertion order.
func (s *InMemory) Approvals(requestID id.AbsenceRequestID) []models.Approval {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Approval{}, s.approvals[requestID]...)
}

func (s *InMemory) Notify(_ context.Context, n *models.Notification) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n.DedupeKey != "" {
		if _, ok := s.dedupe[n.DedupeKey]; ok {
			return false, nil
		}
		s.dedupe[n.DedupeKey] = struct{}{}
	}
	cp := *n
	s.notifications = append(s.notifications, &cp)
	return true, nil
}

// Notifications returns every stored notification in insertion order.
func (s *InMemory) Notifications() []models.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Notification, 0, len(s.notifications))
	for _, n := range s.notifications {
		out = append(out, *n)
	}
	return out
}
