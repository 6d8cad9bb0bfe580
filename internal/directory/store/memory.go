// Package store persists the tenant directory: companies and employees.
package store

import (
	"context"
	"sort"
	"sync"

	"worktime/internal/directory/models"
	id "worktime/pkg/domain"
	"worktime/pkg/platform/sentinel"
)

// InMemory is a directory store for tests and local runs.
type InMemory struct {
	mu        sync.RWMutex
	companies map[id.CompanyID]*models.Company
	employees map[id.EmployeeID]*models.Employee
}

func NewInMemory() *InMemory {
	return &InMemory{
		companies: make(map[id.CompanyID]*models.Company),
		employees: make(map[id.EmployeeID]*models.Employee),
	}
}

func (s *InMemory) CreateCompany(_ context.Context, c *models.Company) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.companies[c.ID]; ok {
		return sentinel.ErrConflict
	}
	cp := *c
	s.companies[c.ID] = &cp
	return nil
}

func (s *InMemory) CreateEmployee(_ context.Context, e *models.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.companies[e.CompanyID]; !ok {
		return sentinel.ErrNotFound
	}
	if _, ok := s.employees[e.ID]; ok {
		return sentinel.ErrConflict
	}
	cp := *e
	s.employees[e.ID] = &cp
	return nil
}

func (s *InMemory) GetCompany(_ context.Context, companyID id.CompanyID) (*models.Company, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.companies[companyID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

// ListCompanies returns every company ordered by creation time then id.
func (s *InMemory) ListCompanies(_ context.Context) ([]*models.Company, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Company, 0, len(s.companies))
	for _, c := range s.companies {
		cp := *c
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

func (s *InMemory) GetEmployee(_ context.Context, employeeID id.EmployeeID) (*models.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.employees[employeeID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *e
	return &cp, nil
}

// ListActiveEmployees returns a company's active employees ordered by id.
func (s *InMemory) ListActiveEmployees(_ context.Context, companyID id.CompanyID) ([]*models.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Employee
	for _, e := range s.employees {
		if e.CompanyID == companyID && e.IsActive {
			cp := *e
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID.String() < out[j].ID.String() })
	return out, nil
}
