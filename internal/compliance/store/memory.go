package store

import (
	"context"
	"sort"
	"sync"

	"worktime/internal/compliance/models"
	id "worktime/pkg/domain"
)

type dayKey struct {
	employee id.EmployeeID
	date     id.Date
}

// InMemory keeps violations keyed by (employee, date, code), mirroring the
// uniqueness constraint of the SQL table.
type InMemory struct {
	mu   sync.RWMutex
	days map[dayKey]map[models.Code]models.Violation
}

func NewInMemory() *InMemory {
	return &InMemory{days: make(map[dayKey]map[models.Code]models.Violation)}
}

func (s *InMemory) ReplaceDay(_ context.Context, employeeID id.EmployeeID, date id.Date, codes []models.Code, violations []models.Violation) (models.ReplaceOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := dayKey{employee: employeeID, date: date}
	existing := s.days[key]
	if existing == nil {
		existing = make(map[models.Code]models.Violation)
		s.days[key] = existing
	}
	previous := make(map[models.Code]bool)
	for _, code := range codes {
		if _, ok := existing[code]; ok {
			previous[code] = true
			delete(existing, code)
		}
	}
	for _, v := range violations {
		existing[v.Code] = v
	}
	return Diff(previous, violations), nil
}

func (s *InMemory) ListByCompanyDay(_ context.Context, companyID id.CompanyID, date id.Date) ([]models.Violation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Violation
	for key, byCode := range s.days {
		if !key.date.Equal(date) {
			continue
		}
		for _, v := range byCode {
			if v.CompanyID == companyID {
				out = append(out, v)
			}
		}
	}
	sortViolations(out)
	return out, nil
}

// Diff classifies codes given which were stored before the replacement and
// which violations were written.
func Diff(previous map[models.Code]bool, written []models.Violation) models.ReplaceOutcome {
	var out models.ReplaceOutcome
	now := make(map[models.Code]bool, len(written))
	for _, v := range written {
		now[v.Code] = true
		if previous[v.Code] {
			out.Retained = append(out.Retained, v.Code)
		} else {
			out.Created = append(out.Created, v.Code)
		}
	}
	for code := range previous {
		if !now[code] {
			out.Cleared = append(out.Cleared, code)
		}
	}
	sortCodes(out.Created)
	sortCodes(out.Retained)
	sortCodes(out.Cleared)
	return out
}

func sortCodes(codes []models.Code) {
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
}

func sortViolations(vs []models.Violation) {
	sort.Slice(vs, func(i, j int) bool {
		if vs[i].EmployeeID != vs[j].EmployeeID {
			return vs[i].EmployeeID.String() < vs[j].EmployeeID.String()
		}
		return vs[i].Code < vs[j].Code
	})
}
