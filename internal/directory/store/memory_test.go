package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"worktime/internal/directory/models"
	id "worktime/pkg/domain"
	"worktime/pkg/platform/sentinel"
)

type InMemoryDirectorySuite struct {
	suite.Suite
	store *InMemory
	ctx   context.Context
}

func TestInMemoryDirectorySuite(t *testing.T) {
	suite.Run(t, new(InMemoryDirectorySuite))
}

func (s *InMemoryDirectorySuite) SetupTest() {
	s.store = NewInMemory()
	s.ctx = context.Background()
}

func (s *InMemoryDirectorySuite) newCompany(createdAt time.Time) *models.Company {
	c := &models.Company{ID: id.CompanyID(uuid.New()), Name: "Acme", Timezone: "UTC", CreatedAt: createdAt}
	s.Require().NoError(s.store.CreateCompany(s.ctx, c))
	return c
}

func (s *InMemoryDirectorySuite) TestListCompaniesOrderedByCreation() {
	now := time.Now()
	second := s.newCompany(now)
	first := s.newCompany(now.Add(-time.Hour))

	companies, err := s.store.ListCompanies(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(companies, 2)
	s.Equal(first.ID, companies[0].ID)
	s.Equal(second.ID, companies[1].ID)
}

func (s *InMemoryDirectorySuite) TestListActiveEmployeesScopedToCompany() {
	c1 := s.newCompany(time.Now())
	c2 := s.newCompany(time.Now())

	active := &models.Employee{ID: id.EmployeeID(uuid.New()), CompanyID: c1.ID, FullName: "A", IsActive: true}
	inactive := &models.Employee{ID: id.EmployeeID(uuid.New()), CompanyID: c1.ID, FullName: "B"}
	other := &models.Employee{ID: id.EmployeeID(uuid.New()), CompanyID: c2.ID, FullName: "C", IsActive: true}
	for _, e := range []*models.Employee{active, inactive, other} {
		s.Require().NoError(s.store.CreateEmployee(s.ctx, e))
	}

	employees, err := s.store.ListActiveEmployees(s.ctx, c1.ID)
	s.Require().NoError(err)
	s.Require().Len(employees, 1)
	s.Equal(active.ID, employees[0].ID)
}

func (s *InMemoryDirectorySuite) TestCreateEmployeeRequiresCompany() {
	err := s.store.CreateEmployee(s.ctx, &models.Employee{
		ID:        id.EmployeeID(uuid.New()),
		CompanyID: id.CompanyID(uuid.New()),
	})
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *InMemoryDirectorySuite) TestGetMissing() {
	_, err := s.store.GetCompany(s.ctx, id.CompanyID(uuid.New()))
	s.ErrorIs(err, sentinel.ErrNotFound)
	_, err = s.store.GetEmployee(s.ctx, id.EmployeeID(uuid.New()))
	s.ErrorIs(err, sentinel.ErrNotFound)
}
