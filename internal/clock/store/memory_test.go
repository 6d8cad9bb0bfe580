package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"worktime/internal/clock/models"
	id "worktime/pkg/domain"
	"worktime/pkg/platform/sentinel"
)

type InMemoryClockSuite struct {
	suite.Suite
	store    *InMemory
	ctx      context.Context
	company  id.CompanyID
	employee id.EmployeeID
	day      time.Time
}

func TestInMemoryClockSuite(t *testing.T) {
	suite.Run(t, new(InMemoryClockSuite))
}

func (s *InMemoryClockSuite) SetupTest() {
	s.store = NewInMemory()
	s.ctx = context.Background()
	s.company = id.CompanyID(uuid.New())
	s.employee = id.EmployeeID(uuid.New())
	s.day = time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
}

func (s *InMemoryClockSuite) add(ts time.Time, typ models.EventType) *models.ClockEvent {
	e := &models.ClockEvent{
		ID:         id.ClockEventID(uuid.New()),
		CompanyID:  s.company,
		EmployeeID: s.employee,
		Type:       typ,
		Timestamp:  ts,
	}
	s.Require().NoError(s.store.Append(s.ctx, e))
	return e
}

func (s *InMemoryClockSuite) TestWindowIsHalfOpenAndOrdered() {
	late := s.add(s.day.Add(17*time.Hour), models.EventExit)
	early := s.add(s.day.Add(8*time.Hour), models.EventEntry)
	s.add(s.day.Add(24*time.Hour), models.EventEntry)
	s.add(s.day.Add(-time.Second), models.EventExit)

	events, err := s.store.ListCompanyEvents(s.ctx, s.company, s.day, s.day.Add(24*time.Hour))
	s.Require().NoError(err)
	s.Require().Len(events, 2)
	s.Equal(early.ID, events[0].ID)
	s.Equal(late.ID, events[1].ID)
}

func (s *InMemoryClockSuite) TestEmployeeScope() {
	s.add(s.day.Add(8*time.Hour), models.EventEntry)
	other := &models.ClockEvent{
		ID:         id.ClockEventID(uuid.New()),
		CompanyID:  s.company,
		EmployeeID: id.EmployeeID(uuid.New()),
		Type:       models.EventEntry,
		Timestamp:  s.day.Add(9 * time.Hour),
	}
	s.Require().NoError(s.store.Append(s.ctx, other))

	events, err := s.store.ListEmployeeEvents(s.ctx, s.employee, s.day, s.day.Add(24*time.Hour))
	s.Require().NoError(err)
	s.Len(events, 1)
}

func (s *InMemoryClockSuite) TestAppendRejectsDuplicateID() {
	e := s.add(s.day, models.EventEntry)
	s.ErrorIs(s.store.Append(s.ctx, e), sentinel.ErrConflict)
}
