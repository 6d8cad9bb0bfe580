package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"worktime/internal/integrity/models"
	"worktime/internal/integrity/store"
	id "worktime/pkg/domain"
	"worktime/pkg/platform/sentinel"
)

type InMemoryIntegritySuite struct {
	suite.Suite
	store   *store.InMemory
	company id.CompanyID
	now     time.Time
}

func TestInMemoryIntegritySuite(t *testing.T) {
	suite.Run(t, new(InMemoryIntegritySuite))
}

func (s *InMemoryIntegritySuite) SetupTest() {
	s.store = store.NewInMemory()
	s.company = id.CompanyID(uuid.New())
	s.now = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
}

func (s *InMemoryIntegritySuite) root(date id.Date) *models.DailyRoot {
	return &models.DailyRoot{
		ID:         id.DailyRootID(uuid.New()),
		CompanyID:  s.company,
		Date:       date,
		RootHash:   "hash-" + date.String(),
		EventCount: 2,
		CreatedAt:  s.now,
	}
}

func (s *InMemoryIntegritySuite) TestInsertRootIsUniquePerCompanyDay() {
	ctx := context.Background()
	date := id.DateOf(2024, time.March, 4)

	inserted, err := s.store.InsertRoot(ctx, s.root(date))
	s.Require().NoError(err)
	s.True(inserted)

	inserted, err = s.store.InsertRoot(ctx, s.root(date))
	s.Require().NoError(err)
	s.False(inserted)

	got, err := s.store.GetRoot(ctx, s.company, date)
	s.Require().NoError(err)
	s.Equal("hash-2024-03-04", got.RootHash)
	s.False(got.Sealed)

	_, err = s.store.GetRoot(ctx, s.company, date.AddDays(1))
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *InMemoryIntegritySuite) TestListRootsOrderedAndBounded() {
	ctx := context.Background()
	for _, day := range []int{6, 4, 5, 8} {
		_, err := s.store.InsertRoot(ctx, s.root(id.DateOf(2024, time.March, day)))
		s.Require().NoError(err)
	}

	roots, err := s.store.ListRoots(ctx, s.company, id.DateOf(2024, time.March, 4), id.DateOf(2024, time.March, 6))
	s.Require().NoError(err)
	s.Require().Len(roots, 3)
	s.Equal("2024-03-04", roots[0].Date.String())
	s.Equal("2024-03-05", roots[1].Date.String())
	s.Equal("2024-03-06", roots[2].Date.String())
}

func (s *InMemoryIntegritySuite) TestMarkSealed() {
	ctx := context.Background()
	r := s.root(id.DateOf(2024, time.March, 4))
	_, err := s.store.InsertRoot(ctx, r)
	s.Require().NoError(err)

	s.Require().NoError(s.store.MarkSealed(ctx, r.ID, s.now))
	got, err := s.store.GetRootByID(ctx, r.ID)
	s.Require().NoError(err)
	s.True(got.Sealed)
	s.Require().NotNil(got.SealedAt)
	s.True(got.SealedAt.Equal(s.now))

	s.ErrorIs(s.store.MarkSealed(ctx, id.DailyRootID(uuid.New()), s.now), sentinel.ErrNotFound)
}

func (s *InMemoryIntegritySuite) TestListUnsealedRootsSkipsSealedAndStartedRoots() {
	ctx := context.Background()
	orphan := s.root(id.DateOf(2024, time.March, 4))
	started := s.root(id.DateOf(2024, time.March, 5))
	sealed := s.root(id.DateOf(2024, time.March, 6))
	older := s.root(id.DateOf(2024, time.March, 7))
	older.CreatedAt = s.now.Add(-time.Hour)
	for _, r := range []*models.DailyRoot{orphan, started, sealed, older} {
		_, err := s.store.InsertRoot(ctx, r)
		s.Require().NoError(err)
	}
	s.Require().NoError(s.store.MarkSealed(ctx, sealed.ID, s.now))
	ev := s.evidence(models.EvidenceFailed, 1, nil, "")
	ev.DailyRootID = &started.ID
	s.Require().NoError(s.store.SaveEvidence(ctx, ev))

	got, err := s.store.ListUnsealedRoots(ctx)
	s.Require().NoError(err)
	s.Require().Len(got, 2)
	s.Equal(older.ID, got[0].ID)
	s.Equal(orphan.ID, got[1].ID)
}

func (s *InMemoryIntegritySuite) evidence(status models.EvidenceStatus, retries int, nextRetry *time.Time, providerID string) *models.Evidence {
	rootID := id.DailyRootID(uuid.New())
	return &models.Evidence{
		ID:                 id.EvidenceID(uuid.New()),
		CompanyID:          s.company,
		DailyRootID:        &rootID,
		Type:               models.EvidenceDailyTimestamp,
		Status:             status,
		ProviderEvidenceID: providerID,
		RetryCount:         retries,
		NextRetryAt:        nextRetry,
		CreatedAt:          s.now,
	}
}

func (s *InMemoryIntegritySuite) TestListReconcilable() {
	ctx := context.Background()
	past := s.now.Add(-time.Minute)
	future := s.now.Add(time.Hour)

	due := s.evidence(models.EvidenceFailed, 1, &past, "")
	notDue := s.evidence(models.EvidenceFailed, 1, &future, "")
	exhausted := s.evidence(models.EvidenceFailed, 10, &past, "")
	polling := s.evidence(models.EvidenceProcessing, 0, nil, "ev-1")
	fresh := s.evidence(models.EvidenceProcessing, 0, nil, "")
	done := s.evidence(models.EvidenceCompleted, 0, nil, "ev-2")
	for _, ev := range []*models.Evidence{due, notDue, exhausted, polling, fresh, done} {
		s.Require().NoError(s.store.SaveEvidence(ctx, ev))
	}

	ids := func(evs []*models.Evidence) []id.EvidenceID {
		out := make([]id.EvidenceID, 0, len(evs))
		for _, ev := range evs {
			out = append(out, ev.ID)
		}
		return out
	}

	got, err := s.store.ListReconcilable(ctx, s.now, false, 10)
	s.Require().NoError(err)
	s.ElementsMatch([]id.EvidenceID{due.ID, polling.ID}, ids(got))

	got, err = s.store.ListReconcilable(ctx, s.now, true, 10)
	s.Require().NoError(err)
	s.ElementsMatch([]id.EvidenceID{due.ID, notDue.ID, polling.ID}, ids(got))
}

func (s *InMemoryIntegritySuite) TestOneDailyEvidencePerRoot() {
	ctx := context.Background()
	first := s.evidence(models.EvidenceProcessing, 0, nil, "")
	s.Require().NoError(s.store.SaveEvidence(ctx, first))

	second := s.evidence(models.EvidenceProcessing, 0, nil, "")
	second.DailyRootID = first.DailyRootID
	s.ErrorIs(s.store.SaveEvidence(ctx, second), sentinel.ErrConflict)

	first.Status = models.EvidenceFailed
	s.Require().NoError(s.store.SaveEvidence(ctx, first), "updating the same evidence is allowed")
	got, err := s.store.EvidenceForRoot(ctx, *first.DailyRootID)
	s.Require().NoError(err)
	s.Equal(models.EvidenceFailed, got.Status)
}

func (s *InMemoryIntegritySuite) TestProviderReferencesKeepFirst() {
	ctx := context.Background()
	_, err := s.store.GetCaseFile(ctx, s.company)
	s.ErrorIs(err, sentinel.ErrNotFound)

	s.Require().NoError(s.store.SaveCaseFile(ctx, s.company, "cf-1"))
	s.Require().NoError(s.store.SaveCaseFile(ctx, s.company, "cf-2"))
	ref, err := s.store.GetCaseFile(ctx, s.company)
	s.Require().NoError(err)
	s.Equal("cf-1", ref)

	s.Require().NoError(s.store.SaveEvidenceGroup(ctx, s.company, "2024-03", "grp-1"))
	ref, err = s.store.GetEvidenceGroup(ctx, s.company, "2024-03")
	s.Require().NoError(err)
	s.Equal("grp-1", ref)
	_, err = s.store.GetEvidenceGroup(ctx, s.company, "2024-04")
	s.ErrorIs(err, sentinel.ErrNotFound)
}
