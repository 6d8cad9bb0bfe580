package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "worktime/pkg/domain"
)

var (
	testEmployee = id.EmployeeID(uuid.MustParse("11111111-1111-1111-1111-111111111111"))
	entryAt      = time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC)
	exitAt       = time.Date(2024, 3, 15, 17, 30, 0, 0, time.UTC)
)

const (
	genesisHash = "08b6ade64ce7ab1ca8850bc834038bdc04ce3d6fffe44a040b7ada6da470c05c"
	secondHash  = "5aa117d1228fc11568283044a2feeefa24e99e0c68ea204c8f1d272060da1a99"
)

func TestComputeEventHash(t *testing.T) {
	t.Run("first event chains to genesis", func(t *testing.T) {
		assert.Equal(t, genesisHash, ComputeEventHash(testEmployee, EventEntry, entryAt, ""))
		assert.Equal(t, genesisHash, ComputeEventHash(testEmployee, EventEntry, entryAt, GenesisMarker))
	})

	t.Run("next event chains to previous hash", func(t *testing.T) {
		assert.Equal(t, secondHash, ComputeEventHash(testEmployee, EventExit, exitAt, genesisHash))
	})

	t.Run("timestamp is normalized to UTC", func(t *testing.T) {
		madrid := time.FixedZone("CET", 3600)
		assert.Equal(t, genesisHash, ComputeEventHash(testEmployee, EventEntry, entryAt.In(madrid), ""))
	})
}

func TestLeafHash(t *testing.T) {
	eventID := id.ClockEventID(uuid.MustParse("22222222-2222-2222-2222-222222222222"))

	legacy := &ClockEvent{ID: eventID}
	hash, isLegacy := legacy.LeafHash()
	assert.True(t, isLegacy)
	assert.Equal(t, "05d17100b346c29d6760a0fdedcf8623945b53a26f7f811ae70835610f9e6797", hash)

	sealed := &ClockEvent{ID: eventID, EventHash: genesisHash}
	hash, isLegacy = sealed.LeafHash()
	assert.False(t, isLegacy)
	assert.Equal(t, genesisHash, hash)
}

func chain() []*ClockEvent {
	first := &ClockEvent{ID: id.ClockEventID(uuid.New()), EmployeeID: testEmployee, Type: EventEntry, Timestamp: entryAt}
	first.Seal("")
	second := &ClockEvent{ID: id.ClockEventID(uuid.New()), EmployeeID: testEmployee, Type: EventExit, Timestamp: exitAt}
	second.Seal(first.EventHash)
	return []*ClockEvent{first, second}
}

func TestVerifyChain(t *testing.T) {
	t.Run("intact chain", func(t *testing.T) {
		events := chain()
		assert.Equal(t, secondHash, events[1].EventHash)
		assert.Empty(t, VerifyChain(events))
	})

	t.Run("tampered timestamp", func(t *testing.T) {
		events := chain()
		events[1].Timestamp = events[1].Timestamp.Add(-time.Hour)

		breaks := VerifyChain(events)
		require.Len(t, breaks, 1)
		assert.Equal(t, events[1].ID, breaks[0].EventID)
		assert.Equal(t, "event_hash does not match content", breaks[0].Reason)
	})

	t.Run("deleted event breaks the link", func(t *testing.T) {
		events := chain()
		third := &ClockEvent{ID: id.ClockEventID(uuid.New()), EmployeeID: testEmployee, Type: EventEntry, Timestamp: exitAt.Add(time.Hour)}
		third.Seal(events[1].EventHash)

		breaks := VerifyChain([]*ClockEvent{events[0], third})
		require.Len(t, breaks, 1)
		assert.Equal(t, third.ID, breaks[0].EventID)
		assert.Equal(t, events[0].EventHash, breaks[0].Expected)
	})

	t.Run("employees are verified independently", func(t *testing.T) {
		events := chain()
		other := &ClockEvent{ID: id.ClockEventID(uuid.New()), EmployeeID: id.EmployeeID(uuid.New()), Type: EventEntry, Timestamp: entryAt}
		other.Seal("")
		assert.Empty(t, VerifyChain([]*ClockEvent{events[0], other, events[1]}))
	})
}
