package models

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	id "worktime/pkg/domain"
)

// GenesisMarker stands in for the previous hash of an employee's first event.
const GenesisMarker = "GENESIS"

// HashTimestampLayout renders instants the way kiosks sign them.
const HashTimestampLayout = "2006-01-02T15:04:05.000Z"

// SHA256Hex returns the lowercase hex SHA-256 digest of s.
func SHA256Hex(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

// ComputeEventHash hashes the canonical event fields chained to the
// employee's previous event hash.
func ComputeEventHash(employeeID id.EmployeeID, eventType EventType, ts time.Time, previousHash string) string {
	if previousHash == "" {
		previousHash = GenesisMarker
	}
	return SHA256Hex(employeeID.String() + "|" + string(eventType) + "|" + ts.UTC().Format(HashTimestampLayout) + "|" + previousHash)
}

// LegacyHash is the fallback leaf for events stored before hashing existed.
// It commits only to the event id, not its content.
func LegacyHash(eventID id.ClockEventID) string {
	return SHA256Hex(eventID.String())
}

// LeafHash returns the hash an event contributes to a daily root.
func (e *ClockEvent) LeafHash() (hash string, legacy bool) {
	if e.EventHash != "" {
		return e.EventHash, false
	}
	return LegacyHash(e.ID), true
}

// Seal computes and stores the event hash chained to previousHash.
func (e *ClockEvent) Seal(previousHash string) {
	e.PreviousHash = previousHash
	e.EventHash = ComputeEventHash(e.EmployeeID, e.Type, e.Timestamp, previousHash)
}

// ChainBreak describes the first event whose stored hash does not match the
// recomputed chain.
type ChainBreak struct {
	EventID  id.ClockEventID
	Expected string
	Actual   string
	Reason   string
}

// VerifyChain recomputes each employee's hash chain over events (ordered by
// timestamp) and returns one break per employee whose chain is inconsistent.
// Legacy events without a hash reset the chain for that employee.
func VerifyChain(events []*ClockEvent) []ChainBreak {
	last := make(map[id.EmployeeID]string)
	broken := make(map[id.EmployeeID]bool)
	var breaks []ChainBreak

	for _, e := range events {
		if broken[e.EmployeeID] {
			continue
		}
		prev, seen := last[e.EmployeeID]
		if e.EventHash == "" {
			delete(last, e.EmployeeID)
			continue
		}
		if seen && e.PreviousHash != prev {
			breaks = append(breaks, ChainBreak{
				EventID:  e.ID,
				Expected: prev,
				Actual:   e.PreviousHash,
				Reason:   "previous_hash does not link to prior event",
			})
			broken[e.EmployeeID] = true
			continue
		}
		expected := ComputeEventHash(e.EmployeeID, e.Type, e.Timestamp, e.PreviousHash)
		if expected != e.EventHash {
			breaks = append(breaks, ChainBreak{
				EventID:  e.ID,
				Expected: expected,
				Actual:   e.EventHash,
				Reason:   "event_hash does not match content",
			})
			broken[e.EmployeeID] = true
			continue
		}
		last[e.EmployeeID] = e.EventHash
	}
	return breaks
}
