package integrity

import (
	clockmodels "worktime/internal/clock/models"
)

// BuildMerkleRoot folds ordered leaf hashes into a single root. Adjacent
// hashes are paired left to right and the concatenation of each pair's hex
// strings is hashed; an odd level pairs its last hash with itself. A single
// leaf is its own root. ok is false for an empty input.
func BuildMerkleRoot(hashes []string) (root string, ok bool) {
	if len(hashes) == 0 {
		return "", false
	}
	level := append([]string(nil), hashes...)
	for len(level) > 1 {
		next := make([]string, 0, (len(level)+1)/2)
		for i := 0; i < len(level); i += 2 {
			left := level[i]
			right := left
			if i+1 < len(level) {
				right = level[i+1]
			}
			next = append(next, clockmodels.SHA256Hex(left+right))
		}
		level = next
	}
	return level[0], true
}

// LeafHashes extracts the Merkle leaves of events in the given order and
// counts how many fell back to the legacy id hash.
func LeafHashes(events []*clockmodels.ClockEvent) (hashes []string, legacy int) {
	hashes = make([]string, 0, len(events))
	for _, e := range events {
		h, isLegacy := e.LeafHash()
		if isLegacy {
			legacy++
		}
		hashes = append(hashes, h)
	}
	return hashes, legacy
}
