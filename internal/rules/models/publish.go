package models

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrAlreadyPublished is returned when sealing a version twice.
var ErrAlreadyPublished = errors.New("rule version already published")

// HashPayload returns the SHA-256 hex of the payload's canonical JSON. Map
// keys are marshalled in sorted order, so equal payloads hash equally.
func HashPayload(p Payload) (string, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("marshal rule payload: %w", err)
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:]), nil
}

// Publish seals the version at now.
func (v *RuleVersion) Publish(now time.Time) error {
	if v.IsPublished() {
		return ErrAlreadyPublished
	}
	hash, err := HashPayload(v.Payload)
	if err != nil {
		return err
	}
	v.PayloadHash = hash
	published := now.UTC()
	v.PublishedAt = &published
	return nil
}

// VerifyHash reports whether a published payload still matches its seal.
func (v *RuleVersion) VerifyHash() (bool, error) {
	if !v.IsPublished() {
		return false, nil
	}
	hash, err := HashPayload(v.Payload)
	if err != nil {
		return false, err
	}
	return hash == v.PayloadHash, nil
}
