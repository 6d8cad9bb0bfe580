// Package lock provides single-holder leases keyed by string.
package lock

import (
	"context"
	"sync"
	"time"

	"worktime/pkg/platform/sentinel"
)

// InMemory is a process-local lock table for single-instance deployments
// and tests.
type InMemory struct {
	mu      sync.Mutex
	holders map[string]lease
	now     func() time.Time
}

type lease struct {
	token   uint64
	expires time.Time
}

func NewInMemory() *InMemory {
	return &InMemory{holders: make(map[string]lease), now: time.Now}
}

var tokenSeq struct {
	sync.Mutex
	n uint64
}

func nextToken() uint64 {
	tokenSeq.Lock()
	defer tokenSeq.Unlock()
	tokenSeq.n++
	return tokenSeq.n
}

func (l *InMemory) Acquire(_ context.Context, key string, ttl time.Duration) (func(context.Context) error, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.now()
	if held, ok := l.holders[key]; ok && now.Before(held.expires) {
		return nil, sentinel.ErrConflict
	}
	token := nextToken()
	l.holders[key] = lease{token: token, expires: now.Add(ttl)}
	return func(context.Context) error {
		l.mu.Lock()
		defer l.mu.Unlock()
		if held, ok := l.holders[key]; ok && held.token == token {
			delete(l.holders, key)
		}
		return nil
	}, nil
}
