package integrity

import (
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Retry schedule for failed notarizations.
const (
	RetryBaseDelay = 60 * time.Second
	RetryMaxDelay  = time.Hour
	RetryJitter    = 0.1
	MaxRetries     = 10
)

// RetryDelay returns the wait before retry number attempt (zero based):
// 60s doubling up to one hour, each with ±10% jitter.
func RetryDelay(attempt int) time.Duration {
	b := &backoff.ExponentialBackOff{
		InitialInterval:     RetryBaseDelay,
		RandomizationFactor: RetryJitter,
		Multiplier:          2,
		MaxInterval:         RetryMaxDelay,
		Stop:                backoff.Stop,
		Clock:               backoff.SystemClock,
	}
	b.Reset()
	d := b.NextBackOff()
	for range attempt {
		d = b.NextBackOff()
	}
	return d.Round(time.Second)
}
