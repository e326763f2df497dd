// Package retry wraps outbound calls to SMS, identity and push providers in a
// bounded exponential backoff.
package retry

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
)

type Config struct {
	MaxRetries      uint64
	InitialInterval time.Duration
	MaxElapsedTime  time.Duration
}

func DefaultConfig() Config {
	return Config{
		MaxRetries:      3,
		InitialInterval: 200 * time.Millisecond,
		MaxElapsedTime:  10 * time.Second,
	}
}

// Permanent marks err as not worth retrying (e.g. a 4xx from the provider).
func Permanent(err error) error {
	return backoff.Permanent(err)
}

// Do runs fn until it succeeds or returns a permanent error, giving up after cfg.MaxRetries retries or cfg.MaxElapsedTime.
// The last error is returned unwrapped.
func Do(ctx context.Context, cfg Config, fn func() error) error {
	eb := backoff.NewExponentialBackOff()
	if cfg.InitialInterval > 0 {
		eb.InitialInterval = cfg.InitialInterval
	}
	eb.MaxElapsedTime = cfg.MaxElapsedTime

	b := backoff.WithContext(backoff.WithMaxRetries(eb, cfg.MaxRetries), ctx)

	err := backoff.Retry(fn, b)
	var perm *backoff.PermanentError
	if errors.As(err, &perm) {
		return perm.Err
	}
	return err
}
