package retry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/muhammadheryan/heart2help/utils/retry"
	"github.com/stretchr/testify/assert"
)

func fastConfig() retry.Config {
	return retry.Config{MaxRetries: 2, InitialInterval: time.Millisecond, MaxElapsedTime: time.Second}
}

func TestDo(t *testing.T) {
	t.Run("succeeds after transient failures", func(t *testing.T) {
		calls := 0
		err := retry.Do(context.Background(), fastConfig(), func() error {
			calls++
			if calls < 3 {
				return errors.New("temporary")
			}
			return nil
		})
		assert.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		calls := 0
		err := retry.Do(context.Background(), fastConfig(), func() error {
			calls++
			return errors.New("down")
		})
		assert.EqualError(t, err, "down")
		assert.Equal(t, 3, calls)
	})

	t.Run("permanent error stops immediately", func(t *testing.T) {
		calls := 0
		err := retry.Do(context.Background(), fastConfig(), func() error {
			calls++
			return retry.Permanent(errors.New("bad request"))
		})
		assert.EqualError(t, err, "bad request")
		assert.Equal(t, 1, calls)
	})
}
