package retry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopswift/storefront/pkg/retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDo(t *testing.T) {
	cfg := retry.Config{
		MaxAttempts: 3,
		Backoff:     retry.LinearBackoff(time.Millisecond),
	}

	t.Run("FirstAttemptSucceeds", func(t *testing.T) {
		var calls int
		err := retry.Do(t.Context(), cfg, func() error {
			calls++
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("RetriesUntilSuccess", func(t *testing.T) {
		var calls int
		err := retry.Do(t.Context(), cfg, func() error {
			calls++
			if calls < 3 {
				return errors.New("transient")
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("ExhaustsAttempts", func(t *testing.T) {
		wantErr := errors.New("persistent")

		var calls int
		err := retry.Do(t.Context(), cfg, func() error {
			calls++
			return wantErr
		})
		require.ErrorIs(t, err, wantErr)
		assert.Equal(t, cfg.MaxAttempts, calls)
	})

	t.Run("ShouldRetryStopsEarly", func(t *testing.T) {
		fatal := errors.New("fatal")
		c := cfg
		c.ShouldRetry = func(err error) bool { return !errors.Is(err, fatal) }

		var calls int
		err := retry.Do(t.Context(), c, func() error {
			calls++
			return fatal
		})
		require.ErrorIs(t, err, fatal)
		assert.Equal(t, 1, calls)
	})

	t.Run("CancelledContext", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		err := retry.Do(ctx, cfg, func() error {
			t.Fatal("fn must not run")
			return nil
		})
		require.ErrorIs(t, err, context.Canceled)
	})
}
