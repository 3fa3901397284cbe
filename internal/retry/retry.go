// Package retry runs an operation again with exponential backoff while its
// errors are retriable.
package retry

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"classsync/internal/errdefs"
)

// Predicate reports whether err is worth another attempt.
type Predicate func(err error) bool

// Always retries every error. Used while waiting for dependencies at startup.
func Always(error) bool { return true }

// Unavailable retries only errors wrapping errdefs.ErrUnavailable.
func Unavailable(err error) bool { return errors.Is(err, errdefs.ErrUnavailable) }

// WithBackoff calls fn up to attempts times. The delay before attempt i+1 is
// 2^i * baseDelay plus up to baseDelay of jitter.
func WithBackoff[T any](
	ctx context.Context,
	attempts int,
	baseDelay time.Duration,
	retriable Predicate,
	fn func() (T, error),
) (T, error) {
	var zero T
	if attempts <= 0 {
		return zero, fmt.Errorf("attempts must be > 0, got %d", attempts)
	}
	var lastErr error

	for i := range attempts {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		result, err := fn()
		if err == nil {
			return result, nil
		}
		lastErr = err

		if !retriable(err) {
			return zero, err
		}

		if i < attempts-1 {
			delay := time.Duration(math.Pow(2, float64(i))) * baseDelay
			if baseDelay > 0 {
				delay += time.Duration(rand.Int63n(int64(baseDelay))) //nolint:gosec // jitter doesn't need crypto rand
			}
			select {
			case <-ctx.Done():
				return zero, ctx.Err()
			case <-time.After(delay):
			}
		}
	}
	return zero, fmt.Errorf("after %d attempts: %w", attempts, lastErr)
}
