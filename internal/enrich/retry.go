package enrich

import (
	"context"
	"errors"
	"time"
)

// withRetry runs op, retrying transient failures up to maxRetries times with
// exponential backoff (baseDelay doubling each attempt). Non-retryable
// failures and context cancellation propagate immediately.
func withRetry(ctx context.Context, maxRetries int, baseDelay time.Duration, op func() (string, error)) (string, error) {
	var lastErr error
	for attempt := 0; ; attempt++ {
		result, err := op()
		if err == nil {
			return result, nil
		}
		lastErr = err

		if attempt >= maxRetries || !isRetryable(err) {
			return "", lastErr
		}

		delay := baseDelay << attempt
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
}

// isRetryable applies the retry decision table: rate limits, timeouts,
// service unavailability, and network failures retry; anything else is fatal
// to the attempt.
func isRetryable(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Retryable()
	}
	return false
}
