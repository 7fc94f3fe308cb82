package enrich

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"
)

func TestWithRetry_SucceedsAfterTransientFailures(t *testing.T) {
	calls := 0
	op := func() (string, error) {
		calls++
		if calls < 3 {
			return "", &APIError{Kind: KindUnavailable, Status: 503, Message: "down"}
		}
		return "ok", nil
	}

	result, err := withRetry(context.Background(), 3, time.Millisecond, op)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != "ok" {
		t.Errorf("result = %q, want ok", result)
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestWithRetry_NonRetryableFailsImmediately(t *testing.T) {
	calls := 0
	op := func() (string, error) {
		calls++
		return "", &APIError{Kind: KindOther, Status: 400, Message: "bad request"}
	}

	_, err := withRetry(context.Background(), 3, time.Millisecond, op)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestWithRetry_PlainErrorNotRetried(t *testing.T) {
	calls := 0
	op := func() (string, error) {
		calls++
		return "", errors.New("unclassified")
	}

	if _, err := withRetry(context.Background(), 3, time.Millisecond, op); err == nil {
		t.Fatal("expected error, got nil")
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestWithRetry_ExhaustsAttempts(t *testing.T) {
	calls := 0
	op := func() (string, error) {
		calls++
		return "", &APIError{Kind: KindRateLimited, Status: 429, Message: "slow down"}
	}

	_, err := withRetry(context.Background(), 2, time.Millisecond, op)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	// Initial attempt plus two retries.
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Kind != KindRateLimited {
		t.Errorf("err = %v, want last rate-limit failure", err)
	}
}

func TestWithRetry_ContextCancelStopsBackoff(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	op := func() (string, error) {
		return "", &APIError{Kind: KindNetwork, Message: "unreachable"}
	}

	_, err := withRetry(ctx, 3, time.Hour, op)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestAPIError_Retryable(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want bool
	}{
		{KindRateLimited, true},
		{KindTimeout, true},
		{KindUnavailable, true},
		{KindNetwork, true},
		{KindOther, false},
	}

	for _, tt := range tests {
		err := &APIError{Kind: tt.kind}
		if got := err.Retryable(); got != tt.want {
			t.Errorf("%s.Retryable() = %v, want %v", tt.kind, got, tt.want)
		}
	}
}

func TestClassifyStatus(t *testing.T) {
	tests := []struct {
		status int
		want   ErrorKind
	}{
		{http.StatusTooManyRequests, KindRateLimited},
		{http.StatusBadGateway, KindUnavailable},
		{http.StatusServiceUnavailable, KindUnavailable},
		{http.StatusGatewayTimeout, KindUnavailable},
		{http.StatusInternalServerError, KindUnavailable},
		{http.StatusBadRequest, KindOther},
		{http.StatusUnauthorized, KindOther},
	}

	for _, tt := range tests {
		if got := classifyStatus(tt.status); got != tt.want {
			t.Errorf("classifyStatus(%d) = %s, want %s", tt.status, got, tt.want)
		}
	}
}

func TestClassifyTransportError(t *testing.T) {
	var apiErr *APIError

	if err := classifyTransportError(context.DeadlineExceeded); !errors.As(err, &apiErr) || apiErr.Kind != KindTimeout {
		t.Errorf("deadline exceeded classified as %v, want timeout", err)
	}
	if err := classifyTransportError(errors.New("connection refused")); !errors.As(err, &apiErr) || apiErr.Kind != KindNetwork {
		t.Errorf("dial failure classified as %v, want network", err)
	}
	if err := classifyTransportError(context.Canceled); !errors.As(err, &apiErr) || apiErr.Kind != KindOther {
		t.Errorf("cancellation classified as %v, want other", err)
	}
}
