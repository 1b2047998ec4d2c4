package httputil

import (
	"context"
	"errors"
	"testing"
	"time"

	luminaerrors "github.com/luminalabs/lumina-mcp/pkg/errors"
)

func TestRetry(t *testing.T) {
	tests := []struct {
		name      string
		failures  int  // attempts that fail before success
		retryable bool // whether failures are retryable
		attempts  int
		wantCalls int
		wantErr   bool
	}{
		{name: "FirstTrySucceeds", failures: 0, attempts: 3, wantCalls: 1},
		{name: "RecoversAfterRetry", failures: 2, retryable: true, attempts: 3, wantCalls: 3},
		{name: "ExhaustsAttempts", failures: 5, retryable: true, attempts: 3, wantCalls: 3, wantErr: true},
		{name: "NonRetryableStopsImmediately", failures: 5, retryable: false, attempts: 3, wantCalls: 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			fn := func() error {
				calls++
				if calls <= tt.failures {
					if tt.retryable {
						return &RetryableError{Err: errors.New("transient")}
					}
					return errors.New("permanent")
				}
				return nil
			}

			err := Retry(context.Background(), tt.attempts, time.Millisecond, fn)
			if (err != nil) != tt.wantErr {
				t.Errorf("Retry() error = %v, wantErr %v", err, tt.wantErr)
			}
			if calls != tt.wantCalls {
				t.Errorf("calls = %d, want %d", calls, tt.wantCalls)
			}
		})
	}
}

func TestRetryRateLimited(t *testing.T) {
	calls := 0
	err := Retry(context.Background(), 2, time.Millisecond, func() error {
		calls++
		if calls == 1 {
			return &luminaerrors.RateLimitedError{}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Retry() = %v, want nil", err)
	}
	if calls != 2 {
		t.Errorf("calls = %d, want 2 (rate-limited errors retry)", calls)
	}
}

func TestRetryCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Retry(ctx, 3, time.Minute, func() error {
		return &RetryableError{Err: errors.New("transient")}
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Retry() = %v, want context.Canceled", err)
	}
}

func TestNextDelay(t *testing.T) {
	rl := &luminaerrors.RateLimitedError{RetryAfter: 7}
	if got := nextDelay(rl, time.Second); got != 7*time.Second {
		t.Errorf("nextDelay(rate-limited) = %v, want 7s", got)
	}
	if got := nextDelay(errors.New("x"), 2*time.Second); got != 2*time.Second {
		t.Errorf("nextDelay(other) = %v, want fallback", got)
	}
}
