package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "WithoutCause",
			err:  New(ErrCodeInvalidInput, "bad id %q", "x"),
			want: `INVALID_INPUT: bad id "x"`,
		},
		{
			name: "WithCause",
			err:  Wrap(ErrCodeNetwork, stderrors.New("boom"), "fetch failed"),
			want: "NETWORK_ERROR: fetch failed: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsAndGetCode(t *testing.T) {
	base := New(ErrCodeAppNotFound, "app missing")
	wrapped := fmt.Errorf("outer: %w", base)

	if !Is(wrapped, ErrCodeAppNotFound) {
		t.Error("Is() should match through wrapping")
	}
	if Is(wrapped, ErrCodeNetwork) {
		t.Error("Is() should not match a different code")
	}
	if got := GetCode(wrapped); got != ErrCodeAppNotFound {
		t.Errorf("GetCode() = %q, want %q", got, ErrCodeAppNotFound)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode(plain) = %q, want empty", got)
	}
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("root cause")
	err := Wrap(ErrCodeEngineQuery, cause, "query failed")

	if !stderrors.Is(err, cause) {
		t.Error("errors.Is should find the cause through Unwrap")
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeRateLimited, "too many requests")
	if got := UserMessage(err); got != "too many requests" {
		t.Errorf("UserMessage() = %q, want %q", got, "too many requests")
	}

	plain := stderrors.New("plain failure")
	if got := UserMessage(plain); got != "plain failure" {
		t.Errorf("UserMessage(plain) = %q", got)
	}
}

func TestRateLimitedError(t *testing.T) {
	e := &RateLimitedError{RetryAfter: 30}
	if got := e.Error(); got != "rate limited: retry after 30 seconds" {
		t.Errorf("Error() = %q", got)
	}
	if e.Code() != ErrCodeRateLimited {
		t.Errorf("Code() = %q, want %q", e.Code(), ErrCodeRateLimited)
	}
}
