package httputil

import (
	"context"
	"errors"
	"testing"
	"time"
)

var errTransient = errors.New("transient")

func TestRetryable(t *testing.T) {
	if Retryable(nil) != nil {
		t.Error("Retryable(nil) should return nil")
	}

	err := Retryable(errTransient)
	if !IsRetryable(err) {
		t.Error("IsRetryable should return true for wrapped error")
	}
	if !errors.Is(err, errTransient) {
		t.Error("wrapped error should unwrap to the cause")
	}
	if err.Error() != errTransient.Error() {
		t.Errorf("Error message should be preserved: %s", err.Error())
	}
	if IsRetryable(errTransient) {
		t.Error("IsRetryable should return false for unwrapped error")
	}
}

func TestRetry(t *testing.T) {
	ctx := context.Background()

	t.Run("success on first try", func(t *testing.T) {
		calls := 0
		err := Retry(ctx, 3, time.Millisecond, func() error {
			calls++
			return nil
		})
		if err != nil {
			t.Errorf("Should succeed: %v", err)
		}
		if calls != 1 {
			t.Errorf("Should call once: %d", calls)
		}
	})

	t.Run("non-retryable stops immediately", func(t *testing.T) {
		calls := 0
		permanent := errors.New("permanent")
		err := Retry(ctx, 3, time.Millisecond, func() error {
			calls++
			return permanent
		})
		if err != permanent {
			t.Errorf("Should return non-retryable error: %v", err)
		}
		if calls != 1 {
			t.Errorf("Should not retry non-retryable error: %d", calls)
		}
	})

	t.Run("retryable retries", func(t *testing.T) {
		calls := 0
		err := Retry(ctx, 3, time.Millisecond, func() error {
			calls++
			if calls < 2 {
				return Retryable(errTransient)
			}
			return nil
		})
		if err != nil {
			t.Errorf("Should succeed after retry: %v", err)
		}
		if calls != 2 {
			t.Errorf("Should retry once: %d", calls)
		}
	})

	t.Run("exhausted attempts return last error", func(t *testing.T) {
		calls := 0
		err := Retry(ctx, 3, time.Millisecond, func() error {
			calls++
			return Retryable(errTransient)
		})
		if !errors.Is(err, errTransient) {
			t.Errorf("got %v, want transient error", err)
		}
		if calls != 3 {
			t.Errorf("calls = %d, want 3", calls)
		}
	})

	t.Run("zero attempts runs once", func(t *testing.T) {
		calls := 0
		_ = Retry(ctx, 0, time.Millisecond, func() error {
			calls++
			return nil
		})
		if calls != 1 {
			t.Errorf("calls = %d, want 1", calls)
		}
	})
}

func TestRetryContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Retry(ctx, DefaultAttempts, DefaultDelay, func() error {
		return Retryable(errTransient)
	})
	if err != context.Canceled {
		t.Errorf("Should return context error: %v", err)
	}
}
