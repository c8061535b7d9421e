package resilience_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/wpbrasil/boleto-gateway-go/internal/infra/resilience"
)

func retryConfig(maxRetries int) resilience.Config {
	return resilience.Config{
		MaxRetries:     maxRetries,
		InitialBackoff: 5 * time.Millisecond,
	}
}

func TestRetry_FirstAttemptSucceeds(t *testing.T) {
	attempts := 0
	err := resilience.RetryWithBackoff(context.Background(), retryConfig(3), func() error {
		attempts++
		return nil
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if attempts != 1 {
		t.Errorf("attempts = %d, want 1", attempts)
	}
}

func TestRetry_RecoversAfterTransientFailures(t *testing.T) {
	attempts := 0
	err := resilience.RetryWithBackoff(context.Background(), retryConfig(3), func() error {
		attempts++
		if attempts < 3 {
			return errors.New("backend unavailable")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("expected recovery, got %v", err)
	}
	if attempts != 3 {
		t.Errorf("attempts = %d, want 3", attempts)
	}
}

func TestRetry_ReturnsLastErrorWhenExhausted(t *testing.T) {
	wantErr := errors.New("backend down")
	attempts := 0
	err := resilience.RetryWithBackoff(context.Background(), retryConfig(2), func() error {
		attempts++
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want %v", err, wantErr)
	}
	if attempts != 3 {
		t.Errorf("attempts = %d, want 1 initial + 2 retries", attempts)
	}
}

func TestRetry_ZeroRetriesMeansSingleAttempt(t *testing.T) {
	attempts := 0
	_ = resilience.RetryWithBackoff(context.Background(), retryConfig(0), func() error {
		attempts++
		return errors.New("nope")
	})
	if attempts != 1 {
		t.Errorf("attempts = %d, want 1", attempts)
	}
}

func TestRetry_CancelledContextAborts(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := resilience.RetryWithBackoff(ctx, retryConfig(5), func() error {
		return errors.New("should not matter")
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestBulkhead_CapsConcurrency(t *testing.T) {
	bh := resilience.NewBulkhead(2)

	if err := bh.Acquire(context.Background()); err != nil {
		t.Fatalf("first acquire: %v", err)
	}
	if err := bh.Acquire(context.Background()); err != nil {
		t.Fatalf("second acquire: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	if err := bh.Acquire(ctx); err == nil {
		t.Fatal("expected third acquire to block until timeout")
	}

	bh.Release()
	if err := bh.Acquire(context.Background()); err != nil {
		t.Fatalf("acquire after release: %v", err)
	}
}
