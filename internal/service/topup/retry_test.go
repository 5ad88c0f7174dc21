package topup

import (
	"context"
	"errors"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/bondhubazaar/storefront/internal/domain"
)

type flakyProvider struct {
	failures int
	calls    int
	err      error
	status   domain.TopUpStatus
}

func (f *flakyProvider) Collect(context.Context, string, int64, string) (domain.TopUpStatus, error) {
	f.calls++
	if f.calls <= f.failures {
		err := f.err
		if err == nil {
			err = errors.New("gateway timeout")
		}
		return domain.TopUpStatusDeclined, err
	}
	status := f.status
	if status == "" {
		status = domain.TopUpStatusCollected
	}
	return status, nil
}

func TestDefaultRetryConfig(t *testing.T) {
	cfg := DefaultRetryConfig()
	if cfg.MaxAttempts != 3 {
		t.Fatalf("unexpected MaxAttempts: %d", cfg.MaxAttempts)
	}
	if cfg.InitialDelay <= 0 || cfg.MaxDelay <= 0 {
		t.Fatalf("delays must be positive: %+v", cfg)
	}
	if cfg.BackoffFactor <= 1 {
		t.Fatalf("backoff factor should be > 1: %f", cfg.BackoffFactor)
	}
}

func TestRetryingProviderCollect(t *testing.T) {
	cfg := RetryConfig{MaxAttempts: 3, InitialDelay: time.Millisecond, MaxDelay: time.Millisecond, BackoffFactor: 2}

	t.Run("retry then success", func(t *testing.T) {
		provider := &flakyProvider{failures: 2}
		rp := NewRetryingProvider(provider, cfg, log.New().WithField("test", "retry"))

		status, err := rp.Collect(context.Background(), "owner-1", 5000, "bkash")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if status != domain.TopUpStatusCollected {
			t.Fatalf("unexpected status: %s", status)
		}
		if provider.calls != 3 {
			t.Fatalf("expected 3 attempts, got %d", provider.calls)
		}
	})

	t.Run("non-retryable decline", func(t *testing.T) {
		provider := &flakyProvider{failures: 10, err: domain.ErrTopUpDeclined}
		rp := NewRetryingProvider(provider, cfg, nil)
		if rp.logger == nil {
			t.Fatal("expected default logger")
		}

		_, err := rp.Collect(context.Background(), "owner-1", 5000, "nagad")
		if !errors.Is(err, domain.ErrTopUpDeclined) {
			t.Fatalf("expected ErrTopUpDeclined, got %v", err)
		}
		if provider.calls != 1 {
			t.Fatalf("declined collect must not be retried, got %d calls", provider.calls)
		}
	})

	t.Run("exhausted retries", func(t *testing.T) {
		provider := &flakyProvider{failures: 10}
		rp := NewRetryingProvider(provider, cfg, nil)

		_, err := rp.Collect(context.Background(), "owner-1", 5000, "bkash")
		if err == nil {
			t.Fatal("expected error after exhausted retries")
		}
		if provider.calls != cfg.MaxAttempts {
			t.Fatalf("expected %d attempts, got %d", cfg.MaxAttempts, provider.calls)
		}
	})

	t.Run("cancelled context stops retries", func(t *testing.T) {
		provider := &flakyProvider{failures: 10}
		rp := NewRetryingProvider(provider, RetryConfig{MaxAttempts: 5, InitialDelay: 50 * time.Millisecond, MaxDelay: time.Second, BackoffFactor: 2}, nil)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := rp.Collect(ctx, "owner-1", 5000, "bkash")
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
		if provider.calls != 1 {
			t.Fatalf("expected single attempt before cancellation, got %d", provider.calls)
		}
	})
}

func TestRetryingProviderShouldRetry(t *testing.T) {
	rp := NewRetryingProvider(NewMockProvider(), RetryConfig{MaxAttempts: 1}, nil)

	if rp.shouldRetry(domain.ErrTopUpDeclined) {
		t.Fatal("ErrTopUpDeclined should not be retried")
	}
	if rp.shouldRetry(domain.ErrInvalidAmount) {
		t.Fatal("ErrInvalidAmount should not be retried")
	}
	if rp.shouldRetry(context.Canceled) {
		t.Fatal("context.Canceled should not be retried")
	}
	if !rp.shouldRetry(errors.New("connection reset")) {
		t.Fatal("transport errors should be retried by default")
	}
}

func TestCircuitBreakerExecute(t *testing.T) {
	cb := NewCircuitBreaker(2, 20*time.Millisecond, nil)
	if cb.logger == nil {
		t.Fatal("expected default logger")
	}
	if cb.State() != CircuitClosed {
		t.Fatalf("expected closed state, got %v", cb.State())
	}

	// Successful call keeps breaker closed.
	if err := cb.Execute("ok", func() error { return nil }); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cb.State() != CircuitClosed || cb.failures != 0 {
		t.Fatalf("unexpected state after success: state=%v failures=%d", cb.State(), cb.failures)
	}

	// Two failures open the breaker.
	if err := cb.Execute("fail-1", func() error { return errors.New("boom") }); err == nil {
		t.Fatal("expected first failure")
	}
	if cb.State() != CircuitClosed {
		t.Fatalf("breaker should still be closed after first failure, got %v", cb.State())
	}
	if err := cb.Execute("fail-2", func() error { return errors.New("boom") }); err == nil {
		t.Fatal("expected second failure")
	}
	if cb.State() != CircuitOpen {
		t.Fatalf("breaker should be open, got %v", cb.State())
	}

	// Open breaker rejects immediately.
	if err := cb.Execute("blocked", func() error { return nil }); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected ErrCircuitOpen, got %v", err)
	}

	// After reset timeout, breaker goes half-open and closes on success.
	cb.lastFailure = time.Now().Add(-time.Second)
	if err := cb.Execute("half-open-success", func() error { return nil }); err != nil {
		t.Fatalf("unexpected error in half-open: %v", err)
	}
	if cb.State() != CircuitClosed {
		t.Fatalf("expected closed state after half-open success, got %v", cb.State())
	}

	// Half-open failure re-opens.
	cb.state = CircuitOpen
	cb.lastFailure = time.Now().Add(-time.Second)
	if err := cb.Execute("half-open-fail", func() error { return errors.New("still failing") }); err == nil {
		t.Fatal("expected error in half-open failure")
	}
	if cb.State() != CircuitOpen {
		t.Fatalf("expected open state after half-open failure, got %v", cb.State())
	}
}

func TestBreakerProviderCollect(t *testing.T) {
	mock := NewMockProvider()
	breaker := NewCircuitBreaker(1, time.Hour, log.New().WithField("test", "breaker"))
	bp := NewBreakerProvider(mock, breaker)

	status, err := bp.Collect(context.Background(), "owner-1", 5000, "bkash")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != domain.TopUpStatusCollected {
		t.Fatalf("unexpected status: %s", status)
	}
	if mock.Calls != 1 {
		t.Fatalf("expected single delegate call, got %d", mock.Calls)
	}

	// Failure opens the breaker, further calls are blocked before the gateway.
	mock.Err = errors.New("gateway down")
	if _, err := bp.Collect(context.Background(), "owner-1", 5000, "bkash"); err == nil {
		t.Fatal("expected gateway error")
	}
	if breaker.State() != CircuitOpen {
		t.Fatalf("expected open breaker, got %v", breaker.State())
	}

	callsBefore := mock.Calls
	if _, err := bp.Collect(context.Background(), "owner-1", 5000, "bkash"); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected ErrCircuitOpen, got %v", err)
	}
	if mock.Calls != callsBefore {
		t.Fatalf("open breaker must not hit the gateway: %d != %d", mock.Calls, callsBefore)
	}
}
