package topup

import (
	"context"
	"errors"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/bondhubazaar/storefront/internal/domain"
)

// RetryConfig — параметры повторов обращения к платёжному шлюзу.
type RetryConfig struct {
	MaxAttempts   int
	InitialDelay  time.Duration
	MaxDelay      time.Duration
	BackoffFactor float64
}

// DefaultRetryConfig возвращает конфигурацию по умолчанию.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:   3,
		InitialDelay:  100 * time.Millisecond,
		MaxDelay:      5 * time.Second,
		BackoffFactor: 2.0,
	}
}

// RetryingProvider оборачивает TopUpProvider повторами с экспоненциальной
// задержкой. Отказ провайдера (declined) не повторяется: это решение
// шлюза, а не сбой транспорта.
type RetryingProvider struct {
	provider domain.TopUpProvider
	config   RetryConfig
	logger   *log.Entry
}

// NewRetryingProvider создаёт провайдер с retry логикой.
func NewRetryingProvider(provider domain.TopUpProvider, config RetryConfig, logger *log.Entry) *RetryingProvider {
	if logger == nil {
		logger = log.New().WithField("component", "topup-retry")
	}

	return &RetryingProvider{
		provider: provider,
		config:   config,
		logger:   logger,
	}
}

// Collect пытается принять средства, повторяя транзиентные сбои.
func (rp *RetryingProvider) Collect(ctx context.Context, ownerID string, amountMinor int64, channel string) (domain.TopUpStatus, error) {
	var lastErr error
	delay := rp.config.InitialDelay

	for attempt := 1; attempt <= rp.config.MaxAttempts; attempt++ {
		status, err := rp.provider.Collect(ctx, ownerID, amountMinor, channel)
		if err == nil {
			if attempt > 1 {
				rp.logger.WithFields(log.Fields{
					"owner_id": ownerID,
					"channel":  channel,
					"attempt":  attempt,
				}).Info("top-up collect succeeded after retry")
			}
			return status, nil
		}

		lastErr = err

		if !rp.shouldRetry(err) {
			rp.logger.WithFields(log.Fields{
				"owner_id": ownerID,
				"channel":  channel,
				"error":    err,
			}).Warn("top-up collect failed with non-retryable error")
			return domain.TopUpStatusDeclined, err
		}

		if attempt < rp.config.MaxAttempts {
			rp.logger.WithFields(log.Fields{
				"owner_id": ownerID,
				"channel":  channel,
				"attempt":  attempt,
				"delay":    delay,
				"error":    err,
			}).Warn("top-up collect failed, retrying")

			select {
			case <-ctx.Done():
				return domain.TopUpStatusDeclined, ctx.Err()
			case <-time.After(delay):
			}

			delay = time.Duration(float64(delay) * rp.config.BackoffFactor)
			if delay > rp.config.MaxDelay {
				delay = rp.config.MaxDelay
			}
		}
	}

	rp.logger.WithFields(log.Fields{
		"owner_id":     ownerID,
		"channel":      channel,
		"max_attempts": rp.config.MaxAttempts,
		"error":        lastErr,
	}).Error("top-up collect failed after all retry attempts")
	return domain.TopUpStatusDeclined, lastErr
}

func (rp *RetryingProvider) shouldRetry(err error) bool {
	if errors.Is(err, domain.ErrTopUpDeclined) || errors.Is(err, domain.ErrInvalidAmount) {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return true
}

// CircuitBreaker защищает платёжный шлюз от шторма запросов при его
// деградации. После maxFailures подряд переходит в open и отклоняет
// вызовы до истечения resetTimeout.
type CircuitBreaker struct {
	maxFailures  int
	resetTimeout time.Duration

	mu          sync.Mutex
	failures    int
	lastFailure time.Time
	state       CircuitState
	logger      *log.Entry
}

type CircuitState int

const (
	CircuitClosed CircuitState = iota
	CircuitOpen
	CircuitHalfOpen
)

// ErrCircuitOpen возвращается, пока breaker отклоняет вызовы.
var ErrCircuitOpen = errors.New("top-up circuit breaker is open")

// NewCircuitBreaker создаёт новый circuit breaker.
func NewCircuitBreaker(maxFailures int, resetTimeout time.Duration, logger *log.Entry) *CircuitBreaker {
	if logger == nil {
		logger = log.New().WithField("component", "topup-circuit-breaker")
	}

	return &CircuitBreaker{
		maxFailures:  maxFailures,
		resetTimeout: resetTimeout,
		state:        CircuitClosed,
		logger:       logger,
	}
}

// Execute выполняет операцию через circuit breaker.
func (cb *CircuitBreaker) Execute(operation string, fn func() error) error {
	cb.mu.Lock()
	if cb.state == CircuitOpen {
		if time.Since(cb.lastFailure) > cb.resetTimeout {
			cb.state = CircuitHalfOpen
			cb.logger.WithField("operation", operation).Info("circuit breaker half-open")
		} else {
			cb.mu.Unlock()
			return ErrCircuitOpen
		}
	}
	cb.mu.Unlock()

	err := fn()

	cb.mu.Lock()
	defer cb.mu.Unlock()

	if err != nil {
		cb.failures++
		cb.lastFailure = time.Now()

		if cb.state == CircuitHalfOpen || cb.failures >= cb.maxFailures {
			cb.state = CircuitOpen
			cb.logger.WithFields(log.Fields{
				"operation": operation,
				"failures":  cb.failures,
			}).Warn("circuit breaker opened")
		}

		return err
	}

	if cb.state == CircuitHalfOpen {
		cb.state = CircuitClosed
		cb.logger.WithField("operation", operation).Info("circuit breaker closed")
	}
	cb.failures = 0

	return nil
}

// State возвращает текущее состояние breaker'а.
func (cb *CircuitBreaker) State() CircuitState {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

// BreakerProvider — TopUpProvider под защитой circuit breaker.
type BreakerProvider struct {
	provider domain.TopUpProvider
	breaker  *CircuitBreaker
}

// NewBreakerProvider создаёт провайдер с circuit breaker защитой.
func NewBreakerProvider(provider domain.TopUpProvider, breaker *CircuitBreaker) *BreakerProvider {
	return &BreakerProvider{provider: provider, breaker: breaker}
}

// Collect делегирует провайдеру, пока breaker закрыт.
func (bp *BreakerProvider) Collect(ctx context.Context, ownerID string, amountMinor int64, channel string) (domain.TopUpStatus, error) {
	var status domain.TopUpStatus
	err := bp.breaker.Execute("collect", func() error {
		var collectErr error
		status, collectErr = bp.provider.Collect(ctx, ownerID, amountMinor, channel)
		if collectErr != nil {
			return collectErr
		}
		return nil
	})
	if err != nil {
		return domain.TopUpStatusDeclined, err
	}
	return status, nil
}

var (
	_ domain.TopUpProvider = (*RetryingProvider)(nil)
	_ domain.TopUpProvider = (*BreakerProvider)(nil)
)
