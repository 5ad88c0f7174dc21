package memory

import (
	"sync"
	"time"

	"github.com/bondhubazaar/storefront/internal/domain"
)

type otpKey struct {
	orderID string
	purpose domain.OtpPurpose
}

// otpRepositoryInMemory хранит активные OTP-вызовы в памяти. На пару
// (заказ, назначение) активен не более одного вызова.
type otpRepositoryInMemory struct {
	mu     sync.Mutex
	active map[otpKey]domain.OtpChallenge
}

// NewOtpChallengeRepository возвращает in-memory реализацию OtpChallengeRepository.
func NewOtpChallengeRepository() domain.OtpChallengeRepository {
	return &otpRepositoryInMemory{active: make(map[otpKey]domain.OtpChallenge)}
}

// ReplaceActive атомарно заменяет активный вызов новым, инвалидируя предыдущий.
func (r *otpRepositoryInMemory) ReplaceActive(challenge domain.OtpChallenge) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.active[otpKey{orderID: challenge.OrderID, purpose: challenge.Purpose}] = challenge
	return nil
}

// GetActive возвращает активный вызов или ErrChallengeNotFound.
func (r *otpRepositoryInMemory) GetActive(orderID string, purpose domain.OtpPurpose) (domain.OtpChallenge, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	challenge, ok := r.active[otpKey{orderID: orderID, purpose: purpose}]
	if !ok {
		return domain.OtpChallenge{}, domain.ErrChallengeNotFound
	}
	return challenge, nil
}

// ConsumeActive атомарно проверяет хеш кода и помечает вызов использованным.
// Проверка и пометка выполняются под одной блокировкой: из двух
// конкурентных попыток с верным кодом успешна ровно одна.
func (r *otpRepositoryInMemory) ConsumeActive(orderID string, purpose domain.OtpPurpose, codeHash string, now time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := otpKey{orderID: orderID, purpose: purpose}
	challenge, ok := r.active[key]
	if !ok {
		return domain.ErrChallengeNotFound
	}
	if challenge.Consumed() {
		return domain.ErrChallengeConsumed
	}
	if challenge.ExpiredAt(now) {
		return domain.ErrChallengeExpired
	}
	if challenge.CodeHash != codeHash {
		return domain.ErrCodeMismatch
	}

	challenge.ConsumedAt = now
	r.active[key] = challenge
	return nil
}

var _ domain.OtpChallengeRepository = (*otpRepositoryInMemory)(nil)
