package otp

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/bondhubazaar/storefront/internal/domain"
	"github.com/bondhubazaar/storefront/internal/metrics"
)

// Verifier выпускает и проверяет одноразовые коды подтверждения.
// Код хранится только в виде SHA-256 хеша; на пару (заказ, назначение)
// активен не более одного кода.
type Verifier struct {
	repo    domain.OtpChallengeRepository
	sender  domain.OtpSender
	ttl     time.Duration
	logger  *log.Entry
	metrics *metrics.StorefrontMetrics

	now func() time.Time
}

// NewVerifier создаёт сервис OTP с TTL по умолчанию.
func NewVerifier(repo domain.OtpChallengeRepository, sender domain.OtpSender, logger *log.Entry) *Verifier {
	if logger == nil {
		logger = log.New().WithField("component", "otp-verifier")
	}
	return &Verifier{
		repo:    repo,
		sender:  sender,
		ttl:     domain.DefaultOtpTTL,
		logger:  logger,
		metrics: metrics.NewStorefrontMetrics(),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// NewVerifierWithoutMetrics создаёт сервис без метрик (для тестов).
func NewVerifierWithoutMetrics(repo domain.OtpChallengeRepository, sender domain.OtpSender, logger *log.Entry) *Verifier {
	v := NewVerifier(repo, sender, logger)
	v.metrics = nil
	return v
}

// Issue генерирует шестизначный код, сохраняет его хеш и отправляет
// код на destination. Предыдущий активный код той же пары
// инвалидируется заменой.
func (v *Verifier) Issue(ctx context.Context, orderID string, purpose domain.OtpPurpose, destination string) (domain.OtpChallenge, error) {
	if orderID == "" {
		return domain.OtpChallenge{}, domain.ErrOrderIDRequired
	}
	if !purpose.Valid() {
		return domain.OtpChallenge{}, fmt.Errorf("unknown otp purpose: %s", purpose)
	}

	code, err := generateCode()
	if err != nil {
		return domain.OtpChallenge{}, fmt.Errorf("failed to generate otp code: %w", err)
	}

	now := v.now()
	challenge := domain.OtpChallenge{
		ID:        uuid.NewString(),
		OrderID:   orderID,
		Purpose:   purpose,
		CodeHash:  domain.HashOtpCode(code),
		IssuedAt:  now,
		ExpiresAt: now.Add(v.ttl),
	}

	if err := v.repo.ReplaceActive(challenge); err != nil {
		return domain.OtpChallenge{}, fmt.Errorf("failed to store otp challenge: %w", err)
	}

	if err := v.sender.Send(ctx, destination, code); err != nil {
		v.logger.WithError(err).WithFields(log.Fields{
			"order_id": orderID,
			"purpose":  purpose,
		}).Error("failed to deliver otp code")
		return domain.OtpChallenge{}, fmt.Errorf("failed to deliver otp code: %w", err)
	}

	if v.metrics != nil {
		v.metrics.RecordOtpIssued()
	}

	// Сам код в лог не попадает.
	v.logger.WithFields(log.Fields{
		"order_id":   orderID,
		"purpose":    purpose,
		"expires_at": challenge.ExpiresAt,
	}).Info("otp code issued")

	return challenge, nil
}

// Verify сверяет код с активным вызовом и помечает его использованным.
// Любая причина отказа (нет вызова, истёк, уже использован, неверный
// код) наружу выдаётся как ErrInvalidCode, чтобы не подсказывать
// перебирающему коды, что именно не так.
func (v *Verifier) Verify(ctx context.Context, orderID string, purpose domain.OtpPurpose, code string) error {
	if orderID == "" {
		return domain.ErrOrderIDRequired
	}
	if !domain.ValidOtpCodeFormat(code) {
		v.rejected(orderID, purpose, "malformed code")
		return domain.ErrInvalidCode
	}

	err := v.repo.ConsumeActive(orderID, purpose, domain.HashOtpCode(code), v.now())
	if err != nil {
		if domain.IsOtpRejection(err) {
			v.rejected(orderID, purpose, err.Error())
			return domain.ErrInvalidCode
		}
		return fmt.Errorf("failed to verify otp code: %w", err)
	}

	if v.metrics != nil {
		v.metrics.RecordOtpVerified()
	}
	v.logger.WithFields(log.Fields{
		"order_id": orderID,
		"purpose":  purpose,
	}).Info("otp code verified")
	return nil
}

func (v *Verifier) rejected(orderID string, purpose domain.OtpPurpose, reason string) {
	if v.metrics != nil {
		v.metrics.RecordOtpRejected()
	}
	v.logger.WithFields(log.Fields{
		"order_id": orderID,
		"purpose":  purpose,
		"reason":   reason,
	}).Warn("otp code rejected")
}

// generateCode возвращает шестизначный код с ведущими нулями.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
