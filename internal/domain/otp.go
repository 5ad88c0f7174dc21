package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// OtpPurpose привязывает challenge к конкретному переходу заказа.
type OtpPurpose string

const (
	// OtpPurposeOrderConfirmation гейтит размещение заказа (и списание с кошелька).
	OtpPurposeOrderConfirmation OtpPurpose = "order-confirmation"
	// OtpPurposeDeliveryConfirmation гейтит подтверждение получения.
	OtpPurposeDeliveryConfirmation OtpPurpose = "delivery-confirmation"
)

// Valid проверяет, поддерживается ли назначение challenge.
func (p OtpPurpose) Valid() bool {
	return p == OtpPurposeOrderConfirmation || p == OtpPurposeDeliveryConfirmation
}

// OtpCodeLength — фиксированная длина кода: шесть десятичных цифр.
const OtpCodeLength = 6

// DefaultOtpTTL — срок жизни неиспользованного challenge.
// Исходная система не задавала expiry; ограниченный TTL закрывает
// окно подбора кода при хранении на сервере.
const DefaultOtpTTL = 5 * time.Minute

// OtpChallenge — одноразовый код, привязанный к переходу одного заказа.
// Храним только хэш: сам код уходит владельцу по внеполосному каналу.
type OtpChallenge struct {
	ID       string
	OrderID  string
	Purpose  OtpPurpose
	CodeHash string
	IssuedAt time.Time
	// ExpiresAt — момент, после которого неиспользованный код недействителен.
	ExpiresAt time.Time
	// ConsumedAt заполняется ровно один раз при успешной проверке.
	ConsumedAt time.Time
}

// Consumed сообщает, был ли challenge уже использован.
func (c *OtpChallenge) Consumed() bool {
	return !c.ConsumedAt.IsZero()
}

// ExpiredAt проверяет, истёк ли challenge на момент now.
func (c *OtpChallenge) ExpiredAt(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && now.After(c.ExpiresAt)
}

// HashOtpCode возвращает hex-представление SHA-256 от кода.
// Не криптографическая граница (код шестизначный), но plaintext в
// хранилище не оставляем.
func HashOtpCode(code string) string {
	sum := sha256.Sum256([]byte(code))
	return hex.EncodeToString(sum[:])
}

// ValidOtpCodeFormat проверяет, что ввод — ровно шесть десятичных цифр.
// Несоответствующий формат отклоняется до любого сравнения.
func ValidOtpCodeFormat(code string) bool {
	if len(code) != OtpCodeLength {
		return false
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
