package domain

import "errors"

var (
	// Ошибка пустой корзины при оформлении заказа.
	ErrCartEmpty = errors.New("cart is empty")
	// Ошибка незаполненных обязательных полей адреса доставки.
	ErrAddressIncomplete = errors.New("shipping address is incomplete")
	// Ошибка отсутствующего способа оплаты.
	ErrPaymentMethodRequired = errors.New("payment method is required")
	// Ошибка неподдерживаемого способа оплаты.
	ErrPaymentMethodInvalid = errors.New("payment method is invalid")
	// Ошибка отсутствующего идентификатора владельца.
	ErrOwnerRequired = errors.New("owner_id is required")
	// Ошибка отсутствующего идентификатора заказа.
	ErrOrderIDRequired = errors.New("order_id is required")
	// Ошибка отсутствующего идентификатора товара/услуги.
	ErrItemIDRequired = errors.New("item_id is required")
	// Ошибка при некорректном количестве в позиции (< 1).
	ErrLineQtyInvalid = errors.New("line qty must be at least one")
	// Ошибка неположительной цены позиции.
	ErrLinePriceInvalid = errors.New("line unit price must be positive")
	// Ошибка несоответствия суммы заказа и сумм позиций.
	ErrAmountMismatch = errors.New("order total does not match lines sum")

	// ErrOrderNotFound возвращается, если заказ не найден в репозитории.
	ErrOrderNotFound = errors.New("order not found")
	// ErrOrderVersionConflict сигнализирует о конфликте версий при сохранении.
	ErrOrderVersionConflict = errors.New("order version conflict")
	// ErrOrderTerminal — заказ в конечном статусе, дальнейшие переходы запрещены.
	ErrOrderTerminal = errors.New("order is in terminal status")
	// ErrInvalidTransition — переход не разрешён из текущего статуса.
	ErrInvalidTransition = errors.New("order status transition is not allowed")
	// ErrOrderNotCancellable — заказ уже отгружен, отмена невозможна.
	ErrOrderNotCancellable = errors.New("order can no longer be cancelled")

	// ErrInvalidAmount — сумма операции кошелька должна быть положительной.
	ErrInvalidAmount = errors.New("amount must be positive")
	// ErrInsufficientFunds — на балансе недостаточно средств для списания.
	ErrInsufficientFunds = errors.New("insufficient wallet funds")
	// ErrWalletNotFound возвращается, если счёт кошелька не найден.
	ErrWalletNotFound = errors.New("wallet account not found")
	// ErrTopUpBelowMinimum — пополнение меньше минимально допустимого.
	ErrTopUpBelowMinimum = errors.New("top-up amount is below minimum")
	// ErrTopUpDeclined — провайдер пополнения отклонил операцию.
	ErrTopUpDeclined = errors.New("top-up declined by provider")

	// ErrInvalidCode — обобщённая ошибка проверки OTP. Неверный, просроченный
	// и уже использованный код намеренно неразличимы для вызывающего.
	ErrInvalidCode = errors.New("invalid otp code")
	// ErrChallengeNotFound — активного challenge для (order, purpose) нет.
	ErrChallengeNotFound = errors.New("otp challenge not found")
	// ErrChallengeConsumed — challenge уже был использован.
	ErrChallengeConsumed = errors.New("otp challenge already consumed")
	// ErrChallengeExpired — срок действия challenge истёк.
	ErrChallengeExpired = errors.New("otp challenge expired")
	// ErrCodeMismatch — предъявленный код не совпал с выданным.
	ErrCodeMismatch = errors.New("otp code mismatch")

	// ErrOutboxPublish — ошибка при публикации сообщения из outbox.
	ErrOutboxPublish = errors.New("outbox publish failed")
)

// IsVersionConflict проверяет, является ли ошибка конфликтом версий.
func IsVersionConflict(err error) bool {
	return errors.Is(err, ErrOrderVersionConflict)
}

// IsOtpRejection сообщает, относится ли ошибка к любому из отказов проверки OTP.
// Презентационный слой показывает для всех них одно и то же сообщение.
func IsOtpRejection(err error) bool {
	return errors.Is(err, ErrInvalidCode) ||
		errors.Is(err, ErrChallengeNotFound) ||
		errors.Is(err, ErrChallengeConsumed) ||
		errors.Is(err, ErrChallengeExpired) ||
		errors.Is(err, ErrCodeMismatch)
}
