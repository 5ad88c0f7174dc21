package domain

import "time"

// TransactionKind — направление операции по кошельку.
type TransactionKind string

const (
	// TransactionKindCredit — зачисление средств (пополнение, возврат).
	TransactionKindCredit TransactionKind = "credit"
	// TransactionKindDebit — списание средств (оплата заказа).
	TransactionKindDebit TransactionKind = "debit"
)

// TransactionStatus — состояние операции. Сейчас операции завершаются
// синхронно, но поле оставлено под будущий асинхронный settlement.
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusFailed    TransactionStatus = "failed"
)

// WalletAccount — счёт с балансом в минимальных денежных единицах.
// Баланс всегда равен знаковой сумме completed-операций владельца
// и никогда не опускается ниже нуля.
type WalletAccount struct {
	OwnerID      string
	BalanceMinor int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// WalletTransaction — запись в append-only истории кошелька.
// После перехода в completed или failed запись неизменяема.
type WalletTransaction struct {
	ID          string
	OwnerID     string
	Kind        TransactionKind
	AmountMinor int64
	Description string
	// Reference — уникальный корреляционный идентификатор, например id заказа.
	Reference string
	Status    TransactionStatus
	CreatedAt time.Time
}

// Validate проверяет корректность полей операции.
func (t *WalletTransaction) Validate() []error {
	var errs []error

	if t.OwnerID == "" {
		errs = append(errs, ErrOwnerRequired)
	}
	if t.AmountMinor <= 0 {
		errs = append(errs, ErrInvalidAmount)
	}
	if t.Kind != TransactionKindCredit && t.Kind != TransactionKindDebit {
		errs = append(errs, ErrInvalidAmount)
	}

	return errs
}

// Signed возвращает вклад операции в баланс: кредиты положительные,
// дебеты отрицательные. Незавершённые операции не учитываются.
func (t *WalletTransaction) Signed() int64 {
	if t.Status != TransactionStatusCompleted {
		return 0
	}
	if t.Kind == TransactionKindDebit {
		return -t.AmountMinor
	}
	return t.AmountMinor
}
