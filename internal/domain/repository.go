package domain

import "time"

// OrderRepository описывает требования к хранилищу заказов.
type OrderRepository interface {
	// Create сохраняет новый заказ. Возвращает ошибку, если запись с таким ID уже существует.
	Create(order Order) error
	// Get возвращает заказ по идентификатору или ErrOrderNotFound, если его нет.
	Get(id string) (Order, error)
	// ListByOwner возвращает заказы владельца, новые первыми, с опциональным лимитом.
	ListByOwner(ownerID string, limit int) ([]Order, error)
	// Save применяет обновления к заказу с учётом optimistic locking.
	Save(order Order) error
}

// WalletRepository хранит счета и append-only историю операций.
// Атомарность check-and-update обеспечивает сервис кошелька; репозиторий
// обязан сохранять операцию и новый баланс как единое целое.
type WalletRepository interface {
	// GetAccount возвращает счёт владельца или ErrWalletNotFound.
	GetAccount(ownerID string) (WalletAccount, error)
	// CreateAccount заводит счёт с нулевым балансом.
	CreateAccount(account WalletAccount) error
	// SaveTransaction сохраняет завершённую операцию вместе с новым балансом счёта.
	SaveTransaction(tx WalletTransaction, newBalanceMinor int64) error
	// ListTransactions возвращает операции владельца, новые первыми.
	ListTransactions(ownerID string, limit int) ([]WalletTransaction, error)
	// FindByReference ищет операцию по корреляционному идентификатору.
	FindByReference(ownerID, reference string) (WalletTransaction, error)
}

// OtpChallengeRepository хранит выданные одноразовые коды.
type OtpChallengeRepository interface {
	// ReplaceActive сохраняет новый challenge, инвалидируя прежний
	// неиспользованный для той же пары (order, purpose). Атомарно.
	ReplaceActive(challenge OtpChallenge) error
	// GetActive возвращает действующий challenge или ErrChallengeNotFound.
	GetActive(orderID string, purpose OtpPurpose) (OtpChallenge, error)
	// ConsumeActive атомарно сверяет хэш кода и помечает challenge
	// использованным. Повторный вызов с тем же кодом обязан вернуть ошибку.
	ConsumeActive(orderID string, purpose OtpPurpose, codeHash string, now time.Time) error
}
