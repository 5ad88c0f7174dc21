package wallet

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/bondhubazaar/storefront/internal/domain"
	"github.com/bondhubazaar/storefront/internal/metrics"
)

const (
	// MinTopUpMinor — минимальная сумма пополнения. Правило вызывающей
	// стороны: сам ledger проверяет только положительность суммы.
	MinTopUpMinor = int64(10)

	// lockStripes — число полос для per-owner блокировок.
	lockStripes = 64
)

// Ledger управляет балансами кошельков и их append-only историей.
// Проверка баланса и запись операции выполняются под эксклюзивной
// блокировкой владельца: два конкурентных списания сериализуются,
// второе видит уже уменьшенный баланс.
type Ledger struct {
	repo    domain.WalletRepository
	topup   domain.TopUpProvider
	logger  *log.Entry
	metrics *metrics.StorefrontMetrics

	locks [lockStripes]sync.Mutex
}

// NewLedger создаёт сервис кошелька.
func NewLedger(repo domain.WalletRepository, topup domain.TopUpProvider, logger *log.Entry) *Ledger {
	if logger == nil {
		logger = log.New().WithField("component", "wallet-ledger")
	}
	return &Ledger{
		repo:    repo,
		topup:   topup,
		logger:  logger,
		metrics: metrics.NewStorefrontMetrics(),
	}
}

// NewLedgerWithoutMetrics создаёт сервис без метрик (для тестов).
func NewLedgerWithoutMetrics(repo domain.WalletRepository, topup domain.TopUpProvider, logger *log.Entry) *Ledger {
	l := NewLedger(repo, topup, logger)
	l.metrics = nil
	return l
}

func (l *Ledger) lockFor(ownerID string) *sync.Mutex {
	h := fnv.New32a()
	_, _ = h.Write([]byte(ownerID))
	return &l.locks[h.Sum32()%lockStripes]
}

// Balance возвращает текущий баланс, заводя счёт при первом обращении.
func (l *Ledger) Balance(ctx context.Context, ownerID string) (int64, error) {
	if ownerID == "" {
		return 0, domain.ErrOwnerRequired
	}

	mu := l.lockFor(ownerID)
	mu.Lock()
	defer mu.Unlock()

	account, err := l.ensureAccount(ownerID)
	if err != nil {
		return 0, err
	}
	return account.BalanceMinor, nil
}

// Credit зачисляет amountMinor на счёт владельца и возвращает completed-операцию.
func (l *Ledger) Credit(ctx context.Context, ownerID string, amountMinor int64, description, reference string) (domain.WalletTransaction, error) {
	return l.apply(ctx, ownerID, domain.TransactionKindCredit, amountMinor, description, reference)
}

// Debit списывает amountMinor со счёта владельца. При нехватке средств
// возвращает ErrInsufficientFunds, баланс остаётся неизменным.
func (l *Ledger) Debit(ctx context.Context, ownerID string, amountMinor int64, description, reference string) (domain.WalletTransaction, error) {
	return l.apply(ctx, ownerID, domain.TransactionKindDebit, amountMinor, description, reference)
}

func (l *Ledger) apply(ctx context.Context, ownerID string, kind domain.TransactionKind, amountMinor int64, description, reference string) (domain.WalletTransaction, error) {
	if ownerID == "" {
		return domain.WalletTransaction{}, domain.ErrOwnerRequired
	}
	if amountMinor <= 0 {
		return domain.WalletTransaction{}, domain.ErrInvalidAmount
	}
	if err := ctx.Err(); err != nil {
		return domain.WalletTransaction{}, err
	}

	mu := l.lockFor(ownerID)
	mu.Lock()
	defer mu.Unlock()

	account, err := l.ensureAccount(ownerID)
	if err != nil {
		return domain.WalletTransaction{}, err
	}

	newBalance := account.BalanceMinor
	switch kind {
	case domain.TransactionKindCredit:
		newBalance += amountMinor
	case domain.TransactionKindDebit:
		if account.BalanceMinor < amountMinor {
			l.logger.WithFields(log.Fields{
				"owner_id": ownerID,
				"amount":   amountMinor,
				"balance":  account.BalanceMinor,
			}).Warn("debit rejected: insufficient funds")
			return domain.WalletTransaction{}, domain.ErrInsufficientFunds
		}
		newBalance -= amountMinor
	}

	tx := domain.WalletTransaction{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		Kind:        kind,
		AmountMinor: amountMinor,
		Description: description,
		Reference:   reference,
		Status:      domain.TransactionStatusCompleted,
		CreatedAt:   time.Now().UTC(),
	}
	if errs := tx.Validate(); len(errs) > 0 {
		return domain.WalletTransaction{}, fmt.Errorf("invalid wallet transaction: %v", errs)
	}

	if err := l.repo.SaveTransaction(tx, newBalance); err != nil {
		l.logger.WithError(err).WithField("owner_id", ownerID).Error("failed to persist wallet transaction")
		return domain.WalletTransaction{}, err
	}

	if l.metrics != nil {
		switch kind {
		case domain.TransactionKindCredit:
			l.metrics.RecordWalletCredit(amountMinor)
		case domain.TransactionKindDebit:
			l.metrics.RecordWalletDebit(amountMinor)
		}
	}

	l.logger.WithFields(log.Fields{
		"owner_id":  ownerID,
		"kind":      kind,
		"amount":    amountMinor,
		"reference": reference,
	}).Info("wallet transaction completed")

	return tx, nil
}

// FindByReference ищет операцию владельца по внешней ссылке. Даёт
// вызывающей стороне проверить, прошло ли списание или возврат при
// прошлой попытке, прежде чем двигать деньги повторно.
func (l *Ledger) FindByReference(ctx context.Context, ownerID, reference string) (domain.WalletTransaction, error) {
	if ownerID == "" {
		return domain.WalletTransaction{}, domain.ErrOwnerRequired
	}
	return l.repo.FindByReference(ownerID, reference)
}

// History возвращает операции владельца, новые первыми.
func (l *Ledger) History(ctx context.Context, ownerID string, limit int) ([]domain.WalletTransaction, error) {
	if ownerID == "" {
		return nil, domain.ErrOwnerRequired
	}
	return l.repo.ListTransactions(ownerID, limit)
}

// TopUp проводит пополнение через провайдера мобильного банкинга и
// зачисляет средства. Минимум MinTopUpMinor проверяется до обращения
// к провайдеру; отказ провайдера не оставляет частичного эффекта.
func (l *Ledger) TopUp(ctx context.Context, ownerID string, amountMinor int64, channel string) (domain.WalletTransaction, error) {
	if ownerID == "" {
		return domain.WalletTransaction{}, domain.ErrOwnerRequired
	}
	if amountMinor <= 0 {
		return domain.WalletTransaction{}, domain.ErrInvalidAmount
	}
	if amountMinor < MinTopUpMinor {
		return domain.WalletTransaction{}, domain.ErrTopUpBelowMinimum
	}

	status, err := l.topup.Collect(ctx, ownerID, amountMinor, channel)
	if err != nil {
		l.logger.WithError(err).WithField("owner_id", ownerID).Warn("top-up collect failed")
		return domain.WalletTransaction{}, err
	}
	if status != domain.TopUpStatusCollected {
		l.logger.WithFields(log.Fields{
			"owner_id": ownerID,
			"status":   status,
		}).Warn("top-up declined")
		return domain.WalletTransaction{}, domain.ErrTopUpDeclined
	}

	description := "Added funds via Mobile Banking"
	if channel != "" {
		description = "Added funds via " + channel
	}
	return l.Credit(ctx, ownerID, amountMinor, description, "TXN"+uuid.NewString())
}

func (l *Ledger) ensureAccount(ownerID string) (domain.WalletAccount, error) {
	account, err := l.repo.GetAccount(ownerID)
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, domain.ErrWalletNotFound) {
		return domain.WalletAccount{}, err
	}

	now := time.Now().UTC()
	account = domain.WalletAccount{
		OwnerID:      ownerID,
		BalanceMinor: 0,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := l.repo.CreateAccount(account); err != nil {
		return domain.WalletAccount{}, err
	}
	return account, nil
}
