package memory

import (
	"sort"
	"sync"

	"github.com/bondhubazaar/storefront/internal/domain"
)

// walletRepositoryInMemory хранит счета и операции кошельков в памяти.
type walletRepositoryInMemory struct {
	mu           sync.RWMutex
	accounts     map[string]domain.WalletAccount
	transactions map[string][]domain.WalletTransaction
}

// NewWalletRepository возвращает in-memory реализацию WalletRepository.
func NewWalletRepository() domain.WalletRepository {
	return &walletRepositoryInMemory{
		accounts:     make(map[string]domain.WalletAccount),
		transactions: make(map[string][]domain.WalletTransaction),
	}
}

// GetAccount возвращает счёт владельца или ErrWalletNotFound.
func (r *walletRepositoryInMemory) GetAccount(ownerID string) (domain.WalletAccount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[ownerID]
	if !ok {
		return domain.WalletAccount{}, domain.ErrWalletNotFound
	}
	return account, nil
}

// CreateAccount заводит новый счёт. Повторное создание не затирает баланс.
func (r *walletRepositoryInMemory) CreateAccount(account domain.WalletAccount) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.accounts[account.OwnerID]; exists {
		return nil
	}
	r.accounts[account.OwnerID] = account
	return nil
}

// SaveTransaction атомарно записывает операцию и новый баланс счёта.
func (r *walletRepositoryInMemory) SaveTransaction(tx domain.WalletTransaction, newBalanceMinor int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[tx.OwnerID]
	if !ok {
		return domain.ErrWalletNotFound
	}

	account.BalanceMinor = newBalanceMinor
	account.UpdatedAt = tx.CreatedAt
	r.accounts[tx.OwnerID] = account
	r.transactions[tx.OwnerID] = append(r.transactions[tx.OwnerID], tx)
	return nil
}

// ListTransactions возвращает операции владельца, новые первыми.
func (r *walletRepositoryInMemory) ListTransactions(ownerID string, limit int) ([]domain.WalletTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	transactions := r.transactions[ownerID]
	result := make([]domain.WalletTransaction, len(transactions))
	copy(result, transactions)

	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID > result[j].ID
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}

	return result, nil
}

// FindByReference ищет операцию владельца по внешней ссылке.
func (r *walletRepositoryInMemory) FindByReference(ownerID, reference string) (domain.WalletTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, tx := range r.transactions[ownerID] {
		if tx.Reference == reference {
			return tx, nil
		}
	}
	return domain.WalletTransaction{}, domain.ErrWalletNotFound
}

var _ domain.WalletRepository = (*walletRepositoryInMemory)(nil)
