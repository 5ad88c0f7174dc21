package postgres

import (
	"errors"
	"testing"
	"time"

	"github.com/bondhubazaar/storefront/internal/domain"
)

func TestWalletRepository_PostgresAccountLifecycle(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewWalletRepository(store)

	now := time.Now().UTC().Round(time.Microsecond)

	if _, err := repo.GetAccount("missing-owner"); !errors.Is(err, domain.ErrWalletNotFound) {
		t.Fatalf("expected ErrWalletNotFound, got %v", err)
	}

	account := domain.WalletAccount{
		OwnerID:   "owner-wallet-1",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := repo.CreateAccount(account); err != nil {
		t.Fatalf("create account: %v", err)
	}

	got, err := repo.GetAccount(account.OwnerID)
	if err != nil {
		t.Fatalf("get account: %v", err)
	}
	if got.OwnerID != account.OwnerID || got.BalanceMinor != 0 {
		t.Fatalf("unexpected account: %+v", got)
	}

	// Повторное создание не должно затирать баланс.
	credit := domain.WalletTransaction{
		ID:          "wtx-1",
		OwnerID:     account.OwnerID,
		Kind:        domain.TransactionKindCredit,
		AmountMinor: 5000,
		Description: "wallet top-up via bkash",
		Reference:   "topup-1",
		Status:      domain.TransactionStatusCompleted,
		CreatedAt:   now,
	}
	if err := repo.SaveTransaction(credit, 5000); err != nil {
		t.Fatalf("save credit: %v", err)
	}
	if err := repo.CreateAccount(account); err != nil {
		t.Fatalf("create account twice: %v", err)
	}

	got, err = repo.GetAccount(account.OwnerID)
	if err != nil {
		t.Fatalf("get account after credit: %v", err)
	}
	if got.BalanceMinor != 5000 {
		t.Fatalf("expected balance 5000, got %d", got.BalanceMinor)
	}
}

func TestWalletRepository_PostgresTransactionsAndLookup(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewWalletRepository(store)

	now := time.Now().UTC().Round(time.Microsecond)
	owner := "owner-wallet-2"
	if err := repo.CreateAccount(domain.WalletAccount{OwnerID: owner, CreatedAt: now, UpdatedAt: now}); err != nil {
		t.Fatalf("create account: %v", err)
	}

	credit := domain.WalletTransaction{
		ID:          "wtx-credit",
		OwnerID:     owner,
		Kind:        domain.TransactionKindCredit,
		AmountMinor: 3000,
		Description: "wallet top-up via nagad",
		Reference:   "topup-ref",
		Status:      domain.TransactionStatusCompleted,
		CreatedAt:   now.Add(-time.Minute),
	}
	debit := domain.WalletTransaction{
		ID:          "wtx-debit",
		OwnerID:     owner,
		Kind:        domain.TransactionKindDebit,
		AmountMinor: 1200,
		Description: "payment for order order-1",
		Reference:   "order-1",
		Status:      domain.TransactionStatusCompleted,
		CreatedAt:   now,
	}
	if err := repo.SaveTransaction(credit, 3000); err != nil {
		t.Fatalf("save credit: %v", err)
	}
	if err := repo.SaveTransaction(debit, 1800); err != nil {
		t.Fatalf("save debit: %v", err)
	}

	account, err := repo.GetAccount(owner)
	if err != nil {
		t.Fatalf("get account: %v", err)
	}
	if account.BalanceMinor != 1800 {
		t.Fatalf("expected balance 1800, got %d", account.BalanceMinor)
	}

	txs, err := repo.ListTransactions(owner, 0)
	if err != nil {
		t.Fatalf("list transactions: %v", err)
	}
	if len(txs) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(txs))
	}
	if txs[0].ID != debit.ID || txs[1].ID != credit.ID {
		t.Fatalf("expected newest first, got %+v", txs)
	}

	limited, err := repo.ListTransactions(owner, 1)
	if err != nil {
		t.Fatalf("list transactions with limit: %v", err)
	}
	if len(limited) != 1 || limited[0].ID != debit.ID {
		t.Fatalf("unexpected limited list: %+v", limited)
	}

	found, err := repo.FindByReference(owner, "order-1")
	if err != nil {
		t.Fatalf("find by reference: %v", err)
	}
	if found.ID != debit.ID || found.Kind != domain.TransactionKindDebit {
		t.Fatalf("unexpected transaction by reference: %+v", found)
	}

	if _, err := repo.FindByReference(owner, "missing-ref"); !errors.Is(err, domain.ErrWalletNotFound) {
		t.Fatalf("expected ErrWalletNotFound for missing reference, got %v", err)
	}
}

func TestWalletRepository_PostgresSaveTransactionMissingAccount(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewWalletRepository(store)

	tx := domain.WalletTransaction{
		ID:          "wtx-orphan",
		OwnerID:     "missing-owner",
		Kind:        domain.TransactionKindCredit,
		AmountMinor: 100,
		Status:      domain.TransactionStatusCompleted,
		CreatedAt:   time.Now().UTC(),
	}
	if err := repo.SaveTransaction(tx, 100); !errors.Is(err, domain.ErrWalletNotFound) {
		t.Fatalf("expected ErrWalletNotFound, got %v", err)
	}
}
