package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bondhubazaar/storefront/internal/domain"
)

type walletRepository struct {
	db *sql.DB
}

// NewWalletRepository создаёт PostgreSQL-реализацию WalletRepository.
func NewWalletRepository(store *Store) domain.WalletRepository {
	return &walletRepository{db: store.DB()}
}

func (r *walletRepository) GetAccount(ownerID string) (domain.WalletAccount, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var account domain.WalletAccount
	err := r.db.QueryRowContext(ctx, `
		SELECT owner_id, balance_minor, created_at, updated_at
		FROM wallet_accounts
		WHERE owner_id = $1
	`, ownerID).Scan(&account.OwnerID, &account.BalanceMinor, &account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.WalletAccount{}, domain.ErrWalletNotFound
		}
		return domain.WalletAccount{}, fmt.Errorf("select wallet account: %w", err)
	}

	return account, nil
}

func (r *walletRepository) CreateAccount(account domain.WalletAccount) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	// Повторное создание не трогает существующий баланс.
	if _, err := r.db.ExecContext(ctx, `
		INSERT INTO wallet_accounts (owner_id, balance_minor, created_at, updated_at)
		VALUES ($1,$2,$3,$4)
		ON CONFLICT (owner_id) DO NOTHING
	`, account.OwnerID, account.BalanceMinor, account.CreatedAt, account.UpdatedAt); err != nil {
		return fmt.Errorf("create wallet account: %w", err)
	}

	return nil
}

// SaveTransaction записывает завершённую операцию и новый баланс в одной
// транзакции БД: история и баланс не могут разойтись.
func (r *walletRepository) SaveTransaction(walletTx domain.WalletTransaction, newBalanceMinor int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	res, err := tx.ExecContext(ctx, `
		UPDATE wallet_accounts
		SET balance_minor = $1,
		    updated_at = $2
		WHERE owner_id = $3
	`, newBalanceMinor, time.Now().UTC(), walletTx.OwnerID)
	if err != nil {
		return fmt.Errorf("update wallet balance: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		err = domain.ErrWalletNotFound
		return err
	}

	if _, err = tx.ExecContext(ctx, `
		INSERT INTO wallet_transactions (
			id, owner_id, kind, amount_minor, description, reference, status, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		walletTx.ID, walletTx.OwnerID, string(walletTx.Kind), walletTx.AmountMinor,
		walletTx.Description, walletTx.Reference, string(walletTx.Status), walletTx.CreatedAt,
	); err != nil {
		return fmt.Errorf("insert wallet transaction: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit wallet transaction: %w", err)
	}

	return nil
}

func (r *walletRepository) ListTransactions(ownerID string, limit int) ([]domain.WalletTransaction, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	query := `
		SELECT id, owner_id, kind, amount_minor, description, reference, status, created_at
		FROM wallet_transactions
		WHERE owner_id = $1
		ORDER BY created_at DESC, id DESC
	`

	var (
		rows *sql.Rows
		err  error
	)

	if limit > 0 {
		rows, err = r.db.QueryContext(ctx, query+" LIMIT $2", ownerID, limit)
	} else {
		rows, err = r.db.QueryContext(ctx, query, ownerID)
	}
	if err != nil {
		return nil, fmt.Errorf("list wallet transactions: %w", err)
	}
	defer rows.Close()

	result := make([]domain.WalletTransaction, 0)
	for rows.Next() {
		walletTx, err := scanWalletTransaction(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, walletTx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate wallet transactions: %w", err)
	}

	return result, nil
}

func (r *walletRepository) FindByReference(ownerID, reference string) (domain.WalletTransaction, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	row := r.db.QueryRowContext(ctx, `
		SELECT id, owner_id, kind, amount_minor, description, reference, status, created_at
		FROM wallet_transactions
		WHERE owner_id = $1
		  AND reference = $2
		ORDER BY created_at DESC
		LIMIT 1
	`, ownerID, reference)

	walletTx, err := scanWalletTransaction(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.WalletTransaction{}, domain.ErrWalletNotFound
		}
		return domain.WalletTransaction{}, err
	}

	return walletTx, nil
}

func scanWalletTransaction(row rowScanner) (domain.WalletTransaction, error) {
	var (
		walletTx domain.WalletTransaction
		kind     string
		status   string
	)

	if err := row.Scan(
		&walletTx.ID, &walletTx.OwnerID, &kind, &walletTx.AmountMinor,
		&walletTx.Description, &walletTx.Reference, &status, &walletTx.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.WalletTransaction{}, err
		}
		return domain.WalletTransaction{}, fmt.Errorf("scan wallet transaction: %w", err)
	}

	walletTx.Kind = domain.TransactionKind(kind)
	walletTx.Status = domain.TransactionStatus(status)
	return walletTx, nil
}

var _ domain.WalletRepository = (*walletRepository)(nil)
