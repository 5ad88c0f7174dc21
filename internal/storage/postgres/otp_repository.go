package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bondhubazaar/storefront/internal/domain"
)

type otpRepository struct {
	db *sql.DB
}

// NewOtpChallengeRepository создаёт PostgreSQL-реализацию OtpChallengeRepository.
func NewOtpChallengeRepository(store *Store) domain.OtpChallengeRepository {
	return &otpRepository{db: store.DB()}
}

// ReplaceActive выполняет upsert: на пару (order, purpose) хранится ровно
// одна строка, прежний неиспользованный код перезаписывается.
func (r *otpRepository) ReplaceActive(challenge domain.OtpChallenge) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	if _, err := r.db.ExecContext(ctx, `
		INSERT INTO otp_challenges (
			id, order_id, purpose, code_hash, issued_at, expires_at, consumed_at
		) VALUES ($1,$2,$3,$4,$5,$6,NULL)
		ON CONFLICT (order_id, purpose) DO UPDATE
		SET id = EXCLUDED.id,
		    code_hash = EXCLUDED.code_hash,
		    issued_at = EXCLUDED.issued_at,
		    expires_at = EXCLUDED.expires_at,
		    consumed_at = NULL
	`,
		challenge.ID, challenge.OrderID, string(challenge.Purpose),
		challenge.CodeHash, challenge.IssuedAt, challenge.ExpiresAt,
	); err != nil {
		return fmt.Errorf("replace otp challenge: %w", err)
	}

	return nil
}

func (r *otpRepository) GetActive(orderID string, purpose domain.OtpPurpose) (domain.OtpChallenge, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var (
		challenge  domain.OtpChallenge
		purposeRaw string
		consumedAt sql.NullTime
	)

	err := r.db.QueryRowContext(ctx, `
		SELECT id, order_id, purpose, code_hash, issued_at, expires_at, consumed_at
		FROM otp_challenges
		WHERE order_id = $1
		  AND purpose = $2
	`, orderID, string(purpose)).Scan(
		&challenge.ID, &challenge.OrderID, &purposeRaw,
		&challenge.CodeHash, &challenge.IssuedAt, &challenge.ExpiresAt, &consumedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.OtpChallenge{}, domain.ErrChallengeNotFound
		}
		return domain.OtpChallenge{}, fmt.Errorf("select otp challenge: %w", err)
	}

	challenge.Purpose = domain.OtpPurpose(purposeRaw)
	if consumedAt.Valid {
		challenge.ConsumedAt = consumedAt.Time.UTC()
	}

	return challenge, nil
}

// ConsumeActive помечает challenge использованным условным UPDATE: проверка
// хэша, срока и неиспользованности выполняется в базе одним оператором,
// поэтому из конкурентных попыток с верным кодом успешна ровно одна.
func (r *otpRepository) ConsumeActive(orderID string, purpose domain.OtpPurpose, codeHash string, now time.Time) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `
		UPDATE otp_challenges
		SET consumed_at = $4
		WHERE order_id = $1
		  AND purpose = $2
		  AND code_hash = $3
		  AND consumed_at IS NULL
		  AND expires_at > $4
	`, orderID, string(purpose), codeHash, now)
	if err != nil {
		return fmt.Errorf("consume otp challenge: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 1 {
		return nil
	}

	// UPDATE никого не задел: выясняем причину для точной ошибки.
	challenge, err := r.GetActive(orderID, purpose)
	if err != nil {
		return err
	}
	switch {
	case challenge.Consumed():
		return domain.ErrChallengeConsumed
	case challenge.ExpiredAt(now):
		return domain.ErrChallengeExpired
	default:
		return domain.ErrCodeMismatch
	}
}

var _ domain.OtpChallengeRepository = (*otpRepository)(nil)
