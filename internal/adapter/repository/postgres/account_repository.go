package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/api-sage/pfm-ledger/internal/commons"
	"github.com/api-sage/pfm-ledger/internal/domain"
	"github.com/api-sage/pfm-ledger/internal/logger"
)

type AccountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) Create(ctx context.Context, account domain.Account) (domain.Account, error) {
	const query = `
INSERT INTO bank_account (user_profile_id, bank_id, account_number, iban_code, currency, balance)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, created_at`

	if err := r.db.QueryRowContext(
		ctx,
		query,
		account.UserProfileID,
		account.BankID,
		account.AccountNumber,
		account.IBANCode,
		account.Currency,
		account.Balance,
	).Scan(&account.ID, &account.CreatedAt); err != nil {
		logger.Error("account repository create failed", err, logger.Fields{
			"accountNumber": account.AccountNumber,
		})
		return domain.Account{}, fmt.Errorf("create account: %w", err)
	}

	return account, nil
}

func (r *AccountRepository) GetByID(ctx context.Context, id string) (domain.Account, error) {
	const query = `
SELECT id, user_profile_id, bank_id, account_number, iban_code, currency, balance, created_at
FROM bank_account
WHERE id::text = $1`

	var account domain.Account
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&account.ID,
		&account.UserProfileID,
		&account.BankID,
		&account.AccountNumber,
		&account.IBANCode,
		&account.Currency,
		&account.Balance,
		&account.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return domain.Account{}, commons.ErrRecordNotFound
	}
	if err != nil {
		return domain.Account{}, fmt.Errorf("get account: %w", err)
	}

	return account, nil
}

func (r *AccountRepository) List(ctx context.Context) ([]domain.Account, error) {
	const query = `
SELECT id, user_profile_id, bank_id, account_number, iban_code, currency, balance, created_at
FROM bank_account
ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()

	accounts := make([]domain.Account, 0)
	for rows.Next() {
		var account domain.Account
		if err := rows.Scan(
			&account.ID,
			&account.UserProfileID,
			&account.BankID,
			&account.AccountNumber,
			&account.IBANCode,
			&account.Currency,
			&account.Balance,
			&account.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan account row: %w", err)
		}
		accounts = append(accounts, account)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate account rows: %w", err)
	}
	return accounts, nil
}

// Delete removes an account only when nothing references it. Ledger records
// are append-only facts, so deletion is blocked instead of cascading.
func (r *AccountRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin account delete: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	const referencesQuery = `
SELECT (SELECT COUNT(1) FROM loan WHERE bank_account_id::text = $1)
     + (SELECT COUNT(1) FROM investment WHERE bank_account_id::text = $1)
     + (SELECT COUNT(1) FROM insurance_policy WHERE bank_account_id::text = $1)
     + (SELECT COUNT(1) FROM transaction
        WHERE source_account_id::text = $1 OR destination_account_id::text = $1)`

	var references int
	if err = tx.QueryRowContext(ctx, referencesQuery, id).Scan(&references); err != nil {
		err = fmt.Errorf("count account references: %w", err)
		return err
	}
	if references > 0 {
		err = commons.ErrAccountInUse
		return err
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM bank_account WHERE id::text = $1`, id)
	if err != nil {
		err = fmt.Errorf("delete account: %w", err)
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		err = fmt.Errorf("delete account rows affected: %w", err)
		return err
	}
	if rows == 0 {
		err = commons.ErrRecordNotFound
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit account delete: %w", err)
	}

	logger.Info("account repository delete success", logger.Fields{"accountId": id})
	return nil
}
