package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/api-sage/pfm-ledger/internal/commons"
	"github.com/api-sage/pfm-ledger/internal/domain"
	"github.com/api-sage/pfm-ledger/internal/logger"
)

type InsurancePolicyRepository struct {
	db *sql.DB
}

func NewInsurancePolicyRepository(db *sql.DB) *InsurancePolicyRepository {
	return &InsurancePolicyRepository{db: db}
}

func (r *InsurancePolicyRepository) GetByID(ctx context.Context, id string) (domain.InsurancePolicy, error) {
	const query = `
SELECT id, start_date, end_date, insurance_policy_product_id, bank_account_id, status
FROM insurance_policy
WHERE id::text = $1`

	var policy domain.InsurancePolicy
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&policy.ID,
		&policy.StartDate,
		&policy.EndDate,
		&policy.InsurancePolicyProductID,
		&policy.BankAccountID,
		&policy.Status,
	)
	if err == sql.ErrNoRows {
		return domain.InsurancePolicy{}, commons.ErrRecordNotFound
	}
	if err != nil {
		return domain.InsurancePolicy{}, fmt.Errorf("get insurance policy: %w", err)
	}
	return policy, nil
}

func (r *InsurancePolicyRepository) List(ctx context.Context, bankAccountID string) ([]domain.InsurancePolicy, error) {
	query := `
SELECT id, start_date, end_date, insurance_policy_product_id, bank_account_id, status
FROM insurance_policy`
	args := []any{}
	if bankAccountID != "" {
		query += ` WHERE bank_account_id::text = $1`
		args = append(args, bankAccountID)
	}
	query += ` ORDER BY start_date`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list insurance policies: %w", err)
	}
	defer rows.Close()

	policies := make([]domain.InsurancePolicy, 0)
	for rows.Next() {
		var policy domain.InsurancePolicy
		if err := rows.Scan(
			&policy.ID,
			&policy.StartDate,
			&policy.EndDate,
			&policy.InsurancePolicyProductID,
			&policy.BankAccountID,
			&policy.Status,
		); err != nil {
			return nil, fmt.Errorf("scan insurance policy row: %w", err)
		}
		policies = append(policies, policy)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate insurance policy rows: %w", err)
	}
	return policies, nil
}

func (r *InsurancePolicyRepository) UpdateStatus(ctx context.Context, id string, status domain.InsurancePolicyStatus) error {
	const query = `
UPDATE insurance_policy
SET status = $2
WHERE id::text = $1 AND status <> $2`

	result, err := r.db.ExecContext(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("update insurance policy status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update insurance policy status rows affected: %w", err)
	}
	if rows == 0 {
		var current domain.InsurancePolicyStatus
		err := r.db.QueryRowContext(ctx, `SELECT status FROM insurance_policy WHERE id::text = $1`, id).Scan(&current)
		if err == sql.ErrNoRows {
			return commons.ErrRecordNotFound
		}
		if err != nil {
			return fmt.Errorf("read insurance policy status: %w", err)
		}
		return &commons.InvalidStatusTransitionError{Status: string(current)}
	}

	logger.Info("insurance policy repository update status success", logger.Fields{
		"insurancePolicyId": id,
		"status":            status,
	})
	return nil
}
