package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/api-sage/pfm-ledger/internal/commons"
	"github.com/api-sage/pfm-ledger/internal/domain"
	"github.com/api-sage/pfm-ledger/internal/logger"
)

type InvestmentRepository struct {
	db *sql.DB
}

func NewInvestmentRepository(db *sql.DB) *InvestmentRepository {
	return &InvestmentRepository{db: db}
}

func (r *InvestmentRepository) GetByID(ctx context.Context, id string) (domain.Investment, error) {
	const query = `
SELECT id, amount, start_date, end_date, investment_product_id, bank_account_id, status
FROM investment
WHERE id::text = $1`

	var investment domain.Investment
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&investment.ID,
		&investment.Amount,
		&investment.StartDate,
		&investment.EndDate,
		&investment.InvestmentProductID,
		&investment.BankAccountID,
		&investment.Status,
	)
	if err == sql.ErrNoRows {
		return domain.Investment{}, commons.ErrRecordNotFound
	}
	if err != nil {
		return domain.Investment{}, fmt.Errorf("get investment: %w", err)
	}
	return investment, nil
}

func (r *InvestmentRepository) List(ctx context.Context, bankAccountID string) ([]domain.Investment, error) {
	query := `
SELECT id, amount, start_date, end_date, investment_product_id, bank_account_id, status
FROM investment`
	args := []any{}
	if bankAccountID != "" {
		query += ` WHERE bank_account_id::text = $1`
		args = append(args, bankAccountID)
	}
	query += ` ORDER BY start_date`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list investments: %w", err)
	}
	defer rows.Close()

	investments := make([]domain.Investment, 0)
	for rows.Next() {
		var investment domain.Investment
		if err := rows.Scan(
			&investment.ID,
			&investment.Amount,
			&investment.StartDate,
			&investment.EndDate,
			&investment.InvestmentProductID,
			&investment.BankAccountID,
			&investment.Status,
		); err != nil {
			return nil, fmt.Errorf("scan investment row: %w", err)
		}
		investments = append(investments, investment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate investment rows: %w", err)
	}
	return investments, nil
}

// UpdateStatus is conditional on the status actually changing, so a
// concurrent duplicate action is rejected rather than silently absorbed.
func (r *InvestmentRepository) UpdateStatus(ctx context.Context, id string, status domain.InvestmentStatus) error {
	const query = `
UPDATE investment
SET status = $2
WHERE id::text = $1 AND status <> $2`

	result, err := r.db.ExecContext(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("update investment status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update investment status rows affected: %w", err)
	}
	if rows == 0 {
		var current domain.InvestmentStatus
		err := r.db.QueryRowContext(ctx, `SELECT status FROM investment WHERE id::text = $1`, id).Scan(&current)
		if err == sql.ErrNoRows {
			return commons.ErrRecordNotFound
		}
		if err != nil {
			return fmt.Errorf("read investment status: %w", err)
		}
		return &commons.InvalidStatusTransitionError{Status: string(current)}
	}

	logger.Info("investment repository update status success", logger.Fields{
		"investmentId": id,
		"status":       status,
	})
	return nil
}
