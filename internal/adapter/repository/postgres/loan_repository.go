package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/api-sage/pfm-ledger/internal/commons"
	"github.com/api-sage/pfm-ledger/internal/domain"
)

// LoanRepository reads loans; creation goes through the LedgerRepository so
// the disbursement and the loan row commit together.
type LoanRepository struct {
	db *sql.DB
}

func NewLoanRepository(db *sql.DB) *LoanRepository {
	return &LoanRepository{db: db}
}

func (r *LoanRepository) GetByID(ctx context.Context, id string) (domain.Loan, error) {
	const query = `
SELECT id, amount, start_date, end_date, loan_product_id, bank_account_id
FROM loan
WHERE id::text = $1`

	var loan domain.Loan
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&loan.ID,
		&loan.Amount,
		&loan.StartDate,
		&loan.EndDate,
		&loan.LoanProductID,
		&loan.BankAccountID,
	)
	if err == sql.ErrNoRows {
		return domain.Loan{}, commons.ErrRecordNotFound
	}
	if err != nil {
		return domain.Loan{}, fmt.Errorf("get loan: %w", err)
	}
	return loan, nil
}

func (r *LoanRepository) List(ctx context.Context, bankAccountID string) ([]domain.Loan, error) {
	query := `
SELECT id, amount, start_date, end_date, loan_product_id, bank_account_id
FROM loan`
	args := []any{}
	if bankAccountID != "" {
		query += ` WHERE bank_account_id::text = $1`
		args = append(args, bankAccountID)
	}
	query += ` ORDER BY start_date`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list loans: %w", err)
	}
	defer rows.Close()

	loans := make([]domain.Loan, 0)
	for rows.Next() {
		var loan domain.Loan
		if err := rows.Scan(
			&loan.ID,
			&loan.Amount,
			&loan.StartDate,
			&loan.EndDate,
			&loan.LoanProductID,
			&loan.BankAccountID,
		); err != nil {
			return nil, fmt.Errorf("scan loan row: %w", err)
		}
		loans = append(loans, loan)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate loan rows: %w", err)
	}
	return loans, nil
}
