package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/api-sage/pfm-ledger/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/pfm-ledger/internal/commons"
	"github.com/api-sage/pfm-ledger/internal/domain"
)

// TransactionRepository reads the append-only transaction log. Writes go
// through the LedgerRepository only.
type TransactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

const transactionColumns = `id, reference, type, amount, fee, source_account_id, destination_account_id, description, created_at`

func (r *TransactionRepository) GetByID(ctx context.Context, id string) (domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transaction WHERE id::text = $1`

	txn, err := scanTransaction(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return domain.Transaction{}, commons.ErrRecordNotFound
	}
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("get transaction: %w", err)
	}
	return txn, nil
}

func (r *TransactionRepository) List(ctx context.Context, filter repo_interfaces.TransactionFilter) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transaction`
	args := []any{}

	switch {
	case filter.InvolvedAccountID != "":
		query += ` WHERE source_account_id::text = $1 OR destination_account_id::text = $1`
		args = append(args, filter.InvolvedAccountID)
	case filter.SourceAccountID != "":
		query += ` WHERE source_account_id::text = $1`
		args = append(args, filter.SourceAccountID)
	case filter.DestinationAccountID != "":
		query += ` WHERE destination_account_id::text = $1`
		args = append(args, filter.DestinationAccountID)
	}
	query += ` ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	transactions := make([]domain.Transaction, 0)
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction row: %w", err)
		}
		transactions = append(transactions, txn)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transaction rows: %w", err)
	}
	return transactions, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (domain.Transaction, error) {
	var (
		txn         domain.Transaction
		source      sql.NullString
		destination sql.NullString
	)

	if err := row.Scan(
		&txn.ID,
		&txn.Reference,
		&txn.Type,
		&txn.Amount,
		&txn.Fee,
		&source,
		&destination,
		&txn.Description,
		&txn.CreatedAt,
	); err != nil {
		return domain.Transaction{}, err
	}

	if source.Valid {
		value := source.String
		txn.SourceAccountID = &value
	}
	if destination.Valid {
		value := destination.String
		txn.DestinationAccountID = &value
	}
	return txn, nil
}
