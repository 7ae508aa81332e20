package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"time"

	"github.com/api-sage/pfm-ledger/internal/commons"
	"github.com/api-sage/pfm-ledger/internal/domain"
	"github.com/api-sage/pfm-ledger/internal/logger"
	"github.com/shopspring/decimal"
)

// LedgerRepository owns every balance mutation. Each posting runs in one
// database transaction: the touched accounts are locked with
// SELECT ... FOR UPDATE in deterministic id order, sufficiency is checked
// against the locked balance, the deltas are applied, and the new record is
// inserted. Any error rolls the whole unit back.
type LedgerRepository struct {
	db *sql.DB
}

func NewLedgerRepository(db *sql.DB) *LedgerRepository {
	return &LedgerRepository{db: db}
}

func (r *LedgerRepository) PostTransaction(ctx context.Context, txn domain.Transaction) (domain.Transaction, error) {
	logger.Info("ledger repository post transaction", logger.Fields{
		"reference": txn.Reference,
		"type":      txn.Type,
		"amount":    txn.Amount,
		"fee":       txn.Fee,
	})

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("begin ledger transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	balances, err := lockAccounts(ctx, tx, involvedAccountIDs(txn))
	if err != nil {
		return domain.Transaction{}, err
	}

	if txn.SourceAccountID != nil {
		sourceID := *txn.SourceAccountID
		debit := txn.TotalWithFee()
		if debit.GreaterThan(balances[sourceID]) {
			err = &commons.InsufficientFundsError{Available: balances[sourceID]}
			return domain.Transaction{}, err
		}
		if err = adjustBalance(ctx, tx, sourceID, debit.Neg()); err != nil {
			return domain.Transaction{}, err
		}
	}

	if txn.DestinationAccountID != nil {
		if err = adjustBalance(ctx, tx, *txn.DestinationAccountID, txn.Amount); err != nil {
			return domain.Transaction{}, err
		}
	}

	txn, err = insertTransaction(ctx, tx, txn)
	if err != nil {
		return domain.Transaction{}, err
	}

	if err = tx.Commit(); err != nil {
		return domain.Transaction{}, fmt.Errorf("commit ledger transaction: %w", err)
	}

	logger.Info("ledger repository post transaction success", logger.Fields{
		"transactionId": txn.ID,
		"reference":     txn.Reference,
	})
	return txn, nil
}

func (r *LedgerRepository) CreateLoan(ctx context.Context, loan domain.Loan, booking domain.Transaction) (domain.Loan, domain.Transaction, error) {
	logger.Info("ledger repository create loan", logger.Fields{
		"bankAccountId": loan.BankAccountID,
		"loanProductId": loan.LoanProductID,
		"amount":        loan.Amount,
	})

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Loan{}, domain.Transaction{}, fmt.Errorf("begin loan transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	// Loans add money, so no sufficiency check; the lock still serializes
	// this credit against concurrent postings on the same account.
	if _, err = lockAccounts(ctx, tx, []string{loan.BankAccountID}); err != nil {
		return domain.Loan{}, domain.Transaction{}, err
	}

	if err = adjustBalance(ctx, tx, loan.BankAccountID, loan.Amount); err != nil {
		return domain.Loan{}, domain.Transaction{}, err
	}

	const query = `
INSERT INTO loan (amount, start_date, end_date, loan_product_id, bank_account_id)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`

	if err = tx.QueryRowContext(
		ctx,
		query,
		loan.Amount,
		loan.StartDate,
		loan.EndDate,
		loan.LoanProductID,
		loan.BankAccountID,
	).Scan(&loan.ID); err != nil {
		err = fmt.Errorf("create loan: %w", err)
		return domain.Loan{}, domain.Transaction{}, err
	}

	booking, err = insertTransaction(ctx, tx, booking)
	if err != nil {
		return domain.Loan{}, domain.Transaction{}, err
	}

	if err = tx.Commit(); err != nil {
		return domain.Loan{}, domain.Transaction{}, fmt.Errorf("commit loan transaction: %w", err)
	}

	logger.Info("ledger repository create loan success", logger.Fields{
		"loanId":        loan.ID,
		"transactionId": booking.ID,
	})
	return loan, booking, nil
}

func (r *LedgerRepository) CreateInvestment(ctx context.Context, investment domain.Investment) (domain.Investment, error) {
	logger.Info("ledger repository create investment", logger.Fields{
		"bankAccountId":       investment.BankAccountID,
		"investmentProductId": investment.InvestmentProductID,
		"amount":              investment.Amount,
	})

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Investment{}, fmt.Errorf("begin investment transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	balances, err := lockAccounts(ctx, tx, []string{investment.BankAccountID})
	if err != nil {
		return domain.Investment{}, err
	}

	available := balances[investment.BankAccountID]
	if investment.Amount.GreaterThan(available) {
		err = &commons.InsufficientFundsError{Available: available}
		return domain.Investment{}, err
	}

	if err = adjustBalance(ctx, tx, investment.BankAccountID, investment.Amount.Neg()); err != nil {
		return domain.Investment{}, err
	}

	const query = `
INSERT INTO investment (amount, start_date, end_date, investment_product_id, bank_account_id, status)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id`

	if err = tx.QueryRowContext(
		ctx,
		query,
		investment.Amount,
		investment.StartDate,
		investment.EndDate,
		investment.InvestmentProductID,
		investment.BankAccountID,
		investment.Status,
	).Scan(&investment.ID); err != nil {
		err = fmt.Errorf("create investment: %w", err)
		return domain.Investment{}, err
	}

	if err = tx.Commit(); err != nil {
		return domain.Investment{}, fmt.Errorf("commit investment transaction: %w", err)
	}

	logger.Info("ledger repository create investment success", logger.Fields{
		"investmentId": investment.ID,
	})
	return investment, nil
}

func (r *LedgerRepository) CreateInsurancePolicy(ctx context.Context, policy domain.InsurancePolicy, premium decimal.Decimal) (domain.InsurancePolicy, error) {
	logger.Info("ledger repository create insurance policy", logger.Fields{
		"bankAccountId":            policy.BankAccountID,
		"insurancePolicyProductId": policy.InsurancePolicyProductID,
		"premium":                  premium,
	})

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.InsurancePolicy{}, fmt.Errorf("begin insurance policy transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	balances, err := lockAccounts(ctx, tx, []string{policy.BankAccountID})
	if err != nil {
		return domain.InsurancePolicy{}, err
	}

	available := balances[policy.BankAccountID]
	if premium.GreaterThan(available) {
		err = &commons.InsufficientFundsError{Available: available}
		return domain.InsurancePolicy{}, err
	}

	if err = adjustBalance(ctx, tx, policy.BankAccountID, premium.Neg()); err != nil {
		return domain.InsurancePolicy{}, err
	}

	const query = `
INSERT INTO insurance_policy (start_date, end_date, insurance_policy_product_id, bank_account_id, status)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`

	if err = tx.QueryRowContext(
		ctx,
		query,
		policy.StartDate,
		policy.EndDate,
		policy.InsurancePolicyProductID,
		policy.BankAccountID,
		policy.Status,
	).Scan(&policy.ID); err != nil {
		err = fmt.Errorf("create insurance policy: %w", err)
		return domain.InsurancePolicy{}, err
	}

	if err = tx.Commit(); err != nil {
		return domain.InsurancePolicy{}, fmt.Errorf("commit insurance policy transaction: %w", err)
	}

	logger.Info("ledger repository create insurance policy success", logger.Fields{
		"insurancePolicyId": policy.ID,
	})
	return policy, nil
}

func involvedAccountIDs(txn domain.Transaction) []string {
	ids := make([]string, 0, 2)
	if txn.SourceAccountID != nil {
		ids = append(ids, *txn.SourceAccountID)
	}
	if txn.DestinationAccountID != nil {
		ids = append(ids, *txn.DestinationAccountID)
	}
	return ids
}

// lockAccounts acquires row locks in sorted id order so two postings that
// touch the same pair of accounts can never deadlock each other.
func lockAccounts(ctx context.Context, tx *sql.Tx, ids []string) (map[string]decimal.Decimal, error) {
	sorted := make([]string, len(ids))
	copy(sorted, ids)
	sort.Strings(sorted)

	balances := make(map[string]decimal.Decimal, len(sorted))
	for _, id := range sorted {
		if _, ok := balances[id]; ok {
			continue
		}

		var balance decimal.Decimal
		err := tx.QueryRowContext(ctx, `SELECT balance FROM bank_account WHERE id::text = $1 FOR UPDATE`, id).Scan(&balance)
		if err == sql.ErrNoRows {
			return nil, commons.ErrRecordNotFound
		}
		if err != nil {
			return nil, fmt.Errorf("lock account %q: %w", id, err)
		}
		balances[id] = balance
	}

	return balances, nil
}

func adjustBalance(ctx context.Context, tx *sql.Tx, id string, delta decimal.Decimal) error {
	result, err := tx.ExecContext(ctx, `UPDATE bank_account SET balance = balance + $2::numeric WHERE id::text = $1`, id, delta)
	if err != nil {
		return fmt.Errorf("adjust balance of account %q: %w", id, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("adjust balance rows affected: %w", err)
	}
	if rows == 0 {
		return commons.ErrRecordNotFound
	}
	return nil
}

func insertTransaction(ctx context.Context, tx *sql.Tx, txn domain.Transaction) (domain.Transaction, error) {
	const query = `
INSERT INTO transaction (reference, type, amount, fee, source_account_id, destination_account_id, description)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, created_at`

	var createdAt time.Time
	if err := tx.QueryRowContext(
		ctx,
		query,
		txn.Reference,
		txn.Type,
		txn.Amount,
		txn.Fee,
		txn.SourceAccountID,
		txn.DestinationAccountID,
		txn.Description,
	).Scan(&txn.ID, &createdAt); err != nil {
		return domain.Transaction{}, fmt.Errorf("create transaction record: %w", err)
	}

	txn.CreatedAt = createdAt
	return txn, nil
}
