package repo_interfaces

import (
	"context"

	"github.com/api-sage/pfm-ledger/internal/domain"
	"github.com/shopspring/decimal"
)

// LedgerRepository is the single write path for account balances. Every
// method runs as one storage transaction: it locks the touched accounts,
// re-checks sufficiency against the locked balance, applies the deltas, and
// persists the new record. On any failure nothing is committed.
type LedgerRepository interface {
	// PostTransaction applies a Deposit, Withdraw, or Transfer. Withdraw and
	// Transfer debit the source by amount plus fee; Transfer credits the
	// destination by the raw amount and the fee is destroyed.
	PostTransaction(ctx context.Context, txn domain.Transaction) (domain.Transaction, error)

	// CreateLoan credits the linked account by the loan amount and persists
	// the prepared Deposit booking alongside the loan as the audit trail.
	CreateLoan(ctx context.Context, loan domain.Loan, booking domain.Transaction) (domain.Loan, domain.Transaction, error)

	// CreateInvestment debits the linked account by the investment amount
	// after the sufficiency check.
	CreateInvestment(ctx context.Context, investment domain.Investment) (domain.Investment, error)

	// CreateInsurancePolicy debits the linked account by the product's
	// annual premium after the sufficiency check.
	CreateInsurancePolicy(ctx context.Context, policy domain.InsurancePolicy, premium decimal.Decimal) (domain.InsurancePolicy, error)
}
