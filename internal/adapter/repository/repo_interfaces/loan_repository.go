package repo_interfaces

import (
	"context"

	"github.com/api-sage/pfm-ledger/internal/domain"
)

type LoanRepository interface {
	GetByID(ctx context.Context, id string) (domain.Loan, error)
	// List returns all loans, or only those linked to bankAccountID when it
	// is non-empty.
	List(ctx context.Context, bankAccountID string) ([]domain.Loan, error)
}
