package repo_interfaces

import (
	"context"

	"github.com/api-sage/pfm-ledger/internal/domain"
)

// TransactionFilter narrows a transaction listing. InvolvedAccountID wins
// over the directional filters when set.
type TransactionFilter struct {
	SourceAccountID      string
	DestinationAccountID string
	InvolvedAccountID    string
}

type TransactionRepository interface {
	GetByID(ctx context.Context, id string) (domain.Transaction, error)
	List(ctx context.Context, filter TransactionFilter) ([]domain.Transaction, error)
}
