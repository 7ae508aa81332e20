package repo_interfaces

import (
	"context"

	"github.com/api-sage/pfm-ledger/internal/domain"
)

type AccountRepository interface {
	Create(ctx context.Context, account domain.Account) (domain.Account, error)
	GetByID(ctx context.Context, id string) (domain.Account, error)
	List(ctx context.Context) ([]domain.Account, error)
	// Delete fails with commons.ErrAccountInUse while any loan, investment,
	// insurance policy, or transaction still references the account.
	Delete(ctx context.Context, id string) error
}
