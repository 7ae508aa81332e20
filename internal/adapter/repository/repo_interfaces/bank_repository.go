package repo_interfaces

import (
	"context"

	"github.com/api-sage/pfm-ledger/internal/domain"
)

type BankRepository interface {
	Create(ctx context.Context, bank domain.Bank) (domain.Bank, error)
	GetByID(ctx context.Context, id string) (domain.Bank, error)
	List(ctx context.Context) ([]domain.Bank, error)
}
