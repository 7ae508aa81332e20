package repo_interfaces

import (
	"context"

	"github.com/api-sage/pfm-ledger/internal/domain"
)

type InvestmentRepository interface {
	GetByID(ctx context.Context, id string) (domain.Investment, error)
	List(ctx context.Context, bankAccountID string) ([]domain.Investment, error)
	// UpdateStatus sets the new status only when it differs from the current
	// one; otherwise it fails with commons.InvalidStatusTransitionError.
	UpdateStatus(ctx context.Context, id string, status domain.InvestmentStatus) error
}
