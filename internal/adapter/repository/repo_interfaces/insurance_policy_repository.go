package repo_interfaces

import (
	"context"

	"github.com/api-sage/pfm-ledger/internal/domain"
)

type InsurancePolicyRepository interface {
	GetByID(ctx context.Context, id string) (domain.InsurancePolicy, error)
	List(ctx context.Context, bankAccountID string) ([]domain.InsurancePolicy, error)
	UpdateStatus(ctx context.Context, id string, status domain.InsurancePolicyStatus) error
}
