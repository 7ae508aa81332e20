package repo_interfaces

import (
	"context"

	"github.com/api-sage/pfm-ledger/internal/domain"
)

type LoanProductRepository interface {
	Create(ctx context.Context, product domain.LoanProduct) (domain.LoanProduct, error)
	GetByID(ctx context.Context, id string) (domain.LoanProduct, error)
	List(ctx context.Context) ([]domain.LoanProduct, error)
}

type InvestmentProductRepository interface {
	Create(ctx context.Context, product domain.InvestmentProduct) (domain.InvestmentProduct, error)
	GetByID(ctx context.Context, id string) (domain.InvestmentProduct, error)
	List(ctx context.Context) ([]domain.InvestmentProduct, error)
}

type InsurancePolicyProductRepository interface {
	Create(ctx context.Context, product domain.InsurancePolicyProduct) (domain.InsurancePolicyProduct, error)
	GetByID(ctx context.Context, id string) (domain.InsurancePolicyProduct, error)
	List(ctx context.Context) ([]domain.InsurancePolicyProduct, error)
}
