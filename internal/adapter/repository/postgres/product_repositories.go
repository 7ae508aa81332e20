package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/api-sage/pfm-ledger/internal/commons"
	"github.com/api-sage/pfm-ledger/internal/domain"
)

type LoanProductRepository struct {
	db *sql.DB
}

func NewLoanProductRepository(db *sql.DB) *LoanProductRepository {
	return &LoanProductRepository{db: db}
}

func (r *LoanProductRepository) Create(ctx context.Context, product domain.LoanProduct) (domain.LoanProduct, error) {
	const query = `
INSERT INTO loan_product (type, name, rate)
VALUES ($1, $2, $3)
RETURNING id`

	if err := r.db.QueryRowContext(ctx, query, product.Type, product.Name, product.Rate).Scan(&product.ID); err != nil {
		return domain.LoanProduct{}, fmt.Errorf("create loan product: %w", err)
	}
	return product, nil
}

func (r *LoanProductRepository) GetByID(ctx context.Context, id string) (domain.LoanProduct, error) {
	const query = `SELECT id, type, name, rate FROM loan_product WHERE id::text = $1`

	var product domain.LoanProduct
	err := r.db.QueryRowContext(ctx, query, id).Scan(&product.ID, &product.Type, &product.Name, &product.Rate)
	if err == sql.ErrNoRows {
		return domain.LoanProduct{}, commons.ErrRecordNotFound
	}
	if err != nil {
		return domain.LoanProduct{}, fmt.Errorf("get loan product: %w", err)
	}
	return product, nil
}

func (r *LoanProductRepository) List(ctx context.Context) ([]domain.LoanProduct, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, type, name, rate FROM loan_product ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list loan products: %w", err)
	}
	defer rows.Close()

	products := make([]domain.LoanProduct, 0)
	for rows.Next() {
		var product domain.LoanProduct
		if err := rows.Scan(&product.ID, &product.Type, &product.Name, &product.Rate); err != nil {
			return nil, fmt.Errorf("scan loan product row: %w", err)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate loan product rows: %w", err)
	}
	return products, nil
}

type InvestmentProductRepository struct {
	db *sql.DB
}

func NewInvestmentProductRepository(db *sql.DB) *InvestmentProductRepository {
	return &InvestmentProductRepository{db: db}
}

func (r *InvestmentProductRepository) Create(ctx context.Context, product domain.InvestmentProduct) (domain.InvestmentProduct, error) {
	const query = `
INSERT INTO investment_product (type, name, rate)
VALUES ($1, $2, $3)
RETURNING id`

	if err := r.db.QueryRowContext(ctx, query, product.Type, product.Name, product.Rate).Scan(&product.ID); err != nil {
		return domain.InvestmentProduct{}, fmt.Errorf("create investment product: %w", err)
	}
	return product, nil
}

func (r *InvestmentProductRepository) GetByID(ctx context.Context, id string) (domain.InvestmentProduct, error) {
	const query = `SELECT id, type, name, rate FROM investment_product WHERE id::text = $1`

	var product domain.InvestmentProduct
	err := r.db.QueryRowContext(ctx, query, id).Scan(&product.ID, &product.Type, &product.Name, &product.Rate)
	if err == sql.ErrNoRows {
		return domain.InvestmentProduct{}, commons.ErrRecordNotFound
	}
	if err != nil {
		return domain.InvestmentProduct{}, fmt.Errorf("get investment product: %w", err)
	}
	return product, nil
}

func (r *InvestmentProductRepository) List(ctx context.Context) ([]domain.InvestmentProduct, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, type, name, rate FROM investment_product ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list investment products: %w", err)
	}
	defer rows.Close()

	products := make([]domain.InvestmentProduct, 0)
	for rows.Next() {
		var product domain.InvestmentProduct
		if err := rows.Scan(&product.ID, &product.Type, &product.Name, &product.Rate); err != nil {
			return nil, fmt.Errorf("scan investment product row: %w", err)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate investment product rows: %w", err)
	}
	return products, nil
}

type InsurancePolicyProductRepository struct {
	db *sql.DB
}

func NewInsurancePolicyProductRepository(db *sql.DB) *InsurancePolicyProductRepository {
	return &InsurancePolicyProductRepository{db: db}
}

func (r *InsurancePolicyProductRepository) Create(ctx context.Context, product domain.InsurancePolicyProduct) (domain.InsurancePolicyProduct, error) {
	const query = `
INSERT INTO insurance_policy_product (type, name, annual_premium, coverage_cap)
VALUES ($1, $2, $3, $4)
RETURNING id`

	if err := r.db.QueryRowContext(
		ctx,
		query,
		product.Type,
		product.Name,
		product.AnnualPremium,
		product.CoverageCap,
	).Scan(&product.ID); err != nil {
		return domain.InsurancePolicyProduct{}, fmt.Errorf("create insurance policy product: %w", err)
	}
	return product, nil
}

func (r *InsurancePolicyProductRepository) GetByID(ctx context.Context, id string) (domain.InsurancePolicyProduct, error) {
	const query = `
SELECT id, type, name, annual_premium, coverage_cap
FROM insurance_policy_product
WHERE id::text = $1`

	var product domain.InsurancePolicyProduct
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&product.ID,
		&product.Type,
		&product.Name,
		&product.AnnualPremium,
		&product.CoverageCap,
	)
	if err == sql.ErrNoRows {
		return domain.InsurancePolicyProduct{}, commons.ErrRecordNotFound
	}
	if err != nil {
		return domain.InsurancePolicyProduct{}, fmt.Errorf("get insurance policy product: %w", err)
	}
	return product, nil
}

func (r *InsurancePolicyProductRepository) List(ctx context.Context) ([]domain.InsurancePolicyProduct, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, type, name, annual_premium, coverage_cap FROM insurance_policy_product ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list insurance policy products: %w", err)
	}
	defer rows.Close()

	products := make([]domain.InsurancePolicyProduct, 0)
	for rows.Next() {
		var product domain.InsurancePolicyProduct
		if err := rows.Scan(
			&product.ID,
			&product.Type,
			&product.Name,
			&product.AnnualPremium,
			&product.CoverageCap,
		); err != nil {
			return nil, fmt.Errorf("scan insurance policy product row: %w", err)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate insurance policy product rows: %w", err)
	}
	return products, nil
}
