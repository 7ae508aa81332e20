package services

import (
	"context"
	"errors"
	"strings"

	"github.com/api-sage/pfm-ledger/internal/adapter/http/models"
	"github.com/api-sage/pfm-ledger/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/pfm-ledger/internal/commons"
	"github.com/api-sage/pfm-ledger/internal/domain"
	"github.com/api-sage/pfm-ledger/internal/logger"
)

// ProductService manages the catalog the obligations are sold from. Products
// are append-only: once referenced by a loan, investment, or policy they are
// never mutated, so the catalog has no update or delete path.
type ProductService struct {
	loanProductRepo       repo_interfaces.LoanProductRepository
	investmentProductRepo repo_interfaces.InvestmentProductRepository
	policyProductRepo     repo_interfaces.InsurancePolicyProductRepository
}

func NewProductService(
	loanProductRepo repo_interfaces.LoanProductRepository,
	investmentProductRepo repo_interfaces.InvestmentProductRepository,
	policyProductRepo repo_interfaces.InsurancePolicyProductRepository,
) *ProductService {
	return &ProductService{
		loanProductRepo:       loanProductRepo,
		investmentProductRepo: investmentProductRepo,
		policyProductRepo:     policyProductRepo,
	}
}

func (s *ProductService) CreateLoanProduct(ctx context.Context, req models.CreateLoanProductRequest) (commons.Response[models.LoanProductResponse], error) {
	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.LoanProductResponse]("validation failed", err.Error()), err
	}

	product := domain.LoanProduct{
		Type: domain.LoanProductType(strings.TrimSpace(req.Type)),
		Name: strings.TrimSpace(req.Name),
		Rate: req.Rate,
	}

	created, err := s.loanProductRepo.Create(ctx, product)
	if err != nil {
		logger.Error("product service create loan product failed", err, nil)
		return commons.ErrorResponse[models.LoanProductResponse]("failed to create loan product", "Unable to create loan product right now"), err
	}

	return commons.SuccessResponse("loan product created successfully", mapLoanProductToResponse(created)), nil
}

func (s *ProductService) GetLoanProduct(ctx context.Context, id string) (commons.Response[models.LoanProductResponse], error) {
	product, err := s.loanProductRepo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		if errors.Is(err, commons.ErrRecordNotFound) {
			return commons.ErrorResponse[models.LoanProductResponse]("Loan product not found"), err
		}
		logger.Error("product service get loan product failed", err, logger.Fields{"loanProductId": id})
		return commons.ErrorResponse[models.LoanProductResponse]("failed to get loan product", "Unable to fetch loan product right now"), err
	}
	return commons.SuccessResponse("loan product fetched successfully", mapLoanProductToResponse(product)), nil
}

func (s *ProductService) ListLoanProducts(ctx context.Context) (commons.Response[[]models.LoanProductResponse], error) {
	products, err := s.loanProductRepo.List(ctx)
	if err != nil {
		logger.Error("product service list loan products failed", err, nil)
		return commons.ErrorResponse[[]models.LoanProductResponse]("failed to list loan products", "Unable to fetch loan products right now"), err
	}

	responses := make([]models.LoanProductResponse, 0, len(products))
	for _, product := range products {
		responses = append(responses, mapLoanProductToResponse(product))
	}
	return commons.SuccessResponse("loan products fetched successfully", responses), nil
}

func (s *ProductService) CreateInvestmentProduct(ctx context.Context, req models.CreateInvestmentProductRequest) (commons.Response[models.InvestmentProductResponse], error) {
	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.InvestmentProductResponse]("validation failed", err.Error()), err
	}

	product := domain.InvestmentProduct{
		Type: domain.InvestmentProductType(strings.TrimSpace(req.Type)),
		Name: strings.TrimSpace(req.Name),
		Rate: req.Rate,
	}

	created, err := s.investmentProductRepo.Create(ctx, product)
	if err != nil {
		logger.Error("product service create investment product failed", err, nil)
		return commons.ErrorResponse[models.InvestmentProductResponse]("failed to create investment product", "Unable to create investment product right now"), err
	}

	return commons.SuccessResponse("investment product created successfully", mapInvestmentProductToResponse(created)), nil
}

func (s *ProductService) GetInvestmentProduct(ctx context.Context, id string) (commons.Response[models.InvestmentProductResponse], error) {
	product, err := s.investmentProductRepo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		if errors.Is(err, commons.ErrRecordNotFound) {
			return commons.ErrorResponse[models.InvestmentProductResponse]("Investment product not found"), err
		}
		logger.Error("product service get investment product failed", err, logger.Fields{"investmentProductId": id})
		return commons.ErrorResponse[models.InvestmentProductResponse]("failed to get investment product", "Unable to fetch investment product right now"), err
	}
	return commons.SuccessResponse("investment product fetched successfully", mapInvestmentProductToResponse(product)), nil
}

func (s *ProductService) ListInvestmentProducts(ctx context.Context) (commons.Response[[]models.InvestmentProductResponse], error) {
	products, err := s.investmentProductRepo.List(ctx)
	if err != nil {
		logger.Error("product service list investment products failed", err, nil)
		return commons.ErrorResponse[[]models.InvestmentProductResponse]("failed to list investment products", "Unable to fetch investment products right now"), err
	}

	responses := make([]models.InvestmentProductResponse, 0, len(products))
	for _, product := range products {
		responses = append(responses, mapInvestmentProductToResponse(product))
	}
	return commons.SuccessResponse("investment products fetched successfully", responses), nil
}

func (s *ProductService) CreateInsurancePolicyProduct(ctx context.Context, req models.CreateInsurancePolicyProductRequest) (commons.Response[models.InsurancePolicyProductResponse], error) {
	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.InsurancePolicyProductResponse]("validation failed", err.Error()), err
	}

	product := domain.InsurancePolicyProduct{
		Type:          domain.InsurancePolicyProductType(strings.TrimSpace(req.Type)),
		Name:          strings.TrimSpace(req.Name),
		AnnualPremium: req.AnnualPremium,
		CoverageCap:   req.CoverageCap,
	}

	created, err := s.policyProductRepo.Create(ctx, product)
	if err != nil {
		logger.Error("product service create insurance policy product failed", err, nil)
		return commons.ErrorResponse[models.InsurancePolicyProductResponse]("failed to create insurance policy product", "Unable to create insurance policy product right now"), err
	}

	return commons.SuccessResponse("insurance policy product created successfully", mapInsurancePolicyProductToResponse(created)), nil
}

func (s *ProductService) GetInsurancePolicyProduct(ctx context.Context, id string) (commons.Response[models.InsurancePolicyProductResponse], error) {
	product, err := s.policyProductRepo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		if errors.Is(err, commons.ErrRecordNotFound) {
			return commons.ErrorResponse[models.InsurancePolicyProductResponse]("Insurance policy product not found"), err
		}
		logger.Error("product service get insurance policy product failed", err, logger.Fields{"insurancePolicyProductId": id})
		return commons.ErrorResponse[models.InsurancePolicyProductResponse]("failed to get insurance policy product", "Unable to fetch insurance policy product right now"), err
	}
	return commons.SuccessResponse("insurance policy product fetched successfully", mapInsurancePolicyProductToResponse(product)), nil
}

func (s *ProductService) ListInsurancePolicyProducts(ctx context.Context) (commons.Response[[]models.InsurancePolicyProductResponse], error) {
	products, err := s.policyProductRepo.List(ctx)
	if err != nil {
		logger.Error("product service list insurance policy products failed", err, nil)
		return commons.ErrorResponse[[]models.InsurancePolicyProductResponse]("failed to list insurance policy products", "Unable to fetch insurance policy products right now"), err
	}

	responses := make([]models.InsurancePolicyProductResponse, 0, len(products))
	for _, product := range products {
		responses = append(responses, mapInsurancePolicyProductToResponse(product))
	}
	return commons.SuccessResponse("insurance policy products fetched successfully", responses), nil
}

func mapLoanProductToResponse(product domain.LoanProduct) models.LoanProductResponse {
	return models.LoanProductResponse{
		ID:   product.ID,
		Type: string(product.Type),
		Name: product.Name,
		Rate: product.Rate,
	}
}

func mapInvestmentProductToResponse(product domain.InvestmentProduct) models.InvestmentProductResponse {
	return models.InvestmentProductResponse{
		ID:   product.ID,
		Type: string(product.Type),
		Name: product.Name,
		Rate: product.Rate,
	}
}

func mapInsurancePolicyProductToResponse(product domain.InsurancePolicyProduct) models.InsurancePolicyProductResponse {
	return models.InsurancePolicyProductResponse{
		ID:            product.ID,
		Type:          string(product.Type),
		Name:          product.Name,
		AnnualPremium: product.AnnualPremium,
		CoverageCap:   product.CoverageCap,
	}
}
