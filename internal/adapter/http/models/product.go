package models

import (
	"errors"
	"strings"

	"github.com/api-sage/pfm-ledger/internal/domain"
	"github.com/shopspring/decimal"
)

type CreateLoanProductRequest struct {
	Type string          `json:"type"`
	Name string          `json:"name"`
	Rate decimal.Decimal `json:"rate"`
}

func (r CreateLoanProductRequest) Validate() error {
	var errs []string

	switch domain.LoanProductType(strings.TrimSpace(r.Type)) {
	case domain.LoanProductTypePersonalLoan, domain.LoanProductTypeHomeMortgage, domain.LoanProductTypeCreditCard:
	default:
		errs = append(errs, "type must be one of PersonalLoan, HomeMortgage, CreditCard")
	}
	if isBlank(r.Name) {
		errs = append(errs, "name is required")
	}
	if r.Rate.LessThan(decimal.Zero) {
		errs = append(errs, "rate cannot be negative")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type LoanProductResponse struct {
	ID   string          `json:"id"`
	Type string          `json:"type"`
	Name string          `json:"name"`
	Rate decimal.Decimal `json:"rate"`
}

type CreateInvestmentProductRequest struct {
	Type string          `json:"type"`
	Name string          `json:"name"`
	Rate decimal.Decimal `json:"rate"`
}

func (r CreateInvestmentProductRequest) Validate() error {
	var errs []string

	switch domain.InvestmentProductType(strings.TrimSpace(r.Type)) {
	case domain.InvestmentProductTypeAction, domain.InvestmentProductTypeETF,
		domain.InvestmentProductTypeFund, domain.InvestmentProductTypeBond,
		domain.InvestmentProductTypeCrypto, domain.InvestmentProductTypeRawMaterials:
	default:
		errs = append(errs, "type must be one of Action, ETF, Fund, Bond, Crypto, RawMaterials")
	}
	if isBlank(r.Name) {
		errs = append(errs, "name is required")
	}
	if r.Rate.LessThan(decimal.Zero) {
		errs = append(errs, "rate cannot be negative")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type InvestmentProductResponse struct {
	ID   string          `json:"id"`
	Type string          `json:"type"`
	Name string          `json:"name"`
	Rate decimal.Decimal `json:"rate"`
}

type CreateInsurancePolicyProductRequest struct {
	Type          string          `json:"type"`
	Name          string          `json:"name"`
	AnnualPremium decimal.Decimal `json:"annualPremium"`
	CoverageCap   decimal.Decimal `json:"coverageCap"`
}

func (r CreateInsurancePolicyProductRequest) Validate() error {
	var errs []string

	switch domain.InsurancePolicyProductType(strings.TrimSpace(r.Type)) {
	case domain.InsurancePolicyProductTypeCar, domain.InsurancePolicyProductTypeLife, domain.InsurancePolicyProductTypeHome:
	default:
		errs = append(errs, "type must be one of Car, Life, Home")
	}
	if isBlank(r.Name) {
		errs = append(errs, "name is required")
	}
	if r.AnnualPremium.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, "annualPremium must be greater than zero")
	}
	if r.CoverageCap.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, "coverageCap must be greater than zero")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type InsurancePolicyProductResponse struct {
	ID            string          `json:"id"`
	Type          string          `json:"type"`
	Name          string          `json:"name"`
	AnnualPremium decimal.Decimal `json:"annualPremium"`
	CoverageCap   decimal.Decimal `json:"coverageCap"`
}
