package domain

import "github.com/shopspring/decimal"

type LoanProductType string

const (
	LoanProductTypePersonalLoan LoanProductType = "PersonalLoan"
	LoanProductTypeHomeMortgage LoanProductType = "HomeMortgage"
	LoanProductTypeCreditCard   LoanProductType = "CreditCard"
)

type LoanProduct struct {
	ID   string
	Type LoanProductType
	Name string
	Rate decimal.Decimal
}

type InvestmentProductType string

const (
	InvestmentProductTypeAction       InvestmentProductType = "Action"
	InvestmentProductTypeETF          InvestmentProductType = "ETF"
	InvestmentProductTypeFund         InvestmentProductType = "Fund"
	InvestmentProductTypeBond         InvestmentProductType = "Bond"
	InvestmentProductTypeCrypto       InvestmentProductType = "Crypto"
	InvestmentProductTypeRawMaterials InvestmentProductType = "RawMaterials"
)

type InvestmentProduct struct {
	ID   string
	Type InvestmentProductType
	Name string
	Rate decimal.Decimal
}

type InsurancePolicyProductType string

const (
	InsurancePolicyProductTypeCar  InsurancePolicyProductType = "Car"
	InsurancePolicyProductTypeLife InsurancePolicyProductType = "Life"
	InsurancePolicyProductTypeHome InsurancePolicyProductType = "Home"
)

type InsurancePolicyProduct struct {
	ID            string
	Type          InsurancePolicyProductType
	Name          string
	AnnualPremium decimal.Decimal
	CoverageCap   decimal.Decimal
}
