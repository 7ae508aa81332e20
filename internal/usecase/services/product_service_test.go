package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/api-sage/pfm-ledger/internal/adapter/http/models"
	"github.com/api-sage/pfm-ledger/internal/commons"
	"github.com/api-sage/pfm-ledger/internal/usecase/services"
)

func newProductService() *services.ProductService {
	return services.NewProductService(
		newFakeLoanProductRepo(),
		newFakeInvestmentProductRepo(),
		newFakeInsurancePolicyProductRepo(),
	)
}

func TestProductServiceCreateLoanProductRejectsUnknownType(t *testing.T) {
	svc := newProductService()

	_, err := svc.CreateLoanProduct(context.Background(), models.CreateLoanProductRequest{
		Type: "Payday",
		Name: "Quick Cash",
	})
	if err == nil {
		t.Fatal("expected validation error for unknown loan product type")
	}
}

func TestProductServiceCreateAndFetchLoanProduct(t *testing.T) {
	svc := newProductService()

	created, err := svc.CreateLoanProduct(context.Background(), models.CreateLoanProductRequest{
		Type: "PersonalLoan",
		Name: "Starter Loan",
		Rate: decimal.RequireFromString("4.5"),
	})
	require.NoError(t, err)
	require.NotNil(t, created.Data)

	fetched, err := svc.GetLoanProduct(context.Background(), created.Data.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched.Data)
	assert.Equal(t, "Starter Loan", fetched.Data.Name)
}

func TestProductServiceCreateInsurancePolicyProductRejectsZeroPremium(t *testing.T) {
	svc := newProductService()

	_, err := svc.CreateInsurancePolicyProduct(context.Background(), models.CreateInsurancePolicyProductRequest{
		Type:        "Car",
		Name:        "Car Basic",
		CoverageCap: decimal.RequireFromString("10000"),
	})
	if err == nil {
		t.Fatal("expected validation error for zero annual premium")
	}
}

func TestProductServiceGetInvestmentProductNotFound(t *testing.T) {
	svc := newProductService()

	response, err := svc.GetInvestmentProduct(context.Background(), "missing")
	require.ErrorIs(t, err, commons.ErrRecordNotFound)
	assert.Equal(t, "Investment product not found", response.Message)
}
