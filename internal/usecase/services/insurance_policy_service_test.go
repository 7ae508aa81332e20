package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/api-sage/pfm-ledger/internal/adapter/http/models"
	"github.com/api-sage/pfm-ledger/internal/commons"
	"github.com/api-sage/pfm-ledger/internal/domain"
	"github.com/api-sage/pfm-ledger/internal/usecase/services"
)

func TestInsurancePolicyServiceCreatePolicyValidationError(t *testing.T) {
	svc := services.NewInsurancePolicyService(newFakeLedger(nil), newFakeInsurancePolicyRepo(), newFakeInsurancePolicyProductRepo())

	_, err := svc.CreatePolicy(context.Background(), models.CreateInsurancePolicyRequest{})
	if err == nil {
		t.Fatal("expected validation error for empty create policy request")
	}
}

func TestInsurancePolicyServiceCreatePolicyChargesAnnualPremium(t *testing.T) {
	ledger := newFakeLedger(map[string]decimal.Decimal{
		"acc-1": decimal.RequireFromString("500.00"),
	})
	productRepo := newFakeInsurancePolicyProductRepo(domain.InsurancePolicyProduct{
		ID:            "pp-1",
		Type:          domain.InsurancePolicyProductTypeCar,
		Name:          "Car Basic",
		AnnualPremium: decimal.RequireFromString("120.00"),
		CoverageCap:   decimal.RequireFromString("10000.00"),
	})
	svc := services.NewInsurancePolicyService(ledger, newFakeInsurancePolicyRepo(), productRepo)

	response, err := svc.CreatePolicy(context.Background(), models.CreateInsurancePolicyRequest{
		EndDate:                  "2027-06-01",
		InsurancePolicyProductID: "pp-1",
		BankAccountID:            "acc-1",
	})
	require.NoError(t, err)
	require.True(t, response.Success)
	require.NotNil(t, response.Data)
	assert.Equal(t, string(domain.InsurancePolicyStatusActive), response.Data.Status)

	assert.True(t, ledger.balances["acc-1"].Equal(decimal.RequireFromString("380.00")),
		"got balance %s", ledger.balances["acc-1"])
}

func TestInsurancePolicyServiceCreatePolicyInsufficientFunds(t *testing.T) {
	ledger := newFakeLedger(map[string]decimal.Decimal{
		"acc-1": decimal.RequireFromString("50.00"),
	})
	productRepo := newFakeInsurancePolicyProductRepo(domain.InsurancePolicyProduct{
		ID:            "pp-1",
		AnnualPremium: decimal.RequireFromString("120.00"),
	})
	svc := services.NewInsurancePolicyService(ledger, newFakeInsurancePolicyRepo(), productRepo)

	response, err := svc.CreatePolicy(context.Background(), models.CreateInsurancePolicyRequest{
		EndDate:                  "2027-06-01",
		InsurancePolicyProductID: "pp-1",
		BankAccountID:            "acc-1",
	})
	require.Error(t, err)

	var insufficient *commons.InsufficientFundsError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, "amount too large", response.Message)
	assert.True(t, ledger.balances["acc-1"].Equal(decimal.RequireFromString("50.00")))
}

func TestInsurancePolicyServiceCreatePolicyUnknownProduct(t *testing.T) {
	svc := services.NewInsurancePolicyService(newFakeLedger(nil), newFakeInsurancePolicyRepo(), newFakeInsurancePolicyProductRepo())

	response, err := svc.CreatePolicy(context.Background(), models.CreateInsurancePolicyRequest{
		EndDate:                  "2027-06-01",
		InsurancePolicyProductID: "missing",
		BankAccountID:            "acc-1",
	})
	require.ErrorIs(t, err, commons.ErrRecordNotFound)
	assert.Equal(t, "Insurance policy product not found", response.Message)
}

func TestInsurancePolicyServiceApplyActionSuspendThenReactivate(t *testing.T) {
	repo := newFakeInsurancePolicyRepo(domain.InsurancePolicy{
		ID:     "pol-1",
		Status: domain.InsurancePolicyStatusActive,
	})
	svc := services.NewInsurancePolicyService(newFakeLedger(nil), repo, newFakeInsurancePolicyProductRepo())

	_, err := svc.ApplyAction(context.Background(), "pol-1", models.InsurancePolicyActionRequest{Action: "suspend"})
	require.NoError(t, err)

	policy, err := repo.GetByID(context.Background(), "pol-1")
	require.NoError(t, err)
	assert.Equal(t, domain.InsurancePolicyStatusSuspended, policy.Status)

	_, err = svc.ApplyAction(context.Background(), "pol-1", models.InsurancePolicyActionRequest{Action: "reactivate"})
	require.NoError(t, err)

	policy, err = repo.GetByID(context.Background(), "pol-1")
	require.NoError(t, err)
	assert.Equal(t, domain.InsurancePolicyStatusActive, policy.Status)
}

func TestInsurancePolicyServiceApplyActionRejectsDoubleSuspend(t *testing.T) {
	repo := newFakeInsurancePolicyRepo(domain.InsurancePolicy{
		ID:     "pol-1",
		Status: domain.InsurancePolicyStatusSuspended,
	})
	svc := services.NewInsurancePolicyService(newFakeLedger(nil), repo, newFakeInsurancePolicyProductRepo())

	_, err := svc.ApplyAction(context.Background(), "pol-1", models.InsurancePolicyActionRequest{Action: "suspend"})
	require.Error(t, err)

	var invalidTransition *commons.InvalidStatusTransitionError
	require.ErrorAs(t, err, &invalidTransition)
	assert.Equal(t, string(domain.InsurancePolicyStatusSuspended), invalidTransition.Status)
}
