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

func TestInvestmentServiceCreateInvestmentValidationError(t *testing.T) {
	svc := services.NewInvestmentService(newFakeLedger(nil), newFakeInvestmentRepo(), newFakeInvestmentProductRepo())

	_, err := svc.CreateInvestment(context.Background(), models.CreateInvestmentRequest{})
	if err == nil {
		t.Fatal("expected validation error for empty create investment request")
	}
}

func TestInvestmentServiceCreateInvestmentDebitsAccount(t *testing.T) {
	ledger := newFakeLedger(map[string]decimal.Decimal{
		"acc-1": decimal.RequireFromString("1000.00"),
	})
	productRepo := newFakeInvestmentProductRepo(domain.InvestmentProduct{
		ID:   "ip-1",
		Type: domain.InvestmentProductTypeETF,
		Name: "World ETF",
	})
	svc := services.NewInvestmentService(ledger, newFakeInvestmentRepo(), productRepo)

	response, err := svc.CreateInvestment(context.Background(), models.CreateInvestmentRequest{
		Amount:              decimal.RequireFromString("400.00"),
		EndDate:             "2030-01-01",
		InvestmentProductID: "ip-1",
		BankAccountID:       "acc-1",
	})
	require.NoError(t, err)
	require.True(t, response.Success)
	require.NotNil(t, response.Data)
	assert.Equal(t, string(domain.InvestmentStatusActive), response.Data.Status)

	assert.True(t, ledger.balances["acc-1"].Equal(decimal.RequireFromString("600.00")),
		"got balance %s", ledger.balances["acc-1"])
}

func TestInvestmentServiceCreateInvestmentInsufficientFunds(t *testing.T) {
	ledger := newFakeLedger(map[string]decimal.Decimal{
		"acc-1": decimal.RequireFromString("100.00"),
	})
	productRepo := newFakeInvestmentProductRepo(domain.InvestmentProduct{ID: "ip-1"})
	svc := services.NewInvestmentService(ledger, newFakeInvestmentRepo(), productRepo)

	response, err := svc.CreateInvestment(context.Background(), models.CreateInvestmentRequest{
		Amount:              decimal.RequireFromString("400.00"),
		EndDate:             "2030-01-01",
		InvestmentProductID: "ip-1",
		BankAccountID:       "acc-1",
	})
	require.Error(t, err)

	var insufficient *commons.InsufficientFundsError
	require.ErrorAs(t, err, &insufficient)
	assert.True(t, insufficient.Available.Equal(decimal.RequireFromString("100.00")))
	assert.Equal(t, "amount too large", response.Message)
	assert.True(t, ledger.balances["acc-1"].Equal(decimal.RequireFromString("100.00")))
}

func TestInvestmentServiceApplyActionTransitionsStatus(t *testing.T) {
	repo := newFakeInvestmentRepo(domain.Investment{
		ID:     "inv-1",
		Status: domain.InvestmentStatusActive,
	})
	svc := services.NewInvestmentService(newFakeLedger(nil), repo, newFakeInvestmentProductRepo())

	response, err := svc.ApplyAction(context.Background(), "inv-1", models.InvestmentActionRequest{Action: "close"})
	require.NoError(t, err)
	require.NotNil(t, response.Data)
	assert.Contains(t, response.Data.Message, "close")

	investment, err := repo.GetByID(context.Background(), "inv-1")
	require.NoError(t, err)
	assert.Equal(t, domain.InvestmentStatusClosed, investment.Status)
}

func TestInvestmentServiceApplyActionRejectsSameStatus(t *testing.T) {
	repo := newFakeInvestmentRepo(domain.Investment{
		ID:     "inv-1",
		Status: domain.InvestmentStatusClosed,
	})
	svc := services.NewInvestmentService(newFakeLedger(nil), repo, newFakeInvestmentProductRepo())

	_, err := svc.ApplyAction(context.Background(), "inv-1", models.InvestmentActionRequest{Action: "close"})
	require.Error(t, err)

	var invalidTransition *commons.InvalidStatusTransitionError
	require.ErrorAs(t, err, &invalidTransition)
	assert.Equal(t, string(domain.InvestmentStatusClosed), invalidTransition.Status)
}

func TestInvestmentServiceApplyActionUnknownAction(t *testing.T) {
	svc := services.NewInvestmentService(newFakeLedger(nil), newFakeInvestmentRepo(), newFakeInvestmentProductRepo())

	_, err := svc.ApplyAction(context.Background(), "inv-1", models.InvestmentActionRequest{Action: "freeze"})
	if err == nil {
		t.Fatal("expected validation error for unknown action")
	}
}

func TestInvestmentServiceApplyActionUnknownInvestment(t *testing.T) {
	svc := services.NewInvestmentService(newFakeLedger(nil), newFakeInvestmentRepo(), newFakeInvestmentProductRepo())

	response, err := svc.ApplyAction(context.Background(), "missing", models.InvestmentActionRequest{Action: "close"})
	require.ErrorIs(t, err, commons.ErrRecordNotFound)
	assert.Equal(t, "Investment not found", response.Message)
}
