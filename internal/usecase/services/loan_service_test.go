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

func TestLoanServiceCreateLoanValidationError(t *testing.T) {
	svc := services.NewLoanService(newFakeLedger(nil), newFakeLoanRepo(), newFakeLoanProductRepo(), newFakeAccountRepo())

	_, err := svc.CreateLoan(context.Background(), models.CreateLoanRequest{})
	if err == nil {
		t.Fatal("expected validation error for empty create loan request")
	}
}

func TestLoanServiceCreateLoanCreditsAccountAndBooksDeposit(t *testing.T) {
	ledger := newFakeLedger(map[string]decimal.Decimal{
		"acc-1": decimal.RequireFromString("20.00"),
	})
	productRepo := newFakeLoanProductRepo(domain.LoanProduct{
		ID:   "lp-1",
		Type: domain.LoanProductTypePersonalLoan,
		Name: "Starter Loan",
		Rate: decimal.RequireFromString("4.5"),
	})
	accountRepo := newFakeAccountRepo(domain.Account{ID: "acc-1"})
	svc := services.NewLoanService(ledger, newFakeLoanRepo(), productRepo, accountRepo)

	response, err := svc.CreateLoan(context.Background(), models.CreateLoanRequest{
		Amount:        decimal.RequireFromString("500.00"),
		EndDate:       "2027-01-01",
		LoanProductID: "lp-1",
		BankAccountID: "acc-1",
	})
	require.NoError(t, err)
	require.True(t, response.Success)

	assert.True(t, ledger.balances["acc-1"].Equal(decimal.RequireFromString("520.00")),
		"got balance %s", ledger.balances["acc-1"])

	require.Len(t, ledger.transactions, 1)
	booking := ledger.transactions[0]
	assert.Equal(t, domain.TransactionTypeDeposit, booking.Type)
	assert.True(t, booking.Amount.Equal(decimal.RequireFromString("500.00")))
	assert.True(t, booking.Fee.IsZero())
	require.NotNil(t, booking.DestinationAccountID)
	assert.Equal(t, "acc-1", *booking.DestinationAccountID)
	assert.NotEmpty(t, booking.Reference)
	assert.Contains(t, booking.Description, "Starter Loan")
}

func TestLoanServiceCreateLoanUnknownProduct(t *testing.T) {
	svc := services.NewLoanService(newFakeLedger(nil), newFakeLoanRepo(), newFakeLoanProductRepo(), newFakeAccountRepo())

	response, err := svc.CreateLoan(context.Background(), models.CreateLoanRequest{
		Amount:        decimal.RequireFromString("500.00"),
		EndDate:       "2027-01-01",
		LoanProductID: "missing",
		BankAccountID: "acc-1",
	})
	require.ErrorIs(t, err, commons.ErrRecordNotFound)
	assert.Equal(t, "Loan product not found", response.Message)
}

func TestLoanServiceCreateLoanUnknownAccount(t *testing.T) {
	productRepo := newFakeLoanProductRepo(domain.LoanProduct{ID: "lp-1", Name: "Starter Loan"})
	svc := services.NewLoanService(newFakeLedger(nil), newFakeLoanRepo(), productRepo, newFakeAccountRepo())

	response, err := svc.CreateLoan(context.Background(), models.CreateLoanRequest{
		Amount:        decimal.RequireFromString("500.00"),
		EndDate:       "2027-01-01",
		LoanProductID: "lp-1",
		BankAccountID: "missing",
	})
	require.ErrorIs(t, err, commons.ErrRecordNotFound)
	assert.Equal(t, "Bank account not found", response.Message)
}

func TestLoanServiceListLoansFiltersByAccount(t *testing.T) {
	loanRepo := newFakeLoanRepo(
		domain.Loan{ID: "loan-1", BankAccountID: "acc-1"},
		domain.Loan{ID: "loan-2", BankAccountID: "acc-2"},
	)
	svc := services.NewLoanService(newFakeLedger(nil), loanRepo, newFakeLoanProductRepo(), newFakeAccountRepo())

	response, err := svc.ListLoans(context.Background(), "acc-1")
	require.NoError(t, err)
	require.NotNil(t, response.Data)
	assert.Len(t, *response.Data, 1)
}
