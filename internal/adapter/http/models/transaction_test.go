package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/api-sage/pfm-ledger/internal/domain"
)

func ptr(v string) *string { return &v }

func feePtr(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

func TestPostTransactionRequestValidateDepositNeedsDestination(t *testing.T) {
	req := PostTransactionRequest{
		Type:        "Deposit",
		Amount:      decimal.RequireFromString("10.00"),
		Description: "salary",
	}

	err := req.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "destination account")
}

func TestPostTransactionRequestValidateWithdrawNeedsSource(t *testing.T) {
	req := PostTransactionRequest{
		Type:        "Withdraw",
		Amount:      decimal.RequireFromString("10.00"),
		Description: "cash",
	}

	require.Error(t, req.Validate())
}

func TestPostTransactionRequestValidateTransferNeedsBothAccounts(t *testing.T) {
	req := PostTransactionRequest{
		Type:            "Transfer",
		Amount:          decimal.RequireFromString("10.00"),
		SourceAccountID: ptr("acc-1"),
		Description:     "rent",
	}

	require.Error(t, req.Validate())

	req.DestinationAccountID = ptr("acc-2")
	require.NoError(t, req.Validate())
}

func TestPostTransactionRequestValidateRejectsNonPositiveAmount(t *testing.T) {
	req := PostTransactionRequest{
		Type:                 "Deposit",
		Amount:               decimal.Zero,
		DestinationAccountID: ptr("acc-1"),
		Description:          "salary",
	}

	require.Error(t, req.Validate())
}

func TestPostTransactionRequestValidateRejectsNegativeFee(t *testing.T) {
	req := PostTransactionRequest{
		Type:                 "Deposit",
		Amount:               decimal.RequireFromString("10.00"),
		Fee:                  feePtr("-1"),
		DestinationAccountID: ptr("acc-1"),
		Description:          "salary",
	}

	require.Error(t, req.Validate())
}

func TestPostTransactionRequestValidateRejectsUnknownType(t *testing.T) {
	req := PostTransactionRequest{
		Type:        "Refund",
		Amount:      decimal.RequireFromString("10.00"),
		Description: "oops",
	}

	require.Error(t, req.Validate())
}

func TestPostTransactionRequestToDomainDropsIllegalReferences(t *testing.T) {
	// A deposit may not carry a source reference even if the client sends one.
	req := PostTransactionRequest{
		Type:                 "Deposit",
		Amount:               decimal.RequireFromString("10.00"),
		SourceAccountID:      ptr("acc-1"),
		DestinationAccountID: ptr("acc-2"),
		Description:          "salary",
	}

	txn := req.ToDomain()
	assert.Nil(t, txn.SourceAccountID)
	require.NotNil(t, txn.DestinationAccountID)
	assert.Equal(t, "acc-2", *txn.DestinationAccountID)

	// A withdrawal may not carry a destination reference.
	req = PostTransactionRequest{
		Type:                 "Withdraw",
		Amount:               decimal.RequireFromString("10.00"),
		SourceAccountID:      ptr("acc-1"),
		DestinationAccountID: ptr("acc-2"),
		Description:          "cash",
	}

	txn = req.ToDomain()
	require.NotNil(t, txn.SourceAccountID)
	assert.Nil(t, txn.DestinationAccountID)
}

func TestPostTransactionRequestToDomainDefaultsFeeToZero(t *testing.T) {
	req := PostTransactionRequest{
		Type:                 "Deposit",
		Amount:               decimal.RequireFromString("10.005"),
		DestinationAccountID: ptr("acc-1"),
		Description:          "salary",
	}

	txn := req.ToDomain()
	assert.True(t, txn.Fee.IsZero())
	assert.True(t, txn.Amount.Equal(decimal.RequireFromString("10.01")), "amounts round to cents")
	assert.Equal(t, domain.TransactionTypeDeposit, txn.Type)
}
