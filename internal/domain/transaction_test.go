package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTotalWithFeeDepositIgnoresFee(t *testing.T) {
	txn := Transaction{
		Type:   TransactionTypeDeposit,
		Amount: decimal.RequireFromString("100.00"),
		Fee:    decimal.RequireFromString("10"),
	}

	assert.True(t, txn.TotalWithFee().Equal(decimal.RequireFromString("100.00")))
}

func TestTotalWithFeeAddsPercentageSurcharge(t *testing.T) {
	txn := Transaction{
		Type:   TransactionTypeWithdraw,
		Amount: decimal.RequireFromString("50.00"),
		Fee:    decimal.RequireFromString("10"),
	}

	assert.True(t, txn.TotalWithFee().Equal(decimal.RequireFromString("55.00")),
		"got %s", txn.TotalWithFee())
}

func TestTotalWithFeeZeroFee(t *testing.T) {
	txn := Transaction{
		Type:   TransactionTypeTransfer,
		Amount: decimal.RequireFromString("33.33"),
		Fee:    decimal.Zero,
	}

	assert.True(t, txn.TotalWithFee().Equal(decimal.RequireFromString("33.33")))
}

func TestTotalWithFeeFractionalFee(t *testing.T) {
	txn := Transaction{
		Type:   TransactionTypeTransfer,
		Amount: decimal.RequireFromString("200.00"),
		Fee:    decimal.RequireFromString("2.5"),
	}

	assert.True(t, txn.TotalWithFee().Equal(decimal.RequireFromString("205.00")),
		"got %s", txn.TotalWithFee())
}
