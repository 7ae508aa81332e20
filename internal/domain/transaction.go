package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeDeposit  TransactionType = "Deposit"
	TransactionTypeWithdraw TransactionType = "Withdraw"
	TransactionTypeTransfer TransactionType = "Transfer"
)

// Transaction is an append-only ledger fact. It is created exactly once and
// never updated or deleted afterwards.
type Transaction struct {
	ID                   string
	Reference            string
	Type                 TransactionType
	Amount               decimal.Decimal
	Fee                  decimal.Decimal // percentage of Amount, default 0
	SourceAccountID      *string
	DestinationAccountID *string
	Description          string
	CreatedAt            time.Time
}

var oneHundred = decimal.NewFromInt(100)

// TotalWithFee is the amount debited from the source account. Deposits carry
// no fee; for withdrawals and transfers the fee is a percentage surcharge on
// top of the amount. The fee portion is destroyed, not routed to any account.
func (t Transaction) TotalWithFee() decimal.Decimal {
	if t.Type == TransactionTypeDeposit {
		return t.Amount
	}
	return t.Amount.Add(t.Amount.Mul(t.Fee).Div(oneHundred))
}
