package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is the balance-bearing entity. The balance is mutated only inside
// a ledger posting; no other code path writes it.
type Account struct {
	ID            string
	UserProfileID string
	BankID        string
	AccountNumber string
	IBANCode      string
	Currency      string
	Balance       decimal.Decimal
	CreatedAt     time.Time
}
