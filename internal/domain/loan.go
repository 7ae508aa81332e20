package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Loan is disbursed once at creation and carries no status afterwards.
type Loan struct {
	ID            string
	Amount        decimal.Decimal
	StartDate     time.Time
	EndDate       time.Time
	LoanProductID string
	BankAccountID string
}
