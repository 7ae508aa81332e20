package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type InvestmentStatus string

const (
	InvestmentStatusActive InvestmentStatus = "ACTIVE"
	InvestmentStatusClosed InvestmentStatus = "CLOSED"
)

type InvestmentAction string

const (
	InvestmentActionActivate InvestmentAction = "activate"
	InvestmentActionClose    InvestmentAction = "close"
)

// InvestmentStatusByAction maps each allowed action onto its target status.
// An action whose target equals the current status is rejected.
var InvestmentStatusByAction = map[InvestmentAction]InvestmentStatus{
	InvestmentActionActivate: InvestmentStatusActive,
	InvestmentActionClose:    InvestmentStatusClosed,
}

type Investment struct {
	ID                  string
	Amount              decimal.Decimal
	StartDate           time.Time
	EndDate             time.Time
	InvestmentProductID string
	BankAccountID       string
	Status              InvestmentStatus
}
