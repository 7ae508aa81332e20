package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/api-sage/pfm-ledger/internal/domain"
	"github.com/shopspring/decimal"
)

type PostTransactionRequest struct {
	Type                 string           `json:"type"`
	Amount               decimal.Decimal  `json:"amount"`
	Fee                  *decimal.Decimal `json:"fee"`
	SourceAccountID      *string          `json:"sourceAccountId"`
	DestinationAccountID *string          `json:"destinationAccountId"`
	Description          string           `json:"description"`
}

func (r PostTransactionRequest) Validate() error {
	var errs []string

	if r.Amount.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, "a transaction needs a positive amount")
	}
	if r.Fee != nil && r.Fee.LessThan(decimal.Zero) {
		errs = append(errs, "fee cannot be negative")
	}
	if isBlank(r.Description) {
		errs = append(errs, "description is required")
	}

	switch domain.TransactionType(strings.TrimSpace(r.Type)) {
	case domain.TransactionTypeDeposit:
		if !hasRef(r.DestinationAccountID) {
			errs = append(errs, fmt.Sprintf("a %s needs a destination account", domain.TransactionTypeDeposit))
		}
	case domain.TransactionTypeWithdraw:
		if !hasRef(r.SourceAccountID) {
			errs = append(errs, fmt.Sprintf("a %s needs a source account", domain.TransactionTypeWithdraw))
		}
	case domain.TransactionTypeTransfer:
		if !hasRef(r.SourceAccountID) || !hasRef(r.DestinationAccountID) {
			errs = append(errs, fmt.Sprintf("a %s needs both source and destination accounts", domain.TransactionTypeTransfer))
		}
	default:
		errs = append(errs, "type must be one of Deposit, Withdraw, Transfer")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

// ToDomain assumes Validate has passed. References that are legal but absent
// for the declared type are dropped so the ledger never touches them.
func (r PostTransactionRequest) ToDomain() domain.Transaction {
	txn := domain.Transaction{
		Type:        domain.TransactionType(strings.TrimSpace(r.Type)),
		Amount:      r.Amount.Round(2),
		Fee:         decimal.Zero,
		Description: strings.TrimSpace(r.Description),
	}
	if r.Fee != nil {
		txn.Fee = r.Fee.Round(2)
	}

	if txn.Type != domain.TransactionTypeDeposit && hasRef(r.SourceAccountID) {
		value := strings.TrimSpace(*r.SourceAccountID)
		txn.SourceAccountID = &value
	}
	if txn.Type != domain.TransactionTypeWithdraw && hasRef(r.DestinationAccountID) {
		value := strings.TrimSpace(*r.DestinationAccountID)
		txn.DestinationAccountID = &value
	}
	return txn
}

type TransactionResponse struct {
	ID                   string          `json:"id"`
	Reference            string          `json:"reference"`
	Type                 string          `json:"type"`
	Amount               decimal.Decimal `json:"amount"`
	Fee                  decimal.Decimal `json:"fee"`
	SourceAccountID      *string         `json:"sourceAccountId,omitempty"`
	DestinationAccountID *string         `json:"destinationAccountId,omitempty"`
	Description          string          `json:"description"`
	CreatedAt            string          `json:"createdAt"`
}

type ListTransactionsRequest struct {
	SourceAccountID      string
	DestinationAccountID string
	InvolvedAccountID    string
}

func hasRef(value *string) bool {
	return value != nil && !isBlank(*value)
}
