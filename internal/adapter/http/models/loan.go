package models

import (
	"errors"
	"strings"
	"time"

	"github.com/api-sage/pfm-ledger/internal/domain"
	"github.com/shopspring/decimal"
)

type CreateLoanRequest struct {
	Amount        decimal.Decimal `json:"amount"`
	StartDate     string          `json:"startDate"`
	EndDate       string          `json:"endDate"`
	LoanProductID string          `json:"loanProductId"`
	BankAccountID string          `json:"bankAccountId"`
}

func (r CreateLoanRequest) Validate() error {
	var errs []string

	if r.Amount.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, "a loan needs a positive amount")
	}
	if !isBlank(r.StartDate) {
		if _, err := parseDate(r.StartDate); err != nil {
			errs = append(errs, "startDate is not a valid date")
		}
	}
	if isBlank(r.EndDate) {
		errs = append(errs, "endDate is required")
	} else if _, err := parseDate(r.EndDate); err != nil {
		errs = append(errs, "endDate is not a valid date")
	}
	if isBlank(r.LoanProductID) {
		errs = append(errs, "loanProductId is required")
	}
	if isBlank(r.BankAccountID) {
		errs = append(errs, "bankAccountId is required")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

// ToDomain assumes Validate has passed; a blank start date defaults to now.
func (r CreateLoanRequest) ToDomain(now time.Time) domain.Loan {
	start := now
	if !isBlank(r.StartDate) {
		start, _ = parseDate(r.StartDate)
	}
	end, _ := parseDate(r.EndDate)

	return domain.Loan{
		Amount:        r.Amount.Round(2),
		StartDate:     start,
		EndDate:       end,
		LoanProductID: strings.TrimSpace(r.LoanProductID),
		BankAccountID: strings.TrimSpace(r.BankAccountID),
	}
}

type LoanResponse struct {
	ID            string          `json:"id"`
	Amount        decimal.Decimal `json:"amount"`
	StartDate     string          `json:"startDate"`
	EndDate       string          `json:"endDate"`
	LoanProductID string          `json:"loanProductId"`
	BankAccountID string          `json:"bankAccountId"`
}
