package models

import (
	"errors"
	"strings"
	"time"

	"github.com/api-sage/pfm-ledger/internal/domain"
	"github.com/shopspring/decimal"
)

type CreateInvestmentRequest struct {
	Amount              decimal.Decimal `json:"amount"`
	StartDate           string          `json:"startDate"`
	EndDate             string          `json:"endDate"`
	InvestmentProductID string          `json:"investmentProductId"`
	BankAccountID       string          `json:"bankAccountId"`
}

func (r CreateInvestmentRequest) Validate() error {
	var errs []string

	if r.Amount.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, "an investment needs a positive amount")
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
	if isBlank(r.InvestmentProductID) {
		errs = append(errs, "investmentProductId is required")
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
func (r CreateInvestmentRequest) ToDomain(now time.Time) domain.Investment {
	start := now
	if !isBlank(r.StartDate) {
		start, _ = parseDate(r.StartDate)
	}
	end, _ := parseDate(r.EndDate)

	return domain.Investment{
		Amount:              r.Amount.Round(2),
		StartDate:           start,
		EndDate:             end,
		InvestmentProductID: strings.TrimSpace(r.InvestmentProductID),
		BankAccountID:       strings.TrimSpace(r.BankAccountID),
		Status:              domain.InvestmentStatusActive,
	}
}

type InvestmentActionRequest struct {
	Action string `json:"action"`
}

func (r InvestmentActionRequest) Validate() error {
	action := domain.InvestmentAction(strings.TrimSpace(r.Action))
	if _, ok := domain.InvestmentStatusByAction[action]; !ok {
		return errors.New("action must be one of activate, close")
	}
	return nil
}

type InvestmentResponse struct {
	ID                  string          `json:"id"`
	Amount              decimal.Decimal `json:"amount"`
	StartDate           string          `json:"startDate"`
	EndDate             string          `json:"endDate"`
	InvestmentProductID string          `json:"investmentProductId"`
	BankAccountID       string          `json:"bankAccountId"`
	Status              string          `json:"status"`
}
