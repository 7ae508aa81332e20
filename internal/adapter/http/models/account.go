package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

type CreateAccountRequest struct {
	UserProfileID string `json:"userProfileId"`
	BankID        string `json:"bankId"`
	Currency      string `json:"currency"`
}

func (r CreateAccountRequest) Validate() error {
	var errs []string

	if isBlank(r.UserProfileID) {
		errs = append(errs, "userProfileId is required")
	}
	if isBlank(r.BankID) {
		errs = append(errs, "bankId is required")
	}
	if len(strings.TrimSpace(r.Currency)) != 3 {
		errs = append(errs, "currency must be 3 characters")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type AccountResponse struct {
	ID            string          `json:"id"`
	UserProfileID string          `json:"userProfileId"`
	BankID        string          `json:"bankId"`
	AccountNumber string          `json:"accountNumber"`
	IBANCode      string          `json:"ibanCode"`
	Currency      string          `json:"currency"`
	Balance       decimal.Decimal `json:"balance"`
	CreatedAt     string          `json:"createdAt"`
}
