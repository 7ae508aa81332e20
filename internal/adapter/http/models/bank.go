package models

import (
	"errors"
	"strings"
)

type CreateBankRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

func (r CreateBankRequest) Validate() error {
	var errs []string

	if isBlank(r.Name) {
		errs = append(errs, "name is required")
	}
	if isBlank(r.Address) {
		errs = append(errs, "address is required")
	}
	if isBlank(r.Phone) {
		errs = append(errs, "phone is required")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type BankResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	SwiftCode string `json:"swiftCode"`
}
