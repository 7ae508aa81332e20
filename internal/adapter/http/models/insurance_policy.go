package models

import (
	"errors"
	"strings"
	"time"

	"github.com/api-sage/pfm-ledger/internal/domain"
)

type CreateInsurancePolicyRequest struct {
	StartDate                string `json:"startDate"`
	EndDate                  string `json:"endDate"`
	InsurancePolicyProductID string `json:"insurancePolicyProductId"`
	BankAccountID            string `json:"bankAccountId"`
}

func (r CreateInsurancePolicyRequest) Validate() error {
	var errs []string

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
	if isBlank(r.InsurancePolicyProductID) {
		errs = append(errs, "insurancePolicyProductId is required")
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
func (r CreateInsurancePolicyRequest) ToDomain(now time.Time) domain.InsurancePolicy {
	start := now
	if !isBlank(r.StartDate) {
		start, _ = parseDate(r.StartDate)
	}
	end, _ := parseDate(r.EndDate)

	return domain.InsurancePolicy{
		StartDate:                start,
		EndDate:                  end,
		InsurancePolicyProductID: strings.TrimSpace(r.InsurancePolicyProductID),
		BankAccountID:            strings.TrimSpace(r.BankAccountID),
		Status:                   domain.InsurancePolicyStatusActive,
	}
}

type InsurancePolicyActionRequest struct {
	Action string `json:"action"`
}

func (r InsurancePolicyActionRequest) Validate() error {
	action := domain.InsurancePolicyAction(strings.TrimSpace(r.Action))
	if _, ok := domain.InsurancePolicyStatusByAction[action]; !ok {
		return errors.New("action must be one of suspend, reactivate")
	}
	return nil
}

type InsurancePolicyResponse struct {
	ID                       string `json:"id"`
	StartDate                string `json:"startDate"`
	EndDate                  string `json:"endDate"`
	InsurancePolicyProductID string `json:"insurancePolicyProductId"`
	BankAccountID            string `json:"bankAccountId"`
	Status                   string `json:"status"`
}
