package domain

import "time"

type InsurancePolicyStatus string

const (
	InsurancePolicyStatusActive    InsurancePolicyStatus = "ACTIVE"
	InsurancePolicyStatusSuspended InsurancePolicyStatus = "SUSPENDED"
)

type InsurancePolicyAction string

const (
	InsurancePolicyActionSuspend    InsurancePolicyAction = "suspend"
	InsurancePolicyActionReactivate InsurancePolicyAction = "reactivate"
)

var InsurancePolicyStatusByAction = map[InsurancePolicyAction]InsurancePolicyStatus{
	InsurancePolicyActionSuspend:    InsurancePolicyStatusSuspended,
	InsurancePolicyActionReactivate: InsurancePolicyStatusActive,
}

// InsurancePolicy books its product's annual premium against the linked
// account at creation time; status actions never touch the balance.
type InsurancePolicy struct {
	ID                       string
	StartDate                time.Time
	EndDate                  time.Time
	InsurancePolicyProductID string
	BankAccountID            string
	Status                   InsurancePolicyStatus
}
