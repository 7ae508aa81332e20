package commons

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var ErrRecordNotFound = errors.New("Record not found")
var ErrDuplicateRecord = errors.New("Record already exists")
var ErrAccountInUse = errors.New("Account is referenced by existing records")

// InsufficientFundsError is returned when an operation would drive an
// account balance negative. Available carries the balance observed under
// lock so callers can display it.
type InsufficientFundsError struct {
	Available decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("amount too large: available balance is %s", e.Available.StringFixed(2))
}

// InvalidStatusTransitionError is returned when a status action targets the
// status the obligation is already in. The rejection is idempotent: the
// record is left untouched.
type InvalidStatusTransitionError struct {
	Status string
}

func (e *InvalidStatusTransitionError) Error() string {
	return fmt.Sprintf("already in status %s", e.Status)
}
