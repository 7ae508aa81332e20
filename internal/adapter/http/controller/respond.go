package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/api-sage/pfm-ledger/internal/commons"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// statusForError maps service errors onto HTTP statuses. Missing resources
// are 404; rejected operations (validation, insufficient funds, idempotent
// status actions, referenced accounts, duplicates) are 400; everything else
// is a 500.
func statusForError(err error) int {
	var insufficient *commons.InsufficientFundsError
	var invalidTransition *commons.InvalidStatusTransitionError

	switch {
	case errors.Is(err, commons.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.As(err, &insufficient),
		errors.As(err, &invalidTransition),
		errors.Is(err, commons.ErrAccountInUse),
		errors.Is(err, commons.ErrDuplicateRecord):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// statusForServiceError refines statusForError with the response message,
// which is how validation failures are distinguished from internal errors.
func statusForServiceError(err error, message string) int {
	if message == "validation failed" {
		return http.StatusBadRequest
	}
	return statusForError(err)
}
