package services

import "github.com/oklog/ulid/v2"

// newLedgerReference returns a sortable unique reference for a transaction
// record. ULIDs keep the transaction log roughly time-ordered even across
// instances.
func newLedgerReference() string {
	return ulid.Make().String()
}
