// Package repository defines error types that are reused across multiple
// repositories. These sentinel values let handlers distinguish failure
// scenarios: a missing record maps to HTTP 404, and a uniqueness
// violation during horizon materialization maps to HTTP 409 because it
// signals the caller invoking materialization twice for the same client.
package repository

import (
    "errors"
    "strings"
)

// ErrClientNotFound is returned when no client exists for the given id.
var ErrClientNotFound = errors.New("client not found")

// ErrVectorNotFound is returned when no slot vector has been
// materialized for a (client, date) pair. This is distinct from a
// vector whose slots are all closed.
var ErrVectorNotFound = errors.New("slot vector not found")

// ErrDuplicateVector is returned when inserting a slot vector violates
// the unique (client_id, booking_date) key. Existing vectors are never
// silently overwritten.
var ErrDuplicateVector = errors.New("slot vector already exists for date")

// ErrPaymentNotFound is returned when no payment row matches the id.
var ErrPaymentNotFound = errors.New("payment not found")

// ErrDuplicatePayment is returned when inserting a payment violates the
// unique (client_id, year, month) key.
var ErrDuplicatePayment = errors.New("payment already exists for period")

// isDuplicateKey reports whether a MySQL error is a duplicate key
// violation (error 1062). The driver does not expose a typed error, so
// we match on the error text.
func isDuplicateKey(err error) bool {
    return err != nil && strings.Contains(err.Error(), "1062")
}
