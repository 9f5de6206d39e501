package model

import (
    "fmt"
    "strings"
    "time"
)

// PaymentStatus enumerates the states of a monthly client payment.
type PaymentStatus string

const (
    PaymentPending  PaymentStatus = "PENDING"
    PaymentPaid     PaymentStatus = "PAID"
    PaymentFailed   PaymentStatus = "FAILED"
    PaymentRefunded PaymentStatus = "REFUNDED"
)

// ParsePaymentStatus validates a payment status string (case-insensitive).
func ParsePaymentStatus(s string) (PaymentStatus, error) {
    st := PaymentStatus(strings.ToUpper(strings.TrimSpace(s)))
    switch st {
    case PaymentPending, PaymentPaid, PaymentFailed, PaymentRefunded:
        return st, nil
    }
    return "", fmt.Errorf("invalid payment status: %q", s)
}

// ClientPayment records one client's dues for one calendar month.  The
// (client, year, month) triple is unique.  An initial PENDING record with
// a zero amount is created for the current month when the client is
// created.  Payments share no invariants with the slot engine.
type ClientPayment struct {
    PaymentID   uint64        `json:"payment_id"`
    ClientID    uint64        `json:"client_id"`
    Year        int           `json:"year"`
    Month       int           `json:"month"` // 1..12
    AmountCents int64         `json:"amount_cents"`
    Status      PaymentStatus `json:"payment_status"`
    CreatedAt   time.Time     `json:"created_at"`
    UpdatedAt   time.Time     `json:"updated_at"`
}
