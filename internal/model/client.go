package model

import (
    "fmt"
    "strings"
    "time"
)

// ClientStatus enumerates the administrative lifecycle of a client.
type ClientStatus string

const (
    StatusActive   ClientStatus = "ACTIVE"
    StatusInactive ClientStatus = "INACTIVE"
    StatusPending  ClientStatus = "PENDING"
)

// ParseClientStatus validates a status string (case-insensitive).
func ParseClientStatus(s string) (ClientStatus, error) {
    st := ClientStatus(strings.ToUpper(strings.TrimSpace(s)))
    switch st {
    case StatusActive, StatusInactive, StatusPending:
        return st, nil
    }
    return "", fmt.Errorf("invalid client status: %q", s)
}

// ClientDetails is a venue profile managed through the admin API.  New
// clients start in PENDING until an administrator activates them.
//
// Fields map 1:1 onto the `client_details` table.  ImageURLs is stored
// as a JSON array in a single column.  PricePerSlotCents is the price of
// one hourly slot in the smallest currency unit.
type ClientDetails struct {
    ID                uint64       `json:"id"`
    Name              string       `json:"name"`
    Description       string       `json:"description,omitempty"`
    Address           string       `json:"address,omitempty"`
    City              string       `json:"city,omitempty"`
    State             string       `json:"state,omitempty"`
    Zipcode           string       `json:"zipcode,omitempty"`
    Latitude          *float64     `json:"latitude,omitempty"`
    Longitude         *float64     `json:"longitude,omitempty"`
    PricePerSlotCents int64        `json:"price_per_slot_cents"`
    ImageURLs         []string     `json:"image_urls,omitempty"`
    ContactNumber     string       `json:"contact_number,omitempty"`
    Email             string       `json:"email,omitempty"`
    Website           string       `json:"website,omitempty"`
    AccountNumber     string       `json:"account_number,omitempty"`
    AccountType       string       `json:"account_type,omitempty"`
    Branch            string       `json:"branch,omitempty"`
    IFSCCode          string       `json:"ifsc_code,omitempty"`
    UPIID             string       `json:"upi_id,omitempty"`
    Status            ClientStatus `json:"status"`
    CreatedAt         time.Time    `json:"created_at"`
    UpdatedAt         time.Time    `json:"updated_at"`
}

// CustomerView is the reduced client projection exposed to listing
// screens that do not need banking or media details.
type CustomerView struct {
    ID            uint64       `json:"id"`
    Name          string       `json:"name"`
    City          string       `json:"city,omitempty"`
    ContactNumber string       `json:"contact_number,omitempty"`
    Status        ClientStatus `json:"status"`
    CreatedAt     time.Time    `json:"created_at"`
    UpdatedAt     time.Time    `json:"updated_at"`
}

// Customer returns the reduced view of this client.
func (c *ClientDetails) Customer() CustomerView {
    return CustomerView{
        ID:            c.ID,
        Name:          c.Name,
        City:          c.City,
        ContactNumber: c.ContactNumber,
        Status:        c.Status,
        CreatedAt:     c.CreatedAt,
        UpdatedAt:     c.UpdatedAt,
    }
}
