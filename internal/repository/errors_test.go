package repository

import (
    "errors"
    "testing"
)

func TestIsDuplicateKey(t *testing.T) {
    tests := []struct {
        name string
        err  error
        want bool
    }{
        {"mysql duplicate", errors.New("Error 1062 (23000): Duplicate entry '3-2026-08-24' for key 'uq_booked_slots_client_date'"), true},
        {"other mysql error", errors.New("Error 1452 (23000): Cannot add or update a child row"), false},
        {"nil", nil, false},
        {"plain error", errors.New("connection refused"), false},
    }

    for _, tt := range tests {
        t.Run(tt.name, func(t *testing.T) {
            if got := isDuplicateKey(tt.err); got != tt.want {
                t.Errorf("isDuplicateKey() = %v, want %v", got, tt.want)
            }
        })
    }
}

func TestOrderClause(t *testing.T) {
    tests := []struct {
        name      string
        sortBy    string
        direction string
        want      string
    }{
        {"default", "", "", " ORDER BY id DESC"},
        {"name asc", "name", "asc", " ORDER BY name ASC"},
        {"name ASC upper", "Name", "ASC", " ORDER BY name ASC"},
        {"unknown column falls back", "password_hash", "ASC", " ORDER BY id ASC"},
        {"injection attempt falls back", "id; DROP TABLE users", "DESC", " ORDER BY id DESC"},
        {"bad direction falls back to desc", "city", "sideways", " ORDER BY city DESC"},
    }

    for _, tt := range tests {
        t.Run(tt.name, func(t *testing.T) {
            if got := orderClause(tt.sortBy, tt.direction); got != tt.want {
                t.Errorf("orderClause(%q, %q) = %q, want %q", tt.sortBy, tt.direction, got, tt.want)
            }
        })
    }
}
