package model

import "time"

// Role names recognized by the API.  ADMIN can manage clients and
// payments; STAFF has read-only access to availability and bookings.
const (
    RoleAdmin = "ADMIN"
    RoleStaff = "STAFF"
)

// User is an operator account stored in the `users` table.  Passwords
// are stored only as bcrypt hashes.
type User struct {
    ID           uint64
    Email        string
    PasswordHash string
    Role         string
    IsActive     bool
    CreatedAt    time.Time
    UpdatedAt    time.Time
}

// RefreshToken is a row in `refresh_tokens`.  The raw token is returned
// to the client once; only its SHA-256 hash is persisted.
type RefreshToken struct {
    ID        uint64
    UserID    uint64
    TokenHash string
    ExpiresAt time.Time
    RevokedAt *time.Time
    CreatedAt time.Time
}
