package repository

import (
    "context"
    "database/sql"

    "github.com/stebi123/dobroz/internal/model"
)

// AvailabilityRepo persists weekly availability rules. Every client owns
// exactly seven rows, one per day of week, enforced by a unique
// (client_id, day_of_week) key. Rules are written only inside the
// client-create and client-update transactions, so all mutators take a
// *sql.Tx.
type AvailabilityRepo struct {
    db *sql.DB
}

// NewAvailabilityRepo constructs an AvailabilityRepo given a DB handle.
func NewAvailabilityRepo(db *sql.DB) *AvailabilityRepo { return &AvailabilityRepo{db: db} }

const availabilityColumns = `availability_id, client_id, day_of_week,
    is_available, opening_time, closing_time, created_at, updated_at`

func scanAvailability(row interface{ Scan(...any) error }) (*model.WeeklyAvailability, error) {
    var (
        w       model.WeeklyAvailability
        day     string
        opening sql.NullString
        closing sql.NullString
    )
    err := row.Scan(&w.AvailabilityID, &w.ClientID, &day, &w.IsAvailable,
        &opening, &closing, &w.CreatedAt, &w.UpdatedAt)
    if err != nil {
        return nil, err
    }
    w.Day = model.DayOfWeek(day)
    if opening.Valid {
        t, err := model.ParseTimeOfDay(opening.String)
        if err != nil {
            return nil, err
        }
        w.OpeningTime = &t
    }
    if closing.Valid {
        t, err := model.ParseTimeOfDay(closing.String)
        if err != nil {
            return nil, err
        }
        w.ClosingTime = &t
    }
    return &w, nil
}

func timeArg(t *model.TimeOfDay) any {
    if t == nil {
        return nil
    }
    return t.String()
}

// CreateTx inserts one rule row within a transaction.
func (r *AvailabilityRepo) CreateTx(ctx context.Context, tx *sql.Tx, w *model.WeeklyAvailability) error {
    const q = `INSERT INTO weekly_availability
        (client_id, day_of_week, is_available, opening_time, closing_time)
        VALUES (?,?,?,?,?)`
    res, err := tx.ExecContext(ctx, q, w.ClientID, string(w.Day), w.IsAvailable,
        timeArg(w.OpeningTime), timeArg(w.ClosingTime))
    if err != nil {
        return err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return err
    }
    w.AvailabilityID = uint64(id)
    return nil
}

// UpdateTx rewrites the availability flag and time bounds of one rule,
// matched by (client_id, day_of_week), within a transaction.
func (r *AvailabilityRepo) UpdateTx(ctx context.Context, tx *sql.Tx, w *model.WeeklyAvailability) error {
    const q = `UPDATE weekly_availability
        SET is_available=?, opening_time=?, closing_time=?
        WHERE client_id=? AND day_of_week=?`
    _, err := tx.ExecContext(ctx, q, w.IsAvailable, timeArg(w.OpeningTime),
        timeArg(w.ClosingTime), w.ClientID, string(w.Day))
    return err
}

// ListByClient returns all rules for a client. The result usually holds
// seven entries but callers must tolerate fewer: missing days are
// treated as fully closed.
func (r *AvailabilityRepo) ListByClient(ctx context.Context, clientID uint64) ([]*model.WeeklyAvailability, error) {
    q := `SELECT ` + availabilityColumns + ` FROM weekly_availability WHERE client_id = ?`
    rows, err := r.db.QueryContext(ctx, q, clientID)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    var out []*model.WeeklyAvailability
    for rows.Next() {
        w, err := scanAvailability(rows)
        if err != nil {
            return nil, err
        }
        out = append(out, w)
    }
    return out, rows.Err()
}

// ListByClientTx is ListByClient executed inside a transaction, used by
// the availability-update flow so rules and slot vectors are read from a
// consistent snapshot.
func (r *AvailabilityRepo) ListByClientTx(ctx context.Context, tx *sql.Tx, clientID uint64) ([]*model.WeeklyAvailability, error) {
    q := `SELECT ` + availabilityColumns + ` FROM weekly_availability WHERE client_id = ?`
    rows, err := tx.QueryContext(ctx, q, clientID)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    var out []*model.WeeklyAvailability
    for rows.Next() {
        w, err := scanAvailability(rows)
        if err != nil {
            return nil, err
        }
        out = append(out, w)
    }
    return out, rows.Err()
}

// DeleteByClientTx removes every rule of a client within a transaction,
// used by the client-delete cascade.
func (r *AvailabilityRepo) DeleteByClientTx(ctx context.Context, tx *sql.Tx, clientID uint64) error {
    _, err := tx.ExecContext(ctx, `DELETE FROM weekly_availability WHERE client_id=?`, clientID)
    return err
}
