package repository

import (
    "context"
    "database/sql"
    "strings"
    "time"

    "github.com/stebi123/dobroz/internal/model"
)

// SlotRepo persists slot vectors in the booked_slots table. The table
// keeps one VARCHAR column per hour (slot00..slot23) plus the client id
// and booking date; the unique (client_id, booking_date) key guarantees
// at most one vector per client per day. In Go the 24 columns are read
// into and written from the ordered model.SlotVector.Slots array.
type SlotRepo struct {
    db *sql.DB
}

// NewSlotRepo constructs a SlotRepo given a DB handle.
func NewSlotRepo(db *sql.DB) *SlotRepo { return &SlotRepo{db: db} }

const dateLayout = "2006-01-02"

// slotColumns returns "slot00, slot01, ..., slot23".
func slotColumns() string {
    cols := make([]string, model.HoursPerDay)
    for h := 0; h < model.HoursPerDay; h++ {
        cols[h] = model.SlotLabel(h)
    }
    return strings.Join(cols, ", ")
}

// slotAssignments returns "slot00=?, slot01=?, ..., slot23=?".
func slotAssignments() string {
    cols := make([]string, model.HoursPerDay)
    for h := 0; h < model.HoursPerDay; h++ {
        cols[h] = model.SlotLabel(h) + "=?"
    }
    return strings.Join(cols, ", ")
}

func scanVector(row interface{ Scan(...any) error }) (*model.SlotVector, error) {
    var v model.SlotVector
    dest := make([]any, 0, model.HoursPerDay+5)
    dest = append(dest, &v.ID, &v.ClientID, &v.BookingDate)
    for h := 0; h < model.HoursPerDay; h++ {
        dest = append(dest, &v.Slots[h])
    }
    dest = append(dest, &v.CreatedAt, &v.UpdatedAt)
    if err := row.Scan(dest...); err != nil {
        return nil, err
    }
    return &v, nil
}

// CreateTx inserts a freshly projected vector within a transaction. A
// duplicate (client, date) insert returns ErrDuplicateVector so callers
// never overwrite an existing day.
func (r *SlotRepo) CreateTx(ctx context.Context, tx *sql.Tx, v *model.SlotVector) error {
    q := `INSERT INTO booked_slots (client_id, booking_date, ` + slotColumns() + `)
          VALUES (?,?` + strings.Repeat(",?", model.HoursPerDay) + `)`
    args := make([]any, 0, model.HoursPerDay+2)
    args = append(args, v.ClientID, v.BookingDate.Format(dateLayout))
    for h := 0; h < model.HoursPerDay; h++ {
        args = append(args, v.Slots[h])
    }
    res, err := tx.ExecContext(ctx, q, args...)
    if err != nil {
        if isDuplicateKey(err) {
            return ErrDuplicateVector
        }
        return err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return err
    }
    v.ID = uint64(id)
    return nil
}

// GetByClientAndDate returns the vector for one day, or ErrVectorNotFound
// when no vector has been materialized for that date.
func (r *SlotRepo) GetByClientAndDate(ctx context.Context, clientID uint64, date time.Time) (*model.SlotVector, error) {
    q := `SELECT id, client_id, booking_date, ` + slotColumns() + `, created_at, updated_at
          FROM booked_slots WHERE client_id = ? AND booking_date = ?`
    v, err := scanVector(r.db.QueryRowContext(ctx, q, clientID, date.Format(dateLayout)))
    if err == sql.ErrNoRows {
        return nil, ErrVectorNotFound
    }
    return v, err
}

// ListFromDateTx returns all vectors dated fromDate or later, ordered by
// date ascending, locking the rows FOR UPDATE. The reconciliation pass
// runs inside one transaction and must serialize against a concurrent
// booking write touching the same rows.
func (r *SlotRepo) ListFromDateTx(ctx context.Context, tx *sql.Tx, clientID uint64, fromDate time.Time) ([]*model.SlotVector, error) {
    q := `SELECT id, client_id, booking_date, ` + slotColumns() + `, created_at, updated_at
          FROM booked_slots WHERE client_id = ? AND booking_date >= ?
          ORDER BY booking_date ASC FOR UPDATE`
    rows, err := tx.QueryContext(ctx, q, clientID, fromDate.Format(dateLayout))
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    var out []*model.SlotVector
    for rows.Next() {
        v, err := scanVector(rows)
        if err != nil {
            return nil, err
        }
        out = append(out, v)
    }
    return out, rows.Err()
}

// UpdateSlotsTx writes all 24 cells of a vector back in one statement.
// Reconciliation is all-or-nothing per vector; there is no per-hour
// update path.
func (r *SlotRepo) UpdateSlotsTx(ctx context.Context, tx *sql.Tx, v *model.SlotVector) error {
    q := `UPDATE booked_slots SET ` + slotAssignments() + ` WHERE id = ?`
    args := make([]any, 0, model.HoursPerDay+1)
    for h := 0; h < model.HoursPerDay; h++ {
        args = append(args, v.Slots[h])
    }
    args = append(args, v.ID)
    _, err := tx.ExecContext(ctx, q, args...)
    return err
}

// DeleteByClientTx removes every vector of a client within a
// transaction, used by the client-delete cascade. Individual vectors are
// never deleted outside of that cascade.
func (r *SlotRepo) DeleteByClientTx(ctx context.Context, tx *sql.Tx, clientID uint64) error {
    _, err := tx.ExecContext(ctx, `DELETE FROM booked_slots WHERE client_id=?`, clientID)
    return err
}
