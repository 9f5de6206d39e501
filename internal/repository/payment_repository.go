package repository

import (
    "context"
    "database/sql"

    "github.com/stebi123/dobroz/internal/model"
)

// PaymentRepo persists monthly client payment records. There is at most
// one row per (client, year, month).
type PaymentRepo struct {
    db *sql.DB
}

// NewPaymentRepo constructs a PaymentRepo given a DB handle.
func NewPaymentRepo(db *sql.DB) *PaymentRepo { return &PaymentRepo{db: db} }

const paymentColumns = `payment_id, client_id, year, month, amount_cents,
    payment_status, created_at, updated_at`

func scanPayment(row interface{ Scan(...any) error }) (*model.ClientPayment, error) {
    var (
        p      model.ClientPayment
        status string
    )
    err := row.Scan(&p.PaymentID, &p.ClientID, &p.Year, &p.Month,
        &p.AmountCents, &status, &p.CreatedAt, &p.UpdatedAt)
    if err != nil {
        return nil, err
    }
    p.Status = model.PaymentStatus(status)
    return &p, nil
}

// Create inserts a payment row and populates its generated ID.
func (r *PaymentRepo) Create(ctx context.Context, p *model.ClientPayment) error {
    const q = `INSERT INTO client_payment (client_id, year, month, amount_cents, payment_status)
               VALUES (?,?,?,?,?)`
    res, err := r.db.ExecContext(ctx, q, p.ClientID, p.Year, p.Month, p.AmountCents, string(p.Status))
    if err != nil {
        if isDuplicateKey(err) {
            return ErrDuplicatePayment
        }
        return err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return err
    }
    p.PaymentID = uint64(id)
    return nil
}

// CreateTx is Create inside an existing transaction, used when the
// initial record is written as part of client creation.
func (r *PaymentRepo) CreateTx(ctx context.Context, tx *sql.Tx, p *model.ClientPayment) error {
    const q = `INSERT INTO client_payment (client_id, year, month, amount_cents, payment_status)
               VALUES (?,?,?,?,?)`
    res, err := tx.ExecContext(ctx, q, p.ClientID, p.Year, p.Month, p.AmountCents, string(p.Status))
    if err != nil {
        if isDuplicateKey(err) {
            return ErrDuplicatePayment
        }
        return err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return err
    }
    p.PaymentID = uint64(id)
    return nil
}

// GetByID returns one payment or ErrPaymentNotFound.
func (r *PaymentRepo) GetByID(ctx context.Context, id uint64) (*model.ClientPayment, error) {
    q := `SELECT ` + paymentColumns + ` FROM client_payment WHERE payment_id = ?`
    p, err := scanPayment(r.db.QueryRowContext(ctx, q, id))
    if err == sql.ErrNoRows {
        return nil, ErrPaymentNotFound
    }
    return p, err
}

// List returns one page of payments plus the total count. Page is
// zero-based; payments are ordered newest first.
func (r *PaymentRepo) List(ctx context.Context, page, size int) ([]*model.ClientPayment, int64, error) {
    var total int64
    if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM client_payment`).Scan(&total); err != nil {
        return nil, 0, err
    }
    q := `SELECT ` + paymentColumns + ` FROM client_payment ORDER BY payment_id DESC LIMIT ? OFFSET ?`
    rows, err := r.db.QueryContext(ctx, q, size, page*size)
    if err != nil {
        return nil, 0, err
    }
    defer rows.Close()
    out := make([]*model.ClientPayment, 0, size)
    for rows.Next() {
        p, err := scanPayment(rows)
        if err != nil {
            return nil, 0, err
        }
        out = append(out, p)
    }
    return out, total, rows.Err()
}

func (r *PaymentRepo) queryList(ctx context.Context, q string, args ...any) ([]*model.ClientPayment, error) {
    rows, err := r.db.QueryContext(ctx, q, args...)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    var out []*model.ClientPayment
    for rows.Next() {
        p, err := scanPayment(rows)
        if err != nil {
            return nil, err
        }
        out = append(out, p)
    }
    return out, rows.Err()
}

// ListByClient returns all payments of one client, newest period first.
func (r *PaymentRepo) ListByClient(ctx context.Context, clientID uint64) ([]*model.ClientPayment, error) {
    q := `SELECT ` + paymentColumns + ` FROM client_payment
          WHERE client_id = ? ORDER BY year DESC, month DESC`
    return r.queryList(ctx, q, clientID)
}

// ListByStatus returns all payments in the given status.
func (r *PaymentRepo) ListByStatus(ctx context.Context, status model.PaymentStatus) ([]*model.ClientPayment, error) {
    q := `SELECT ` + paymentColumns + ` FROM client_payment
          WHERE payment_status = ? ORDER BY payment_id DESC`
    return r.queryList(ctx, q, string(status))
}

// ListByPeriod returns all payments for one calendar month.
func (r *PaymentRepo) ListByPeriod(ctx context.Context, year, month int) ([]*model.ClientPayment, error) {
    q := `SELECT ` + paymentColumns + ` FROM client_payment
          WHERE year = ? AND month = ? ORDER BY client_id ASC`
    return r.queryList(ctx, q, year, month)
}

// Update rewrites the period, amount and status of one payment.
func (r *PaymentRepo) Update(ctx context.Context, p *model.ClientPayment) error {
    const q = `UPDATE client_payment SET year=?, month=?, amount_cents=?, payment_status=?
               WHERE payment_id=?`
    res, err := r.db.ExecContext(ctx, q, p.Year, p.Month, p.AmountCents, string(p.Status), p.PaymentID)
    if err != nil {
        return err
    }
    n, err := res.RowsAffected()
    if err != nil {
        return err
    }
    if n == 0 {
        var exists int
        if err := r.db.QueryRowContext(ctx, `SELECT 1 FROM client_payment WHERE payment_id=?`, p.PaymentID).Scan(&exists); err == sql.ErrNoRows {
            return ErrPaymentNotFound
        } else if err != nil {
            return err
        }
    }
    return nil
}

// Delete removes one payment row.
func (r *PaymentRepo) Delete(ctx context.Context, id uint64) error {
    res, err := r.db.ExecContext(ctx, `DELETE FROM client_payment WHERE payment_id=?`, id)
    if err != nil {
        return err
    }
    n, err := res.RowsAffected()
    if err != nil {
        return err
    }
    if n == 0 {
        return ErrPaymentNotFound
    }
    return nil
}

// DeleteByClientTx removes every payment of a client within a
// transaction, used by the client-delete cascade.
func (r *PaymentRepo) DeleteByClientTx(ctx context.Context, tx *sql.Tx, clientID uint64) error {
    _, err := tx.ExecContext(ctx, `DELETE FROM client_payment WHERE client_id=?`, clientID)
    return err
}
