package repository

import (
    "context"
    "database/sql"
    "encoding/json"
    "fmt"
    "strings"

    "github.com/stebi123/dobroz/internal/model"
)

// ClientRepo encapsulates database operations for the client_details
// table. All mutations that participate in a larger unit of work (client
// creation, deletion) expose Tx variants so the service layer can run
// them inside one transaction.
type ClientRepo struct {
    db *sql.DB
}

// NewClientRepo constructs a ClientRepo given a DB handle.
func NewClientRepo(db *sql.DB) *ClientRepo { return &ClientRepo{db: db} }

const clientColumns = `id, name, description, address, city, state, zipcode,
    latitude, longitude, price_per_slot_cents, image_urls, contact_number,
    email, website, account_number, account_type, branch, ifsc_code, upi_id,
    status, created_at, updated_at`

// sortableClientColumns whitelists the columns callers may sort by.
// Anything else falls back to "id" so user input never reaches the
// ORDER BY clause unchecked.
var sortableClientColumns = map[string]string{
    "id":         "id",
    "name":       "name",
    "city":       "city",
    "status":     "status",
    "created_at": "created_at",
    "updated_at": "updated_at",
}

// orderClause builds a safe ORDER BY fragment from user-supplied sort
// parameters.
func orderClause(sortBy, direction string) string {
    col, ok := sortableClientColumns[strings.ToLower(strings.TrimSpace(sortBy))]
    if !ok {
        col = "id"
    }
    dir := "DESC"
    if strings.EqualFold(direction, "ASC") {
        dir = "ASC"
    }
    return fmt.Sprintf(" ORDER BY %s %s", col, dir)
}

func scanClient(row interface{ Scan(...any) error }) (*model.ClientDetails, error) {
    var (
        c         model.ClientDetails
        desc      sql.NullString
        addr      sql.NullString
        city      sql.NullString
        state     sql.NullString
        zipcode   sql.NullString
        lat       sql.NullFloat64
        lng       sql.NullFloat64
        imageJSON sql.NullString
        contact   sql.NullString
        email     sql.NullString
        website   sql.NullString
        accNum    sql.NullString
        accType   sql.NullString
        branch    sql.NullString
        ifsc      sql.NullString
        upi       sql.NullString
        status    string
    )
    err := row.Scan(&c.ID, &c.Name, &desc, &addr, &city, &state, &zipcode,
        &lat, &lng, &c.PricePerSlotCents, &imageJSON, &contact,
        &email, &website, &accNum, &accType, &branch, &ifsc, &upi,
        &status, &c.CreatedAt, &c.UpdatedAt)
    if err != nil {
        return nil, err
    }
    c.Description = desc.String
    c.Address = addr.String
    c.City = city.String
    c.State = state.String
    c.Zipcode = zipcode.String
    if lat.Valid {
        v := lat.Float64
        c.Latitude = &v
    }
    if lng.Valid {
        v := lng.Float64
        c.Longitude = &v
    }
    if imageJSON.Valid && imageJSON.String != "" {
        // A row written by an older client may hold malformed JSON;
        // treat it as no images rather than failing the whole read.
        _ = json.Unmarshal([]byte(imageJSON.String), &c.ImageURLs)
    }
    c.ContactNumber = contact.String
    c.Email = email.String
    c.Website = website.String
    c.AccountNumber = accNum.String
    c.AccountType = accType.String
    c.Branch = branch.String
    c.IFSCCode = ifsc.String
    c.UPIID = upi.String
    c.Status = model.ClientStatus(status)
    return &c, nil
}

func clientArgs(c *model.ClientDetails) ([]any, error) {
    var imageJSON any
    if len(c.ImageURLs) > 0 {
        b, err := json.Marshal(c.ImageURLs)
        if err != nil {
            return nil, err
        }
        imageJSON = string(b)
    }
    return []any{
        c.Name, nullStr(c.Description), nullStr(c.Address), nullStr(c.City),
        nullStr(c.State), nullStr(c.Zipcode), c.Latitude, c.Longitude,
        c.PricePerSlotCents, imageJSON, nullStr(c.ContactNumber),
        nullStr(c.Email), nullStr(c.Website), nullStr(c.AccountNumber),
        nullStr(c.AccountType), nullStr(c.Branch), nullStr(c.IFSCCode),
        nullStr(c.UPIID), string(c.Status),
    }, nil
}

// nullStr converts "" to NULL so optional profile fields stay NULL in
// the database instead of accumulating empty strings.
func nullStr(s string) any {
    if s == "" {
        return nil
    }
    return s
}

// CreateTx inserts a client inside an existing transaction and populates
// the generated ID and timestamps on the passed struct.
func (r *ClientRepo) CreateTx(ctx context.Context, tx *sql.Tx, c *model.ClientDetails) error {
    const q = `INSERT INTO client_details
        (name, description, address, city, state, zipcode, latitude, longitude,
         price_per_slot_cents, image_urls, contact_number, email, website,
         account_number, account_type, branch, ifsc_code, upi_id, status)
        VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`
    args, err := clientArgs(c)
    if err != nil {
        return err
    }
    res, err := tx.ExecContext(ctx, q, args...)
    if err != nil {
        return err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return err
    }
    c.ID = uint64(id)
    const sel = `SELECT created_at, updated_at FROM client_details WHERE id = ?`
    return tx.QueryRowContext(ctx, sel, c.ID).Scan(&c.CreatedAt, &c.UpdatedAt)
}

// GetByID returns one client or ErrClientNotFound.
func (r *ClientRepo) GetByID(ctx context.Context, id uint64) (*model.ClientDetails, error) {
    q := `SELECT ` + clientColumns + ` FROM client_details WHERE id = ?`
    c, err := scanClient(r.db.QueryRowContext(ctx, q, id))
    if err == sql.ErrNoRows {
        return nil, ErrClientNotFound
    }
    return c, err
}

// List returns one page of clients plus the total row count for
// pagination headers. Page is zero-based.
func (r *ClientRepo) List(ctx context.Context, page, size int, sortBy, direction string) ([]*model.ClientDetails, int64, error) {
    var total int64
    if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM client_details`).Scan(&total); err != nil {
        return nil, 0, err
    }
    q := `SELECT ` + clientColumns + ` FROM client_details` + orderClause(sortBy, direction) + ` LIMIT ? OFFSET ?`
    rows, err := r.db.QueryContext(ctx, q, size, page*size)
    if err != nil {
        return nil, 0, err
    }
    defer rows.Close()
    out := make([]*model.ClientDetails, 0, size)
    for rows.Next() {
        c, err := scanClient(rows)
        if err != nil {
            return nil, 0, err
        }
        out = append(out, c)
    }
    return out, total, rows.Err()
}

// ListByStatus returns every client in the given status, newest first.
func (r *ClientRepo) ListByStatus(ctx context.Context, status model.ClientStatus) ([]*model.ClientDetails, error) {
    q := `SELECT ` + clientColumns + ` FROM client_details WHERE status = ? ORDER BY id DESC`
    rows, err := r.db.QueryContext(ctx, q, string(status))
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    var out []*model.ClientDetails
    for rows.Next() {
        c, err := scanClient(rows)
        if err != nil {
            return nil, err
        }
        out = append(out, c)
    }
    return out, rows.Err()
}

// SearchByName returns clients whose name contains the given fragment,
// case-insensitively.
func (r *ClientRepo) SearchByName(ctx context.Context, name string) ([]*model.ClientDetails, error) {
    q := `SELECT ` + clientColumns + ` FROM client_details WHERE LOWER(name) LIKE ? ORDER BY id DESC`
    rows, err := r.db.QueryContext(ctx, q, "%"+strings.ToLower(strings.TrimSpace(name))+"%")
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    var out []*model.ClientDetails
    for rows.Next() {
        c, err := scanClient(rows)
        if err != nil {
            return nil, err
        }
        out = append(out, c)
    }
    return out, rows.Err()
}

// UpdateTx rewrites the profile fields of an existing client inside a
// transaction. Status is not modified here; use UpdateStatus.
func (r *ClientRepo) UpdateTx(ctx context.Context, tx *sql.Tx, c *model.ClientDetails) error {
    const q = `UPDATE client_details SET
        name=?, description=?, address=?, city=?, state=?, zipcode=?,
        latitude=?, longitude=?, price_per_slot_cents=?, image_urls=?,
        contact_number=?, email=?, website=?, account_number=?,
        account_type=?, branch=?, ifsc_code=?, upi_id=?
        WHERE id=?`
    args, err := clientArgs(c)
    if err != nil {
        return err
    }
    // clientArgs appends status last; drop it and append the id instead.
    args = append(args[:len(args)-1], c.ID)
    res, err := tx.ExecContext(ctx, q, args...)
    if err != nil {
        return err
    }
    n, err := res.RowsAffected()
    if err != nil {
        return err
    }
    if n == 0 {
        // RowsAffected is also 0 when nothing changed, so confirm the
        // row really is missing before reporting not found.
        var exists int
        if err := tx.QueryRowContext(ctx, `SELECT 1 FROM client_details WHERE id=?`, c.ID).Scan(&exists); err == sql.ErrNoRows {
            return ErrClientNotFound
        } else if err != nil {
            return err
        }
    }
    return nil
}

// UpdateStatus changes only the admin status of a client.
func (r *ClientRepo) UpdateStatus(ctx context.Context, id uint64, status model.ClientStatus) error {
    res, err := r.db.ExecContext(ctx,
        `UPDATE client_details SET status=? WHERE id=?`, string(status), id)
    if err != nil {
        return err
    }
    n, err := res.RowsAffected()
    if err != nil {
        return err
    }
    if n == 0 {
        var exists int
        if err := r.db.QueryRowContext(ctx, `SELECT 1 FROM client_details WHERE id=?`, id).Scan(&exists); err == sql.ErrNoRows {
            return ErrClientNotFound
        } else if err != nil {
            return err
        }
    }
    return nil
}

// DeleteTx removes the client row itself. Dependent availability, slot
// and payment rows must be removed first by their own repositories
// within the same transaction.
func (r *ClientRepo) DeleteTx(ctx context.Context, tx *sql.Tx, id uint64) error {
    res, err := tx.ExecContext(ctx, `DELETE FROM client_details WHERE id=?`, id)
    if err != nil {
        return err
    }
    n, err := res.RowsAffected()
    if err != nil {
        return err
    }
    if n == 0 {
        return ErrClientNotFound
    }
    return nil
}

// Exists reports whether a client row exists.
func (r *ClientRepo) Exists(ctx context.Context, id uint64) (bool, error) {
    var one int
    err := r.db.QueryRowContext(ctx, `SELECT 1 FROM client_details WHERE id=?`, id).Scan(&one)
    if err == sql.ErrNoRows {
        return false, nil
    }
    if err != nil {
        return false, err
    }
    return true, nil
}
