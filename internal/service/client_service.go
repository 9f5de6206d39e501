// Package service implements the business flows behind the admin API.
// The availability-to-slot engine lives here: client creation
// materializes a 30-day horizon of slot vectors and availability edits
// reconcile every future vector inside one transaction.
package service

import (
    "context"
    "database/sql"
    "time"

    "go.uber.org/zap"

    "github.com/stebi123/dobroz/internal/model"
    "github.com/stebi123/dobroz/internal/queue"
    "github.com/stebi123/dobroz/internal/repository"
)

// DayRule is the caller-supplied availability for one day of week, as
// it arrives in create/update payloads. Days omitted from a payload
// default to unavailable.
type DayRule struct {
    IsAvailable bool             `json:"is_available"`
    OpeningTime *model.TimeOfDay `json:"opening_time"`
    ClosingTime *model.TimeOfDay `json:"closing_time"`
}

// ClientService owns the transactional client lifecycle: profile plus
// weekly availability plus the materialized booking horizon plus the
// initial payment record. Plain reads go straight to the repositories.
type ClientService struct {
    db           *sql.DB
    clients      *repository.ClientRepo
    availability *repository.AvailabilityRepo
    slots        *repository.SlotRepo
    payments     *repository.PaymentRepo
    logger       *zap.Logger
}

// NewClientService wires a ClientService. It panics on nil dependencies
// since there is no sensible degraded mode.
func NewClientService(db *sql.DB, clients *repository.ClientRepo, availability *repository.AvailabilityRepo, slots *repository.SlotRepo, payments *repository.PaymentRepo, logger *zap.Logger) *ClientService {
    if db == nil || clients == nil || availability == nil || slots == nil || payments == nil {
        panic("nil dependency passed to NewClientService")
    }
    if logger == nil {
        logger = zap.NewNop()
    }
    return &ClientService{
        db:           db,
        clients:      clients,
        availability: availability,
        slots:        slots,
        payments:     payments,
        logger:       logger,
    }
}

// CreateClient creates the client profile, its seven weekly availability
// rules, the 30-day slot vector horizon and the initial payment record
// as one transaction. New clients always start in PENDING. On success a
// client.created event is published best-effort.
func (s *ClientService) CreateClient(ctx context.Context, c *model.ClientDetails, rules map[model.DayOfWeek]DayRule) error {
    tx, err := s.db.BeginTx(ctx, nil)
    if err != nil {
        return err
    }
    defer func() { _ = tx.Rollback() }()

    c.Status = model.StatusPending
    if err := s.clients.CreateTx(ctx, tx, c); err != nil {
        return err
    }

    stored, err := s.createWeeklyRules(ctx, tx, c.ID, rules)
    if err != nil {
        return err
    }

    start := today()
    for _, v := range projectHorizon(c.ID, stored, start, model.DefaultHorizonDays) {
        if err := s.slots.CreateTx(ctx, tx, v); err != nil {
            // ErrDuplicateVector is fatal here: it means the horizon was
            // already materialized for this client and date.
            return err
        }
    }

    now := time.Now().UTC()
    payment := &model.ClientPayment{
        ClientID: c.ID,
        Year:     now.Year(),
        Month:    int(now.Month()),
        Status:   model.PaymentPending,
    }
    if err := s.payments.CreateTx(ctx, tx, payment); err != nil {
        return err
    }

    if err := tx.Commit(); err != nil {
        return err
    }

    if err := queue.PublishClientCreated(ctx, queue.ClientCreatedEvent{
        ClientID:   c.ID,
        Name:       c.Name,
        City:       c.City,
        Status:     string(c.Status),
        OccurredAt: now.Format(time.RFC3339),
    }); err != nil {
        s.logger.Warn("publish client.created failed", zap.Uint64("client_id", c.ID), zap.Error(err))
    }
    return nil
}

// createWeeklyRules writes exactly one rule per day of week. Days the
// payload does not mention are stored as unavailable with no time
// bounds. The stored rules are returned indexed by day.
func (s *ClientService) createWeeklyRules(ctx context.Context, tx *sql.Tx, clientID uint64, rules map[model.DayOfWeek]DayRule) (map[model.DayOfWeek]*model.WeeklyAvailability, error) {
    stored := make(map[model.DayOfWeek]*model.WeeklyAvailability, len(model.AllDays))
    for _, day := range model.AllDays {
        w := &model.WeeklyAvailability{ClientID: clientID, Day: day}
        if in, ok := rules[day]; ok {
            w.IsAvailable = in.IsAvailable
            w.OpeningTime = in.OpeningTime
            w.ClosingTime = in.ClosingTime
        }
        if err := s.availability.CreateTx(ctx, tx, w); err != nil {
            return nil, err
        }
        stored[day] = w
    }
    return stored, nil
}

// UpdateClient rewrites the profile, replaces the weekly rules wholesale
// and reconciles every future slot vector against the new rules, all
// inside one transaction. A concurrent reader never observes new rules
// with unreconciled vectors or the reverse.
func (s *ClientService) UpdateClient(ctx context.Context, id uint64, c *model.ClientDetails, rules map[model.DayOfWeek]DayRule) (*model.ClientDetails, error) {
    tx, err := s.db.BeginTx(ctx, nil)
    if err != nil {
        return nil, err
    }
    defer func() { _ = tx.Rollback() }()

    c.ID = id
    if err := s.clients.UpdateTx(ctx, tx, c); err != nil {
        return nil, err
    }

    existing, err := s.availability.ListByClientTx(ctx, tx, id)
    if err != nil {
        return nil, err
    }
    if len(existing) == 0 {
        return nil, repository.ErrClientNotFound
    }
    for _, w := range existing {
        if in, ok := rules[w.Day]; ok {
            w.IsAvailable = in.IsAvailable
            w.OpeningTime = in.OpeningTime
            w.ClosingTime = in.ClosingTime
        } else {
            w.IsAvailable = false
            w.OpeningTime = nil
            w.ClosingTime = nil
        }
        if err := s.availability.UpdateTx(ctx, tx, w); err != nil {
            return nil, err
        }
    }

    if err := s.reconcileFuture(ctx, tx, id, ruleMap(existing)); err != nil {
        return nil, err
    }

    if err := tx.Commit(); err != nil {
        return nil, err
    }
    return s.clients.GetByID(ctx, id)
}

// reconcileFuture merges the new rules into every slot vector dated
// today or later, preserving live bookings. The rows are locked FOR
// UPDATE so booking writes serialize against the pass. A single vector
// that fails to persist is logged and skipped so one bad day does not
// block reconciliation of the rest.
func (s *ClientService) reconcileFuture(ctx context.Context, tx *sql.Tx, clientID uint64, rules map[model.DayOfWeek]*model.WeeklyAvailability) error {
    vectors, err := s.slots.ListFromDateTx(ctx, tx, clientID, today())
    if err != nil {
        return err
    }
    for _, v := range vectors {
        v.ApplyRule(rules[model.DayOfDate(v.BookingDate)])
        if err := s.slots.UpdateSlotsTx(ctx, tx, v); err != nil {
            s.logger.Warn("reconcile: vector update failed, skipping",
                zap.Uint64("client_id", clientID),
                zap.String("date", v.BookingDate.Format("2006-01-02")),
                zap.Error(err))
        }
    }
    return nil
}

// UpdateStatus changes a client's admin status.
func (s *ClientService) UpdateStatus(ctx context.Context, id uint64, status model.ClientStatus) (*model.ClientDetails, error) {
    if err := s.clients.UpdateStatus(ctx, id, status); err != nil {
        return nil, err
    }
    return s.clients.GetByID(ctx, id)
}

// DeleteClient removes the client and all dependent records (weekly
// rules, slot vectors, payments) in one transaction, then publishes a
// client.deleted event best-effort.
func (s *ClientService) DeleteClient(ctx context.Context, id uint64) error {
    tx, err := s.db.BeginTx(ctx, nil)
    if err != nil {
        return err
    }
    defer func() { _ = tx.Rollback() }()

    if err := s.availability.DeleteByClientTx(ctx, tx, id); err != nil {
        return err
    }
    if err := s.slots.DeleteByClientTx(ctx, tx, id); err != nil {
        return err
    }
    if err := s.payments.DeleteByClientTx(ctx, tx, id); err != nil {
        return err
    }
    if err := s.clients.DeleteTx(ctx, tx, id); err != nil {
        return err
    }
    if err := tx.Commit(); err != nil {
        return err
    }

    if err := queue.PublishClientDeleted(ctx, queue.ClientDeletedEvent{
        ClientID:   id,
        OccurredAt: time.Now().UTC().Format(time.RFC3339),
    }); err != nil {
        s.logger.Warn("publish client.deleted failed", zap.Uint64("client_id", id), zap.Error(err))
    }
    return nil
}

// WeeklyAvailability returns a client's rules keyed by day name, the
// shape the availability endpoint serves.
func (s *ClientService) WeeklyAvailability(ctx context.Context, clientID uint64) (map[model.DayOfWeek]*model.WeeklyAvailability, error) {
    rules, err := s.availability.ListByClient(ctx, clientID)
    if err != nil {
        return nil, err
    }
    if len(rules) == 0 {
        return nil, repository.ErrClientNotFound
    }
    return ruleMap(rules), nil
}

// DayVector returns the wire form of one day's slot vector, keyed
// "slot00".."slot23". ErrVectorNotFound means no vector has been
// materialized for that date, which is not the same as an all-closed
// day.
func (s *ClientService) DayVector(ctx context.Context, clientID uint64, date time.Time) (map[string]string, error) {
    v, err := s.slots.GetByClientAndDate(ctx, clientID, date)
    if err != nil {
        return nil, err
    }
    return v.Wire(), nil
}
