package service

import (
    "context"

    "go.uber.org/zap"

    "github.com/stebi123/dobroz/internal/model"
    "github.com/stebi123/dobroz/internal/repository"
)

// PaymentService wraps payment record CRUD. It exists mostly to keep
// handlers out of the repository layer and to validate period values in
// one place; payments carry no invariants shared with the slot engine.
type PaymentService struct {
    payments *repository.PaymentRepo
    logger   *zap.Logger
}

// NewPaymentService wires a PaymentService.
func NewPaymentService(payments *repository.PaymentRepo, logger *zap.Logger) *PaymentService {
    if payments == nil {
        panic("nil repository passed to NewPaymentService")
    }
    if logger == nil {
        logger = zap.NewNop()
    }
    return &PaymentService{payments: payments, logger: logger}
}

// List returns one page of payments plus the total count.
func (s *PaymentService) List(ctx context.Context, page, size int) ([]*model.ClientPayment, int64, error) {
    return s.payments.List(ctx, page, size)
}

// Get returns one payment or repository.ErrPaymentNotFound.
func (s *PaymentService) Get(ctx context.Context, id uint64) (*model.ClientPayment, error) {
    return s.payments.GetByID(ctx, id)
}

// ByClient returns all payments for one client.
func (s *PaymentService) ByClient(ctx context.Context, clientID uint64) ([]*model.ClientPayment, error) {
    return s.payments.ListByClient(ctx, clientID)
}

// ByStatus returns all payments in the given status.
func (s *PaymentService) ByStatus(ctx context.Context, status model.PaymentStatus) ([]*model.ClientPayment, error) {
    return s.payments.ListByStatus(ctx, status)
}

// ByPeriod returns all payments for one calendar month.
func (s *PaymentService) ByPeriod(ctx context.Context, year, month int) ([]*model.ClientPayment, error) {
    return s.payments.ListByPeriod(ctx, year, month)
}

// Create inserts a new payment record.
func (s *PaymentService) Create(ctx context.Context, p *model.ClientPayment) error {
    return s.payments.Create(ctx, p)
}

// Update rewrites the period, amount and status of a payment.
func (s *PaymentService) Update(ctx context.Context, p *model.ClientPayment) (*model.ClientPayment, error) {
    if err := s.payments.Update(ctx, p); err != nil {
        return nil, err
    }
    return s.payments.GetByID(ctx, p.PaymentID)
}

// Delete removes one payment record.
func (s *PaymentService) Delete(ctx context.Context, id uint64) error {
    return s.payments.Delete(ctx, id)
}
