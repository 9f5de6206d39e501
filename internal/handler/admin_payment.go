package handler

import (
    "net/http"
    "strconv"

    "github.com/labstack/echo/v4"

    "github.com/stebi123/dobroz/internal/model"
    "github.com/stebi123/dobroz/internal/repository"
    "github.com/stebi123/dobroz/internal/service"
)

// AdminPaymentHandler exposes the monthly payment ledger endpoints.
type AdminPaymentHandler struct {
    Payments *service.PaymentService
}

func NewAdminPaymentHandler(svc *service.PaymentService) *AdminPaymentHandler {
    if svc == nil {
        panic("nil service passed to NewAdminPaymentHandler")
    }
    return &AdminPaymentHandler{Payments: svc}
}

type paymentPayload struct {
    ClientID    uint64 `json:"client_id"`
    Year        int    `json:"year"`
    Month       int    `json:"month"`
    AmountCents int64  `json:"amount_cents"`
    Status      string `json:"payment_status"`
}

func (p *paymentPayload) validate() (*model.ClientPayment, error) {
    status, err := model.ParsePaymentStatus(p.Status)
    if err != nil {
        return nil, err
    }
    return &model.ClientPayment{
        ClientID:    p.ClientID,
        Year:        p.Year,
        Month:       p.Month,
        AmountCents: p.AmountCents,
        Status:      status,
    }, nil
}

// List returns a page of payments across all clients.
func (h *AdminPaymentHandler) List(c echo.Context) error {
    page, size, _, _ := pageParams(c)

    ctx, cancel := reqCtx(c)
    defer cancel()

    payments, total, err := h.Payments.List(ctx, page, size)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list payments failed"})
    }
    return c.JSON(http.StatusOK, newPageResp(payments, page, size, total))
}

// Get returns one payment record.
func (h *AdminPaymentHandler) Get(c echo.Context) error {
    id, ok := pathID(c, "paymentId")
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid payment id"})
    }

    ctx, cancel := reqCtx(c)
    defer cancel()

    p, err := h.Payments.Get(ctx, id)
    if err != nil {
        if err == repository.ErrPaymentNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "payment not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load payment failed"})
    }
    return c.JSON(http.StatusOK, p)
}

// ByClient returns every payment for one client, newest period first.
func (h *AdminPaymentHandler) ByClient(c echo.Context) error {
    id, ok := pathID(c, "clientId")
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid client id"})
    }

    ctx, cancel := reqCtx(c)
    defer cancel()

    payments, err := h.Payments.ByClient(ctx, id)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list payments failed"})
    }
    return c.JSON(http.StatusOK, payments)
}

// ByStatus returns every payment in the given status.
func (h *AdminPaymentHandler) ByStatus(c echo.Context) error {
    status, err := model.ParsePaymentStatus(c.Param("status"))
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
    }

    ctx, cancel := reqCtx(c)
    defer cancel()

    payments, err := h.Payments.ByStatus(ctx, status)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list payments failed"})
    }
    return c.JSON(http.StatusOK, payments)
}

// ByPeriod returns every payment for one calendar month across clients.
func (h *AdminPaymentHandler) ByPeriod(c echo.Context) error {
    year, err := strconv.Atoi(c.QueryParam("year"))
    if err != nil || year < 2000 || year > 2200 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid year"})
    }
    month, err := strconv.Atoi(c.QueryParam("month"))
    if err != nil || month < 1 || month > 12 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid month"})
    }

    ctx, cancel := reqCtx(c)
    defer cancel()

    payments, err := h.Payments.ByPeriod(ctx, year, month)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list payments failed"})
    }
    return c.JSON(http.StatusOK, payments)
}

// Create records a payment for a (client, year, month) period.
func (h *AdminPaymentHandler) Create(c echo.Context) error {
    var req paymentPayload
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    if req.ClientID == 0 || req.Month < 1 || req.Month > 12 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "client_id and month 1..12 required"})
    }
    p, err := req.validate()
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
    }

    ctx, cancel := reqCtx(c)
    defer cancel()

    if err := h.Payments.Create(ctx, p); err != nil {
        if err == repository.ErrDuplicatePayment {
            return c.JSON(http.StatusConflict, echo.Map{"error": "payment already recorded for period"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create payment failed"})
    }
    return c.JSON(http.StatusCreated, p)
}

// Update rewrites a payment record.
func (h *AdminPaymentHandler) Update(c echo.Context) error {
    id, ok := pathID(c, "paymentId")
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid payment id"})
    }
    var req paymentPayload
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    p, err := req.validate()
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
    }
    p.PaymentID = id

    ctx, cancel := reqCtx(c)
    defer cancel()

    updated, err := h.Payments.Update(ctx, p)
    if err != nil {
        if err == repository.ErrPaymentNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "payment not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update payment failed"})
    }
    return c.JSON(http.StatusOK, updated)
}

// Delete removes a payment record.
func (h *AdminPaymentHandler) Delete(c echo.Context) error {
    id, ok := pathID(c, "paymentId")
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid payment id"})
    }

    ctx, cancel := reqCtx(c)
    defer cancel()

    if err := h.Payments.Delete(ctx, id); err != nil {
        if err == repository.ErrPaymentNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "payment not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete payment failed"})
    }
    return c.NoContent(http.StatusNoContent)
}
