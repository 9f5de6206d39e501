package handler

import (
    "context"
    "math"
    "net/http"
    "strconv"
    "strings"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/stebi123/dobroz/internal/model"
    "github.com/stebi123/dobroz/internal/repository"
    "github.com/stebi123/dobroz/internal/service"
)

// AdminClientHandler exposes the back-office client endpoints. Reads that
// touch a single table go straight to the repository; anything that spans
// the profile, the weekly rules and the slot horizon goes through the
// service so it happens in one transaction.
type AdminClientHandler struct {
    Clients *service.ClientService
    Repo    *repository.ClientRepo
}

// NewAdminClientHandler constructs the handler and panics on nil
// dependencies.
func NewAdminClientHandler(svc *service.ClientService, repo *repository.ClientRepo) *AdminClientHandler {
    if svc == nil || repo == nil {
        panic("nil dependency passed to NewAdminClientHandler")
    }
    return &AdminClientHandler{Clients: svc, Repo: repo}
}

// clientPayload is the create/update body: the full profile plus the
// weekly availability map keyed by upper-case day name. Days omitted from
// the map are stored as unavailable.
type clientPayload struct {
    Name              string                     `json:"name"`
    Description       string                     `json:"description"`
    Address           string                     `json:"address"`
    City              string                     `json:"city"`
    State             string                     `json:"state"`
    Zipcode           string                     `json:"zipcode"`
    Latitude          *float64                   `json:"latitude"`
    Longitude         *float64                   `json:"longitude"`
    PricePerSlotCents int64                      `json:"price_per_slot_cents"`
    ImageURLs         []string                   `json:"image_urls"`
    ContactNumber     string                     `json:"contact_number"`
    Email             string                     `json:"email"`
    Website           string                     `json:"website"`
    AccountNumber     string                     `json:"account_number"`
    AccountType       string                     `json:"account_type"`
    Branch            string                     `json:"branch"`
    IFSCCode          string                     `json:"ifsc_code"`
    UPIID             string                     `json:"upi_id"`
    Availability      map[string]service.DayRule `json:"availability"`
}

func (p *clientPayload) details() *model.ClientDetails {
    return &model.ClientDetails{
        Name:              strings.TrimSpace(p.Name),
        Description:       p.Description,
        Address:           p.Address,
        City:              p.City,
        State:             p.State,
        Zipcode:           p.Zipcode,
        Latitude:          p.Latitude,
        Longitude:         p.Longitude,
        PricePerSlotCents: p.PricePerSlotCents,
        ImageURLs:         p.ImageURLs,
        ContactNumber:     p.ContactNumber,
        Email:             strings.ToLower(strings.TrimSpace(p.Email)),
        Website:           p.Website,
        AccountNumber:     p.AccountNumber,
        AccountType:       p.AccountType,
        Branch:            p.Branch,
        IFSCCode:          p.IFSCCode,
        UPIID:             p.UPIID,
    }
}

// rules parses the availability map keys into days of week. Unknown day
// names are a client error.
func (p *clientPayload) rules() (map[model.DayOfWeek]service.DayRule, error) {
    out := make(map[model.DayOfWeek]service.DayRule, len(p.Availability))
    for k, v := range p.Availability {
        day, err := model.ParseDayOfWeek(k)
        if err != nil {
            return nil, err
        }
        out[day] = v
    }
    return out, nil
}

// pageResp is the envelope for paginated listings.
type pageResp struct {
    Content       any   `json:"content"`
    Page          int   `json:"page"`
    Size          int   `json:"size"`
    TotalElements int64 `json:"total_elements"`
    TotalPages    int   `json:"total_pages"`
}

func newPageResp(content any, page, size int, total int64) pageResp {
    pages := 0
    if size > 0 {
        pages = int(math.Ceil(float64(total) / float64(size)))
    }
    return pageResp{Content: content, Page: page, Size: size, TotalElements: total, TotalPages: pages}
}

// pageParams reads page/size/sortBy/direction query params with the same
// defaults the original admin UI relies on.
func pageParams(c echo.Context) (page, size int, sortBy, direction string) {
    page, size = 0, 10
    if v, err := strconv.Atoi(c.QueryParam("page")); err == nil && v >= 0 {
        page = v
    }
    if v, err := strconv.Atoi(c.QueryParam("size")); err == nil && v > 0 && v <= 100 {
        size = v
    }
    sortBy = c.QueryParam("sortBy")
    direction = c.QueryParam("direction")
    return page, size, sortBy, direction
}

func reqCtx(c echo.Context) (context.Context, context.CancelFunc) {
    return context.WithTimeout(c.Request().Context(), 10*time.Second)
}

func pathID(c echo.Context, name string) (uint64, bool) {
    id, err := strconv.ParseUint(c.Param(name), 10, 64)
    return id, err == nil && id > 0
}

// List returns a page of full client profiles.
func (h *AdminClientHandler) List(c echo.Context) error {
    page, size, sortBy, direction := pageParams(c)

    ctx, cancel := reqCtx(c)
    defer cancel()

    clients, total, err := h.Repo.List(ctx, page, size, sortBy, direction)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list clients failed"})
    }
    return c.JSON(http.StatusOK, newPageResp(clients, page, size, total))
}

// ListCustomers returns a page of reduced client views for listing
// screens that do not need banking details.
func (h *AdminClientHandler) ListCustomers(c echo.Context) error {
    page, size, sortBy, direction := pageParams(c)

    ctx, cancel := reqCtx(c)
    defer cancel()

    clients, total, err := h.Repo.List(ctx, page, size, sortBy, direction)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list clients failed"})
    }
    views := make([]model.CustomerView, 0, len(clients))
    for _, cl := range clients {
        views = append(views, cl.Customer())
    }
    return c.JSON(http.StatusOK, newPageResp(views, page, size, total))
}

// ListByStatus returns every client in the given status.
func (h *AdminClientHandler) ListByStatus(c echo.Context) error {
    status, err := model.ParseClientStatus(c.Param("status"))
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
    }

    ctx, cancel := reqCtx(c)
    defer cancel()

    clients, err := h.Repo.ListByStatus(ctx, status)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list clients failed"})
    }
    return c.JSON(http.StatusOK, clients)
}

// Get returns one full client profile.
func (h *AdminClientHandler) Get(c echo.Context) error {
    id, ok := pathID(c, "id")
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid client id"})
    }

    ctx, cancel := reqCtx(c)
    defer cancel()

    cl, err := h.Repo.GetByID(ctx, id)
    if err != nil {
        if err == repository.ErrClientNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "client not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load client failed"})
    }
    return c.JSON(http.StatusOK, cl)
}

// Create registers a new client together with its weekly availability and
// materializes its booking horizon.
func (h *AdminClientHandler) Create(c echo.Context) error {
    var req clientPayload
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    if strings.TrimSpace(req.Name) == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "name required"})
    }
    rules, err := req.rules()
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
    }

    ctx, cancel := reqCtx(c)
    defer cancel()

    details := req.details()
    if err := h.Clients.CreateClient(ctx, details, rules); err != nil {
        if err == repository.ErrDuplicateVector {
            return c.JSON(http.StatusConflict, echo.Map{"error": "client already has booking slots"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create client failed"})
    }
    return c.JSON(http.StatusCreated, details)
}

// Search finds clients by partial name match.
func (h *AdminClientHandler) Search(c echo.Context) error {
    name := strings.TrimSpace(c.QueryParam("name"))
    if name == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "name query required"})
    }

    ctx, cancel := reqCtx(c)
    defer cancel()

    clients, err := h.Repo.SearchByName(ctx, name)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "search failed"})
    }
    return c.JSON(http.StatusOK, clients)
}

// SearchCustomers is Search with the reduced projection.
func (h *AdminClientHandler) SearchCustomers(c echo.Context) error {
    name := strings.TrimSpace(c.QueryParam("name"))
    if name == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "name query required"})
    }

    ctx, cancel := reqCtx(c)
    defer cancel()

    clients, err := h.Repo.SearchByName(ctx, name)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "search failed"})
    }
    views := make([]model.CustomerView, 0, len(clients))
    for _, cl := range clients {
        views = append(views, cl.Customer())
    }
    return c.JSON(http.StatusOK, views)
}

// Update rewrites the client profile and weekly availability, then
// reconciles every future slot vector against the new rules. Booked cells
// survive the reconciliation untouched.
func (h *AdminClientHandler) Update(c echo.Context) error {
    id, ok := pathID(c, "id")
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid client id"})
    }
    var req clientPayload
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    if strings.TrimSpace(req.Name) == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "name required"})
    }
    rules, err := req.rules()
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
    }

    ctx, cancel := reqCtx(c)
    defer cancel()

    updated, err := h.Clients.UpdateClient(ctx, id, req.details(), rules)
    if err != nil {
        if err == repository.ErrClientNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "client not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update client failed"})
    }
    return c.JSON(http.StatusOK, updated)
}

// UpdateStatus changes the administrative status only.
func (h *AdminClientHandler) UpdateStatus(c echo.Context) error {
    id, ok := pathID(c, "id")
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid client id"})
    }
    var req struct {
        Status string `json:"status"`
    }
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    status, err := model.ParseClientStatus(req.Status)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
    }

    ctx, cancel := reqCtx(c)
    defer cancel()

    updated, err := h.Clients.UpdateStatus(ctx, id, status)
    if err != nil {
        if err == repository.ErrClientNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "client not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update status failed"})
    }
    return c.JSON(http.StatusOK, updated)
}

// Delete removes the client and all dependent rows (availability, slot
// vectors, payments) in one transaction.
func (h *AdminClientHandler) Delete(c echo.Context) error {
    id, ok := pathID(c, "id")
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid client id"})
    }

    ctx, cancel := reqCtx(c)
    defer cancel()

    if err := h.Clients.DeleteClient(ctx, id); err != nil {
        if err == repository.ErrClientNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "client not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete client failed"})
    }
    return c.NoContent(http.StatusNoContent)
}

// Availability returns the client's weekly availability keyed by day name.
func (h *AdminClientHandler) Availability(c echo.Context) error {
    id, ok := pathID(c, "id")
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid client id"})
    }

    ctx, cancel := reqCtx(c)
    defer cancel()

    rules, err := h.Clients.WeeklyAvailability(ctx, id)
    if err != nil {
        if err == repository.ErrClientNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "client not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load availability failed"})
    }
    return c.JSON(http.StatusOK, rules)
}

// Bookings returns the 24-hour slot map for one client and date. The date
// query parameter uses YYYY-MM-DD.
func (h *AdminClientHandler) Bookings(c echo.Context) error {
    id, ok := pathID(c, "id")
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid client id"})
    }
    date, err := time.Parse("2006-01-02", c.QueryParam("date"))
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "date must be YYYY-MM-DD"})
    }

    ctx, cancel := reqCtx(c)
    defer cancel()

    slots, err := h.Clients.DayVector(ctx, id, date)
    if err != nil {
        if err == repository.ErrVectorNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "no booking slots for date"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load bookings failed"})
    }
    return c.JSON(http.StatusOK, slots)
}
