// Package handler exposes HTTP handlers for the auth, admin and public
// endpoints. This file defines the public browsing API: unauthenticated
// users can list active venues and check open hours for a date. Banking
// details and internal status fields are filtered from responses.
package handler

import (
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/stebi123/dobroz/internal/model"
    "github.com/stebi123/dobroz/internal/repository"
    "github.com/stebi123/dobroz/internal/service"
)

// PublicHandler aggregates the dependencies needed for unauthenticated
// browsing. Responses are sanitized for public consumption.
type PublicHandler struct {
    Repo    *repository.ClientRepo
    Clients *service.ClientService
}

// PublicVenue is a venue exposed via the public API. It contains only
// safe fields.
type PublicVenue struct {
    ID                uint64   `json:"id"`
    Name              string   `json:"name"`
    Description       string   `json:"description,omitempty"`
    Address           string   `json:"address,omitempty"`
    City              string   `json:"city,omitempty"`
    Latitude          *float64 `json:"latitude,omitempty"`
    Longitude         *float64 `json:"longitude,omitempty"`
    PricePerSlotCents int64    `json:"price_per_slot_cents"`
    ImageURLs         []string `json:"image_urls,omitempty"`
}

func publicVenue(c *model.ClientDetails) PublicVenue {
    return PublicVenue{
        ID:                c.ID,
        Name:              c.Name,
        Description:       c.Description,
        Address:           c.Address,
        City:              c.City,
        Latitude:          c.Latitude,
        Longitude:         c.Longitude,
        PricePerSlotCents: c.PricePerSlotCents,
        ImageURLs:         c.ImageURLs,
    }
}

// ListVenues returns every ACTIVE venue. Response JSON contains an
// "items" array of PublicVenue.
func (h *PublicHandler) ListVenues(c echo.Context) error {
    ctx, cancel := reqCtx(c)
    defer cancel()

    clients, err := h.Repo.ListByStatus(ctx, model.StatusActive)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    out := make([]PublicVenue, 0, len(clients))
    for _, cl := range clients {
        out = append(out, publicVenue(cl))
    }
    return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// GetVenue returns one ACTIVE venue.
func (h *PublicHandler) GetVenue(c echo.Context) error {
    id, ok := pathID(c, "id")
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid venue id"})
    }

    ctx, cancel := reqCtx(c)
    defer cancel()

    cl, err := h.Repo.GetByID(ctx, id)
    if err != nil {
        if err == repository.ErrClientNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "venue not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    if cl.Status != model.StatusActive {
        // Inactive venues are invisible to the public API.
        return c.JSON(http.StatusNotFound, echo.Map{"error": "venue not found"})
    }
    return c.JSON(http.StatusOK, publicVenue(cl))
}

// VenueSlots returns the hour-by-hour slot map of an ACTIVE venue for one
// date, so the public site can show which hours are still bookable.
func (h *PublicHandler) VenueSlots(c echo.Context) error {
    id, ok := pathID(c, "id")
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid venue id"})
    }
    date, err := time.Parse("2006-01-02", c.QueryParam("date"))
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "date must be YYYY-MM-DD"})
    }

    ctx, cancel := reqCtx(c)
    defer cancel()

    cl, err := h.Repo.GetByID(ctx, id)
    if err != nil {
        if err == repository.ErrClientNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "venue not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    if cl.Status != model.StatusActive {
        return c.JSON(http.StatusNotFound, echo.Map{"error": "venue not found"})
    }

    slots, err := h.Clients.DayVector(ctx, id, date)
    if err != nil {
        if err == repository.ErrVectorNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "no slots for date"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.JSON(http.StatusOK, echo.Map{"date": date.Format("2006-01-02"), "slots": slots})
}
