// Package router wires HTTP routes to their handlers and middleware.
package router

import (
    "github.com/labstack/echo/v4"

    "github.com/stebi123/dobroz/internal/handler"
    "github.com/stebi123/dobroz/internal/middleware"
    "github.com/stebi123/dobroz/internal/model"
)

// RegisterRoutes registers routes that require no authentication.
// Currently that is only the health check.
func RegisterRoutes(e *echo.Echo) {
    e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the authentication endpoints. Sign-in, sign-up,
// refresh and sign-out live outside the JWT middleware; /api/auth/me is
// protected and accepts both back-office roles.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
    g := e.Group("/api/auth")
    g.POST("/signup", a.SignUp)
    g.POST("/signin", a.SignIn)
    g.POST("/refresh", a.Refresh)
    g.POST("/refresh-access", a.RefreshAccess)
    // Sign-out validates the refresh token or bearer itself, so it stays
    // outside the JWT middleware and works with an expired access token.
    g.POST("/signout", a.SignOut)

    auth := e.Group("/api/auth",
        middleware.JWTAuth(jwtSecret),
        middleware.RequireRole(model.RoleAdmin, model.RoleStaff),
    )
    auth.GET("/me", a.Me)
}

// RegisterAdmin registers the back-office API under /api/admin. Mutations
// require ADMIN; read endpoints also accept STAFF.
func RegisterAdmin(e *echo.Echo, ch *handler.AdminClientHandler, ph *handler.AdminPaymentHandler, jwtSecret string) {
    read := e.Group(
        "/api/admin",
        middleware.JWTAuth(jwtSecret),
        middleware.RequireRole(model.RoleAdmin, model.RoleStaff),
    )
    write := e.Group(
        "/api/admin",
        middleware.JWTAuth(jwtSecret),
        middleware.RequireRole(model.RoleAdmin),
    )

    // ---- Clients ----
    read.GET("/clients", ch.List)
    read.GET("/clients/customers", ch.ListCustomers)
    read.GET("/clients/status/:status", ch.ListByStatus)
    read.GET("/clients/search", ch.Search)
    read.GET("/clients/search/customer", ch.SearchCustomers)
    read.GET("/clients/:id", ch.Get)
    read.GET("/clients/:id/availability", ch.Availability)
    read.GET("/clients/:id/bookings", ch.Bookings)
    write.POST("/clients", ch.Create)
    write.PUT("/clients/:id", ch.Update)
    write.PATCH("/clients/:id/status", ch.UpdateStatus)
    write.DELETE("/clients/:id", ch.Delete)

    // ---- Payments ----
    read.GET("/payments", ph.List)
    read.GET("/payments/period", ph.ByPeriod)
    read.GET("/payments/client/:clientId", ph.ByClient)
    read.GET("/payments/status/:status", ph.ByStatus)
    read.GET("/payments/:paymentId", ph.Get)
    write.POST("/payments", ph.Create)
    write.PUT("/payments/:paymentId", ph.Update)
    write.DELETE("/payments/:paymentId", ph.Delete)
}

// RegisterPublic registers the unauthenticated venue browsing endpoints.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler) {
    e.GET("/v1/venues", p.ListVenues)
    e.GET("/v1/venues/:id", p.GetVenue)
    e.GET("/v1/venues/:id/slots", p.VenueSlots)
}
