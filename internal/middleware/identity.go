package middleware

import (
    "fmt"

    "github.com/labstack/echo/v4"
)

// userID extracts the authenticated user identifier stored by JWTAuth. It
// returns "guest" for unauthenticated requests; the value feeds cache and
// rate-limit key strategies so anonymous traffic shares one bucket.
func userID(c echo.Context) string {
    v := c.Get("user_id")
    if v == nil {
        return "guest"
    }
    switch id := v.(type) {
    case string:
        if id != "" {
            return id
        }
    case float64:
        return fmt.Sprintf("%.0f", id)
    case uint64:
        return fmt.Sprintf("%d", id)
    }
    return "guest"
}
