package router

import (
    "github.com/labstack/echo/v4"

    "github.com/sepehrad/venue-reservation/internal/handler"
    "github.com/sepehrad/venue-reservation/internal/middleware"
)

// RegisterAdmin registers ADMIN-scoped oversight endpoints under
// /v1/admin. All routes require a valid JWT and the ADMIN role.
func RegisterAdmin(e *echo.Echo, a *handler.AdminHandler, jwtSecret string) {
    g := e.Group(
        "/v1/admin",
        middleware.JWTAuth(jwtSecret),
        middleware.RequireRole("ADMIN"),
    )
    g.GET("/users", a.ListUsers)
    g.GET("/venues", a.ListVenues)
    g.GET("/reservations", a.ListReservations)
}
