package router

import (
    "github.com/labstack/echo/v4"

    "github.com/sepehrad/venue-reservation/internal/handler"
    "github.com/sepehrad/venue-reservation/internal/middleware"
)

// RegisterCustomer registers customer-scoped endpoints under /v1. All
// routes require a valid JWT and the CUSTOMER role. The rate limiter
// guards booking creation; read endpoints stay outside of it.
func RegisterCustomer(e *echo.Echo, h *handler.CustomerHandler, n *handler.NotificationHandler, jwtSecret string, limiter echo.MiddlewareFunc) {
    g := e.Group(
        "/v1",
        middleware.JWTAuth(jwtSecret),
        middleware.RequireRole("CUSTOMER"),
    )
    g.POST("/reservations", h.Create, limiter)
    g.GET("/reservations", h.List)
    g.PATCH("/reservations/:id/cancel", h.Cancel)
    g.GET("/reservations/:id/history", h.History)
    g.GET("/notifications", n.List)
}
