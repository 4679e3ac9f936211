package router

import (
    "github.com/labstack/echo/v4"

    "github.com/sepehrad/venue-reservation/internal/handler"
    "github.com/sepehrad/venue-reservation/internal/middleware"
)

// RegisterVendor registers VENDOR-scoped endpoints under /v1/vendor.
// All routes require a valid JWT and the VENDOR role.
func RegisterVendor(e *echo.Echo, v *handler.VenueHandler, r *handler.VendorHandler, jwtSecret string) {
    g := e.Group(
        "/v1/vendor",
        middleware.JWTAuth(jwtSecret),
        middleware.RequireRole("VENDOR"),
    )

    // ---- Venues and tables ----
    g.POST("/venues", v.CreateVenue)
    g.GET("/venues", v.ListMine)
    g.POST("/venues/:id/tables", v.CreateTable)
    g.PATCH("/tables/:id/deactivate", v.DeactivateTable)

    // ---- Reservation workflow ----
    g.GET("/reservations", r.List)
    g.PATCH("/reservations/:id/approve", r.Approve)
    g.PATCH("/reservations/:id/reject", r.Reject)
    g.PATCH("/reservations/:id/cancel", r.Cancel)
    g.PATCH("/reservations/:id/no-show", r.NoShow)
    g.PATCH("/reservations/:id/complete", r.Complete)
}
