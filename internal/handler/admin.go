package handler

import (
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/sepehrad/venue-reservation/internal/repository"
)

// AdminHandler serves the read-only oversight endpoints. All routes
// require the ADMIN role.
type AdminHandler struct {
    Users        *repository.UserRepo
    Venues       *repository.VenueRepo
    Reservations *repository.ReservationRepo
}

// NewAdminHandler constructs an AdminHandler and panics if any
// dependency is nil.
func NewAdminHandler(users *repository.UserRepo, venues *repository.VenueRepo, reservations *repository.ReservationRepo) *AdminHandler {
    if users == nil || venues == nil || reservations == nil {
        panic("nil repository passed to NewAdminHandler")
    }
    return &AdminHandler{Users: users, Venues: venues, Reservations: reservations}
}

// ListUsers handles GET /v1/admin/users with each user's strike count
// and current block state.
func (h *AdminHandler) ListUsers(c echo.Context) error {
    limit, offset := pageParams(c)
    users, err := h.Users.ListWithBlockState(c.Request().Context(), limit, offset)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.JSON(http.StatusOK, echo.Map{"users": users})
}

// ListVenues handles GET /v1/admin/venues including inactive venues.
func (h *AdminHandler) ListVenues(c echo.Context) error {
    limit, offset := pageParams(c)
    venues, err := h.Venues.ListAll(c.Request().Context(), limit, offset)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.JSON(http.StatusOK, echo.Map{"venues": venues})
}

// ListReservations handles GET /v1/admin/reservations across all
// venues and customers.
func (h *AdminHandler) ListReservations(c echo.Context) error {
    limit, offset := pageParams(c)
    items, err := h.Reservations.ListAll(c.Request().Context(), limit, offset)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.JSON(http.StatusOK, echo.Map{"reservations": items})
}
