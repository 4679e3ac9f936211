package handler

import (
    "context"
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/sepehrad/venue-reservation/internal/model"
    "github.com/sepehrad/venue-reservation/internal/repository"
    "github.com/sepehrad/venue-reservation/internal/reservation"
)

// VendorHandler serves the vendor's reservation workflow: listing
// incoming requests and driving them through the state machine.
type VendorHandler struct {
    Booking      *reservation.BookingService
    Reservations *repository.ReservationRepo
}

// NewVendorHandler constructs a VendorHandler. Both dependencies must
// be non-nil.
func NewVendorHandler(booking *reservation.BookingService, reservations *repository.ReservationRepo) *VendorHandler {
    if booking == nil || reservations == nil {
        panic("nil dependency passed to NewVendorHandler")
    }
    return &VendorHandler{Booking: booking, Reservations: reservations}
}

// List handles GET /v1/vendor/reservations across all of the vendor's
// venues, newest first.
func (h *VendorHandler) List(c echo.Context) error {
    vendorID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    limit, offset := pageParams(c)
    items, err := h.Reservations.ListByVendor(c.Request().Context(), vendorID, limit, offset)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.JSON(http.StatusOK, echo.Map{"reservations": items})
}

// Approve handles PATCH /v1/vendor/reservations/:id/approve.
func (h *VendorHandler) Approve(c echo.Context) error {
    vendorID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    id, ok := paramID(c, "id")
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
    }
    res, table, err := h.Booking.Approve(c.Request().Context(), vendorID, id)
    if err != nil {
        return bookingError(c, err)
    }
    return c.JSON(http.StatusOK, echo.Map{
        "id":     res.ID,
        "status": res.Status,
        "table": echo.Map{
            "id":       table.ID,
            "name":     table.Name,
            "capacity": table.Capacity,
        },
    })
}

type rejectReq struct {
    Reason string `json:"reason"`
}

// Reject handles PATCH /v1/vendor/reservations/:id/reject. A reason is
// required and is relayed to the customer.
func (h *VendorHandler) Reject(c echo.Context) error {
    vendorID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    id, ok := paramID(c, "id")
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
    }
    var req rejectReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    res, err := h.Booking.Reject(c.Request().Context(), vendorID, id, req.Reason)
    if err != nil {
        return bookingError(c, err)
    }
    return c.JSON(http.StatusOK, echo.Map{"id": res.ID, "status": res.Status})
}

// Cancel handles PATCH /v1/vendor/reservations/:id/cancel.
func (h *VendorHandler) Cancel(c echo.Context) error {
    return h.transition(c, h.Booking.CancelByVendor)
}

// NoShow handles PATCH /v1/vendor/reservations/:id/no-show. Marking a
// no-show also records a strike against the customer.
func (h *VendorHandler) NoShow(c echo.Context) error {
    return h.transition(c, h.Booking.MarkNoShow)
}

// Complete handles PATCH /v1/vendor/reservations/:id/complete.
func (h *VendorHandler) Complete(c echo.Context) error {
    return h.transition(c, h.Booking.MarkCompleted)
}

// transition runs one of the simple vendor status changes and renders
// the shared success/error shape.
func (h *VendorHandler) transition(c echo.Context, op func(ctx context.Context, vendorID, reservationID uint64) (*model.Reservation, error)) error {
    vendorID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    id, ok := paramID(c, "id")
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
    }
    res, err := op(c.Request().Context(), vendorID, id)
    if err != nil {
        return bookingError(c, err)
    }
    return c.JSON(http.StatusOK, echo.Map{"id": res.ID, "status": res.Status})
}
