package handler

import (
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/sepehrad/venue-reservation/internal/repository"
    "github.com/sepehrad/venue-reservation/internal/reservation"
)

// CustomerHandler serves the customer-facing reservation endpoints.
// All methods assume JWT authentication and role validation have
// already run; they return 401 only when the user ID cannot be
// extracted from the context.
type CustomerHandler struct {
    Booking      *reservation.BookingService
    Reservations *repository.ReservationRepo
}

// NewCustomerHandler constructs a CustomerHandler. Both dependencies
// must be non-nil.
func NewCustomerHandler(booking *reservation.BookingService, reservations *repository.ReservationRepo) *CustomerHandler {
    if booking == nil || reservations == nil {
        panic("nil dependency passed to NewCustomerHandler")
    }
    return &CustomerHandler{Booking: booking, Reservations: reservations}
}

type createReservationReq struct {
    VenueID         uint64 `json:"venue_id"`
    ReservationDate string `json:"reservation_date"` // YYYY-MM-DD
    ReservationTime string `json:"reservation_time"` // HH:MM
    PartySize       uint32 `json:"party_size"`
}

// Create handles POST /v1/reservations. On success it returns 201 with
// the reservation, its fee snapshot and the assigned table.
func (h *CustomerHandler) Create(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    var req createReservationReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    if req.VenueID == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "venue_id is required"})
    }

    result, err := h.Booking.Create(c.Request().Context(), userID, reservation.CreateInput{
        VenueID:   req.VenueID,
        Date:      req.ReservationDate,
        Time:      req.ReservationTime,
        PartySize: req.PartySize,
    })
    if err != nil {
        return bookingError(c, err)
    }

    res := result.Reservation
    return c.JSON(http.StatusCreated, echo.Map{
        "reservation": echo.Map{
            "id":               res.ID,
            "code":             res.Code,
            "venue_id":         res.VenueID,
            "reservation_date": res.ReservationDate,
            "reservation_time": res.ReservationTime,
            "party_size":       res.PartySize,
            "status":           res.Status,
        },
        "table": echo.Map{
            "id":       result.Table.ID,
            "name":     result.Table.Name,
            "capacity": result.Table.Capacity,
        },
        "fee": echo.Map{
            "price_per_person_cents": result.Fee.PricePerPersonCents,
            "total_amount_cents":     result.Fee.TotalAmountCents,
            "currency":               result.Fee.Currency,
        },
        "reminder_at": result.ReminderAt,
    })
}

// List handles GET /v1/reservations and returns the customer's own
// reservations, newest first.
func (h *CustomerHandler) List(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    limit, offset := pageParams(c)
    items, err := h.Reservations.ListByCustomer(c.Request().Context(), userID, limit, offset)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.JSON(http.StatusOK, echo.Map{"reservations": items})
}

// Cancel handles PATCH /v1/reservations/:id/cancel. Cancellation is
// refused inside the final hour before the reservation starts.
func (h *CustomerHandler) Cancel(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    id, ok := paramID(c, "id")
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
    }
    res, err := h.Booking.CancelByCustomer(c.Request().Context(), userID, id)
    if err != nil {
        return bookingError(c, err)
    }
    return c.JSON(http.StatusOK, echo.Map{"id": res.ID, "status": res.Status})
}

// History handles GET /v1/reservations/:id/history and returns the
// status audit trail for one of the customer's reservations.
func (h *CustomerHandler) History(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    id, ok := paramID(c, "id")
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
    }
    ctx := c.Request().Context()

    // Ownership check before exposing the audit trail.
    tx, err := h.Reservations.DB().BeginTx(ctx, nil)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to start transaction"})
    }
    _, err = h.Reservations.GetForCustomerTx(ctx, tx, id, userID, false)
    _ = tx.Rollback()
    if err != nil {
        return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
    }

    history, err := h.Reservations.HistoryByReservation(ctx, id)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.JSON(http.StatusOK, echo.Map{"history": history})
}
