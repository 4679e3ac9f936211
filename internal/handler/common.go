package handler // handler defines http handlers

import (
    "errors"
    "net/http"
    "strconv"

    "github.com/labstack/echo/v4"

    "github.com/sepehrad/venue-reservation/internal/reservation"
)

// getUserID extracts the user_id from echo.Context and converts it to uint64
func getUserID(c echo.Context) (uint64, error) {
    v := c.Get("user_id")
    switch t := v.(type) {
    case uint64:
        return t, nil
    case int:
        return uint64(t), nil
    case int64:
        return uint64(t), nil
    case float64: // JWT numeric claims decode as float64
        return uint64(t), nil
    case string:
        if n, err := strconv.ParseUint(t, 10, 64); err == nil {
            return n, nil
        }
    }
    return 0, errors.New("invalid user_id in context")
}

// paramID parses a numeric path parameter.
func paramID(c echo.Context, name string) (uint64, bool) {
    n, err := strconv.ParseUint(c.Param(name), 10, 64)
    if err != nil || n == 0 {
        return 0, false
    }
    return n, true
}

// pageParams reads limit/offset query parameters with sane bounds.
func pageParams(c echo.Context) (limit, offset int) {
    limit = 50
    if v, err := strconv.Atoi(c.QueryParam("limit")); err == nil && v > 0 && v <= 200 {
        limit = v
    }
    if v, err := strconv.Atoi(c.QueryParam("offset")); err == nil && v >= 0 {
        offset = v
    }
    return limit, offset
}

// bookingError maps the booking service's sentinel errors onto HTTP
// responses. Unknown errors become 500s with a generic message.
func bookingError(c echo.Context, err error) error {
    switch {
    case errors.Is(err, reservation.ErrValidation):
        return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
    case errors.Is(err, reservation.ErrBlocked):
        return c.JSON(http.StatusForbidden, echo.Map{"error": "account is blocked from booking"})
    case errors.Is(err, reservation.ErrNotFound):
        return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
    case errors.Is(err, reservation.ErrNoTableAvailable):
        return c.JSON(http.StatusConflict, echo.Map{"error": "no table available for the requested time"})
    case errors.Is(err, reservation.ErrCannotCancel):
        return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": "reservation can no longer be cancelled"})
    case errors.Is(err, reservation.ErrInvalidTransition):
        return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": "invalid status transition"})
    default:
        c.Logger().Errorf("handler: %v", err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
    }
}
