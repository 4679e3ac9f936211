package handler

import (
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/sepehrad/venue-reservation/internal/repository"
)

// NotificationHandler serves the authenticated user's notification
// feed.
type NotificationHandler struct {
    Notifications *repository.NotificationRepo
}

func NewNotificationHandler(n *repository.NotificationRepo) *NotificationHandler {
    if n == nil {
        panic("nil repository passed to NewNotificationHandler")
    }
    return &NotificationHandler{Notifications: n}
}

// List handles GET /v1/notifications, newest first.
func (h *NotificationHandler) List(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    limit, offset := pageParams(c)
    items, err := h.Notifications.ListByUser(c.Request().Context(), userID, limit, offset)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.JSON(http.StatusOK, echo.Map{"notifications": items})
}
