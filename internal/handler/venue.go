package handler

import (
    "database/sql"
    "net/http"
    "strings"

    "github.com/labstack/echo/v4"

    "github.com/sepehrad/venue-reservation/internal/model"
    "github.com/sepehrad/venue-reservation/internal/repository"
    "github.com/sepehrad/venue-reservation/internal/reservation"
)

// VenueHandler serves the public venue catalog and the vendor's venue
// and table management endpoints.
type VenueHandler struct {
    Venues *repository.VenueRepo
    Tables *repository.TableRepo
}

// NewVenueHandler constructs a VenueHandler and panics if any
// dependency is nil.
func NewVenueHandler(venues *repository.VenueRepo, tables *repository.TableRepo) *VenueHandler {
    if venues == nil || tables == nil {
        panic("nil repository passed to NewVenueHandler")
    }
    return &VenueHandler{Venues: venues, Tables: tables}
}

// ListPublic handles GET /v1/venues: active venues only.
func (h *VenueHandler) ListPublic(c echo.Context) error {
    limit, offset := pageParams(c)
    venues, err := h.Venues.ListActive(c.Request().Context(), limit, offset)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.JSON(http.StatusOK, echo.Map{"venues": venues})
}

// GetPublic handles GET /v1/venues/:id with the venue's active tables.
func (h *VenueHandler) GetPublic(c echo.Context) error {
    id, ok := paramID(c, "id")
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid venue id"})
    }
    ctx := c.Request().Context()
    venue, err := h.Venues.GetActiveByID(ctx, id)
    if err != nil {
        if err == repository.ErrVenueNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "venue not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    tables, err := h.Tables.ListByVenue(ctx, venue.ID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.JSON(http.StatusOK, echo.Map{"venue": venue, "tables": tables})
}

type createVenueReq struct {
    Name    string  `json:"name"`
    Type    string  `json:"type"` // restaurant | cafe
    Address *string `json:"address"`
}

// CreateVenue handles POST /v1/vendor/venues.
func (h *VenueHandler) CreateVenue(c echo.Context) error {
    vendorID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    var req createVenueReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    req.Name = strings.TrimSpace(req.Name)
    if req.Name == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
    }
    venueType := strings.ToLower(strings.TrimSpace(req.Type))
    if venueType != model.VenueTypeRestaurant && venueType != model.VenueTypeCafe {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "type must be restaurant or cafe"})
    }
    id, err := h.Venues.Create(c.Request().Context(), vendorID, req.Name, venueType, req.Address)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create venue failed"})
    }
    return c.JSON(http.StatusCreated, echo.Map{"id": id, "name": req.Name, "type": venueType})
}

// ListMine handles GET /v1/vendor/venues: all of the vendor's venues
// including inactive ones.
func (h *VenueHandler) ListMine(c echo.Context) error {
    vendorID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    limit, offset := pageParams(c)
    venues, err := h.Venues.ListByVendor(c.Request().Context(), vendorID, limit, offset)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.JSON(http.StatusOK, echo.Map{"venues": venues})
}

type createTableReq struct {
    Name     string `json:"name"`
    Capacity uint32 `json:"capacity"`
}

// CreateTable handles POST /v1/vendor/venues/:id/tables. The venue
// must belong to the authenticated vendor.
func (h *VenueHandler) CreateTable(c echo.Context) error {
    vendorID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    venueID, ok := paramID(c, "id")
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid venue id"})
    }
    var req createTableReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    req.Name = strings.TrimSpace(req.Name)
    if req.Name == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
    }
    if req.Capacity < 1 || req.Capacity > reservation.MaxPartySize {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "capacity out of range"})
    }
    ctx := c.Request().Context()
    if _, err := h.Venues.GetByIDForVendor(ctx, venueID, vendorID); err != nil {
        switch err {
        case repository.ErrVenueNotFound:
            return c.JSON(http.StatusNotFound, echo.Map{"error": "venue not found"})
        case repository.ErrForbidden:
            return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
        default:
            return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
        }
    }
    id, err := h.Tables.Create(ctx, venueID, req.Name, req.Capacity)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create table failed"})
    }
    return c.JSON(http.StatusCreated, echo.Map{"id": id, "name": req.Name, "capacity": req.Capacity})
}

// DeactivateTable handles PATCH /v1/vendor/tables/:id/deactivate.
// Tables are soft-deleted so historical reservations keep their
// assignment.
func (h *VenueHandler) DeactivateTable(c echo.Context) error {
    vendorID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    tableID, ok := paramID(c, "id")
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid table id"})
    }
    if err := h.Tables.Deactivate(c.Request().Context(), tableID, vendorID); err != nil {
        switch err {
        case repository.ErrForbidden:
            return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
        case sql.ErrNoRows:
            return c.JSON(http.StatusNotFound, echo.Map{"error": "table not found"})
        default:
            return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
        }
    }
    return c.NoContent(http.StatusNoContent)
}
