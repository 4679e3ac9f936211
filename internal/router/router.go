package router // package router defines how HTTP routes are registered for the API

import (
    "github.com/labstack/echo/v4"

    "github.com/sepehrad/venue-reservation/internal/handler"
    "github.com/sepehrad/venue-reservation/internal/middleware"
)

// RegisterRoutes registers routes that do not require authentication on
// the provided Echo instance. Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
    // Used by load balancers and monitoring systems to verify that the
    // service is up and running.
    e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the authentication routes. Unauthenticated
// operations live under /v1/auth; the protected /v1/me endpoint
// accepts any known role.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
    g := e.Group("/v1/auth")
    g.POST("/register", a.Register)
    g.POST("/login", a.Login)

    auth := e.Group("/v1")
    auth.Use(middleware.JWTAuth(jwtSecret))
    auth.Use(middleware.RequireRole("CUSTOMER", "VENDOR", "ADMIN"))
    auth.GET("/me", a.Me)
}

// RegisterPublic registers the unauthenticated venue catalog. Guests
// can browse venues and their tables before registering.
func RegisterPublic(e *echo.Echo, v *handler.VenueHandler) {
    e.GET("/v1/venues", v.ListPublic)
    e.GET("/v1/venues/:id", v.GetPublic)
}
