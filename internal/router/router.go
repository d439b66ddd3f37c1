package router // router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/louis5103/st-booking-system/internal/handler"
	"github.com/louis5103/st-booking-system/internal/middleware"
)

// RegisterRoutes registers routes that need no authentication at all.
// Currently just the health probe.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the authentication endpoints. Register, login
// and refresh are open; logout and /v1/me require a valid access token.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	g.POST("/logout", a.Logout, middleware.JWTAuth(jwtSecret))

	auth := e.Group("/v1", middleware.JWTAuth(jwtSecret), middleware.RequireRole("ADMIN", "CUSTOMER"))
	auth.GET("/me", a.Me)
}

// RegisterVenues wires the venue and layout endpoints. Reads are
// public so storefront clients can render a seat map without a
// session; the layout GET sits behind the response cache. All writes
// are ADMIN-only and rate limited.
func RegisterVenues(e *echo.Echo, v *handler.VenueHandler, l *handler.LayoutHandler, jwtSecret string, cache, limiter echo.MiddlewareFunc) {
	e.GET("/v1/venues", v.ListVenues)
	e.GET("/v1/venues/:id", v.GetVenue)
	e.GET("/v1/venues/:id/layout", l.GetLayout, cache)

	admin := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("ADMIN"),
		limiter,
	)
	admin.POST("/venues", v.CreateVenue)
	admin.PUT("/venues/:id", v.UpdateVenue)
	admin.PATCH("/venues/:id", v.UpdateVenue)
	admin.DELETE("/venues/:id", v.DeleteVenue)

	admin.PUT("/venues/:id/layout", l.SaveLayout)
	admin.POST("/venues/:id/layout/template", l.ApplyTemplate)
}
