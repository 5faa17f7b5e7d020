// Package router registers the HTTP routes of the booking API.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-booking/internal/handler"
	"github.com/iliyamo/hotel-booking/internal/middleware"
)

// Handlers groups the endpoint handlers mounted under /api.
type Handlers struct {
	Auth     *handler.AuthHandler
	Bookings *handler.BookingHandler
	Hotels   *handler.HotelHandler
	Reviews  *handler.ReviewHandler
}

// Options carries the optional route middleware. A nil HotelCache or an
// empty AdminSecret leaves the corresponding route unwrapped.
type Options struct {
	HotelCache  echo.MiddlewareFunc
	AdminSecret string
}

// RegisterRoutes mounts the health check and every /api route on e.
func RegisterRoutes(e *echo.Echo, h Handlers, opts Options) {
	e.GET("/healthz", handler.Health)

	api := e.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/signup", h.Auth.Signup)
	auth.POST("/login", h.Auth.Login)

	bookings := api.Group("/bookings")
	bookings.POST("", h.Bookings.Create)
	// static segments win over :id in echo's router, so /all and /user/
	// do not collide with /:id
	var adminOnly []echo.MiddlewareFunc
	if opts.AdminSecret != "" {
		adminOnly = append(adminOnly, middleware.JWTAuth(opts.AdminSecret), middleware.RequireRole(middleware.RoleAdmin))
	}
	bookings.GET("/all", h.Bookings.ListAll, adminOnly...)
	bookings.GET("/user/:email", h.Bookings.ListByUser)
	bookings.GET("/:id", h.Bookings.Get)
	bookings.PUT("/:id/cancel", h.Bookings.Cancel)

	var hotelMW []echo.MiddlewareFunc
	if opts.HotelCache != nil {
		hotelMW = append(hotelMW, opts.HotelCache)
	}
	hotels := api.Group("/hotels")
	hotels.GET("", h.Hotels.List, hotelMW...)
	hotels.GET("/:hotelId/reviews", h.Reviews.List)
	hotels.POST("/:hotelId/reviews", h.Reviews.Create)
}
