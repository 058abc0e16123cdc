// Package router defines how HTTP routes are registered for the floor
// service. Every route maps one-to-one onto an operation of the aggregate
// store or a pure derivation; the UI has no other way to reach the core.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/moodfood/restaurant-floor/internal/handler"
	"github.com/moodfood/restaurant-floor/internal/middleware"
)

// Handlers bundles every handler the router mounts.
type Handlers struct {
	Auth         *handler.AuthHandler
	Menu         *handler.MenuHandler
	Tables       *handler.TableHandler
	Orders       *handler.OrderHandler
	Payments     *handler.PaymentHandler
	Reservations *handler.ReservationHandler
	Loyalty      *handler.LoyaltyHandler
	Schedule     *handler.ScheduleHandler
}

// Register mounts all routes on the Echo instance. The identity middleware
// only annotates requests with the waiter behind a session token; it never
// rejects, because authentication enforcement is out of scope for this
// prototype.
func Register(e *echo.Echo, h Handlers, jwtSecret string) {
	e.GET("/healthz", handler.Health)

	v1 := e.Group("/v1", middleware.Identity(jwtSecret))

	auth := v1.Group("/auth")
	auth.POST("/login", h.Auth.Login)
	auth.POST("/forgot", h.Auth.Forgot)
	auth.POST("/logout", h.Auth.Logout)
	auth.GET("/me", h.Auth.Me)

	menu := v1.Group("/menu")
	menu.GET("/categories", h.Menu.GetCategories)
	menu.GET("/dishes", h.Menu.GetDishes)
	menu.GET("/dishes/:id", h.Menu.GetDish)

	tables := v1.Group("/tables")
	tables.GET("", h.Tables.ListTables)
	tables.GET("/:id", h.Tables.GetTable)
	tables.POST("/:id/guests", h.Tables.SeatGuest)
	tables.POST("/:id/reset", h.Tables.ResetTable)
	tables.POST("/:id/order", h.Tables.OpenOrder)
	tables.POST("/:id/order/send", h.Orders.SendOrder)
	tables.POST("/:id/guests/:guestId/items", h.Orders.AddItem)
	tables.DELETE("/:id/guests/:guestId/items/:itemId", h.Orders.RemoveItem)
	tables.PATCH("/:id/guests/:guestId/items/:itemId", h.Orders.UpdateItem)
	tables.POST("/:id/guests/:guestId/loyalty", h.Loyalty.Attach)
	tables.POST("/:id/bill", h.Payments.MakeBill)
	tables.POST("/:id/bill/paid", h.Payments.MarkPaid)
	tables.PUT("/:id/bill/split", h.Payments.SetSplitMode)
	tables.GET("/:id/bill/split", h.Payments.GetSplit)

	res := v1.Group("/reservations")
	res.POST("", h.Reservations.Create)
	res.POST("/:id/cancel", h.Reservations.Cancel)
	res.GET("", h.Reservations.List)

	loyalty := v1.Group("/loyalty")
	loyalty.GET("/members", h.Loyalty.Search)
	loyalty.GET("/members/:id", h.Loyalty.Get)
	loyalty.POST("/members", h.Loyalty.Register)

	schedule := v1.Group("/schedule")
	schedule.GET("/shifts", h.Schedule.Shifts)
	schedule.GET("/report", h.Schedule.Report)
}
