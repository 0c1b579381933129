package routes

import (
	"restaurant-api/handlers"
	"restaurant-api/middleware"
	"restaurant-api/policy"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	api := r.Group("/api")

	// ── Public routes ──────────────────────────────────────────────
	api.POST("/auth/register", handlers.Register)
	api.POST("/auth/login", handlers.Login)
	api.GET("/tables", handlers.ListTables)
	api.GET("/tables/:id", handlers.GetTable)
	api.GET("/menu-items", handlers.ListMenuItems)
	api.GET("/menu-items/:id", handlers.GetMenuItem)
	api.GET("/state-machine", handlers.GetStateMachineInfo)

	// ── Users ──────────────────────────────────────────────────────
	users := api.Group("/users", middleware.AuthRequired())
	{
		users.GET("/profile", handlers.GetProfile)
		users.PUT("/profile", handlers.UpdateProfile)
		users.GET("", policy.Require(policy.UserList), handlers.ListUsers)
		users.GET("/:id", policy.Require(policy.UserRead), handlers.GetUser)
		users.DELETE("/:id", policy.Require(policy.UserDelete), handlers.DeleteUser)
	}

	// ── Tables (mutations) ─────────────────────────────────────────
	tables := api.Group("/tables", middleware.AuthRequired())
	{
		tables.POST("", policy.Require(policy.TableCreate), handlers.CreateTable)
		tables.PUT("/:id", policy.Require(policy.TableUpdate), handlers.UpdateTable)
		tables.DELETE("/:id", policy.Require(policy.TableDelete), handlers.DeleteTable)
	}

	// ── Menu items (mutations) ─────────────────────────────────────
	menu := api.Group("/menu-items", middleware.AuthRequired())
	{
		menu.POST("", policy.Require(policy.MenuCreate), handlers.CreateMenuItem)
		menu.PUT("/:id", policy.Require(policy.MenuUpdate), handlers.UpdateMenuItem)
		menu.DELETE("/:id", policy.Require(policy.MenuDelete), handlers.DeleteMenuItem)
	}

	// ── Reservations ───────────────────────────────────────────────
	// Creation, listing, and status updates are role-gated here; reads
	// and deletes by id depend on ownership and are checked in the core.
	reservations := api.Group("/reservations", middleware.AuthRequired())
	{
		reservations.POST("", handlers.CreateReservation)
		reservations.GET("", policy.Require(policy.ReservationListAll), handlers.ListReservations)
		reservations.GET("/my-reservations", policy.Require(policy.ReservationListOwn), handlers.GetMyReservations)
		reservations.GET("/:id", handlers.GetReservation)
		reservations.PUT("/:id/status", policy.Require(policy.ReservationUpdateStatus), handlers.UpdateReservationStatus)
		reservations.DELETE("/:id", handlers.DeleteReservation)
	}

	// ── Orders ─────────────────────────────────────────────────────
	orders := api.Group("/orders", middleware.AuthRequired())
	{
		orders.POST("", handlers.CreateOrder)
		orders.GET("", policy.Require(policy.OrderListAll), handlers.ListOrders)
		orders.GET("/my-orders", policy.Require(policy.OrderListOwn), handlers.GetMyOrders)
		orders.GET("/:id", handlers.GetOrder)
		orders.PUT("/:id/status", policy.Require(policy.OrderUpdateStatus), handlers.UpdateOrderStatus)
		orders.DELETE("/:id", handlers.DeleteOrder)
	}
}
