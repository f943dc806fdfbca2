// Package router contains routing for the HTTP delivery.
package router

import (
	"coffeeshop/internal/delivery/http/middleware"
	"coffeeshop/internal/delivery/http/router/handler"
	"coffeeshop/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	MenuHandler      *handler.MenuHandler
	OrderHandler     *handler.OrderHandler
	PaymentHandler   *handler.PaymentHandler
	TableHandler     *handler.TableHandler
	InventoryHandler *handler.InventoryHandler
	CustomerHandler  *handler.CustomerHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler      *handler.AuthHandler
	menuHandler      *handler.MenuHandler
	orderHandler     *handler.OrderHandler
	paymentHandler   *handler.PaymentHandler
	tableHandler     *handler.TableHandler
	inventoryHandler *handler.InventoryHandler
	customerHandler  *handler.CustomerHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:      params.AuthHandler,
		menuHandler:      params.MenuHandler,
		orderHandler:     params.OrderHandler,
		paymentHandler:   params.PaymentHandler,
		tableHandler:     params.TableHandler,
		inventoryHandler: params.InventoryHandler,
		customerHandler:  params.CustomerHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Front-of-house routes are open; management routes require a manager token.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/manager/login", r.authHandler.ManagerLogin)
	}

	managerOnly := []echo.MiddlewareFunc{
		r.authMiddleware.Authenticate,
		r.authMiddleware.RequireRole(entity.RoleManager),
	}

	apiV1 := e.Group("/api/v1")

	menuGroup := apiV1.Group("/menu")
	{
		menuGroup.GET("", r.menuHandler.ListItems)
		menuGroup.GET("/categories", r.menuHandler.Categories)
		menuGroup.GET("/count", r.menuHandler.CountItems)
		menuGroup.GET("/:id", r.menuHandler.GetItem)

		menuGroup.POST("", r.menuHandler.CreateItem, managerOnly...)
		menuGroup.PUT("/:id", r.menuHandler.UpdateItem, managerOnly...)
		menuGroup.PATCH("/:id/availability", r.menuHandler.SetAvailability, managerOnly...)
		menuGroup.DELETE("/:id", r.menuHandler.DeleteItem, managerOnly...)
	}

	ordersGroup := apiV1.Group("/orders")
	{
		ordersGroup.POST("", r.orderHandler.PlaceOrder)
		ordersGroup.GET("", r.orderHandler.ListOrders)
		ordersGroup.GET("/:id", r.orderHandler.GetOrder)
		ordersGroup.POST("/:id/items", r.orderHandler.AddItem)
		ordersGroup.PUT("/:id/items/:menuItemId", r.orderHandler.UpdateItemQuantity)
		ordersGroup.DELETE("/:id/items/:menuItemId", r.orderHandler.RemoveItem)
		ordersGroup.PUT("/:id/discount", r.orderHandler.ApplyDiscount)
		ordersGroup.PATCH("/:id/status", r.orderHandler.UpdateStatus)
		ordersGroup.GET("/:id/paid", r.paymentHandler.TotalPaid)

		ordersGroup.GET("/stats", r.orderHandler.Stats, managerOnly...)
		ordersGroup.DELETE("/:id", r.orderHandler.DeleteOrder, managerOnly...)
	}

	paymentsGroup := apiV1.Group("/payments")
	{
		paymentsGroup.POST("", r.paymentHandler.ProcessPayment)
		paymentsGroup.GET("", r.paymentHandler.ListPayments)
		paymentsGroup.GET("/:id", r.paymentHandler.GetPayment)
		paymentsGroup.GET("/reference/:reference", r.paymentHandler.FindByReference)

		paymentsGroup.GET("/stats", r.paymentHandler.Stats, managerOnly...)
		paymentsGroup.POST("/:id/refund", r.paymentHandler.Refund, managerOnly...)
	}

	tablesGroup := apiV1.Group("/tables")
	{
		tablesGroup.GET("", r.tableHandler.ListTables)
		tablesGroup.GET("/best", r.tableHandler.FindBestTable)
		tablesGroup.POST("/resolve", r.tableHandler.ResolveQR)
		tablesGroup.GET("/:number", r.tableHandler.GetTable)
		tablesGroup.GET("/:number/qrcode", r.tableHandler.QRCode)
		tablesGroup.POST("/:number/occupy", r.tableHandler.OccupyTable)
		tablesGroup.POST("/:number/reserve", r.tableHandler.ReserveTable)
		tablesGroup.POST("/:number/release", r.tableHandler.ReleaseTable)

		tablesGroup.GET("/stats", r.tableHandler.Stats, managerOnly...)
		tablesGroup.POST("", r.tableHandler.CreateTable, managerOnly...)
		tablesGroup.PUT("/:number", r.tableHandler.UpdateTable, managerOnly...)
		tablesGroup.POST("/:number/out-of-service", r.tableHandler.SetOutOfService, managerOnly...)
		tablesGroup.POST("/:number/in-service", r.tableHandler.PutBackInService, managerOnly...)
		tablesGroup.DELETE("/:number", r.tableHandler.DeleteTable, managerOnly...)
	}

	customersGroup := apiV1.Group("/customers")
	{
		customersGroup.POST("", r.customerHandler.RegisterCustomer)
		customersGroup.GET("", r.customerHandler.SearchCustomers)
		customersGroup.GET("/lookup", r.customerHandler.Lookup)
		customersGroup.GET("/:id", r.customerHandler.GetCustomer)
		customersGroup.PUT("/:id", r.customerHandler.UpdateCustomer)
		customersGroup.GET("/:id/orders", r.customerHandler.OrderHistory)
		customersGroup.POST("/:id/loyalty/redeem", r.customerHandler.RedeemLoyaltyPoints)

		customersGroup.GET("/top", r.customerHandler.TopLoyaltyCustomers, managerOnly...)
		customersGroup.GET("/stats", r.customerHandler.Stats, managerOnly...)
		customersGroup.POST("/:id/loyalty/add", r.customerHandler.AddLoyaltyPoints, managerOnly...)
		customersGroup.DELETE("/:id", r.customerHandler.DeleteCustomer, managerOnly...)
	}

	// Inventory is back-of-house only.
	inventoryGroup := apiV1.Group("/inventory", managerOnly...)
	{
		inventoryGroup.GET("", r.inventoryHandler.ListIngredients)
		inventoryGroup.POST("", r.inventoryHandler.CreateIngredient)
		inventoryGroup.GET("/low-stock", r.inventoryHandler.LowStock)
		inventoryGroup.GET("/out-of-stock", r.inventoryHandler.OutOfStock)
		inventoryGroup.GET("/expired", r.inventoryHandler.Expired)
		inventoryGroup.GET("/expiring", r.inventoryHandler.ExpiringSoon)
		inventoryGroup.GET("/suppliers", r.inventoryHandler.Suppliers)
		inventoryGroup.GET("/stats", r.inventoryHandler.Stats)
		inventoryGroup.GET("/:id", r.inventoryHandler.GetIngredient)
		inventoryGroup.PUT("/:id", r.inventoryHandler.UpdateIngredient)
		inventoryGroup.DELETE("/:id", r.inventoryHandler.DeleteIngredient)
		inventoryGroup.POST("/:id/stock/add", r.inventoryHandler.AddStock)
		inventoryGroup.POST("/:id/stock/remove", r.inventoryHandler.RemoveStock)
	}
}
