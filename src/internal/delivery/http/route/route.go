package route

import (
	"foodswipe-order-service/src/internal/delivery/http"
	"foodswipe-order-service/src/internal/delivery/http/middleware"
	"foodswipe-order-service/src/pkg/token"

	"github.com/gofiber/fiber/v2"
)

type RouteConfig struct {
	App               *fiber.App
	OrderController   *http.OrderController
	FinanceController *http.FinanceController
	AuthMiddleware    fiber.Handler
}

func (c *RouteConfig) Setup() {
	c.App.Use(middleware.NewLogger())
	c.App.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.SendString("OK")
	})
	c.SetupAuthRoute()
}

func (c *RouteConfig) SetupAuthRoute() {
	c.App.Use(c.AuthMiddleware)

	orders := c.App.Group("/orders/v1")
	orders.Post("/", c.OrderController.CreateOrder)
	orders.Get("/restaurant", middleware.RequireRole(token.RoleRestaurant, token.RoleAdmin), c.OrderController.ListRestaurantOrders)
	orders.Get("/rider", middleware.RequireRole(token.RoleRider, token.RoleAdmin), c.OrderController.ListRiderOrders)
	orders.Post("/rider/online", middleware.RequireRole(token.RoleRider), c.OrderController.GoOnline)
	orders.Post("/rider/offline", middleware.RequireRole(token.RoleRider), c.OrderController.GoOffline)
	orders.Get("/:orderId", c.OrderController.GetOrder)
	orders.Patch("/:orderId/status", c.OrderController.UpdateStatus)
	orders.Post("/:orderId/rider", c.OrderController.AssignRider)
	orders.Post("/:orderId/cancel", middleware.RequireRole(token.RoleCustomer, token.RoleRestaurant, token.RoleAdmin), c.OrderController.CancelOrder)
	orders.Post("/:orderId/rating", middleware.RequireRole(token.RoleCustomer), c.OrderController.RateRider)

	finance := c.App.Group("/finance/v1")
	finance.Get("/wallet/restaurant", middleware.RequireRole(token.RoleRestaurant), c.FinanceController.GetRestaurantWallet)
	finance.Get("/wallet/rider", middleware.RequireRole(token.RoleRider), c.FinanceController.GetRiderWallet)
	finance.Post("/payouts", c.FinanceController.RequestPayout)

	admin := c.App.Group("/admin/v1", middleware.RequireRole(token.RoleAdmin))
	admin.Get("/finance/overview", c.FinanceController.GetOverview)
	admin.Post("/riders/:riderId/cod-settlement", c.FinanceController.SettleRiderCOD)
	admin.Post("/payouts/:payoutId/paid", c.FinanceController.MarkPayoutPaid)
	admin.Patch("/settings", c.FinanceController.UpdateSettings)
}
