package http

import (
	"foodswipe-order-service/src/internal/delivery/http/middleware"
	"foodswipe-order-service/src/internal/model"
	"foodswipe-order-service/src/internal/usecase"
	"foodswipe-order-service/src/pkg/log"
	"foodswipe-order-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type OrderController struct {
	Log     log.Log
	UseCase *usecase.OrderUseCase
}

func NewOrderController(useCase *usecase.OrderUseCase, logger log.Log) *OrderController {
	return &OrderController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *OrderController) CreateOrder(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := new(model.CreateOrderRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("OrderController.CreateOrder", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.CustomerID = auth.UserID

	result := c.UseCase.CreateOrder(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Create Order", fiber.StatusCreated, ctx)
}

func (c *OrderController) GetOrder(ctx *fiber.Ctx) error {
	result := c.UseCase.GetOrder(ctx.Context(), ctx.Params("orderId"))
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Get Order", fiber.StatusOK, ctx)
}

func (c *OrderController) UpdateStatus(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := new(model.UpdateOrderStatusRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("OrderController.UpdateStatus", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.OrderID = ctx.Params("orderId")
	request.ActorID = auth.UserID
	request.ActorRole = auth.Role

	result := c.UseCase.UpdateOrderStatus(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Update Order Status", fiber.StatusOK, ctx)
}

func (c *OrderController) AssignRider(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := new(model.AssignRiderRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("OrderController.AssignRider", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.OrderID = ctx.Params("orderId")
	request.ActorID = auth.UserID
	request.ActorRole = auth.Role
	// a rider accepting an order always assigns themselves
	if request.RiderID == "" {
		request.RiderID = auth.UserID
	}

	result := c.UseCase.AssignRider(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Assign Rider", fiber.StatusOK, ctx)
}

func (c *OrderController) CancelOrder(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := new(model.CancelOrderRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("OrderController.CancelOrder", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.OrderID = ctx.Params("orderId")
	request.ActorID = auth.UserID
	request.ActorRole = auth.Role

	result := c.UseCase.CancelOrder(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Cancel Order", fiber.StatusOK, ctx)
}

func (c *OrderController) RateRider(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := new(model.RateRiderRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("OrderController.RateRider", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.OrderID = ctx.Params("orderId")
	request.CustomerID = auth.UserID

	result := c.UseCase.RateRider(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Rate Rider", fiber.StatusOK, ctx)
}

func (c *OrderController) GoOnline(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	result := c.UseCase.SetRiderOnline(ctx.Context(), auth.UserID)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Rider Online", fiber.StatusOK, ctx)
}

func (c *OrderController) GoOffline(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	result := c.UseCase.SetRiderOffline(ctx.Context(), auth.UserID)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Rider Offline", fiber.StatusOK, ctx)
}

func (c *OrderController) ListRestaurantOrders(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	limit := ctx.QueryInt("limit", 50)
	result := c.UseCase.ListRestaurantOrders(ctx.Context(), auth.UserID, limit)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "List Restaurant Orders", fiber.StatusOK, ctx)
}

func (c *OrderController) ListRiderOrders(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	limit := ctx.QueryInt("limit", 50)
	result := c.UseCase.ListRiderOrders(ctx.Context(), auth.UserID, limit)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "List Rider Orders", fiber.StatusOK, ctx)
}
