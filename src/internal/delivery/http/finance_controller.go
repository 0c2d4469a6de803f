package http

import (
	"foodswipe-order-service/src/internal/delivery/http/middleware"
	"foodswipe-order-service/src/internal/model"
	"foodswipe-order-service/src/internal/usecase"
	"foodswipe-order-service/src/pkg/log"
	"foodswipe-order-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type FinanceController struct {
	Log        log.Log
	UseCase    *usecase.FinanceUseCase
	CODUseCase *usecase.CODUseCase
}

func NewFinanceController(useCase *usecase.FinanceUseCase, codUseCase *usecase.CODUseCase, logger log.Log) *FinanceController {
	return &FinanceController{
		Log:        logger,
		UseCase:    useCase,
		CODUseCase: codUseCase,
	}
}

func (c *FinanceController) GetOverview(ctx *fiber.Ctx) error {
	result := c.UseCase.GetFinanceOverview(ctx.Context())
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Finance Overview", fiber.StatusOK, ctx)
}

func (c *FinanceController) GetRestaurantWallet(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	result := c.UseCase.GetRestaurantWallet(ctx.Context(), auth.UserID)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Restaurant Wallet", fiber.StatusOK, ctx)
}

func (c *FinanceController) GetRiderWallet(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	result := c.UseCase.GetRiderWallet(ctx.Context(), auth.UserID)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Rider Wallet", fiber.StatusOK, ctx)
}

func (c *FinanceController) SettleRiderCOD(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := new(model.SettleRiderCODRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("FinanceController.SettleRiderCOD", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.RiderID = ctx.Params("riderId")
	request.ProcessedBy = auth.UserID

	result := c.CODUseCase.SettleRiderCOD(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Settle Rider COD", fiber.StatusOK, ctx)
}

func (c *FinanceController) RequestPayout(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := new(model.RequestPayoutRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("FinanceController.RequestPayout", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.ProcessedBy = auth.UserID

	result := c.UseCase.RequestPayout(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Request Payout", fiber.StatusCreated, ctx)
}

func (c *FinanceController) MarkPayoutPaid(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := new(model.MarkPayoutPaidRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("FinanceController.MarkPayoutPaid", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.PayoutID = ctx.Params("payoutId")
	request.ProcessedBy = auth.UserID

	result := c.UseCase.MarkPayoutPaid(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Mark Payout Paid", fiber.StatusOK, ctx)
}

func (c *FinanceController) UpdateSettings(ctx *fiber.Ctx) error {
	request := new(model.UpdateSettingsRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("FinanceController.UpdateSettings", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}

	result := c.UseCase.UpdateSettings(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Update Settings", fiber.StatusOK, ctx)
}
