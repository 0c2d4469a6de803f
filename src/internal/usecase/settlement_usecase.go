package usecase

import (
	"context"
	"fmt"

	"foodswipe-order-service/src/internal/entity"
	"foodswipe-order-service/src/internal/gateway/geo"
	"foodswipe-order-service/src/internal/pricing"
	"foodswipe-order-service/src/pkg/log"
	"foodswipe-order-service/src/pkg/utils"

	"github.com/jmoiron/sqlx"
)

// SettlementUseCase runs the authoritative money split when an order is
// delivered. It executes inside the caller's transaction together with the
// status write: if any ledger write fails, the delivered status never
// commits either.
type SettlementUseCase struct {
	Log         log.Log
	Orders      OrderStore
	Restaurants RestaurantStore
	Riders      RiderStore
	Wallet      *WalletUseCase
	COD         *CODUseCase
	Settings    *SettingsUseCase
	Distance    geo.DistanceMeasurer
}

func NewSettlementUseCase(
	logger log.Log,
	orders OrderStore,
	restaurants RestaurantStore,
	riders RiderStore,
	wallet *WalletUseCase,
	cod *CODUseCase,
	settings *SettingsUseCase,
	distance geo.DistanceMeasurer,
) *SettlementUseCase {
	return &SettlementUseCase{
		Log:         logger,
		Orders:      orders,
		Restaurants: restaurants,
		Riders:      riders,
		Wallet:      wallet,
		COD:         cod,
		Settings:    settings,
		Distance:    distance,
	}
}

// SettleOrder computes and applies the final split for the order. Idempotent:
// a record with is_paid already set is treated as settled and skipped, so a
// retry after a crash never double-pays.
func (c *SettlementUseCase) SettleOrder(ctx context.Context, q sqlx.ExtContext, orderID string) error {
	order, err := c.Orders.FindByIDForUpdate(ctx, q, orderID)
	if err != nil {
		return fmt.Errorf("load order for settlement: %w", err)
	}

	if order.IsPaid {
		c.Log.Info("settlement-usecase", "order already settled, skipping", "SettleOrder", orderID)
		return nil
	}
	if order.RiderID == nil || *order.RiderID == "" {
		return fmt.Errorf("order %s has no rider bound at completion", orderID)
	}
	riderID := *order.RiderID

	settings, err := c.Settings.Get(ctx)
	if err != nil {
		return fmt.Errorf("load settings for settlement: %w", err)
	}
	cfg := PricingConfig(settings)

	distanceKm := c.measureDistance(ctx, order)
	split := pricing.ComputeSplit(cfg, order.Subtotal, order.CommissionRate,
		distanceKm, order.Discount, order.PaymentMethod == entity.PaymentMethodOnline)

	applySplit(order, split)

	applied, err := c.Orders.ApplySettlement(ctx, q, order)
	if err != nil {
		return fmt.Errorf("persist settlement: %w", err)
	}
	if !applied {
		// another writer settled between our read and write
		c.Log.Warn("settlement-usecase", "settlement already applied by concurrent writer", "SettleOrder", orderID)
		return nil
	}

	if _, err := c.Wallet.ApplyRestaurantDelta(ctx, q, order.RestaurantID,
		split.RestaurantEarning, entity.TxnTypeEarning, &order.OrderID,
		fmt.Sprintf("earning for order %s", order.OrderID)); err != nil {
		return fmt.Errorf("restaurant earning: %w", err)
	}
	if _, err := c.Wallet.ApplyRestaurantDelta(ctx, q, order.RestaurantID,
		split.CommissionAmount, entity.TxnTypeCommission, &order.OrderID,
		fmt.Sprintf("commission for order %s", order.OrderID)); err != nil {
		return fmt.Errorf("commission: %w", err)
	}
	if _, err := c.Wallet.ApplyRiderDelta(ctx, q, riderID,
		split.RiderEarning.Net, entity.TxnTypeEarning, &order.OrderID,
		fmt.Sprintf("delivery earning for order %s", order.OrderID)); err != nil {
		return fmt.Errorf("rider earning: %w", err)
	}
	if err := c.Wallet.RecordPlatformProfit(ctx, q, split.PlatformNetProfit, &order.OrderID); err != nil {
		return fmt.Errorf("platform profit: %w", err)
	}

	if order.PaymentMethod == entity.PaymentMethodCOD {
		if err := c.COD.Accrue(ctx, q, riderID, order.OrderID, split.TotalPrice, split.RiderEarning.Net, settings.CODThreshold); err != nil {
			return fmt.Errorf("cod accrual: %w", err)
		}
	}

	// the delivery is over, free the rider for the next order
	if err := c.Riders.SetCurrentOrder(ctx, q, riderID, nil); err != nil {
		return fmt.Errorf("release rider: %w", err)
	}

	c.Log.Info("settlement-usecase", "order settled", "SettleOrder", utils.ConvertString(split))
	return nil
}

func (c *SettlementUseCase) measureDistance(ctx context.Context, order *entity.Order) float64 {
	restaurant, err := c.Restaurants.FindByID(ctx, order.RestaurantID)
	if err != nil {
		c.Log.Warn("settlement-usecase",
			fmt.Sprintf("restaurant lookup failed, falling back to default distance: %v", err),
			"measureDistance", order.OrderID)
		return 0
	}

	km, err := c.Distance.Measure(ctx, restaurant.Lat, restaurant.Lng, order.DeliveryLat, order.DeliveryLng)
	if err != nil {
		c.Log.Warn("settlement-usecase",
			fmt.Sprintf("distance measurement failed, falling back to default distance: %v", err),
			"measureDistance", order.OrderID)
		return 0
	}
	return km
}

func applySplit(order *entity.Order, split pricing.Split) {
	order.Subtotal = split.Subtotal
	order.DeliveryFee = split.DeliveryFee
	order.ServiceFee = split.ServiceFee
	order.Tax = split.Tax
	order.Discount = split.Discount
	order.GatewayFee = split.GatewayFee
	order.CommissionRate = split.CommissionRate
	order.CommissionAmount = split.CommissionAmount
	order.RestaurantEarning = split.RestaurantEarning
	order.RiderGrossEarning = split.RiderEarning.Gross
	order.RiderNetEarning = split.RiderEarning.Net
	order.PlatformNetProfit = split.PlatformNetProfit
	order.TotalPrice = split.TotalPrice
	order.DistanceKm = split.DistanceKm
	order.DistanceEstimated = split.DistanceEstimated
	order.IsPaid = true
	order.IsSettled = true
}
