// Package pricing holds the money-split arithmetic for an order. Every
// function is a pure function of its inputs so the creation-time estimate
// and the completion-time authoritative run can be compared and reconciled.
package pricing

import "math"

// Config snapshots the platform settings a single pricing run depends on.
// It is passed in explicitly on every call; nothing here is mutated.
type Config struct {
	BaseDeliveryFee         int64
	PerKmDeliveryRate       int64
	MaxDeliveryFee          int64
	ServiceFee              int64
	TaxEnabled              bool
	TaxRate                 float64
	GatewayFeeRate          float64
	RiderBasePay            int64
	RiderPerKmRate          int64
	RiderPlatformFeePercent float64
	DefaultDistanceKm       float64
}

type Split struct {
	Subtotal          int64
	CommissionRate    float64
	CommissionAmount  int64
	RestaurantEarning int64
	DeliveryFee       int64
	ServiceFee        int64
	Tax               int64
	Discount          int64
	GatewayFee        int64
	RiderEarning      Earning
	TotalPrice        int64
	PlatformNetProfit int64
	DistanceKm        float64
	DistanceEstimated bool
}

func round(v float64) int64 {
	return int64(math.Round(v))
}

func clampZero(v int64) int64 {
	if v < 0 {
		return 0
	}
	return v
}

// ResolveCommissionRate applies the precedence chain: order-level override,
// restaurant-specific rate, business-type default, platform default.
func ResolveCommissionRate(orderRate, restaurantRate, businessTypeRate *float64, platformRate float64) float64 {
	if orderRate != nil {
		return *orderRate
	}
	if restaurantRate != nil {
		return *restaurantRate
	}
	if businessTypeRate != nil {
		return *businessTypeRate
	}
	return platformRate
}

// DeliveryFee is base + per-km, capped at the configured maximum.
func DeliveryFee(cfg Config, distanceKm float64) int64 {
	fee := round(float64(cfg.BaseDeliveryFee) + distanceKm*float64(cfg.PerKmDeliveryRate))
	if fee > cfg.MaxDeliveryFee {
		return cfg.MaxDeliveryFee
	}
	return fee
}

// ComputeSplit allocates an order's money among restaurant, rider and
// platform. isOnline selects the gateway fee; COD orders never pay one.
func ComputeSplit(cfg Config, subtotal int64, commissionRate, distanceKm float64, discount int64, isOnline bool) Split {
	distance, estimated := NormalizeDistance(cfg, distanceKm)

	commission := round(float64(subtotal) * commissionRate / 100)
	deliveryFee := DeliveryFee(cfg, distance)
	earning := EstimateEarning(cfg, distance)

	var tax int64
	if cfg.TaxEnabled {
		tax = round(float64(subtotal) * cfg.TaxRate / 100)
	}

	var gatewayFee int64
	if isOnline {
		gatewayFee = round(float64(subtotal) * cfg.GatewayFeeRate / 100)
	}

	return Split{
		Subtotal:          subtotal,
		CommissionRate:    commissionRate,
		CommissionAmount:  commission,
		RestaurantEarning: clampZero(subtotal - commission),
		DeliveryFee:       deliveryFee,
		ServiceFee:        cfg.ServiceFee,
		Tax:               tax,
		Discount:          discount,
		GatewayFee:        gatewayFee,
		RiderEarning:      earning,
		TotalPrice:        clampZero(subtotal + deliveryFee + cfg.ServiceFee + tax - discount),
		PlatformNetProfit: commission + (deliveryFee - earning.Net) + cfg.ServiceFee + tax - gatewayFee - discount,
		DistanceKm:        distance,
		DistanceEstimated: estimated,
	}
}
