package entity

import "time"

// PlatformSettings is the single row of operator-tunable parameters.
// Monetary values are minor currency units, rates are percent.
type PlatformSettings struct {
	ID                      int       `db:"id"`
	DefaultCommissionRate   float64   `db:"default_commission_rate"`
	BaseDeliveryFee         int64     `db:"base_delivery_fee"`
	PerKmDeliveryRate       int64     `db:"per_km_delivery_rate"`
	MaxDeliveryFee          int64     `db:"max_delivery_fee"`
	ServiceFee              int64     `db:"service_fee"`
	TaxEnabled              bool      `db:"tax_enabled"`
	TaxRate                 float64   `db:"tax_rate"`
	GatewayFeeRate          float64   `db:"gateway_fee_rate"`
	RiderBasePay            int64     `db:"rider_base_pay"`
	RiderPerKmRate          int64     `db:"rider_per_km_rate"`
	RiderPlatformFeePercent float64   `db:"rider_platform_fee_percent"`
	DefaultDistanceKm       float64   `db:"default_distance_km"`
	CODThreshold            int64     `db:"cod_threshold"`
	MaintenanceMode         bool      `db:"maintenance_mode"`
	UpdatedAt               time.Time `db:"updated_at"`
}
