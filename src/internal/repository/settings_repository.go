package repository

import (
	"context"

	"foodswipe-order-service/src/internal/entity"
	"foodswipe-order-service/src/pkg/databases/mysql"
)

type SettingsRepository struct {
	DB mysql.DBInterface
}

func NewSettingsRepository(db mysql.DBInterface) *SettingsRepository {
	return &SettingsRepository{DB: db}
}

// Get returns the single platform settings row.
func (r *SettingsRepository) Get(ctx context.Context) (*entity.PlatformSettings, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var settings entity.PlatformSettings
	query := `
		SELECT id, default_commission_rate, base_delivery_fee, per_km_delivery_rate,
		       max_delivery_fee, service_fee, tax_enabled, tax_rate, gateway_fee_rate,
		       rider_base_pay, rider_per_km_rate, rider_platform_fee_percent,
		       default_distance_km, cod_threshold, maintenance_mode, updated_at
		FROM platform_settings WHERE id = 1`

	if err := db.GetContext(ctx, &settings, query); err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *SettingsRepository) Save(ctx context.Context, s *entity.PlatformSettings) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	query := `
		UPDATE platform_settings SET
			default_commission_rate = ?, base_delivery_fee = ?, per_km_delivery_rate = ?,
			max_delivery_fee = ?, service_fee = ?, tax_enabled = ?, tax_rate = ?,
			gateway_fee_rate = ?, rider_base_pay = ?, rider_per_km_rate = ?,
			rider_platform_fee_percent = ?, default_distance_km = ?, cod_threshold = ?,
			maintenance_mode = ?, updated_at = NOW()
		WHERE id = 1`

	_, err = db.ExecContext(ctx, query,
		s.DefaultCommissionRate, s.BaseDeliveryFee, s.PerKmDeliveryRate,
		s.MaxDeliveryFee, s.ServiceFee, s.TaxEnabled, s.TaxRate,
		s.GatewayFeeRate, s.RiderBasePay, s.RiderPerKmRate,
		s.RiderPlatformFeePercent, s.DefaultDistanceKm, s.CODThreshold,
		s.MaintenanceMode)
	return err
}
