package repository

import (
	"context"

	"foodswipe-order-service/src/internal/entity"
	"foodswipe-order-service/src/pkg/databases/mysql"
)

type PromoRepository struct {
	DB mysql.DBInterface
}

func NewPromoRepository(db mysql.DBInterface) *PromoRepository {
	return &PromoRepository{DB: db}
}

func (r *PromoRepository) FindByCode(ctx context.Context, code string) (*entity.Promo, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var promo entity.Promo
	query := `
		SELECT promo_id, code, discount_amount, min_subtotal, is_active,
		       starts_at, expires_at, created_at
		FROM promos
		WHERE code = ?`

	if err := db.GetContext(ctx, &promo, query, code); err != nil {
		return nil, err
	}
	return &promo, nil
}
