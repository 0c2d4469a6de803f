package repository

import (
	"context"

	"foodswipe-order-service/src/internal/entity"
	"foodswipe-order-service/src/pkg/databases/mysql"
)

type RestaurantRepository struct {
	DB mysql.DBInterface
}

func NewRestaurantRepository(db mysql.DBInterface) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

func (r *RestaurantRepository) FindByID(ctx context.Context, id string) (*entity.Restaurant, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var restaurant entity.Restaurant
	query := `
		SELECT
			r.restaurant_id,
			r.name,
			r.is_approved,
			r.business_type,
			r.commission_rate,
			bt.commission_rate AS business_type_rate,
			r.lat,
			r.lng,
			r.created_at
		FROM restaurants r
		LEFT JOIN business_types bt ON bt.name = r.business_type
		WHERE r.restaurant_id = ?`

	if err := db.GetContext(ctx, &restaurant, query, id); err != nil {
		return nil, err
	}
	return &restaurant, nil
}
