package entity

import "time"

type Restaurant struct {
	RestaurantID string   `db:"restaurant_id"`
	Name         string   `db:"name"`
	IsApproved   bool     `db:"is_approved"`
	BusinessType string   `db:"business_type"`
	// CommissionRate overrides the business-type and platform defaults
	// when set.
	CommissionRate   *float64 `db:"commission_rate"`
	BusinessTypeRate *float64 `db:"business_type_rate"`
	Lat              float64  `db:"lat"`
	Lng              float64  `db:"lng"`
	CreatedAt        time.Time `db:"created_at"`
}

type Product struct {
	ProductID    string `db:"product_id"`
	RestaurantID string `db:"restaurant_id"`
	Name         string `db:"name"`
	Price        int64  `db:"price"`
	Stock        int    `db:"stock"`
}
