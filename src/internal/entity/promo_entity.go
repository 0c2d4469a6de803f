package entity

import "time"

// Promo is a flat-amount voucher a customer can attach at checkout.
type Promo struct {
	PromoID        string     `db:"promo_id"`
	Code           string     `db:"code"`
	DiscountAmount int64      `db:"discount_amount"`
	MinSubtotal    int64      `db:"min_subtotal"`
	IsActive       bool       `db:"is_active"`
	StartsAt       *time.Time `db:"starts_at"`
	ExpiresAt      *time.Time `db:"expires_at"`
	CreatedAt      time.Time  `db:"created_at"`
}
