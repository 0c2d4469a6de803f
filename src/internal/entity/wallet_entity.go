package entity

import "time"

type RestaurantWallet struct {
	RestaurantID             string     `db:"restaurant_id"`
	AvailableBalance         int64      `db:"available_balance"`
	PendingPayout            int64      `db:"pending_payout"`
	TotalEarnings            int64      `db:"total_earnings"`
	TotalCommissionCollected int64      `db:"total_commission_collected"`
	OnHoldAmount             int64      `db:"on_hold_amount"`
	LastPayoutDate           *time.Time `db:"last_payout_date"`
	UpdatedAt                time.Time  `db:"updated_at"`
}

type RiderWallet struct {
	RiderID          string     `db:"rider_id"`
	TotalEarnings    int64      `db:"total_earnings"`
	AvailableWithdraw int64     `db:"available_withdraw"`
	CashCollected    int64      `db:"cash_collected"`
	CashToDeposit    int64      `db:"cash_to_deposit"`
	DeliveryEarnings int64      `db:"delivery_earnings"`
	Bonuses          int64      `db:"bonuses"`
	Penalties        int64      `db:"penalties"`
	LastWithdrawDate *time.Time `db:"last_withdraw_date"`
	UpdatedAt        time.Time  `db:"updated_at"`
}
