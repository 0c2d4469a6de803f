package entity

import "time"

const (
	RiderSettlementActive  = "active"
	RiderSettlementOverdue = "overdue"
)

type Rider struct {
	RiderID          string    `db:"rider_id"`
	FullName         string    `db:"full_name"`
	// CODBalance is the cash currently in the rider's hands; when it
	// crosses the platform threshold the rider goes overdue and cannot
	// accept new orders until they deposit.
	CODBalance       int64     `db:"cod_balance"`
	EarningsBalance  int64     `db:"earnings_balance"`
	SettlementStatus string    `db:"settlement_status"`
	CurrentOrderID   *string   `db:"current_order_id"`
	RatingTotal      int64     `db:"rating_total"`
	RatingCount      int64     `db:"rating_count"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}
