package entity

import "time"

const (
	CODEntryPending = "pending"
	CODEntryPaid    = "paid"
)

// CODLedgerEntry records cash a rider physically collected for one order.
// Created once at settlement, transitions pending -> paid exactly once.
type CODLedgerEntry struct {
	ID            uint64     `db:"id"`
	RiderID       string     `db:"rider_id"`
	OrderID       string     `db:"order_id"`
	CashCollected int64      `db:"cash_collected"`
	RiderEarning  int64      `db:"rider_earning"`
	AmountOwed    int64      `db:"amount_owed"`
	Status        string     `db:"status"`
	SettledAt     *time.Time `db:"settled_at"`
	SettlementRef *string    `db:"settlement_ref"`
	CreatedAt     time.Time  `db:"created_at"`
}
