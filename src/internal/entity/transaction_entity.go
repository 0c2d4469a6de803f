package entity

import "time"

const (
	EntityRestaurant = "restaurant"
	EntityRider      = "rider"
	EntityPlatform   = "platform"
)

const (
	TxnTypeEarning     = "earning"
	TxnTypeCommission  = "commission"
	TxnTypePayout      = "payout"
	TxnTypeRefund      = "refund"
	TxnTypeCashDeposit = "cash_deposit"
	TxnTypeBonus       = "bonus"
	TxnTypePenalty     = "penalty"
	TxnTypeAdjustment  = "adjustment"
)

// Transaction is an append-only ledger entry. Amount is signed relative to
// the owning wallet's available balance, so summing the sequence for an
// entity reconstructs that balance exactly.
type Transaction struct {
	TransactionID string    `db:"transaction_id"`
	EntityType    string    `db:"entity_type"`
	EntityID      string    `db:"entity_id"`
	OrderID       *string   `db:"order_id"`
	Type          string    `db:"type"`
	Amount        int64     `db:"amount"`
	BalanceAfter  int64     `db:"balance_after"`
	Description   string    `db:"description"`
	CreatedAt     time.Time `db:"created_at"`
}
