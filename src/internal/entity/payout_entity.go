package entity

import "time"

const (
	PayoutStatusPending   = "pending"
	PayoutStatusPaid      = "paid"
	PayoutStatusCompleted = "completed"
)

type Payout struct {
	PayoutID    string     `db:"payout_id"`
	EntityType  string     `db:"entity_type"`
	EntityID    string     `db:"entity_id"`
	Amount      int64      `db:"amount"`
	Status      string     `db:"status"`
	BankRef     *string    `db:"bank_ref"`
	ProcessedBy *string    `db:"processed_by"`
	ProcessedAt *time.Time `db:"processed_at"`
	CreatedAt   time.Time  `db:"created_at"`
}
