package model

type WalletUpdatedEvent struct {
	EntityType   string `json:"entity_type"`
	EntityID     string `json:"entity_id"`
	TxnType      string `json:"txn_type"`
	Amount       int64  `json:"amount"`
	BalanceAfter int64  `json:"balance_after"`
	OrderID      string `json:"order_id,omitempty"`
}

func (e *WalletUpdatedEvent) GetId() string { return e.EntityID }

type CODUpdatedEvent struct {
	RiderID          string `json:"rider_id"`
	CODBalance       int64  `json:"cod_balance"`
	SettlementStatus string `json:"settlement_status"`
	OrderID          string `json:"order_id,omitempty"`
}

func (e *CODUpdatedEvent) GetId() string { return e.RiderID }
