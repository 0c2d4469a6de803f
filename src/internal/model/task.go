package model

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

// TypeBroadcastAvailable re-announces a Ready order with no rider to the
// rider pool. Enqueued with retries so a momentary Kafka outage does not
// leave the order invisible.
const TypeBroadcastAvailable = "order:broadcast-available"

type BroadcastAvailablePayload struct {
	OrderID string `json:"order_id"`
}

func NewBroadcastAvailableTask(orderID string) (*asynq.Task, error) {
	payload, err := json.Marshal(BroadcastAvailablePayload{OrderID: orderID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeBroadcastAvailable, payload), nil
}
