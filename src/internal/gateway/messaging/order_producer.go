package messaging

import (
	"foodswipe-order-service/src/internal/model"
	kafka "foodswipe-order-service/src/pkg/kafka/confluent"
	"foodswipe-order-service/src/pkg/log"
)

// OrderProducer fans order lifecycle events out to subscribers. Delivery is
// at-most-once; the order flow never depends on a publish succeeding.
type OrderProducer struct {
	CreatedProducer   Producer[*model.OrderCreatedEvent]
	StatusProducer    Producer[*model.OrderStatusEvent]
	AssignedProducer  Producer[*model.RiderAssignedEvent]
	AvailableProducer Producer[*model.OrderAvailableEvent]
}

func NewOrderProducer(producer kafka.Producer, log log.Log) *OrderProducer {
	return &OrderProducer{
		CreatedProducer: Producer[*model.OrderCreatedEvent]{
			Producer: producer,
			Topic:    "order-created",
			Log:      log,
		},
		StatusProducer: Producer[*model.OrderStatusEvent]{
			Producer: producer,
			Topic:    "order-status",
			Log:      log,
		},
		AssignedProducer: Producer[*model.RiderAssignedEvent]{
			Producer: producer,
			Topic:    "rider-assigned",
			Log:      log,
		},
		AvailableProducer: Producer[*model.OrderAvailableEvent]{
			Producer: producer,
			Topic:    "order-available",
			Log:      log,
		},
	}
}

func (p *OrderProducer) SendCreated(event *model.OrderCreatedEvent) error {
	return p.CreatedProducer.Send(event)
}

func (p *OrderProducer) SendStatus(event *model.OrderStatusEvent) error {
	return p.StatusProducer.Send(event)
}

func (p *OrderProducer) SendRiderAssigned(event *model.RiderAssignedEvent) error {
	return p.AssignedProducer.Send(event)
}

func (p *OrderProducer) SendAvailable(event *model.OrderAvailableEvent) error {
	return p.AvailableProducer.Send(event)
}
