package messaging

import (
	"foodswipe-order-service/src/internal/model"
	kafka "foodswipe-order-service/src/pkg/kafka/confluent"
	"foodswipe-order-service/src/pkg/log"
)

type WalletProducer struct {
	WalletProducer Producer[*model.WalletUpdatedEvent]
	CODProducer    Producer[*model.CODUpdatedEvent]
}

func NewWalletProducer(producer kafka.Producer, log log.Log) *WalletProducer {
	return &WalletProducer{
		WalletProducer: Producer[*model.WalletUpdatedEvent]{
			Producer: producer,
			Topic:    "wallet-updated",
			Log:      log,
		},
		CODProducer: Producer[*model.CODUpdatedEvent]{
			Producer: producer,
			Topic:    "cod-updated",
			Log:      log,
		},
	}
}

func (p *WalletProducer) SendWalletUpdated(event *model.WalletUpdatedEvent) error {
	return p.WalletProducer.Send(event)
}

func (p *WalletProducer) SendCODUpdated(event *model.CODUpdatedEvent) error {
	return p.CODProducer.Send(event)
}
