package messaging

import (
	"testing"

	"foodswipe-order-service/src/internal/model"
	"foodswipe-order-service/src/pkg/log"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func testLogger() log.Log {
	l := logrus.New()
	l.SetLevel(logrus.FatalLevel)
	return log.Log{AppName: "test", LogLevel: 3, Logger: l}
}

func TestSendDropsEventWhenProducerDisabled(t *testing.T) {
	p := Producer[*model.RiderAssignedEvent]{Topic: "rider-assigned", Log: testLogger()}

	err := p.Send(&model.RiderAssignedEvent{OrderID: "ord-1", RiderID: "rid-1"})

	assert.NoError(t, err)
}

func TestOrderProducerToleratesDisabledPublishing(t *testing.T) {
	op := NewOrderProducer(nil, testLogger())

	assert.NoError(t, op.SendCreated(&model.OrderCreatedEvent{OrderID: "ord-1"}))
	assert.NoError(t, op.SendRiderAssigned(&model.RiderAssignedEvent{OrderID: "ord-1", RiderID: "rid-1"}))
}
