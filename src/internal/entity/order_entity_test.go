package entity

import "testing"

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to string
		want     bool
	}{
		{OrderStatusPending, OrderStatusConfirmed, true},
		{OrderStatusPending, OrderStatusReady, false},
		{OrderStatusConfirmed, OrderStatusPreparing, true},
		{OrderStatusPreparing, OrderStatusReady, true},
		{OrderStatusReady, OrderStatusPickedUp, true},
		{OrderStatusPickedUp, OrderStatusArrived, true},
		{OrderStatusArrived, OrderStatusDelivered, true},
		{OrderStatusReady, OrderStatusDelivered, false},
		{OrderStatusPending, OrderStatusCancelled, true},
		{OrderStatusArrived, OrderStatusCancelled, true},
		{OrderStatusDelivered, OrderStatusCancelled, false},
		{OrderStatusDelivered, OrderStatusDelivered, false},
		{OrderStatusCancelled, OrderStatusConfirmed, false},
		{OrderStatusRefunded, OrderStatusPending, false},
		{OrderStatusPreparing, OrderStatusRefunded, true},
		{"", OrderStatusConfirmed, false},
	}
	for _, tt := range tests {
		if got := CanTransition(tt.from, tt.to); got != tt.want {
			t.Errorf("CanTransition(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestRiderCanSet(t *testing.T) {
	allowed := map[string]bool{
		OrderStatusPickedUp:  true,
		OrderStatusArrived:   true,
		OrderStatusDelivered: true,
	}
	for _, status := range []string{
		OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing,
		OrderStatusReady, OrderStatusPickedUp, OrderStatusArrived,
		OrderStatusDelivered, OrderStatusCancelled,
	} {
		if got := RiderCanSet(status); got != allowed[status] {
			t.Errorf("RiderCanSet(%q) = %v, want %v", status, got, allowed[status])
		}
	}
}
