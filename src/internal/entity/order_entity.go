package entity

import "time"

const (
	OrderStatusPending   = "PENDING"
	OrderStatusConfirmed = "CONFIRMED"
	OrderStatusPreparing = "PREPARING"
	OrderStatusReady     = "READY"
	OrderStatusPickedUp  = "PICKED_UP"
	OrderStatusArrived   = "ARRIVED"
	OrderStatusDelivered = "DELIVERED"
	OrderStatusCancelled = "CANCELLED"
	OrderStatusRefunded  = "REFUNDED"
)

const (
	PaymentMethodCOD    = "COD"
	PaymentMethodOnline = "ONLINE"
)

// validTransitions is the forward path of the order lifecycle. Cancellation
// is handled separately: CANCELLED/REFUNDED are reachable from any
// non-terminal state, never from DELIVERED.
var validTransitions = map[string]string{
	OrderStatusPending:   OrderStatusConfirmed,
	OrderStatusConfirmed: OrderStatusPreparing,
	OrderStatusPreparing: OrderStatusReady,
	OrderStatusReady:     OrderStatusPickedUp,
	OrderStatusPickedUp:  OrderStatusArrived,
	OrderStatusArrived:   OrderStatusDelivered,
}

func IsTerminalStatus(status string) bool {
	switch status {
	case OrderStatusDelivered, OrderStatusCancelled, OrderStatusRefunded:
		return true
	}
	return false
}

// CanTransition reports whether the state machine allows from -> to.
func CanTransition(from, to string) bool {
	if IsTerminalStatus(from) {
		return false
	}
	if to == OrderStatusCancelled || to == OrderStatusRefunded {
		return true
	}
	return validTransitions[from] == to
}

// RiderCanSet limits which legs the assigned rider may drive.
func RiderCanSet(to string) bool {
	switch to {
	case OrderStatusPickedUp, OrderStatusArrived, OrderStatusDelivered:
		return true
	}
	return false
}

type Order struct {
	OrderID      string  `db:"order_id"`
	CustomerID   string  `db:"customer_id"`
	RestaurantID string  `db:"restaurant_id"`
	RiderID      *string `db:"rider_id"`

	Status        string `db:"status"`
	PaymentMethod string `db:"payment_method"`

	DeliveryLat     float64 `db:"delivery_lat"`
	DeliveryLng     float64 `db:"delivery_lng"`
	DeliveryAddress string  `db:"delivery_address"`

	Subtotal          int64   `db:"subtotal"`
	DeliveryFee       int64   `db:"delivery_fee"`
	ServiceFee        int64   `db:"service_fee"`
	Tax               int64   `db:"tax"`
	Discount          int64   `db:"discount"`
	GatewayFee        int64   `db:"gateway_fee"`
	CommissionRate    float64 `db:"commission_rate"`
	CommissionAmount  int64   `db:"commission_amount"`
	RestaurantEarning int64   `db:"restaurant_earning"`
	RiderGrossEarning int64   `db:"rider_gross_earning"`
	RiderNetEarning   int64   `db:"rider_net_earning"`
	PlatformNetProfit int64   `db:"platform_net_profit"`
	TotalPrice        int64   `db:"total_price"`

	DistanceKm        float64 `db:"distance_km"`
	DistanceEstimated bool    `db:"distance_estimated"`

	PromoCode *string `db:"promo_code"`
	IsPaid    bool    `db:"is_paid"`
	IsSettled bool    `db:"is_settled"`

	RiderRating *int    `db:"rider_rating"`
	RiderReview *string `db:"rider_review"`

	CreatedAt       time.Time  `db:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at"`
	RiderAcceptedAt *time.Time `db:"rider_accepted_at"`
	PickedUpAt      *time.Time `db:"picked_up_at"`
	DeliveredAt     *time.Time `db:"delivered_at"`
	CancelledAt     *time.Time `db:"cancelled_at"`
}

type OrderItem struct {
	ID        uint64 `db:"id"`
	OrderID   string `db:"order_id"`
	ProductID string `db:"product_id"`
	Name      string `db:"name"`
	Quantity  int    `db:"quantity"`
	UnitPrice int64  `db:"unit_price"`
}

// OrderStatusHistory is an append-only audit row written on every transition.
type OrderStatusHistory struct {
	ID         uint64    `db:"id"`
	OrderID    string    `db:"order_id"`
	FromStatus string    `db:"from_status"`
	ToStatus   string    `db:"to_status"`
	ActorID    string    `db:"actor_id"`
	ActorRole  string    `db:"actor_role"`
	Note       string    `db:"note"`
	CreatedAt  time.Time `db:"created_at"`
}
