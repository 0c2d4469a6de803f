package model

type OrderCreatedEvent struct {
	OrderID       string `json:"order_id"`
	CustomerID    string `json:"customer_id"`
	RestaurantID  string `json:"restaurant_id"`
	PaymentMethod string `json:"payment_method"`
	TotalPrice    int64  `json:"total_price"`
	Status        string `json:"status"`
}

func (e *OrderCreatedEvent) GetId() string { return e.OrderID }

type OrderStatusEvent struct {
	OrderID    string `json:"order_id"`
	FromStatus string `json:"from_status"`
	ToStatus   string `json:"to_status"`
	ActorID    string `json:"actor_id"`
	ActorRole  string `json:"actor_role"`
	Reason     string `json:"reason,omitempty"`
}

func (e *OrderStatusEvent) GetId() string { return e.OrderID }

type RiderAssignedEvent struct {
	OrderID    string `json:"order_id"`
	RiderID    string `json:"rider_id"`
	Reassigned bool   `json:"reassigned"`
	PrevRider  string `json:"prev_rider,omitempty"`
}

func (e *RiderAssignedEvent) GetId() string { return e.OrderID }

// OrderAvailableEvent fans an unassigned Ready order out to the rider pool
// with a freshly computed reward estimate.
type OrderAvailableEvent struct {
	OrderID        string  `json:"order_id"`
	RestaurantID   string  `json:"restaurant_id"`
	RestaurantLat  float64 `json:"restaurant_lat"`
	RestaurantLng  float64 `json:"restaurant_lng"`
	DeliveryLat    float64 `json:"delivery_lat"`
	DeliveryLng    float64 `json:"delivery_lng"`
	PaymentMethod  string  `json:"payment_method"`
	EstimatedPay   int64   `json:"estimated_pay"`
	EstimatedKm    float64 `json:"estimated_km"`
}

func (e *OrderAvailableEvent) GetId() string { return e.OrderID }
