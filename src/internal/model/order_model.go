package model

import "time"

type OrderItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

type CreateOrderRequest struct {
	CustomerID      string             `json:"-" validate:"required"`
	RestaurantID    string             `json:"restaurantId" validate:"required"`
	Items           []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	DeliveryLat     float64            `json:"deliveryLat" validate:"required"`
	DeliveryLng     float64            `json:"deliveryLng" validate:"required"`
	DeliveryAddress string             `json:"deliveryAddress" validate:"required"`
	PaymentMethod   string             `json:"paymentMethod" validate:"required,oneof=COD ONLINE"`
	PromoCode       string             `json:"promoCode,omitempty"`
}

type UpdateOrderStatusRequest struct {
	OrderID   string `json:"-" validate:"required"`
	NewStatus string `json:"status" validate:"required"`
	Reason    string `json:"reason,omitempty"`
	ActorID   string `json:"-" validate:"required"`
	ActorRole string `json:"-" validate:"required"`
}

type AssignRiderRequest struct {
	OrderID   string `json:"-" validate:"required"`
	RiderID   string `json:"riderId" validate:"required"`
	Reassign  bool   `json:"reassign,omitempty"`
	ActorID   string `json:"-" validate:"required"`
	ActorRole string `json:"-" validate:"required"`
}

type CancelOrderRequest struct {
	OrderID   string `json:"-" validate:"required"`
	Reason    string `json:"reason" validate:"required"`
	ActorID   string `json:"-" validate:"required"`
	ActorRole string `json:"-" validate:"required"`
}

type RateRiderRequest struct {
	OrderID    string `json:"-" validate:"required"`
	CustomerID string `json:"-" validate:"required"`
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
	Review     string `json:"review,omitempty" validate:"max=500"`
}

type GetOrderRequest struct {
	OrderID string `json:"orderId" validate:"required"`
}

type OrderResponse struct {
	OrderID           string     `json:"orderId"`
	CustomerID        string     `json:"customerId"`
	RestaurantID      string     `json:"restaurantId"`
	RiderID           *string    `json:"riderId,omitempty"`
	Status            string     `json:"status"`
	PaymentMethod     string     `json:"paymentMethod"`
	Subtotal          int64      `json:"subtotal"`
	DeliveryFee       int64      `json:"deliveryFee"`
	ServiceFee        int64      `json:"serviceFee"`
	Tax               int64      `json:"tax"`
	Discount          int64      `json:"discount"`
	TotalPrice        int64      `json:"totalPrice"`
	DistanceKm        float64    `json:"distanceKm"`
	DistanceEstimated bool       `json:"distanceEstimated"`
	IsPaid            bool       `json:"isPaid"`
	CreatedAt         time.Time  `json:"createdAt"`
	DeliveredAt       *time.Time `json:"deliveredAt,omitempty"`
}
