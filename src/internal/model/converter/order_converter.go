package converter

import (
	"foodswipe-order-service/src/internal/entity"
	"foodswipe-order-service/src/internal/model"
)

func OrderToResponse(order *entity.Order) *model.OrderResponse {
	return &model.OrderResponse{
		OrderID:           order.OrderID,
		CustomerID:        order.CustomerID,
		RestaurantID:      order.RestaurantID,
		RiderID:           order.RiderID,
		Status:            order.Status,
		PaymentMethod:     order.PaymentMethod,
		Subtotal:          order.Subtotal,
		DeliveryFee:       order.DeliveryFee,
		ServiceFee:        order.ServiceFee,
		Tax:               order.Tax,
		Discount:          order.Discount,
		TotalPrice:        order.TotalPrice,
		DistanceKm:        order.DistanceKm,
		DistanceEstimated: order.DistanceEstimated,
		IsPaid:            order.IsPaid,
		CreatedAt:         order.CreatedAt,
		DeliveredAt:       order.DeliveredAt,
	}
}

func OrderToCreatedEvent(order *entity.Order) *model.OrderCreatedEvent {
	return &model.OrderCreatedEvent{
		OrderID:       order.OrderID,
		CustomerID:    order.CustomerID,
		RestaurantID:  order.RestaurantID,
		PaymentMethod: order.PaymentMethod,
		TotalPrice:    order.TotalPrice,
		Status:        order.Status,
	}
}

func OrderToStatusEvent(order *entity.Order, from string, req *model.UpdateOrderStatusRequest) *model.OrderStatusEvent {
	return &model.OrderStatusEvent{
		OrderID:    order.OrderID,
		FromStatus: from,
		ToStatus:   order.Status,
		ActorID:    req.ActorID,
		ActorRole:  req.ActorRole,
		Reason:     req.Reason,
	}
}
