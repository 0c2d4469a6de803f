package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"foodswipe-order-service/src/internal/entity"
	"foodswipe-order-service/src/internal/gateway/cache"
	"foodswipe-order-service/src/internal/gateway/geo"
	"foodswipe-order-service/src/internal/gateway/messaging"
	"foodswipe-order-service/src/internal/model"
	"foodswipe-order-service/src/internal/model/converter"
	"foodswipe-order-service/src/internal/pricing"
	httpError "foodswipe-order-service/src/pkg/http-error"
	"foodswipe-order-service/src/pkg/log"
	"foodswipe-order-service/src/pkg/token"
	"foodswipe-order-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/jmoiron/sqlx"
)

type OrderUseCase struct {
	Log         log.Log
	Validate    *validator.Validate
	Tx          TxRunner
	Orders      OrderStore
	Products    ProductStore
	Promos      PromoStore
	Restaurants RestaurantStore
	Riders      RiderStore
	Settings    *SettingsUseCase
	Settlement  *SettlementUseCase
	Producer    *messaging.OrderProducer
	Distance    geo.DistanceMeasurer
	Cache       *cache.RiderCache
	Tasks       *asynq.Client
}

func NewOrderUseCase(
	logger log.Log,
	validate *validator.Validate,
	tx TxRunner,
	orders OrderStore,
	products ProductStore,
	promos PromoStore,
	restaurants RestaurantStore,
	riders RiderStore,
	settings *SettingsUseCase,
	settlement *SettlementUseCase,
	producer *messaging.OrderProducer,
	distance geo.DistanceMeasurer,
	riderCache *cache.RiderCache,
	tasks *asynq.Client,
) *OrderUseCase {
	return &OrderUseCase{
		Log:         logger,
		Validate:    validate,
		Tx:          tx,
		Orders:      orders,
		Products:    products,
		Promos:      promos,
		Restaurants: restaurants,
		Riders:      riders,
		Settings:    settings,
		Settlement:  settlement,
		Producer:    producer,
		Distance:    distance,
		Cache:       riderCache,
		Tasks:       tasks,
	}
}

// CreateOrder reserves stock and persists the order with a provisional quote.
// The quote is informational; the authoritative split runs at delivery.
func (c *OrderUseCase) CreateOrder(ctx context.Context, request *model.CreateOrderRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("order-usecase", errObj.Message, "CreateOrder", utils.ConvertString(request))
		return result
	}

	settings, err := c.Settings.Get(ctx)
	if err != nil {
		errObj := httpError.NewServiceUnavailable()
		errObj.Message = fmt.Sprintf("settings unavailable: %v", err)
		result.Error = errObj
		return result
	}
	if settings.MaintenanceMode {
		errObj := httpError.NewServiceUnavailable()
		errObj.Message = "ordering is temporarily disabled for maintenance"
		result.Error = errObj
		return result
	}

	restaurant, err := c.Restaurants.FindByID(ctx, request.RestaurantID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("restaurant %s not found", request.RestaurantID)
		result.Error = errObj
		return result
	}
	if !restaurant.IsApproved {
		errObj := httpError.NewConflict()
		errObj.Message = fmt.Sprintf("restaurant %s is not accepting orders", request.RestaurantID)
		result.Error = errObj
		return result
	}

	productIDs := make([]string, 0, len(request.Items))
	for _, item := range request.Items {
		productIDs = append(productIDs, item.ProductID)
	}
	products, err := c.Products.FindByIDs(ctx, request.RestaurantID, productIDs)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed load products: %v", err)
		result.Error = errObj
		return result
	}
	productByID := make(map[string]entity.Product, len(products))
	for _, p := range products {
		productByID[p.ProductID] = p
	}

	var subtotal int64
	items := make([]entity.OrderItem, 0, len(request.Items))
	for _, item := range request.Items {
		product, ok := productByID[item.ProductID]
		if !ok {
			errObj := httpError.NewNotFound()
			errObj.Message = fmt.Sprintf("product %s not found in restaurant %s", item.ProductID, request.RestaurantID)
			result.Error = errObj
			return result
		}
		subtotal += product.Price * int64(item.Quantity)
		items = append(items, entity.OrderItem{
			ProductID: product.ProductID,
			Name:      product.Name,
			Quantity:  item.Quantity,
			UnitPrice: product.Price,
		})
	}

	var discount int64
	if request.PromoCode != "" {
		promo, err := c.Promos.FindByCode(ctx, request.PromoCode)
		if err != nil {
			errObj := httpError.NewBadRequest()
			errObj.Message = fmt.Sprintf("promo code %s is not valid", request.PromoCode)
			result.Error = errObj
			return result
		}
		if errObj := validatePromo(promo, subtotal); errObj != nil {
			result.Error = errObj
			return result
		}
		discount = promo.DiscountAmount
	}

	commissionRate := pricing.ResolveCommissionRate(nil,
		restaurant.CommissionRate, restaurant.BusinessTypeRate, settings.DefaultCommissionRate)

	cfg := PricingConfig(settings)
	distanceKm := c.measureDistance(ctx, restaurant, request.DeliveryLat, request.DeliveryLng)
	split := pricing.ComputeSplit(cfg, subtotal, commissionRate, distanceKm, discount,
		request.PaymentMethod == entity.PaymentMethodOnline)

	now := time.Now().UTC()
	order := &entity.Order{
		OrderID:         uuid.NewString(),
		CustomerID:      request.CustomerID,
		RestaurantID:    request.RestaurantID,
		Status:          entity.OrderStatusPending,
		PaymentMethod:   request.PaymentMethod,
		DeliveryLat:     request.DeliveryLat,
		DeliveryLng:     request.DeliveryLng,
		DeliveryAddress: request.DeliveryAddress,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if request.PromoCode != "" {
		order.PromoCode = &request.PromoCode
	}
	applySplit(order, split)
	// the quote is provisional, settlement flags stay clear until delivery
	order.IsPaid = false
	order.IsSettled = false

	err = c.Tx.RunInTx(ctx, func(q sqlx.ExtContext) error {
		for _, item := range request.Items {
			ok, err := c.Products.DecrementStock(ctx, q, item.ProductID, item.Quantity)
			if err != nil {
				return err
			}
			if !ok {
				errObj := httpError.NewConflict()
				errObj.Message = fmt.Sprintf("insufficient stock for product %s", item.ProductID)
				return errObj
			}
		}

		if err := c.Orders.Insert(ctx, q, order); err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = order.OrderID
		}
		if err := c.Orders.InsertItems(ctx, q, items); err != nil {
			return err
		}
		return c.Orders.InsertStatusHistory(ctx, q, &entity.OrderStatusHistory{
			OrderID:   order.OrderID,
			ToStatus:  entity.OrderStatusPending,
			ActorID:   request.CustomerID,
			ActorRole: token.RoleCustomer,
			Note:      "order created",
			CreatedAt: now,
		})
	})
	if err != nil {
		if commonErr, ok := err.(*httpError.CommonError); ok {
			result.Error = commonErr
			return result
		}
		c.Log.Error("order-usecase", fmt.Sprintf("failed create order: %v", err), "CreateOrder", utils.ConvertString(request))
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed create order: %v", err)
		result.Error = errObj
		return result
	}

	if err := c.Producer.SendCreated(converter.OrderToCreatedEvent(order)); err != nil {
		c.Log.Error("order-usecase", fmt.Sprintf("failed publish order created event: %v", err), "CreateOrder", order.OrderID)
	}

	result.Data = converter.OrderToResponse(order)
	return result
}

// UpdateOrderStatus drives the forward state machine. The status write is
// guarded on the status the caller observed; losing that race returns a
// retryable conflict rather than silently overwriting.
func (c *OrderUseCase) UpdateOrderStatus(ctx context.Context, request *model.UpdateOrderStatusRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	order, err := c.Orders.FindByID(ctx, request.OrderID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("order %s not found", request.OrderID)
		result.Error = errObj
		return result
	}

	if errObj := c.authorizeTransition(order, request); errObj != nil {
		result.Error = errObj
		return result
	}

	from := order.Status
	if !entity.CanTransition(from, request.NewStatus) {
		errObj := httpError.NewConflict()
		errObj.Message = fmt.Sprintf("cannot transition order from %s to %s", from, request.NewStatus)
		result.Error = errObj
		return result
	}

	err = c.Tx.RunInTx(ctx, func(q sqlx.ExtContext) error {
		ok, err := c.Orders.UpdateStatus(ctx, q, order.OrderID, from, request.NewStatus)
		if err != nil {
			return err
		}
		if !ok {
			return httpError.NewConflictingUpdate()
		}

		if err := c.Orders.InsertStatusHistory(ctx, q, &entity.OrderStatusHistory{
			OrderID:    order.OrderID,
			FromStatus: from,
			ToStatus:   request.NewStatus,
			ActorID:    request.ActorID,
			ActorRole:  request.ActorRole,
			Note:       request.Reason,
			CreatedAt:  time.Now().UTC(),
		}); err != nil {
			return err
		}

		// settlement rides the same transaction as the delivered write:
		// either both commit or neither does
		if request.NewStatus == entity.OrderStatusDelivered {
			return c.Settlement.SettleOrder(ctx, q, order.OrderID)
		}
		return nil
	})
	if err != nil {
		if commonErr, ok := err.(*httpError.CommonError); ok {
			result.Error = commonErr
			return result
		}
		c.Log.Error("order-usecase", fmt.Sprintf("failed update status: %v", err), "UpdateOrderStatus", order.OrderID)
		errObj := httpError.NewSettlementError()
		if request.NewStatus != entity.OrderStatusDelivered {
			errObj = httpError.NewInternalServerError()
		}
		errObj.Message = fmt.Sprintf("failed update status: %v", err)
		result.Error = errObj
		return result
	}

	order.Status = request.NewStatus
	if err := c.Producer.SendStatus(converter.OrderToStatusEvent(order, from, request)); err != nil {
		c.Log.Error("order-usecase", fmt.Sprintf("failed publish status event: %v", err), "UpdateOrderStatus", order.OrderID)
	}

	if request.NewStatus == entity.OrderStatusReady && order.RiderID == nil {
		c.enqueueBroadcast(order.OrderID)
	}

	result.Data = converter.OrderToResponse(order)
	return result
}

func (c *OrderUseCase) authorizeTransition(order *entity.Order, request *model.UpdateOrderStatusRequest) *httpError.CommonError {
	switch request.ActorRole {
	case token.RoleAdmin:
		return nil
	case token.RoleRestaurant:
		if request.ActorID != order.RestaurantID {
			errObj := httpError.NewConflict()
			errObj.Message = "order belongs to another restaurant"
			return errObj
		}
		switch request.NewStatus {
		case entity.OrderStatusConfirmed, entity.OrderStatusPreparing, entity.OrderStatusReady:
			return nil
		}
	case token.RoleRider:
		if order.RiderID == nil || *order.RiderID != request.ActorID {
			errObj := httpError.NewConflict()
			errObj.Message = "order is not assigned to this rider"
			return errObj
		}
		if entity.RiderCanSet(request.NewStatus) {
			return nil
		}
	}
	errObj := httpError.NewConflict()
	errObj.Message = fmt.Sprintf("role %s may not set status %s", request.ActorRole, request.NewStatus)
	return errObj
}

// AssignRider binds a rider to the order. The DB guard (rider_id IS NULL, or
// equal to the previous rider on reassignment) makes concurrent accepts
// first-writer-wins.
func (c *OrderUseCase) AssignRider(ctx context.Context, request *model.AssignRiderRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	order, err := c.Orders.FindByID(ctx, request.OrderID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("order %s not found", request.OrderID)
		result.Error = errObj
		return result
	}
	if entity.IsTerminalStatus(order.Status) {
		errObj := httpError.NewConflict()
		errObj.Message = fmt.Sprintf("order %s is already %s", order.OrderID, order.Status)
		result.Error = errObj
		return result
	}

	// cheap mirror check first; the DB row below stays authoritative
	if c.Cache.IsOverdue(ctx, request.RiderID) {
		errObj := httpError.NewConflict()
		errObj.Message = fmt.Sprintf("rider %s must settle collected cash before taking new orders", request.RiderID)
		result.Error = errObj
		return result
	}

	rider, err := c.Riders.FindByID(ctx, request.RiderID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("rider %s not found", request.RiderID)
		result.Error = errObj
		return result
	}
	if rider.SettlementStatus == entity.RiderSettlementOverdue {
		errObj := httpError.NewConflict()
		errObj.Message = fmt.Sprintf("rider %s must settle collected cash before taking new orders", rider.RiderID)
		result.Error = errObj
		return result
	}
	if rider.CurrentOrderID != nil && *rider.CurrentOrderID != order.OrderID {
		errObj := httpError.NewConflict()
		errObj.Message = fmt.Sprintf("rider %s is already on order %s", rider.RiderID, *rider.CurrentOrderID)
		result.Error = errObj
		return result
	}

	var prevRider string
	err = c.Tx.RunInTx(ctx, func(q sqlx.ExtContext) error {
		var ok bool
		var err error
		if request.Reassign && order.RiderID != nil {
			prevRider = *order.RiderID
			ok, err = c.Orders.ReassignRider(ctx, q, order.OrderID, request.RiderID, prevRider)
			if err == nil && ok {
				err = c.Riders.SetCurrentOrder(ctx, q, prevRider, nil)
			}
		} else {
			ok, err = c.Orders.AssignRider(ctx, q, order.OrderID, request.RiderID)
		}
		if err != nil {
			return err
		}
		if !ok {
			return httpError.NewConflictingUpdate()
		}

		if err := c.Riders.SetCurrentOrder(ctx, q, request.RiderID, &order.OrderID); err != nil {
			return err
		}
		return c.Orders.InsertStatusHistory(ctx, q, &entity.OrderStatusHistory{
			OrderID:   order.OrderID,
			ToStatus:  order.Status,
			ActorID:   request.ActorID,
			ActorRole: request.ActorRole,
			Note:      fmt.Sprintf("rider %s assigned", request.RiderID),
			CreatedAt: time.Now().UTC(),
		})
	})
	if err != nil {
		if commonErr, ok := err.(*httpError.CommonError); ok {
			result.Error = commonErr
			return result
		}
		c.Log.Error("order-usecase", fmt.Sprintf("failed assign rider: %v", err), "AssignRider", order.OrderID)
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed assign rider: %v", err)
		result.Error = errObj
		return result
	}

	if err := c.Producer.SendRiderAssigned(&model.RiderAssignedEvent{
		OrderID:    order.OrderID,
		RiderID:    request.RiderID,
		Reassigned: request.Reassign,
		PrevRider:  prevRider,
	}); err != nil {
		c.Log.Error("order-usecase", fmt.Sprintf("failed publish rider assigned event: %v", err), "AssignRider", order.OrderID)
	}

	order.RiderID = &request.RiderID
	result.Data = converter.OrderToResponse(order)
	return result
}

// CancelOrder moves a non-delivered order to CANCELLED and puts reserved
// stock back.
func (c *OrderUseCase) CancelOrder(ctx context.Context, request *model.CancelOrderRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	order, err := c.Orders.FindByID(ctx, request.OrderID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("order %s not found", request.OrderID)
		result.Error = errObj
		return result
	}
	if errObj := c.authorizeCancel(order, request); errObj != nil {
		result.Error = errObj
		return result
	}
	from := order.Status
	if !entity.CanTransition(from, entity.OrderStatusCancelled) {
		errObj := httpError.NewConflict()
		errObj.Message = fmt.Sprintf("cannot cancel an order in status %s", from)
		result.Error = errObj
		return result
	}

	items, err := c.Orders.ListItems(ctx, order.OrderID)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed load order items: %v", err)
		result.Error = errObj
		return result
	}

	err = c.Tx.RunInTx(ctx, func(q sqlx.ExtContext) error {
		ok, err := c.Orders.UpdateStatus(ctx, q, order.OrderID, from, entity.OrderStatusCancelled)
		if err != nil {
			return err
		}
		if !ok {
			return httpError.NewConflictingUpdate()
		}

		for _, item := range items {
			if err := c.Products.RestoreStock(ctx, q, item.ProductID, item.Quantity); err != nil {
				return err
			}
		}

		if order.RiderID != nil {
			if err := c.Riders.SetCurrentOrder(ctx, q, *order.RiderID, nil); err != nil {
				return err
			}
		}
		return c.Orders.InsertStatusHistory(ctx, q, &entity.OrderStatusHistory{
			OrderID:    order.OrderID,
			FromStatus: from,
			ToStatus:   entity.OrderStatusCancelled,
			ActorID:    request.ActorID,
			ActorRole:  request.ActorRole,
			Note:       request.Reason,
			CreatedAt:  time.Now().UTC(),
		})
	})
	if err != nil {
		if commonErr, ok := err.(*httpError.CommonError); ok {
			result.Error = commonErr
			return result
		}
		c.Log.Error("order-usecase", fmt.Sprintf("failed cancel order: %v", err), "CancelOrder", order.OrderID)
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed cancel order: %v", err)
		result.Error = errObj
		return result
	}

	order.Status = entity.OrderStatusCancelled
	if err := c.Producer.SendStatus(&model.OrderStatusEvent{
		OrderID:    order.OrderID,
		FromStatus: from,
		ToStatus:   entity.OrderStatusCancelled,
		ActorID:    request.ActorID,
		ActorRole:  request.ActorRole,
		Reason:     request.Reason,
	}); err != nil {
		c.Log.Error("order-usecase", fmt.Sprintf("failed publish status event: %v", err), "CancelOrder", order.OrderID)
	}

	result.Data = converter.OrderToResponse(order)
	return result
}

func validatePromo(promo *entity.Promo, subtotal int64) *httpError.CommonError {
	now := time.Now().UTC()
	switch {
	case !promo.IsActive:
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("promo code %s is no longer active", promo.Code)
		return errObj
	case promo.StartsAt != nil && now.Before(*promo.StartsAt):
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("promo code %s has not started yet", promo.Code)
		return errObj
	case promo.ExpiresAt != nil && now.After(*promo.ExpiresAt):
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("promo code %s has expired", promo.Code)
		return errObj
	case subtotal < promo.MinSubtotal:
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("promo code %s requires a minimum subtotal of %d", promo.Code, promo.MinSubtotal)
		return errObj
	}
	return nil
}

func (c *OrderUseCase) authorizeCancel(order *entity.Order, request *model.CancelOrderRequest) *httpError.CommonError {
	switch request.ActorRole {
	case token.RoleAdmin:
		return nil
	case token.RoleRestaurant:
		if request.ActorID == order.RestaurantID {
			return nil
		}
		errObj := httpError.NewConflict()
		errObj.Message = "order belongs to another restaurant"
		return errObj
	case token.RoleCustomer:
		if request.ActorID != order.CustomerID {
			errObj := httpError.NewConflict()
			errObj.Message = "order belongs to another customer"
			return errObj
		}
		// customers can only back out before the kitchen starts
		switch order.Status {
		case entity.OrderStatusPending, entity.OrderStatusConfirmed:
			return nil
		}
		errObj := httpError.NewConflict()
		errObj.Message = fmt.Sprintf("customers cannot cancel an order in status %s", order.Status)
		return errObj
	}
	errObj := httpError.NewConflict()
	errObj.Message = fmt.Sprintf("role %s may not cancel orders", request.ActorRole)
	return errObj
}

// RateRider records the customer's one-time rating after delivery.
func (c *OrderUseCase) RateRider(ctx context.Context, request *model.RateRiderRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	order, err := c.Orders.FindByID(ctx, request.OrderID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("order %s not found", request.OrderID)
		result.Error = errObj
		return result
	}
	if order.CustomerID != request.CustomerID {
		errObj := httpError.NewConflict()
		errObj.Message = "order belongs to another customer"
		result.Error = errObj
		return result
	}
	if order.Status != entity.OrderStatusDelivered || order.RiderID == nil {
		errObj := httpError.NewConflict()
		errObj.Message = "only delivered orders can be rated"
		result.Error = errObj
		return result
	}

	ok, err := c.Orders.SetRating(ctx, order.OrderID, request.Rating, request.Review)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed save rating: %v", err)
		result.Error = errObj
		return result
	}
	if !ok {
		errObj := httpError.NewConflict()
		errObj.Message = fmt.Sprintf("order %s is already rated", order.OrderID)
		result.Error = errObj
		return result
	}

	if err := c.Riders.AddRating(ctx, *order.RiderID, request.Rating); err != nil {
		c.Log.Error("order-usecase", fmt.Sprintf("failed update rider rating aggregate: %v", err), "RateRider", *order.RiderID)
	}

	result.Data = map[string]any{"orderId": order.OrderID, "rating": request.Rating}
	return result
}

func (c *OrderUseCase) GetOrder(ctx context.Context, orderID string) utils.Result {
	var result utils.Result

	order, err := c.Orders.FindByID(ctx, orderID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("order %s not found", orderID)
		result.Error = errObj
		return result
	}

	result.Data = converter.OrderToResponse(order)
	return result
}

func (c *OrderUseCase) ListRestaurantOrders(ctx context.Context, restaurantID string, limit int) utils.Result {
	var result utils.Result

	orders, err := c.Orders.ListByRestaurant(ctx, restaurantID, limit)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed list orders: %v", err)
		result.Error = errObj
		return result
	}

	responses := make([]*model.OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, converter.OrderToResponse(&orders[i]))
	}
	result.Data = responses
	return result
}

func (c *OrderUseCase) ListRiderOrders(ctx context.Context, riderID string, limit int) utils.Result {
	var result utils.Result

	orders, err := c.Orders.ListByRider(ctx, riderID, limit)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed list orders: %v", err)
		result.Error = errObj
		return result
	}

	responses := make([]*model.OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, converter.OrderToResponse(&orders[i]))
	}
	result.Data = responses
	return result
}

func (c *OrderUseCase) enqueueBroadcast(orderID string) {
	task, err := model.NewBroadcastAvailableTask(orderID)
	if err != nil {
		c.Log.Error("order-usecase", fmt.Sprintf("failed build broadcast task: %v", err), "enqueueBroadcast", orderID)
		return
	}
	if _, err := c.Tasks.Enqueue(task, asynq.MaxRetry(5), asynq.Timeout(30*time.Second)); err != nil {
		c.Log.Error("order-usecase", fmt.Sprintf("failed enqueue broadcast task: %v", err), "enqueueBroadcast", orderID)
	}
}

// HandleBroadcastAvailable is the asynq handler that fans an unassigned
// Ready order out to the rider pool with a current pay estimate.
func (c *OrderUseCase) HandleBroadcastAvailable(ctx context.Context, task *asynq.Task) error {
	var payload model.BroadcastAvailablePayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal broadcast payload: %w", err)
	}

	order, err := c.Orders.FindByID(ctx, payload.OrderID)
	if err != nil {
		return fmt.Errorf("load order %s: %w", payload.OrderID, err)
	}
	if order.Status != entity.OrderStatusReady || order.RiderID != nil {
		c.Log.Info("order-usecase", "order no longer broadcastable, skipping", "HandleBroadcastAvailable", order.OrderID)
		return nil
	}

	// nobody to reach yet; fail the task so asynq retries later
	if online, err := c.Cache.OnlineCount(ctx); err == nil && online == 0 {
		return fmt.Errorf("no riders online for order %s", order.OrderID)
	}

	restaurant, err := c.Restaurants.FindByID(ctx, order.RestaurantID)
	if err != nil {
		return fmt.Errorf("load restaurant %s: %w", order.RestaurantID, err)
	}
	settings, err := c.Settings.Get(ctx)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	cfg := PricingConfig(settings)

	distanceKm := c.measureDistance(ctx, restaurant, order.DeliveryLat, order.DeliveryLng)
	distanceKm, _ = pricing.NormalizeDistance(cfg, distanceKm)
	earning := pricing.EstimateEarning(cfg, distanceKm)

	return c.Producer.SendAvailable(&model.OrderAvailableEvent{
		OrderID:       order.OrderID,
		RestaurantID:  restaurant.RestaurantID,
		RestaurantLat: restaurant.Lat,
		RestaurantLng: restaurant.Lng,
		DeliveryLat:   order.DeliveryLat,
		DeliveryLng:   order.DeliveryLng,
		PaymentMethod: order.PaymentMethod,
		EstimatedPay:  earning.Net,
		EstimatedKm:   distanceKm,
	})
}

// SetRiderOnline adds the rider to the broadcast pool.
func (c *OrderUseCase) SetRiderOnline(ctx context.Context, riderID string) utils.Result {
	var result utils.Result

	if err := c.Cache.SetOnline(ctx, riderID); err != nil {
		errObj := httpError.NewServiceUnavailable()
		errObj.Message = fmt.Sprintf("failed set rider online: %v", err)
		result.Error = errObj
		return result
	}

	result.Data = map[string]any{"riderId": riderID, "online": true}
	return result
}

func (c *OrderUseCase) SetRiderOffline(ctx context.Context, riderID string) utils.Result {
	var result utils.Result

	if err := c.Cache.SetOffline(ctx, riderID); err != nil {
		errObj := httpError.NewServiceUnavailable()
		errObj.Message = fmt.Sprintf("failed set rider offline: %v", err)
		result.Error = errObj
		return result
	}

	result.Data = map[string]any{"riderId": riderID, "online": false}
	return result
}

func (c *OrderUseCase) measureDistance(ctx context.Context, restaurant *entity.Restaurant, lat, lng float64) float64 {
	km, err := c.Distance.Measure(ctx, restaurant.Lat, restaurant.Lng, lat, lng)
	if err != nil {
		c.Log.Warn("order-usecase",
			fmt.Sprintf("distance measurement failed, falling back to default distance: %v", err),
			"measureDistance", restaurant.RestaurantID)
		return 0
	}
	return km
}
