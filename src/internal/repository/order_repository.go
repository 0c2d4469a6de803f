package repository

import (
	"context"
	"time"

	"foodswipe-order-service/src/internal/entity"
	"foodswipe-order-service/src/pkg/databases/mysql"

	"github.com/jmoiron/sqlx"
)

type OrderRepository struct {
	DB mysql.DBInterface
}

func NewOrderRepository(db mysql.DBInterface) *OrderRepository {
	return &OrderRepository{DB: db}
}

const orderColumns = `
	order_id, customer_id, restaurant_id, rider_id, status, payment_method,
	delivery_lat, delivery_lng, delivery_address,
	subtotal, delivery_fee, service_fee, tax, discount, gateway_fee,
	commission_rate, commission_amount, restaurant_earning,
	rider_gross_earning, rider_net_earning, platform_net_profit, total_price,
	distance_km, distance_estimated, promo_code, is_paid, is_settled,
	rider_rating, rider_review,
	created_at, updated_at, rider_accepted_at, picked_up_at, delivered_at, cancelled_at`

func (r *OrderRepository) Insert(ctx context.Context, q sqlx.ExtContext, order *entity.Order) error {
	query := `
		INSERT INTO orders (
			order_id, customer_id, restaurant_id, status, payment_method,
			delivery_lat, delivery_lng, delivery_address,
			subtotal, delivery_fee, service_fee, tax, discount, gateway_fee,
			commission_rate, commission_amount, restaurant_earning,
			rider_gross_earning, rider_net_earning, platform_net_profit, total_price,
			distance_km, distance_estimated, promo_code, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW(), NOW())`

	_, err := q.ExecContext(ctx, query,
		order.OrderID, order.CustomerID, order.RestaurantID, order.Status, order.PaymentMethod,
		order.DeliveryLat, order.DeliveryLng, order.DeliveryAddress,
		order.Subtotal, order.DeliveryFee, order.ServiceFee, order.Tax, order.Discount, order.GatewayFee,
		order.CommissionRate, order.CommissionAmount, order.RestaurantEarning,
		order.RiderGrossEarning, order.RiderNetEarning, order.PlatformNetProfit, order.TotalPrice,
		order.DistanceKm, order.DistanceEstimated, order.PromoCode,
	)
	return err
}

func (r *OrderRepository) InsertItems(ctx context.Context, q sqlx.ExtContext, items []entity.OrderItem) error {
	query := `INSERT INTO order_items (order_id, product_id, name, quantity, unit_price) VALUES (?, ?, ?, ?, ?)`
	for _, item := range items {
		if _, err := q.ExecContext(ctx, query,
			item.OrderID, item.ProductID, item.Name, item.Quantity, item.UnitPrice); err != nil {
			return err
		}
	}
	return nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var order entity.Order
	query := `SELECT ` + orderColumns + ` FROM orders WHERE order_id = ?`
	if err := db.GetContext(ctx, &order, query, id); err != nil {
		return nil, err
	}
	return &order, nil
}

// FindByIDForUpdate locks the order row inside the settlement transaction.
func (r *OrderRepository) FindByIDForUpdate(ctx context.Context, q sqlx.ExtContext, id string) (*entity.Order, error) {
	var order entity.Order
	query := `SELECT ` + orderColumns + ` FROM orders WHERE order_id = ? FOR UPDATE`
	if err := sqlx.GetContext(ctx, q, &order, query, id); err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) ListItems(ctx context.Context, orderID string) ([]entity.OrderItem, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var items []entity.OrderItem
	query := `SELECT id, order_id, product_id, name, quantity, unit_price FROM order_items WHERE order_id = ?`
	if err := db.SelectContext(ctx, &items, query, orderID); err != nil {
		return nil, err
	}
	return items, nil
}

// statusStampColumns maps a target status to the timestamp column it stamps.
var statusStampColumns = map[string]string{
	entity.OrderStatusPickedUp:  "picked_up_at",
	entity.OrderStatusDelivered: "delivered_at",
	entity.OrderStatusCancelled: "cancelled_at",
	entity.OrderStatusRefunded:  "cancelled_at",
}

// UpdateStatus performs the guarded conditional write that makes per-order
// transitions linearizable: the row is only touched if it is still in the
// expected `from` status. Returns false when a concurrent writer won.
func (r *OrderRepository) UpdateStatus(ctx context.Context, q sqlx.ExtContext, orderID, from, to string) (bool, error) {
	query := `UPDATE orders SET status = ?, updated_at = NOW()`
	if col, ok := statusStampColumns[to]; ok {
		query += `, ` + col + ` = NOW()`
	}
	query += ` WHERE order_id = ? AND status = ?`

	res, err := q.ExecContext(ctx, query, to, orderID, from)
	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows == 1, nil
}

// AssignRider binds a rider to an unassigned order. Guarded on
// rider_id IS NULL so two riders cannot grab the same order.
func (r *OrderRepository) AssignRider(ctx context.Context, q sqlx.ExtContext, orderID, riderID string) (bool, error) {
	query := `
		UPDATE orders SET rider_id = ?, rider_accepted_at = NOW(), updated_at = NOW()
		WHERE order_id = ? AND rider_id IS NULL
		  AND status NOT IN (?, ?, ?)`

	res, err := q.ExecContext(ctx, query, riderID, orderID,
		entity.OrderStatusDelivered, entity.OrderStatusCancelled, entity.OrderStatusRefunded)
	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	return rows == 1, err
}

// ReassignRider swaps the bound rider, guarded on the previous assignment.
func (r *OrderRepository) ReassignRider(ctx context.Context, q sqlx.ExtContext, orderID, riderID, prevRiderID string) (bool, error) {
	query := `
		UPDATE orders SET rider_id = ?, rider_accepted_at = NOW(), updated_at = NOW()
		WHERE order_id = ? AND rider_id = ?
		  AND status NOT IN (?, ?, ?)`

	res, err := q.ExecContext(ctx, query, riderID, orderID, prevRiderID,
		entity.OrderStatusDelivered, entity.OrderStatusCancelled, entity.OrderStatusRefunded)
	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	return rows == 1, err
}

// ApplySettlement writes the authoritative money split and flips the
// idempotency flags. Monetary fields are immutable once is_paid is set, so
// the guard refuses a second write.
func (r *OrderRepository) ApplySettlement(ctx context.Context, q sqlx.ExtContext, order *entity.Order) (bool, error) {
	query := `
		UPDATE orders SET
			subtotal = ?, delivery_fee = ?, service_fee = ?, tax = ?, discount = ?,
			gateway_fee = ?, commission_rate = ?, commission_amount = ?,
			restaurant_earning = ?, rider_gross_earning = ?, rider_net_earning = ?,
			platform_net_profit = ?, total_price = ?,
			distance_km = ?, distance_estimated = ?,
			is_paid = TRUE, is_settled = TRUE, updated_at = NOW()
		WHERE order_id = ? AND is_paid = FALSE`

	res, err := q.ExecContext(ctx, query,
		order.Subtotal, order.DeliveryFee, order.ServiceFee, order.Tax, order.Discount,
		order.GatewayFee, order.CommissionRate, order.CommissionAmount,
		order.RestaurantEarning, order.RiderGrossEarning, order.RiderNetEarning,
		order.PlatformNetProfit, order.TotalPrice,
		order.DistanceKm, order.DistanceEstimated,
		order.OrderID,
	)
	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	return rows == 1, err
}

// SetRating records the customer's rider rating, once, after delivery.
func (r *OrderRepository) SetRating(ctx context.Context, orderID string, rating int, review string) (bool, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return false, err
	}

	query := `
		UPDATE orders SET rider_rating = ?, rider_review = ?, updated_at = NOW()
		WHERE order_id = ? AND status = ? AND rider_rating IS NULL`

	res, err := db.ExecContext(ctx, query, rating, review, orderID, entity.OrderStatusDelivered)
	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	return rows == 1, err
}

func (r *OrderRepository) InsertStatusHistory(ctx context.Context, q sqlx.ExtContext, h *entity.OrderStatusHistory) error {
	query := `
		INSERT INTO order_status_history (order_id, from_status, to_status, actor_id, actor_role, note, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := q.ExecContext(ctx, query,
		h.OrderID, h.FromStatus, h.ToStatus, h.ActorID, h.ActorRole, h.Note, time.Now().UTC())
	return err
}

func (r *OrderRepository) ListByRestaurant(ctx context.Context, restaurantID string, limit int) ([]entity.Order, error) {
	return r.list(ctx, "restaurant_id", restaurantID, limit)
}

func (r *OrderRepository) ListByRider(ctx context.Context, riderID string, limit int) ([]entity.Order, error) {
	return r.list(ctx, "rider_id", riderID, limit)
}

func (r *OrderRepository) list(ctx context.Context, column, id string, limit int) ([]entity.Order, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var orders []entity.Order
	query := `SELECT ` + orderColumns + ` FROM orders WHERE ` + column + ` = ? ORDER BY created_at DESC LIMIT ?`
	if err := db.SelectContext(ctx, &orders, query, id, limit); err != nil {
		return nil, err
	}
	return orders, nil
}

// FinanceAggregates sums the settled-order money columns for the platform
// overview.
func (r *OrderRepository) FinanceAggregates(ctx context.Context) (volume, commission, deliveryFees, riderPay, profit, settled int64, err error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return
	}

	row := struct {
		Volume       int64 `db:"volume"`
		Commission   int64 `db:"commission"`
		DeliveryFees int64 `db:"delivery_fees"`
		RiderPay     int64 `db:"rider_pay"`
		Profit       int64 `db:"profit"`
		Settled      int64 `db:"settled"`
	}{}

	query := `
		SELECT
			COALESCE(SUM(total_price), 0)          AS volume,
			COALESCE(SUM(commission_amount), 0)    AS commission,
			COALESCE(SUM(delivery_fee), 0)         AS delivery_fees,
			COALESCE(SUM(rider_net_earning), 0)    AS rider_pay,
			COALESCE(SUM(platform_net_profit), 0)  AS profit,
			COUNT(*)                               AS settled
		FROM orders WHERE is_settled = TRUE`

	if err = db.GetContext(ctx, &row, query); err != nil {
		return
	}
	return row.Volume, row.Commission, row.DeliveryFees, row.RiderPay, row.Profit, row.Settled, nil
}
