package repository

import (
	"context"
	"fmt"

	"foodswipe-order-service/src/internal/entity"
	"foodswipe-order-service/src/pkg/databases/mysql"

	"github.com/jmoiron/sqlx"
)

type ProductRepository struct {
	DB mysql.DBInterface
}

func NewProductRepository(db mysql.DBInterface) *ProductRepository {
	return &ProductRepository{DB: db}
}

func (r *ProductRepository) FindByIDs(ctx context.Context, restaurantID string, ids []string) ([]entity.Product, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	query, args, err := sqlx.In(
		`SELECT product_id, restaurant_id, name, price, stock FROM products WHERE restaurant_id = ? AND product_id IN (?)`,
		restaurantID, ids)
	if err != nil {
		return nil, err
	}

	var products []entity.Product
	if err := db.SelectContext(ctx, &products, db.Rebind(query), args...); err != nil {
		return nil, err
	}
	return products, nil
}

// DecrementStock consumes stock atomically; the stock >= quantity guard
// rejects oversells under concurrent order creation.
func (r *ProductRepository) DecrementStock(ctx context.Context, q sqlx.ExtContext, productID string, quantity int) (bool, error) {
	query := `UPDATE products SET stock = stock - ? WHERE product_id = ? AND stock >= ?`

	res, err := q.ExecContext(ctx, query, quantity, productID, quantity)
	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	return rows == 1, err
}

// RestoreStock gives back what an order consumed when it is cancelled.
func (r *ProductRepository) RestoreStock(ctx context.Context, q sqlx.ExtContext, productID string, quantity int) error {
	query := `UPDATE products SET stock = stock + ? WHERE product_id = ?`

	res, err := q.ExecContext(ctx, query, quantity, productID)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows != 1 {
		return fmt.Errorf("product %s not found for stock restore", productID)
	}
	return nil
}
