package repository

import (
	"context"
	"time"

	"foodswipe-order-service/src/internal/entity"
	"foodswipe-order-service/src/pkg/databases/mysql"

	"github.com/jmoiron/sqlx"
)

type TransactionRepository struct {
	DB mysql.DBInterface
}

func NewTransactionRepository(db mysql.DBInterface) *TransactionRepository {
	return &TransactionRepository{DB: db}
}

// Insert appends a ledger entry. There is deliberately no update or delete.
func (r *TransactionRepository) Insert(ctx context.Context, q sqlx.ExtContext, txn *entity.Transaction) error {
	query := `
		INSERT INTO transactions (
			transaction_id, entity_type, entity_id, order_id, type,
			amount, balance_after, description, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := q.ExecContext(ctx, query,
		txn.TransactionID, txn.EntityType, txn.EntityID, txn.OrderID, txn.Type,
		txn.Amount, txn.BalanceAfter, txn.Description, time.Now().UTC())
	return err
}

// ListByEntity returns the ordered ledger for balance reconstruction.
func (r *TransactionRepository) ListByEntity(ctx context.Context, entityType, entityID string) ([]entity.Transaction, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var txns []entity.Transaction
	query := `
		SELECT transaction_id, entity_type, entity_id, order_id, type,
		       amount, balance_after, description, created_at
		FROM transactions
		WHERE entity_type = ? AND entity_id = ?
		ORDER BY created_at ASC, transaction_id ASC`

	if err := db.SelectContext(ctx, &txns, query, entityType, entityID); err != nil {
		return nil, err
	}
	return txns, nil
}

// SumByEntity reads through the caller's executor so a sum taken inside a
// transaction sees that transaction's own uncommitted appends.
func (r *TransactionRepository) SumByEntity(ctx context.Context, q sqlx.ExtContext, entityType, entityID string) (int64, error) {
	var sum int64
	query := `SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE entity_type = ? AND entity_id = ?`
	if err := sqlx.GetContext(ctx, q, &sum, query, entityType, entityID); err != nil {
		return 0, err
	}
	return sum, nil
}
