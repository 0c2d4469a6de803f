package repository

import (
	"context"

	"foodswipe-order-service/src/pkg/databases/mysql"

	"github.com/jmoiron/sqlx"
)

// TxManager wraps one all-or-nothing database transaction around fn.
// Settlement spans order, wallets and COD ledger; a failure anywhere rolls
// every write back so a retry re-attempts the whole thing.
type TxManager struct {
	DB mysql.DBInterface
}

func NewTxManager(db mysql.DBInterface) *TxManager {
	return &TxManager{DB: db}
}

func (m *TxManager) RunInTx(ctx context.Context, fn func(q sqlx.ExtContext) error) error {
	db, err := m.DB.GetDB()
	if err != nil {
		return err
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
