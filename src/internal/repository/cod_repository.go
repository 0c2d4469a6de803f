package repository

import (
	"context"
	"time"

	"foodswipe-order-service/src/internal/entity"
	"foodswipe-order-service/src/pkg/databases/mysql"

	"github.com/jmoiron/sqlx"
)

type CODRepository struct {
	DB mysql.DBInterface
}

func NewCODRepository(db mysql.DBInterface) *CODRepository {
	return &CODRepository{DB: db}
}

func (r *CODRepository) Insert(ctx context.Context, q sqlx.ExtContext, e *entity.CODLedgerEntry) error {
	query := `
		INSERT INTO cod_ledger (rider_id, order_id, cash_collected, rider_earning, amount_owed, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := q.ExecContext(ctx, query,
		e.RiderID, e.OrderID, e.CashCollected, e.RiderEarning, e.AmountOwed,
		entity.CODEntryPending, time.Now().UTC())
	return err
}

// MarkAllPaid flips every pending entry for the rider to paid, once. The
// status guard keeps the pending -> paid transition idempotent.
func (r *CODRepository) MarkAllPaid(ctx context.Context, q sqlx.ExtContext, riderID string, ref *string, settledAt time.Time) (int64, error) {
	query := `
		UPDATE cod_ledger SET status = ?, settled_at = ?, settlement_ref = ?
		WHERE rider_id = ? AND status = ?`

	res, err := q.ExecContext(ctx, query,
		entity.CODEntryPaid, settledAt, ref, riderID, entity.CODEntryPending)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *CODRepository) ListPendingByRider(ctx context.Context, riderID string) ([]entity.CODLedgerEntry, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var entries []entity.CODLedgerEntry
	query := `
		SELECT id, rider_id, order_id, cash_collected, rider_earning, amount_owed,
		       status, settled_at, settlement_ref, created_at
		FROM cod_ledger
		WHERE rider_id = ? AND status = ?
		ORDER BY created_at ASC`

	if err := db.SelectContext(ctx, &entries, query, riderID, entity.CODEntryPending); err != nil {
		return nil, err
	}
	return entries, nil
}

// SumOutstanding totals what all riders still owe the platform.
func (r *CODRepository) SumOutstanding(ctx context.Context) (int64, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return 0, err
	}

	var sum int64
	query := `SELECT COALESCE(SUM(amount_owed), 0) FROM cod_ledger WHERE status = ?`
	if err := db.GetContext(ctx, &sum, query, entity.CODEntryPending); err != nil {
		return 0, err
	}
	return sum, nil
}
