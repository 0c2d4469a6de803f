package repository

import (
	"context"

	"foodswipe-order-service/src/internal/entity"
	"foodswipe-order-service/src/pkg/databases/mysql"

	"github.com/jmoiron/sqlx"
)

type PayoutRepository struct {
	DB mysql.DBInterface
}

func NewPayoutRepository(db mysql.DBInterface) *PayoutRepository {
	return &PayoutRepository{DB: db}
}

func (r *PayoutRepository) Insert(ctx context.Context, q sqlx.ExtContext, p *entity.Payout) error {
	query := `
		INSERT INTO payouts (payout_id, entity_type, entity_id, amount, status, processed_by, created_at)
		VALUES (?, ?, ?, ?, ?, ?, NOW())`

	_, err := q.ExecContext(ctx, query,
		p.PayoutID, p.EntityType, p.EntityID, p.Amount, p.Status, p.ProcessedBy)
	return err
}

func (r *PayoutRepository) FindByID(ctx context.Context, payoutID string) (*entity.Payout, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var payout entity.Payout
	query := `
		SELECT payout_id, entity_type, entity_id, amount, status, bank_ref,
		       processed_by, processed_at, created_at
		FROM payouts WHERE payout_id = ?`

	if err := db.GetContext(ctx, &payout, query, payoutID); err != nil {
		return nil, err
	}
	return &payout, nil
}

// MarkPaid terminalizes a pending payout; the status guard makes the
// operation run at most once.
func (r *PayoutRepository) MarkPaid(ctx context.Context, payoutID, bankRef, processedBy string) (bool, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return false, err
	}

	query := `
		UPDATE payouts SET status = ?, bank_ref = ?, processed_by = ?, processed_at = NOW()
		WHERE payout_id = ? AND status = ?`

	res, err := db.ExecContext(ctx, query,
		entity.PayoutStatusPaid, bankRef, processedBy, payoutID, entity.PayoutStatusPending)
	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	return rows == 1, err
}

func (r *PayoutRepository) SumPending(ctx context.Context) (int64, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return 0, err
	}

	var sum int64
	query := `SELECT COALESCE(SUM(amount), 0) FROM payouts WHERE status = ?`
	if err := db.GetContext(ctx, &sum, query, entity.PayoutStatusPending); err != nil {
		return 0, err
	}
	return sum, nil
}
