package repository

import (
	"context"

	"foodswipe-order-service/src/internal/entity"
	"foodswipe-order-service/src/pkg/databases/mysql"

	"github.com/jmoiron/sqlx"
)

type RiderRepository struct {
	DB mysql.DBInterface
}

func NewRiderRepository(db mysql.DBInterface) *RiderRepository {
	return &RiderRepository{DB: db}
}

const riderColumns = `
	rider_id, full_name, cod_balance, earnings_balance, settlement_status,
	current_order_id, rating_total, rating_count, created_at, updated_at`

func (r *RiderRepository) FindByID(ctx context.Context, id string) (*entity.Rider, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var rider entity.Rider
	query := `SELECT ` + riderColumns + ` FROM riders WHERE rider_id = ?`
	if err := db.GetContext(ctx, &rider, query, id); err != nil {
		return nil, err
	}
	return &rider, nil
}

func (r *RiderRepository) FindByIDForUpdate(ctx context.Context, q sqlx.ExtContext, id string) (*entity.Rider, error) {
	var rider entity.Rider
	query := `SELECT ` + riderColumns + ` FROM riders WHERE rider_id = ? FOR UPDATE`
	if err := sqlx.GetContext(ctx, q, &rider, query, id); err != nil {
		return nil, err
	}
	return &rider, nil
}

func (r *RiderRepository) SetCurrentOrder(ctx context.Context, q sqlx.ExtContext, riderID string, orderID *string) error {
	query := `UPDATE riders SET current_order_id = ?, updated_at = NOW() WHERE rider_id = ?`
	_, err := q.ExecContext(ctx, query, orderID, riderID)
	return err
}

// AccrueCOD adds the cash a rider collected and the earning they are owed.
func (r *RiderRepository) AccrueCOD(ctx context.Context, q sqlx.ExtContext, riderID string, cash, earning int64) error {
	query := `
		UPDATE riders SET
			cod_balance = cod_balance + ?,
			earnings_balance = earnings_balance + ?,
			updated_at = NOW()
		WHERE rider_id = ?`
	_, err := q.ExecContext(ctx, query, cash, earning, riderID)
	return err
}

// SettleCOD debits the running balances, floored at zero.
func (r *RiderRepository) SettleCOD(ctx context.Context, q sqlx.ExtContext, riderID string, amountCollected, earningsPaid int64) error {
	query := `
		UPDATE riders SET
			cod_balance = GREATEST(0, cod_balance - ?),
			earnings_balance = GREATEST(0, earnings_balance - ?),
			updated_at = NOW()
		WHERE rider_id = ?`
	_, err := q.ExecContext(ctx, query, amountCollected, earningsPaid, riderID)
	return err
}

func (r *RiderRepository) SetSettlementStatus(ctx context.Context, q sqlx.ExtContext, riderID, status string) error {
	query := `UPDATE riders SET settlement_status = ?, updated_at = NOW() WHERE rider_id = ?`
	_, err := q.ExecContext(ctx, query, status, riderID)
	return err
}

func (r *RiderRepository) AddRating(ctx context.Context, riderID string, rating int) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	query := `
		UPDATE riders SET
			rating_total = rating_total + ?,
			rating_count = rating_count + 1,
			updated_at = NOW()
		WHERE rider_id = ?`
	_, err = db.ExecContext(ctx, query, rating, riderID)
	return err
}
