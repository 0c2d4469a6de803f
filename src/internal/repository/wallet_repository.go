package repository

import (
	"context"
	"database/sql"
	"errors"

	"foodswipe-order-service/src/internal/entity"
	"foodswipe-order-service/src/pkg/databases/mysql"

	"github.com/jmoiron/sqlx"
)

type WalletRepository struct {
	DB mysql.DBInterface
}

func NewWalletRepository(db mysql.DBInterface) *WalletRepository {
	return &WalletRepository{DB: db}
}

const restaurantWalletColumns = `
	restaurant_id, available_balance, pending_payout, total_earnings,
	total_commission_collected, on_hold_amount, last_payout_date, updated_at`

const riderWalletColumns = `
	rider_id, total_earnings, available_withdraw, cash_collected,
	cash_to_deposit, delivery_earnings, bonuses, penalties,
	last_withdraw_date, updated_at`

// GetRestaurantWalletForUpdate loads the wallet row under a row lock,
// creating the zeroed row lazily on first use. The lock serializes wallet
// mutations for the same restaurant.
func (r *WalletRepository) GetRestaurantWalletForUpdate(ctx context.Context, q sqlx.ExtContext, restaurantID string) (*entity.RestaurantWallet, error) {
	var wallet entity.RestaurantWallet
	query := `SELECT ` + restaurantWalletColumns + ` FROM restaurant_wallets WHERE restaurant_id = ? FOR UPDATE`

	err := sqlx.GetContext(ctx, q, &wallet, query, restaurantID)
	if errors.Is(err, sql.ErrNoRows) {
		if _, err := q.ExecContext(ctx,
			`INSERT INTO restaurant_wallets (restaurant_id, updated_at) VALUES (?, NOW())`, restaurantID); err != nil {
			return nil, err
		}
		err = sqlx.GetContext(ctx, q, &wallet, query, restaurantID)
	}
	if err != nil {
		return nil, err
	}
	return &wallet, nil
}

func (r *WalletRepository) SaveRestaurantWallet(ctx context.Context, q sqlx.ExtContext, w *entity.RestaurantWallet) error {
	query := `
		UPDATE restaurant_wallets SET
			available_balance = ?, pending_payout = ?, total_earnings = ?,
			total_commission_collected = ?, on_hold_amount = ?,
			last_payout_date = ?, updated_at = NOW()
		WHERE restaurant_id = ?`

	_, err := q.ExecContext(ctx, query,
		w.AvailableBalance, w.PendingPayout, w.TotalEarnings,
		w.TotalCommissionCollected, w.OnHoldAmount,
		w.LastPayoutDate, w.RestaurantID)
	return err
}

func (r *WalletRepository) GetRiderWalletForUpdate(ctx context.Context, q sqlx.ExtContext, riderID string) (*entity.RiderWallet, error) {
	var wallet entity.RiderWallet
	query := `SELECT ` + riderWalletColumns + ` FROM rider_wallets WHERE rider_id = ? FOR UPDATE`

	err := sqlx.GetContext(ctx, q, &wallet, query, riderID)
	if errors.Is(err, sql.ErrNoRows) {
		if _, err := q.ExecContext(ctx,
			`INSERT INTO rider_wallets (rider_id, updated_at) VALUES (?, NOW())`, riderID); err != nil {
			return nil, err
		}
		err = sqlx.GetContext(ctx, q, &wallet, query, riderID)
	}
	if err != nil {
		return nil, err
	}
	return &wallet, nil
}

func (r *WalletRepository) SaveRiderWallet(ctx context.Context, q sqlx.ExtContext, w *entity.RiderWallet) error {
	query := `
		UPDATE rider_wallets SET
			total_earnings = ?, available_withdraw = ?, cash_collected = ?,
			cash_to_deposit = ?, delivery_earnings = ?, bonuses = ?,
			penalties = ?, last_withdraw_date = ?, updated_at = NOW()
		WHERE rider_id = ?`

	_, err := q.ExecContext(ctx, query,
		w.TotalEarnings, w.AvailableWithdraw, w.CashCollected,
		w.CashToDeposit, w.DeliveryEarnings, w.Bonuses,
		w.Penalties, w.LastWithdrawDate, w.RiderID)
	return err
}

func (r *WalletRepository) FindRestaurantWallet(ctx context.Context, restaurantID string) (*entity.RestaurantWallet, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var wallet entity.RestaurantWallet
	query := `SELECT ` + restaurantWalletColumns + ` FROM restaurant_wallets WHERE restaurant_id = ?`
	if err := db.GetContext(ctx, &wallet, query, restaurantID); err != nil {
		return nil, err
	}
	return &wallet, nil
}

func (r *WalletRepository) FindRiderWallet(ctx context.Context, riderID string) (*entity.RiderWallet, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var wallet entity.RiderWallet
	query := `SELECT ` + riderWalletColumns + ` FROM rider_wallets WHERE rider_id = ?`
	if err := db.GetContext(ctx, &wallet, query, riderID); err != nil {
		return nil, err
	}
	return &wallet, nil
}
