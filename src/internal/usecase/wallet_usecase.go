package usecase

import (
	"fmt"
	"time"

	"context"

	"foodswipe-order-service/src/internal/entity"
	"foodswipe-order-service/src/pkg/log"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// PlatformEntityID keys the platform's own revenue ledger.
const PlatformEntityID = "platform"

// WalletUseCase applies signed deltas to wallets and appends a ledger
// Transaction for every mutation. All methods run inside the caller's
// transaction: if the transaction append fails the wallet write rolls back
// with it, so summing an entity's transactions always reconstructs its
// balance.
type WalletUseCase struct {
	Log          log.Log
	Wallets      WalletStore
	Transactions TransactionStore
}

func NewWalletUseCase(logger log.Log, wallets WalletStore, transactions TransactionStore) *WalletUseCase {
	return &WalletUseCase{
		Log:          logger,
		Wallets:      wallets,
		Transactions: transactions,
	}
}

// ApplyRestaurantDelta mutates the restaurant wallet per kind.
// Transaction.Amount is the signed change to available balance.
func (c *WalletUseCase) ApplyRestaurantDelta(ctx context.Context, q sqlx.ExtContext, restaurantID string, amount int64, kind string, orderID *string, note string) (*entity.RestaurantWallet, error) {
	wallet, err := c.Wallets.GetRestaurantWalletForUpdate(ctx, q, restaurantID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	var signed int64

	switch kind {
	case entity.TxnTypeEarning:
		wallet.AvailableBalance += amount
		wallet.TotalEarnings += amount
		signed = amount
	case entity.TxnTypeCommission:
		// commission never touches the restaurant's available balance;
		// it is tracked as a counter and ledgered against the platform
		wallet.TotalCommissionCollected += amount
		if err := c.Wallets.SaveRestaurantWallet(ctx, q, wallet); err != nil {
			return nil, err
		}
		return wallet, c.appendPlatformTxn(ctx, q, amount, kind, orderID, note)
	case entity.TxnTypePayout:
		wallet.AvailableBalance -= amount
		wallet.PendingPayout += amount
		wallet.LastPayoutDate = &now
		signed = -amount
	case entity.TxnTypeRefund:
		wallet.AvailableBalance -= amount
		wallet.OnHoldAmount += amount
		signed = -amount
	case entity.TxnTypeAdjustment:
		wallet.AvailableBalance += amount
		signed = amount
	default:
		return nil, fmt.Errorf("unknown restaurant wallet delta kind %q", kind)
	}

	if err := c.Wallets.SaveRestaurantWallet(ctx, q, wallet); err != nil {
		return nil, err
	}

	txn := &entity.Transaction{
		TransactionID: uuid.NewString(),
		EntityType:    entity.EntityRestaurant,
		EntityID:      restaurantID,
		OrderID:       orderID,
		Type:          kind,
		Amount:        signed,
		BalanceAfter:  wallet.AvailableBalance,
		Description:   note,
		CreatedAt:     now,
	}
	if err := c.Transactions.Insert(ctx, q, txn); err != nil {
		return nil, err
	}
	return wallet, nil
}

// ApplyRiderDelta mutates the rider wallet per kind. Signed amounts are
// relative to available_withdraw.
func (c *WalletUseCase) ApplyRiderDelta(ctx context.Context, q sqlx.ExtContext, riderID string, amount int64, kind string, orderID *string, note string) (*entity.RiderWallet, error) {
	wallet, err := c.Wallets.GetRiderWalletForUpdate(ctx, q, riderID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	var signed int64

	switch kind {
	case entity.TxnTypeEarning:
		wallet.TotalEarnings += amount
		wallet.AvailableWithdraw += amount
		wallet.DeliveryEarnings += amount
		signed = amount
	case entity.TxnTypeBonus:
		wallet.TotalEarnings += amount
		wallet.AvailableWithdraw += amount
		wallet.Bonuses += amount
		signed = amount
	case entity.TxnTypePenalty:
		wallet.TotalEarnings -= amount
		wallet.AvailableWithdraw -= amount
		wallet.Penalties += amount
		signed = -amount
	case entity.TxnTypePayout:
		wallet.AvailableWithdraw -= amount
		wallet.LastWithdrawDate = &now
		signed = -amount
	case entity.TxnTypeAdjustment:
		wallet.AvailableWithdraw += amount
		signed = amount
	default:
		return nil, fmt.Errorf("unknown rider wallet delta kind %q", kind)
	}

	if err := c.Wallets.SaveRiderWallet(ctx, q, wallet); err != nil {
		return nil, err
	}

	txn := &entity.Transaction{
		TransactionID: uuid.NewString(),
		EntityType:    entity.EntityRider,
		EntityID:      riderID,
		OrderID:       orderID,
		Type:          kind,
		Amount:        signed,
		BalanceAfter:  wallet.AvailableWithdraw,
		Description:   note,
		CreatedAt:     now,
	}
	if err := c.Transactions.Insert(ctx, q, txn); err != nil {
		return nil, err
	}
	return wallet, nil
}

// AccrueRiderCash records COD cash moving through the rider's hands and the
// slice they owe the platform. No available-balance change, so no signed
// ledger amount; the COD ledger entry is the audit record.
func (c *WalletUseCase) AccrueRiderCash(ctx context.Context, q sqlx.ExtContext, riderID string, cashCollected, amountOwed int64) (*entity.RiderWallet, error) {
	wallet, err := c.Wallets.GetRiderWalletForUpdate(ctx, q, riderID)
	if err != nil {
		return nil, err
	}

	wallet.CashCollected += cashCollected
	wallet.CashToDeposit += amountOwed

	if err := c.Wallets.SaveRiderWallet(ctx, q, wallet); err != nil {
		return nil, err
	}
	return wallet, nil
}

// SettleRiderCash clears deposited cash and pays out cash-held earnings.
func (c *WalletUseCase) SettleRiderCash(ctx context.Context, q sqlx.ExtContext, riderID string, amountCollected, earningsPaid int64, note string) (*entity.RiderWallet, error) {
	wallet, err := c.Wallets.GetRiderWalletForUpdate(ctx, q, riderID)
	if err != nil {
		return nil, err
	}

	wallet.CashToDeposit -= amountCollected
	if wallet.CashToDeposit < 0 {
		wallet.CashToDeposit = 0
	}
	wallet.AvailableWithdraw -= earningsPaid

	if err := c.Wallets.SaveRiderWallet(ctx, q, wallet); err != nil {
		return nil, err
	}

	txn := &entity.Transaction{
		TransactionID: uuid.NewString(),
		EntityType:    entity.EntityRider,
		EntityID:      riderID,
		Type:          entity.TxnTypeCashDeposit,
		Amount:        -earningsPaid,
		BalanceAfter:  wallet.AvailableWithdraw,
		Description:   note,
		CreatedAt:     time.Now().UTC(),
	}
	if err := c.Transactions.Insert(ctx, q, txn); err != nil {
		return nil, err
	}
	return wallet, nil
}

// RecordPlatformProfit appends the platform's net take for a settled order
// to its own running ledger.
func (c *WalletUseCase) RecordPlatformProfit(ctx context.Context, q sqlx.ExtContext, amount int64, orderID *string) error {
	return c.appendPlatformTxn(ctx, q, amount, entity.TxnTypeEarning, orderID, "order net profit")
}

func (c *WalletUseCase) appendPlatformTxn(ctx context.Context, q sqlx.ExtContext, amount int64, kind string, orderID *string, note string) error {
	prior, err := c.Transactions.SumByEntity(ctx, q, entity.EntityPlatform, PlatformEntityID)
	if err != nil {
		return err
	}

	return c.Transactions.Insert(ctx, q, &entity.Transaction{
		TransactionID: uuid.NewString(),
		EntityType:    entity.EntityPlatform,
		EntityID:      PlatformEntityID,
		OrderID:       orderID,
		Type:          kind,
		Amount:        amount,
		BalanceAfter:  prior + amount,
		Description:   note,
		CreatedAt:     time.Now().UTC(),
	})
}
