package usecase

import (
	"context"
	"fmt"
	"time"

	"foodswipe-order-service/src/internal/entity"
	"foodswipe-order-service/src/internal/gateway/cache"
	"foodswipe-order-service/src/internal/gateway/messaging"
	"foodswipe-order-service/src/internal/model"
	httpError "foodswipe-order-service/src/pkg/http-error"
	"foodswipe-order-service/src/pkg/log"
	"foodswipe-order-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
)

// CODUseCase tracks the cash riders physically collect and reconciles it
// against what they owe the platform.
type CODUseCase struct {
	Log            log.Log
	Validate       *validator.Validate
	Tx             TxRunner
	Riders         RiderStore
	CODLedger      CODStore
	Wallet         *WalletUseCase
	Settings       *SettingsUseCase
	Cache          *cache.RiderCache
	WalletProducer *messaging.WalletProducer
}

func NewCODUseCase(
	logger log.Log,
	validate *validator.Validate,
	tx TxRunner,
	riders RiderStore,
	codLedger CODStore,
	wallet *WalletUseCase,
	settings *SettingsUseCase,
	riderCache *cache.RiderCache,
	walletProducer *messaging.WalletProducer,
) *CODUseCase {
	return &CODUseCase{
		Log:            logger,
		Validate:       validate,
		Tx:             tx,
		Riders:         riders,
		CODLedger:      codLedger,
		Wallet:         wallet,
		Settings:       settings,
		Cache:          riderCache,
		WalletProducer: walletProducer,
	}
}

// Accrue runs inside the settlement transaction for a delivered COD order.
// It books the cash onto the rider, creates the pending ledger entry, and
// flips the rider to overdue when the running balance crosses the threshold.
func (c *CODUseCase) Accrue(ctx context.Context, q sqlx.ExtContext, riderID, orderID string, cashCollected, riderEarning, threshold int64) error {
	rider, err := c.Riders.FindByIDForUpdate(ctx, q, riderID)
	if err != nil {
		return fmt.Errorf("load rider for cod accrual: %w", err)
	}

	if err := c.Riders.AccrueCOD(ctx, q, riderID, cashCollected, riderEarning); err != nil {
		return err
	}
	if _, err := c.Wallet.AccrueRiderCash(ctx, q, riderID, cashCollected, cashCollected-riderEarning); err != nil {
		return err
	}

	if err := c.CODLedger.Insert(ctx, q, &entity.CODLedgerEntry{
		RiderID:       riderID,
		OrderID:       orderID,
		CashCollected: cashCollected,
		RiderEarning:  riderEarning,
		AmountOwed:    cashCollected - riderEarning,
	}); err != nil {
		return err
	}

	newBalance := rider.CODBalance + cashCollected
	if newBalance > threshold && rider.SettlementStatus != entity.RiderSettlementOverdue {
		if err := c.Riders.SetSettlementStatus(ctx, q, riderID, entity.RiderSettlementOverdue); err != nil {
			return err
		}
		c.Cache.MarkOverdue(ctx, riderID)
		c.Log.Warn("cod-usecase",
			fmt.Sprintf("rider %s cod balance %d exceeds threshold %d, marked overdue", riderID, newBalance, threshold),
			"Accrue", orderID)
	}
	return nil
}

// SettleRiderCOD is the operator action that clears a rider's collected
// cash. Rider record, wallet and ledger entries move in one transaction.
func (c *CODUseCase) SettleRiderCOD(ctx context.Context, request *model.SettleRiderCODRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("cod-usecase", errObj.Message, "SettleRiderCOD", utils.ConvertString(request))
		return result
	}

	settings, err := c.Settings.Get(ctx)
	if err != nil {
		errObj := httpError.NewServiceUnavailable()
		errObj.Message = fmt.Sprintf("settings unavailable: %v", err)
		result.Error = errObj
		return result
	}

	var snapshot model.RiderSnapshot
	err = c.Tx.RunInTx(ctx, func(q sqlx.ExtContext) error {
		rider, err := c.Riders.FindByIDForUpdate(ctx, q, request.RiderID)
		if err != nil {
			return err
		}

		if err := c.Riders.SettleCOD(ctx, q, request.RiderID, request.AmountCollected, request.EarningsPaid); err != nil {
			return err
		}

		note := fmt.Sprintf("COD settlement: collected %d, earnings paid %d", request.AmountCollected, request.EarningsPaid)
		if _, err := c.Wallet.SettleRiderCash(ctx, q, request.RiderID, request.AmountCollected, request.EarningsPaid, note); err != nil {
			return err
		}

		var ref *string
		if request.Reference != "" {
			ref = &request.Reference
		}
		settled, err := c.CODLedger.MarkAllPaid(ctx, q, request.RiderID, ref, time.Now().UTC())
		if err != nil {
			return err
		}

		newBalance := rider.CODBalance - request.AmountCollected
		if newBalance < 0 {
			newBalance = 0
		}
		newEarnings := rider.EarningsBalance - request.EarningsPaid
		if newEarnings < 0 {
			newEarnings = 0
		}

		status := rider.SettlementStatus
		if status == entity.RiderSettlementOverdue && newBalance <= settings.CODThreshold {
			status = entity.RiderSettlementActive
			if err := c.Riders.SetSettlementStatus(ctx, q, request.RiderID, status); err != nil {
				return err
			}
		}

		snapshot = model.RiderSnapshot{
			RiderID:          request.RiderID,
			CODBalance:       newBalance,
			EarningsBalance:  newEarnings,
			SettlementStatus: status,
			EntriesSettled:   settled,
		}
		return nil
	})
	if err != nil {
		c.Log.Error("cod-usecase", fmt.Sprintf("cod settlement failed: %v", err), "SettleRiderCOD", request.RiderID)
		errObj := httpError.NewSettlementError()
		errObj.Message = fmt.Sprintf("cod settlement rolled back: %v", err)
		result.Error = errObj
		return result
	}

	if snapshot.SettlementStatus == entity.RiderSettlementActive {
		c.Cache.ClearOverdue(ctx, request.RiderID)
	}

	if err := c.WalletProducer.SendCODUpdated(&model.CODUpdatedEvent{
		RiderID:          snapshot.RiderID,
		CODBalance:       snapshot.CODBalance,
		SettlementStatus: snapshot.SettlementStatus,
	}); err != nil {
		c.Log.Error("cod-usecase", fmt.Sprintf("failed publish cod updated event: %v", err), "SettleRiderCOD", "")
	}

	result.Data = snapshot
	return result
}
