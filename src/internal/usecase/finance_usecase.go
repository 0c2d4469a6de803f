package usecase

import (
	"context"
	"fmt"
	"time"

	"foodswipe-order-service/src/internal/entity"
	"foodswipe-order-service/src/internal/gateway/messaging"
	"foodswipe-order-service/src/internal/model"
	httpError "foodswipe-order-service/src/pkg/http-error"
	"foodswipe-order-service/src/pkg/log"
	"foodswipe-order-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// FinanceUseCase serves wallet reads, payout handling and the platform-wide
// financial overview.
type FinanceUseCase struct {
	Log            log.Log
	Validate       *validator.Validate
	Tx             TxRunner
	Orders         OrderStore
	Wallets        WalletStore
	Transactions   TransactionStore
	CODLedger      CODStore
	Payouts        PayoutStore
	Wallet         *WalletUseCase
	Settings       *SettingsUseCase
	WalletProducer *messaging.WalletProducer
}

func NewFinanceUseCase(
	logger log.Log,
	validate *validator.Validate,
	tx TxRunner,
	orders OrderStore,
	wallets WalletStore,
	transactions TransactionStore,
	codLedger CODStore,
	payouts PayoutStore,
	wallet *WalletUseCase,
	settings *SettingsUseCase,
	walletProducer *messaging.WalletProducer,
) *FinanceUseCase {
	return &FinanceUseCase{
		Log:            logger,
		Validate:       validate,
		Tx:             tx,
		Orders:         orders,
		Wallets:        wallets,
		Transactions:   transactions,
		CODLedger:      codLedger,
		Payouts:        payouts,
		Wallet:         wallet,
		Settings:       settings,
		WalletProducer: walletProducer,
	}
}

func (c *FinanceUseCase) GetFinanceOverview(ctx context.Context) utils.Result {
	var result utils.Result

	volume, commission, deliveryFees, riderPay, profit, settled, err := c.Orders.FinanceAggregates(ctx)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed aggregate orders: %v", err)
		result.Error = errObj
		return result
	}

	outstandingCOD, err := c.CODLedger.SumOutstanding(ctx)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed sum outstanding cod: %v", err)
		result.Error = errObj
		return result
	}

	pendingPayouts, err := c.Payouts.SumPending(ctx)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed sum pending payouts: %v", err)
		result.Error = errObj
		return result
	}

	result.Data = &model.FinanceOverview{
		TotalOrderVolume:    volume,
		TotalCommission:     commission,
		TotalDeliveryFees:   deliveryFees,
		TotalRiderPay:       riderPay,
		TotalPlatformProfit: profit,
		OutstandingCOD:      outstandingCOD,
		PendingPayouts:      pendingPayouts,
		SettledOrders:       settled,
		GeneratedAt:         time.Now().UTC(),
	}
	return result
}

func (c *FinanceUseCase) GetRestaurantWallet(ctx context.Context, restaurantID string) utils.Result {
	var result utils.Result

	wallet, err := c.Wallets.FindRestaurantWallet(ctx, restaurantID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("wallet for restaurant %s not found", restaurantID)
		result.Error = errObj
		return result
	}

	transactions, err := c.Transactions.ListByEntity(ctx, entity.EntityRestaurant, restaurantID)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed list transactions: %v", err)
		result.Error = errObj
		return result
	}

	result.Data = map[string]any{
		"wallet":       wallet,
		"transactions": transactions,
	}
	return result
}

func (c *FinanceUseCase) GetRiderWallet(ctx context.Context, riderID string) utils.Result {
	var result utils.Result

	wallet, err := c.Wallets.FindRiderWallet(ctx, riderID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("wallet for rider %s not found", riderID)
		result.Error = errObj
		return result
	}

	transactions, err := c.Transactions.ListByEntity(ctx, entity.EntityRider, riderID)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed list transactions: %v", err)
		result.Error = errObj
		return result
	}

	pendingCOD, err := c.CODLedger.ListPendingByRider(ctx, riderID)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed list pending cod: %v", err)
		result.Error = errObj
		return result
	}

	result.Data = map[string]any{
		"wallet":       wallet,
		"transactions": transactions,
		"pendingCod":   pendingCOD,
	}
	return result
}

// RequestPayout debits the entity's available balance and opens a pending
// payout record. Balance debit and payout row commit together.
func (c *FinanceUseCase) RequestPayout(ctx context.Context, request *model.RequestPayoutRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	payout := &entity.Payout{
		PayoutID:    uuid.NewString(),
		EntityType:  request.EntityType,
		EntityID:    request.EntityID,
		Amount:      request.Amount,
		Status:      entity.PayoutStatusPending,
		ProcessedBy: &request.ProcessedBy,
		CreatedAt:   time.Now().UTC(),
	}

	var balanceAfter int64
	err := c.Tx.RunInTx(ctx, func(q sqlx.ExtContext) error {
		note := fmt.Sprintf("payout request %s", payout.PayoutID)
		switch request.EntityType {
		case entity.EntityRestaurant:
			wallet, err := c.Wallet.ApplyRestaurantDelta(ctx, q, request.EntityID,
				request.Amount, entity.TxnTypePayout, nil, note)
			if err != nil {
				return err
			}
			if wallet.AvailableBalance < 0 {
				errObj := httpError.NewConflict()
				errObj.Message = fmt.Sprintf("insufficient balance for payout of %d", request.Amount)
				return errObj
			}
			balanceAfter = wallet.AvailableBalance
		case entity.EntityRider:
			wallet, err := c.Wallet.ApplyRiderDelta(ctx, q, request.EntityID,
				request.Amount, entity.TxnTypePayout, nil, note)
			if err != nil {
				return err
			}
			if wallet.AvailableWithdraw < 0 {
				errObj := httpError.NewConflict()
				errObj.Message = fmt.Sprintf("insufficient balance for payout of %d", request.Amount)
				return errObj
			}
			balanceAfter = wallet.AvailableWithdraw
		default:
			return fmt.Errorf("unknown payout entity type %q", request.EntityType)
		}
		return c.Payouts.Insert(ctx, q, payout)
	})
	if err != nil {
		if commonErr, ok := err.(*httpError.CommonError); ok {
			result.Error = commonErr
			return result
		}
		c.Log.Error("finance-usecase", fmt.Sprintf("failed request payout: %v", err), "RequestPayout", utils.ConvertString(request))
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed request payout: %v", err)
		result.Error = errObj
		return result
	}

	if err := c.WalletProducer.SendWalletUpdated(&model.WalletUpdatedEvent{
		EntityType:   request.EntityType,
		EntityID:     request.EntityID,
		TxnType:      entity.TxnTypePayout,
		Amount:       -request.Amount,
		BalanceAfter: balanceAfter,
	}); err != nil {
		c.Log.Error("finance-usecase", fmt.Sprintf("failed publish wallet updated event: %v", err), "RequestPayout", request.EntityID)
	}

	result.Data = payout
	return result
}

// MarkPayoutPaid confirms the bank transfer. The pending-status guard makes
// a double confirmation a conflict, not a double payment.
func (c *FinanceUseCase) MarkPayoutPaid(ctx context.Context, request *model.MarkPayoutPaidRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	payout, err := c.Payouts.FindByID(ctx, request.PayoutID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("payout %s not found", request.PayoutID)
		result.Error = errObj
		return result
	}

	ok, err := c.Payouts.MarkPaid(ctx, request.PayoutID, request.BankRef, request.ProcessedBy)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed mark payout paid: %v", err)
		result.Error = errObj
		return result
	}
	if !ok {
		errObj := httpError.NewConflict()
		errObj.Message = fmt.Sprintf("payout %s is not pending", request.PayoutID)
		result.Error = errObj
		return result
	}

	// payout leaves pending: clear the reservation on the restaurant wallet
	if payout.EntityType == entity.EntityRestaurant {
		err = c.Tx.RunInTx(ctx, func(q sqlx.ExtContext) error {
			wallet, err := c.Wallets.GetRestaurantWalletForUpdate(ctx, q, payout.EntityID)
			if err != nil {
				return err
			}
			wallet.PendingPayout -= payout.Amount
			if wallet.PendingPayout < 0 {
				wallet.PendingPayout = 0
			}
			return c.Wallets.SaveRestaurantWallet(ctx, q, wallet)
		})
		if err != nil {
			c.Log.Error("finance-usecase", fmt.Sprintf("failed clear pending payout: %v", err), "MarkPayoutPaid", payout.PayoutID)
		}
	}

	payout.Status = entity.PayoutStatusPaid
	payout.BankRef = &request.BankRef
	result.Data = payout
	return result
}

// UpdateSettings applies the non-nil fields of the request to the single
// settings row and invalidates the cache.
func (c *FinanceUseCase) UpdateSettings(ctx context.Context, request *model.UpdateSettingsRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	settings, err := c.Settings.Update(ctx, func(s *entity.PlatformSettings) {
		if request.DefaultCommissionRate != nil {
			s.DefaultCommissionRate = *request.DefaultCommissionRate
		}
		if request.BaseDeliveryFee != nil {
			s.BaseDeliveryFee = *request.BaseDeliveryFee
		}
		if request.PerKmDeliveryRate != nil {
			s.PerKmDeliveryRate = *request.PerKmDeliveryRate
		}
		if request.MaxDeliveryFee != nil {
			s.MaxDeliveryFee = *request.MaxDeliveryFee
		}
		if request.ServiceFee != nil {
			s.ServiceFee = *request.ServiceFee
		}
		if request.TaxEnabled != nil {
			s.TaxEnabled = *request.TaxEnabled
		}
		if request.TaxRate != nil {
			s.TaxRate = *request.TaxRate
		}
		if request.RiderBasePay != nil {
			s.RiderBasePay = *request.RiderBasePay
		}
		if request.RiderPerKmRate != nil {
			s.RiderPerKmRate = *request.RiderPerKmRate
		}
		if request.RiderPlatformFeePercent != nil {
			s.RiderPlatformFeePercent = *request.RiderPlatformFeePercent
		}
		if request.DefaultDistanceKm != nil {
			s.DefaultDistanceKm = *request.DefaultDistanceKm
		}
		if request.CODThreshold != nil {
			s.CODThreshold = *request.CODThreshold
		}
		if request.MaintenanceMode != nil {
			s.MaintenanceMode = *request.MaintenanceMode
		}
	})
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed update settings: %v", err)
		result.Error = errObj
		return result
	}

	result.Data = settings
	return result
}
