package usecase

import (
	"context"
	"testing"

	"foodswipe-order-service/src/internal/entity"
	"foodswipe-order-service/src/internal/model"
	httpError "foodswipe-order-service/src/pkg/http-error"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type financeFixture struct {
	orders    *MockOrderStore
	wallets   *MockWalletStore
	txns      *MockTransactionStore
	codLedger *MockCODStore
	payouts   *MockPayoutStore
	settings  *MockSettingsStore
	uc        *FinanceUseCase
}

func newFinanceFixture() *financeFixture {
	f := &financeFixture{
		orders:    new(MockOrderStore),
		wallets:   new(MockWalletStore),
		txns:      new(MockTransactionStore),
		codLedger: new(MockCODStore),
		payouts:   new(MockPayoutStore),
		settings:  new(MockSettingsStore),
	}
	logger := testLogger()
	wallet := NewWalletUseCase(logger, f.wallets, f.txns)
	f.uc = NewFinanceUseCase(logger, newTestValidator(), fakeTxRunner{},
		f.orders, f.wallets, f.txns, f.codLedger, f.payouts,
		wallet, newTestSettingsUseCase(f.settings), newTestWalletProducer())
	return f
}

func TestGetFinanceOverview(t *testing.T) {
	f := newFinanceFixture()

	f.orders.On("FinanceAggregates", mock.Anything).
		Return(int64(100000), int64(15000), int64(14000), int64(12600), int64(16400), int64(88), nil)
	f.codLedger.On("SumOutstanding", mock.Anything).Return(int64(20700), nil)
	f.payouts.On("SumPending", mock.Anything).Return(int64(5000), nil)

	result := f.uc.GetFinanceOverview(context.Background())

	assert.Nil(t, result.Error)
	overview := result.Data.(*model.FinanceOverview)
	assert.Equal(t, int64(100000), overview.TotalOrderVolume)
	assert.Equal(t, int64(15000), overview.TotalCommission)
	assert.Equal(t, int64(16400), overview.TotalPlatformProfit)
	assert.Equal(t, int64(20700), overview.OutstandingCOD)
	assert.Equal(t, int64(5000), overview.PendingPayouts)
	assert.Equal(t, int64(88), overview.SettledOrders)
}

func TestRequestPayoutInsufficientBalance(t *testing.T) {
	f := newFinanceFixture()

	wallet := &entity.RestaurantWallet{RestaurantID: "res-1", AvailableBalance: 300}
	f.wallets.On("GetRestaurantWalletForUpdate", mock.Anything, mock.Anything, "res-1").Return(wallet, nil)
	f.wallets.On("SaveRestaurantWallet", mock.Anything, mock.Anything, wallet).Return(nil)
	f.txns.On("Insert", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	result := f.uc.RequestPayout(context.Background(), &model.RequestPayoutRequest{
		EntityType:  entity.EntityRestaurant,
		EntityID:    "res-1",
		Amount:      500,
		ProcessedBy: "adm-1",
	})

	assert.NotNil(t, result.Error)
	commonErr := result.Error.(*httpError.CommonError)
	assert.Equal(t, 409, commonErr.Code)
	f.payouts.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything, mock.Anything)
}

func TestRequestPayoutOpensPendingRecord(t *testing.T) {
	f := newFinanceFixture()

	wallet := &entity.RiderWallet{RiderID: "rid-1", AvailableWithdraw: 1000}
	f.wallets.On("GetRiderWalletForUpdate", mock.Anything, mock.Anything, "rid-1").Return(wallet, nil)
	f.wallets.On("SaveRiderWallet", mock.Anything, mock.Anything, wallet).Return(nil)
	f.txns.On("Insert", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	var saved entity.Payout
	f.payouts.On("Insert", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			saved = *args.Get(2).(*entity.Payout)
		}).Return(nil)

	result := f.uc.RequestPayout(context.Background(), &model.RequestPayoutRequest{
		EntityType:  entity.EntityRider,
		EntityID:    "rid-1",
		Amount:      400,
		ProcessedBy: "adm-1",
	})

	assert.Nil(t, result.Error)
	assert.Equal(t, entity.PayoutStatusPending, saved.Status)
	assert.Equal(t, int64(400), saved.Amount)
	assert.Equal(t, int64(600), wallet.AvailableWithdraw)
}

func TestMarkPayoutPaidGuardsDoubleConfirmation(t *testing.T) {
	f := newFinanceFixture()

	f.payouts.On("FindByID", mock.Anything, "pay-1").
		Return(&entity.Payout{PayoutID: "pay-1", EntityType: entity.EntityRider, EntityID: "rid-1",
			Amount: 400, Status: entity.PayoutStatusPaid}, nil)
	f.payouts.On("MarkPaid", mock.Anything, "pay-1", "TRX123", "adm-1").Return(false, nil)

	result := f.uc.MarkPayoutPaid(context.Background(), &model.MarkPayoutPaidRequest{
		PayoutID:    "pay-1",
		BankRef:     "TRX123",
		ProcessedBy: "adm-1",
	})

	assert.NotNil(t, result.Error)
	commonErr := result.Error.(*httpError.CommonError)
	assert.Equal(t, 409, commonErr.Code)
}

func TestUpdateSettingsAppliesOnlyProvidedFields(t *testing.T) {
	f := newFinanceFixture()

	current := testPlatformSettings()
	f.settings.On("Get", mock.Anything).Return(current, nil)
	f.settings.On("Save", mock.Anything, current).Return(nil)

	newRate := 20.0
	maintenance := true
	result := f.uc.UpdateSettings(context.Background(), &model.UpdateSettingsRequest{
		DefaultCommissionRate: &newRate,
		MaintenanceMode:       &maintenance,
	})

	assert.Nil(t, result.Error)
	updated := result.Data.(*entity.PlatformSettings)
	assert.Equal(t, 20.0, updated.DefaultCommissionRate)
	assert.True(t, updated.MaintenanceMode)
	// untouched fields keep their values
	assert.Equal(t, int64(40), updated.BaseDeliveryFee)
	assert.Equal(t, int64(20000), updated.CODThreshold)
}
