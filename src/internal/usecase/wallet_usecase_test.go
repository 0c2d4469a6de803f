package usecase

import (
	"context"
	"errors"
	"testing"

	"foodswipe-order-service/src/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestApplyRestaurantDeltaKinds(t *testing.T) {
	orderID := "ord-1"

	tests := []struct {
		name          string
		kind          string
		amount        int64
		wantAvailable int64
		wantSigned    int64
		checkWallet   func(t *testing.T, w *entity.RestaurantWallet)
	}{
		{
			name:          "earning credits available and lifetime totals",
			kind:          entity.TxnTypeEarning,
			amount:        850,
			wantAvailable: 1850,
			wantSigned:    850,
			checkWallet: func(t *testing.T, w *entity.RestaurantWallet) {
				assert.Equal(t, int64(850), w.TotalEarnings)
			},
		},
		{
			name:          "payout debits available into pending",
			kind:          entity.TxnTypePayout,
			amount:        400,
			wantAvailable: 600,
			wantSigned:    -400,
			checkWallet: func(t *testing.T, w *entity.RestaurantWallet) {
				assert.Equal(t, int64(400), w.PendingPayout)
				assert.NotNil(t, w.LastPayoutDate)
			},
		},
		{
			name:          "refund moves funds on hold",
			kind:          entity.TxnTypeRefund,
			amount:        250,
			wantAvailable: 750,
			wantSigned:    -250,
			checkWallet: func(t *testing.T, w *entity.RestaurantWallet) {
				assert.Equal(t, int64(250), w.OnHoldAmount)
			},
		},
		{
			name:          "adjustment credits available directly",
			kind:          entity.TxnTypeAdjustment,
			amount:        100,
			wantAvailable: 1100,
			wantSigned:    100,
			checkWallet:   func(t *testing.T, w *entity.RestaurantWallet) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wallets := new(MockWalletStore)
			transactions := new(MockTransactionStore)
			uc := NewWalletUseCase(testLogger(), wallets, transactions)

			wallet := &entity.RestaurantWallet{RestaurantID: "res-1", AvailableBalance: 1000}
			wallets.On("GetRestaurantWalletForUpdate", mock.Anything, mock.Anything, "res-1").Return(wallet, nil)
			wallets.On("SaveRestaurantWallet", mock.Anything, mock.Anything, wallet).Return(nil)

			var recorded entity.Transaction
			transactions.On("Insert", mock.Anything, mock.Anything, mock.Anything).
				Run(func(args mock.Arguments) {
					recorded = *args.Get(2).(*entity.Transaction)
				}).Return(nil)

			got, err := uc.ApplyRestaurantDelta(context.Background(), nil, "res-1", tt.amount, tt.kind, &orderID, "test")

			assert.NoError(t, err)
			assert.Equal(t, tt.wantAvailable, got.AvailableBalance)
			assert.Equal(t, tt.wantSigned, recorded.Amount)
			assert.Equal(t, got.AvailableBalance, recorded.BalanceAfter)
			assert.Equal(t, entity.EntityRestaurant, recorded.EntityType)
			tt.checkWallet(t, got)
		})
	}
}

func TestCommissionNeverTouchesRestaurantAvailable(t *testing.T) {
	wallets := new(MockWalletStore)
	transactions := new(MockTransactionStore)
	uc := NewWalletUseCase(testLogger(), wallets, transactions)

	wallet := &entity.RestaurantWallet{RestaurantID: "res-1", AvailableBalance: 1000}
	wallets.On("GetRestaurantWalletForUpdate", mock.Anything, mock.Anything, "res-1").Return(wallet, nil)
	wallets.On("SaveRestaurantWallet", mock.Anything, mock.Anything, wallet).Return(nil)

	var recorded entity.Transaction
	transactions.On("Insert", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			recorded = *args.Get(2).(*entity.Transaction)
		}).Return(nil)
	transactions.On("SumByEntity", mock.Anything, mock.Anything, entity.EntityPlatform, PlatformEntityID).Return(int64(500), nil)

	got, err := uc.ApplyRestaurantDelta(context.Background(), nil, "res-1", 150, entity.TxnTypeCommission, nil, "commission")

	assert.NoError(t, err)
	assert.Equal(t, int64(1000), got.AvailableBalance)
	assert.Equal(t, int64(150), got.TotalCommissionCollected)

	// ledgered against the platform, continuing its running balance
	assert.Equal(t, entity.EntityPlatform, recorded.EntityType)
	assert.Equal(t, int64(150), recorded.Amount)
	assert.Equal(t, int64(650), recorded.BalanceAfter)
}

func TestApplyRiderDeltaKinds(t *testing.T) {
	tests := []struct {
		name         string
		kind         string
		amount       int64
		wantWithdraw int64
		wantSigned   int64
	}{
		{"earning", entity.TxnTypeEarning, 126, 626, 126},
		{"bonus", entity.TxnTypeBonus, 50, 550, 50},
		{"penalty", entity.TxnTypePenalty, 30, 470, -30},
		{"payout", entity.TxnTypePayout, 200, 300, -200},
		{"adjustment", entity.TxnTypeAdjustment, 10, 510, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wallets := new(MockWalletStore)
			transactions := new(MockTransactionStore)
			uc := NewWalletUseCase(testLogger(), wallets, transactions)

			wallet := &entity.RiderWallet{RiderID: "rid-1", AvailableWithdraw: 500}
			wallets.On("GetRiderWalletForUpdate", mock.Anything, mock.Anything, "rid-1").Return(wallet, nil)
			wallets.On("SaveRiderWallet", mock.Anything, mock.Anything, wallet).Return(nil)

			var recorded entity.Transaction
			transactions.On("Insert", mock.Anything, mock.Anything, mock.Anything).
				Run(func(args mock.Arguments) {
					recorded = *args.Get(2).(*entity.Transaction)
				}).Return(nil)

			got, err := uc.ApplyRiderDelta(context.Background(), nil, "rid-1", tt.amount, tt.kind, nil, "test")

			assert.NoError(t, err)
			assert.Equal(t, tt.wantWithdraw, got.AvailableWithdraw)
			assert.Equal(t, tt.wantSigned, recorded.Amount)
			assert.Equal(t, got.AvailableWithdraw, recorded.BalanceAfter)
		})
	}
}

func TestRiderPayoutStampsWithdrawDate(t *testing.T) {
	wallets := new(MockWalletStore)
	transactions := new(MockTransactionStore)
	uc := NewWalletUseCase(testLogger(), wallets, transactions)

	wallet := &entity.RiderWallet{RiderID: "rid-1", AvailableWithdraw: 500}
	wallets.On("GetRiderWalletForUpdate", mock.Anything, mock.Anything, "rid-1").Return(wallet, nil)
	wallets.On("SaveRiderWallet", mock.Anything, mock.Anything, wallet).Return(nil)
	transactions.On("Insert", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	got, err := uc.ApplyRiderDelta(context.Background(), nil, "rid-1", 200, entity.TxnTypePayout, nil, "payout")

	assert.NoError(t, err)
	assert.NotNil(t, got.LastWithdrawDate)
}

func TestUnknownDeltaKindRejected(t *testing.T) {
	wallets := new(MockWalletStore)
	transactions := new(MockTransactionStore)
	uc := NewWalletUseCase(testLogger(), wallets, transactions)

	wallets.On("GetRestaurantWalletForUpdate", mock.Anything, mock.Anything, "res-1").
		Return(&entity.RestaurantWallet{RestaurantID: "res-1"}, nil)

	_, err := uc.ApplyRestaurantDelta(context.Background(), nil, "res-1", 10, "mystery", nil, "test")

	assert.Error(t, err)
	transactions.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything, mock.Anything)
}

func TestLedgerAppendFailurePropagates(t *testing.T) {
	wallets := new(MockWalletStore)
	transactions := new(MockTransactionStore)
	uc := NewWalletUseCase(testLogger(), wallets, transactions)

	wallet := &entity.RestaurantWallet{RestaurantID: "res-1", AvailableBalance: 1000}
	wallets.On("GetRestaurantWalletForUpdate", mock.Anything, mock.Anything, "res-1").Return(wallet, nil)
	wallets.On("SaveRestaurantWallet", mock.Anything, mock.Anything, wallet).Return(nil)
	transactions.On("Insert", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("insert failed"))

	_, err := uc.ApplyRestaurantDelta(context.Background(), nil, "res-1", 850, entity.TxnTypeEarning, nil, "earning")

	// caller's transaction must roll the wallet write back with it
	assert.Error(t, err)
}

func TestSettleRiderCashFloorsDepositAtZero(t *testing.T) {
	wallets := new(MockWalletStore)
	transactions := new(MockTransactionStore)
	uc := NewWalletUseCase(testLogger(), wallets, transactions)

	wallet := &entity.RiderWallet{RiderID: "rid-1", CashToDeposit: 800, AvailableWithdraw: 500}
	wallets.On("GetRiderWalletForUpdate", mock.Anything, mock.Anything, "rid-1").Return(wallet, nil)
	wallets.On("SaveRiderWallet", mock.Anything, mock.Anything, wallet).Return(nil)

	var recorded entity.Transaction
	transactions.On("Insert", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			recorded = *args.Get(2).(*entity.Transaction)
		}).Return(nil)

	got, err := uc.SettleRiderCash(context.Background(), nil, "rid-1", 1000, 126, "settlement")

	assert.NoError(t, err)
	assert.Equal(t, int64(0), got.CashToDeposit)
	assert.Equal(t, int64(374), got.AvailableWithdraw)
	assert.Equal(t, entity.TxnTypeCashDeposit, recorded.Type)
	assert.Equal(t, int64(-126), recorded.Amount)
}
