package usecase

import (
	"context"
	"time"

	"foodswipe-order-service/src/internal/entity"

	"github.com/jmoiron/sqlx"
)

// Narrow store interfaces over the repository structs so usecases can be
// tested with mocks. The concrete repositories satisfy these.

type TxRunner interface {
	RunInTx(ctx context.Context, fn func(q sqlx.ExtContext) error) error
}

type OrderStore interface {
	Insert(ctx context.Context, q sqlx.ExtContext, order *entity.Order) error
	InsertItems(ctx context.Context, q sqlx.ExtContext, items []entity.OrderItem) error
	FindByID(ctx context.Context, id string) (*entity.Order, error)
	FindByIDForUpdate(ctx context.Context, q sqlx.ExtContext, id string) (*entity.Order, error)
	ListItems(ctx context.Context, orderID string) ([]entity.OrderItem, error)
	UpdateStatus(ctx context.Context, q sqlx.ExtContext, orderID, from, to string) (bool, error)
	AssignRider(ctx context.Context, q sqlx.ExtContext, orderID, riderID string) (bool, error)
	ReassignRider(ctx context.Context, q sqlx.ExtContext, orderID, riderID, prevRiderID string) (bool, error)
	ApplySettlement(ctx context.Context, q sqlx.ExtContext, order *entity.Order) (bool, error)
	SetRating(ctx context.Context, orderID string, rating int, review string) (bool, error)
	InsertStatusHistory(ctx context.Context, q sqlx.ExtContext, h *entity.OrderStatusHistory) error
	ListByRestaurant(ctx context.Context, restaurantID string, limit int) ([]entity.Order, error)
	ListByRider(ctx context.Context, riderID string, limit int) ([]entity.Order, error)
	FinanceAggregates(ctx context.Context) (volume, commission, deliveryFees, riderPay, profit, settled int64, err error)
}

type ProductStore interface {
	FindByIDs(ctx context.Context, restaurantID string, ids []string) ([]entity.Product, error)
	DecrementStock(ctx context.Context, q sqlx.ExtContext, productID string, quantity int) (bool, error)
	RestoreStock(ctx context.Context, q sqlx.ExtContext, productID string, quantity int) error
}

type PromoStore interface {
	FindByCode(ctx context.Context, code string) (*entity.Promo, error)
}

type RestaurantStore interface {
	FindByID(ctx context.Context, id string) (*entity.Restaurant, error)
}

type RiderStore interface {
	FindByID(ctx context.Context, id string) (*entity.Rider, error)
	FindByIDForUpdate(ctx context.Context, q sqlx.ExtContext, id string) (*entity.Rider, error)
	SetCurrentOrder(ctx context.Context, q sqlx.ExtContext, riderID string, orderID *string) error
	AccrueCOD(ctx context.Context, q sqlx.ExtContext, riderID string, cash, earning int64) error
	SettleCOD(ctx context.Context, q sqlx.ExtContext, riderID string, amountCollected, earningsPaid int64) error
	SetSettlementStatus(ctx context.Context, q sqlx.ExtContext, riderID, status string) error
	AddRating(ctx context.Context, riderID string, rating int) error
}

type WalletStore interface {
	GetRestaurantWalletForUpdate(ctx context.Context, q sqlx.ExtContext, restaurantID string) (*entity.RestaurantWallet, error)
	SaveRestaurantWallet(ctx context.Context, q sqlx.ExtContext, w *entity.RestaurantWallet) error
	GetRiderWalletForUpdate(ctx context.Context, q sqlx.ExtContext, riderID string) (*entity.RiderWallet, error)
	SaveRiderWallet(ctx context.Context, q sqlx.ExtContext, w *entity.RiderWallet) error
	FindRestaurantWallet(ctx context.Context, restaurantID string) (*entity.RestaurantWallet, error)
	FindRiderWallet(ctx context.Context, riderID string) (*entity.RiderWallet, error)
}

type TransactionStore interface {
	Insert(ctx context.Context, q sqlx.ExtContext, txn *entity.Transaction) error
	ListByEntity(ctx context.Context, entityType, entityID string) ([]entity.Transaction, error)
	SumByEntity(ctx context.Context, q sqlx.ExtContext, entityType, entityID string) (int64, error)
}

type CODStore interface {
	Insert(ctx context.Context, q sqlx.ExtContext, e *entity.CODLedgerEntry) error
	MarkAllPaid(ctx context.Context, q sqlx.ExtContext, riderID string, ref *string, settledAt time.Time) (int64, error)
	ListPendingByRider(ctx context.Context, riderID string) ([]entity.CODLedgerEntry, error)
	SumOutstanding(ctx context.Context) (int64, error)
}

type PayoutStore interface {
	Insert(ctx context.Context, q sqlx.ExtContext, p *entity.Payout) error
	FindByID(ctx context.Context, payoutID string) (*entity.Payout, error)
	MarkPaid(ctx context.Context, payoutID, bankRef, processedBy string) (bool, error)
	SumPending(ctx context.Context) (int64, error)
}

type SettingsStore interface {
	Get(ctx context.Context) (*entity.PlatformSettings, error)
	Save(ctx context.Context, s *entity.PlatformSettings) error
}
