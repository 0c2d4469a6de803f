package usecase

import (
	"context"
	"time"

	"foodswipe-order-service/src/internal/entity"
	"foodswipe-order-service/src/internal/gateway/cache"
	"foodswipe-order-service/src/internal/gateway/messaging"
	"foodswipe-order-service/src/pkg/log"

	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
	k "gopkg.in/confluentinc/confluent-kafka-go.v1/kafka"
)

func testLogger() log.Log {
	l := logrus.New()
	l.SetLevel(logrus.FatalLevel)
	return log.Log{AppName: "test", LogLevel: 3, Logger: l}
}

// fakeTxRunner executes fn directly; the mocked stores ignore the executor.
type fakeTxRunner struct{}

func (fakeTxRunner) RunInTx(ctx context.Context, fn func(q sqlx.ExtContext) error) error {
	return fn(nil)
}

type fakeKafkaProducer struct{}

func (fakeKafkaProducer) Publish(*k.Message) error { return nil }
func (fakeKafkaProducer) Close()                   {}

type fakeDistance struct {
	km  float64
	err error
}

func (f fakeDistance) Measure(ctx context.Context, fromLat, fromLng, toLat, toLng float64) (float64, error) {
	return f.km, f.err
}

func newTestValidator() *validator.Validate {
	return validator.New()
}

func newTestOrderProducer() *messaging.OrderProducer {
	return messaging.NewOrderProducer(fakeKafkaProducer{}, testLogger())
}

func newTestWalletProducer() *messaging.WalletProducer {
	return messaging.NewWalletProducer(fakeKafkaProducer{}, testLogger())
}

func testPlatformSettings() *entity.PlatformSettings {
	return &entity.PlatformSettings{
		ID:                      1,
		DefaultCommissionRate:   15,
		BaseDeliveryFee:         40,
		PerKmDeliveryRate:       20,
		MaxDeliveryFee:          200,
		ServiceFee:              0,
		TaxEnabled:              false,
		GatewayFeeRate:          2.5,
		RiderBasePay:            40,
		RiderPerKmRate:          20,
		RiderPlatformFeePercent: 10,
		DefaultDistanceKm:       4.2,
		CODThreshold:            20000,
	}
}

// newTestSettingsUseCase wires a redis client pointing nowhere so every cache
// read misses and Get always falls through to the mocked store.
func newTestSettingsUseCase(store SettingsStore) *SettingsUseCase {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 10 * time.Millisecond})
	return NewSettingsUseCase(testLogger(), store, client, time.Minute)
}

// newTestRiderCache points at an unreachable redis, so mirror writes warn and
// IsOverdue reports false, leaving the mocked stores authoritative.
func newTestRiderCache() *cache.RiderCache {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 10 * time.Millisecond})
	return cache.NewRiderCache(client, testLogger())
}

type MockOrderStore struct{ mock.Mock }

func (m *MockOrderStore) Insert(ctx context.Context, q sqlx.ExtContext, order *entity.Order) error {
	return m.Called(ctx, q, order).Error(0)
}

func (m *MockOrderStore) InsertItems(ctx context.Context, q sqlx.ExtContext, items []entity.OrderItem) error {
	return m.Called(ctx, q, items).Error(0)
}

func (m *MockOrderStore) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Order), args.Error(1)
}

func (m *MockOrderStore) FindByIDForUpdate(ctx context.Context, q sqlx.ExtContext, id string) (*entity.Order, error) {
	args := m.Called(ctx, q, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Order), args.Error(1)
}

func (m *MockOrderStore) ListItems(ctx context.Context, orderID string) ([]entity.OrderItem, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.OrderItem), args.Error(1)
}

func (m *MockOrderStore) UpdateStatus(ctx context.Context, q sqlx.ExtContext, orderID, from, to string) (bool, error) {
	args := m.Called(ctx, q, orderID, from, to)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderStore) AssignRider(ctx context.Context, q sqlx.ExtContext, orderID, riderID string) (bool, error) {
	args := m.Called(ctx, q, orderID, riderID)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderStore) ReassignRider(ctx context.Context, q sqlx.ExtContext, orderID, riderID, prevRiderID string) (bool, error) {
	args := m.Called(ctx, q, orderID, riderID, prevRiderID)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderStore) ApplySettlement(ctx context.Context, q sqlx.ExtContext, order *entity.Order) (bool, error) {
	args := m.Called(ctx, q, order)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderStore) SetRating(ctx context.Context, orderID string, rating int, review string) (bool, error) {
	args := m.Called(ctx, orderID, rating, review)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderStore) InsertStatusHistory(ctx context.Context, q sqlx.ExtContext, h *entity.OrderStatusHistory) error {
	return m.Called(ctx, q, h).Error(0)
}

func (m *MockOrderStore) ListByRestaurant(ctx context.Context, restaurantID string, limit int) ([]entity.Order, error) {
	args := m.Called(ctx, restaurantID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Order), args.Error(1)
}

func (m *MockOrderStore) ListByRider(ctx context.Context, riderID string, limit int) ([]entity.Order, error) {
	args := m.Called(ctx, riderID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Order), args.Error(1)
}

func (m *MockOrderStore) FinanceAggregates(ctx context.Context) (int64, int64, int64, int64, int64, int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Get(1).(int64), args.Get(2).(int64),
		args.Get(3).(int64), args.Get(4).(int64), args.Get(5).(int64), args.Error(6)
}

type MockProductStore struct{ mock.Mock }

func (m *MockProductStore) FindByIDs(ctx context.Context, restaurantID string, ids []string) ([]entity.Product, error) {
	args := m.Called(ctx, restaurantID, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Product), args.Error(1)
}

func (m *MockProductStore) DecrementStock(ctx context.Context, q sqlx.ExtContext, productID string, quantity int) (bool, error) {
	args := m.Called(ctx, q, productID, quantity)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductStore) RestoreStock(ctx context.Context, q sqlx.ExtContext, productID string, quantity int) error {
	return m.Called(ctx, q, productID, quantity).Error(0)
}

type MockPromoStore struct{ mock.Mock }

func (m *MockPromoStore) FindByCode(ctx context.Context, code string) (*entity.Promo, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Promo), args.Error(1)
}

type MockRestaurantStore struct{ mock.Mock }

func (m *MockRestaurantStore) FindByID(ctx context.Context, id string) (*entity.Restaurant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Restaurant), args.Error(1)
}

type MockRiderStore struct{ mock.Mock }

func (m *MockRiderStore) FindByID(ctx context.Context, id string) (*entity.Rider, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Rider), args.Error(1)
}

func (m *MockRiderStore) FindByIDForUpdate(ctx context.Context, q sqlx.ExtContext, id string) (*entity.Rider, error) {
	args := m.Called(ctx, q, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Rider), args.Error(1)
}

func (m *MockRiderStore) SetCurrentOrder(ctx context.Context, q sqlx.ExtContext, riderID string, orderID *string) error {
	return m.Called(ctx, q, riderID, orderID).Error(0)
}

func (m *MockRiderStore) AccrueCOD(ctx context.Context, q sqlx.ExtContext, riderID string, cash, earning int64) error {
	return m.Called(ctx, q, riderID, cash, earning).Error(0)
}

func (m *MockRiderStore) SettleCOD(ctx context.Context, q sqlx.ExtContext, riderID string, amountCollected, earningsPaid int64) error {
	return m.Called(ctx, q, riderID, amountCollected, earningsPaid).Error(0)
}

func (m *MockRiderStore) SetSettlementStatus(ctx context.Context, q sqlx.ExtContext, riderID, status string) error {
	return m.Called(ctx, q, riderID, status).Error(0)
}

func (m *MockRiderStore) AddRating(ctx context.Context, riderID string, rating int) error {
	return m.Called(ctx, riderID, rating).Error(0)
}

type MockWalletStore struct{ mock.Mock }

func (m *MockWalletStore) GetRestaurantWalletForUpdate(ctx context.Context, q sqlx.ExtContext, restaurantID string) (*entity.RestaurantWallet, error) {
	args := m.Called(ctx, q, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.RestaurantWallet), args.Error(1)
}

func (m *MockWalletStore) SaveRestaurantWallet(ctx context.Context, q sqlx.ExtContext, w *entity.RestaurantWallet) error {
	return m.Called(ctx, q, w).Error(0)
}

func (m *MockWalletStore) GetRiderWalletForUpdate(ctx context.Context, q sqlx.ExtContext, riderID string) (*entity.RiderWallet, error) {
	args := m.Called(ctx, q, riderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.RiderWallet), args.Error(1)
}

func (m *MockWalletStore) SaveRiderWallet(ctx context.Context, q sqlx.ExtContext, w *entity.RiderWallet) error {
	return m.Called(ctx, q, w).Error(0)
}

func (m *MockWalletStore) FindRestaurantWallet(ctx context.Context, restaurantID string) (*entity.RestaurantWallet, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.RestaurantWallet), args.Error(1)
}

func (m *MockWalletStore) FindRiderWallet(ctx context.Context, riderID string) (*entity.RiderWallet, error) {
	args := m.Called(ctx, riderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.RiderWallet), args.Error(1)
}

type MockTransactionStore struct{ mock.Mock }

func (m *MockTransactionStore) Insert(ctx context.Context, q sqlx.ExtContext, txn *entity.Transaction) error {
	return m.Called(ctx, q, txn).Error(0)
}

func (m *MockTransactionStore) ListByEntity(ctx context.Context, entityType, entityID string) ([]entity.Transaction, error) {
	args := m.Called(ctx, entityType, entityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Transaction), args.Error(1)
}

func (m *MockTransactionStore) SumByEntity(ctx context.Context, q sqlx.ExtContext, entityType, entityID string) (int64, error) {
	args := m.Called(ctx, q, entityType, entityID)
	return args.Get(0).(int64), args.Error(1)
}

type MockCODStore struct{ mock.Mock }

func (m *MockCODStore) Insert(ctx context.Context, q sqlx.ExtContext, e *entity.CODLedgerEntry) error {
	return m.Called(ctx, q, e).Error(0)
}

func (m *MockCODStore) MarkAllPaid(ctx context.Context, q sqlx.ExtContext, riderID string, ref *string, settledAt time.Time) (int64, error) {
	args := m.Called(ctx, q, riderID, ref, settledAt)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCODStore) ListPendingByRider(ctx context.Context, riderID string) ([]entity.CODLedgerEntry, error) {
	args := m.Called(ctx, riderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.CODLedgerEntry), args.Error(1)
}

func (m *MockCODStore) SumOutstanding(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockPayoutStore struct{ mock.Mock }

func (m *MockPayoutStore) Insert(ctx context.Context, q sqlx.ExtContext, p *entity.Payout) error {
	return m.Called(ctx, q, p).Error(0)
}

func (m *MockPayoutStore) FindByID(ctx context.Context, payoutID string) (*entity.Payout, error) {
	args := m.Called(ctx, payoutID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Payout), args.Error(1)
}

func (m *MockPayoutStore) MarkPaid(ctx context.Context, payoutID, bankRef, processedBy string) (bool, error) {
	args := m.Called(ctx, payoutID, bankRef, processedBy)
	return args.Bool(0), args.Error(1)
}

func (m *MockPayoutStore) SumPending(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockSettingsStore struct{ mock.Mock }

func (m *MockSettingsStore) Get(ctx context.Context) (*entity.PlatformSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PlatformSettings), args.Error(1)
}

func (m *MockSettingsStore) Save(ctx context.Context, s *entity.PlatformSettings) error {
	return m.Called(ctx, s).Error(0)
}
