package config

import (
	"time"

	"foodswipe-order-service/src/internal/delivery/http"
	"foodswipe-order-service/src/internal/delivery/http/middleware"
	"foodswipe-order-service/src/internal/delivery/http/route"
	"foodswipe-order-service/src/internal/gateway/cache"
	"foodswipe-order-service/src/internal/gateway/geo"
	"foodswipe-order-service/src/internal/gateway/messaging"
	"foodswipe-order-service/src/internal/model"
	"foodswipe-order-service/src/internal/repository"
	"foodswipe-order-service/src/internal/usecase"
	"foodswipe-order-service/src/pkg/databases/mysql"
	kafkaPkgConfluent "foodswipe-order-service/src/pkg/kafka/confluent"
	"foodswipe-order-service/src/pkg/log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

type BootstrapConfig struct {
	DB          mysql.DBInterface
	App         *fiber.App
	Log         log.Log
	Validate    *validator.Validate
	Config      *viper.Viper
	Producer    kafkaPkgConfluent.Producer
	Redis       redis.UniversalClient
	Geoservice  *GeoService
	AsynqClient *asynq.Client
	Async       *asynq.ServeMux
}

func Bootstrap(config *BootstrapConfig) {
	// setup repositories
	txManager := repository.NewTxManager(config.DB)
	orderRepository := repository.NewOrderRepository(config.DB)
	productRepository := repository.NewProductRepository(config.DB)
	promoRepository := repository.NewPromoRepository(config.DB)
	restaurantRepository := repository.NewRestaurantRepository(config.DB)
	riderRepository := repository.NewRiderRepository(config.DB)
	walletRepository := repository.NewWalletRepository(config.DB)
	transactionRepository := repository.NewTransactionRepository(config.DB)
	codRepository := repository.NewCODRepository(config.DB)
	payoutRepository := repository.NewPayoutRepository(config.DB)
	settingsRepository := repository.NewSettingsRepository(config.DB)

	orderProducer := messaging.NewOrderProducer(config.Producer, config.Log)
	walletProducer := messaging.NewWalletProducer(config.Producer, config.Log)
	distance := geo.NewGoogleDistance(config.Geoservice.Client, config.Log)
	riderCache := cache.NewRiderCache(config.Redis, config.Log)

	// setup use cases
	settingsUseCase := usecase.NewSettingsUseCase(
		config.Log,
		settingsRepository,
		config.Redis,
		time.Duration(config.Config.GetInt("settings.cache_ttl_seconds"))*time.Second,
	)
	walletUseCase := usecase.NewWalletUseCase(config.Log, walletRepository, transactionRepository)
	codUseCase := usecase.NewCODUseCase(
		config.Log,
		config.Validate,
		txManager,
		riderRepository,
		codRepository,
		walletUseCase,
		settingsUseCase,
		riderCache,
		walletProducer,
	)
	settlementUseCase := usecase.NewSettlementUseCase(
		config.Log,
		orderRepository,
		restaurantRepository,
		riderRepository,
		walletUseCase,
		codUseCase,
		settingsUseCase,
		distance,
	)
	orderUseCase := usecase.NewOrderUseCase(
		config.Log,
		config.Validate,
		txManager,
		orderRepository,
		productRepository,
		promoRepository,
		restaurantRepository,
		riderRepository,
		settingsUseCase,
		settlementUseCase,
		orderProducer,
		distance,
		riderCache,
		config.AsynqClient,
	)
	financeUseCase := usecase.NewFinanceUseCase(
		config.Log,
		config.Validate,
		txManager,
		orderRepository,
		walletRepository,
		transactionRepository,
		codRepository,
		payoutRepository,
		walletUseCase,
		settingsUseCase,
		walletProducer,
	)

	// setup controllers
	orderController := http.NewOrderController(orderUseCase, config.Log)
	financeController := http.NewFinanceController(financeUseCase, codUseCase, config.Log)

	// setup middleware
	authMiddleware := middleware.VerifyBearer(config.Config)

	config.Async.HandleFunc(model.TypeBroadcastAvailable, orderUseCase.HandleBroadcastAvailable)

	routeConfig := route.RouteConfig{
		App:               config.App,
		OrderController:   orderController,
		FinanceController: financeController,
		AuthMiddleware:    authMiddleware,
	}
	routeConfig.Setup()
}
