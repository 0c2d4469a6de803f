package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"foodswipe-order-service/src/internal/entity"
	"foodswipe-order-service/src/internal/pricing"
	"foodswipe-order-service/src/pkg/log"

	"github.com/redis/go-redis/v9"
)

const settingsCacheKey = "PLATFORM:SETTINGS"

// SettingsUseCase serves the read-mostly platform settings through a short
// redis TTL cache. A write invalidates the cache; if both redis and the
// database are down, the last-known-good copy keeps pricing alive.
type SettingsUseCase struct {
	Log      log.Log
	Store    SettingsStore
	Redis    redis.UniversalClient
	CacheTTL time.Duration

	mu       sync.RWMutex
	lastGood *entity.PlatformSettings
}

func NewSettingsUseCase(logger log.Log, store SettingsStore, redisClient redis.UniversalClient, cacheTTL time.Duration) *SettingsUseCase {
	return &SettingsUseCase{
		Log:      logger,
		Store:    store,
		Redis:    redisClient,
		CacheTTL: cacheTTL,
	}
}

func (c *SettingsUseCase) Get(ctx context.Context) (*entity.PlatformSettings, error) {
	if data, err := c.Redis.Get(ctx, settingsCacheKey).Result(); err == nil && data != "" {
		var settings entity.PlatformSettings
		if err := json.Unmarshal([]byte(data), &settings); err == nil {
			c.remember(&settings)
			return &settings, nil
		}
	}

	settings, err := c.Store.Get(ctx)
	if err != nil {
		c.Log.Error("settings-usecase", fmt.Sprintf("settings load failed: %v", err), "Get", "")
		c.mu.RLock()
		fallback := c.lastGood
		c.mu.RUnlock()
		if fallback != nil {
			c.Log.Warn("settings-usecase", "serving last-known-good settings", "Get", "")
			return fallback, nil
		}
		return nil, err
	}

	c.remember(settings)
	if data, err := json.Marshal(settings); err == nil {
		if err := c.Redis.Set(ctx, settingsCacheKey, data, c.CacheTTL).Err(); err != nil {
			c.Log.Warn("settings-usecase", fmt.Sprintf("settings cache write failed: %v", err), "Get", "")
		}
	}
	return settings, nil
}

func (c *SettingsUseCase) Update(ctx context.Context, apply func(s *entity.PlatformSettings)) (*entity.PlatformSettings, error) {
	settings, err := c.Store.Get(ctx)
	if err != nil {
		return nil, err
	}

	apply(settings)
	if err := c.Store.Save(ctx, settings); err != nil {
		return nil, err
	}

	c.remember(settings)
	if err := c.Redis.Del(ctx, settingsCacheKey).Err(); err != nil {
		c.Log.Warn("settings-usecase", fmt.Sprintf("settings cache invalidation failed: %v", err), "Update", "")
	}
	return settings, nil
}

func (c *SettingsUseCase) remember(s *entity.PlatformSettings) {
	c.mu.Lock()
	c.lastGood = s
	c.mu.Unlock()
}

// PricingConfig snapshots settings into the pure pricing configuration.
func PricingConfig(s *entity.PlatformSettings) pricing.Config {
	return pricing.Config{
		BaseDeliveryFee:         s.BaseDeliveryFee,
		PerKmDeliveryRate:       s.PerKmDeliveryRate,
		MaxDeliveryFee:          s.MaxDeliveryFee,
		ServiceFee:              s.ServiceFee,
		TaxEnabled:              s.TaxEnabled,
		TaxRate:                 s.TaxRate,
		GatewayFeeRate:          s.GatewayFeeRate,
		RiderBasePay:            s.RiderBasePay,
		RiderPerKmRate:          s.RiderPerKmRate,
		RiderPlatformFeePercent: s.RiderPlatformFeePercent,
		DefaultDistanceKm:       s.DefaultDistanceKm,
	}
}
