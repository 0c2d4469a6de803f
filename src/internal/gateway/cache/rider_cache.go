package cache

import (
	"context"
	"fmt"

	"foodswipe-order-service/src/pkg/log"

	"github.com/redis/go-redis/v9"
)

const (
	onlineRidersKey  = "RIDER:ONLINE"
	overdueKeyPrefix = "RIDER:OVERDUE:"
)

// RiderCache keeps the online-rider pool and a mirror of the COD overdue
// flag in redis. The database stays authoritative; the mirror only serves
// cheap assignment-time rejections.
type RiderCache struct {
	Redis redis.UniversalClient
	Log   log.Log
}

func NewRiderCache(redisClient redis.UniversalClient, logger log.Log) *RiderCache {
	return &RiderCache{Redis: redisClient, Log: logger}
}

func (c *RiderCache) SetOnline(ctx context.Context, riderID string) error {
	return c.Redis.SAdd(ctx, onlineRidersKey, riderID).Err()
}

func (c *RiderCache) SetOffline(ctx context.Context, riderID string) error {
	return c.Redis.SRem(ctx, onlineRidersKey, riderID).Err()
}

func (c *RiderCache) OnlineCount(ctx context.Context) (int64, error) {
	return c.Redis.SCard(ctx, onlineRidersKey).Result()
}

func (c *RiderCache) MarkOverdue(ctx context.Context, riderID string) {
	if err := c.Redis.Set(ctx, overdueKeyPrefix+riderID, "1", 0).Err(); err != nil {
		c.Log.Warn("rider-cache", fmt.Sprintf("failed mirror overdue flag: %v", err), "MarkOverdue", riderID)
	}
}

func (c *RiderCache) ClearOverdue(ctx context.Context, riderID string) {
	if err := c.Redis.Del(ctx, overdueKeyPrefix+riderID).Err(); err != nil {
		c.Log.Warn("rider-cache", fmt.Sprintf("failed clear overdue flag: %v", err), "ClearOverdue", riderID)
	}
}

// IsOverdue is best effort: a redis failure reports false and the caller
// falls through to the database check.
func (c *RiderCache) IsOverdue(ctx context.Context, riderID string) bool {
	n, err := c.Redis.Exists(ctx, overdueKeyPrefix+riderID).Result()
	if err != nil {
		return false
	}
	return n > 0
}
