package repository

import (
	"context"
	"encoding/json"
	"errors"
	"math_practice_backend/internal/model"
	"time"

	"github.com/go-redis/redis/v8"
)

const dashboardHistoryKey = "math_practice:dashboard:history"

// DashboardCache 缓存仪表盘历史；未命中时返回 (nil, false, nil)
type DashboardCache interface {
	GetHistory(ctx context.Context) ([]model.HistoryItem, bool, error)
	SetHistory(ctx context.Context, items []model.HistoryItem, ttl time.Duration) error
	Invalidate(ctx context.Context) error
}

type RedisDashboardCache struct {
	Redis *redis.Client
}

func NewRedisDashboardCache(rdb *redis.Client) *RedisDashboardCache {
	return &RedisDashboardCache{Redis: rdb}
}

func (c *RedisDashboardCache) GetHistory(ctx context.Context) ([]model.HistoryItem, bool, error) {
	raw, err := c.Redis.Get(ctx, dashboardHistoryKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var items []model.HistoryItem
	if err := json.Unmarshal(raw, &items); err != nil {
		// 损坏的缓存视为未命中
		c.Redis.Del(ctx, dashboardHistoryKey)
		return nil, false, nil
	}
	return items, true, nil
}

func (c *RedisDashboardCache) SetHistory(ctx context.Context, items []model.HistoryItem, ttl time.Duration) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return c.Redis.Set(ctx, dashboardHistoryKey, raw, ttl).Err()
}

func (c *RedisDashboardCache) Invalidate(ctx context.Context) error {
	return c.Redis.Del(ctx, dashboardHistoryKey).Err()
}

// NoopDashboardCache 未启用 Redis 时使用
type NoopDashboardCache struct{}

func (NoopDashboardCache) GetHistory(context.Context) ([]model.HistoryItem, bool, error) {
	return nil, false, nil
}

func (NoopDashboardCache) SetHistory(context.Context, []model.HistoryItem, time.Duration) error {
	return nil
}

func (NoopDashboardCache) Invalidate(context.Context) error { return nil }
