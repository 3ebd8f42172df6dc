// Package redis 提供订单点查读缓存。
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/wyfcoding/exchange/internal/order/domain"
)

// OrderRedisRepository 实现 domain.OrderReadRepository。
// 缓存保存订单原始状态，取消订单的可见性规则由查询服务判断；
// 取消命令提交后调用 Delete 失效旧副本。
// 回写只发生在点查的读修复路径，TTL 取短值，约束读修复与取消
// 竞态下陈旧副本的最大存活窗口。
type OrderRedisRepository struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewOrderRedisRepository 创建订单读缓存实例
func NewOrderRedisRepository(client redis.UniversalClient) *OrderRedisRepository {
	return &OrderRedisRepository{
		client: client,
		prefix: "order:",
		ttl:    time.Minute,
	}
}

// Save 写入/覆盖缓存副本
func (r *OrderRedisRepository) Save(ctx context.Context, order *domain.Order) error {
	if order == nil {
		return nil
	}
	data, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("failed to marshal order: %w", err)
	}
	return r.client.Set(ctx, r.key(order.ID), data, r.ttl).Err()
}

// Get 未命中返回 (nil, nil)
func (r *OrderRedisRepository) Get(ctx context.Context, orderID uint) (*domain.Order, error) {
	data, err := r.client.Get(ctx, r.key(orderID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get order from redis: %w", err)
	}
	var order domain.Order
	if err := json.Unmarshal(data, &order); err != nil {
		return nil, fmt.Errorf("failed to unmarshal order: %w", err)
	}
	return &order, nil
}

// Delete 失效缓存副本，键不存在视为成功
func (r *OrderRedisRepository) Delete(ctx context.Context, orderID uint) error {
	return r.client.Del(ctx, r.key(orderID)).Err()
}

func (r *OrderRedisRepository) key(orderID uint) string {
	return r.prefix + strconv.FormatUint(uint64(orderID), 10)
}
