package mysql

import (
	"context"
	"errors"
	"fmt"

	"github.com/wyfcoding/pkg/contextx"
	"github.com/wyfcoding/pkg/logging"
	"gorm.io/gorm"

	"github.com/wyfcoding/exchange/internal/order/domain"
)

// sortColumns 排序属性到列名的白名单映射，未知属性被忽略。
var sortColumns = map[string]string{
	"id":        "id",
	"timestamp": "created_at",
	"price":     "price",
	"fee":       "fee",
	"status":    "status",
}

const defaultPageSize = 20

// orderRepositoryImpl 是 domain.OrderRepository 接口的 GORM 实现。
type orderRepositoryImpl struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓储实例
func NewOrderRepository(db *gorm.DB) domain.OrderRepository {
	return &orderRepositoryImpl{db: db}
}

// getDB 优先使用上下文中的事务句柄
func (r *orderRepositoryImpl) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := contextx.GetTx(ctx).(*gorm.DB); ok && tx != nil {
		return tx
	}
	return r.db
}

// WithTx 实现 domain.OrderRepository.WithTx
func (r *orderRepositoryImpl) WithTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(contextx.WithTx(ctx, tx))
	})
}

// Save 实现 domain.OrderRepository.Save：零值主键插入，否则整行更新。
func (r *orderRepositoryImpl) Save(ctx context.Context, order *domain.Order) error {
	model := fromDomainOrder(order)
	if err := r.getDB(ctx).WithContext(ctx).Save(model).Error; err != nil {
		logging.Error(ctx, "order_repository.save failed", "order_id", order.ID, "error", err)
		return fmt.Errorf("failed to save order: %w", err)
	}
	order.Model = model.Model
	return nil
}

// FindByID 实现 domain.OrderRepository.FindByID
func (r *orderRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Order, error) {
	var model OrderModel
	if err := r.getDB(ctx).WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		logging.Error(ctx, "order_repository.find_by_id failed", "order_id", id, "error", err)
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return toDomainOrder(&model), nil
}

// ListByUserAndStatus 实现 domain.OrderRepository.ListByUserAndStatus
func (r *orderRepositoryImpl) ListByUserAndStatus(ctx context.Context, userID uint, status domain.OrderStatus, page domain.Page) ([]*domain.Order, int64, error) {
	q := r.getDB(ctx).WithContext(ctx).Model(&OrderModel{}).
		Where("user_id = ? AND status = ?", userID, string(status))
	return r.listPage(ctx, q, userID, page)
}

// ListByUserExcludingStatus 实现 domain.OrderRepository.ListByUserExcludingStatus
func (r *orderRepositoryImpl) ListByUserExcludingStatus(ctx context.Context, userID uint, excluded domain.OrderStatus, page domain.Page) ([]*domain.Order, int64, error) {
	q := r.getDB(ctx).WithContext(ctx).Model(&OrderModel{}).
		Where("user_id = ? AND status <> ?", userID, string(excluded))
	return r.listPage(ctx, q, userID, page)
}

func (r *orderRepositoryImpl) listPage(ctx context.Context, q *gorm.DB, userID uint, page domain.Page) ([]*domain.Order, int64, error) {
	var total int64
	if err := q.Count(&total).Error; err != nil {
		logging.Error(ctx, "order_repository.count failed", "user_id", userID, "error", err)
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	size := page.Size
	if size <= 0 {
		size = defaultPageSize
	}
	offset := 0
	if page.Number > 0 {
		offset = page.Number * size
	}

	ordered := false
	for _, key := range page.Sort {
		column, ok := sortColumns[key.Property]
		if !ok {
			continue
		}
		dir := "asc"
		if key.Desc {
			dir = "desc"
		}
		q = q.Order(column + " " + dir)
		ordered = true
	}
	if !ordered {
		q = q.Order("created_at desc")
	}

	var models []OrderModel
	if err := q.Limit(size).Offset(offset).Find(&models).Error; err != nil {
		logging.Error(ctx, "order_repository.list failed", "user_id", userID, "error", err)
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}

	orders := make([]*domain.Order, len(models))
	for i := range models {
		orders[i] = toDomainOrder(&models[i])
	}
	return orders, total, nil
}

func fromDomainOrder(o *domain.Order) *OrderModel {
	return &OrderModel{
		Model:   o.Model,
		UserID:  o.UserID,
		AssetID: o.AssetID,
		Symbol:  o.Symbol,
		Type:    string(o.Type),
		Price:   o.Price,
		Fee:     o.Fee,
		Status:  string(o.Status),
	}
}

func toDomainOrder(m *OrderModel) *domain.Order {
	return &domain.Order{
		Model:   m.Model,
		UserID:  m.UserID,
		AssetID: m.AssetID,
		Symbol:  m.Symbol,
		Type:    domain.OrderType(m.Type),
		Price:   m.Price,
		Fee:     m.Fee,
		Status:  domain.OrderStatus(m.Status),
	}
}
