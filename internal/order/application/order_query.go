package application

import (
	"context"

	"github.com/wyfcoding/pkg/logging"

	"github.com/wyfcoding/exchange/internal/order/domain"
)

// OrderQueryService 处理所有订单相关的查询操作。
type OrderQueryService struct {
	orders   domain.OrderRepository
	users    domain.UserRepository
	readRepo domain.OrderReadRepository
}

// NewOrderQueryService 构造函数；readRepo 允许为 nil。
func NewOrderQueryService(orders domain.OrderRepository, users domain.UserRepository, readRepo domain.OrderReadRepository) *OrderQueryService {
	return &OrderQueryService{
		orders:   orders,
		users:    users,
		readRepo: readRepo,
	}
}

// GetOrder 按 ID 获取订单。
// 不存在与已取消均报 ErrOrderNotFound（取消对消费者是逻辑删除）。
func (s *OrderQueryService) GetOrder(ctx context.Context, orderID uint) (*OrderDTO, error) {
	if s.readRepo != nil {
		cached, err := s.readRepo.Get(ctx, orderID)
		if err != nil {
			// 缓存故障降级为直查数据库
			logging.Error(ctx, "order read cache get failed", "order_id", orderID, "error", err)
		} else if cached != nil {
			if !cached.Visible() {
				return nil, domain.ErrOrderNotFound
			}
			return toOrderDTO(cached), nil
		}
	}

	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil || !order.Visible() {
		return nil, domain.ErrOrderNotFound
	}

	// 读修复回写失败不影响本次结果
	if s.readRepo != nil {
		if err := s.readRepo.Save(ctx, order); err != nil {
			logging.Error(ctx, "order read cache save failed", "order_id", orderID, "error", err)
		}
	}
	return toOrderDTO(order), nil
}

// SearchOrders 检索某个用户的订单。
// 未指定状态时默认排除 CANCELLED；显式指定状态则完全按状态返回，
// 包括显式检索 CANCELLED。分页与排序语义由仓储决定。
func (s *OrderQueryService) SearchOrders(ctx context.Context, query SearchOrdersQuery) ([]*OrderDTO, int64, error) {
	owner, err := s.users.FindByID(ctx, query.UserID)
	if err != nil {
		return nil, 0, err
	}
	if owner == nil {
		return nil, 0, domain.ErrUserNotFound
	}

	var (
		orders []*domain.Order
		total  int64
	)
	if query.Status == "" {
		orders, total, err = s.orders.ListByUserExcludingStatus(ctx, query.UserID, domain.OrderStatusCancelled, query.Page)
	} else {
		orders, total, err = s.orders.ListByUserAndStatus(ctx, query.UserID, query.Status, query.Page)
	}
	if err != nil {
		return nil, 0, err
	}
	return toOrderDTOs(orders), total, nil
}
