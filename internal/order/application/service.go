package application

import (
	"context"
)

// OrderService 订单服务门面，整合命令与查询服务。
type OrderService struct {
	Command *OrderCommandService
	Query   *OrderQueryService
}

// NewOrderService 构造函数
func NewOrderService(command *OrderCommandService, query *OrderQueryService) *OrderService {
	return &OrderService{
		Command: command,
		Query:   query,
	}
}

// --- Command (Writes) ---

// CreateOrder 下单
func (s *OrderService) CreateOrder(ctx context.Context, cmd CreateOrderCommand) (*OrderDTO, error) {
	return s.Command.CreateOrder(ctx, cmd)
}

// CancelOrder 取消订单
func (s *OrderService) CancelOrder(ctx context.Context, orderID uint) error {
	return s.Command.CancelOrder(ctx, orderID)
}

// --- Query (Reads) ---

// GetOrder 获取订单详情
func (s *OrderService) GetOrder(ctx context.Context, orderID uint) (*OrderDTO, error) {
	return s.Query.GetOrder(ctx, orderID)
}

// SearchOrders 检索用户订单
func (s *OrderService) SearchOrders(ctx context.Context, query SearchOrdersQuery) ([]*OrderDTO, int64, error) {
	return s.Query.SearchOrders(ctx, query)
}
