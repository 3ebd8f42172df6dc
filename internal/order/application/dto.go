package application

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/wyfcoding/exchange/internal/order/domain"
)

// CreateOrderCommand 下单命令，字段已由接口层完成语法校验。
type CreateOrderCommand struct {
	UserID uint
	Asset  string
	Price  decimal.Decimal
	Type   domain.OrderType
}

// SearchOrdersQuery 订单检索查询，Status 为空表示未指定过滤条件。
type SearchOrdersQuery struct {
	UserID uint
	Status domain.OrderStatus
	Page   domain.Page
}

// OrderDTO 订单对外表示
type OrderDTO struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	Asset     string    `json:"asset"`
	Type      string    `json:"type"`
	Price     string    `json:"price"`
	Fee       string    `json:"fee"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

func toOrderDTO(o *domain.Order) *OrderDTO {
	return &OrderDTO{
		ID:        o.ID,
		UserID:    o.UserID,
		Asset:     o.Symbol,
		Type:      string(o.Type),
		Price:     o.Price.StringFixed(2),
		Fee:       o.Fee.StringFixed(2),
		Status:    string(o.Status),
		Timestamp: o.CreatedAt,
	}
}

func toOrderDTOs(orders []*domain.Order) []*OrderDTO {
	dtos := make([]*OrderDTO, len(orders))
	for i, o := range orders {
		dtos[i] = toOrderDTO(o)
	}
	return dtos
}
