// Package domain 包含订单服务的领域模型。
package domain

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderStatus 订单状态
type OrderStatus string

const (
	OrderStatusNew       OrderStatus = "NEW"
	OrderStatusCompleted OrderStatus = "COMPLETED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// Valid 判断是否为已知状态值
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusNew, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// OrderType 买卖方向
type OrderType string

const (
	OrderTypeBuy  OrderType = "BUY"
	OrderTypeSell OrderType = "SELL"
)

// Valid 判断是否为已知方向
func (t OrderType) Valid() bool {
	return t == OrderTypeBuy || t == OrderTypeSell
}

// Order 订单实体
// 价格与手续费共用 decimal(7,2) 精度域；手续费在创建时计算一次，之后不再重算。
// Symbol 为下单时冗余的资产代码，避免读路径回表。
type Order struct {
	gorm.Model
	UserID  uint
	AssetID uint
	Symbol  string
	Type    OrderType
	Price   decimal.Decimal
	Fee     decimal.Decimal
	Status  OrderStatus
}

// NewOrder 创建一笔 NEW 状态的订单，手续费由调用方在持久化前计算并填入。
func NewOrder(userID uint, asset *Asset, orderType OrderType, price decimal.Decimal) *Order {
	return &Order{
		UserID:  userID,
		AssetID: asset.ID,
		Symbol:  asset.Symbol,
		Type:    orderType,
		Price:   price,
		Status:  OrderStatusNew,
	}
}

// Visible 取消是面向消费者的逻辑删除：CANCELLED 订单对点查与默认检索不可见，
// 存储层仍保留记录用于审计。
func (o *Order) Visible() bool {
	return o.Status != OrderStatusCancelled
}

// Cancel 将订单置为终态 CANCELLED。
// 状态只允许前进：已取消视同不存在，已完成不可取消。
func (o *Order) Cancel() error {
	if !o.Visible() {
		return ErrOrderNotFound
	}
	if o.Status == OrderStatusCompleted {
		return ErrOrderCancellation
	}
	o.Status = OrderStatusCancelled
	return nil
}
