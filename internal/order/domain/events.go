package domain

import "time"

// 事件类型即 Kafka topic
const (
	OrderCreatedEventType   = "order.created"
	OrderCancelledEventType = "order.cancelled"
)

// OrderCreatedEvent 订单创建事件
type OrderCreatedEvent struct {
	OrderID    uint      `json:"order_id"`
	UserID     uint      `json:"user_id"`
	Symbol     string    `json:"symbol"`
	Type       string    `json:"type"`
	Price      string    `json:"price"`
	Fee        string    `json:"fee"`
	Status     string    `json:"status"`
	OccurredOn time.Time `json:"occurred_on"`
}

// OrderCancelledEvent 订单取消事件
type OrderCancelledEvent struct {
	OrderID    uint      `json:"order_id"`
	UserID     uint      `json:"user_id"`
	Symbol     string    `json:"symbol"`
	OccurredOn time.Time `json:"occurred_on"`
}
