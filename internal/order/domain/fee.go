package domain

import "github.com/shopspring/decimal"

// FeeCalculator 手续费策略。
// 调用方保证 owner 与订单价格均已解析完毕；替换费率方案（阶梯、保底等）
// 只需提供新的实现，无需改动生命周期服务。
type FeeCalculator interface {
	Calculate(order *Order, owner *User) decimal.Decimal
}

// ProportionalFeeCalculator 固定比例手续费：fee = owner.Fee * order.Price。
type ProportionalFeeCalculator struct{}

// NewProportionalFeeCalculator 构造函数
func NewProportionalFeeCalculator() ProportionalFeeCalculator {
	return ProportionalFeeCalculator{}
}

// Calculate 结果保留两位小数，与价格同一精度域。无副作用。
func (ProportionalFeeCalculator) Calculate(order *Order, owner *User) decimal.Decimal {
	return owner.Fee.Mul(order.Price).Round(2)
}
