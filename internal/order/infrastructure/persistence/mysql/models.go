// Package mysql 提供订单、用户、资产仓储接口的 MySQL GORM 实现。
package mysql

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderModel 订单数据库模型，映射 orders 表。
// 价格/手续费列为 decimal(7,2)：最多 5 位整数 + 2 位小数。
type OrderModel struct {
	gorm.Model
	UserID  uint            `gorm:"column:user_id;index;not null"`
	AssetID uint            `gorm:"column:asset_id;not null"`
	Symbol  string          `gorm:"column:symbol;type:varchar(20);not null"`
	Type    string          `gorm:"column:type;type:varchar(10);not null"`
	Price   decimal.Decimal `gorm:"column:price;type:decimal(7,2);not null"`
	Fee     decimal.Decimal `gorm:"column:fee;type:decimal(7,2);not null"`
	Status  string          `gorm:"column:status;type:varchar(20);index;not null"`
}

// TableName 指定表名
func (OrderModel) TableName() string {
	return "orders"
}

// UserModel 用户数据库模型，映射 users 表。
type UserModel struct {
	gorm.Model
	FirstName string          `gorm:"column:first_name;type:varchar(64)"`
	LastName  string          `gorm:"column:last_name;type:varchar(64)"`
	Email     string          `gorm:"column:email;type:varchar(128)"`
	Fee       decimal.Decimal `gorm:"column:fee;type:decimal(5,4);not null"`
}

// TableName 指定表名
func (UserModel) TableName() string {
	return "users"
}

// AssetModel 资产数据库模型，映射 assets 表。
// symbol 列使用二进制排序规则，"btc" 与 "BTC" 是不同的代码。
type AssetModel struct {
	gorm.Model
	Symbol string `gorm:"column:symbol;type:varchar(20) COLLATE utf8mb4_bin;uniqueIndex;not null"`
	Name   string `gorm:"column:name;type:varchar(64)"`
}

// TableName 指定表名
func (AssetModel) TableName() string {
	return "assets"
}
