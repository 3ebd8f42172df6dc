package domain

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// User 用户实体
// 由外部用户管理流程维护，本服务只读；Fee 为按比例手续费率（价格的占比）。
type User struct {
	gorm.Model
	FirstName string
	LastName  string
	Email     string
	Fee       decimal.Decimal
}

// UserRepository 用户目录
type UserRepository interface {
	// FindByID 未找到时返回 (nil, nil)
	FindByID(ctx context.Context, id uint) (*User, error)
}
