package domain

import (
	"context"

	"gorm.io/gorm"
)

// Asset 可交易资产，Symbol 为唯一短代码（如 "BTC"），本服务只读。
type Asset struct {
	gorm.Model
	Symbol string
	Name   string
}

// AssetRepository 资产目录
type AssetRepository interface {
	// FindBySymbol 按短代码精确（区分大小写）匹配，未找到时返回 (nil, nil)
	FindBySymbol(ctx context.Context, symbol string) (*Asset, error)
}
