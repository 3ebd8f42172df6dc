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

// assetRepositoryImpl 是 domain.AssetRepository 接口的 GORM 实现。
type assetRepositoryImpl struct {
	db *gorm.DB
}

// NewAssetRepository 创建资产目录实例
func NewAssetRepository(db *gorm.DB) domain.AssetRepository {
	return &assetRepositoryImpl{db: db}
}

func (r *assetRepositoryImpl) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := contextx.GetTx(ctx).(*gorm.DB); ok && tx != nil {
		return tx
	}
	return r.db
}

// FindBySymbol 实现 domain.AssetRepository.FindBySymbol。
// symbol 列使用区分大小写的排序规则，匹配为精确匹配。
func (r *assetRepositoryImpl) FindBySymbol(ctx context.Context, symbol string) (*domain.Asset, error) {
	var model AssetModel
	if err := r.getDB(ctx).WithContext(ctx).Where("symbol = ?", symbol).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		logging.Error(ctx, "asset_repository.find_by_symbol failed", "symbol", symbol, "error", err)
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}
	return &domain.Asset{
		Model:  model.Model,
		Symbol: model.Symbol,
		Name:   model.Name,
	}, nil
}
