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

// userRepositoryImpl 是 domain.UserRepository 接口的 GORM 实现。
type userRepositoryImpl struct {
	db *gorm.DB
}

// NewUserRepository 创建用户目录实例
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &userRepositoryImpl{db: db}
}

func (r *userRepositoryImpl) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := contextx.GetTx(ctx).(*gorm.DB); ok && tx != nil {
		return tx
	}
	return r.db
}

// FindByID 实现 domain.UserRepository.FindByID
func (r *userRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	var model UserModel
	if err := r.getDB(ctx).WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		logging.Error(ctx, "user_repository.find_by_id failed", "user_id", id, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &domain.User{
		Model:     model.Model,
		FirstName: model.FirstName,
		LastName:  model.LastName,
		Email:     model.Email,
		Fee:       model.Fee,
	}, nil
}
