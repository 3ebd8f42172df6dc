package application

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/wyfcoding/pkg/contextx"
	"github.com/wyfcoding/pkg/logging"
	"github.com/wyfcoding/pkg/messagequeue"

	"github.com/wyfcoding/exchange/internal/order/domain"
)

// OrderCommandService 处理订单相关的命令操作（下单、取消）。
// 每个操作在一个事务内完成全部读写；事件经 Outbox 与业务写入同事务落库。
type OrderCommandService struct {
	orders    domain.OrderRepository
	users     domain.UserRepository
	assets    domain.AssetRepository
	fees      domain.FeeCalculator
	readRepo  domain.OrderReadRepository
	publisher messagequeue.EventPublisher
}

// NewOrderCommandService 构造函数；readRepo 与 publisher 允许为 nil（降级运行）。
func NewOrderCommandService(
	orders domain.OrderRepository,
	users domain.UserRepository,
	assets domain.AssetRepository,
	fees domain.FeeCalculator,
	readRepo domain.OrderReadRepository,
	publisher messagequeue.EventPublisher,
) *OrderCommandService {
	return &OrderCommandService{
		orders:    orders,
		users:     users,
		assets:    assets,
		fees:      fees,
		readRepo:  readRepo,
		publisher: publisher,
	}
}

// CreateOrder 下单。
// 前置条件按序检查：用户存在、资产代码可识别；手续费在首次持久化前计算一次。
func (s *OrderCommandService) CreateOrder(ctx context.Context, cmd CreateOrderCommand) (*OrderDTO, error) {
	var order *domain.Order
	err := s.orders.WithTx(ctx, func(txCtx context.Context) error {
		owner, err := s.users.FindByID(txCtx, cmd.UserID)
		if err != nil {
			return err
		}
		if owner == nil {
			return domain.ErrUserNotFound
		}

		asset, err := s.assets.FindBySymbol(txCtx, cmd.Asset)
		if err != nil {
			return err
		}
		if asset == nil {
			return domain.ErrAssetNotRecognized
		}

		order = domain.NewOrder(owner.ID, asset, cmd.Type, cmd.Price)
		order.Fee = s.fees.Calculate(order, owner)

		if err := s.orders.Save(txCtx, order); err != nil {
			return err
		}

		if s.publisher == nil {
			return nil
		}
		event := domain.OrderCreatedEvent{
			OrderID:    order.ID,
			UserID:     order.UserID,
			Symbol:     order.Symbol,
			Type:       string(order.Type),
			Price:      order.Price.StringFixed(2),
			Fee:        order.Fee.StringFixed(2),
			Status:     string(order.Status),
			OccurredOn: time.Now(),
		}
		return s.publisher.PublishInTx(ctx, contextx.GetTx(txCtx), domain.OrderCreatedEventType, formatOrderID(order.ID), event)
	})
	if err != nil {
		return nil, err
	}

	logging.Info(ctx, "order created",
		"order_id", order.ID, "user_id", order.UserID, "symbol", order.Symbol, "fee", order.Fee.StringFixed(2))
	return toOrderDTO(order), nil
}

// CancelOrder 取消订单。
// 不存在与已取消对外同样报 ErrOrderNotFound；已完成报 ErrOrderCancellation。
// 同一 ID 第二次取消因此得到 ErrOrderNotFound，而非静默成功。
func (s *OrderCommandService) CancelOrder(ctx context.Context, orderID uint) error {
	err := s.orders.WithTx(ctx, func(txCtx context.Context) error {
		order, err := s.orders.FindByID(txCtx, orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrOrderNotFound
		}

		if err := order.Cancel(); err != nil {
			return err
		}
		if err := s.orders.Save(txCtx, order); err != nil {
			return err
		}

		if s.publisher == nil {
			return nil
		}
		event := domain.OrderCancelledEvent{
			OrderID:    order.ID,
			UserID:     order.UserID,
			Symbol:     order.Symbol,
			OccurredOn: time.Now(),
		}
		return s.publisher.PublishInTx(ctx, contextx.GetTx(txCtx), domain.OrderCancelledEventType, formatOrderID(order.ID), event)
	})
	if err != nil {
		return err
	}

	// 提交后失效读缓存，点查不会再命中取消前的旧副本。
	// 失效失败按错误上报：旧副本在 TTL 内仍可见，不能当作取消成功。
	if s.readRepo != nil {
		if err := s.readRepo.Delete(ctx, orderID); err != nil {
			logging.Error(ctx, "failed to invalidate order read cache", "order_id", orderID, "error", err)
			return fmt.Errorf("failed to invalidate order read cache: %w", err)
		}
	}

	logging.Info(ctx, "order cancelled", "order_id", orderID)
	return nil
}

func formatOrderID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
