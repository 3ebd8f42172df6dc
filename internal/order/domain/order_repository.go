package domain

import "context"

// SortKey 排序键，Property 由仓储实现映射到具体列。
type SortKey struct {
	Property string
	Desc     bool
}

// Page 分页/排序描述符。核心不解释其语义，原样传递给仓储。
type Page struct {
	Number int // 从 0 开始
	Size   int
	Sort   []SortKey
}

// OrderRepository 订单仓储接口。
// WithTx 将回调内的所有读写纳入同一事务，保证取消等读-改-写操作不被并发撕裂。
type OrderRepository interface {
	WithTx(ctx context.Context, fn func(txCtx context.Context) error) error
	// Save 首次保存分配 ID，其后按 ID 更新
	Save(ctx context.Context, order *Order) error
	// FindByID 未找到时返回 (nil, nil)
	FindByID(ctx context.Context, id uint) (*Order, error)
	// ListByUserAndStatus 按用户与状态检索一页订单，返回该页数据与总数
	ListByUserAndStatus(ctx context.Context, userID uint, status OrderStatus, page Page) ([]*Order, int64, error)
	// ListByUserExcludingStatus 按用户检索但排除指定状态
	ListByUserExcludingStatus(ctx context.Context, userID uint, excluded OrderStatus, page Page) ([]*Order, int64, error)
}

// OrderReadRepository 点查用的读缓存，未命中返回 (nil, nil)。
// 写路径在订单状态变更后调用 Delete 失效缓存副本。
type OrderReadRepository interface {
	Get(ctx context.Context, id uint) (*Order, error)
	Save(ctx context.Context, order *Order) error
	Delete(ctx context.Context, id uint) error
}
