package application

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/wyfcoding/exchange/internal/order/domain"
)

// 内存仓储，语义对齐 mysql 实现：拷贝进出，未找到返回 (nil, nil)。

type fakeOrderRepo struct {
	orders  map[uint]*domain.Order
	nextID  uint
	saveErr error
	findErr error
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[uint]*domain.Order)}
}

func (r *fakeOrderRepo) WithTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	return fn(ctx)
}

func (r *fakeOrderRepo) Save(_ context.Context, order *domain.Order) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	if order.ID == 0 {
		r.nextID++
		order.ID = r.nextID
		order.CreatedAt = time.Now()
	}
	cp := *order
	r.orders[order.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) FindByID(_ context.Context, id uint) (*domain.Order, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	stored, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *stored
	return &cp, nil
}

func (r *fakeOrderRepo) ListByUserAndStatus(_ context.Context, userID uint, status domain.OrderStatus, page domain.Page) ([]*domain.Order, int64, error) {
	return r.list(userID, page, func(o *domain.Order) bool { return o.Status == status })
}

func (r *fakeOrderRepo) ListByUserExcludingStatus(_ context.Context, userID uint, excluded domain.OrderStatus, page domain.Page) ([]*domain.Order, int64, error) {
	return r.list(userID, page, func(o *domain.Order) bool { return o.Status != excluded })
}

func (r *fakeOrderRepo) list(userID uint, page domain.Page, match func(*domain.Order) bool) ([]*domain.Order, int64, error) {
	var all []*domain.Order
	for _, o := range r.orders {
		if o.UserID != userID || !match(o) {
			continue
		}
		cp := *o
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	total := int64(len(all))
	size := page.Size
	if size <= 0 {
		size = 20
	}
	start := page.Number * size
	if start >= len(all) {
		return nil, total, nil
	}
	end := start + size
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

// seed 直接写入存储，绕过 Save 的 ID 分配
func (r *fakeOrderRepo) seed(order *domain.Order) *domain.Order {
	if order.ID == 0 {
		r.nextID++
		order.ID = r.nextID
	} else if order.ID > r.nextID {
		r.nextID = order.ID
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}
	cp := *order
	r.orders[order.ID] = &cp
	return order
}

type fakeUserRepo struct {
	users   map[uint]*domain.User
	findErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*domain.User)}
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uint) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) seed(id uint, feeRate string) *domain.User {
	u := &domain.User{Fee: decimal.RequireFromString(feeRate)}
	u.ID = id
	r.users[id] = u
	return u
}

type fakeAssetRepo struct {
	assets map[string]*domain.Asset
}

func newFakeAssetRepo() *fakeAssetRepo {
	return &fakeAssetRepo{assets: make(map[string]*domain.Asset)}
}

func (r *fakeAssetRepo) FindBySymbol(_ context.Context, symbol string) (*domain.Asset, error) {
	a, ok := r.assets[symbol]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *fakeAssetRepo) seed(id uint, symbol string) *domain.Asset {
	a := &domain.Asset{Symbol: symbol, Name: symbol}
	a.ID = id
	r.assets[symbol] = a
	return a
}

type fakeReadRepo struct {
	entries   map[uint]*domain.Order
	getErr    error
	saveErr   error
	deleteErr error
}

func newFakeReadRepo() *fakeReadRepo {
	return &fakeReadRepo{entries: make(map[uint]*domain.Order)}
}

func (r *fakeReadRepo) Get(_ context.Context, id uint) (*domain.Order, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	o, ok := r.entries[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *fakeReadRepo) Save(_ context.Context, order *domain.Order) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	cp := *order
	r.entries[order.ID] = &cp
	return nil
}

func (r *fakeReadRepo) Delete(_ context.Context, id uint) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	delete(r.entries, id)
	return nil
}
