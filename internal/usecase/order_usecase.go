package usecase

import (
	"context"
	"log/slog"

	"github.com/hieptb/storefront/internal/domain"
)

type OrderItemInput struct {
	ProductID string
	Quantity  int64
}

// OrderUseCase は注文の参照と変更を担います。
// 注文の作成は在庫を減らすため、注文系のキーに加えて商品系のキーも
// 無効化されます。
type OrderUseCase struct {
	orders      OrderRepository
	products    ProductRepository
	cache       domain.CacheClient
	keys        CacheKeys
	ttl         CacheTTL
	invalidator CacheInvalidator
}

func NewOrderUseCase(
	orders OrderRepository,
	products ProductRepository,
	cache domain.CacheClient,
	keys CacheKeys,
	ttl CacheTTL,
	invalidator CacheInvalidator,
) *OrderUseCase {
	return &OrderUseCase{
		orders:      orders,
		products:    products,
		cache:       cache,
		keys:        keys,
		ttl:         ttl,
		invalidator: invalidator,
	}
}

// Create は注文を作成し、対象商品の在庫を減らします
func (uc *OrderUseCase) Create(ctx context.Context, userID string, items []OrderItemInput) (*domain.Order, error) {
	if len(items) == 0 {
		return nil, domain.ErrEmptyOrder
	}

	orderItems := make([]domain.OrderItem, 0, len(items))
	fetched := make([]*domain.Product, 0, len(items))
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, domain.ErrValidation
		}
		product, err := uc.products.FindByID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		if product.Stock < item.Quantity {
			return nil, domain.ErrInvalidStock
		}
		fetched = append(fetched, product)
		orderItems = append(orderItems, domain.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  item.Quantity,
		})
	}

	order, err := domain.NewOrder(ctx, userID, orderItems)
	if err != nil {
		return nil, err
	}

	if err := uc.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	for i, product := range fetched {
		product.Stock -= order.Items[i].Quantity
		if err := uc.products.Update(ctx, product); err != nil {
			slog.Warn("在庫の更新に失敗しました", "product_id", product.ID, "error", err)
		}
	}

	uc.invalidate(ctx,
		domain.OrderChanged{UserID: order.UserID, OrderID: order.ID},
		domain.ProductChanged{ProductIDs: order.ProductIDs()},
		domain.AdminStatsStale{},
	)

	return order, nil
}

// My はユーザー自身の注文一覧を返します
func (uc *OrderUseCase) My(ctx context.Context, userID string) ([]domain.Order, error) {
	return GetOrCompute(ctx, uc.cache, uc.keys.MyOrders(userID), uc.ttl.ViewTTL(),
		func(ctx context.Context) ([]domain.Order, error) {
			return uc.orders.ListByUser(ctx, userID)
		})
}

// All はすべての注文の一覧を返します（管理者用）
func (uc *OrderUseCase) All(ctx context.Context) ([]domain.Order, error) {
	return GetOrCompute(ctx, uc.cache, uc.keys.AllOrders(), uc.ttl.ViewTTL(),
		func(ctx context.Context) ([]domain.Order, error) {
			return uc.orders.List(ctx)
		})
}

// Get は単一の注文ビューを返します
func (uc *OrderUseCase) Get(ctx context.Context, id string) (domain.Order, error) {
	return GetOrCompute(ctx, uc.cache, uc.keys.Order(id), uc.ttl.ViewTTL(),
		func(ctx context.Context) (domain.Order, error) {
			order, err := uc.orders.FindByID(ctx, id)
			if err != nil {
				return domain.Order{}, err
			}
			return *order, nil
		})
}

// Process は注文の状態を1段階進めます（placed -> shipped -> delivered）
func (uc *OrderUseCase) Process(ctx context.Context, id string) (*domain.Order, error) {
	order, err := uc.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := order.NextStatus(ctx); err != nil {
		return nil, err
	}

	if err := uc.orders.Update(ctx, order); err != nil {
		return nil, err
	}

	uc.invalidate(ctx,
		domain.OrderChanged{UserID: order.UserID, OrderID: order.ID},
		domain.AdminStatsStale{},
	)

	return order, nil
}

// Delete は注文を削除します
func (uc *OrderUseCase) Delete(ctx context.Context, id string) error {
	order, err := uc.orders.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.orders.Delete(ctx, id); err != nil {
		return err
	}

	uc.invalidate(ctx,
		domain.OrderChanged{UserID: order.UserID, OrderID: order.ID},
		domain.AdminStatsStale{},
	)

	return nil
}

func (uc *OrderUseCase) invalidate(ctx context.Context, events ...domain.CacheInvalidation) {
	if err := uc.invalidator.Invalidate(ctx, events...); err != nil {
		slog.Warn("キャッシュの無効化に失敗しました", "error", err)
	}
}
