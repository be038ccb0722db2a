package infrastructure

import (
	"context"

	"github.com/hieptb/storefront/internal/domain"
	"github.com/hieptb/storefront/internal/usecase"
)

// CatalogInvalidator は変更イベントの集合から削除すべきキャッシュキーの
// 和集合を計算し、1回の可変長DELとしてキャッシュストアに発行します。
//
// 削除は無条件で、再計算は行いません。次の読み取りがリードスルーで
// ビューを再構築します。キャッシュストアは共有リソースであり、他の書き手が
// 存在しうるため、存在しないキーの削除もエラーとしては扱われません。
type CatalogInvalidator struct {
	cache domain.CacheClient
	keys  usecase.CacheKeys
}

var _ usecase.CacheInvalidator = (*CatalogInvalidator)(nil)

func NewCatalogInvalidator(cache domain.CacheClient, keys usecase.CacheKeys) *CatalogInvalidator {
	return &CatalogInvalidator{
		cache: cache,
		keys:  keys,
	}
}

// Invalidate はイベントごとのキー集合をまとめて削除します。
// 複数のイベントを同時に渡した場合も削除は1回の呼び出しで行われます。
func (i *CatalogInvalidator) Invalidate(ctx context.Context, events ...domain.CacheInvalidation) error {
	keys := make([]string, 0, 8)

	for _, event := range events {
		switch e := event.(type) {
		case domain.ProductChanged:
			keys = append(keys,
				i.keys.LatestProducts(),
				i.keys.Categories(),
				i.keys.AllProducts(),
			)
			for _, id := range e.ProductIDs {
				keys = append(keys, i.keys.Product(id))
			}
		case domain.OrderChanged:
			keys = append(keys,
				i.keys.AllOrders(),
				i.keys.MyOrders(e.UserID),
				i.keys.Order(e.OrderID),
			)
		case domain.ReviewChanged:
			keys = append(keys, i.keys.Reviews(e.ProductID))
		case domain.AdminStatsStale:
			keys = append(keys,
				i.keys.AdminStats(),
				i.keys.AdminPieCharts(),
				i.keys.AdminBarCharts(),
				i.keys.AdminLineCharts(),
			)
		}
	}

	if len(keys) == 0 {
		return nil
	}
	return i.cache.Delete(ctx, keys...)
}
