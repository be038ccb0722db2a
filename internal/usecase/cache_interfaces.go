//go:generate mockgen -source=$GOFILE -destination=../../tests/usecase/mock_cache_interfaces.go -package=usecase
package usecase

import (
	"context"
	"time"

	"github.com/hieptb/storefront/internal/domain"
)

// CacheKeys はクエリの形からキャッシュキーを決定的に導出します。
// 絞り込み条件のすべてのパラメータがキーに埋め込まれるため、
// 異なる条件の組が同じキャッシュスロットを共有することはありません。
type CacheKeys interface {
	LatestProducts() string
	Categories() string
	AllProducts() string
	Product(productID string) string
	ProductQuery(q domain.CatalogQuery) string
	Reviews(productID string) string
	AllOrders() string
	MyOrders(userID string) string
	Order(orderID string) string
	AdminStats() string
	AdminPieCharts() string
	AdminBarCharts() string
	AdminLineCharts() string
}

// CacheTTL はビュー種別ごとのTTLポリシーです。
// 粗粒度ビューと単品ビューは長く、絞り込みクエリビューはキー空間の
// カーディナリティが高いため短く保持されます。
type CacheTTL interface {
	ViewTTL() time.Duration
	QueryTTL() time.Duration
}

// CacheInvalidator はカタログの変更イベントから削除すべきキー集合を計算し、
// 1回の呼び出しでまとめて削除します。削除は再計算を伴わない無条件の削除で、
// 次の読み取りがビューを遅延再構築します。
type CacheInvalidator interface {
	Invalidate(ctx context.Context, events ...domain.CacheInvalidation) error
}
