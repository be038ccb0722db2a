package redis

import (
	"time"

	"github.com/hieptb/storefront/internal/domain"
)

type CacheKeyGeneratorImpl struct{}

func NewCacheKeyGenerator() *CacheKeyGeneratorImpl {
	return &CacheKeyGeneratorImpl{}
}

func (g *CacheKeyGeneratorImpl) LatestProducts() string {
	return KeyLatestProducts
}

func (g *CacheKeyGeneratorImpl) Categories() string {
	return KeyCategories
}

func (g *CacheKeyGeneratorImpl) AllProducts() string {
	return KeyAllProducts
}

func (g *CacheKeyGeneratorImpl) Product(productID string) string {
	return ProductKey(productID)
}

func (g *CacheKeyGeneratorImpl) ProductQuery(q domain.CatalogQuery) string {
	return ProductQueryKey(q)
}

func (g *CacheKeyGeneratorImpl) Reviews(productID string) string {
	return ReviewsKey(productID)
}

func (g *CacheKeyGeneratorImpl) AllOrders() string {
	return KeyAllOrders
}

func (g *CacheKeyGeneratorImpl) MyOrders(userID string) string {
	return MyOrdersKey(userID)
}

func (g *CacheKeyGeneratorImpl) Order(orderID string) string {
	return OrderKey(orderID)
}

func (g *CacheKeyGeneratorImpl) AdminStats() string {
	return KeyAdminStats
}

func (g *CacheKeyGeneratorImpl) AdminPieCharts() string {
	return KeyAdminPieCharts
}

func (g *CacheKeyGeneratorImpl) AdminBarCharts() string {
	return KeyAdminBarCharts
}

func (g *CacheKeyGeneratorImpl) AdminLineCharts() string {
	return KeyAdminLineCharts
}

type CacheConfigImpl struct {
	viewTTL  time.Duration
	queryTTL time.Duration
}

// NewCacheConfig はデフォルトのTTL設定を返します
func NewCacheConfig() *CacheConfigImpl {
	return &CacheConfigImpl{viewTTL: ViewTTL, queryTTL: QueryTTL}
}

// NewCacheConfigWithTTLs はTTLを明示して設定を作成します（設定値の上書き用）
func NewCacheConfigWithTTLs(viewTTL, queryTTL time.Duration) *CacheConfigImpl {
	if viewTTL <= 0 {
		viewTTL = ViewTTL
	}
	if queryTTL <= 0 {
		queryTTL = QueryTTL
	}
	return &CacheConfigImpl{viewTTL: viewTTL, queryTTL: queryTTL}
}

func (c *CacheConfigImpl) ViewTTL() time.Duration {
	return c.viewTTL
}

func (c *CacheConfigImpl) QueryTTL() time.Duration {
	return c.queryTTL
}
