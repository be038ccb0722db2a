// Package redis provides the Redis cache client, cache key space and TTL
// definitions for the catalog. All cache keys and TTLs should be defined in
// this file to ensure centralized management.
package redis

import (
	"fmt"
	"time"

	"github.com/hieptb/storefront/internal/domain"
)

// Cache Keys
// Coarse whole-catalog views share fixed keys; entity and query views derive
// their keys from every parameter of the lookup so that distinct lookups
// never share a cache slot.
const (
	// KeyLatestProducts caches the newest products view
	KeyLatestProducts = "latest-products"

	// KeyCategories caches the distinct category list
	KeyCategories = "categories"

	// KeyAllProducts caches the unfiltered whole-catalog view
	KeyAllProducts = "all-products"

	// KeyAllOrders caches the admin view over all orders
	KeyAllOrders = "all-orders"

	// Admin dashboard aggregate keys
	KeyAdminStats      = "admin-stats"
	KeyAdminPieCharts  = "admin-pie-charts"
	KeyAdminBarCharts  = "admin-bar-charts"
	KeyAdminLineCharts = "admin-line-charts"
)

// queryFieldPlaceholder stands in for unset query fields so the key space
// stays total: a missing field still occupies its position in the key.
const queryFieldPlaceholder = "none"

// Cache TTLs
// Coarse and per-entity views live long; per-query keys have unbounded
// cardinality (one key per filter combination), so they expire fast instead
// of accumulating stale filtered views.
const (
	// ViewTTL is the TTL for whole-catalog and single-entity views (4 hours)
	ViewTTL = 4 * time.Hour

	// QueryTTL is the TTL for filtered/paginated search views (30 seconds)
	QueryTTL = 30 * time.Second
)

// ProductKey generates the cache key for a single product view
func ProductKey(productID string) string {
	return "product-" + productID
}

// ReviewsKey generates the cache key for a product's review list
func ReviewsKey(productID string) string {
	return "reviews-" + productID
}

// MyOrdersKey generates the cache key for one user's order list
func MyOrdersKey(userID string) string {
	return "my-orders-" + userID
}

// OrderKey generates the cache key for a single order view
func OrderKey(orderID string) string {
	return "order-" + orderID
}

// ProductQueryKey derives the cache key for a filtered catalog query from the
// exact filter tuple. Unset fields serialize as a stable placeholder rather
// than being omitted, so distinct tuples never collide.
func ProductQueryKey(q domain.CatalogQuery) string {
	search := q.Search
	if search == "" {
		search = queryFieldPlaceholder
	}
	sort := string(q.Sort)
	if sort == "" {
		sort = queryFieldPlaceholder
	}
	category := q.Category
	if category == "" {
		category = queryFieldPlaceholder
	}
	price := queryFieldPlaceholder
	if q.MaxPrice > 0 {
		price = fmt.Sprintf("%d", q.MaxPrice)
	}
	return fmt.Sprintf("products-%s-%s-%s-%s-%d", search, sort, category, price, q.Page)
}
