package domain

import "errors"

var ErrInvalidSortOrder = errors.New("sort must be asc or desc")

type SortOrder string

const (
	SortNone SortOrder = ""
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// CatalogQuery はカタログ検索の絞り込み条件一式です。
// 同じ値の組は常に同じキャッシュキーに対応します。
type CatalogQuery struct {
	Search   string
	Sort     SortOrder
	Category string
	MaxPrice int64
	Page     int
}

// NewCatalogQuery はクエリパラメータから検索条件を組み立てます。
// page が1未満の場合は1に正規化されます。MaxPrice 0 は価格上限なしを意味します。
func NewCatalogQuery(search, sort, category string, maxPrice int64, page int) (CatalogQuery, error) {
	order := SortOrder(sort)
	switch order {
	case SortNone, SortAsc, SortDesc:
	default:
		return CatalogQuery{}, ErrInvalidSortOrder
	}
	if maxPrice < 0 {
		return CatalogQuery{}, ErrInvalidPrice
	}
	if page < 1 {
		page = 1
	}
	return CatalogQuery{
		Search:   search,
		Sort:     order,
		Category: category,
		MaxPrice: maxPrice,
		Page:     page,
	}, nil
}
