package postgres

import (
	"fmt"
	"strings"

	"github.com/hieptb/storefront/internal/domain"
)

const defaultPageSize = 8

const productColumns = "id, name, category, price, stock, description, photos, created_at, updated_at"

// CatalogQueryPlanner は検索条件からページング付きの商品検索SQLと、
// 同じ述語に対する件数カウントSQLを組み立てます。
// 件数カウントは同一の絞り込み条件に対してページングなしで行われ、
// 総ページ数は ceil(件数 / ページサイズ) で求まります。
type CatalogQueryPlanner struct {
	pageSize int
}

func NewCatalogQueryPlanner(pageSize int) *CatalogQueryPlanner {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return &CatalogQueryPlanner{pageSize: pageSize}
}

// PageSize は1ページあたりの件数を返します
func (p *CatalogQueryPlanner) PageSize() int {
	return p.pageSize
}

// SelectSQL は絞り込み・ソート・ページングを適用した検索SQLを返します
func (p *CatalogQueryPlanner) SelectSQL(q domain.CatalogQuery) (string, []any) {
	where, args := p.predicate(q)

	var sb strings.Builder
	sb.WriteString("SELECT " + productColumns + " FROM products")
	sb.WriteString(where)

	switch q.Sort {
	case domain.SortAsc:
		sb.WriteString(" ORDER BY price ASC")
	case domain.SortDesc:
		sb.WriteString(" ORDER BY price DESC")
	}

	args = append(args, p.pageSize, (q.Page-1)*p.pageSize)
	sb.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args)))

	return sb.String(), args
}

// CountSQL は検索SQLと同じ述語に対する件数カウントSQLを返します
func (p *CatalogQueryPlanner) CountSQL(q domain.CatalogQuery) (string, []any) {
	where, args := p.predicate(q)
	return "SELECT COUNT(*) FROM products" + where, args
}

// TotalPages はマッチ件数から総ページ数を計算します
func (p *CatalogQueryPlanner) TotalPages(matching int64) int {
	if matching <= 0 {
		return 0
	}
	return int((matching + int64(p.pageSize) - 1) / int64(p.pageSize))
}

// predicate はWHERE句とバインド引数を組み立てます。
// 検索語は名前への大文字小文字を区別しない部分一致、価格は上限値を含む、
// カテゴリは完全一致です。
func (p *CatalogQueryPlanner) predicate(q domain.CatalogQuery) (string, []any) {
	var clauses []string
	var args []any

	if q.Search != "" {
		args = append(args, q.Search)
		clauses = append(clauses, fmt.Sprintf("name ILIKE '%%' || $%d || '%%'", len(args)))
	}
	if q.MaxPrice > 0 {
		args = append(args, q.MaxPrice)
		clauses = append(clauses, fmt.Sprintf("price <= $%d", len(args)))
	}
	if q.Category != "" {
		args = append(args, q.Category)
		clauses = append(clauses, fmt.Sprintf("category = $%d", len(args)))
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}
