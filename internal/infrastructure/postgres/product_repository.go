package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hieptb/storefront/internal/domain"
)

type ProductRepositoryImpl struct {
	pool    PoolInterface
	planner *CatalogQueryPlanner
}

func NewProductRepository(pool PoolInterface, planner *CatalogQueryPlanner) *ProductRepositoryImpl {
	return &ProductRepositoryImpl{
		pool:    pool,
		planner: planner,
	}
}

func (r *ProductRepositoryImpl) Create(ctx context.Context, product *domain.Product) error {
	photos, err := json.Marshal(product.Photos)
	if err != nil {
		return fmt.Errorf("商品画像のシリアライズに失敗しました: %w", err)
	}

	query := `
		INSERT INTO products (id, name, category, price, stock, description, photos, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err = r.pool.Exec(ctx, query,
		product.ID, product.Name, product.Category, product.Price,
		product.Stock, product.Description, photos, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *ProductRepositoryImpl) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	query := "SELECT " + productColumns + " FROM products WHERE id = $1"
	product, err := scanProduct(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return product, nil
}

func (r *ProductRepositoryImpl) FindByName(ctx context.Context, name string) (*domain.Product, error) {
	query := "SELECT " + productColumns + " FROM products WHERE name = $1"
	product, err := scanProduct(r.pool.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return product, nil
}

// Latest は作成日時の新しい順に最大limit件の商品を返します
func (r *ProductRepositoryImpl) Latest(ctx context.Context, limit int) ([]domain.Product, error) {
	query := "SELECT " + productColumns + " FROM products ORDER BY created_at DESC LIMIT $1"
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectProducts(rows)
}

// Categories は重複を除いたカテゴリの一覧を返します
func (r *ProductRepositoryImpl) Categories(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, "SELECT DISTINCT category FROM products ORDER BY category")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]string, 0)
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

// Search はプランナーが組み立てた検索SQLとカウントSQLを実行し、
// マッチした商品のページと総ページ数を返します。
// 1件もマッチしない場合は空のスライスを返します（エラーにはなりません）。
func (r *ProductRepositoryImpl) Search(ctx context.Context, q domain.CatalogQuery) ([]domain.Product, int, error) {
	selectSQL, selectArgs := r.planner.SelectSQL(q)
	rows, err := r.pool.Query(ctx, selectSQL, selectArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	products, err := collectProducts(rows)
	if err != nil {
		return nil, 0, err
	}

	countSQL, countArgs := r.planner.CountSQL(q)
	var matching int64
	if err := r.pool.QueryRow(ctx, countSQL, countArgs...).Scan(&matching); err != nil {
		return nil, 0, err
	}

	return products, r.planner.TotalPages(matching), nil
}

func (r *ProductRepositoryImpl) Update(ctx context.Context, product *domain.Product) error {
	photos, err := json.Marshal(product.Photos)
	if err != nil {
		return fmt.Errorf("商品画像のシリアライズに失敗しました: %w", err)
	}

	query := `
		UPDATE products
		SET name = $2, category = $3, price = $4, stock = $5, description = $6, photos = $7, updated_at = $8
		WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, query,
		product.ID, product.Name, product.Category, product.Price,
		product.Stock, product.Description, photos, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ProductRepositoryImpl) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var product domain.Product
	var photos []byte
	err := row.Scan(
		&product.ID, &product.Name, &product.Category, &product.Price,
		&product.Stock, &product.Description, &photos, &product.CreatedAt, &product.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(photos) > 0 {
		if err := json.Unmarshal(photos, &product.Photos); err != nil {
			return nil, fmt.Errorf("商品画像のデシリアライズに失敗しました: %w", err)
		}
	}
	return &product, nil
}

func collectProducts(rows pgx.Rows) ([]domain.Product, error) {
	products := make([]domain.Product, 0)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *product)
	}
	return products, rows.Err()
}
