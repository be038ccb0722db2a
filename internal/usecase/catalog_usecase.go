package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/newmo-oss/ctxtime"

	"github.com/hieptb/storefront/internal/domain"
)

const (
	latestProductsLimit = 5
	maxProductImages    = 5
)

// SearchResult は絞り込み検索1ページ分の結果です。
// この形のままJSONとしてキャッシュに保存されます。
type SearchResult struct {
	Products   []domain.Product `json:"products"`
	TotalPages int              `json:"totalPage"`
}

type CreateProductInput struct {
	Name        string
	Category    string
	Price       int64
	Stock       int64
	Description string
}

// UpdateProductInput の各フィールドはnilの場合更新されません
type UpdateProductInput struct {
	Name        *string
	Category    *string
	Price       *int64
	Stock       *int64
	Description *string
}

// CatalogUseCase は商品カタログの参照と変更を担います。
// 参照系はリードスルーキャッシュ経由、変更系は権威ストアへの書き込みが
// 確定した後にキャッシュ無効化を発行します。
type CatalogUseCase struct {
	products    ProductRepository
	images      ImageStorage
	cache       domain.CacheClient
	keys        CacheKeys
	ttl         CacheTTL
	invalidator CacheInvalidator
}

func NewCatalogUseCase(
	products ProductRepository,
	images ImageStorage,
	cache domain.CacheClient,
	keys CacheKeys,
	ttl CacheTTL,
	invalidator CacheInvalidator,
) *CatalogUseCase {
	return &CatalogUseCase{
		products:    products,
		images:      images,
		cache:       cache,
		keys:        keys,
		ttl:         ttl,
		invalidator: invalidator,
	}
}

// Latest は作成日時の新しい順に最大5件の商品を返します
func (uc *CatalogUseCase) Latest(ctx context.Context) ([]domain.Product, error) {
	return GetOrCompute(ctx, uc.cache, uc.keys.LatestProducts(), uc.ttl.ViewTTL(),
		func(ctx context.Context) ([]domain.Product, error) {
			return uc.products.Latest(ctx, latestProductsLimit)
		})
}

// Categories は重複を除いたカテゴリ一覧を返します
func (uc *CatalogUseCase) Categories(ctx context.Context) ([]string, error) {
	return GetOrCompute(ctx, uc.cache, uc.keys.Categories(), uc.ttl.ViewTTL(),
		func(ctx context.Context) ([]string, error) {
			return uc.products.Categories(ctx)
		})
}

// Search は絞り込み・ソート・ページングを適用した検索結果を返します。
// 絞り込みクエリのキー空間はカーディナリティが高いため短いTTLで保持されます。
func (uc *CatalogUseCase) Search(ctx context.Context, q domain.CatalogQuery) (SearchResult, error) {
	return GetOrCompute(ctx, uc.cache, uc.keys.ProductQuery(q), uc.ttl.QueryTTL(),
		func(ctx context.Context) (SearchResult, error) {
			products, totalPages, err := uc.products.Search(ctx, q)
			if err != nil {
				return SearchResult{}, err
			}
			return SearchResult{Products: products, TotalPages: totalPages}, nil
		})
}

// Get は単品の商品ビューを返します。存在しない商品はキャッシュされません。
func (uc *CatalogUseCase) Get(ctx context.Context, id string) (domain.Product, error) {
	return GetOrCompute(ctx, uc.cache, uc.keys.Product(id), uc.ttl.ViewTTL(),
		func(ctx context.Context) (domain.Product, error) {
			product, err := uc.products.FindByID(ctx, id)
			if err != nil {
				return domain.Product{}, err
			}
			return *product, nil
		})
}

// Create は商品を作成し、画像をオブジェクトストレージに保存します
func (uc *CatalogUseCase) Create(ctx context.Context, input CreateProductInput, images []ImageUpload) (*domain.Product, error) {
	if len(images) == 0 {
		return nil, ErrNoImages
	}
	if len(images) > maxProductImages {
		return nil, ErrTooManyImages
	}

	if _, err := uc.products.FindByName(ctx, input.Name); err == nil {
		return nil, domain.ErrDuplicate
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	product, err := domain.NewProduct(ctx, input.Name, input.Category, input.Price, input.Stock, input.Description, nil)
	if err != nil {
		return nil, err
	}

	photos, err := uc.uploadImages(ctx, product.ID, images)
	if err != nil {
		return nil, err
	}
	product.Photos = photos

	if err := uc.products.Create(ctx, product); err != nil {
		return nil, err
	}

	uc.invalidate(ctx, domain.ProductChanged{}, domain.AdminStatsStale{})

	return product, nil
}

// Update は商品を部分更新します。画像が渡された場合は既存の画像を差し替えます。
func (uc *CatalogUseCase) Update(ctx context.Context, id string, input UpdateProductInput, images []ImageUpload) (*domain.Product, error) {
	if len(images) > maxProductImages {
		return nil, ErrTooManyImages
	}

	product, err := uc.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if len(images) > 0 {
		photos, err := uc.uploadImages(ctx, product.ID, images)
		if err != nil {
			return nil, err
		}

		oldKeys := photoKeys(product.Photos)
		if err := uc.images.Remove(ctx, oldKeys...); err != nil {
			slog.Warn("古い商品画像の削除に失敗しました", "product_id", product.ID, "error", err)
		}
		product.Photos = photos
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Category != nil {
		product.Category = *input.Category
	}
	if input.Price != nil {
		if *input.Price <= 0 {
			return nil, domain.ErrInvalidPrice
		}
		product.Price = *input.Price
	}
	if input.Stock != nil {
		if *input.Stock < 0 {
			return nil, domain.ErrInvalidStock
		}
		product.Stock = *input.Stock
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	product.UpdatedAt = ctxtime.Now(ctx)

	if err := uc.products.Update(ctx, product); err != nil {
		return nil, err
	}

	uc.invalidate(ctx, domain.ProductChanged{ProductIDs: []string{product.ID}}, domain.AdminStatsStale{})

	return product, nil
}

// Delete は商品と保存済みの画像を削除します
func (uc *CatalogUseCase) Delete(ctx context.Context, id string) error {
	product, err := uc.products.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.products.Delete(ctx, id); err != nil {
		return err
	}

	if keys := photoKeys(product.Photos); len(keys) > 0 {
		if err := uc.images.Remove(ctx, keys...); err != nil {
			slog.Warn("商品画像の削除に失敗しました", "product_id", id, "error", err)
		}
	}

	uc.invalidate(ctx, domain.ProductChanged{ProductIDs: []string{id}}, domain.AdminStatsStale{})

	return nil
}

func (uc *CatalogUseCase) uploadImages(ctx context.Context, productID string, images []ImageUpload) ([]domain.ProductPhoto, error) {
	photos := make([]domain.ProductPhoto, 0, len(images))
	for _, image := range images {
		photo, err := uc.images.Upload(ctx, productID, image)
		if err != nil {
			return nil, fmt.Errorf("画像のアップロードに失敗しました: %w", err)
		}
		photos = append(photos, photo)
	}
	return photos, nil
}

// invalidate は権威ストアへの書き込み確定後にキャッシュ無効化を発行します。
// 無効化の失敗はクライアントに返されず、ログに記録されるだけです。
// 該当エントリはTTL満了までstaleに見える可能性があります。
func (uc *CatalogUseCase) invalidate(ctx context.Context, events ...domain.CacheInvalidation) {
	if err := uc.invalidator.Invalidate(ctx, events...); err != nil {
		slog.Warn("キャッシュの無効化に失敗しました", "error", err)
	}
}

func photoKeys(photos []domain.ProductPhoto) []string {
	keys := make([]string, 0, len(photos))
	for _, photo := range photos {
		keys = append(keys, photo.Key)
	}
	return keys
}
