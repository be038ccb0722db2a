package usecase

import (
	"context"
	"log/slog"

	"github.com/hieptb/storefront/internal/domain"
)

type ReviewUseCase struct {
	reviews     ReviewRepository
	products    ProductRepository
	cache       domain.CacheClient
	keys        CacheKeys
	ttl         CacheTTL
	invalidator CacheInvalidator
}

func NewReviewUseCase(
	reviews ReviewRepository,
	products ProductRepository,
	cache domain.CacheClient,
	keys CacheKeys,
	ttl CacheTTL,
	invalidator CacheInvalidator,
) *ReviewUseCase {
	return &ReviewUseCase{
		reviews:     reviews,
		products:    products,
		cache:       cache,
		keys:        keys,
		ttl:         ttl,
		invalidator: invalidator,
	}
}

// ListByProduct は商品のレビュー一覧を返します
func (uc *ReviewUseCase) ListByProduct(ctx context.Context, productID string) ([]domain.Review, error) {
	return GetOrCompute(ctx, uc.cache, uc.keys.Reviews(productID), uc.ttl.ViewTTL(),
		func(ctx context.Context) ([]domain.Review, error) {
			return uc.reviews.ListByProduct(ctx, productID)
		})
}

// Add は商品にレビューを追加します。商品が存在しない場合はエラーになります。
func (uc *ReviewUseCase) Add(ctx context.Context, productID, userID string, rating int, comment string) (*domain.Review, error) {
	if _, err := uc.products.FindByID(ctx, productID); err != nil {
		return nil, err
	}

	review, err := domain.NewReview(ctx, productID, userID, rating, comment)
	if err != nil {
		return nil, err
	}

	if err := uc.reviews.Create(ctx, review); err != nil {
		return nil, err
	}

	uc.invalidate(ctx, domain.ReviewChanged{ProductID: productID})

	return review, nil
}

// Delete はレビューを削除します。レビューの所有者か管理者のみ削除できます。
func (uc *ReviewUseCase) Delete(ctx context.Context, id string, claims domain.TokenClaims) error {
	review, err := uc.reviews.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if !claims.IsAdmin && review.UserID != claims.SubjectID {
		return ErrReviewNotOwned
	}

	if err := uc.reviews.Delete(ctx, id); err != nil {
		return err
	}

	uc.invalidate(ctx, domain.ReviewChanged{ProductID: review.ProductID})

	return nil
}

func (uc *ReviewUseCase) invalidate(ctx context.Context, events ...domain.CacheInvalidation) {
	if err := uc.invalidator.Invalidate(ctx, events...); err != nil {
		slog.Warn("キャッシュの無効化に失敗しました", "error", err)
	}
}
