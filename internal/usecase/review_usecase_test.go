package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/mock/gomock"

	"github.com/hieptb/storefront/internal/domain"
	"github.com/hieptb/storefront/internal/usecase"
	mockdomain "github.com/hieptb/storefront/tests/domain"
	mock_usecase "github.com/hieptb/storefront/tests/usecase"
)

type reviewMocks struct {
	reviews     *mock_usecase.MockReviewRepository
	products    *mock_usecase.MockProductRepository
	cache       *mockdomain.MockCacheClient
	keys        *mock_usecase.MockCacheKeys
	ttl         *mock_usecase.MockCacheTTL
	invalidator *mock_usecase.MockCacheInvalidator
}

func newReviewUseCase(ctrl *gomock.Controller) (*usecase.ReviewUseCase, reviewMocks) {
	mocks := reviewMocks{
		reviews:     mock_usecase.NewMockReviewRepository(ctrl),
		products:    mock_usecase.NewMockProductRepository(ctrl),
		cache:       mockdomain.NewMockCacheClient(ctrl),
		keys:        mock_usecase.NewMockCacheKeys(ctrl),
		ttl:         mock_usecase.NewMockCacheTTL(ctrl),
		invalidator: mock_usecase.NewMockCacheInvalidator(ctrl),
	}
	uc := usecase.NewReviewUseCase(mocks.reviews, mocks.products, mocks.cache, mocks.keys, mocks.ttl, mocks.invalidator)
	return uc, mocks
}

func TestReviewUseCase_ListByProduct(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc, mocks := newReviewUseCase(ctrl)

	reviews := []domain.Review{{ID: "r-1", ProductID: "p-1", UserID: "u-1", Rating: 5, Comment: "great"}}

	mocks.keys.EXPECT().Reviews("p-1").Return("reviews-p-1")
	mocks.ttl.EXPECT().ViewTTL().Return(4 * time.Hour)
	mocks.cache.EXPECT().GetJSON(gomock.Any(), "reviews-p-1", gomock.Any()).Return(domain.ErrCacheMiss)
	mocks.reviews.EXPECT().ListByProduct(gomock.Any(), "p-1").Return(reviews, nil)
	mocks.cache.EXPECT().SetJSON(gomock.Any(), "reviews-p-1", reviews, 4*time.Hour).Return(nil)

	got, err := uc.ListByProduct(context.Background(), "p-1")
	if err != nil {
		t.Fatalf("ListByProduct() failed: %v", err)
	}
	if diff := cmp.Diff(reviews, got); diff != "" {
		t.Errorf("ListByProduct() mismatch (-want +got):\n%s", diff)
	}
}

func TestReviewUseCase_Add(t *testing.T) {
	now := time.Date(2026, 5, 5, 14, 0, 0, 0, time.UTC)

	t.Run("正常系: レビューを追加して商品のレビューキーを無効化する", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, mocks := newReviewUseCase(ctrl)

		mocks.products.EXPECT().FindByID(gomock.Any(), "p-1").Return(&domain.Product{ID: "p-1"}, nil)
		mocks.reviews.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		mocks.invalidator.EXPECT().Invalidate(gomock.Any(), domain.ReviewChanged{ProductID: "p-1"}).Return(nil)

		review, err := uc.Add(fixedContext(t, now), "p-1", "u-1", 4, "solid build")
		if err != nil {
			t.Fatalf("Add() failed: %v", err)
		}
		if review.Rating != 4 || review.Comment != "solid build" {
			t.Errorf("Add() = %+v", review)
		}
		if !review.CreatedAt.Equal(now) {
			t.Errorf("Add() CreatedAt = %v, want %v", review.CreatedAt, now)
		}
	})

	t.Run("異常系: 存在しない商品へのレビュー", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, mocks := newReviewUseCase(ctrl)

		mocks.products.EXPECT().FindByID(gomock.Any(), "missing").Return(nil, domain.ErrNotFound)

		if _, err := uc.Add(context.Background(), "missing", "u-1", 4, "n/a"); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("Add() error = %v, want %v", err, domain.ErrNotFound)
		}
	})

	t.Run("異常系: 範囲外の評価", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, mocks := newReviewUseCase(ctrl)

		mocks.products.EXPECT().FindByID(gomock.Any(), "p-1").Return(&domain.Product{ID: "p-1"}, nil)

		if _, err := uc.Add(fixedContext(t, now), "p-1", "u-1", 6, "too good"); !errors.Is(err, domain.ErrInvalidRating) {
			t.Errorf("Add() error = %v, want %v", err, domain.ErrInvalidRating)
		}
	})
}

func TestReviewUseCase_Delete(t *testing.T) {
	stored := &domain.Review{ID: "r-1", ProductID: "p-1", UserID: "u-1", Rating: 5}

	tests := []struct {
		name    string
		claims  domain.TokenClaims
		wantErr error
	}{
		{
			name:   "正常系: 所有者は自分のレビューを削除できる",
			claims: domain.TokenClaims{SubjectID: "u-1"},
		},
		{
			name:   "正常系: 管理者は他人のレビューも削除できる",
			claims: domain.TokenClaims{SubjectID: "admin-1", IsAdmin: true},
		},
		{
			name:    "異常系: 他人のレビューは削除できない",
			claims:  domain.TokenClaims{SubjectID: "u-2"},
			wantErr: usecase.ErrReviewNotOwned,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc, mocks := newReviewUseCase(ctrl)

			mocks.reviews.EXPECT().FindByID(gomock.Any(), "r-1").Return(stored, nil)
			if tt.wantErr == nil {
				mocks.reviews.EXPECT().Delete(gomock.Any(), "r-1").Return(nil)
				mocks.invalidator.EXPECT().Invalidate(gomock.Any(), domain.ReviewChanged{ProductID: "p-1"}).Return(nil)
			}

			err := uc.Delete(context.Background(), "r-1", tt.claims)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Delete() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
