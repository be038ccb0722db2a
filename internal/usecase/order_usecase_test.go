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

type orderMocks struct {
	orders      *mock_usecase.MockOrderRepository
	products    *mock_usecase.MockProductRepository
	cache       *mockdomain.MockCacheClient
	keys        *mock_usecase.MockCacheKeys
	ttl         *mock_usecase.MockCacheTTL
	invalidator *mock_usecase.MockCacheInvalidator
}

func newOrderUseCase(ctrl *gomock.Controller) (*usecase.OrderUseCase, orderMocks) {
	mocks := orderMocks{
		orders:      mock_usecase.NewMockOrderRepository(ctrl),
		products:    mock_usecase.NewMockProductRepository(ctrl),
		cache:       mockdomain.NewMockCacheClient(ctrl),
		keys:        mock_usecase.NewMockCacheKeys(ctrl),
		ttl:         mock_usecase.NewMockCacheTTL(ctrl),
		invalidator: mock_usecase.NewMockCacheInvalidator(ctrl),
	}
	uc := usecase.NewOrderUseCase(mocks.orders, mocks.products, mocks.cache, mocks.keys, mocks.ttl, mocks.invalidator)
	return uc, mocks
}

func TestOrderUseCase_Create(t *testing.T) {
	now := time.Date(2026, 5, 3, 10, 0, 0, 0, time.UTC)

	t.Run("正常系: 注文を作成し在庫を減らして関連キーを無効化する", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, mocks := newOrderUseCase(ctrl)

		mocks.products.EXPECT().FindByID(gomock.Any(), "p-1").Return(&domain.Product{
			ID: "p-1", Name: "keyboard", Price: 4500, Stock: 10,
		}, nil)
		mocks.orders.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		var updated *domain.Product
		mocks.products.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, product *domain.Product) error {
				updated = product
				return nil
			},
		)

		var gotEvents []domain.CacheInvalidation
		mocks.invalidator.EXPECT().Invalidate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, events ...domain.CacheInvalidation) error {
				gotEvents = events
				return nil
			},
		)

		order, err := uc.Create(fixedContext(t, now), "u-1", []usecase.OrderItemInput{{ProductID: "p-1", Quantity: 3}})
		if err != nil {
			t.Fatalf("Create() failed: %v", err)
		}
		if order.Total != 13500 {
			t.Errorf("Create() Total = %d, want 13500", order.Total)
		}
		if order.Status != domain.OrderStatusPlaced {
			t.Errorf("Create() Status = %q, want %q", order.Status, domain.OrderStatusPlaced)
		}
		if updated == nil || updated.Stock != 7 {
			t.Errorf("Create() remaining stock = %+v, want 7", updated)
		}

		wantEvents := []domain.CacheInvalidation{
			domain.OrderChanged{UserID: "u-1", OrderID: order.ID},
			domain.ProductChanged{ProductIDs: []string{"p-1"}},
			domain.AdminStatsStale{},
		}
		if diff := cmp.Diff(wantEvents, gotEvents); diff != "" {
			t.Errorf("Create() invalidation events mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("異常系: 品目が空の注文", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, _ := newOrderUseCase(ctrl)

		if _, err := uc.Create(context.Background(), "u-1", nil); !errors.Is(err, domain.ErrEmptyOrder) {
			t.Errorf("Create() error = %v, want %v", err, domain.ErrEmptyOrder)
		}
	})

	t.Run("異常系: 数量が0以下の品目", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, _ := newOrderUseCase(ctrl)

		if _, err := uc.Create(context.Background(), "u-1", []usecase.OrderItemInput{{ProductID: "p-1", Quantity: 0}}); !errors.Is(err, domain.ErrValidation) {
			t.Errorf("Create() error = %v, want %v", err, domain.ErrValidation)
		}
	})

	t.Run("異常系: 在庫が数量に満たない", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, mocks := newOrderUseCase(ctrl)

		mocks.products.EXPECT().FindByID(gomock.Any(), "p-1").Return(&domain.Product{ID: "p-1", Price: 4500, Stock: 2}, nil)

		if _, err := uc.Create(context.Background(), "u-1", []usecase.OrderItemInput{{ProductID: "p-1", Quantity: 3}}); !errors.Is(err, domain.ErrInvalidStock) {
			t.Errorf("Create() error = %v, want %v", err, domain.ErrInvalidStock)
		}
	})

	t.Run("異常系: 存在しない商品を含む注文", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, mocks := newOrderUseCase(ctrl)

		mocks.products.EXPECT().FindByID(gomock.Any(), "missing").Return(nil, domain.ErrNotFound)

		if _, err := uc.Create(context.Background(), "u-1", []usecase.OrderItemInput{{ProductID: "missing", Quantity: 1}}); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("Create() error = %v, want %v", err, domain.ErrNotFound)
		}
	})
}

func TestOrderUseCase_My(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc, mocks := newOrderUseCase(ctrl)

	orders := []domain.Order{{ID: "o-1", UserID: "u-1", Status: domain.OrderStatusPlaced}}

	mocks.keys.EXPECT().MyOrders("u-1").Return("my-orders-u-1")
	mocks.ttl.EXPECT().ViewTTL().Return(4 * time.Hour)
	mocks.cache.EXPECT().GetJSON(gomock.Any(), "my-orders-u-1", gomock.Any()).Return(domain.ErrCacheMiss)
	mocks.orders.EXPECT().ListByUser(gomock.Any(), "u-1").Return(orders, nil)
	mocks.cache.EXPECT().SetJSON(gomock.Any(), "my-orders-u-1", orders, 4*time.Hour).Return(nil)

	got, err := uc.My(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("My() failed: %v", err)
	}
	if diff := cmp.Diff(orders, got); diff != "" {
		t.Errorf("My() mismatch (-want +got):\n%s", diff)
	}
}

func TestOrderUseCase_Process(t *testing.T) {
	now := time.Date(2026, 5, 3, 11, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		status     domain.OrderStatus
		wantStatus domain.OrderStatus
		wantErr    error
	}{
		{
			name:       "正常系: placedからshippedに進む",
			status:     domain.OrderStatusPlaced,
			wantStatus: domain.OrderStatusShipped,
		},
		{
			name:       "正常系: shippedからdeliveredに進む",
			status:     domain.OrderStatusShipped,
			wantStatus: domain.OrderStatusDelivered,
		},
		{
			name:    "異常系: deliveredからは進められない",
			status:  domain.OrderStatusDelivered,
			wantErr: domain.ErrInvalidOrderStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc, mocks := newOrderUseCase(ctrl)

			mocks.orders.EXPECT().FindByID(gomock.Any(), "o-1").Return(&domain.Order{
				ID: "o-1", UserID: "u-1", Status: tt.status,
			}, nil)
			if tt.wantErr == nil {
				mocks.orders.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
				mocks.invalidator.EXPECT().Invalidate(gomock.Any(),
					domain.OrderChanged{UserID: "u-1", OrderID: "o-1"},
					domain.AdminStatsStale{},
				).Return(nil)
			}

			order, err := uc.Process(fixedContext(t, now), "o-1")

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Process() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Process() failed: %v", err)
			}
			if order.Status != tt.wantStatus {
				t.Errorf("Process() Status = %q, want %q", order.Status, tt.wantStatus)
			}
		})
	}
}

func TestOrderUseCase_Delete(t *testing.T) {
	t.Run("正常系: 注文を削除して注文系キーを無効化する", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, mocks := newOrderUseCase(ctrl)

		mocks.orders.EXPECT().FindByID(gomock.Any(), "o-1").Return(&domain.Order{ID: "o-1", UserID: "u-1"}, nil)
		mocks.orders.EXPECT().Delete(gomock.Any(), "o-1").Return(nil)
		mocks.invalidator.EXPECT().Invalidate(gomock.Any(),
			domain.OrderChanged{UserID: "u-1", OrderID: "o-1"},
			domain.AdminStatsStale{},
		).Return(nil)

		if err := uc.Delete(context.Background(), "o-1"); err != nil {
			t.Fatalf("Delete() failed: %v", err)
		}
	})

	t.Run("異常系: 存在しない注文", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, mocks := newOrderUseCase(ctrl)

		mocks.orders.EXPECT().FindByID(gomock.Any(), "missing").Return(nil, domain.ErrNotFound)

		if err := uc.Delete(context.Background(), "missing"); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("Delete() error = %v, want %v", err, domain.ErrNotFound)
		}
	})
}
