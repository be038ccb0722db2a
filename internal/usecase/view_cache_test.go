package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/mock/gomock"

	"github.com/hieptb/storefront/internal/domain"
	"github.com/hieptb/storefront/internal/usecase"
	mockdomain "github.com/hieptb/storefront/tests/domain"
)

func TestGetOrCompute(t *testing.T) {
	type view struct {
		Names []string `json:"names"`
	}
	cachedValue := view{Names: []string{"keyboard", "mouse"}}
	computedValue := view{Names: []string{"desk"}}
	cacheErr := errors.New("connection refused")
	computeErr := errors.New("query failed")

	tests := []struct {
		name       string
		cacheSetup func(mock *mockdomain.MockCacheClient)
		compute    func(ctx context.Context) (view, error)
		want       view
		wantErr    error
	}{
		{
			name: "正常系: ヒット時はcomputeを呼ばずキャッシュの値を返す",
			cacheSetup: func(mock *mockdomain.MockCacheClient) {
				mock.EXPECT().GetJSON(gomock.Any(), "latest-products", gomock.Any()).DoAndReturn(
					func(ctx context.Context, key string, dest any) error {
						data, _ := json.Marshal(cachedValue)
						return json.Unmarshal(data, dest)
					},
				)
			},
			compute: func(ctx context.Context) (view, error) {
				t.Error("compute must not be called on a cache hit")
				return view{}, nil
			},
			want: cachedValue,
		},
		{
			name: "正常系: ミス時はcomputeの結果がTTL付きで保存されて返る",
			cacheSetup: func(mock *mockdomain.MockCacheClient) {
				mock.EXPECT().GetJSON(gomock.Any(), "latest-products", gomock.Any()).Return(domain.ErrCacheMiss)
				mock.EXPECT().SetJSON(gomock.Any(), "latest-products", computedValue, 4*time.Hour).Return(nil)
			},
			compute: func(ctx context.Context) (view, error) {
				return computedValue, nil
			},
			want: computedValue,
		},
		{
			name: "異常系: ミス以外のキャッシュエラーはそのまま失敗になる",
			cacheSetup: func(mock *mockdomain.MockCacheClient) {
				mock.EXPECT().GetJSON(gomock.Any(), "latest-products", gomock.Any()).Return(cacheErr)
			},
			compute: func(ctx context.Context) (view, error) {
				t.Error("compute must not be called on a cache store error")
				return view{}, nil
			},
			wantErr: cacheErr,
		},
		{
			name: "異常系: computeの失敗は保存されずに伝播する",
			cacheSetup: func(mock *mockdomain.MockCacheClient) {
				mock.EXPECT().GetJSON(gomock.Any(), "latest-products", gomock.Any()).Return(domain.ErrCacheMiss)
			},
			compute: func(ctx context.Context) (view, error) {
				return view{}, computeErr
			},
			wantErr: computeErr,
		},
		{
			name: "異常系: 保存の失敗もリクエスト全体の失敗になる",
			cacheSetup: func(mock *mockdomain.MockCacheClient) {
				mock.EXPECT().GetJSON(gomock.Any(), "latest-products", gomock.Any()).Return(domain.ErrCacheMiss)
				mock.EXPECT().SetJSON(gomock.Any(), "latest-products", computedValue, 4*time.Hour).Return(cacheErr)
			},
			compute: func(ctx context.Context) (view, error) {
				return computedValue, nil
			},
			wantErr: cacheErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			cache := mockdomain.NewMockCacheClient(ctrl)
			tt.cacheSetup(cache)

			got, err := usecase.GetOrCompute(context.Background(), cache, "latest-products", 4*time.Hour, tt.compute)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("GetOrCompute() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("GetOrCompute() failed: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("GetOrCompute() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
