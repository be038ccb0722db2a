package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/hieptb/storefront/internal/domain"
)

// GetOrCompute はリードスルー方式でキャッシュを引きます。
// ヒットした場合はストアに触れず復元した値を返し、ミスした場合は
// computeで権威ストアから計算した結果をTTL付きで保存してから返します。
//
// キャッシュストア自体のエラー（ミス以外）はリクエスト全体の失敗として
// そのまま伝播します（フェイルクローズ）。書き込みの失敗も同様です。
func GetOrCompute[T any](ctx context.Context, cache domain.CacheClient, key string, ttl time.Duration, compute func(context.Context) (T, error)) (T, error) {
	var cached T
	err := cache.GetJSON(ctx, key, &cached)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		var zero T
		return zero, err
	}

	value, err := compute(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	if err := cache.SetJSON(ctx, key, value, ttl); err != nil {
		var zero T
		return zero, err
	}

	return value, nil
}
