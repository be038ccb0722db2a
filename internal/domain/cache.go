//go:generate mockgen -source=$GOFILE -destination=../../tests/domain/mock_cache.go -package=domain
package domain

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss はキャッシュにキーが存在しないことを示すセンチネルエラーです
var ErrCacheMiss = errors.New("cache miss")

// CacheClient は外部キャッシュストアへの操作を抽象化します。
// 値は不透明な文字列としてTTL付きで保存され、削除は冪等です
// （存在しないキーの削除はエラーになりません）。
type CacheClient interface {
	GetJSON(ctx context.Context, key string, dest any) error
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}
