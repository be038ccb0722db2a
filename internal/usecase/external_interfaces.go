//go:generate mockgen -source=$GOFILE -destination=../../tests/usecase/mock_external_interfaces.go -package=usecase
package usecase

import (
	"context"
	"io"

	"github.com/hieptb/storefront/internal/domain"
)

// ImageUpload はアップロードされた画像ファイル1件の内容です
type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// ImageStorage は商品画像を保存する外部オブジェクトストレージです
type ImageStorage interface {
	Upload(ctx context.Context, productID string, image ImageUpload) (domain.ProductPhoto, error)
	Remove(ctx context.Context, keys ...string) error
}

// TokenIssuer はログイン・リフレッシュ時のトークン発行を抽象化します
type TokenIssuer interface {
	IssueAccess(ctx context.Context, subjectID string, isAdmin bool) (string, error)
	IssueRefresh(ctx context.Context, subjectID string, isAdmin bool) (string, error)
	ExchangeRefresh(ctx context.Context, refreshToken string) (string, error)
}
