package s3

import (
	"context"
	"fmt"

	"github.com/hieptb/storefront/internal/domain"
	"github.com/hieptb/storefront/internal/usecase"
)

var _ usecase.ImageStorage = (*S3Client)(nil)

// Upload は商品画像を保存し、キーと公開URLの組を返します
func (c *S3Client) Upload(ctx context.Context, productID string, image usecase.ImageUpload) (domain.ProductPhoto, error) {
	key := NewImageKey(productID, image.Filename)

	if err := c.PutObject(ctx, key, image.ContentType, image.Body, image.Size); err != nil {
		return domain.ProductPhoto{}, fmt.Errorf("画像の保存に失敗しました: %w", err)
	}

	return domain.ProductPhoto{
		Key: key,
		URL: c.ObjectURL(key),
	}, nil
}

// Remove は商品画像をまとめて削除します。存在しないキーは無視されます。
func (c *S3Client) Remove(ctx context.Context, keys ...string) error {
	err := c.DeleteObjects(ctx, keys...)
	if err != nil && IsNotFound(err) {
		return nil
	}
	return err
}
