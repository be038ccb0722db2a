package s3

import (
	"errors"

	"github.com/aws/smithy-go"
)

// IsNotFound はオブジェクトまたはバケットが存在しないエラーかどうかを判定します。
// 画像の削除は冪等に扱うため、呼び出し側はこのエラーを無視できます。
func IsNotFound(err error) bool {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound", "NoSuchBucket":
			return true
		}
	}
	return false
}
