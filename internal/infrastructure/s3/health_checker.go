package s3

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3HealthChecker はオブジェクトストレージのヘルスチェックを行う
type S3HealthChecker struct {
	client *S3Client
}

// NewS3HealthChecker は新しいS3HealthCheckerを生成する
func NewS3HealthChecker(client *S3Client) *S3HealthChecker {
	return &S3HealthChecker{
		client: client,
	}
}

// Name はチェッカーの名前を返す
func (c *S3HealthChecker) Name() string {
	return "s3"
}

// Check はバケットへのヘルスチェックを実行する
func (c *S3HealthChecker) Check(ctx context.Context) error {
	_, err := c.client.client.HeadBucket(ctx, &awss3.HeadBucketInput{
		Bucket: aws.String(c.client.bucket),
	})
	if err != nil {
		return fmt.Errorf("s3 health check failed: %w", err)
	}
	return nil
}
