package videos

import (
	"context"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type AWSRepository interface {
	PutObject(ctx context.Context, bucket, key, contentType string, size int64, body io.Reader) error
	GetObjectRange(ctx context.Context, bucket, key, byteRange string) (*s3.GetObjectOutput, error)
	DownloadToFile(ctx context.Context, bucket, key, localPath string) error
	UploadFromFile(ctx context.Context, bucket, key, contentType, localPath string) error
	RemoveObject(ctx context.Context, bucket, key string) error
	PresignGetURL(ctx context.Context, bucket, key string, expiry time.Duration) (string, error)
}
