package repository

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/streamhive/streamhive/internal/videos"
)

type awsRepository struct {
	client        *s3.Client
	preSignClient *s3.PresignClient
}

func NewAwsRepository(awsClient *s3.Client, preSignClient *s3.PresignClient) videos.AWSRepository {
	return &awsRepository{
		client:        awsClient,
		preSignClient: preSignClient,
	}
}

func (a *awsRepository) PutObject(ctx context.Context, bucket, key, contentType string, size int64, body io.Reader) error {
	_, err := a.client.PutObject(
		ctx,
		&s3.PutObjectInput{
			Bucket:        &bucket,
			Key:           &key,
			ContentType:   &contentType,
			ContentLength: &size,
			Body:          body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to upload object %s: %w", key, err)
	}
	return nil
}

// GetObjectRange fetches an object, forwarding the caller's Range header
// when present so partial-content responses pass straight through.
func (a *awsRepository) GetObjectRange(ctx context.Context, bucket, key, byteRange string) (*s3.GetObjectOutput, error) {
	input := &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}
	if byteRange != "" {
		input.Range = &byteRange
	}
	res, err := a.client.GetObject(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get object %s: %w", key, err)
	}
	return res, nil
}

func (a *awsRepository) DownloadToFile(ctx context.Context, bucket, key, localPath string) error {
	res, err := a.client.GetObject(
		ctx,
		&s3.GetObjectInput{
			Bucket: &bucket,
			Key:    &key,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to get object %s: %w", key, err)
	}
	defer res.Body.Close()

	out, err := os.Create(localPath)
	if err != nil {
		return fmt.Errorf("failed to create local file %s: %w", localPath, err)
	}
	defer out.Close()

	if _, err = io.Copy(out, res.Body); err != nil {
		return fmt.Errorf("failed to write object %s to %s: %w", key, localPath, err)
	}
	return nil
}

func (a *awsRepository) UploadFromFile(ctx context.Context, bucket, key, contentType, localPath string) error {
	file, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("failed to open local file %s: %w", localPath, err)
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat local file %s: %w", localPath, err)
	}
	return a.PutObject(ctx, bucket, key, contentType, stat.Size(), file)
}

func (a *awsRepository) RemoveObject(ctx context.Context, bucket, key string) error {
	_, err := a.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: &bucket,
		Key:    &key,
	})
	if err != nil {
		return fmt.Errorf("failed to remove object %s: %w", key, err)
	}
	return nil
}

func (a *awsRepository) PresignGetURL(ctx context.Context, bucket, key string, expiry time.Duration) (string, error) {
	req, err := a.preSignClient.PresignGetObject(
		ctx,
		&s3.GetObjectInput{
			Bucket: &bucket,
			Key:    &key,
		},
		s3.WithPresignExpires(expiry),
	)
	if err != nil {
		return "", fmt.Errorf("failed to presign get object %s: %w", key, err)
	}
	return req.URL, nil
}
