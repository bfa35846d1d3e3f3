package aws

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/streamhive/streamhive/internal/config"
)

// NewAWSClient builds the S3 client and its presign companion. An empty
// endpoint targets AWS itself; a custom endpoint (minio and friends)
// switches to path-style addressing.
func NewAWSClient(c *config.Config) (*s3.Client, *s3.PresignClient, error) {
	cfg, err := awsconfig.LoadDefaultConfig(
		context.Background(),
		awsconfig.WithRegion(c.S3.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(c.S3.AccessKey, c.S3.SecretKey, ""),
		),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load aws configuration: %w", err)
	}
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if c.S3.Endpoint != "" {
			o.BaseEndpoint = &c.S3.Endpoint
			o.UsePathStyle = true
		}
	})
	return client, s3.NewPresignClient(client), nil
}
