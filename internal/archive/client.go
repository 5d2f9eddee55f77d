// Package archive optionally keeps a copy of every uploaded PDF in
// S3-compatible object storage. The server runs fine without it: when the
// environment is not fully configured, NewClient returns a nil client and
// archival is skipped.
package archive

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// Client wraps the S3 client used for upload archival.
type Client struct {
	s3Client *s3.Client
	bucket   string
}

// NewClient configures an archive client from environment variables
// (ARCHIVE_ENDPOINT, ARCHIVE_BUCKET, ARCHIVE_ACCESS_KEY_ID,
// ARCHIVE_SECRET_ACCESS_KEY). It returns (nil, nil) when they are not all
// set, so callers can treat archival as disabled.
func NewClient(ctx context.Context) (*Client, error) {
	endpoint := os.Getenv("ARCHIVE_ENDPOINT")
	bucket := os.Getenv("ARCHIVE_BUCKET")
	accessKeyID := os.Getenv("ARCHIVE_ACCESS_KEY_ID")
	secretAccessKey := os.Getenv("ARCHIVE_SECRET_ACCESS_KEY")

	if endpoint == "" || bucket == "" || accessKeyID == "" || secretAccessKey == "" {
		log.Println("WARN: archive storage not fully configured (ARCHIVE_ENDPOINT, ARCHIVE_BUCKET, ARCHIVE_ACCESS_KEY_ID, ARCHIVE_SECRET_ACCESS_KEY). Upload archival disabled.")
		return nil, nil
	}

	resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		return aws.Endpoint{URL: endpoint}, nil
	})

	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithEndpointResolverWithOptions(resolver),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(accessKeyID, secretAccessKey, "")),
		config.WithRegion("auto"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS SDK config for archive storage: %w", err)
	}

	log.Printf("INFO: archive storage initialized for bucket '%s'", bucket)
	return &Client{s3Client: s3.NewFromConfig(cfg), bucket: bucket}, nil
}

// StoreUpload writes the raw PDF bytes under uploads/<documentID>/<filename>.
// A nil receiver is a no-op so handlers need no configuration checks.
func (c *Client) StoreUpload(ctx context.Context, documentID uuid.UUID, filename string, data []byte) error {
	if c == nil || c.s3Client == nil {
		return nil
	}

	key := fmt.Sprintf("uploads/%s/%s", documentID, filename)
	_, err := c.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/pdf"),
	})
	if err != nil {
		return fmt.Errorf("failed to archive upload (key: %s): %w", key, err)
	}

	log.Printf("INFO: archived upload to %s", key)
	return nil
}
