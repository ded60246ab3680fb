package client

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	appConfig "esign-editor-api/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// DownloadURLExpiry is how long presigned document download links stay valid
const DownloadURLExpiry = 15 * time.Minute

// S3ClientInterface defines the interface for document storage operations
type S3ClientInterface interface {
	GenerateFileKey(ownerID uuid.UUID, fileName string) string
	UploadDocument(ctx context.Context, key string, data []byte) error
	GeneratePresignedDownloadURL(ctx context.Context, key string) (string, error)
	DeleteDocument(ctx context.Context, key string) error
	GetFileURL(key string) string
}

// S3Client wraps the AWS S3 client and implements S3ClientInterface
type S3Client struct {
	client        *s3.Client
	presignClient *s3.PresignClient
	bucket        string
	region        string
	endpoint      string
}

// NewS3Client creates a new S3 client
func NewS3Client(cfg *appConfig.S3Config) (*S3Client, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("S3 bucket is required")
	}
	if cfg.Region == "" {
		return nil, fmt.Errorf("S3 region is required")
	}

	var awsCfg aws.Config
	var err error

	// A custom endpoint means local MinIO, which needs explicit credentials
	// and path-style addressing.
	if cfg.Endpoint != "" {
		if cfg.AccessKey == "" || cfg.SecretKey == "" {
			return nil, fmt.Errorf("access key and secret key are required for MinIO endpoint")
		}
		awsCfg, err = config.LoadDefaultConfig(context.TODO(),
			config.WithRegion(cfg.Region),
			config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
				cfg.AccessKey,
				cfg.SecretKey,
				"",
			)),
			config.WithEndpointResolverWithOptions(aws.EndpointResolverWithOptionsFunc(
				func(service, region string, options ...interface{}) (aws.Endpoint, error) {
					return aws.Endpoint{
						URL:               cfg.Endpoint,
						HostnameImmutable: true,
						SigningRegion:     cfg.Region,
					}, nil
				},
			)),
		)
	} else {
		// AWS SDK default credential chain (IAM role on EC2, ~/.aws/credentials locally)
		awsCfg, err = config.LoadDefaultConfig(context.TODO(),
			config.WithRegion(cfg.Region),
		)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	s3Client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.UsePathStyle = true
		}
	})

	return &S3Client{
		client:        s3Client,
		presignClient: s3.NewPresignClient(s3Client),
		bucket:        cfg.Bucket,
		region:        cfg.Region,
		endpoint:      cfg.Endpoint,
	}, nil
}

// GenerateFileKey generates a unique S3 key for an uploaded document.
// Format: documents/{ownerId}/{year}/{month}/{uuid}_{timestamp}.pdf
func (c *S3Client) GenerateFileKey(ownerID uuid.UUID, fileName string) string {
	now := time.Now()
	ext := path.Ext(fileName)
	if ext == "" {
		ext = ".pdf"
	}
	return fmt.Sprintf("documents/%s/%s/%s/%s_%d%s",
		ownerID, now.Format("2006"), now.Format("01"), uuid.New(), now.Unix(), ext)
}

// UploadDocument uploads PDF bytes to S3
func (c *S3Client) UploadDocument(ctx context.Context, key string, data []byte) error {
	_, err := c.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/pdf"),
	})
	if err != nil {
		return fmt.Errorf("failed to upload document to S3: %w", err)
	}
	return nil
}

// GeneratePresignedDownloadURL generates a short-lived GET URL for the
// client-side renderer to fetch the PDF directly from storage
func (c *S3Client) GeneratePresignedDownloadURL(ctx context.Context, key string) (string, error) {
	presignedReq, err := c.presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = DownloadURLExpiry
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	finalURL := presignedReq.URL

	// With MinIO behind Docker the SDK signs against the internal service
	// host; rewrite it to the externally reachable endpoint.
	if c.endpoint != "" {
		const internalMinIOHost = "minio:9000"
		externalHost := strings.TrimPrefix(strings.TrimPrefix(c.endpoint, "http://"), "https://")
		finalURL = strings.Replace(finalURL, internalMinIOHost, externalHost, 1)
	}

	return finalURL, nil
}

// DeleteDocument deletes a document from S3
func (c *S3Client) DeleteDocument(ctx context.Context, key string) error {
	_, err := c.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete document from S3: %w", err)
	}
	return nil
}

// GetFileURL returns the public URL for a stored object
func (c *S3Client) GetFileURL(key string) string {
	if c.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(c.endpoint, "/"), c.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", c.bucket, c.region, key)
}
