package client

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MockS3Client implements S3ClientInterface for testing without AWS credentials
type MockS3Client struct {
	Bucket   string
	Region   string
	Endpoint string

	// Captured state for assertions
	Uploads map[string][]byte
	Deleted []string

	// Optional function overrides for custom test behavior
	GenerateFileKeyFunc              func(ownerID uuid.UUID, fileName string) string
	UploadDocumentFunc               func(ctx context.Context, key string, data []byte) error
	GeneratePresignedDownloadURLFunc func(ctx context.Context, key string) (string, error)
	DeleteDocumentFunc               func(ctx context.Context, key string) error
	GetFileURLFunc                   func(key string) string
}

// NewMockS3Client creates a new mock S3 client for testing
func NewMockS3Client() *MockS3Client {
	return &MockS3Client{
		Bucket:  "test-bucket",
		Region:  "ap-northeast-2",
		Uploads: make(map[string][]byte),
	}
}

// GenerateFileKey generates a unique document key
func (m *MockS3Client) GenerateFileKey(ownerID uuid.UUID, fileName string) string {
	if m.GenerateFileKeyFunc != nil {
		return m.GenerateFileKeyFunc(ownerID, fileName)
	}
	ext := path.Ext(fileName)
	if ext == "" {
		ext = ".pdf"
	}
	now := time.Now()
	return fmt.Sprintf("documents/%s/%s/%s/%s_%d%s",
		ownerID, now.Format("2006"), now.Format("01"), uuid.New(), now.UnixNano(), ext)
}

// UploadDocument records the upload in memory
func (m *MockS3Client) UploadDocument(ctx context.Context, key string, data []byte) error {
	if m.UploadDocumentFunc != nil {
		return m.UploadDocumentFunc(ctx, key, data)
	}
	if m.Uploads == nil {
		m.Uploads = make(map[string][]byte)
	}
	m.Uploads[key] = data
	return nil
}

// GeneratePresignedDownloadURL returns a mock presigned URL
func (m *MockS3Client) GeneratePresignedDownloadURL(ctx context.Context, key string) (string, error) {
	if m.GeneratePresignedDownloadURLFunc != nil {
		return m.GeneratePresignedDownloadURLFunc(ctx, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s?X-Amz-Algorithm=AWS4-HMAC-SHA256&X-Amz-Expires=900&X-Amz-Signature=mocksignature123",
		m.Bucket, m.Region, key), nil
}

// DeleteDocument records the deletion
func (m *MockS3Client) DeleteDocument(ctx context.Context, key string) error {
	if m.DeleteDocumentFunc != nil {
		return m.DeleteDocumentFunc(ctx, key)
	}
	m.Deleted = append(m.Deleted, key)
	delete(m.Uploads, key)
	return nil
}

// GetFileURL returns the public URL for a stored object
func (m *MockS3Client) GetFileURL(key string) string {
	if m.GetFileURLFunc != nil {
		return m.GetFileURLFunc(key)
	}
	if m.Endpoint != "" && !strings.Contains(m.Endpoint, "amazonaws.com") {
		return fmt.Sprintf("%s/%s/%s", m.Endpoint, m.Bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", m.Bucket, m.Region, key)
}

// Ensure MockS3Client implements S3ClientInterface
var _ S3ClientInterface = (*MockS3Client)(nil)
