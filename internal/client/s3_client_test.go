package client

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"esign-editor-api/internal/config"
)

func testS3Config() *config.S3Config {
	return &config.S3Config{
		Bucket:    "test-bucket",
		Region:    "ap-northeast-2",
		AccessKey: "test-access-key",
		SecretKey: "test-secret-key",
	}
}

func TestGenerateFileKey(t *testing.T) {
	client, err := NewS3Client(testS3Config())
	require.NoError(t, err)
	require.NotNil(t, client)

	ownerID := uuid.New()
	key := client.GenerateFileKey(ownerID, "nda.pdf")

	// Format: documents/{ownerId}/{year}/{month}/{uuid}_{timestamp}.pdf
	parts := strings.Split(key, "/")
	require.Equal(t, 5, len(parts), "key should have 5 parts separated by /")
	assert.Equal(t, "documents", parts[0])
	assert.Equal(t, ownerID.String(), parts[1])
	assert.Equal(t, time.Now().Format("2006"), parts[2])
	assert.Equal(t, time.Now().Format("01"), parts[3])
	assert.True(t, strings.HasSuffix(parts[4], ".pdf"))
	assert.Contains(t, parts[4], "_")
}

func TestGenerateFileKey_MissingExtension(t *testing.T) {
	client, err := NewS3Client(testS3Config())
	require.NoError(t, err)

	key := client.GenerateFileKey(uuid.New(), "contract")
	assert.True(t, strings.HasSuffix(key, ".pdf"), "extension defaults to .pdf")
}

func TestGenerateFileKey_Uniqueness(t *testing.T) {
	client, err := NewS3Client(testS3Config())
	require.NoError(t, err)

	ownerID := uuid.New()
	keys := make(map[string]bool)
	for i := 0; i < 100; i++ {
		key := client.GenerateFileKey(ownerID, "nda.pdf")
		assert.False(t, keys[key], "generated key should be unique")
		keys[key] = true
	}
}

func TestGeneratePresignedDownloadURL(t *testing.T) {
	client, err := NewS3Client(testS3Config())
	require.NoError(t, err)

	url, err := client.GeneratePresignedDownloadURL(context.Background(), "documents/owner/2024/01/abc_123.pdf")
	require.NoError(t, err)

	assert.Contains(t, url, "test-bucket")
	assert.Contains(t, url, "documents")
	assert.Contains(t, url, "X-Amz-Algorithm")
	assert.Contains(t, url, "X-Amz-Signature")
	assert.Contains(t, url, "X-Amz-Expires=900", "download links expire in 15 minutes")
}

func TestNewS3Client_ValidationErrors(t *testing.T) {
	tests := []struct {
		name        string
		cfg         *config.S3Config
		wantErr     bool
		errContains string
	}{
		{
			name:    "Valid configuration",
			cfg:     testS3Config(),
			wantErr: false,
		},
		{
			name: "Missing bucket",
			cfg: &config.S3Config{
				Region:    "ap-northeast-2",
				AccessKey: "test-access-key",
				SecretKey: "test-secret-key",
			},
			wantErr:     true,
			errContains: "bucket is required",
		},
		{
			name: "Missing region",
			cfg: &config.S3Config{
				Bucket:    "test-bucket",
				AccessKey: "test-access-key",
				SecretKey: "test-secret-key",
			},
			wantErr:     true,
			errContains: "region is required",
		},
		{
			name: "MinIO endpoint without credentials",
			cfg: &config.S3Config{
				Bucket:   "test-bucket",
				Region:   "us-east-1",
				Endpoint: "http://localhost:9000",
			},
			wantErr:     true,
			errContains: "access key and secret key are required",
		},
		{
			name: "With custom endpoint (MinIO)",
			cfg: &config.S3Config{
				Bucket:    "test-bucket",
				Region:    "us-east-1",
				AccessKey: "minioadmin",
				SecretKey: "minioadmin",
				Endpoint:  "http://localhost:9000",
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewS3Client(tt.cfg)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
				assert.Nil(t, client)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, client)
			}
		})
	}
}

func TestGetFileURL(t *testing.T) {
	client, err := NewS3Client(testS3Config())
	require.NoError(t, err)

	key := "documents/owner/2024/01/uuid_1234567890.pdf"
	url := client.GetFileURL(key)

	assert.Equal(t, "https://test-bucket.s3.ap-northeast-2.amazonaws.com/"+key, url)
}

func TestGetFileURL_MinIOEndpoint(t *testing.T) {
	cfg := testS3Config()
	cfg.Endpoint = "http://localhost:9000"
	client, err := NewS3Client(cfg)
	require.NoError(t, err)

	url := client.GetFileURL("documents/owner/file.pdf")
	assert.Equal(t, "http://localhost:9000/test-bucket/documents/owner/file.pdf", url)
}
