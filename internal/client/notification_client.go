package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"esign-editor-api/internal/metrics"
)

// SigningRequestEvent is the payload delivered to the notification service
// for each signer when a document is sent out
type SigningRequestEvent struct {
	DocumentID    uuid.UUID `json:"documentId"`
	DocumentTitle string    `json:"documentTitle"`
	SenderID      uuid.UUID `json:"senderId"`
	SignerID      uuid.UUID `json:"signerId"`
	SignerName    string    `json:"signerName"`
	SignerEmail   string    `json:"signerEmail"`
	Role          string    `json:"role"`
	Order         int       `json:"order"`
	OccurredAt    string    `json:"occurredAt,omitempty"`
}

// BulkSigningRequest wraps the events for all signers of one document
type BulkSigningRequest struct {
	Requests []SigningRequestEvent `json:"requests"`
}

// NotificationClient defines the interface for notification service communication
type NotificationClient interface {
	// SendSigningRequests notifies every signer of a freshly sent document
	SendSigningRequests(ctx context.Context, events []SigningRequestEvent) error
}

// notificationClient implements NotificationClient over the internal HTTP API
type notificationClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *zap.Logger
	metrics    *metrics.Metrics
}

// NewNotificationClient creates a new notification service client
func NewNotificationClient(baseURL string, apiKey string, timeout time.Duration, logger *zap.Logger, m *metrics.Metrics) NotificationClient {
	return &notificationClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger:  logger,
		metrics: m,
	}
}

// SendSigningRequests posts the signing requests in one bulk call. Delivery
// failures are logged but never fail the send operation itself: the document
// is already SENT and the notification service retries on its side.
func (c *notificationClient) SendSigningRequests(ctx context.Context, events []SigningRequestEvent) error {
	if len(events) == 0 {
		return nil
	}

	url := fmt.Sprintf("%s/api/internal/signing-requests/bulk", c.baseURL)

	now := time.Now().UTC().Format(time.RFC3339)
	for i := range events {
		if events[i].OccurredAt == "" {
			events[i].OccurredAt = now
		}
	}

	jsonBody, err := json.Marshal(BulkSigningRequest{Requests: events})
	if err != nil {
		c.logger.Error("Failed to marshal signing requests",
			zap.Error(err),
			zap.Int("count", len(events)),
		)
		return fmt.Errorf("failed to marshal signing requests: %w", err)
	}

	startTime := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		c.logger.Error("Failed to create signing request", zap.Error(err))
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Internal-API-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	duration := time.Since(startTime)

	statusCode := 0
	if resp != nil {
		statusCode = resp.StatusCode
	}
	if c.metrics != nil {
		c.metrics.RecordExternalAPICall(url, "POST", statusCode, duration, err)
	}

	if err != nil {
		c.logger.Error("Failed to send signing requests",
			zap.Error(err),
			zap.Int("count", len(events)),
			zap.Duration("duration", duration),
		)
		// Graceful degradation
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		c.logger.Info("Signing requests sent",
			zap.Int("count", len(events)),
			zap.Duration("duration", duration),
		)
		return nil
	}

	c.logger.Warn("Notification service returned non-success status",
		zap.Int("status_code", resp.StatusCode),
		zap.Int("count", len(events)),
		zap.Duration("duration", duration),
	)

	// Graceful degradation
	return nil
}

// NoOpNotificationClient is a no-op implementation for when notifications are disabled
type NoOpNotificationClient struct{}

func NewNoOpNotificationClient() NotificationClient {
	return &NoOpNotificationClient{}
}

func (c *NoOpNotificationClient) SendSigningRequests(ctx context.Context, events []SigningRequestEvent) error {
	return nil
}
