// Package job contains scheduled background jobs.
package job

import (
	"context"
	"time"

	"go.uber.org/zap"

	"esign-editor-api/internal/client"
	"esign-editor-api/internal/config"
	"esign-editor-api/internal/editor"
	"esign-editor-api/internal/repository"
)

// CleanupJob expires idle editor sessions and removes stale unsent drafts
type CleanupJob struct {
	sessions *editor.SessionManager
	docRepo  repository.DocumentRepository
	s3Client client.S3ClientInterface
	cfg      config.EditorConfig
	logger   *zap.Logger
}

// NewCleanupJob creates a new CleanupJob instance
func NewCleanupJob(
	sessions *editor.SessionManager,
	docRepo repository.DocumentRepository,
	s3Client client.S3ClientInterface,
	cfg config.EditorConfig,
	logger *zap.Logger,
) *CleanupJob {
	return &CleanupJob{
		sessions: sessions,
		docRepo:  docRepo,
		s3Client: s3Client,
		cfg:      cfg,
		logger:   logger,
	}
}

// Run executes the cleanup job.
// Sessions past their idle TTL are closed; any unsaved edits in them are
// discarded. Draft documents untouched past the retention window are deleted
// from both S3 and the database.
func (j *CleanupJob) Run() {
	ctx := context.Background()

	expired := j.sessions.Sweep(j.cfg.SessionTTL)
	if expired > 0 {
		j.logger.Info("Closed expired editor sessions",
			zap.Int("count", expired),
		)
	}

	if j.cfg.DraftRetention <= 0 {
		return
	}

	cutoff := time.Now().Add(-j.cfg.DraftRetention)
	staleDrafts, err := j.docRepo.FindStaleDrafts(ctx, cutoff)
	if err != nil {
		j.logger.Error("Failed to find stale draft documents",
			zap.Error(err),
		)
		return
	}

	if len(staleDrafts) == 0 {
		return
	}

	j.logger.Info("Found stale draft documents",
		zap.Int("count", len(staleDrafts)),
		zap.Time("cutoff", cutoff),
	)

	successCount := 0
	failCount := 0

	for _, doc := range staleDrafts {
		if doc.FileKey != "" {
			if err := j.s3Client.DeleteDocument(ctx, doc.FileKey); err != nil {
				j.logger.Error("Failed to delete stored PDF",
					zap.String("document_id", doc.ID.String()),
					zap.String("file_key", doc.FileKey),
					zap.Error(err),
				)
				failCount++
				continue
			}
		}

		if err := j.docRepo.Delete(ctx, doc.ID); err != nil {
			j.logger.Error("Failed to delete stale draft",
				zap.String("document_id", doc.ID.String()),
				zap.Error(err),
			)
			failCount++
			continue
		}
		successCount++
	}

	j.logger.Info("Cleanup job completed",
		zap.Int("total_stale", len(staleDrafts)),
		zap.Int("success", successCount),
		zap.Int("failed", failCount),
	)
}
