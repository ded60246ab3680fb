package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"esign-editor-api/internal/client"
	"esign-editor-api/internal/domain"
	"esign-editor-api/internal/dto"
	"esign-editor-api/internal/metrics"
	"esign-editor-api/internal/renderer"
	"esign-editor-api/internal/repository"
	"esign-editor-api/internal/response"
)

// renderInfoCacheTTL bounds how long probed page metadata stays in Redis.
// The metadata never changes for a stored PDF, but an expiring key keeps the
// cache from accumulating entries for deleted documents.
const renderInfoCacheTTL = 24 * time.Hour

// Prober probes uploaded PDF bytes for page metadata
type Prober interface {
	Probe(data []byte) (*renderer.Info, error)
}

// DocumentService defines the interface for document business logic
type DocumentService interface {
	Upload(ctx context.Context, ownerID uuid.UUID, title, fileName string, data []byte) (*dto.DocumentResponse, error)
	Get(ctx context.Context, userID, documentID uuid.UUID) (*dto.DocumentDetailResponse, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]*dto.DocumentResponse, error)
	GetDownloadURL(ctx context.Context, userID, documentID uuid.UUID) (*dto.DocumentDownloadResponse, error)
	GetRenderInfo(ctx context.Context, userID, documentID uuid.UUID) (*renderer.Info, error)
	Delete(ctx context.Context, userID, documentID uuid.UUID) error
}

// documentServiceImpl is the implementation of DocumentService
type documentServiceImpl struct {
	docRepo  repository.DocumentRepository
	s3Client client.S3ClientInterface
	prober   Prober
	redis    *redis.Client
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

// NewDocumentService creates a new instance of DocumentService
func NewDocumentService(
	docRepo repository.DocumentRepository,
	s3Client client.S3ClientInterface,
	prober Prober,
	redisClient *redis.Client,
	m *metrics.Metrics,
	logger *zap.Logger,
) DocumentService {
	return &documentServiceImpl{
		docRepo:  docRepo,
		s3Client: s3Client,
		prober:   prober,
		redis:    redisClient,
		metrics:  m,
		logger:   logger,
	}
}

// Upload probes the PDF, stores it in S3 and creates the document record.
// A probe failure rejects the upload: a document the renderer cannot load
// can never host fields.
func (s *documentServiceImpl) Upload(ctx context.Context, ownerID uuid.UUID, title, fileName string, data []byte) (*dto.DocumentResponse, error) {
	if len(data) == 0 {
		return nil, response.NewValidationError("Document file is empty")
	}
	if title == "" {
		title = fileName
	}

	info, err := s.prober.Probe(data)
	if err != nil {
		s.logger.Warn("Document probe failed",
			zap.String("file_name", fileName),
			zap.Error(err),
		)
		return nil, response.NewAppError(response.ErrCodeValidation, "Document could not be loaded as a PDF", err.Error())
	}

	fileKey := s.s3Client.GenerateFileKey(ownerID, fileName)
	if err := s.s3Client.UploadDocument(ctx, fileKey, data); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to store document", err.Error())
	}

	doc := &domain.Document{
		OwnerID:   ownerID,
		Title:     title,
		FileKey:   fileKey,
		FileName:  fileName,
		FileSize:  int64(len(data)),
		PageCount: info.PageCount,
		Status:    domain.DocumentStatusDraft,
	}

	if err := s.docRepo.Create(ctx, doc); err != nil {
		// Best effort: the record failed, don't orphan the upload
		if delErr := s.s3Client.DeleteDocument(ctx, fileKey); delErr != nil {
			s.logger.Error("Failed to clean up orphaned upload",
				zap.String("file_key", fileKey),
				zap.Error(delErr),
			)
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create document", err.Error())
	}

	s.cacheRenderInfo(ctx, doc.ID, info)

	if s.metrics != nil {
		s.metrics.IncrementDocumentsUploaded()
	}

	s.logger.Info("Document uploaded",
		zap.String("document_id", doc.ID.String()),
		zap.String("owner_id", ownerID.String()),
		zap.Int("pages", info.PageCount),
		zap.Int64("size", doc.FileSize),
	)

	resp := dto.ToDocumentResponse(doc)
	return &resp, nil
}

// Get returns a document with its fields and signers
func (s *documentServiceImpl) Get(ctx context.Context, userID, documentID uuid.UUID) (*dto.DocumentDetailResponse, error) {
	doc, err := s.docRepo.FindByIDWithRelations(ctx, documentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Document not found")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load document", err.Error())
	}
	if doc.OwnerID != userID {
		return nil, response.NewForbiddenError("You do not have access to this document")
	}

	resp := dto.ToDocumentDetailResponse(doc)
	return &resp, nil
}

// List returns all documents owned by the user
func (s *documentServiceImpl) List(ctx context.Context, ownerID uuid.UUID) ([]*dto.DocumentResponse, error) {
	docs, err := s.docRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list documents", err.Error())
	}

	out := make([]*dto.DocumentResponse, 0, len(docs))
	for _, doc := range docs {
		resp := dto.ToDocumentResponse(doc)
		out = append(out, &resp)
	}
	return out, nil
}

// GetDownloadURL returns a presigned link for the client-side renderer
func (s *documentServiceImpl) GetDownloadURL(ctx context.Context, userID, documentID uuid.UUID) (*dto.DocumentDownloadResponse, error) {
	doc, err := s.docRepo.FindByID(ctx, documentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Document not found")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load document", err.Error())
	}
	if doc.OwnerID != userID {
		return nil, response.NewForbiddenError("You do not have access to this document")
	}

	url, err := s.s3Client.GeneratePresignedDownloadURL(ctx, doc.FileKey)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to generate download link", err.Error())
	}

	return &dto.DocumentDownloadResponse{
		DownloadURL: url,
		ExpiresIn:   int(client.DownloadURLExpiry.Seconds()),
	}, nil
}

// GetRenderInfo returns the probed page metadata, served from the Redis
// cache when available
func (s *documentServiceImpl) GetRenderInfo(ctx context.Context, userID, documentID uuid.UUID) (*renderer.Info, error) {
	doc, err := s.docRepo.FindByID(ctx, documentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Document not found")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load document", err.Error())
	}
	if doc.OwnerID != userID {
		return nil, response.NewForbiddenError("You do not have access to this document")
	}

	if info := s.cachedRenderInfo(ctx, documentID); info != nil {
		return info, nil
	}

	// Cache miss: page dimensions are gone but the page count survives on
	// the document record, which is all the session layer needs.
	return &renderer.Info{PageCount: doc.PageCount}, nil
}

// Delete removes the document record and its stored file
func (s *documentServiceImpl) Delete(ctx context.Context, userID, documentID uuid.UUID) error {
	doc, err := s.docRepo.FindByID(ctx, documentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Document not found")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to load document", err.Error())
	}
	if doc.OwnerID != userID {
		return response.NewForbiddenError("You do not have access to this document")
	}

	if err := s.docRepo.Delete(ctx, documentID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete document", err.Error())
	}

	if err := s.s3Client.DeleteDocument(ctx, doc.FileKey); err != nil {
		// The record is gone; the cleanup job catches stragglers
		s.logger.Error("Failed to delete stored file",
			zap.String("document_id", documentID.String()),
			zap.String("file_key", doc.FileKey),
			zap.Error(err),
		)
	}

	if s.redis != nil {
		s.redis.Del(ctx, renderInfoKey(documentID))
	}

	s.logger.Info("Document deleted",
		zap.String("document_id", documentID.String()),
	)
	return nil
}

func renderInfoKey(documentID uuid.UUID) string {
	return fmt.Sprintf("esign:render_info:%s", documentID)
}

func (s *documentServiceImpl) cacheRenderInfo(ctx context.Context, documentID uuid.UUID, info *renderer.Info) {
	if s.redis == nil {
		return
	}
	payload, err := json.Marshal(info)
	if err != nil {
		return
	}
	if err := s.redis.Set(ctx, renderInfoKey(documentID), payload, renderInfoCacheTTL).Err(); err != nil {
		s.logger.Warn("Failed to cache render info",
			zap.String("document_id", documentID.String()),
			zap.Error(err),
		)
	}
}

func (s *documentServiceImpl) cachedRenderInfo(ctx context.Context, documentID uuid.UUID) *renderer.Info {
	if s.redis == nil {
		return nil
	}
	payload, err := s.redis.Get(ctx, renderInfoKey(documentID)).Bytes()
	if err != nil {
		return nil
	}
	var info renderer.Info
	if err := json.Unmarshal(payload, &info); err != nil {
		return nil
	}
	return &info
}
