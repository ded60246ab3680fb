package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"esign-editor-api/internal/domain"
)

// DocumentRepository defines the interface for document data access
type DocumentRepository interface {
	Create(ctx context.Context, doc *domain.Document) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Document, error)
	FindByIDWithRelations(ctx context.Context, id uuid.UUID) (*domain.Document, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Document, error)
	Update(ctx context.Context, doc *domain.Document) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.DocumentStatus, sentAt *time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindStaleDrafts(ctx context.Context, olderThan time.Time) ([]*domain.Document, error)
}

// documentRepositoryImpl is the GORM implementation of DocumentRepository
type documentRepositoryImpl struct {
	db *gorm.DB
}

// NewDocumentRepository creates a new instance of DocumentRepository
func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &documentRepositoryImpl{db: db}
}

// Create creates a new document
func (r *documentRepositoryImpl) Create(ctx context.Context, doc *domain.Document) error {
	if err := r.db.WithContext(ctx).Create(doc).Error; err != nil {
		return err
	}
	return nil
}

// FindByID finds a document by its ID
func (r *documentRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
	var doc domain.Document
	if err := r.db.WithContext(ctx).First(&doc, id).Error; err != nil {
		return nil, err
	}
	return &doc, nil
}

// FindByIDWithRelations finds a document with its fields and signers preloaded
func (r *documentRepositoryImpl) FindByIDWithRelations(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
	var doc domain.Document
	if err := r.db.WithContext(ctx).
		Preload("Fields", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Preload("Signers", func(db *gorm.DB) *gorm.DB {
			return db.Order("signing_order ASC")
		}).
		First(&doc, id).Error; err != nil {
		return nil, err
	}
	return &doc, nil
}

// FindByOwner finds all documents owned by a user, newest first
func (r *documentRepositoryImpl) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Document, error) {
	var docs []*domain.Document
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}

// Update saves all document fields
func (r *documentRepositoryImpl) Update(ctx context.Context, doc *domain.Document) error {
	if err := r.db.WithContext(ctx).Save(doc).Error; err != nil {
		return err
	}
	return nil
}

// UpdateStatus transitions a document's lifecycle status
func (r *documentRepositoryImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.DocumentStatus, sentAt *time.Time) error {
	updates := map[string]interface{}{"status": status}
	if sentAt != nil {
		updates["sent_at"] = sentAt
	}
	result := r.db.WithContext(ctx).
		Model(&domain.Document{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete soft deletes a document by ID
func (r *documentRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&domain.Document{}, id).Error; err != nil {
		return err
	}
	return nil
}

// FindStaleDrafts finds draft documents not touched since the given cutoff
func (r *documentRepositoryImpl) FindStaleDrafts(ctx context.Context, olderThan time.Time) ([]*domain.Document, error) {
	var docs []*domain.Document
	if err := r.db.WithContext(ctx).
		Where("status = ? AND updated_at < ?", domain.DocumentStatusDraft, olderThan).
		Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}
