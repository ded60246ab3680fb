package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"esign-editor-api/internal/domain"
)

// FieldRepository defines the interface for field data access
type FieldRepository interface {
	FindByDocumentID(ctx context.Context, documentID uuid.UUID) ([]*domain.Field, error)
	ReplaceForDocument(ctx context.Context, documentID uuid.UUID, fields []*domain.Field) error
	ClearAssignments(ctx context.Context, signerID uuid.UUID) (int64, error)
	DeleteByDocumentID(ctx context.Context, documentID uuid.UUID) error
}

// fieldRepositoryImpl is the GORM implementation of FieldRepository
type fieldRepositoryImpl struct {
	db *gorm.DB
}

// NewFieldRepository creates a new instance of FieldRepository
func NewFieldRepository(db *gorm.DB) FieldRepository {
	return &fieldRepositoryImpl{db: db}
}

// FindByDocumentID finds all fields of a document in placement order
func (r *fieldRepositoryImpl) FindByDocumentID(ctx context.Context, documentID uuid.UUID) ([]*domain.Field, error) {
	var fields []*domain.Field
	if err := r.db.WithContext(ctx).
		Where("document_id = ?", documentID).
		Order("created_at ASC").
		Find(&fields).Error; err != nil {
		return nil, err
	}
	return fields, nil
}

// ReplaceForDocument replaces the document's field set atomically.
// Drafts are saved as a whole snapshot, so a hard delete plus re-insert
// inside one transaction keeps the stored set identical to the editor's.
func (r *fieldRepositoryImpl) ReplaceForDocument(ctx context.Context, documentID uuid.UUID, fields []*domain.Field) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().
			Where("document_id = ?", documentID).
			Delete(&domain.Field{}).Error; err != nil {
			return err
		}
		if len(fields) == 0 {
			return nil
		}
		for _, f := range fields {
			f.DocumentID = documentID
		}
		return tx.Create(&fields).Error
	})
}

// ClearAssignments clears the signer assignment from every field that
// references the given signer, returning the number of rows touched
func (r *fieldRepositoryImpl) ClearAssignments(ctx context.Context, signerID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&domain.Field{}).
		Where("assigned_to = ?", signerID).
		Update("assigned_to", nil)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// DeleteByDocumentID soft deletes all fields of a document
func (r *fieldRepositoryImpl) DeleteByDocumentID(ctx context.Context, documentID uuid.UUID) error {
	if err := r.db.WithContext(ctx).
		Where("document_id = ?", documentID).
		Delete(&domain.Field{}).Error; err != nil {
		return err
	}
	return nil
}
