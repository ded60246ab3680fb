package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"esign-editor-api/internal/domain"
)

// SignerRepository defines the interface for signer data access
type SignerRepository interface {
	Create(ctx context.Context, signer *domain.Signer) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Signer, error)
	FindByDocumentID(ctx context.Context, documentID uuid.UUID) ([]*domain.Signer, error)
	Update(ctx context.Context, signer *domain.Signer) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// signerRepositoryImpl is the GORM implementation of SignerRepository
type signerRepositoryImpl struct {
	db *gorm.DB
}

// NewSignerRepository creates a new instance of SignerRepository
func NewSignerRepository(db *gorm.DB) SignerRepository {
	return &signerRepositoryImpl{db: db}
}

// Create creates a new signer
func (r *signerRepositoryImpl) Create(ctx context.Context, signer *domain.Signer) error {
	if err := r.db.WithContext(ctx).Create(signer).Error; err != nil {
		return err
	}
	return nil
}

// FindByID finds a signer by its ID
func (r *signerRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Signer, error) {
	var signer domain.Signer
	if err := r.db.WithContext(ctx).First(&signer, id).Error; err != nil {
		return nil, err
	}
	return &signer, nil
}

// FindByDocumentID finds all signers of a document in signing order
func (r *signerRepositoryImpl) FindByDocumentID(ctx context.Context, documentID uuid.UUID) ([]*domain.Signer, error) {
	var signers []*domain.Signer
	if err := r.db.WithContext(ctx).
		Where("document_id = ?", documentID).
		Order("signing_order ASC").
		Find(&signers).Error; err != nil {
		return nil, err
	}
	return signers, nil
}

// Update saves all signer fields
func (r *signerRepositoryImpl) Update(ctx context.Context, signer *domain.Signer) error {
	if err := r.db.WithContext(ctx).Save(signer).Error; err != nil {
		return err
	}
	return nil
}

// Delete soft deletes a signer by ID
func (r *signerRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&domain.Signer{}, id).Error; err != nil {
		return err
	}
	return nil
}
