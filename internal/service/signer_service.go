package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"esign-editor-api/internal/domain"
	"esign-editor-api/internal/dto"
	"esign-editor-api/internal/editor"
	"esign-editor-api/internal/repository"
	"esign-editor-api/internal/response"
)

// SignerService manages the recipient roster of a document. Removing a signer
// also clears that signer's field assignments, both in the database and in any
// live editor session on the same document.
type SignerService interface {
	Create(ctx context.Context, userID, documentID uuid.UUID, req *dto.CreateSignerRequest) (*dto.SignerResponse, error)
	List(ctx context.Context, userID, documentID uuid.UUID) ([]dto.SignerResponse, error)
	Update(ctx context.Context, userID, signerID uuid.UUID, req *dto.UpdateSignerRequest) (*dto.SignerResponse, error)
	Delete(ctx context.Context, userID, signerID uuid.UUID) (*dto.DeleteSignerResponse, error)
}

// signerServiceImpl is the implementation of SignerService
type signerServiceImpl struct {
	signerRepo repository.SignerRepository
	fieldRepo  repository.FieldRepository
	docRepo    repository.DocumentRepository
	sessions   *editor.SessionManager
	logger     *zap.Logger
}

// NewSignerService creates a new instance of SignerService
func NewSignerService(
	signerRepo repository.SignerRepository,
	fieldRepo repository.FieldRepository,
	docRepo repository.DocumentRepository,
	sessions *editor.SessionManager,
	logger *zap.Logger,
) SignerService {
	return &signerServiceImpl{
		signerRepo: signerRepo,
		fieldRepo:  fieldRepo,
		docRepo:    docRepo,
		sessions:   sessions,
		logger:     logger,
	}
}

// Create adds a signer to a draft document
func (s *signerServiceImpl) Create(ctx context.Context, userID, documentID uuid.UUID, req *dto.CreateSignerRequest) (*dto.SignerResponse, error) {
	doc, err := s.ownedDocument(ctx, userID, documentID)
	if err != nil {
		return nil, err
	}
	if doc.Status != domain.DocumentStatusDraft {
		return nil, response.NewAppError(response.ErrCodeValidation, "Signers can only be added to draft documents")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	existing, err := s.signerRepo.FindByDocumentID(ctx, documentID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load signers", err.Error())
	}
	for _, other := range existing {
		if strings.EqualFold(other.Email, email) {
			return nil, response.NewAppError(response.ErrCodeAlreadyExists, "A signer with this email already exists on this document")
		}
	}

	role := domain.SignerRole(req.Role)
	if req.Role == "" {
		role = domain.SignerRoleSigner
	}
	if !domain.IsValidSignerRole(role) {
		return nil, response.NewAppError(response.ErrCodeValidation, "Invalid signer role")
	}

	order := req.Order
	if order <= 0 {
		order = len(existing) + 1
	}

	signer := &domain.Signer{
		DocumentID: documentID,
		Name:       strings.TrimSpace(req.Name),
		Email:      email,
		Role:       role,
		Order:      order,
		Status:     domain.SignerStatusPending,
	}
	if err := s.signerRepo.Create(ctx, signer); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create signer", err.Error())
	}

	resp := dto.ToSignerResponse(signer)
	return &resp, nil
}

// List returns a document's signers in signing order
func (s *signerServiceImpl) List(ctx context.Context, userID, documentID uuid.UUID) ([]dto.SignerResponse, error) {
	if _, err := s.ownedDocument(ctx, userID, documentID); err != nil {
		return nil, err
	}
	signers, err := s.signerRepo.FindByDocumentID(ctx, documentID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load signers", err.Error())
	}
	responses := make([]dto.SignerResponse, 0, len(signers))
	for _, signer := range signers {
		responses = append(responses, dto.ToSignerResponse(signer))
	}
	return responses, nil
}

// Update modifies a signer's details
func (s *signerServiceImpl) Update(ctx context.Context, userID, signerID uuid.UUID, req *dto.UpdateSignerRequest) (*dto.SignerResponse, error) {
	signer, err := s.ownedSigner(ctx, userID, signerID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		signer.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		signer.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Role != nil {
		role := domain.SignerRole(*req.Role)
		if !domain.IsValidSignerRole(role) {
			return nil, response.NewAppError(response.ErrCodeValidation, "Invalid signer role")
		}
		signer.Role = role
	}
	if req.Order != nil {
		signer.Order = *req.Order
	}

	if err := s.signerRepo.Update(ctx, signer); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update signer", err.Error())
	}

	resp := dto.ToSignerResponse(signer)
	return &resp, nil
}

// Delete removes a signer and resets any fields assigned to them back to
// "any signer", in both the stored draft and any open session
func (s *signerServiceImpl) Delete(ctx context.Context, userID, signerID uuid.UUID) (*dto.DeleteSignerResponse, error) {
	signer, err := s.ownedSigner(ctx, userID, signerID)
	if err != nil {
		return nil, err
	}

	cleared, err := s.fieldRepo.ClearAssignments(ctx, signerID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to clear field assignments", err.Error())
	}

	if s.sessions != nil {
		for _, session := range s.sessions.ForDocument(signer.DocumentID) {
			n := session.ClearAssignments(signerID)
			if n > 0 {
				s.logger.Info("Cleared live assignments",
					zap.String("session_id", session.ID.String()),
					zap.String("signer_id", signerID.String()),
					zap.Int("count", n),
				)
			}
		}
	}

	if err := s.signerRepo.Delete(ctx, signerID); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to delete signer", err.Error())
	}

	return &dto.DeleteSignerResponse{
		SignerID:           signerID,
		ClearedAssignments: cleared,
	}, nil
}

func (s *signerServiceImpl) ownedDocument(ctx context.Context, userID, documentID uuid.UUID) (*domain.Document, error) {
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
	return doc, nil
}

func (s *signerServiceImpl) ownedSigner(ctx context.Context, userID, signerID uuid.UUID) (*domain.Signer, error) {
	signer, err := s.signerRepo.FindByID(ctx, signerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Signer not found")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load signer", err.Error())
	}
	if _, err := s.ownedDocument(ctx, userID, signer.DocumentID); err != nil {
		return nil, err
	}
	return signer, nil
}
