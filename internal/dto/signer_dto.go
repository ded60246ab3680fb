package dto

import (
	"time"

	"github.com/google/uuid"

	"esign-editor-api/internal/domain"
)

// CreateSignerRequest represents the request to add a signer to a document
// @Description order controls the signing sequence; duplicates of the same
// @Description email on one document are rejected
type CreateSignerRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=255" example:"Alice Kim"`
	Email string `json:"email" binding:"required,email" example:"alice@example.com"`
	Role  string `json:"role" binding:"omitempty,oneof=signer approver viewer witness" example:"signer"`
	Order int    `json:"order" binding:"omitempty,min=1" example:"1"`
}

// UpdateSignerRequest represents the request to update a signer
// @Description All fields are optional
type UpdateSignerRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=1,max=255" example:"Alice Kim"`
	Email *string `json:"email" binding:"omitempty,email" example:"alice@example.com"`
	Role  *string `json:"role" binding:"omitempty,oneof=signer approver viewer witness" example:"approver"`
	Order *int    `json:"order" binding:"omitempty,min=1" example:"2"`
}

// SignerResponse represents a signer
// @Description Signer information for a document
type SignerResponse struct {
	ID         uuid.UUID `json:"signerId" example:"a1b2c3d4-e5f6-7890-abcd-ef1234567890"`
	DocumentID uuid.UUID `json:"documentId" example:"539167fb-b599-41ba-9ead-344a6d0b3a2f"`
	Name       string    `json:"name" example:"Alice Kim"`
	Email      string    `json:"email" example:"alice@example.com"`
	Role       string    `json:"role" example:"signer"`
	Order      int       `json:"order" example:"1"`
	Status     string    `json:"status" example:"pending"`
	CreatedAt  time.Time `json:"createdAt" example:"2024-01-15T10:30:00Z"`
}

// DeleteSignerResponse reports the side effects of removing a signer
// @Description clearedAssignments is how many fields were reset to "any signer"
type DeleteSignerResponse struct {
	SignerID           uuid.UUID `json:"signerId" example:"a1b2c3d4-e5f6-7890-abcd-ef1234567890"`
	ClearedAssignments int64     `json:"clearedAssignments" example:"3"`
}

// ToSignerResponse converts a domain signer to its response form
func ToSignerResponse(s *domain.Signer) SignerResponse {
	return SignerResponse{
		ID:         s.ID,
		DocumentID: s.DocumentID,
		Name:       s.Name,
		Email:      s.Email,
		Role:       string(s.Role),
		Order:      s.Order,
		Status:     string(s.Status),
		CreatedAt:  s.CreatedAt,
	}
}
