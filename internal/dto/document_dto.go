package dto

import (
	"time"

	"github.com/google/uuid"

	"esign-editor-api/internal/domain"
)

// DocumentResponse represents the document response
// @Description Document metadata including page count and lifecycle status
type DocumentResponse struct {
	ID        uuid.UUID  `json:"documentId" example:"539167fb-b599-41ba-9ead-344a6d0b3a2f"`
	OwnerID   uuid.UUID  `json:"ownerId" example:"b2c3d4e5-f6a7-8901-bcde-f12345678901"`
	Title     string     `json:"title" example:"Mutual NDA"`
	FileName  string     `json:"fileName" example:"nda.pdf"`
	FileSize  int64      `json:"fileSize" example:"204800"`
	PageCount int        `json:"pageCount" example:"3"`
	Status    string     `json:"status" example:"DRAFT"`
	SentAt    *time.Time `json:"sentAt,omitempty" example:"2024-01-15T10:30:00Z"`
	CreatedAt time.Time  `json:"createdAt" example:"2024-01-15T10:30:00Z"`
	UpdatedAt time.Time  `json:"updatedAt" example:"2024-01-15T14:20:00Z"`
}

// DocumentDetailResponse represents a document with its fields and signers
// @Description Document with placed fields and signing sequence included
type DocumentDetailResponse struct {
	DocumentResponse
	Fields  []FieldResponse  `json:"fields"`
	Signers []SignerResponse `json:"signers"`
}

// DocumentDownloadResponse represents a presigned download link for the PDF
// @Description Short-lived presigned URL for fetching the original PDF
type DocumentDownloadResponse struct {
	DownloadURL string `json:"downloadUrl" example:"https://s3.amazonaws.com/bucket/documents/abc.pdf?X-Amz-Signature=..."`
	ExpiresIn   int    `json:"expiresIn" example:"900"`
}

// ToDocumentResponse converts a domain document to its response form
func ToDocumentResponse(doc *domain.Document) DocumentResponse {
	return DocumentResponse{
		ID:        doc.ID,
		OwnerID:   doc.OwnerID,
		Title:     doc.Title,
		FileName:  doc.FileName,
		FileSize:  doc.FileSize,
		PageCount: doc.PageCount,
		Status:    string(doc.Status),
		SentAt:    doc.SentAt,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}
}

// ToDocumentDetailResponse converts a document with preloaded relations
func ToDocumentDetailResponse(doc *domain.Document) DocumentDetailResponse {
	resp := DocumentDetailResponse{
		DocumentResponse: ToDocumentResponse(doc),
		Fields:           make([]FieldResponse, 0, len(doc.Fields)),
		Signers:          make([]SignerResponse, 0, len(doc.Signers)),
	}
	for i := range doc.Fields {
		resp.Fields = append(resp.Fields, ToFieldResponse(&doc.Fields[i]))
	}
	for i := range doc.Signers {
		resp.Signers = append(resp.Signers, ToSignerResponse(&doc.Signers[i]))
	}
	return resp
}
