package domain

import (
	"time"

	"github.com/google/uuid"
)

// DocumentStatus represents the lifecycle status of a document
type DocumentStatus string

const (
	DocumentStatusDraft     DocumentStatus = "DRAFT"     // Being edited, not sent
	DocumentStatusSent      DocumentStatus = "SENT"      // Sent for signing
	DocumentStatusCompleted DocumentStatus = "COMPLETED" // All signers finished
	DocumentStatusVoided    DocumentStatus = "VOIDED"    // Cancelled by owner
)

// Document represents an uploaded PDF that fields are placed on.
// The file itself lives in S3; only the key is stored here.
type Document struct {
	BaseModel
	OwnerID   uuid.UUID      `gorm:"type:uuid;not null;index:idx_documents_owner_id" json:"owner_id"`
	Title     string         `gorm:"type:varchar(255);not null" json:"title"`
	FileKey   string         `gorm:"type:text;not null" json:"file_key"`
	FileName  string         `gorm:"type:varchar(255);not null" json:"file_name"`
	FileSize  int64          `gorm:"not null" json:"file_size"`
	PageCount int            `gorm:"not null" json:"page_count"`
	Status    DocumentStatus `gorm:"type:varchar(20);not null;default:'DRAFT';index:idx_documents_status" json:"status"`
	SentAt    *time.Time     `gorm:"type:timestamp" json:"sent_at,omitempty"`
	Fields    []Field        `gorm:"foreignKey:DocumentID;constraint:OnDelete:CASCADE" json:"fields,omitempty"`
	Signers   []Signer       `gorm:"foreignKey:DocumentID;constraint:OnDelete:CASCADE" json:"signers,omitempty"`
}

// TableName specifies the table name for Document
func (Document) TableName() string {
	return "documents"
}
