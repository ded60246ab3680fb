package domain

import "github.com/google/uuid"

// SignerRole represents what a signer is expected to do with the document
type SignerRole string

const (
	SignerRoleSigner   SignerRole = "signer"
	SignerRoleApprover SignerRole = "approver"
	SignerRoleViewer   SignerRole = "viewer"
	SignerRoleWitness  SignerRole = "witness"
)

// SignerStatus represents the progress of a signer on a sent document
type SignerStatus string

const (
	SignerStatusPending  SignerStatus = "pending"
	SignerStatusSigned   SignerStatus = "signed"
	SignerStatusDeclined SignerStatus = "declined"
)

// IsValidSignerRole reports whether r is a known signer role
func IsValidSignerRole(r SignerRole) bool {
	switch r {
	case SignerRoleSigner, SignerRoleApprover, SignerRoleViewer, SignerRoleWitness:
		return true
	}
	return false
}

// Signer represents a recipient of a document in the signing sequence.
// Fields reference signers through AssignedTo; deleting a signer clears
// those references back to "any signer".
type Signer struct {
	BaseModel
	DocumentID uuid.UUID    `gorm:"type:uuid;not null;index:idx_signers_document_id;uniqueIndex:uq_signers_document_email,priority:1" json:"document_id"`
	Name       string       `gorm:"type:varchar(255);not null" json:"name"`
	Email      string       `gorm:"type:varchar(255);not null;uniqueIndex:uq_signers_document_email,priority:2" json:"email"`
	Role       SignerRole   `gorm:"type:varchar(20);not null;default:'signer'" json:"role"`
	Order      int          `gorm:"column:signing_order;not null;default:1" json:"order"`
	Status     SignerStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
}

// TableName specifies the table name for Signer
func (Signer) TableName() string {
	return "signers"
}
