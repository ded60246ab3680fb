package domain

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// FieldType enumerates the kinds of fields that can be placed on a document page
type FieldType string

const (
	FieldTypeSignature FieldType = "signature"
	FieldTypeInitial   FieldType = "initial"
	FieldTypeName      FieldType = "name"
	FieldTypeCompany   FieldType = "company"
	FieldTypeDate      FieldType = "date"
	FieldTypeEmail     FieldType = "email"
	FieldTypeText      FieldType = "text"
	FieldTypeCheckbox  FieldType = "checkbox"
	FieldTypeImage     FieldType = "image"
	FieldTypeComment   FieldType = "comment"
)

// ValidFieldTypes lists every accepted field type
var ValidFieldTypes = []FieldType{
	FieldTypeSignature,
	FieldTypeInitial,
	FieldTypeName,
	FieldTypeCompany,
	FieldTypeDate,
	FieldTypeEmail,
	FieldTypeText,
	FieldTypeCheckbox,
	FieldTypeImage,
	FieldTypeComment,
}

// IsValidFieldType reports whether t is a known field type
func IsValidFieldType(t FieldType) bool {
	for _, v := range ValidFieldTypes {
		if v == t {
			return true
		}
	}
	return false
}

// Field represents a placed annotation on a document page.
// Geometry (X, Y, Width, Height) is stored in document space: unscaled page
// coordinates that never change with zoom. Value is an opaque payload whose
// shape depends on Type; it is only non-null once the field was configured.
type Field struct {
	BaseModel
	DocumentID   uuid.UUID      `gorm:"type:uuid;not null;index:idx_fields_document_id" json:"document_id"`
	Type         FieldType      `gorm:"type:varchar(20);not null" json:"type"`
	Label        string         `gorm:"type:varchar(200);not null" json:"label"`
	Page         int            `gorm:"not null;default:1;index:idx_fields_page" json:"page"`
	X            float64        `gorm:"not null" json:"x"`
	Y            float64        `gorm:"not null" json:"y"`
	Width        float64        `gorm:"not null" json:"width"`
	Height       float64        `gorm:"not null" json:"height"`
	Required     bool           `gorm:"not null;default:true" json:"required"`
	IsConfigured bool           `gorm:"not null;default:false" json:"is_configured"`
	Value        datatypes.JSON `gorm:"type:jsonb" json:"value,omitempty"`
	AssignedTo   *uuid.UUID     `gorm:"type:uuid;index:idx_fields_assigned_to" json:"assigned_to,omitempty"`
}

// TableName specifies the table name for Field
func (Field) TableName() string {
	return "fields"
}
