package dto

import (
	"encoding/json"

	"github.com/google/uuid"

	"esign-editor-api/internal/domain"
	"esign-editor-api/internal/editor"
)

// FieldResponse represents a placed field
// @Description Field placed on a document page. Geometry is in document
// @Description space: unscaled page coordinates that do not change with zoom.
type FieldResponse struct {
	ID           uuid.UUID           `json:"fieldId" example:"f47ac10b-58cc-4372-a567-0e02b2c3d479"`
	Type         string              `json:"type" example:"signature"`
	Label        string              `json:"label" example:"Signature"`
	Page         int                 `json:"page" example:"1"`
	X            float64             `json:"x" example:"145"`
	Y            float64             `json:"y" example:"284"`
	Width        float64             `json:"width" example:"150"`
	Height       float64             `json:"height" example:"48"`
	Required     bool                `json:"required" example:"true"`
	IsConfigured bool                `json:"isConfigured" example:"false"`
	Value        *editor.FieldValue  `json:"value,omitempty"`
	AssignedTo   *uuid.UUID          `json:"assignedTo,omitempty" example:"a1b2c3d4-e5f6-7890-abcd-ef1234567890"`
}

// UpdateFieldRequest represents a partial field update from the properties panel
// @Description All fields are optional; only provided values are applied.
// @Description clearAssigned=true resets the assignment back to "any signer".
type UpdateFieldRequest struct {
	Label         *string    `json:"label" binding:"omitempty,max=200" example:"Customer signature"`
	Required      *bool      `json:"required" example:"false"`
	Page          *int       `json:"page" binding:"omitempty,min=1" example:"2"`
	X             *float64   `json:"x" example:"120"`
	Y             *float64   `json:"y" example:"300"`
	Width         *float64   `json:"width" binding:"omitempty,gt=0" example:"160"`
	Height        *float64   `json:"height" binding:"omitempty,gt=0" example:"50"`
	IsConfigured  *bool      `json:"isConfigured" example:"true"`
	AssignedTo    *uuid.UUID `json:"assignedTo" example:"a1b2c3d4-e5f6-7890-abcd-ef1234567890"`
	ClearAssigned bool       `json:"clearAssigned" example:"false"`
}

// ToPatch converts the request into an editor patch
func (r *UpdateFieldRequest) ToPatch() editor.FieldPatch {
	return editor.FieldPatch{
		Label:         r.Label,
		Required:      r.Required,
		Page:          r.Page,
		X:             r.X,
		Y:             r.Y,
		Width:         r.Width,
		Height:        r.Height,
		IsConfigured:  r.IsConfigured,
		AssignedTo:    r.AssignedTo,
		ClearAssigned: r.ClearAssigned,
	}
}

// ToFieldResponse converts a persisted field to its response form
func ToFieldResponse(f *domain.Field) FieldResponse {
	resp := FieldResponse{
		ID:           f.ID,
		Type:         string(f.Type),
		Label:        f.Label,
		Page:         f.Page,
		X:            f.X,
		Y:            f.Y,
		Width:        f.Width,
		Height:       f.Height,
		Required:     f.Required,
		IsConfigured: f.IsConfigured,
		AssignedTo:   f.AssignedTo,
	}
	if len(f.Value) > 0 {
		var value editor.FieldValue
		if err := json.Unmarshal(f.Value, &value); err == nil {
			resp.Value = &value
		}
	}
	return resp
}

// ToEditorFieldResponse converts a live session field to its response form
func ToEditorFieldResponse(f editor.Field) FieldResponse {
	return FieldResponse{
		ID:           f.ID,
		Type:         string(f.Type),
		Label:        f.Label,
		Page:         f.Page,
		X:            f.Rect.X,
		Y:            f.Rect.Y,
		Width:        f.Rect.Width,
		Height:       f.Rect.Height,
		Required:     f.Required,
		IsConfigured: f.IsConfigured,
		Value:        f.Value,
		AssignedTo:   f.AssignedTo,
	}
}

// ToEditorFieldResponses converts a slice of live session fields
func ToEditorFieldResponses(fields []editor.Field) []FieldResponse {
	out := make([]FieldResponse, 0, len(fields))
	for _, f := range fields {
		out = append(out, ToEditorFieldResponse(f))
	}
	return out
}
