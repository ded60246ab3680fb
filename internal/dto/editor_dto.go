package dto

import (
	"github.com/google/uuid"

	"esign-editor-api/internal/editor"
)

// OpenSessionRequest represents the request to open an editor session
// @Description Opens a server-side editor session on a draft document,
// @Description seeded with the document's persisted fields
type OpenSessionRequest struct {
	DocumentID uuid.UUID `json:"documentId" binding:"required" example:"539167fb-b599-41ba-9ead-344a6d0b3a2f"`
}

// SessionStateResponse is the full editor state snapshot
// @Description Everything a client needs to draw the editor: fields, the
// @Description active selection, the armed tool, the open capture target
// @Description and the current overlay placement
type SessionStateResponse struct {
	SessionID  uuid.UUID           `json:"sessionId" example:"f47ac10b-58cc-4372-a567-0e02b2c3d479"`
	DocumentID uuid.UUID           `json:"documentId" example:"539167fb-b599-41ba-9ead-344a6d0b3a2f"`
	PageCount  int                 `json:"pageCount" example:"3"`
	// WorkerScriptURL pins the renderer worker version by server config
	WorkerScriptURL string `json:"workerScriptUrl,omitempty" example:"https://unpkg.com/pdfjs-dist@3.11.174/build/pdf.worker.min.js"`
	Fields     []FieldResponse     `json:"fields"`
	ActiveID   *uuid.UUID          `json:"activeId,omitempty"`
	ArmedTool  string              `json:"armedTool,omitempty" example:"signature"`
	CaptureFor *uuid.UUID          `json:"captureFor,omitempty"`
	Overlay    editor.OverlayState `json:"overlay"`
}

// ArmToolRequest selects a palette tool for click-to-place
type ArmToolRequest struct {
	Type string `json:"type" binding:"required" example:"signature"`
}

// PointerRect mirrors editor.Rect for requests reporting viewport geometry
type PointerRect struct {
	X      float64 `json:"x" example:"94"`
	Y      float64 `json:"y" example:"136"`
	Width  float64 `json:"width" binding:"required,gt=0" example:"612"`
	Height float64 `json:"height" binding:"required,gt=0" example:"792"`
}

// ToRect converts to the editor geometry type
func (r PointerRect) ToRect() editor.Rect {
	return editor.Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

// ClickRequest represents a pointer click on the rendered page
// @Description Viewport coordinates of the click plus the rendered page's
// @Description viewport rect, scale and page number
type ClickRequest struct {
	X        float64     `json:"x" example:"240"`
	Y        float64     `json:"y" example:"380"`
	PageRect PointerRect `json:"pageRect" binding:"required"`
	Scale    float64     `json:"scale" binding:"required,gt=0" example:"1.25"`
	Page     int         `json:"page" binding:"required,min=1" example:"1"`
}

// DropRequest represents a drag-and-drop placement
// @Description Same geometry as a click, plus the dragged field type
type DropRequest struct {
	Type     string      `json:"type" binding:"required" example:"date"`
	X        float64     `json:"x" example:"240"`
	Y        float64     `json:"y" example:"380"`
	PageRect PointerRect `json:"pageRect" binding:"required"`
	Scale    float64     `json:"scale" binding:"required,gt=0" example:"1.25"`
	Page     int         `json:"page" binding:"required,min=1" example:"1"`
}

// GeometryRequest reports the rendered page geometry for overlay resync
// @Description Sent on scroll, resize, zoom, page navigation and
// @Description render-complete events
type GeometryRequest struct {
	ContainerRect  PointerRect `json:"containerRect" binding:"required"`
	PageRect       PointerRect `json:"pageRect"`
	ScrollLeft     float64     `json:"scrollLeft" example:"0"`
	ScrollTop      float64     `json:"scrollTop" example:"120"`
	Scale          float64     `json:"scale" binding:"required,gt=0" example:"1.25"`
	Page           int         `json:"page" binding:"required,min=1" example:"1"`
	RenderComplete bool        `json:"renderComplete" example:"true"`
}

// ToRenderGeometry converts to the editor geometry type
func (r GeometryRequest) ToRenderGeometry() editor.RenderGeometry {
	return editor.RenderGeometry{
		ContainerRect: r.ContainerRect.ToRect(),
		PageRect:      r.PageRect.ToRect(),
		ScrollLeft:    r.ScrollLeft,
		ScrollTop:     r.ScrollTop,
		Scale:         r.Scale,
		Page:          r.Page,
	}
}

// CaptureSaveRequest carries the value entered in the capture modal
// @Description method/data are for signature-like fields (draw, type,
// @Description upload); text, date and checked cover the plain field types
type CaptureSaveRequest struct {
	Method  string `json:"method,omitempty" example:"draw"`
	Data    string `json:"data,omitempty" example:"data:image/png;base64,iVBOR..."`
	Text    string `json:"text,omitempty" example:"Acme Corp"`
	Date    string `json:"date,omitempty" example:"2024-03-01"`
	Checked *bool  `json:"checked,omitempty" example:"true"`
}

// ToCaptureInput converts to the editor capture type
func (r CaptureSaveRequest) ToCaptureInput() editor.CaptureInput {
	return editor.CaptureInput{
		Method:  r.Method,
		Data:    r.Data,
		Text:    r.Text,
		Date:    r.Date,
		Checked: r.Checked,
	}
}

// SummaryResponse is the pre-send review of all placed fields
// @Description Counts by type and page plus the full field list;
// @Description requiredUnconfigured drives the strict send gate
type SummaryResponse struct {
	TotalFields          int             `json:"totalFields" example:"5"`
	ConfiguredCount      int             `json:"configuredCount" example:"3"`
	RequiredUnconfigured int             `json:"requiredUnconfigured" example:"2"`
	ByType               map[string]int  `json:"byType"`
	ByPage               map[int]int     `json:"byPage"`
	Fields               []FieldResponse `json:"fields"`
}

// SendDocumentResponse confirms a successful send
type SendDocumentResponse struct {
	DocumentID uuid.UUID `json:"documentId" example:"539167fb-b599-41ba-9ead-344a6d0b3a2f"`
	Status     string    `json:"status" example:"SENT"`
	FieldCount int       `json:"fieldCount" example:"5"`
}

// ToSessionStateResponse converts a session snapshot to its response form
func ToSessionStateResponse(state editor.SessionState) SessionStateResponse {
	return SessionStateResponse{
		SessionID:  state.SessionID,
		DocumentID: state.DocumentID,
		PageCount:  state.PageCount,
		Fields:     ToEditorFieldResponses(state.Fields),
		ActiveID:   state.ActiveID,
		ArmedTool:  string(state.ArmedTool),
		CaptureFor: state.CaptureFor,
		Overlay:    state.Overlay,
	}
}

// ToSummaryResponse converts an editor summary to its response form
func ToSummaryResponse(summary editor.Summary) SummaryResponse {
	byType := make(map[string]int, len(summary.ByType))
	for t, n := range summary.ByType {
		byType[string(t)] = n
	}
	return SummaryResponse{
		TotalFields:          summary.TotalFields,
		ConfiguredCount:      summary.ConfiguredCount,
		RequiredUnconfigured: summary.RequiredUnconfigured,
		ByType:               byType,
		ByPage:               summary.ByPage,
		Fields:               ToEditorFieldResponses(summary.Fields),
	}
}
