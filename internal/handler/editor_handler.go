package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"esign-editor-api/internal/dto"
	"esign-editor-api/internal/middleware"
	"esign-editor-api/internal/response"
	"esign-editor-api/internal/service"
)

// EditorHandler handles editor session requests. Every operation below a
// session resolves the session by ID and verifies the caller owns it.
type EditorHandler struct {
	editorService service.EditorService
}

// NewEditorHandler creates a new EditorHandler
func NewEditorHandler(editorService service.EditorService) *EditorHandler {
	return &EditorHandler{
		editorService: editorService,
	}
}

// OpenSession godoc
// @Summary      Open an editor session
// @Description  Opens a server-side editing session on a draft document and
// @Description  loads its persisted fields. Sent documents cannot be edited.
// @Tags         editor
// @Accept       json
// @Produce      json
// @Param        request body dto.OpenSessionRequest true "Document to edit"
// @Success      201 {object} response.SuccessResponse{data=dto.SessionStateResponse} "Session opened"
// @Failure      400 {object} response.ErrorResponse "Invalid request"
// @Failure      403 {object} response.ErrorResponse "Not the owner"
// @Failure      404 {object} response.ErrorResponse "Document not found"
// @Failure      409 {object} response.ErrorResponse "Document already sent"
// @Router       /editor/sessions [post]
func (h *EditorHandler) OpenSession(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Authentication required")
		return
	}

	var req dto.OpenSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	state, err := h.editorService.OpenSession(c.Request.Context(), userID, req.DocumentID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, state)
}

// GetState godoc
// @Summary      Get the session state
// @Description  Returns the full session snapshot: fields, active selection,
// @Description  armed tool, capture state and overlay geometry
// @Tags         editor
// @Produce      json
// @Param        sessionId path string true "Session ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.SessionStateResponse} "Session state"
// @Failure      404 {object} response.ErrorResponse "Session not found"
// @Router       /editor/sessions/{sessionId} [get]
func (h *EditorHandler) GetState(c *gin.Context) {
	userID, sessionID, ok := h.userAndSession(c)
	if !ok {
		return
	}

	state, err := h.editorService.GetState(c.Request.Context(), userID, sessionID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, state)
}

// CloseSession godoc
// @Summary      Close an editor session
// @Description  Discards the session without persisting. Unsaved field
// @Description  changes are lost.
// @Tags         editor
// @Produce      json
// @Param        sessionId path string true "Session ID (UUID)"
// @Success      200 {object} response.SuccessResponse "Session closed"
// @Failure      404 {object} response.ErrorResponse "Session not found"
// @Router       /editor/sessions/{sessionId} [delete]
func (h *EditorHandler) CloseSession(c *gin.Context) {
	userID, sessionID, ok := h.userAndSession(c)
	if !ok {
		return
	}

	if err := h.editorService.CloseSession(c.Request.Context(), userID, sessionID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, nil)
}

// ArmTool godoc
// @Summary      Arm a palette tool
// @Description  Arms a field type for click-to-place. The next click inside
// @Description  the page places one field and disarms the tool.
// @Tags         editor
// @Accept       json
// @Produce      json
// @Param        sessionId path string true "Session ID (UUID)"
// @Param        request body dto.ArmToolRequest true "Field type to arm"
// @Success      200 {object} response.SuccessResponse "Tool armed"
// @Failure      400 {object} response.ErrorResponse "Unknown field type"
// @Router       /editor/sessions/{sessionId}/tool [put]
func (h *EditorHandler) ArmTool(c *gin.Context) {
	userID, sessionID, ok := h.userAndSession(c)
	if !ok {
		return
	}

	var req dto.ArmToolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	if err := h.editorService.ArmTool(c.Request.Context(), userID, sessionID, req.Type); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, nil)
}

// CancelTool godoc
// @Summary      Disarm the current tool
// @Tags         editor
// @Produce      json
// @Param        sessionId path string true "Session ID (UUID)"
// @Success      200 {object} response.SuccessResponse "Tool disarmed"
// @Router       /editor/sessions/{sessionId}/tool [delete]
func (h *EditorHandler) CancelTool(c *gin.Context) {
	userID, sessionID, ok := h.userAndSession(c)
	if !ok {
		return
	}

	if err := h.editorService.CancelTool(c.Request.Context(), userID, sessionID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, nil)
}

// Click godoc
// @Summary      Place the armed field at a click point
// @Description  Converts the viewport click to document space and places the
// @Description  armed tool's field centered on it. Clicks outside the page
// @Description  are rejected and leave the tool armed.
// @Tags         editor
// @Accept       json
// @Produce      json
// @Param        sessionId path string true "Session ID (UUID)"
// @Param        request body dto.ClickRequest true "Click geometry"
// @Success      201 {object} response.SuccessResponse{data=dto.FieldResponse} "Field placed"
// @Failure      400 {object} response.ErrorResponse "No tool armed"
// @Failure      422 {object} response.ErrorResponse "Click outside the page"
// @Router       /editor/sessions/{sessionId}/click [post]
func (h *EditorHandler) Click(c *gin.Context) {
	userID, sessionID, ok := h.userAndSession(c)
	if !ok {
		return
	}

	var req dto.ClickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	field, err := h.editorService.Click(c.Request.Context(), userID, sessionID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, field)
}

// Drop godoc
// @Summary      Place a dragged field at a drop point
// @Description  Same geometry handling as a click; the field type travels
// @Description  with the drag instead of an armed tool
// @Tags         editor
// @Accept       json
// @Produce      json
// @Param        sessionId path string true "Session ID (UUID)"
// @Param        request body dto.DropRequest true "Drop geometry and field type"
// @Success      201 {object} response.SuccessResponse{data=dto.FieldResponse} "Field placed"
// @Failure      422 {object} response.ErrorResponse "Drop outside the page"
// @Router       /editor/sessions/{sessionId}/drop [post]
func (h *EditorHandler) Drop(c *gin.Context) {
	userID, sessionID, ok := h.userAndSession(c)
	if !ok {
		return
	}

	var req dto.DropRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	field, err := h.editorService.Drop(c.Request.Context(), userID, sessionID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, field)
}

// SelectField godoc
// @Summary      Select a field
// @Description  Makes the field the active selection for the properties panel
// @Tags         editor
// @Produce      json
// @Param        sessionId path string true "Session ID (UUID)"
// @Param        fieldId path string true "Field ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.FieldResponse} "Selected field"
// @Failure      404 {object} response.ErrorResponse "Field not found"
// @Router       /editor/sessions/{sessionId}/fields/{fieldId}/select [post]
func (h *EditorHandler) SelectField(c *gin.Context) {
	userID, sessionID, ok := h.userAndSession(c)
	if !ok {
		return
	}
	fieldID, ok := h.fieldID(c)
	if !ok {
		return
	}

	field, err := h.editorService.SelectField(c.Request.Context(), userID, sessionID, fieldID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, field)
}

// Deselect godoc
// @Summary      Clear the active selection
// @Tags         editor
// @Produce      json
// @Param        sessionId path string true "Session ID (UUID)"
// @Success      200 {object} response.SuccessResponse "Selection cleared"
// @Router       /editor/sessions/{sessionId}/selection [delete]
func (h *EditorHandler) Deselect(c *gin.Context) {
	userID, sessionID, ok := h.userAndSession(c)
	if !ok {
		return
	}

	if err := h.editorService.Deselect(c.Request.Context(), userID, sessionID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, nil)
}

// PatchField godoc
// @Summary      Update field properties
// @Description  Applies a partial update from the properties panel: label,
// @Description  geometry, required flag, signer assignment
// @Tags         editor
// @Accept       json
// @Produce      json
// @Param        sessionId path string true "Session ID (UUID)"
// @Param        fieldId path string true "Field ID (UUID)"
// @Param        request body dto.UpdateFieldRequest true "Properties to update"
// @Success      200 {object} response.SuccessResponse "Field updated"
// @Router       /editor/sessions/{sessionId}/fields/{fieldId} [patch]
func (h *EditorHandler) PatchField(c *gin.Context) {
	userID, sessionID, ok := h.userAndSession(c)
	if !ok {
		return
	}
	fieldID, ok := h.fieldID(c)
	if !ok {
		return
	}

	var req dto.UpdateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	if err := h.editorService.PatchField(c.Request.Context(), userID, sessionID, fieldID, &req); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, nil)
}

// RemoveField godoc
// @Summary      Remove a field
// @Tags         editor
// @Produce      json
// @Param        sessionId path string true "Session ID (UUID)"
// @Param        fieldId path string true "Field ID (UUID)"
// @Success      200 {object} response.SuccessResponse "Field removed"
// @Router       /editor/sessions/{sessionId}/fields/{fieldId} [delete]
func (h *EditorHandler) RemoveField(c *gin.Context) {
	userID, sessionID, ok := h.userAndSession(c)
	if !ok {
		return
	}
	fieldID, ok := h.fieldID(c)
	if !ok {
		return
	}

	if err := h.editorService.RemoveField(c.Request.Context(), userID, sessionID, fieldID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, nil)
}

// ClearFields godoc
// @Summary      Remove every placed field
// @Description  Clears the session's field list and selection. Clearing an
// @Description  already-empty session succeeds.
// @Tags         editor
// @Produce      json
// @Param        sessionId path string true "Session ID (UUID)"
// @Success      200 {object} response.SuccessResponse "Fields cleared"
// @Failure      404 {object} response.ErrorResponse "Session not found"
// @Router       /editor/sessions/{sessionId}/fields [delete]
func (h *EditorHandler) ClearFields(c *gin.Context) {
	userID, sessionID, ok := h.userAndSession(c)
	if !ok {
		return
	}

	if err := h.editorService.ClearFields(c.Request.Context(), userID, sessionID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, nil)
}

// OpenCapture godoc
// @Summary      Open the value-capture modal
// @Description  Starts capturing a value for one field. Opening for a
// @Description  different field discards the previous capture state.
// @Tags         editor
// @Produce      json
// @Param        sessionId path string true "Session ID (UUID)"
// @Param        fieldId path string true "Field ID (UUID)"
// @Success      200 {object} response.SuccessResponse "Capture opened"
// @Failure      404 {object} response.ErrorResponse "Field not found"
// @Router       /editor/sessions/{sessionId}/fields/{fieldId}/capture [post]
func (h *EditorHandler) OpenCapture(c *gin.Context) {
	userID, sessionID, ok := h.userAndSession(c)
	if !ok {
		return
	}
	fieldID, ok := h.fieldID(c)
	if !ok {
		return
	}

	if err := h.editorService.OpenCapture(c.Request.Context(), userID, sessionID, fieldID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, nil)
}

// SaveCapture godoc
// @Summary      Save the captured value
// @Description  Validates the value against the field's type and marks the
// @Description  field configured. On a validation failure the capture stays
// @Description  open and the field is untouched.
// @Tags         editor
// @Accept       json
// @Produce      json
// @Param        sessionId path string true "Session ID (UUID)"
// @Param        request body dto.CaptureSaveRequest true "Captured value"
// @Success      200 {object} response.SuccessResponse "Value saved"
// @Failure      400 {object} response.ErrorResponse "Validation failed or no capture open"
// @Router       /editor/sessions/{sessionId}/capture [put]
func (h *EditorHandler) SaveCapture(c *gin.Context) {
	userID, sessionID, ok := h.userAndSession(c)
	if !ok {
		return
	}

	var req dto.CaptureSaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	if err := h.editorService.SaveCapture(c.Request.Context(), userID, sessionID, &req); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, nil)
}

// CancelCapture godoc
// @Summary      Cancel the value capture
// @Description  Closes the modal without touching the field
// @Tags         editor
// @Produce      json
// @Param        sessionId path string true "Session ID (UUID)"
// @Success      200 {object} response.SuccessResponse "Capture cancelled"
// @Router       /editor/sessions/{sessionId}/capture [delete]
func (h *EditorHandler) CancelCapture(c *gin.Context) {
	userID, sessionID, ok := h.userAndSession(c)
	if !ok {
		return
	}

	if err := h.editorService.CancelCapture(c.Request.Context(), userID, sessionID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, nil)
}

// ReportGeometry godoc
// @Summary      Report rendered page geometry
// @Description  Feeds a geometry report (scroll, resize, zoom, page change,
// @Description  render-complete) into the overlay synchronizer and returns
// @Description  the updated overlay transform
// @Tags         editor
// @Accept       json
// @Produce      json
// @Param        sessionId path string true "Session ID (UUID)"
// @Param        request body dto.GeometryRequest true "Rendered geometry"
// @Success      200 {object} response.SuccessResponse{data=editor.OverlayState} "Overlay state"
// @Router       /editor/sessions/{sessionId}/geometry [put]
func (h *EditorHandler) ReportGeometry(c *gin.Context) {
	userID, sessionID, ok := h.userAndSession(c)
	if !ok {
		return
	}

	var req dto.GeometryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	state, err := h.editorService.ReportGeometry(c.Request.Context(), userID, sessionID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, state)
}

// Summary godoc
// @Summary      Pre-send review
// @Description  Returns field counts by type and page plus the full field
// @Description  list, for the review step before sending
// @Tags         editor
// @Produce      json
// @Param        sessionId path string true "Session ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.SummaryResponse} "Review summary"
// @Router       /editor/sessions/{sessionId}/summary [get]
func (h *EditorHandler) Summary(c *gin.Context) {
	userID, sessionID, ok := h.userAndSession(c)
	if !ok {
		return
	}

	summary, err := h.editorService.Summary(c.Request.Context(), userID, sessionID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, summary)
}

// SaveDraft godoc
// @Summary      Save the session as a draft
// @Description  Replaces the document's stored fields with the session's
// @Description  current field set
// @Tags         editor
// @Produce      json
// @Param        sessionId path string true "Session ID (UUID)"
// @Success      200 {object} response.SuccessResponse "Draft saved"
// @Router       /editor/sessions/{sessionId}/draft [put]
func (h *EditorHandler) SaveDraft(c *gin.Context) {
	userID, sessionID, ok := h.userAndSession(c)
	if !ok {
		return
	}

	if err := h.editorService.SaveDraft(c.Request.Context(), userID, sessionID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, nil)
}

// Send godoc
// @Summary      Send the document for signing
// @Description  Gates the send (at least one field; in strict mode every
// @Description  required field must be configured), persists the fields,
// @Description  marks the document SENT and notifies the signers. The
// @Description  session is closed on success.
// @Tags         editor
// @Produce      json
// @Param        sessionId path string true "Session ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.SendDocumentResponse} "Document sent"
// @Failure      400 {object} response.ErrorResponse "Send gate failed"
// @Failure      409 {object} response.ErrorResponse "Document already sent"
// @Router       /editor/sessions/{sessionId}/send [post]
func (h *EditorHandler) Send(c *gin.Context) {
	userID, sessionID, ok := h.userAndSession(c)
	if !ok {
		return
	}

	result, err := h.editorService.Send(c.Request.Context(), userID, sessionID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

// userAndSession extracts the authenticated user and the sessionId path
// parameter, writing the error response itself on failure
func (h *EditorHandler) userAndSession(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Authentication required")
		return uuid.Nil, uuid.Nil, false
	}

	sessionID, err := uuid.Parse(c.Param("sessionId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid session ID")
		return uuid.Nil, uuid.Nil, false
	}

	return userID, sessionID, true
}

func (h *EditorHandler) fieldID(c *gin.Context) (uuid.UUID, bool) {
	fieldID, err := uuid.Parse(c.Param("fieldId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid field ID")
		return uuid.Nil, false
	}
	return fieldID, true
}
