// Package handler provides HTTP request handlers for the API.
package handler

import (
	"io"
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"esign-editor-api/internal/middleware"
	"esign-editor-api/internal/response"
	"esign-editor-api/internal/service"
)

// MaxUploadSize defines the maximum allowed PDF size for uploads (25MB)
const MaxUploadSize = 25 * 1024 * 1024

// DocumentHandler handles document-related requests
type DocumentHandler struct {
	documentService service.DocumentService
}

// NewDocumentHandler creates a new DocumentHandler
func NewDocumentHandler(documentService service.DocumentService) *DocumentHandler {
	return &DocumentHandler{
		documentService: documentService,
	}
}

// Upload godoc
// @Summary      Upload a PDF document
// @Description  Uploads a PDF, probes its page geometry and creates a draft.
// @Description  The file is rejected if it cannot be loaded as a PDF.
// @Description  Maximum file size: 25MB
// @Tags         documents
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "PDF file"
// @Param        title formData string false "Document title (defaults to file name)"
// @Success      201 {object} response.SuccessResponse{data=dto.DocumentResponse} "Document created"
// @Failure      400 {object} response.ErrorResponse "Invalid file"
// @Failure      401 {object} response.ErrorResponse "Unauthorized"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /documents [post]
func (h *DocumentHandler) Upload(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Authentication required")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "No file provided")
		return
	}
	if fileHeader.Size > MaxUploadSize {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "File exceeds the 25MB limit")
		return
	}
	if ext := strings.ToLower(path.Ext(fileHeader.Filename)); ext != "" && ext != ".pdf" {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Only PDF files are supported")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Could not read uploaded file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Could not read uploaded file")
		return
	}

	result, err := h.documentService.Upload(c.Request.Context(), userID, c.PostForm("title"), fileHeader.Filename, data)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, result)
}

// List godoc
// @Summary      List my documents
// @Description  Returns all documents owned by the authenticated user,
// @Description  newest first
// @Tags         documents
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=[]dto.DocumentResponse} "Document list"
// @Failure      401 {object} response.ErrorResponse "Unauthorized"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /documents [get]
func (h *DocumentHandler) List(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Authentication required")
		return
	}

	documents, err := h.documentService.List(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, documents)
}

// Get godoc
// @Summary      Get a document
// @Description  Returns a document with its placed fields and signers
// @Tags         documents
// @Produce      json
// @Param        documentId path string true "Document ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.DocumentDetailResponse} "Document detail"
// @Failure      400 {object} response.ErrorResponse "Invalid document ID"
// @Failure      403 {object} response.ErrorResponse "Not the owner"
// @Failure      404 {object} response.ErrorResponse "Document not found"
// @Router       /documents/{documentId} [get]
func (h *DocumentHandler) Get(c *gin.Context) {
	userID, documentID, ok := h.userAndDocument(c)
	if !ok {
		return
	}

	document, err := h.documentService.Get(c.Request.Context(), userID, documentID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, document)
}

// Download godoc
// @Summary      Get a download link for the PDF
// @Description  Returns a short-lived presigned URL for the original file
// @Tags         documents
// @Produce      json
// @Param        documentId path string true "Document ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.DocumentDownloadResponse} "Presigned URL"
// @Failure      400 {object} response.ErrorResponse "Invalid document ID"
// @Failure      403 {object} response.ErrorResponse "Not the owner"
// @Failure      404 {object} response.ErrorResponse "Document not found"
// @Router       /documents/{documentId}/download [get]
func (h *DocumentHandler) Download(c *gin.Context) {
	userID, documentID, ok := h.userAndDocument(c)
	if !ok {
		return
	}

	result, err := h.documentService.GetDownloadURL(c.Request.Context(), userID, documentID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

// RenderInfo godoc
// @Summary      Get page dimensions for rendering
// @Description  Returns the page count and per-page dimensions in PDF points,
// @Description  used by clients to size the render viewport
// @Tags         documents
// @Produce      json
// @Param        documentId path string true "Document ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=renderer.Info} "Render info"
// @Failure      400 {object} response.ErrorResponse "Invalid document ID"
// @Failure      403 {object} response.ErrorResponse "Not the owner"
// @Failure      404 {object} response.ErrorResponse "Document not found"
// @Router       /documents/{documentId}/render-info [get]
func (h *DocumentHandler) RenderInfo(c *gin.Context) {
	userID, documentID, ok := h.userAndDocument(c)
	if !ok {
		return
	}

	info, err := h.documentService.GetRenderInfo(c.Request.Context(), userID, documentID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, info)
}

// Delete godoc
// @Summary      Delete a document
// @Description  Deletes the document record and its stored PDF
// @Tags         documents
// @Produce      json
// @Param        documentId path string true "Document ID (UUID)"
// @Success      200 {object} response.SuccessResponse "Deleted"
// @Failure      400 {object} response.ErrorResponse "Invalid document ID"
// @Failure      403 {object} response.ErrorResponse "Not the owner"
// @Failure      404 {object} response.ErrorResponse "Document not found"
// @Router       /documents/{documentId} [delete]
func (h *DocumentHandler) Delete(c *gin.Context) {
	userID, documentID, ok := h.userAndDocument(c)
	if !ok {
		return
	}

	if err := h.documentService.Delete(c.Request.Context(), userID, documentID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, nil)
}

// userAndDocument extracts the authenticated user and the documentId path
// parameter, writing the error response itself on failure
func (h *DocumentHandler) userAndDocument(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Authentication required")
		return uuid.Nil, uuid.Nil, false
	}

	documentID, err := uuid.Parse(c.Param("documentId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid document ID")
		return uuid.Nil, uuid.Nil, false
	}

	return userID, documentID, true
}
