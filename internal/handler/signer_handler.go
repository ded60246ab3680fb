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

// SignerHandler handles signer roster requests
type SignerHandler struct {
	signerService service.SignerService
}

// NewSignerHandler creates a new SignerHandler
func NewSignerHandler(signerService service.SignerService) *SignerHandler {
	return &SignerHandler{
		signerService: signerService,
	}
}

// Create godoc
// @Summary      Add a signer
// @Description  Adds a signer to a draft document. The email must be unique
// @Description  within the document; role defaults to signer and order to
// @Description  the end of the sequence.
// @Tags         signers
// @Accept       json
// @Produce      json
// @Param        documentId path string true "Document ID (UUID)"
// @Param        request body dto.CreateSignerRequest true "Signer details"
// @Success      201 {object} response.SuccessResponse{data=dto.SignerResponse} "Signer created"
// @Failure      400 {object} response.ErrorResponse "Invalid request or sent document"
// @Failure      404 {object} response.ErrorResponse "Document not found"
// @Failure      409 {object} response.ErrorResponse "Email already on this document"
// @Router       /documents/{documentId}/signers [post]
func (h *SignerHandler) Create(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Authentication required")
		return
	}

	documentID, err := uuid.Parse(c.Param("documentId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid document ID")
		return
	}

	var req dto.CreateSignerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	signer, err := h.signerService.Create(c.Request.Context(), userID, documentID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, signer)
}

// List godoc
// @Summary      List a document's signers
// @Description  Returns the signers in signing order
// @Tags         signers
// @Produce      json
// @Param        documentId path string true "Document ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=[]dto.SignerResponse} "Signer list"
// @Failure      404 {object} response.ErrorResponse "Document not found"
// @Router       /documents/{documentId}/signers [get]
func (h *SignerHandler) List(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Authentication required")
		return
	}

	documentID, err := uuid.Parse(c.Param("documentId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid document ID")
		return
	}

	signers, err := h.signerService.List(c.Request.Context(), userID, documentID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, signers)
}

// Update godoc
// @Summary      Update a signer
// @Tags         signers
// @Accept       json
// @Produce      json
// @Param        signerId path string true "Signer ID (UUID)"
// @Param        request body dto.UpdateSignerRequest true "Fields to update"
// @Success      200 {object} response.SuccessResponse{data=dto.SignerResponse} "Signer updated"
// @Failure      404 {object} response.ErrorResponse "Signer not found"
// @Router       /signers/{signerId} [patch]
func (h *SignerHandler) Update(c *gin.Context) {
	userID, signerID, ok := h.userAndSigner(c)
	if !ok {
		return
	}

	var req dto.UpdateSignerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	signer, err := h.signerService.Update(c.Request.Context(), userID, signerID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, signer)
}

// Delete godoc
// @Summary      Remove a signer
// @Description  Removes the signer and resets every field assigned to them
// @Description  back to "any signer", in the stored draft and in any live
// @Description  editor session on the document
// @Tags         signers
// @Produce      json
// @Param        signerId path string true "Signer ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.DeleteSignerResponse} "Signer removed"
// @Failure      404 {object} response.ErrorResponse "Signer not found"
// @Router       /signers/{signerId} [delete]
func (h *SignerHandler) Delete(c *gin.Context) {
	userID, signerID, ok := h.userAndSigner(c)
	if !ok {
		return
	}

	result, err := h.signerService.Delete(c.Request.Context(), userID, signerID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

func (h *SignerHandler) userAndSigner(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Authentication required")
		return uuid.Nil, uuid.Nil, false
	}

	signerID, err := uuid.Parse(c.Param("signerId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid signer ID")
		return uuid.Nil, uuid.Nil, false
	}

	return userID, signerID, true
}
