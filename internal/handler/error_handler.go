package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"esign-editor-api/internal/editor"
	"esign-editor-api/internal/response"
)

// handleServiceError maps service layer errors to appropriate HTTP responses
func handleServiceError(c *gin.Context, err error) {
	// Editor core sentinels. These are normal interaction outcomes (a click
	// with no tool armed, a premature send), not server faults.
	switch {
	case errors.Is(err, editor.ErrNoToolArmed),
		errors.Is(err, editor.ErrInvalidFieldType),
		errors.Is(err, editor.ErrCaptureNotOpen),
		errors.Is(err, editor.ErrNoFields),
		errors.Is(err, editor.ErrRequiredUnconfigured):
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, err.Error())
		return
	case errors.Is(err, editor.ErrOutsidePage):
		// The armed tool stays armed; the client just ignores the click
		response.SendError(c, http.StatusUnprocessableEntity, response.ErrCodeValidation, err.Error())
		return
	case errors.Is(err, editor.ErrFieldNotFound):
		response.SendError(c, http.StatusNotFound, response.ErrCodeNotFound, err.Error())
		return
	case errors.Is(err, editor.ErrDocumentSent):
		response.SendError(c, http.StatusConflict, response.ErrCodeAlreadyExists, err.Error())
		return
	}

	var captureErr *editor.ValidationError
	if errors.As(err, &captureErr) {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, captureErr.Reason)
		return
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.SendError(c, http.StatusNotFound, response.ErrCodeNotFound, "Resource not found")
		return
	}

	var appErr *response.AppError
	if errors.As(err, &appErr) {
		response.SendError(c, mapErrorCodeToHTTPStatus(appErr.Code), appErr.Code, appErr.Message)
		return
	}

	response.SendError(c, http.StatusInternalServerError, response.ErrCodeInternal, "Internal server error")
}

// mapErrorCodeToHTTPStatus maps error codes to HTTP status codes
func mapErrorCodeToHTTPStatus(code string) int {
	switch code {
	case response.ErrCodeNotFound:
		return http.StatusNotFound
	case response.ErrCodeAlreadyExists:
		return http.StatusConflict
	case response.ErrCodeValidation:
		return http.StatusBadRequest
	case response.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case response.ErrCodeForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
