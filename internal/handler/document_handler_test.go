package handler

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"esign-editor-api/internal/dto"
	"esign-editor-api/internal/renderer"
	"esign-editor-api/internal/response"
)

func documentTestRouter(userID uuid.UUID, mockService *MockDocumentService) *gin.Engine {
	handler := NewDocumentHandler(mockService)
	router := setupTestRouter(userID)
	documents := router.Group("/api/esign/documents")
	{
		documents.POST("", handler.Upload)
		documents.GET("", handler.List)
		documents.GET("/:documentId", handler.Get)
		documents.GET("/:documentId/download", handler.Download)
		documents.GET("/:documentId/render-info", handler.RenderInfo)
		documents.DELETE("/:documentId", handler.Delete)
	}
	return router
}

func uploadRequest(t *testing.T, fileName, title string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if fileName != "" {
		part, err := writer.CreateFormFile("file", fileName)
		if err != nil {
			t.Fatalf("Failed to create form file: %v", err)
		}
		if _, err := part.Write(data); err != nil {
			t.Fatalf("Failed to write form file: %v", err)
		}
	}
	if title != "" {
		if err := writer.WriteField("title", title); err != nil {
			t.Fatalf("Failed to write title field: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Failed to close multipart writer: %v", err)
	}
	return &buf, writer.FormDataContentType()
}

func TestDocumentHandler_Upload(t *testing.T) {
	userID := uuid.New()
	documentID := uuid.New()

	tests := []struct {
		name           string
		fileName       string
		title          string
		data           []byte
		mockService    func(*MockDocumentService)
		expectedStatus int
	}{
		{
			name:     "uploads a pdf",
			fileName: "contract.pdf",
			title:    "Service agreement",
			data:     []byte("%PDF-1.4 test"),
			mockService: func(m *MockDocumentService) {
				m.UploadFunc = func(ctx context.Context, ownerID uuid.UUID, title, fileName string, data []byte) (*dto.DocumentResponse, error) {
					if title != "Service agreement" {
						t.Errorf("Upload() title = %v, want Service agreement", title)
					}
					if fileName != "contract.pdf" {
						t.Errorf("Upload() fileName = %v, want contract.pdf", fileName)
					}
					return &dto.DocumentResponse{ID: documentID, Title: title, Status: "DRAFT"}, nil
				}
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "rejects a missing file",
			fileName:       "",
			mockService:    func(m *MockDocumentService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "rejects a non-pdf extension",
			fileName:       "contract.docx",
			data:           []byte("not a pdf"),
			mockService:    func(m *MockDocumentService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:     "propagates a service validation error",
			fileName: "broken.pdf",
			data:     []byte("garbage"),
			mockService: func(m *MockDocumentService) {
				m.UploadFunc = func(ctx context.Context, ownerID uuid.UUID, title, fileName string, data []byte) (*dto.DocumentResponse, error) {
					return nil, response.NewValidationError("The file could not be loaded as a PDF")
				}
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockDocumentService{}
			tt.mockService(mockService)
			router := documentTestRouter(userID, mockService)

			body, contentType := uploadRequest(t, tt.fileName, tt.title, tt.data)
			req := httptest.NewRequest(http.MethodPost, "/api/esign/documents", body)
			req.Header.Set("Content-Type", contentType)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("Upload() status = %v, want %v, body: %s", w.Code, tt.expectedStatus, w.Body.String())
			}
		})
	}
}

func TestDocumentHandler_Get(t *testing.T) {
	userID := uuid.New()
	documentID := uuid.New()

	tests := []struct {
		name           string
		path           string
		mockService    func(*MockDocumentService)
		expectedStatus int
	}{
		{
			name: "returns the document",
			path: "/api/esign/documents/" + documentID.String(),
			mockService: func(m *MockDocumentService) {
				m.GetFunc = func(ctx context.Context, uid, did uuid.UUID) (*dto.DocumentDetailResponse, error) {
					return &dto.DocumentDetailResponse{
						DocumentResponse: dto.DocumentResponse{ID: did, Title: "Lease", Status: "DRAFT"},
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid document id is a 400",
			path:           "/api/esign/documents/not-a-uuid",
			mockService:    func(m *MockDocumentService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "unknown document is a 404",
			path: "/api/esign/documents/" + documentID.String(),
			mockService: func(m *MockDocumentService) {
				m.GetFunc = func(ctx context.Context, uid, did uuid.UUID) (*dto.DocumentDetailResponse, error) {
					return nil, response.NewNotFoundError("Document not found")
				}
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "foreign document is a 403",
			path: "/api/esign/documents/" + documentID.String(),
			mockService: func(m *MockDocumentService) {
				m.GetFunc = func(ctx context.Context, uid, did uuid.UUID) (*dto.DocumentDetailResponse, error) {
					return nil, response.NewForbiddenError("You do not have access to this document")
				}
			},
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockDocumentService{}
			tt.mockService(mockService)
			router := documentTestRouter(userID, mockService)

			w := doJSON(t, router, http.MethodGet, tt.path, nil)

			if w.Code != tt.expectedStatus {
				t.Errorf("Get() status = %v, want %v, body: %s", w.Code, tt.expectedStatus, w.Body.String())
			}
		})
	}
}

func TestDocumentHandler_List(t *testing.T) {
	userID := uuid.New()
	mockService := &MockDocumentService{
		ListFunc: func(ctx context.Context, ownerID uuid.UUID) ([]*dto.DocumentResponse, error) {
			return []*dto.DocumentResponse{
				{ID: uuid.New(), Title: "First"},
				{ID: uuid.New(), Title: "Second"},
			}, nil
		},
	}
	router := documentTestRouter(userID, mockService)

	w := doJSON(t, router, http.MethodGet, "/api/esign/documents", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("List() status = %v, body: %s", w.Code, w.Body.String())
	}
	var documents []*dto.DocumentResponse
	decodeData(t, w.Body.Bytes(), &documents)
	if len(documents) != 2 {
		t.Errorf("List() returned %d documents, want 2", len(documents))
	}
}

func TestDocumentHandler_RenderInfo(t *testing.T) {
	userID := uuid.New()
	documentID := uuid.New()
	mockService := &MockDocumentService{
		GetRenderInfoFunc: func(ctx context.Context, uid, did uuid.UUID) (*renderer.Info, error) {
			return &renderer.Info{
				PageCount: 2,
				Pages: []renderer.PageDim{
					{Width: 612, Height: 792},
					{Width: 612, Height: 792},
				},
			}, nil
		},
	}
	router := documentTestRouter(userID, mockService)

	w := doJSON(t, router, http.MethodGet, "/api/esign/documents/"+documentID.String()+"/render-info", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("RenderInfo() status = %v, body: %s", w.Code, w.Body.String())
	}
	var info renderer.Info
	decodeData(t, w.Body.Bytes(), &info)
	if info.PageCount != 2 || len(info.Pages) != 2 {
		t.Errorf("RenderInfo() = %+v, want 2 pages", info)
	}
}

func TestDocumentHandler_Delete(t *testing.T) {
	userID := uuid.New()
	documentID := uuid.New()

	deleted := false
	mockService := &MockDocumentService{
		DeleteFunc: func(ctx context.Context, uid, did uuid.UUID) error {
			deleted = true
			return nil
		},
	}
	router := documentTestRouter(userID, mockService)

	w := doJSON(t, router, http.MethodDelete, "/api/esign/documents/"+documentID.String(), nil)

	if w.Code != http.StatusOK {
		t.Errorf("Delete() status = %v, body: %s", w.Code, w.Body.String())
	}
	if !deleted {
		t.Error("Delete() did not reach the service")
	}
}
