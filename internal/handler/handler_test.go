package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"esign-editor-api/internal/dto"
	"esign-editor-api/internal/editor"
	"esign-editor-api/internal/renderer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// setupTestRouter creates a gin engine with a stub auth middleware that
// injects the given user id, mirroring what middleware.Auth does after a
// successful token check
func setupTestRouter(userID uuid.UUID) *gin.Engine {
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	})
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("Failed to encode request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// decodeData unmarshals the data field of a success envelope into out
func decodeData(t *testing.T, body []byte, out interface{}) {
	t.Helper()
	var envelope struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		t.Fatalf("Failed to unmarshal response envelope: %v", err)
	}
	if !envelope.Success {
		t.Fatalf("Expected success envelope, got: %s", body)
	}
	if out != nil {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			t.Fatalf("Failed to unmarshal response data: %v", err)
		}
	}
}

// MockDocumentService is a mock implementation of DocumentService
type MockDocumentService struct {
	UploadFunc         func(ctx context.Context, ownerID uuid.UUID, title, fileName string, data []byte) (*dto.DocumentResponse, error)
	GetFunc            func(ctx context.Context, userID, documentID uuid.UUID) (*dto.DocumentDetailResponse, error)
	ListFunc           func(ctx context.Context, ownerID uuid.UUID) ([]*dto.DocumentResponse, error)
	GetDownloadURLFunc func(ctx context.Context, userID, documentID uuid.UUID) (*dto.DocumentDownloadResponse, error)
	GetRenderInfoFunc  func(ctx context.Context, userID, documentID uuid.UUID) (*renderer.Info, error)
	DeleteFunc         func(ctx context.Context, userID, documentID uuid.UUID) error
}

func (m *MockDocumentService) Upload(ctx context.Context, ownerID uuid.UUID, title, fileName string, data []byte) (*dto.DocumentResponse, error) {
	if m.UploadFunc != nil {
		return m.UploadFunc(ctx, ownerID, title, fileName, data)
	}
	return &dto.DocumentResponse{}, nil
}

func (m *MockDocumentService) Get(ctx context.Context, userID, documentID uuid.UUID) (*dto.DocumentDetailResponse, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, userID, documentID)
	}
	return &dto.DocumentDetailResponse{}, nil
}

func (m *MockDocumentService) List(ctx context.Context, ownerID uuid.UUID) ([]*dto.DocumentResponse, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, ownerID)
	}
	return nil, nil
}

func (m *MockDocumentService) GetDownloadURL(ctx context.Context, userID, documentID uuid.UUID) (*dto.DocumentDownloadResponse, error) {
	if m.GetDownloadURLFunc != nil {
		return m.GetDownloadURLFunc(ctx, userID, documentID)
	}
	return &dto.DocumentDownloadResponse{}, nil
}

func (m *MockDocumentService) GetRenderInfo(ctx context.Context, userID, documentID uuid.UUID) (*renderer.Info, error) {
	if m.GetRenderInfoFunc != nil {
		return m.GetRenderInfoFunc(ctx, userID, documentID)
	}
	return &renderer.Info{}, nil
}

func (m *MockDocumentService) Delete(ctx context.Context, userID, documentID uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID, documentID)
	}
	return nil
}

// MockEditorService is a mock implementation of EditorService
type MockEditorService struct {
	OpenSessionFunc    func(ctx context.Context, userID, documentID uuid.UUID) (*dto.SessionStateResponse, error)
	CloseSessionFunc   func(ctx context.Context, userID, sessionID uuid.UUID) error
	GetStateFunc       func(ctx context.Context, userID, sessionID uuid.UUID) (*dto.SessionStateResponse, error)
	ArmToolFunc        func(ctx context.Context, userID, sessionID uuid.UUID, fieldType string) error
	CancelToolFunc     func(ctx context.Context, userID, sessionID uuid.UUID) error
	ClickFunc          func(ctx context.Context, userID, sessionID uuid.UUID, req *dto.ClickRequest) (*dto.FieldResponse, error)
	DropFunc           func(ctx context.Context, userID, sessionID uuid.UUID, req *dto.DropRequest) (*dto.FieldResponse, error)
	SelectFieldFunc    func(ctx context.Context, userID, sessionID, fieldID uuid.UUID) (*dto.FieldResponse, error)
	DeselectFunc       func(ctx context.Context, userID, sessionID uuid.UUID) error
	PatchFieldFunc     func(ctx context.Context, userID, sessionID, fieldID uuid.UUID, req *dto.UpdateFieldRequest) error
	RemoveFieldFunc    func(ctx context.Context, userID, sessionID, fieldID uuid.UUID) error
	ClearFieldsFunc    func(ctx context.Context, userID, sessionID uuid.UUID) error
	OpenCaptureFunc    func(ctx context.Context, userID, sessionID, fieldID uuid.UUID) error
	SaveCaptureFunc    func(ctx context.Context, userID, sessionID uuid.UUID, req *dto.CaptureSaveRequest) error
	CancelCaptureFunc  func(ctx context.Context, userID, sessionID uuid.UUID) error
	ReportGeometryFunc func(ctx context.Context, userID, sessionID uuid.UUID, req *dto.GeometryRequest) (*editor.OverlayState, error)
	SummaryFunc        func(ctx context.Context, userID, sessionID uuid.UUID) (*dto.SummaryResponse, error)
	SaveDraftFunc      func(ctx context.Context, userID, sessionID uuid.UUID) error
	SendFunc           func(ctx context.Context, userID, sessionID uuid.UUID) (*dto.SendDocumentResponse, error)
	SessionFunc        func(userID, sessionID uuid.UUID) (*editor.Session, error)
}

func (m *MockEditorService) OpenSession(ctx context.Context, userID, documentID uuid.UUID) (*dto.SessionStateResponse, error) {
	if m.OpenSessionFunc != nil {
		return m.OpenSessionFunc(ctx, userID, documentID)
	}
	return &dto.SessionStateResponse{}, nil
}

func (m *MockEditorService) CloseSession(ctx context.Context, userID, sessionID uuid.UUID) error {
	if m.CloseSessionFunc != nil {
		return m.CloseSessionFunc(ctx, userID, sessionID)
	}
	return nil
}

func (m *MockEditorService) GetState(ctx context.Context, userID, sessionID uuid.UUID) (*dto.SessionStateResponse, error) {
	if m.GetStateFunc != nil {
		return m.GetStateFunc(ctx, userID, sessionID)
	}
	return &dto.SessionStateResponse{}, nil
}

func (m *MockEditorService) ArmTool(ctx context.Context, userID, sessionID uuid.UUID, fieldType string) error {
	if m.ArmToolFunc != nil {
		return m.ArmToolFunc(ctx, userID, sessionID, fieldType)
	}
	return nil
}

func (m *MockEditorService) CancelTool(ctx context.Context, userID, sessionID uuid.UUID) error {
	if m.CancelToolFunc != nil {
		return m.CancelToolFunc(ctx, userID, sessionID)
	}
	return nil
}

func (m *MockEditorService) Click(ctx context.Context, userID, sessionID uuid.UUID, req *dto.ClickRequest) (*dto.FieldResponse, error) {
	if m.ClickFunc != nil {
		return m.ClickFunc(ctx, userID, sessionID, req)
	}
	return &dto.FieldResponse{}, nil
}

func (m *MockEditorService) Drop(ctx context.Context, userID, sessionID uuid.UUID, req *dto.DropRequest) (*dto.FieldResponse, error) {
	if m.DropFunc != nil {
		return m.DropFunc(ctx, userID, sessionID, req)
	}
	return &dto.FieldResponse{}, nil
}

func (m *MockEditorService) SelectField(ctx context.Context, userID, sessionID, fieldID uuid.UUID) (*dto.FieldResponse, error) {
	if m.SelectFieldFunc != nil {
		return m.SelectFieldFunc(ctx, userID, sessionID, fieldID)
	}
	return &dto.FieldResponse{}, nil
}

func (m *MockEditorService) Deselect(ctx context.Context, userID, sessionID uuid.UUID) error {
	if m.DeselectFunc != nil {
		return m.DeselectFunc(ctx, userID, sessionID)
	}
	return nil
}

func (m *MockEditorService) PatchField(ctx context.Context, userID, sessionID, fieldID uuid.UUID, req *dto.UpdateFieldRequest) error {
	if m.PatchFieldFunc != nil {
		return m.PatchFieldFunc(ctx, userID, sessionID, fieldID, req)
	}
	return nil
}

func (m *MockEditorService) RemoveField(ctx context.Context, userID, sessionID, fieldID uuid.UUID) error {
	if m.RemoveFieldFunc != nil {
		return m.RemoveFieldFunc(ctx, userID, sessionID, fieldID)
	}
	return nil
}

func (m *MockEditorService) ClearFields(ctx context.Context, userID, sessionID uuid.UUID) error {
	if m.ClearFieldsFunc != nil {
		return m.ClearFieldsFunc(ctx, userID, sessionID)
	}
	return nil
}

func (m *MockEditorService) OpenCapture(ctx context.Context, userID, sessionID, fieldID uuid.UUID) error {
	if m.OpenCaptureFunc != nil {
		return m.OpenCaptureFunc(ctx, userID, sessionID, fieldID)
	}
	return nil
}

func (m *MockEditorService) SaveCapture(ctx context.Context, userID, sessionID uuid.UUID, req *dto.CaptureSaveRequest) error {
	if m.SaveCaptureFunc != nil {
		return m.SaveCaptureFunc(ctx, userID, sessionID, req)
	}
	return nil
}

func (m *MockEditorService) CancelCapture(ctx context.Context, userID, sessionID uuid.UUID) error {
	if m.CancelCaptureFunc != nil {
		return m.CancelCaptureFunc(ctx, userID, sessionID)
	}
	return nil
}

func (m *MockEditorService) ReportGeometry(ctx context.Context, userID, sessionID uuid.UUID, req *dto.GeometryRequest) (*editor.OverlayState, error) {
	if m.ReportGeometryFunc != nil {
		return m.ReportGeometryFunc(ctx, userID, sessionID, req)
	}
	return &editor.OverlayState{}, nil
}

func (m *MockEditorService) Summary(ctx context.Context, userID, sessionID uuid.UUID) (*dto.SummaryResponse, error) {
	if m.SummaryFunc != nil {
		return m.SummaryFunc(ctx, userID, sessionID)
	}
	return &dto.SummaryResponse{}, nil
}

func (m *MockEditorService) SaveDraft(ctx context.Context, userID, sessionID uuid.UUID) error {
	if m.SaveDraftFunc != nil {
		return m.SaveDraftFunc(ctx, userID, sessionID)
	}
	return nil
}

func (m *MockEditorService) Send(ctx context.Context, userID, sessionID uuid.UUID) (*dto.SendDocumentResponse, error) {
	if m.SendFunc != nil {
		return m.SendFunc(ctx, userID, sessionID)
	}
	return &dto.SendDocumentResponse{}, nil
}

func (m *MockEditorService) Session(userID, sessionID uuid.UUID) (*editor.Session, error) {
	if m.SessionFunc != nil {
		return m.SessionFunc(userID, sessionID)
	}
	return nil, nil
}

// MockSignerService is a mock implementation of SignerService
type MockSignerService struct {
	CreateFunc func(ctx context.Context, userID, documentID uuid.UUID, req *dto.CreateSignerRequest) (*dto.SignerResponse, error)
	ListFunc   func(ctx context.Context, userID, documentID uuid.UUID) ([]dto.SignerResponse, error)
	UpdateFunc func(ctx context.Context, userID, signerID uuid.UUID, req *dto.UpdateSignerRequest) (*dto.SignerResponse, error)
	DeleteFunc func(ctx context.Context, userID, signerID uuid.UUID) (*dto.DeleteSignerResponse, error)
}

func (m *MockSignerService) Create(ctx context.Context, userID, documentID uuid.UUID, req *dto.CreateSignerRequest) (*dto.SignerResponse, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, userID, documentID, req)
	}
	return &dto.SignerResponse{}, nil
}

func (m *MockSignerService) List(ctx context.Context, userID, documentID uuid.UUID) ([]dto.SignerResponse, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, userID, documentID)
	}
	return nil, nil
}

func (m *MockSignerService) Update(ctx context.Context, userID, signerID uuid.UUID, req *dto.UpdateSignerRequest) (*dto.SignerResponse, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, userID, signerID, req)
	}
	return &dto.SignerResponse{}, nil
}

func (m *MockSignerService) Delete(ctx context.Context, userID, signerID uuid.UUID) (*dto.DeleteSignerResponse, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID, signerID)
	}
	return &dto.DeleteSignerResponse{}, nil
}
