package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"esign-editor-api/internal/domain"
	"esign-editor-api/internal/dto"
	"esign-editor-api/internal/editor"
	"esign-editor-api/internal/response"
)

func newSignerFixtureDoc(ownerID, documentID uuid.UUID, status domain.DocumentStatus) *MockDocumentRepository {
	return &MockDocumentRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
			if id != documentID {
				return nil, gorm.ErrRecordNotFound
			}
			return &domain.Document{
				BaseModel: domain.BaseModel{ID: documentID},
				OwnerID:   ownerID,
				Status:    status,
				PageCount: 1,
			}, nil
		},
	}
}

func TestSignerService_Create(t *testing.T) {
	ownerID := uuid.New()
	documentID := uuid.New()

	tests := []struct {
		name        string
		userID      uuid.UUID
		status      domain.DocumentStatus
		req         *dto.CreateSignerRequest
		existing    []*domain.Signer
		wantErr     bool
		wantErrCode string
		wantRole    string
		wantOrder   int
	}{
		{
			name:      "creates with defaults",
			userID:    ownerID,
			status:    domain.DocumentStatusDraft,
			req:       &dto.CreateSignerRequest{Name: "Alice Kim", Email: "Alice@Example.com"},
			wantRole:  "signer",
			wantOrder: 1,
		},
		{
			name:   "order appends after existing signers",
			userID: ownerID,
			status: domain.DocumentStatusDraft,
			req:    &dto.CreateSignerRequest{Name: "Bob Lee", Email: "bob@example.com"},
			existing: []*domain.Signer{
				{BaseModel: domain.BaseModel{ID: uuid.New()}, Email: "first@example.com", Order: 1},
			},
			wantRole:  "signer",
			wantOrder: 2,
		},
		{
			name:      "explicit role and order are kept",
			userID:    ownerID,
			status:    domain.DocumentStatusDraft,
			req:       &dto.CreateSignerRequest{Name: "Carol", Email: "carol@example.com", Role: "approver", Order: 5},
			wantRole:  "approver",
			wantOrder: 5,
		},
		{
			name:   "duplicate email is rejected",
			userID: ownerID,
			status: domain.DocumentStatusDraft,
			req:    &dto.CreateSignerRequest{Name: "Alice Again", Email: "ALICE@example.com"},
			existing: []*domain.Signer{
				{BaseModel: domain.BaseModel{ID: uuid.New()}, Email: "alice@example.com", Order: 1},
			},
			wantErr:     true,
			wantErrCode: response.ErrCodeAlreadyExists,
		},
		{
			name:        "sent document rejects new signers",
			userID:      ownerID,
			status:      domain.DocumentStatusSent,
			req:         &dto.CreateSignerRequest{Name: "Late", Email: "late@example.com"},
			wantErr:     true,
			wantErrCode: response.ErrCodeValidation,
		},
		{
			name:        "foreign document is forbidden",
			userID:      uuid.New(),
			status:      domain.DocumentStatusDraft,
			req:         &dto.CreateSignerRequest{Name: "Eve", Email: "eve@example.com"},
			wantErr:     true,
			wantErrCode: response.ErrCodeForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given
			docRepo := newSignerFixtureDoc(ownerID, documentID, tt.status)
			signerRepo := &MockSignerRepository{
				FindByDocumentIDFunc: func(ctx context.Context, id uuid.UUID) ([]*domain.Signer, error) {
					return tt.existing, nil
				},
				CreateFunc: func(ctx context.Context, signer *domain.Signer) error {
					signer.ID = uuid.New()
					signer.CreatedAt = time.Now()
					return nil
				},
			}
			service := NewSignerService(signerRepo, &MockFieldRepository{}, docRepo, nil, zap.NewNop())

			// When
			result, err := service.Create(context.Background(), tt.userID, documentID, tt.req)

			// Then
			if tt.wantErr {
				if err == nil {
					t.Fatal("Create() error = nil, want error")
				}
				if appErr, ok := err.(*response.AppError); ok {
					if appErr.Code != tt.wantErrCode {
						t.Errorf("Create() error code = %v, want %v", appErr.Code, tt.wantErrCode)
					}
				} else {
					t.Errorf("Create() error type = %T, want *response.AppError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Create() unexpected error = %v", err)
			}
			if result.Role != tt.wantRole {
				t.Errorf("Create() role = %v, want %v", result.Role, tt.wantRole)
			}
			if result.Order != tt.wantOrder {
				t.Errorf("Create() order = %v, want %v", result.Order, tt.wantOrder)
			}
			// emails are stored lowercased
			if result.Email != strings.ToLower(result.Email) {
				t.Errorf("Create() email = %v, want lowercase", result.Email)
			}
		})
	}
}

func TestSignerService_List(t *testing.T) {
	ownerID := uuid.New()
	documentID := uuid.New()
	docRepo := newSignerFixtureDoc(ownerID, documentID, domain.DocumentStatusDraft)
	signerRepo := &MockSignerRepository{
		FindByDocumentIDFunc: func(ctx context.Context, id uuid.UUID) ([]*domain.Signer, error) {
			return []*domain.Signer{
				{BaseModel: domain.BaseModel{ID: uuid.New()}, Name: "Alice", Order: 1},
				{BaseModel: domain.BaseModel{ID: uuid.New()}, Name: "Bob", Order: 2},
			}, nil
		},
	}
	service := NewSignerService(signerRepo, &MockFieldRepository{}, docRepo, nil, zap.NewNop())

	result, err := service.List(context.Background(), ownerID, documentID)
	if err != nil {
		t.Fatalf("List() unexpected error = %v", err)
	}
	if len(result) != 2 {
		t.Errorf("List() returned %d signers, want 2", len(result))
	}
}

func TestSignerService_Update(t *testing.T) {
	ownerID := uuid.New()
	documentID := uuid.New()
	signerID := uuid.New()

	docRepo := newSignerFixtureDoc(ownerID, documentID, domain.DocumentStatusDraft)
	var updated *domain.Signer
	signerRepo := &MockSignerRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Signer, error) {
			if id != signerID {
				return nil, gorm.ErrRecordNotFound
			}
			return &domain.Signer{
				BaseModel:  domain.BaseModel{ID: signerID},
				DocumentID: documentID,
				Name:       "Alice",
				Email:      "alice@example.com",
				Role:       domain.SignerRoleSigner,
				Order:      1,
			}, nil
		},
		UpdateFunc: func(ctx context.Context, signer *domain.Signer) error {
			updated = signer
			return nil
		},
	}
	service := NewSignerService(signerRepo, &MockFieldRepository{}, docRepo, nil, zap.NewNop())

	newRole := "witness"
	newOrder := 3
	result, err := service.Update(context.Background(), ownerID, signerID, &dto.UpdateSignerRequest{
		Role:  &newRole,
		Order: &newOrder,
	})
	if err != nil {
		t.Fatalf("Update() unexpected error = %v", err)
	}
	if result.Role != "witness" || result.Order != 3 {
		t.Errorf("Update() role/order = %v/%v, want witness/3", result.Role, result.Order)
	}
	if updated == nil {
		t.Fatal("Update() did not persist the signer")
	}
	// untouched fields survive
	if updated.Name != "Alice" {
		t.Errorf("Update() name = %v, want Alice", updated.Name)
	}

	badRole := "owner"
	_, err = service.Update(context.Background(), ownerID, signerID, &dto.UpdateSignerRequest{Role: &badRole})
	if err == nil {
		t.Fatal("Update() with invalid role: error = nil, want error")
	}
}

func TestSignerService_Delete_ClearsAssignments(t *testing.T) {
	ownerID := uuid.New()
	documentID := uuid.New()
	signerID := uuid.New()

	docRepo := newSignerFixtureDoc(ownerID, documentID, domain.DocumentStatusDraft)
	signerDeleted := false
	signerRepo := &MockSignerRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Signer, error) {
			return &domain.Signer{
				BaseModel:  domain.BaseModel{ID: signerID},
				DocumentID: documentID,
			}, nil
		},
		DeleteFunc: func(ctx context.Context, id uuid.UUID) error {
			signerDeleted = true
			return nil
		},
	}
	fieldRepo := &MockFieldRepository{
		ClearAssignmentsFunc: func(ctx context.Context, id uuid.UUID) (int64, error) {
			if id != signerID {
				t.Errorf("ClearAssignments() signerID = %v, want %v", id, signerID)
			}
			return 2, nil
		},
	}

	// a live session on the same document with one field assigned to the signer
	sessions := editor.NewSessionManager(zap.NewNop())
	session := sessions.Open(documentID, ownerID, 1, []editor.Field{
		{
			ID:         uuid.New(),
			Type:       domain.FieldTypeSignature,
			Label:      "Signature",
			Page:       1,
			Rect:       editor.Rect{X: 10, Y: 10, Width: 160, Height: 48},
			AssignedTo: &signerID,
		},
	}, time.Millisecond)

	service := NewSignerService(signerRepo, fieldRepo, docRepo, sessions, zap.NewNop())

	result, err := service.Delete(context.Background(), ownerID, signerID)
	if err != nil {
		t.Fatalf("Delete() unexpected error = %v", err)
	}
	if !signerDeleted {
		t.Error("Delete() did not delete the signer record")
	}
	if result.ClearedAssignments != 2 {
		t.Errorf("Delete() clearedAssignments = %v, want 2", result.ClearedAssignments)
	}
	// live session assignment was reset too
	for _, field := range session.Fields() {
		if field.AssignedTo != nil {
			t.Error("Delete() left a live field assigned to the removed signer")
		}
	}
}

func TestSignerService_Delete_NotFound(t *testing.T) {
	signerRepo := &MockSignerRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Signer, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	service := NewSignerService(signerRepo, &MockFieldRepository{}, &MockDocumentRepository{}, nil, zap.NewNop())

	_, err := service.Delete(context.Background(), uuid.New(), uuid.New())
	if err == nil {
		t.Fatal("Delete() error = nil, want error")
	}
	appErr, ok := err.(*response.AppError)
	if !ok || appErr.Code != response.ErrCodeNotFound {
		t.Errorf("Delete() error = %v, want not found", err)
	}
}
