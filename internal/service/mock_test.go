package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"esign-editor-api/internal/client"
	"esign-editor-api/internal/domain"
	"esign-editor-api/internal/renderer"
)

// MockDocumentRepository is a mock implementation of DocumentRepository
type MockDocumentRepository struct {
	CreateFunc                func(ctx context.Context, doc *domain.Document) error
	FindByIDFunc              func(ctx context.Context, id uuid.UUID) (*domain.Document, error)
	FindByIDWithRelationsFunc func(ctx context.Context, id uuid.UUID) (*domain.Document, error)
	FindByOwnerFunc           func(ctx context.Context, ownerID uuid.UUID) ([]*domain.Document, error)
	UpdateFunc                func(ctx context.Context, doc *domain.Document) error
	UpdateStatusFunc          func(ctx context.Context, id uuid.UUID, status domain.DocumentStatus, sentAt *time.Time) error
	DeleteFunc                func(ctx context.Context, id uuid.UUID) error
	FindStaleDraftsFunc       func(ctx context.Context, olderThan time.Time) ([]*domain.Document, error)
}

func (m *MockDocumentRepository) Create(ctx context.Context, doc *domain.Document) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, doc)
	}
	return nil
}

func (m *MockDocumentRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockDocumentRepository) FindByIDWithRelations(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
	if m.FindByIDWithRelationsFunc != nil {
		return m.FindByIDWithRelationsFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockDocumentRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Document, error) {
	if m.FindByOwnerFunc != nil {
		return m.FindByOwnerFunc(ctx, ownerID)
	}
	return nil, nil
}

func (m *MockDocumentRepository) Update(ctx context.Context, doc *domain.Document) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, doc)
	}
	return nil
}

func (m *MockDocumentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.DocumentStatus, sentAt *time.Time) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status, sentAt)
	}
	return nil
}

func (m *MockDocumentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockDocumentRepository) FindStaleDrafts(ctx context.Context, olderThan time.Time) ([]*domain.Document, error) {
	if m.FindStaleDraftsFunc != nil {
		return m.FindStaleDraftsFunc(ctx, olderThan)
	}
	return nil, nil
}

// MockFieldRepository is a mock implementation of FieldRepository
type MockFieldRepository struct {
	FindByDocumentIDFunc   func(ctx context.Context, documentID uuid.UUID) ([]*domain.Field, error)
	ReplaceForDocumentFunc func(ctx context.Context, documentID uuid.UUID, fields []*domain.Field) error
	ClearAssignmentsFunc   func(ctx context.Context, signerID uuid.UUID) (int64, error)
	DeleteByDocumentIDFunc func(ctx context.Context, documentID uuid.UUID) error
}

func (m *MockFieldRepository) FindByDocumentID(ctx context.Context, documentID uuid.UUID) ([]*domain.Field, error) {
	if m.FindByDocumentIDFunc != nil {
		return m.FindByDocumentIDFunc(ctx, documentID)
	}
	return nil, nil
}

func (m *MockFieldRepository) ReplaceForDocument(ctx context.Context, documentID uuid.UUID, fields []*domain.Field) error {
	if m.ReplaceForDocumentFunc != nil {
		return m.ReplaceForDocumentFunc(ctx, documentID, fields)
	}
	return nil
}

func (m *MockFieldRepository) ClearAssignments(ctx context.Context, signerID uuid.UUID) (int64, error) {
	if m.ClearAssignmentsFunc != nil {
		return m.ClearAssignmentsFunc(ctx, signerID)
	}
	return 0, nil
}

func (m *MockFieldRepository) DeleteByDocumentID(ctx context.Context, documentID uuid.UUID) error {
	if m.DeleteByDocumentIDFunc != nil {
		return m.DeleteByDocumentIDFunc(ctx, documentID)
	}
	return nil
}

// MockSignerRepository is a mock implementation of SignerRepository
type MockSignerRepository struct {
	CreateFunc           func(ctx context.Context, signer *domain.Signer) error
	FindByIDFunc         func(ctx context.Context, id uuid.UUID) (*domain.Signer, error)
	FindByDocumentIDFunc func(ctx context.Context, documentID uuid.UUID) ([]*domain.Signer, error)
	UpdateFunc           func(ctx context.Context, signer *domain.Signer) error
	DeleteFunc           func(ctx context.Context, id uuid.UUID) error
}

func (m *MockSignerRepository) Create(ctx context.Context, signer *domain.Signer) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, signer)
	}
	return nil
}

func (m *MockSignerRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Signer, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockSignerRepository) FindByDocumentID(ctx context.Context, documentID uuid.UUID) ([]*domain.Signer, error) {
	if m.FindByDocumentIDFunc != nil {
		return m.FindByDocumentIDFunc(ctx, documentID)
	}
	return nil, nil
}

func (m *MockSignerRepository) Update(ctx context.Context, signer *domain.Signer) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, signer)
	}
	return nil
}

func (m *MockSignerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockNotificationClient records the signing requests it was asked to send
type MockNotificationClient struct {
	SendSigningRequestsFunc func(ctx context.Context, events []client.SigningRequestEvent) error
	Sent                    [][]client.SigningRequestEvent
}

func (m *MockNotificationClient) SendSigningRequests(ctx context.Context, events []client.SigningRequestEvent) error {
	m.Sent = append(m.Sent, events)
	if m.SendSigningRequestsFunc != nil {
		return m.SendSigningRequestsFunc(ctx, events)
	}
	return nil
}

// MockProber is a mock implementation of Prober
type MockProber struct {
	ProbeFunc func(data []byte) (*renderer.Info, error)
}

func (m *MockProber) Probe(data []byte) (*renderer.Info, error) {
	if m.ProbeFunc != nil {
		return m.ProbeFunc(data)
	}
	return &renderer.Info{
		PageCount: 1,
		Pages:     []renderer.PageDim{{Width: 612, Height: 792}},
	}, nil
}
