package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"esign-editor-api/internal/client"
	"esign-editor-api/internal/config"
	"esign-editor-api/internal/domain"
	"esign-editor-api/internal/dto"
	"esign-editor-api/internal/editor"
	"esign-editor-api/internal/metrics"
	"esign-editor-api/internal/repository"
	"esign-editor-api/internal/response"
)

// EditorService drives server-side editor sessions: opening and closing them,
// routing placement and capture operations into the session, and persisting
// drafts and sends back to the database
type EditorService interface {
	OpenSession(ctx context.Context, userID, documentID uuid.UUID) (*dto.SessionStateResponse, error)
	CloseSession(ctx context.Context, userID, sessionID uuid.UUID) error
	GetState(ctx context.Context, userID, sessionID uuid.UUID) (*dto.SessionStateResponse, error)

	ArmTool(ctx context.Context, userID, sessionID uuid.UUID, fieldType string) error
	CancelTool(ctx context.Context, userID, sessionID uuid.UUID) error
	Click(ctx context.Context, userID, sessionID uuid.UUID, req *dto.ClickRequest) (*dto.FieldResponse, error)
	Drop(ctx context.Context, userID, sessionID uuid.UUID, req *dto.DropRequest) (*dto.FieldResponse, error)

	SelectField(ctx context.Context, userID, sessionID, fieldID uuid.UUID) (*dto.FieldResponse, error)
	Deselect(ctx context.Context, userID, sessionID uuid.UUID) error
	PatchField(ctx context.Context, userID, sessionID, fieldID uuid.UUID, req *dto.UpdateFieldRequest) error
	RemoveField(ctx context.Context, userID, sessionID, fieldID uuid.UUID) error
	ClearFields(ctx context.Context, userID, sessionID uuid.UUID) error

	OpenCapture(ctx context.Context, userID, sessionID, fieldID uuid.UUID) error
	SaveCapture(ctx context.Context, userID, sessionID uuid.UUID, req *dto.CaptureSaveRequest) error
	CancelCapture(ctx context.Context, userID, sessionID uuid.UUID) error

	ReportGeometry(ctx context.Context, userID, sessionID uuid.UUID, req *dto.GeometryRequest) (*editor.OverlayState, error)
	Summary(ctx context.Context, userID, sessionID uuid.UUID) (*dto.SummaryResponse, error)
	SaveDraft(ctx context.Context, userID, sessionID uuid.UUID) error
	Send(ctx context.Context, userID, sessionID uuid.UUID) (*dto.SendDocumentResponse, error)

	// Session grants raw access for the websocket overlay channel
	Session(userID, sessionID uuid.UUID) (*editor.Session, error)
}

// editorServiceImpl is the implementation of EditorService
type editorServiceImpl struct {
	sessions   *editor.SessionManager
	docRepo    repository.DocumentRepository
	fieldRepo  repository.FieldRepository
	signerRepo repository.SignerRepository
	notifier   client.NotificationClient
	cfg        config.EditorConfig
	metrics    *metrics.Metrics
	logger     *zap.Logger
}

// NewEditorService creates a new instance of EditorService
func NewEditorService(
	sessions *editor.SessionManager,
	docRepo repository.DocumentRepository,
	fieldRepo repository.FieldRepository,
	signerRepo repository.SignerRepository,
	notifier client.NotificationClient,
	cfg config.EditorConfig,
	m *metrics.Metrics,
	logger *zap.Logger,
) EditorService {
	return &editorServiceImpl{
		sessions:   sessions,
		docRepo:    docRepo,
		fieldRepo:  fieldRepo,
		signerRepo: signerRepo,
		notifier:   notifier,
		cfg:        cfg,
		metrics:    m,
		logger:     logger,
	}
}

// OpenSession loads a draft document's persisted fields into a fresh session
func (s *editorServiceImpl) OpenSession(ctx context.Context, userID, documentID uuid.UUID) (*dto.SessionStateResponse, error) {
	doc, err := s.docRepo.FindByIDWithRelations(ctx, documentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Document not found")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load document", err.Error())
	}
	if doc.OwnerID != userID {
		return nil, response.NewForbiddenError("You do not have access to this document")
	}
	if doc.Status != domain.DocumentStatusDraft {
		return nil, editor.ErrDocumentSent
	}

	fields := make([]editor.Field, 0, len(doc.Fields))
	for i := range doc.Fields {
		fields = append(fields, toEditorField(&doc.Fields[i]))
	}

	session := s.sessions.Open(documentID, userID, doc.PageCount, fields, s.cfg.SettleDelay)
	state := dto.ToSessionStateResponse(session.State())
	state.WorkerScriptURL = s.cfg.WorkerScriptURL
	return &state, nil
}

// CloseSession tears down a live session without persisting anything
func (s *editorServiceImpl) CloseSession(ctx context.Context, userID, sessionID uuid.UUID) error {
	if _, err := s.session(userID, sessionID); err != nil {
		return err
	}
	s.sessions.Close(sessionID)
	return nil
}

// GetState returns the full session snapshot
func (s *editorServiceImpl) GetState(ctx context.Context, userID, sessionID uuid.UUID) (*dto.SessionStateResponse, error) {
	session, err := s.session(userID, sessionID)
	if err != nil {
		return nil, err
	}
	state := dto.ToSessionStateResponse(session.State())
	state.WorkerScriptURL = s.cfg.WorkerScriptURL
	return &state, nil
}

// ArmTool arms a palette tool for click-to-place
func (s *editorServiceImpl) ArmTool(ctx context.Context, userID, sessionID uuid.UUID, fieldType string) error {
	session, err := s.session(userID, sessionID)
	if err != nil {
		return err
	}
	return session.ArmTool(domain.FieldType(fieldType))
}

// CancelTool disarms the current tool
func (s *editorServiceImpl) CancelTool(ctx context.Context, userID, sessionID uuid.UUID) error {
	session, err := s.session(userID, sessionID)
	if err != nil {
		return err
	}
	session.CancelTool()
	return nil
}

// Click places the armed tool's field centered on the click point
func (s *editorServiceImpl) Click(ctx context.Context, userID, sessionID uuid.UUID, req *dto.ClickRequest) (*dto.FieldResponse, error) {
	session, err := s.session(userID, sessionID)
	if err != nil {
		return nil, err
	}
	field, err := session.Click(req.X, req.Y, req.PageRect.ToRect(), req.Scale, req.Page)
	if err != nil {
		return nil, err
	}
	if s.metrics != nil {
		s.metrics.IncrementFieldsPlaced()
	}
	resp := dto.ToEditorFieldResponse(*field)
	return &resp, nil
}

// Drop places a dragged field type centered on the drop point
func (s *editorServiceImpl) Drop(ctx context.Context, userID, sessionID uuid.UUID, req *dto.DropRequest) (*dto.FieldResponse, error) {
	session, err := s.session(userID, sessionID)
	if err != nil {
		return nil, err
	}
	field, err := session.Drop(domain.FieldType(req.Type), req.X, req.Y, req.PageRect.ToRect(), req.Scale, req.Page)
	if err != nil {
		return nil, err
	}
	if s.metrics != nil {
		s.metrics.IncrementFieldsPlaced()
	}
	resp := dto.ToEditorFieldResponse(*field)
	return &resp, nil
}

// SelectField makes a field the active selection and returns it
func (s *editorServiceImpl) SelectField(ctx context.Context, userID, sessionID, fieldID uuid.UUID) (*dto.FieldResponse, error) {
	session, err := s.session(userID, sessionID)
	if err != nil {
		return nil, err
	}
	if !session.SelectField(fieldID) {
		return nil, editor.ErrFieldNotFound
	}
	field, _ := session.ActiveField()
	resp := dto.ToEditorFieldResponse(field)
	return &resp, nil
}

// Deselect clears the active selection
func (s *editorServiceImpl) Deselect(ctx context.Context, userID, sessionID uuid.UUID) error {
	session, err := s.session(userID, sessionID)
	if err != nil {
		return err
	}
	session.Deselect()
	return nil
}

// PatchField applies a partial properties-panel update
func (s *editorServiceImpl) PatchField(ctx context.Context, userID, sessionID, fieldID uuid.UUID, req *dto.UpdateFieldRequest) error {
	session, err := s.session(userID, sessionID)
	if err != nil {
		return err
	}
	session.PatchField(fieldID, req.ToPatch())
	return nil
}

// RemoveField deletes a field from the session
func (s *editorServiceImpl) RemoveField(ctx context.Context, userID, sessionID, fieldID uuid.UUID) error {
	session, err := s.session(userID, sessionID)
	if err != nil {
		return err
	}
	session.RemoveField(fieldID)
	return nil
}

// ClearFields removes every field from the session. Clearing twice is a no-op.
func (s *editorServiceImpl) ClearFields(ctx context.Context, userID, sessionID uuid.UUID) error {
	session, err := s.session(userID, sessionID)
	if err != nil {
		return err
	}
	session.ClearAll()
	return nil
}

// OpenCapture opens the value-capture workflow on a field
func (s *editorServiceImpl) OpenCapture(ctx context.Context, userID, sessionID, fieldID uuid.UUID) error {
	session, err := s.session(userID, sessionID)
	if err != nil {
		return err
	}
	return session.OpenCapture(fieldID)
}

// SaveCapture validates and commits the captured value
func (s *editorServiceImpl) SaveCapture(ctx context.Context, userID, sessionID uuid.UUID, req *dto.CaptureSaveRequest) error {
	session, err := s.session(userID, sessionID)
	if err != nil {
		return err
	}
	return session.SaveCapture(req.ToCaptureInput())
}

// CancelCapture closes the capture workflow without mutating the field
func (s *editorServiceImpl) CancelCapture(ctx context.Context, userID, sessionID uuid.UUID) error {
	session, err := s.session(userID, sessionID)
	if err != nil {
		return err
	}
	session.CancelCapture()
	return nil
}

// ReportGeometry feeds a geometry report into the overlay synchronizer
func (s *editorServiceImpl) ReportGeometry(ctx context.Context, userID, sessionID uuid.UUID, req *dto.GeometryRequest) (*editor.OverlayState, error) {
	session, err := s.session(userID, sessionID)
	if err != nil {
		return nil, err
	}
	var state editor.OverlayState
	if req.RenderComplete {
		state = session.RenderComplete(req.ToRenderGeometry())
	} else {
		state = session.ReportGeometry(req.ToRenderGeometry())
	}
	return &state, nil
}

// Summary builds the pre-send review
func (s *editorServiceImpl) Summary(ctx context.Context, userID, sessionID uuid.UUID) (*dto.SummaryResponse, error) {
	session, err := s.session(userID, sessionID)
	if err != nil {
		return nil, err
	}
	summary := dto.ToSummaryResponse(session.Summary())
	return &summary, nil
}

// SaveDraft persists the session's field set as the document's stored draft
func (s *editorServiceImpl) SaveDraft(ctx context.Context, userID, sessionID uuid.UUID) error {
	session, err := s.session(userID, sessionID)
	if err != nil {
		return err
	}

	fields := session.Fields()
	records := make([]*domain.Field, 0, len(fields))
	for i := range fields {
		records = append(records, toDomainField(session.DocumentID, &fields[i]))
	}

	if err := s.fieldRepo.ReplaceForDocument(ctx, session.DocumentID, records); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to save draft", err.Error())
	}

	s.logger.Info("Draft saved",
		zap.String("session_id", sessionID.String()),
		zap.String("document_id", session.DocumentID.String()),
		zap.Int("fields", len(records)),
	)
	return nil
}

// Send gates, persists and transitions the document to SENT, then notifies
// the signers. The session is closed on success.
func (s *editorServiceImpl) Send(ctx context.Context, userID, sessionID uuid.UUID) (*dto.SendDocumentResponse, error) {
	session, err := s.session(userID, sessionID)
	if err != nil {
		return nil, err
	}

	if err := session.GateSend(s.cfg.StrictSendGate); err != nil {
		return nil, err
	}

	doc, err := s.docRepo.FindByID(ctx, session.DocumentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Document not found")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load document", err.Error())
	}
	if doc.Status != domain.DocumentStatusDraft {
		return nil, editor.ErrDocumentSent
	}

	fields := session.Fields()
	records := make([]*domain.Field, 0, len(fields))
	for i := range fields {
		records = append(records, toDomainField(session.DocumentID, &fields[i]))
	}
	if err := s.fieldRepo.ReplaceForDocument(ctx, session.DocumentID, records); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to persist fields", err.Error())
	}

	sentAt := time.Now().UTC()
	if err := s.docRepo.UpdateStatus(ctx, session.DocumentID, domain.DocumentStatusSent, &sentAt); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update document status", err.Error())
	}

	s.notifySigners(ctx, doc.ID, doc.Title, userID)

	if s.metrics != nil {
		s.metrics.IncrementDocumentsSent()
	}

	s.sessions.Close(sessionID)

	s.logger.Info("Document sent",
		zap.String("document_id", session.DocumentID.String()),
		zap.Int("fields", len(records)),
	)

	return &dto.SendDocumentResponse{
		DocumentID: session.DocumentID,
		Status:     string(domain.DocumentStatusSent),
		FieldCount: len(records),
	}, nil
}

// Session returns the live session after an ownership check
func (s *editorServiceImpl) Session(userID, sessionID uuid.UUID) (*editor.Session, error) {
	return s.session(userID, sessionID)
}

func (s *editorServiceImpl) session(userID, sessionID uuid.UUID) (*editor.Session, error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, response.NewNotFoundError("Editor session not found")
	}
	if session.OwnerID != userID {
		return nil, response.NewForbiddenError("You do not have access to this session")
	}
	return session, nil
}

func (s *editorServiceImpl) notifySigners(ctx context.Context, documentID uuid.UUID, title string, senderID uuid.UUID) {
	if s.notifier == nil {
		return
	}
	signers, err := s.signerRepo.FindByDocumentID(ctx, documentID)
	if err != nil {
		s.logger.Error("Failed to load signers for notification",
			zap.String("document_id", documentID.String()),
			zap.Error(err),
		)
		return
	}

	events := make([]client.SigningRequestEvent, 0, len(signers))
	for _, signer := range signers {
		events = append(events, client.SigningRequestEvent{
			DocumentID:    documentID,
			DocumentTitle: title,
			SenderID:      senderID,
			SignerID:      signer.ID,
			SignerName:    signer.Name,
			SignerEmail:   signer.Email,
			Role:          string(signer.Role),
			Order:         signer.Order,
		})
	}
	if err := s.notifier.SendSigningRequests(ctx, events); err != nil {
		s.logger.Error("Failed to send signing requests",
			zap.String("document_id", documentID.String()),
			zap.Error(err),
		)
	}
}

// toEditorField converts a persisted field into its live session form
func toEditorField(f *domain.Field) editor.Field {
	field := editor.Field{
		ID:    f.ID,
		Type:  f.Type,
		Label: f.Label,
		Page:  f.Page,
		Rect: editor.Rect{
			X:      f.X,
			Y:      f.Y,
			Width:  f.Width,
			Height: f.Height,
		},
		Required:     f.Required,
		IsConfigured: f.IsConfigured,
		AssignedTo:   f.AssignedTo,
	}
	if len(f.Value) > 0 {
		var value editor.FieldValue
		if err := json.Unmarshal(f.Value, &value); err == nil {
			field.Value = &value
		}
	}
	return field
}

// toDomainField converts a live session field into its persisted form
func toDomainField(documentID uuid.UUID, f *editor.Field) *domain.Field {
	record := &domain.Field{
		BaseModel:    domain.BaseModel{ID: f.ID},
		DocumentID:   documentID,
		Type:         f.Type,
		Label:        f.Label,
		Page:         f.Page,
		X:            f.Rect.X,
		Y:            f.Rect.Y,
		Width:        f.Rect.Width,
		Height:       f.Rect.Height,
		Required:     f.Required,
		IsConfigured: f.IsConfigured,
		AssignedTo:   f.AssignedTo,
	}
	if f.Value != nil {
		if payload, err := json.Marshal(f.Value); err == nil {
			record.Value = payload
		}
	}
	return record
}
