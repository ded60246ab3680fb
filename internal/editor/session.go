package editor

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"esign-editor-api/internal/domain"
)

// Session is one open editor view on one document. It owns the field store,
// placement controller, overlay synchronizer and capture workflow, and
// serializes every mutation through a single mutex: the field model has
// exactly one writer no matter how many handler goroutines call in.
type Session struct {
	ID         uuid.UUID
	DocumentID uuid.UUID
	OwnerID    uuid.UUID
	PageCount  int

	mu         sync.Mutex
	store      *Store
	placement  *PlacementController
	overlay    *OverlaySynchronizer
	capture    *CaptureWorkflow
	lastActive time.Time
	onOverlay  func(OverlayState)
	logger     *zap.Logger
}

// SessionState is a snapshot of the full editor state for one client
type SessionState struct {
	SessionID  uuid.UUID        `json:"session_id"`
	DocumentID uuid.UUID        `json:"document_id"`
	PageCount  int              `json:"page_count"`
	Fields     []Field          `json:"fields"`
	ActiveID   *uuid.UUID       `json:"active_id,omitempty"`
	ArmedTool  domain.FieldType `json:"armed_tool,omitempty"`
	CaptureFor *uuid.UUID       `json:"capture_for,omitempty"`
	Overlay    OverlayState     `json:"overlay"`
}

// NewSession creates a session seeded with previously persisted fields
func NewSession(documentID, ownerID uuid.UUID, pageCount int, fields []Field, settleDelay time.Duration, logger *zap.Logger) *Session {
	store := NewStore(logger)
	store.Load(fields)
	return &Session{
		ID:         uuid.New(),
		DocumentID: documentID,
		OwnerID:    ownerID,
		PageCount:  pageCount,
		store:      store,
		placement:  NewPlacementController(store, logger),
		overlay:    NewOverlaySynchronizer(settleDelay, logger),
		capture:    NewCaptureWorkflow(store, logger),
		lastActive: time.Now(),
		logger:     logger,
	}
}

// SetOverlayListener registers the callback invoked with every recomputed
// overlay state (the websocket push channel)
func (s *Session) SetOverlayListener(fn func(OverlayState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onOverlay = fn
}

func (s *Session) touch() {
	s.lastActive = time.Now()
}

func (s *Session) notifyOverlay(state OverlayState) {
	if s.onOverlay != nil {
		s.onOverlay(state)
	}
}

func (s *Session) passThrough() bool {
	_, armed := s.placement.Armed()
	return armed
}

// ArmTool selects a palette tool. The overlay switches to pointer
// pass-through so placement clicks reach the page container.
func (s *Session) ArmTool(t domain.FieldType) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	if err := s.placement.Arm(t); err != nil {
		return err
	}
	if state, ok := s.overlay.ResyncLast(true); ok {
		s.notifyOverlay(state)
	}
	return nil
}

// CancelTool explicitly disarms the current tool
func (s *Session) CancelTool() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	s.placement.Cancel()
	if state, ok := s.overlay.ResyncLast(false); ok {
		s.notifyOverlay(state)
	}
}

// ArmedTool returns the currently armed tool, if any
func (s *Session) ArmedTool() (domain.FieldType, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.placement.Armed()
}

// Click routes a pointer click into the placement controller
func (s *Session) Click(viewportX, viewportY float64, pageRect Rect, scale float64, page int) (*Field, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	field, err := s.placement.PlaceClick(viewportX, viewportY, pageRect, scale, page)
	if err != nil {
		return nil, err
	}
	// Tool disarmed after placement: overlay captures pointer events again.
	if state, ok := s.overlay.ResyncLast(false); ok {
		s.notifyOverlay(state)
	}
	return field, nil
}

// Drop routes a drag-and-drop payload into the placement controller
func (s *Session) Drop(t domain.FieldType, viewportX, viewportY float64, pageRect Rect, scale float64, page int) (*Field, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	field, err := s.placement.PlaceDrop(t, viewportX, viewportY, pageRect, scale, page)
	if err != nil {
		return nil, err
	}
	if state, ok := s.overlay.ResyncLast(s.passThrough()); ok {
		s.notifyOverlay(state)
	}
	return field, nil
}

// SelectField makes a field the active selection
func (s *Session) SelectField(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	return s.store.Select(id)
}

// Deselect clears the active selection
func (s *Session) Deselect() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	s.store.Deselect()
}

// ActiveField returns the active field bound to the properties panel
func (s *Session) ActiveField() (Field, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Active()
}

// PatchField applies a properties-panel edit to a field
func (s *Session) PatchField(id uuid.UUID, patch FieldPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	s.store.Update(id, patch)
}

// RemoveField deletes a field (and its selection, if it was active)
func (s *Session) RemoveField(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	s.store.Remove(id)
}

// ClearAll removes every field in the session
func (s *Session) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	s.store.ClearAll()
}

// ClearAssignments resets assignment on fields referencing a deleted signer
func (s *Session) ClearAssignments(signerID uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.ClearAssignments(signerID)
}

// Fields lists all fields in insertion order
func (s *Session) Fields() []Field {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.ListAll()
}

// OpenCapture starts the value-capture modal for a field
func (s *Session) OpenCapture(fieldID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	return s.capture.Open(fieldID)
}

// SaveCapture validates and commits the capture modal's form state
func (s *Session) SaveCapture(input CaptureInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	return s.capture.Save(input)
}

// CancelCapture closes the capture modal without mutation
func (s *Session) CancelCapture() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	s.capture.Cancel()
}

// ReportGeometry resyncs the overlay with freshly reported render geometry
// (mount, scale change, page change, file change, container resize)
func (s *Session) ReportGeometry(geom RenderGeometry) OverlayState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	state := s.overlay.Resync(geom, s.passThrough())
	s.notifyOverlay(state)
	return state
}

// RenderComplete resyncs after the renderer's page-render signal and
// schedules the single deferred settle re-check
func (s *Session) RenderComplete(geom RenderGeometry) OverlayState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	state := s.overlay.RenderComplete(geom, s.passThrough(), s.settleResync)
	s.notifyOverlay(state)
	return state
}

// settleResync is the deferred re-check; it runs on the timer goroutine and
// re-enters the session lock like any other caller
func (s *Session) settleResync() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if state, ok := s.overlay.ResyncLast(s.passThrough()); ok {
		s.notifyOverlay(state)
	}
}

// Summary builds the preview aggregation
func (s *Session) Summary() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return BuildSummary(s.store)
}

// GateSend checks the pre-flight send conditions
func (s *Session) GateSend(strict bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return GateSend(s.store, strict)
}

// State snapshots the whole session for a client
func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	state := SessionState{
		SessionID:  s.ID,
		DocumentID: s.DocumentID,
		PageCount:  s.PageCount,
		Fields:     s.store.ListAll(),
		Overlay:    s.overlay.State(),
	}
	if active := s.store.ActiveID(); active != uuid.Nil {
		state.ActiveID = &active
	}
	if tool, armed := s.placement.Armed(); armed {
		state.ArmedTool = tool
	}
	if fieldID, open := s.capture.IsOpen(); open {
		state.CaptureFor = &fieldID
	}
	return state
}

// LastActive returns the time of the last mutation or read through the API
func (s *Session) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

// Close tears the session down, stopping the overlay settle timer
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overlay.Close()
	s.onOverlay = nil
}

// SessionManager owns all live editor sessions
type SessionManager struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
	logger   *zap.Logger
}

// NewSessionManager creates an empty session manager
func NewSessionManager(logger *zap.Logger) *SessionManager {
	return &SessionManager{
		sessions: make(map[uuid.UUID]*Session),
		logger:   logger,
	}
}

// Open creates and registers a new session
func (m *SessionManager) Open(documentID, ownerID uuid.UUID, pageCount int, fields []Field, settleDelay time.Duration) *Session {
	session := NewSession(documentID, ownerID, pageCount, fields, settleDelay, m.logger)
	m.mu.Lock()
	m.sessions[session.ID] = session
	m.mu.Unlock()
	m.logger.Info("editor session opened",
		zap.String("session_id", session.ID.String()),
		zap.String("document_id", documentID.String()),
		zap.Int("fields", len(fields)),
	)
	return session
}

// Get looks up a live session
func (m *SessionManager) Get(id uuid.UUID) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	session, ok := m.sessions[id]
	return session, ok
}

// ForDocument returns every live session open on the given document
func (m *SessionManager) ForDocument(documentID uuid.UUID) []*Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*Session
	for _, session := range m.sessions {
		if session.DocumentID == documentID {
			result = append(result, session)
		}
	}
	return result
}

// Close tears down and removes a session
func (m *SessionManager) Close(id uuid.UUID) bool {
	m.mu.Lock()
	session, ok := m.sessions[id]
	if ok {
		delete(m.sessions, id)
	}
	m.mu.Unlock()
	if ok {
		session.Close()
		m.logger.Info("editor session closed", zap.String("session_id", id.String()))
	}
	return ok
}

// Sweep closes every session idle for longer than ttl and returns how many
// were removed. The cleanup job runs this on a schedule.
func (m *SessionManager) Sweep(ttl time.Duration) int {
	cutoff := time.Now().Add(-ttl)
	var expired []*Session

	m.mu.Lock()
	for id, session := range m.sessions {
		if session.LastActive().Before(cutoff) {
			delete(m.sessions, id)
			expired = append(expired, session)
		}
	}
	m.mu.Unlock()

	for _, session := range expired {
		session.Close()
	}
	return len(expired)
}

// Len returns the number of live sessions
func (m *SessionManager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
