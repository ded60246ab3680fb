package editor

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"esign-editor-api/internal/domain"
)

// FieldValue is the opaque captured payload of a configured field. For
// signature-like fields Method records how it was produced (draw, type,
// upload) and Data carries an image data URL or typed text; for plain
// fields Data carries the text, a YYYY-MM-DD date, or "true"/"false".
type FieldValue struct {
	Method string `json:"method,omitempty"`
	Data   string `json:"data"`
}

// IsEmpty reports whether the value carries no payload
func (v *FieldValue) IsEmpty() bool {
	return v == nil || v.Data == ""
}

// Field is a placed annotation in an editor session. Rect is in document
// space of the page the field belongs to.
type Field struct {
	ID           uuid.UUID        `json:"id"`
	Type         domain.FieldType `json:"type"`
	Label        string           `json:"label"`
	Page         int              `json:"page"`
	Rect         Rect             `json:"rect"`
	Required     bool             `json:"required"`
	IsConfigured bool             `json:"is_configured"`
	Value        *FieldValue      `json:"value,omitempty"`
	AssignedTo   *uuid.UUID       `json:"assigned_to,omitempty"`
}

// FieldPatch is a partial update applied by the properties panel. Nil means
// "leave unchanged". ClearAssigned resets AssignedTo to "any signer".
type FieldPatch struct {
	Label         *string
	Required      *bool
	Page          *int
	X             *float64
	Y             *float64
	Width         *float64
	Height        *float64
	IsConfigured  *bool
	AssignedTo    *uuid.UUID
	ClearAssigned bool
}

// Store is the single source of truth for all fields of one editor session.
// It also owns the active selection: at most one field is active at a time.
//
// The store is not safe for concurrent use on its own; the owning Session
// serializes every mutation (single-writer model).
type Store struct {
	logger   *zap.Logger
	fields   []*Field
	index    map[uuid.UUID]*Field
	activeID uuid.UUID
}

// NewStore creates an empty field store
func NewStore(logger *zap.Logger) *Store {
	return &Store{
		logger: logger,
		index:  make(map[uuid.UUID]*Field),
	}
}

// Load seeds the store with previously persisted fields, preserving their
// identities and insertion order. Any current content is discarded.
func (s *Store) Load(fields []Field) {
	s.fields = s.fields[:0]
	s.index = make(map[uuid.UUID]*Field, len(fields))
	s.activeID = uuid.Nil
	for i := range fields {
		f := fields[i]
		s.fields = append(s.fields, &f)
		s.index[f.ID] = &f
	}
}

// Create allocates a new field of the given type on the given page. A zero
// rect size falls back to the type's default size. The new field starts
// unconfigured with no value and is required by default.
func (s *Store) Create(t domain.FieldType, page int, rect Rect) *Field {
	if rect.Width == 0 || rect.Height == 0 {
		size := DefaultSize(t)
		rect.Width = size.Width
		rect.Height = size.Height
	}
	f := &Field{
		ID:           uuid.New(),
		Type:         t,
		Label:        DefaultLabel(t),
		Page:         page,
		Rect:         rect,
		Required:     true,
		IsConfigured: false,
	}
	s.fields = append(s.fields, f)
	s.index[f.ID] = f
	return f
}

// Update merges a patch into an existing field. Unknown ids are a logged
// no-op, never an error: property-panel callers may race with a deletion.
//
// Setting IsConfigured=true through a patch is the explicit "mark
// configured" user override and is allowed even without a value; the
// capture workflow's own save path validates non-empty values before
// committing (see CaptureWorkflow.Save).
func (s *Store) Update(id uuid.UUID, patch FieldPatch) {
	f, ok := s.index[id]
	if !ok {
		s.logger.Debug("update on unknown field id ignored", zap.String("field_id", id.String()))
		return
	}
	if patch.Label != nil {
		f.Label = *patch.Label
	}
	if patch.Required != nil {
		f.Required = *patch.Required
	}
	if patch.Page != nil {
		f.Page = *patch.Page
	}
	if patch.X != nil {
		f.Rect.X = *patch.X
	}
	if patch.Y != nil {
		f.Rect.Y = *patch.Y
	}
	if patch.Width != nil {
		f.Rect.Width = *patch.Width
	}
	if patch.Height != nil {
		f.Rect.Height = *patch.Height
	}
	if patch.IsConfigured != nil {
		f.IsConfigured = *patch.IsConfigured
	}
	if patch.ClearAssigned {
		f.AssignedTo = nil
	} else if patch.AssignedTo != nil {
		assigned := *patch.AssignedTo
		f.AssignedTo = &assigned
	}
}

// commitValue writes a validated captured value and marks the field
// configured. Only the capture workflow calls this.
func (s *Store) commitValue(id uuid.UUID, value *FieldValue) bool {
	f, ok := s.index[id]
	if !ok {
		s.logger.Debug("value commit on unknown field id ignored", zap.String("field_id", id.String()))
		return false
	}
	f.Value = value
	f.IsConfigured = true
	return true
}

// Remove deletes a field. If it was the active selection, the selection is
// cleared in the same step. Unknown ids are a logged no-op.
func (s *Store) Remove(id uuid.UUID) {
	if _, ok := s.index[id]; !ok {
		s.logger.Debug("remove on unknown field id ignored", zap.String("field_id", id.String()))
		return
	}
	delete(s.index, id)
	for i, f := range s.fields {
		if f.ID == id {
			s.fields = append(s.fields[:i], s.fields[i+1:]...)
			break
		}
	}
	if s.activeID == id {
		s.activeID = uuid.Nil
	}
}

// ClearAll removes every field and clears the active selection. Calling it
// on an already empty store is a no-op.
func (s *Store) ClearAll() {
	s.fields = s.fields[:0]
	s.index = make(map[uuid.UUID]*Field)
	s.activeID = uuid.Nil
}

// ClearAssignments resets AssignedTo on every field referencing the given
// signer, used when a signer is deleted
func (s *Store) ClearAssignments(signerID uuid.UUID) int {
	cleared := 0
	for _, f := range s.fields {
		if f.AssignedTo != nil && *f.AssignedTo == signerID {
			f.AssignedTo = nil
			cleared++
		}
	}
	return cleared
}

// ListAll returns copies of all fields in insertion order
func (s *Store) ListAll() []Field {
	out := make([]Field, len(s.fields))
	for i, f := range s.fields {
		out[i] = *f
	}
	return out
}

// ListPage returns copies of the fields on the given page, insertion order
func (s *Store) ListPage(page int) []Field {
	var out []Field
	for _, f := range s.fields {
		if f.Page == page {
			out = append(out, *f)
		}
	}
	return out
}

// Get returns a copy of the field with the given id
func (s *Store) Get(id uuid.UUID) (Field, bool) {
	f, ok := s.index[id]
	if !ok {
		return Field{}, false
	}
	return *f, true
}

// Len returns the number of fields in the store
func (s *Store) Len() int {
	return len(s.fields)
}

// Select makes the field with the given id the active selection. Selecting
// an unknown id leaves the current selection untouched.
func (s *Store) Select(id uuid.UUID) bool {
	if _, ok := s.index[id]; !ok {
		s.logger.Debug("select on unknown field id ignored", zap.String("field_id", id.String()))
		return false
	}
	s.activeID = id
	return true
}

// Deselect clears the active selection
func (s *Store) Deselect() {
	s.activeID = uuid.Nil
}

// ActiveID returns the id of the active field, or uuid.Nil when none
func (s *Store) ActiveID() uuid.UUID {
	return s.activeID
}

// Active returns a copy of the active field, if any
func (s *Store) Active() (Field, bool) {
	if s.activeID == uuid.Nil {
		return Field{}, false
	}
	return s.Get(s.activeID)
}
