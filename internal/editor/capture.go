package editor

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"esign-editor-api/internal/domain"
)

// Signature capture methods
const (
	CaptureMethodDraw   = "draw"
	CaptureMethodType   = "type"
	CaptureMethodUpload = "upload"
)

// CaptureInput is the final form state of the capture modal at save time.
// Which parts matter depends on the field type being captured.
type CaptureInput struct {
	Method  string `json:"method,omitempty"`
	Data    string `json:"data,omitempty"`
	Text    string `json:"text,omitempty"`
	Date    string `json:"date,omitempty"`
	Checked *bool  `json:"checked,omitempty"`
}

// CaptureWorkflow collects a human-entered value for one field at a time.
// Closed -> Open(field) on request, back to Closed on cancel (no mutation)
// or on a validated save. Opening resets all transient state, so nothing
// captured for one field ever leaks into the next field's modal session.
type CaptureWorkflow struct {
	logger *zap.Logger
	store  *Store
	open   bool
	field  uuid.UUID
}

// NewCaptureWorkflow creates a closed capture workflow
func NewCaptureWorkflow(store *Store, logger *zap.Logger) *CaptureWorkflow {
	return &CaptureWorkflow{
		logger: logger,
		store:  store,
	}
}

// Open starts a capture session for the given field. Re-opening for a
// different field discards the previous session.
func (w *CaptureWorkflow) Open(fieldID uuid.UUID) error {
	if _, ok := w.store.Get(fieldID); !ok {
		return ErrFieldNotFound
	}
	w.open = true
	w.field = fieldID
	return nil
}

// Cancel closes the modal without touching the field
func (w *CaptureWorkflow) Cancel() {
	w.reset()
}

// IsOpen returns the field a capture is in progress for, if any
func (w *CaptureWorkflow) IsOpen() (uuid.UUID, bool) {
	return w.field, w.open
}

// Save validates the input against the open field's type, commits the
// opaque value, marks the field configured and closes the modal. On a
// validation failure the modal stays open and the field is untouched.
func (w *CaptureWorkflow) Save(input CaptureInput) error {
	if !w.open {
		return ErrCaptureNotOpen
	}
	field, ok := w.store.Get(w.field)
	if !ok {
		// The field raced with a deletion while the modal was open.
		w.reset()
		return ErrFieldNotFound
	}

	value, err := buildValue(field.Type, input)
	if err != nil {
		return err
	}

	w.store.commitValue(field.ID, value)
	w.logger.Debug("field value captured",
		zap.String("field_id", field.ID.String()),
		zap.String("type", string(field.Type)),
	)
	w.reset()
	return nil
}

func (w *CaptureWorkflow) reset() {
	w.open = false
	w.field = uuid.Nil
}

// buildValue validates the capture input for a field type and produces the
// opaque value payload
func buildValue(t domain.FieldType, input CaptureInput) (*FieldValue, error) {
	switch t {
	case domain.FieldTypeSignature, domain.FieldTypeInitial, domain.FieldTypeImage:
		switch input.Method {
		case CaptureMethodDraw, CaptureMethodUpload:
			if input.Data == "" {
				return nil, newValidationError("no image data for %s method", input.Method)
			}
			return &FieldValue{Method: input.Method, Data: input.Data}, nil
		case CaptureMethodType:
			text := strings.TrimSpace(input.Data)
			if text == "" {
				return nil, newValidationError("typed signature must not be blank")
			}
			return &FieldValue{Method: CaptureMethodType, Data: text}, nil
		default:
			return nil, newValidationError("unknown capture method %q", input.Method)
		}

	case domain.FieldTypeName, domain.FieldTypeEmail, domain.FieldTypeText,
		domain.FieldTypeCompany, domain.FieldTypeComment:
		text := strings.TrimSpace(input.Text)
		if text == "" {
			return nil, newValidationError("%s value must not be blank", t)
		}
		return &FieldValue{Data: text}, nil

	case domain.FieldTypeDate:
		if input.Date == "" {
			return nil, newValidationError("no date selected")
		}
		if _, err := time.Parse("2006-01-02", input.Date); err != nil {
			return nil, newValidationError("invalid date %q, expected YYYY-MM-DD", input.Date)
		}
		return &FieldValue{Data: input.Date}, nil

	case domain.FieldTypeCheckbox:
		if input.Checked == nil {
			return nil, newValidationError("checkbox state not set")
		}
		if *input.Checked {
			return &FieldValue{Data: "true"}, nil
		}
		return &FieldValue{Data: "false"}, nil

	default:
		return nil, ErrInvalidFieldType
	}
}
