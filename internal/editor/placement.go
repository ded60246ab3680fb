package editor

import (
	"go.uber.org/zap"

	"esign-editor-api/internal/domain"
)

// PlacementController turns "armed tool + pointer interaction" into a new
// field at the correct document-space position.
//
// It is a two-state machine: Idle (no tool) and ToolArmed(type). A palette
// selection arms a tool; exactly one successful placement disarms it again.
// Clicks outside the rendered page bounds are ignored and leave the tool
// armed, as does every other non-qualifying event. An armed tool that is
// never used persists until an explicit cancel.
type PlacementController struct {
	logger *zap.Logger
	store  *Store
	armed  domain.FieldType
}

// NewPlacementController creates a controller in the Idle state
func NewPlacementController(store *Store, logger *zap.Logger) *PlacementController {
	return &PlacementController{
		logger: logger,
		store:  store,
	}
}

// Arm selects a palette tool and waits for the next qualifying interaction
func (p *PlacementController) Arm(t domain.FieldType) error {
	if !domain.IsValidFieldType(t) {
		return ErrInvalidFieldType
	}
	p.armed = t
	return nil
}

// Cancel explicitly disarms the current tool
func (p *PlacementController) Cancel() {
	p.armed = ""
}

// Armed returns the currently armed tool type, if any
func (p *PlacementController) Armed() (domain.FieldType, bool) {
	return p.armed, p.armed != ""
}

// PlaceClick handles a pointer click at viewport coordinates over the
// rendered page. pageRect is the page's bounding rect in the same viewport
// coordinates; scale is the current zoom. The new field is centered on the
// click point, becomes the active selection, and the tool disarms.
func (p *PlacementController) PlaceClick(viewportX, viewportY float64, pageRect Rect, scale float64, page int) (*Field, error) {
	if p.armed == "" {
		return nil, ErrNoToolArmed
	}
	if !pageRect.Contains(Point{X: viewportX, Y: viewportY}) {
		// Not a cancel: the tool stays armed for the next attempt.
		p.logger.Debug("placement click outside page bounds ignored",
			zap.Float64("x", viewportX),
			zap.Float64("y", viewportY),
		)
		return nil, ErrOutsidePage
	}
	return p.place(p.armed, viewportX, viewportY, pageRect, scale, page)
}

// PlaceDrop handles a drag-and-drop payload dropped onto the page. The
// payload carries the field type, so no armed tool is needed; dropping also
// centers the field on the drop point, matching the click path.
func (p *PlacementController) PlaceDrop(t domain.FieldType, viewportX, viewportY float64, pageRect Rect, scale float64, page int) (*Field, error) {
	if !domain.IsValidFieldType(t) {
		return nil, ErrInvalidFieldType
	}
	if !pageRect.Contains(Point{X: viewportX, Y: viewportY}) {
		return nil, ErrOutsidePage
	}
	return p.place(t, viewportX, viewportY, pageRect, scale, page)
}

func (p *PlacementController) place(t domain.FieldType, viewportX, viewportY float64, pageRect Rect, scale float64, page int) (*Field, error) {
	docPoint := DocumentPoint(viewportX, viewportY, Point{X: pageRect.X, Y: pageRect.Y}, scale)
	rect := CenteredRect(docPoint, DefaultSize(t))

	field := p.store.Create(t, page, rect)
	p.store.Select(field.ID)

	// One placement per tool activation.
	p.armed = ""

	p.logger.Debug("field placed",
		zap.String("field_id", field.ID.String()),
		zap.String("type", string(t)),
		zap.Int("page", page),
		zap.Float64("doc_x", rect.X),
		zap.Float64("doc_y", rect.Y),
	)
	return field, nil
}
