package editor

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// RenderGeometry is what the client reports about the externally rendered
// page: the container's and the page surface's bounding rects in viewport
// coordinates, the container scroll offsets, and the current scale and page.
// A zero PageRect means the renderer has not mounted the page yet.
type RenderGeometry struct {
	ContainerRect Rect    `json:"container_rect"`
	PageRect      Rect    `json:"page_rect"`
	ScrollLeft    float64 `json:"scroll_left"`
	ScrollTop     float64 `json:"scroll_top"`
	Scale         float64 `json:"scale"`
	Page          int     `json:"page"`
}

// OverlayState is the computed placement of the interactive surface: the
// exact rect (relative to the container) the overlay must occupy to sit
// pixel-aligned on the rendered page, the internal coordinate system to
// reset to at 1:1 zoom, and whether pointer events should pass through to
// the page container (true while a placement tool is armed).
type OverlayState struct {
	Synced             bool    `json:"synced"`
	Rect               Rect    `json:"rect"`
	CanvasSize         Size    `json:"canvas_size"`
	Scale              float64 `json:"scale"`
	Page               int     `json:"page"`
	PointerPassThrough bool    `json:"pointer_pass_through"`
}

// OverlaySynchronizer keeps the interactive surface co-located with the
// rendered page across scale changes, page navigation, file changes,
// container resizes and the renderer's asynchronous draw completion.
//
// The renderer can finish layout slightly after its render-complete signal,
// so one extra resync is scheduled a short fixed delay after each
// render-complete event. This is a documented compromise for the renderer's
// unobservable internal layout timing; the timer is replaced, never stacked,
// so at most one deferred re-check is pending per render event.
type OverlaySynchronizer struct {
	logger      *zap.Logger
	settleDelay time.Duration

	mu          sync.Mutex
	lastGeom    *RenderGeometry
	state       OverlayState
	settleTimer *time.Timer
	closed      bool
}

// NewOverlaySynchronizer creates a synchronizer with the given settle delay
func NewOverlaySynchronizer(settleDelay time.Duration, logger *zap.Logger) *OverlaySynchronizer {
	return &OverlaySynchronizer{
		logger:      logger,
		settleDelay: settleDelay,
	}
}

// Resync recomputes the overlay placement from the reported geometry. When
// the page surface is not available (renderer not mounted yet) the resync
// is a no-op except for recording the attempt; it is retried on whatever
// event fires next. passThrough reflects whether a placement tool is armed.
func (o *OverlaySynchronizer) Resync(geom RenderGeometry, passThrough bool) OverlayState {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.resyncLocked(geom, passThrough)
}

func (o *OverlaySynchronizer) resyncLocked(geom RenderGeometry, passThrough bool) OverlayState {
	g := geom
	o.lastGeom = &g

	if geom.PageRect.IsZero() {
		o.logger.Debug("overlay resync skipped, page surface not available",
			zap.Int("page", geom.Page),
		)
		o.state = OverlayState{
			Synced:             false,
			Scale:              geom.Scale,
			Page:               geom.Page,
			PointerPassThrough: passThrough,
		}
		return o.state
	}

	scale := geom.Scale
	if scale <= 0 {
		scale = 1
	}

	// Page rect relative to the container, corrected for scroll offset.
	o.state = OverlayState{
		Synced: true,
		Rect: Rect{
			X:      geom.PageRect.X - geom.ContainerRect.X + geom.ScrollLeft,
			Y:      geom.PageRect.Y - geom.ContainerRect.Y + geom.ScrollTop,
			Width:  geom.PageRect.Width,
			Height: geom.PageRect.Height,
		},
		// Internal coordinate system is reset to 1:1 on every resync;
		// field geometry is mapped in separately from document space.
		CanvasSize: Size{
			Width:  geom.PageRect.Width / scale,
			Height: geom.PageRect.Height / scale,
		},
		Scale:              scale,
		Page:               geom.Page,
		PointerPassThrough: passThrough,
	}
	return o.state
}

// RenderComplete resyncs immediately and schedules the single deferred
// settle re-check. settle is invoked off the caller's goroutine after the
// delay; callers route it back through their own serialization.
func (o *OverlaySynchronizer) RenderComplete(geom RenderGeometry, passThrough bool, settle func()) OverlayState {
	o.mu.Lock()
	defer o.mu.Unlock()

	state := o.resyncLocked(geom, passThrough)

	if o.closed || settle == nil {
		return state
	}
	if o.settleTimer != nil {
		o.settleTimer.Stop()
	}
	o.settleTimer = time.AfterFunc(o.settleDelay, settle)
	return state
}

// ResyncLast re-runs the last reported geometry, used by the deferred
// settle re-check and by pass-through toggles. Returns false when no
// geometry was ever reported.
func (o *OverlaySynchronizer) ResyncLast(passThrough bool) (OverlayState, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.lastGeom == nil {
		return OverlayState{}, false
	}
	return o.resyncLocked(*o.lastGeom, passThrough), true
}

// State returns the last computed overlay state
func (o *OverlaySynchronizer) State() OverlayState {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Close stops any pending settle timer. The synchronizer must not be used
// afterwards; this is the teardown path of the editor view.
func (o *OverlaySynchronizer) Close() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.closed = true
	if o.settleTimer != nil {
		o.settleTimer.Stop()
		o.settleTimer = nil
	}
}
