package editor

// Point is a position in document space or viewport space depending on context
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Size is a width/height pair
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Rect is a position plus size. Field geometry is always kept in document
// space: unscaled page coordinates that do not change with zoom. Screen
// pixels are a derived value, computed on demand with Scaled.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Scaled returns the rect in screen pixels relative to the page origin at
// the given zoom scale
func (r Rect) Scaled(scale float64) Rect {
	return Rect{
		X:      r.X * scale,
		Y:      r.Y * scale,
		Width:  r.Width * scale,
		Height: r.Height * scale,
	}
}

// Contains reports whether p lies inside the rect
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// IsZero reports whether the rect has no extent (e.g. renderer not mounted)
func (r Rect) IsZero() bool {
	return r.Width == 0 && r.Height == 0
}

// DocumentPoint converts a viewport point to document space: viewport
// coordinates minus the rendered page's viewport origin, divided by the
// current scale
func DocumentPoint(viewportX, viewportY float64, pageOrigin Point, scale float64) Point {
	if scale <= 0 {
		scale = 1
	}
	return Point{
		X: (viewportX - pageOrigin.X) / scale,
		Y: (viewportY - pageOrigin.Y) / scale,
	}
}

// CenteredRect returns a rect of the given size centered on p
func CenteredRect(p Point, size Size) Rect {
	return Rect{
		X:      p.X - size.Width/2,
		Y:      p.Y - size.Height/2,
		Width:  size.Width,
		Height: size.Height,
	}
}
