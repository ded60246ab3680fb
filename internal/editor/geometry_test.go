package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocumentPoint(t *testing.T) {
	origin := Point{X: 40, Y: 80}

	t.Run("at scale 1.0", func(t *testing.T) {
		p := DocumentPoint(240, 380, origin, 1.0)
		assert.Equal(t, Point{X: 200, Y: 300}, p)
	})

	t.Run("at scale 2.0", func(t *testing.T) {
		p := DocumentPoint(440, 680, origin, 2.0)
		assert.Equal(t, Point{X: 200, Y: 300}, p)
	})

	t.Run("zero scale treated as 1:1", func(t *testing.T) {
		p := DocumentPoint(140, 180, origin, 0)
		assert.Equal(t, Point{X: 100, Y: 100}, p)
	})
}

// Stored document-space geometry never drifts with zoom: rendering at s2
// after placing at s1 yields exactly (x*s2, y*s2) relative to page origin.
func TestRectScaledZoomInvariance(t *testing.T) {
	rect := Rect{X: 100, Y: 100, Width: 150, Height: 48}

	at1 := rect.Scaled(1.0)
	at2 := rect.Scaled(2.0)

	assert.Equal(t, Rect{X: 100, Y: 100, Width: 150, Height: 48}, at1)
	assert.Equal(t, Rect{X: 200, Y: 200, Width: 300, Height: 96}, at2)
	// Stored rect is untouched.
	assert.Equal(t, Rect{X: 100, Y: 100, Width: 150, Height: 48}, rect)
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 100, Height: 50}

	assert.True(t, r.Contains(Point{X: 10, Y: 10}))
	assert.True(t, r.Contains(Point{X: 110, Y: 60}))
	assert.True(t, r.Contains(Point{X: 50, Y: 30}))
	assert.False(t, r.Contains(Point{X: 9.9, Y: 30}))
	assert.False(t, r.Contains(Point{X: 50, Y: 60.1}))
}

func TestCenteredRect(t *testing.T) {
	r := CenteredRect(Point{X: 200, Y: 300}, Size{Width: 110, Height: 32})
	assert.Equal(t, Rect{X: 145, Y: 284, Width: 110, Height: 32}, r)
}

func TestRectIsZero(t *testing.T) {
	assert.True(t, Rect{}.IsZero())
	assert.True(t, Rect{X: 5, Y: 5}.IsZero())
	assert.False(t, Rect{Width: 1, Height: 1}.IsZero())
}
