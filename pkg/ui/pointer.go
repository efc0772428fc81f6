// Package ui holds the immediate-mode widgets of the flock viewer.
// Widgets never poll ebiten directly: the game reads a Pointer once per frame
// and hands it down, which keeps hit testing deterministic.
package ui

import "github.com/hajimehoshi/ebiten/v2"

// Pointer is the mouse state for one frame.
type Pointer struct {
	X, Y    float64
	Pressed bool    // left button held
	WheelY  float64 // vertical wheel delta
}

// ReadPointer samples the ebiten input state.
func ReadPointer() Pointer {
	mx, my := ebiten.CursorPosition()
	_, dy := ebiten.Wheel()
	return Pointer{
		X:       float64(mx),
		Y:       float64(my),
		Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		WheelY:  dy,
	}
}

// In reports whether the pointer is inside the rectangle, edges included.
func (p Pointer) In(x, y, w, h float64) bool {
	return p.X >= x && p.X <= x+w && p.Y >= y && p.Y <= y+h
}

// clickEdge turns a held button into a single click per press.
type clickEdge struct {
	held bool
}

// fire returns true on the first frame of a press inside the hit area.
func (c *clickEdge) fire(hit, pressed bool) bool {
	if !pressed || !hit {
		c.held = false
		return false
	}
	if c.held {
		return false
	}
	c.held = true
	return true
}
