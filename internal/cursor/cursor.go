// Package cursor keeps the state of the custom pointer: a dot pinned to the
// pointer and a ring that eases after it.
package cursor

import "github.com/iburimskiy/portfolio-fx/internal/config"

// Follower is owned by a single page; nothing about it is global.
type Follower struct {
	Enabled bool

	mouseX, mouseY   float64
	followX, followY float64
	hover            bool
}

// Shape is a square draw box with a scale transform and opacity.
type Shape struct {
	X, Y    float64 // top-left
	Size    float64
	Scale   float64
	Opacity float64
}

func New(enabled bool) *Follower {
	return &Follower{Enabled: enabled}
}

// Move records the pointer position.
func (f *Follower) Move(x, y float64) {
	if !f.Enabled {
		return
	}
	f.mouseX, f.mouseY = x, y
}

// Step eases the ring toward the pointer. Call once per frame.
func (f *Follower) Step() {
	if !f.Enabled {
		return
	}
	f.followX += (f.mouseX - f.followX) * config.CursorEase
	f.followY += (f.mouseY - f.followY) * config.CursorEase
}

// SetHover marks the pointer as over an interactive element.
func (f *Follower) SetHover(hover bool) {
	f.hover = hover
}

func (f *Follower) Hovering() bool { return f.hover }

func (f *Follower) Dot() Shape {
	half := float64(config.CursorDotSize) / 2
	s := Shape{X: f.mouseX - half, Y: f.mouseY - half, Size: config.CursorDotSize, Scale: 1, Opacity: 1}
	if f.hover {
		s.Scale = config.CursorDotHover
	}
	return s
}

func (f *Follower) Ring() Shape {
	half := float64(config.CursorRingSize) / 2
	s := Shape{X: f.followX - half, Y: f.followY - half, Size: config.CursorRingSize, Scale: 1, Opacity: config.CursorRingOpacity}
	if f.hover {
		s.Scale = config.CursorRingHover
		s.Opacity = config.CursorRingHoverOpa
	}
	return s
}

// Center returns the middle of the shape.
func (s Shape) Center() (float64, float64) {
	return s.X + s.Size/2, s.Y + s.Size/2
}

// Radius is the scaled half-size.
func (s Shape) Radius() float64 {
	return s.Size / 2 * s.Scale
}
