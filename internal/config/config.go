package config

import "time"

const (
	WindowWidth  = 1024
	WindowHeight = 640

	TPS = 60

	// Particle field
	ParticleCount = 55
	MaxSpeed      = 0.15
	MinRadius     = 0.5
	MaxRadius     = 2.0
	MinAlpha      = 0.1
	MaxAlpha      = 0.5
	LinkDistance  = 100.0
	LinkOpacity   = 0.06
	LinkWidth     = 0.5

	// Cursor
	CursorEase         = 0.12
	CursorDotSize      = 10
	CursorRingSize     = 32
	CursorDotHover     = 2.0
	CursorRingHover    = 1.5
	CursorRingOpacity  = 0.5
	CursorRingHoverOpa = 0.8

	// Typing animation
	TypeDelay   = 80 * time.Millisecond
	TypePause   = 1800 * time.Millisecond
	TypeNextGap = 400 * time.Millisecond

	// Scroll reveal
	RevealThreshold = 0.1
	RevealStagger   = 80 * time.Millisecond
	RevealFade      = 600 * time.Millisecond

	// Contact form
	FormSendDelay  = 1200 * time.Millisecond
	FormResetDelay = 3000 * time.Millisecond
	FormSentColor  = "#22c55e"

	// Navbar
	NavHeight    = 56
	HamburgerY   = 16
	HamburgerW   = 28
	HamburgerH   = 22
	ButtonWidth  = 160
	ButtonHeight = 40
)

// Palette holds the two particle color families. The first entry also
// strokes the connecting lines.
var Palette = [2]string{"#7c3aed", "#06b6d4"}

const Background = "#0a0a12"
