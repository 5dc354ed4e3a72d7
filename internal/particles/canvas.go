package particles

import "image/color"

// Canvas is the 2D drawing surface the field renders onto. Coordinates are
// in surface pixels.
type Canvas interface {
	Size() (w, h int)
	SetSize(w, h int)
	Clear()
	StrokeLine(x0, y0, x1, y1, width float32, c color.Color)
	FillCircle(cx, cy, r float32, c color.Color)
}

// Host is the platform the animator lives in: it reports the container size,
// delivers resize notifications and schedules animation-frame callbacks.
// A callback passed to RequestFrame runs once, on the next frame.
type Host interface {
	ContainerSize() (w, h int)
	OnResize(fn func(w, h int))
	RequestFrame(fn func())
}
