package termview

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

// Host drives animation frames from a ticker and forwards terminal resizes.
// It implements particles.Host.
type Host struct {
	screen    tcell.Screen
	canvas    *Canvas
	logger    *zap.Logger
	interval  time.Duration
	resizeFns []func(w, h int)
	frameFns  []func()
}

func NewHost(screen tcell.Screen, background string, logger *zap.Logger) *Host {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Host{
		screen:   screen,
		canvas:   NewCanvas(screen, background),
		logger:   logger,
		interval: time.Second / 60,
	}
}

func (h *Host) Canvas() *Canvas { return h.canvas }

// ContainerSize is the terminal size in surface pixels.
func (h *Host) ContainerSize() (int, int) {
	cols, rows := h.screen.Size()
	return cols * CellWidth, rows * CellHeight
}

func (h *Host) OnResize(fn func(w, h int)) { h.resizeFns = append(h.resizeFns, fn) }

func (h *Host) RequestFrame(fn func()) { h.frameFns = append(h.frameFns, fn) }

// Frame runs the queued frame callbacks and shows the result.
func (h *Host) Frame() {
	queued := h.frameFns
	h.frameFns = nil
	for _, fn := range queued {
		fn()
	}
	h.canvas.Flush()
}

// Run processes frames and terminal events until ctx is done or the user
// quits with Esc, q or Ctrl-C. The caller owns the screen and finalizes it
// after Run returns.
func (h *Host) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				h.screen.Sync()
				w, hh := h.ContainerSize()
				h.logger.Debug("terminal resized", zap.Int("width", w), zap.Int("height", hh))
				for _, fn := range h.resizeFns {
					fn(w, hh)
				}
			case *tcell.EventKey:
				if quitKey(ev) {
					h.logger.Info("quit requested")
					return nil
				}
			}
		case <-ticker.C:
			h.Frame()
		}
	}
}

func quitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
