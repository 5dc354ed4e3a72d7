// Package typing runs the hero typewriter: type a phrase, hold it, erase it,
// move on to the next one.
package typing

import (
	"errors"
	"time"

	"github.com/iburimskiy/portfolio-fx/internal/config"
)

var ErrNoTexts = errors.New("typing: no texts")

type Typewriter struct {
	texts [][]rune
	speed time.Duration
	pause time.Duration
	gap   time.Duration

	textIndex int
	charIndex int
	deleting  bool
	wait      time.Duration
}

type Option func(*Typewriter)

// WithSpeed sets the per-character typing delay. Erasing runs at twice
// that rate.
func WithSpeed(d time.Duration) Option {
	return func(t *Typewriter) { t.speed = d }
}

// WithPause sets how long a fully typed phrase stays on screen.
func WithPause(d time.Duration) Option {
	return func(t *Typewriter) { t.pause = d }
}

// New builds a typewriter over texts and types the first character.
// Empty texts are skipped.
func New(texts []string, opts ...Option) (*Typewriter, error) {
	t := &Typewriter{
		speed: config.TypeDelay,
		pause: config.TypePause,
		gap:   config.TypeNextGap,
	}
	for _, s := range texts {
		if s != "" {
			t.texts = append(t.texts, []rune(s))
		}
	}
	if len(t.texts) == 0 {
		return nil, ErrNoTexts
	}
	for _, opt := range opts {
		opt(t)
	}
	t.wait = t.step()
	return t, nil
}

// Update advances the animation by dt, running every step that falls due.
func (t *Typewriter) Update(dt time.Duration) {
	t.wait -= dt
	for t.wait <= 0 {
		t.wait += t.step()
	}
}

// step types or erases one character and returns the delay before the next.
func (t *Typewriter) step() time.Duration {
	current := t.texts[t.textIndex]
	if t.deleting {
		t.charIndex--
	} else {
		t.charIndex++
	}

	delay := t.speed
	if t.deleting {
		delay = t.speed / 2
	}

	switch {
	case !t.deleting && t.charIndex == len(current):
		delay = t.pause
		t.deleting = true
	case t.deleting && t.charIndex == 0:
		t.deleting = false
		t.textIndex = (t.textIndex + 1) % len(t.texts)
		delay = t.gap
	}
	if delay <= 0 {
		// Zero delays would spin Update forever.
		delay = time.Millisecond
	}
	return delay
}

// Text is the currently visible part of the phrase.
func (t *Typewriter) Text() string {
	return string(t.texts[t.textIndex][:t.charIndex])
}

// Index reports which phrase is being typed.
func (t *Typewriter) Index() int { return t.textIndex }

func (t *Typewriter) Deleting() bool { return t.deleting }
