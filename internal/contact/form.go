// Package contact simulates the contact form: nothing is delivered, the
// submit button just walks through its sending and sent states.
package contact

import (
	"time"

	"github.com/iburimskiy/portfolio-fx/internal/config"
)

type State int

const (
	Idle State = iota
	Sending
	Sent
)

func (s State) String() string {
	switch s {
	case Sending:
		return "sending"
	case Sent:
		return "sent"
	}
	return "idle"
}

const (
	LabelIdle    = "Send Message"
	LabelSending = "Sending..."
	LabelSent    = "✓ Message Sent!"
)

type Form struct {
	fields  map[string]string
	state   State
	elapsed time.Duration
}

func NewForm() *Form {
	return &Form{fields: map[string]string{}}
}

// Set fills in a field.
func (f *Form) Set(name, value string) {
	f.fields[name] = value
}

func (f *Form) Get(name string) string { return f.fields[name] }

// Submit starts the fake send. It reports false while the button is
// disabled.
func (f *Form) Submit() bool {
	if f.Disabled() {
		return false
	}
	f.state = Sending
	f.elapsed = 0
	return true
}

// Update advances the send timers.
func (f *Form) Update(dt time.Duration) {
	if f.state == Idle {
		return
	}
	f.elapsed += dt
	if f.state == Sending && f.elapsed >= config.FormSendDelay {
		f.state = Sent
		f.elapsed -= config.FormSendDelay
		clear(f.fields)
	}
	if f.state == Sent && f.elapsed >= config.FormResetDelay {
		f.state = Idle
		f.elapsed = 0
	}
}

func (f *Form) State() State { return f.state }

func (f *Form) Disabled() bool { return f.state != Idle }

func (f *Form) Label() string {
	switch f.state {
	case Sending:
		return LabelSending
	case Sent:
		return LabelSent
	}
	return LabelIdle
}

// Background is the button color override, or "" for the default style.
func (f *Form) Background() string {
	if f.state == Sent {
		return config.FormSentColor
	}
	return ""
}
