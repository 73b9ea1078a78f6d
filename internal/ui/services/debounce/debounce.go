package debounce

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var owners atomic.Uint64

// SettledMsg is delivered when a debounce window elapses. Only the message
// from the latest Trigger of the same Debouncer is accepted by Settle.
type SettledMsg struct {
	owner uint64
	seq   uint64
	Text  string
}

// Debouncer delays a value until input has been quiet for a window.
// Each Trigger restarts the window; at most one sequence is live.
type Debouncer struct {
	window  time.Duration
	owner   uint64
	seq     uint64
	pending bool
	text    string
}

// New creates a debouncer with the given quiet window
func New(window time.Duration) *Debouncer {
	return &Debouncer{
		window: window,
		owner:  owners.Add(1),
	}
}

// Window returns the quiet period
func (d *Debouncer) Window() time.Duration {
	return d.window
}

// Trigger starts a new window for text and returns the tick that ends it
func (d *Debouncer) Trigger(text string) tea.Cmd {
	d.seq++
	d.pending = true
	d.text = text

	owner, seq := d.owner, d.seq
	return tea.Tick(d.window, func(time.Time) tea.Msg {
		return SettledMsg{owner: owner, seq: seq, Text: text}
	})
}

// Settle accepts msg if it ends the live window and returns its text
func (d *Debouncer) Settle(msg SettledMsg) (string, bool) {
	if !d.pending || msg.owner != d.owner || msg.seq != d.seq {
		return "", false
	}
	d.pending = false
	return msg.Text, true
}

// Flush ends the live window immediately and returns its text
func (d *Debouncer) Flush() (string, bool) {
	if !d.pending {
		return "", false
	}
	d.seq++
	d.pending = false
	return d.text, true
}

// Cancel drops the live window. Its tick will be ignored.
func (d *Debouncer) Cancel() {
	d.seq++
	d.pending = false
}

// Pending reports whether a window is live
func (d *Debouncer) Pending() bool {
	return d.pending
}
