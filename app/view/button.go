package view

import "sync"

// Button is a console control bound to a job. Busy button is disabled and shows its busy label.
type Button struct {
	Name      string
	Label     string
	BusyLabel string

	mu       sync.Mutex
	busy     bool
	onChange func(b *Button)
}

// SetBusy disables the button and swaps its label, or restores both
func (b *Button) SetBusy(busy bool) {
	b.mu.Lock()
	b.busy = busy
	fn := b.onChange
	b.mu.Unlock()
	if fn != nil {
		fn(b)
	}
}

// Enabled reports whether the button accepts activation
func (b *Button) Enabled() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return !b.busy
}

// Text returns the current label
func (b *Button) Text() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.busy && b.BusyLabel != "" {
		return b.BusyLabel
	}
	return b.Label
}
