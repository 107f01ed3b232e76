package jobs

import (
	"sync"
	"time"
)

// Guard is a thread safe registry of active controls, prevents a control to be activated twice.
// Zero value is not usable, make it with NewGuard.
type Guard struct {
	active map[string]time.Time
	lock   sync.Mutex
}

// NewGuard makes an empty Guard
func NewGuard() *Guard {
	return &Guard{active: make(map[string]time.Time)}
}

// Acquire registers the control as busy, fails if already registered
func (g *Guard) Acquire(control string) bool {
	g.lock.Lock()
	defer g.lock.Unlock()
	if _, found := g.active[control]; found {
		return false
	}
	g.active[control] = time.Now()
	return true
}

// Release unregisters the control. Safe to call multiple times
func (g *Guard) Release(control string) {
	g.lock.Lock()
	defer g.lock.Unlock()
	delete(g.active, control)
}

// Busy reports whether the control is registered and since when
func (g *Guard) Busy(control string) (since time.Time, ok bool) {
	g.lock.Lock()
	defer g.lock.Unlock()
	since, ok = g.active[control]
	return since, ok
}
