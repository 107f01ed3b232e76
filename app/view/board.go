package view

import (
	"fmt"
	"io"
	"slices"
	"sync"
	"time"

	"github.com/fatih/color"

	"github.com/umputun/scrapedash/app/enums"
)

// NoticeTTL is the time a notice stays on the board
const NoticeTTL = 5 * time.Second

// Notice is a single user notification
type Notice struct {
	ID      int
	Level   enums.NoticeLevel
	Text    string
	Created time.Time
}

// Board shows notices and dismisses each of them after its ttl
type Board struct {
	out    io.Writer
	ttl    time.Duration
	colors map[enums.NoticeLevel]*color.Color

	mu      sync.Mutex
	seq     int
	notices []Notice
	timers  map[int]*time.Timer
}

// NewBoard makes a Board printing to out. Zero ttl means NoticeTTL.
func NewBoard(out io.Writer, ttl time.Duration, colors bool) *Board {
	if ttl <= 0 {
		ttl = NoticeTTL
	}
	b := &Board{out: out, ttl: ttl, timers: map[int]*time.Timer{}, colors: map[enums.NoticeLevel]*color.Color{
		enums.NoticeLevelSuccess: color.New(color.FgGreen),
		enums.NoticeLevelError:   color.New(color.FgRed, color.Bold),
		enums.NoticeLevelInfo:    color.New(color.FgCyan),
	}}
	for _, c := range b.colors {
		if colors {
			c.EnableColor()
			continue
		}
		c.DisableColor()
	}
	return b
}

// Notify shows a notice and schedules its dismissal
func (b *Board) Notify(level enums.NoticeLevel, text string) {
	b.mu.Lock()
	b.seq++
	n := Notice{ID: b.seq, Level: level, Text: text, Created: time.Now()}
	b.notices = append(b.notices, n)
	b.timers[n.ID] = time.AfterFunc(b.ttl, func() { b.Dismiss(n.ID) })
	b.mu.Unlock()

	c, ok := b.colors[level]
	if !ok {
		c = b.colors[enums.NoticeLevelInfo]
	}
	_, _ = fmt.Fprintln(b.out, c.Sprintf("%-9s %s", "["+level.String()+"]", text))
}

// Dismiss removes the notice. Safe to call for a dismissed one.
func (b *Board) Dismiss(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if t, ok := b.timers[id]; ok {
		t.Stop()
		delete(b.timers, id)
	}
	b.notices = slices.DeleteFunc(b.notices, func(n Notice) bool { return n.ID == id })
}

// Active returns notices not dismissed yet, oldest first
func (b *Board) Active() []Notice {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.notices)
}

// Close stops pending dismissals and clears the board
func (b *Board) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for id, t := range b.timers {
		t.Stop()
		delete(b.timers, id)
	}
	b.notices = nil
}
