// Package view renders the dashboard to a console. Console keeps the current projection of
// listings, url lists and controls. Every render replaces the whole section, so repeated or
// overlapping renders leave the view consistent with the last one.
package view

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"

	"github.com/umputun/scrapedash/app/backend"
	"github.com/umputun/scrapedash/app/enums"
)

// Console prints dashboard sections to a writer
type Console struct {
	out   io.Writer
	board *Board

	mu      sync.Mutex
	props   []backend.Property
	news    []backend.NewsItem
	urls    backend.URLLists
	buttons []*Button
}

// NewConsole makes a Console printing to out, colors enable colored notices
func NewConsole(out io.Writer, colors bool) *Console {
	w := &syncWriter{w: out}
	return &Console{out: w, board: NewBoard(w, NoticeTTL, colors)}
}

// Board returns the notice board of the console
func (c *Console) Board() *Board { return c.board }

// Notify shows a notice on the board
func (c *Console) Notify(level enums.NoticeLevel, text string) {
	c.board.Notify(level, text)
}

// Button adds a control to the console
func (c *Console) Button(name, label, busyLabel string) *Button {
	b := &Button{Name: name, Label: label, BusyLabel: busyLabel}
	b.onChange = func(b *Button) {
		state := "enabled"
		if !b.Enabled() {
			state = "disabled"
		}
		c.Printf("[%s] %s\n", b.Text(), state)
	}
	c.mu.Lock()
	c.buttons = append(c.buttons, b)
	c.mu.Unlock()
	return b
}

// RenderProperties replaces the properties listing
func (c *Console) RenderProperties(items []backend.Property) {
	c.mu.Lock()
	c.props = slices.Clone(items)
	c.mu.Unlock()
	c.Printf("%s", PropertiesTable(items))
}

// RenderNews replaces the news listing
func (c *Console) RenderNews(items []backend.NewsItem) {
	c.mu.Lock()
	c.news = slices.Clone(items)
	c.mu.Unlock()
	c.Printf("%s", NewsTable(items))
}

// RenderURLs replaces both url lists
func (c *Console) RenderURLs(lists backend.URLLists) {
	c.mu.Lock()
	c.urls = backend.URLLists{Property: slices.Clone(lists.Property), News: slices.Clone(lists.News)}
	c.mu.Unlock()
	c.Printf("%s", URLsTable(lists))
}

// Properties returns the rendered properties listing
func (c *Console) Properties() []backend.Property {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.props)
}

// News returns the rendered news listing
func (c *Console) News() []backend.NewsItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.news)
}

// URLs returns the rendered url lists
func (c *Console) URLs() backend.URLLists {
	c.mu.Lock()
	defer c.mu.Unlock()
	return backend.URLLists{Property: slices.Clone(c.urls.Property), News: slices.Clone(c.urls.News)}
}

// Controls returns a line with all controls and their state
func (c *Console) Controls() string {
	c.mu.Lock()
	buttons := slices.Clone(c.buttons)
	c.mu.Unlock()
	res := make([]string, 0, len(buttons))
	for _, b := range buttons {
		mark := ""
		if !b.Enabled() {
			mark = " (busy)"
		}
		res = append(res, fmt.Sprintf("[%s]%s", b.Text(), mark))
	}
	return strings.Join(res, " ")
}

// Printf writes formatted text to the console
func (c *Console) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.out, format, args...)
}

// Close clears pending notices
func (c *Console) Close() {
	c.board.Close()
}

// syncWriter serializes writes from renders, notices and controls
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}
