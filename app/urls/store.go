// Package urls keeps the two scrape-target url lists in memory and syncs them with the backend.
// The in-memory lists are the source of truth for the view until saved, the backend is
// authoritative only right after a successful load.
package urls

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/scrapedash/app/backend"
	"github.com/umputun/scrapedash/app/enums"
)

//go:generate moq -out mocks/remote.go -pkg mocks -skip-ensure -fmt goimports . Remote

// Remote is the backend store of url lists
type Remote interface {
	URLs(ctx context.Context) (backend.URLLists, error)
	SaveURLs(ctx context.Context, lists backend.URLLists) error
}

// SaveError is returned by Store.Save. Local state is unchanged and the save can be retried.
type SaveError struct {
	Err error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("failed to save url lists: %v", e.Err)
}

func (e *SaveError) Unwrap() error { return e.Err }

// Store holds property and news url lists. Safe for concurrent use.
type Store struct {
	remote Remote

	mu       sync.Mutex
	property []string
	news     []string
	rev      int // bumped by every local edit
	syncRev  int // rev matching the backend after the last load or save
	onChange []func(lists backend.URLLists)
}

// New makes an empty Store backed by remote
func New(remote Remote) *Store {
	return &Store{remote: remote, property: []string{}, news: []string{}}
}

// OnChange subscribes fn to state changes. fn gets a copy of both lists after every
// successful Add, Remove and Load.
func (s *Store) OnChange(fn func(lists backend.URLLists)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = append(s.onChange, fn)
}

// Load fetches both lists from the backend and replaces local state. On failure
// local state is left as is and the error is returned.
func (s *Store) Load(ctx context.Context) (property, news []string, err error) {
	lists, err := s.remote.URLs(ctx)
	if err != nil {
		log.Printf("[WARN] failed to load url lists, keeping current: %v", err)
		s.mu.Lock()
		defer s.mu.Unlock()
		return slices.Clone(s.property), slices.Clone(s.news), fmt.Errorf("failed to load url lists: %w", err)
	}

	s.mu.Lock()
	s.property = nonNil(slices.Clone(lists.Property))
	s.news = nonNil(slices.Clone(lists.News))
	s.syncRev = s.rev
	snapshot := s.snapshot()
	s.mu.Unlock()

	log.Printf("[DEBUG] loaded url lists, property:%d, news:%d", len(snapshot.Property), len(snapshot.News))
	s.notify(snapshot)
	return slices.Clone(snapshot.Property), slices.Clone(snapshot.News), nil
}

// Add appends trimmed url to the list. Empty and duplicate urls are ignored and false returned.
func (s *Store) Add(list enums.ListName, url string) bool {
	url = strings.TrimSpace(url)
	if url == "" {
		return false
	}

	s.mu.Lock()
	entries := s.entries(list)
	if slices.Contains(*entries, url) {
		s.mu.Unlock()
		log.Printf("[DEBUG] %s url %q already listed", list, url)
		return false
	}
	*entries = append(*entries, url)
	s.rev++
	snapshot := s.snapshot()
	s.mu.Unlock()

	s.notify(snapshot)
	return true
}

// Remove deletes the entry at index. Out of range index is ignored and false returned.
func (s *Store) Remove(list enums.ListName, index int) bool {
	s.mu.Lock()
	entries := s.entries(list)
	if index < 0 || index >= len(*entries) {
		s.mu.Unlock()
		log.Printf("[DEBUG] %s url index %d out of range", list, index)
		return false
	}
	*entries = slices.Delete(*entries, index, index+1)
	s.rev++
	snapshot := s.snapshot()
	s.mu.Unlock()

	s.notify(snapshot)
	return true
}

// Save sends both lists as is to the backend, replacing its state. Failures are
// returned as *SaveError and not retried.
func (s *Store) Save(ctx context.Context) error {
	s.mu.Lock()
	snapshot, rev := s.snapshot(), s.rev
	s.mu.Unlock()
	if err := s.remote.SaveURLs(ctx, snapshot); err != nil {
		return &SaveError{Err: err}
	}
	s.mu.Lock()
	s.syncRev = max(s.syncRev, rev)
	s.mu.Unlock()
	log.Printf("[INFO] saved url lists, property:%d, news:%d", len(snapshot.Property), len(snapshot.News))
	return nil
}

// Dirty reports local edits not saved to the backend yet
func (s *Store) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rev != s.syncRev
}

// List returns a copy of the named list
func (s *Store) List(list enums.ListName) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(*s.entries(list))
}

// Snapshot returns a copy of both lists
func (s *Store) Snapshot() backend.URLLists {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// snapshot copies state, caller holds the lock
func (s *Store) snapshot() backend.URLLists {
	return backend.URLLists{Property: slices.Clone(s.property), News: slices.Clone(s.news)}
}

// entries returns the list storage for the name, caller holds the lock
func (s *Store) entries(list enums.ListName) *[]string {
	if list == enums.ListNameNews {
		return &s.news
	}
	return &s.property
}

func (s *Store) notify(lists backend.URLLists) {
	s.mu.Lock()
	subs := slices.Clone(s.onChange)
	s.mu.Unlock()
	for _, fn := range subs {
		fn(backend.URLLists{Property: slices.Clone(lists.Property), News: slices.Clone(lists.News)})
	}
}

func nonNil(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
