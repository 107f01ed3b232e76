// Package session is the dashboard page. It owns the url list store, the listings refresher,
// the console view and the job triggers with their shared guard. Handlers are bound once in New
// and delegate to the store or to the trigger of their job kind.
package session

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/syncs"

	"github.com/umputun/scrapedash/app/backend"
	"github.com/umputun/scrapedash/app/enums"
	"github.com/umputun/scrapedash/app/jobs"
	"github.com/umputun/scrapedash/app/listing"
	"github.com/umputun/scrapedash/app/urls"
	"github.com/umputun/scrapedash/app/view"
)

// Backend is the scraping backend api used by the page
type Backend interface {
	urls.Remote
	listing.Source
	jobs.Starter
	SaveSearchCriteria(ctx context.Context, form url.Values) error
}

// Params for making a Session
type Params struct {
	Backend   Backend
	Console   *view.Console
	Contracts map[enums.JobKind]jobs.Contract // defaults if nil
	Notifiers []jobs.Notifier                 // receive every notice in addition to the console
	Repeater  listing.Repeater                // for listing reads, single attempt if nil
	Interval  time.Duration                   // of periodic properties refresh
}

// Session is a single dashboard page
type Session struct {
	backend   Backend
	console   *view.Console
	notifiers []jobs.Notifier
	store     *urls.Store
	refresher *listing.Refresher
	guard     *jobs.Guard
	triggers  map[enums.JobKind]*jobs.Trigger
	started   bool
}

// New makes a Session and binds its handlers
func New(p Params) *Session {
	if p.Contracts == nil {
		p.Contracts = jobs.DefaultContracts()
	}
	s := &Session{
		backend:   p.Backend,
		console:   p.Console,
		notifiers: p.Notifiers,
		store:     urls.New(p.Backend),
		guard:     jobs.NewGuard(),
		triggers:  map[enums.JobKind]*jobs.Trigger{},
	}
	s.refresher = listing.New(listing.Params{Source: p.Backend, Renderer: p.Console, Repeater: p.Repeater, Interval: p.Interval})
	s.store.OnChange(p.Console.RenderURLs)

	for _, kind := range enums.JobKindValues {
		c, ok := p.Contracts[kind]
		if !ok {
			c = jobs.DefaultContracts()[kind]
		}
		s.triggers[kind] = jobs.New(jobs.Params{
			Contract:  c,
			Starter:   p.Backend,
			Control:   p.Console.Button(kind.String(), c.Label, c.BusyLabel),
			Notifier:  s,
			Refresher: s.refresher,
			Reloader:  s,
			Guard:     s.guard,
		})
	}
	return s
}

// Store returns the url list store of the page
func (s *Session) Store() *urls.Store { return s.store }

// Trigger returns the trigger of the job kind
func (s *Session) Trigger(kind enums.JobKind) *jobs.Trigger { return s.triggers[kind] }

// Load fetches url lists and both listings concurrently and renders them.
// Failed parts keep their current view, errors are joined. Url lists with unsaved
// edits are kept as is.
func (s *Session) Load(ctx context.Context) error {
	st := time.Now()
	var mu sync.Mutex
	var errs []error
	collect := func(err error) {
		if err == nil {
			return
		}
		mu.Lock()
		errs = append(errs, err)
		mu.Unlock()
	}

	grp := syncs.NewSizedGroup(3)
	if s.store.Dirty() {
		log.Printf("[INFO] url lists have unsaved changes, not reloaded")
		s.Notify(enums.NoticeLevelInfo, "URL lists have unsaved changes, kept local edits")
	} else {
		grp.Go(func(context.Context) {
			_, _, err := s.store.Load(ctx)
			collect(err)
		})
	}
	grp.Go(func(context.Context) { collect(s.refresher.Refresh(ctx, enums.ListingProperties)) })
	grp.Go(func(context.Context) { collect(s.refresher.Refresh(ctx, enums.ListingNews)) })
	grp.Wait()

	if err := errors.Join(errs...); err != nil {
		return err
	}
	log.Printf("[DEBUG] page loaded in %v", time.Since(st).Truncate(time.Millisecond))
	return nil
}

// Reload is a full page reload
func (s *Session) Reload(ctx context.Context) error {
	log.Printf("[INFO] reload page")
	if err := s.Load(ctx); err != nil {
		s.Notify(enums.NoticeLevelError, "Reload failed: "+backend.UserMessage(err, "can't load dashboard data"))
		return fmt.Errorf("failed to reload: %w", err)
	}
	return nil
}

// Start the periodic properties refresh. Not safe to call concurrently with Close.
func (s *Session) Start(ctx context.Context) {
	if s.started {
		return
	}
	s.refresher.Start(ctx)
	s.started = true
}

// Wait for in-flight jobs and their scheduled refreshes
func (s *Session) Wait() {
	for _, t := range s.triggers {
		t.Wait()
	}
}

// Close stops the periodic refresh and clears notices
func (s *Session) Close() {
	if s.started {
		s.refresher.Stop()
	}
	s.console.Close()
}

// Notify shows a notice on the console and forwards it to extra notifiers
func (s *Session) Notify(level enums.NoticeLevel, text string) {
	s.console.Notify(level, text)
	for _, n := range s.notifiers {
		n.Notify(level, text)
	}
}

// OnScrapeClassified handles activation of the classified scrape control
func (s *Session) OnScrapeClassified(ctx context.Context) bool {
	return s.scrape(ctx, enums.JobKindClassified)
}

// OnScrapeNews handles activation of the news scrape control
func (s *Session) OnScrapeNews(ctx context.Context) bool {
	return s.scrape(ctx, enums.JobKindNews)
}

// OnScrapeFacebook handles activation of the facebook scrape control
func (s *Session) OnScrapeFacebook(ctx context.Context) bool {
	return s.scrape(ctx, enums.JobKindFacebook)
}

func (s *Session) scrape(ctx context.Context, kind enums.JobKind) bool {
	if !s.triggers[kind].Start(ctx) {
		s.Notify(enums.NoticeLevelInfo, fmt.Sprintf("%s scrape is already in progress", kind))
		return false
	}
	return true
}

// OnAddURL adds url to the list
func (s *Session) OnAddURL(list enums.ListName, u string) bool {
	if !s.store.Add(list, u) {
		s.Notify(enums.NoticeLevelInfo, fmt.Sprintf("url is empty or already in %s list", list))
		return false
	}
	return true
}

// OnRemoveURL removes the url at index from the list
func (s *Session) OnRemoveURL(list enums.ListName, index int) bool {
	if !s.store.Remove(list, index) {
		s.Notify(enums.NoticeLevelInfo, fmt.Sprintf("no url #%d in %s list", index+1, list))
		return false
	}
	return true
}

// OnSaveURLs saves both url lists to the backend
func (s *Session) OnSaveURLs(ctx context.Context) error {
	if err := s.store.Save(ctx); err != nil {
		log.Printf("[WARN] %v", err)
		s.Notify(enums.NoticeLevelError, "Failed to save URLs: "+
			backend.UserMessage(err, "server is not available")+", please try again")
		return err
	}
	s.Notify(enums.NoticeLevelSuccess, "URLs saved")
	return nil
}

// OnSubmitCriteria saves search criteria form and reloads the page on success
func (s *Session) OnSubmitCriteria(ctx context.Context, form url.Values) error {
	if err := s.backend.SaveSearchCriteria(ctx, form); err != nil {
		log.Printf("[WARN] failed to save search criteria: %v", err)
		s.Notify(enums.NoticeLevelError, "Failed to save search criteria: "+backend.UserMessage(err, "please try again"))
		return fmt.Errorf("failed to save search criteria: %w", err)
	}
	s.Notify(enums.NoticeLevelSuccess, "Search criteria saved")
	return s.Reload(ctx)
}
