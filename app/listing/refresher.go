// Package listing fetches properties and news listings from the backend and renders them.
// Every render is a full replace of the listing. Periodic and job-triggered refreshes are not
// coordinated, the last response to arrive wins.
package listing

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater"
	"github.com/go-pkgz/repeater/strategy"
	"github.com/robfig/cron/v3"

	"github.com/umputun/scrapedash/app/backend"
	"github.com/umputun/scrapedash/app/enums"
)

//go:generate moq -out mocks/source.go -pkg mocks -skip-ensure -fmt goimports . Source
//go:generate moq -out mocks/renderer.go -pkg mocks -skip-ensure -fmt goimports . Renderer
//go:generate moq -out mocks/cron.go -pkg mocks -skip-ensure -fmt goimports . Cron

// DefaultInterval of the periodic properties refresh
const DefaultInterval = time.Minute

// Source provides listings
type Source interface {
	Properties(ctx context.Context) ([]backend.Property, error)
	News(ctx context.Context) ([]backend.NewsItem, error)
}

// Renderer shows listings, each call replaces the whole listing
type Renderer interface {
	RenderProperties(items []backend.Property)
	RenderNews(items []backend.NewsItem)
}

// Repeater repeats failed function
type Repeater interface {
	Do(ctx context.Context, fun func() error, errors ...error) (err error)
}

// Cron schedules the periodic refresh
type Cron interface {
	Start()
	Stop() context.Context
	Schedule(schedule cron.Schedule, cmd cron.Job) cron.EntryID
}

// Params for making a Refresher. Only Source and Renderer are required.
type Params struct {
	Source   Source
	Renderer Renderer
	Repeater Repeater      // single attempt if not set
	Cron     Cron          // robfig/cron if not set
	Interval time.Duration // of periodic refresh, DefaultInterval if not set
}

// Refresher fetches and renders listings
type Refresher struct {
	Params
}

// New makes a Refresher
func New(p Params) *Refresher {
	if p.Repeater == nil {
		p.Repeater = repeater.New(&strategy.Once{})
	}
	if p.Cron == nil {
		p.Cron = cron.New()
	}
	if p.Interval <= 0 {
		p.Interval = DefaultInterval
	}
	return &Refresher{Params: p}
}

// Refresh fetches the listing and renders it. On failure the rendered listing is left as is.
func (r *Refresher) Refresh(ctx context.Context, listing enums.Listing) error {
	st := time.Now()
	var count int
	var err error
	switch listing {
	case enums.ListingNews:
		var items []backend.NewsItem
		err = r.Repeater.Do(ctx, func() (e error) {
			items, e = r.Source.News(ctx)
			return e
		})
		if err == nil {
			r.Renderer.RenderNews(items)
			count = len(items)
		}
	default:
		var items []backend.Property
		err = r.Repeater.Do(ctx, func() (e error) {
			items, e = r.Source.Properties(ctx)
			return e
		})
		if err == nil {
			r.Renderer.RenderProperties(items)
			count = len(items)
		}
	}

	if err != nil {
		log.Printf("[WARN] can't refresh %s, keeping current: %v", listing, err)
		return fmt.Errorf("failed to refresh %s: %w", listing, err)
	}
	log.Printf("[DEBUG] refreshed %s, %d items in %v", listing, count, time.Since(st).Truncate(time.Millisecond))
	return nil
}

// Render renders listing embedded in a job response. Unexpected payload renders an empty listing.
func (r *Refresher) Render(listing enums.Listing, payload json.RawMessage) {
	if listing == enums.ListingNews {
		r.Renderer.RenderNews(backend.DecodeNews(payload))
		return
	}
	r.Renderer.RenderProperties(backend.DecodeProperties(payload))
}

// Start the periodic properties refresh, non-blocking
func (r *Refresher) Start(ctx context.Context) {
	r.Cron.Schedule(cron.Every(r.Interval), cron.FuncJob(func() {
		if ctx.Err() != nil {
			return
		}
		_ = r.Refresh(ctx, enums.ListingProperties)
	}))
	r.Cron.Start()
	log.Printf("[INFO] periodic %s refresh every %v", enums.ListingProperties, r.Interval)
}

// Stop the periodic refresh and wait for a running one to complete
func (r *Refresher) Stop() {
	<-r.Cron.Stop().Done()
	log.Printf("[DEBUG] periodic refresh stopped")
}
