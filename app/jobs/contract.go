// Package jobs triggers backend scrape jobs and refreshes listings after them.
// Each job kind has a fixed Contract: request method, path and payload, and the refresh
// strategy applied once the backend accepted the job. A Trigger runs one control through
// Idle -> Triggering -> Succeeded|Failed -> Idle, Guard keeps a control from being
// activated twice at the same time.
package jobs

import (
	"net/http"
	"time"

	"github.com/umputun/scrapedash/app/enums"
)

// Contract describes how to start a job kind and how to refresh after it
type Contract struct {
	Kind      enums.JobKind
	Title     string // human name used in notices, i.e. "News"
	Label     string // default control label
	BusyLabel string // control label while the job is starting
	Method    string
	Path      string
	Payload   map[string]any // sent as JSON if not nil
	Success   enums.SuccessMode
	Refresh   enums.RefreshMode
	Delay     time.Duration // before a deferred poll or reload, also the poll fallback of immediate refresh
	Listing   enums.Listing // listing updated by the job, unused for reload
	Noun      string        // what count counts, i.e. "properties"
}

const defaultPollDelay = 2 * time.Second

// DefaultContracts returns contracts of the supported backend, keyed by kind.
// Classified scrape has backend variants answering with a bare 2xx or a text body, so any
// 2xx without an error flag is a success. News and facebook always answer with a status
// or success field and a response without one is treated as malformed.
func DefaultContracts() map[enums.JobKind]Contract {
	return map[enums.JobKind]Contract{
		enums.JobKindClassified: {
			Kind:      enums.JobKindClassified,
			Title:     "Classified ads",
			Label:     "Scrape classified",
			BusyLabel: "Scraping...",
			Method:    http.MethodPost,
			Path:      "/scrape",
			Success:   enums.SuccessModeHTTP,
			Refresh:   enums.RefreshModeImmediate,
			Delay:     defaultPollDelay,
			Listing:   enums.ListingProperties,
			Noun:      "properties",
		},
		enums.JobKindNews: {
			Kind:      enums.JobKindNews,
			Title:     "News",
			Label:     "Scrape news",
			BusyLabel: "Scraping...",
			Method:    http.MethodPost,
			Path:      "/scrape/news",
			Success:   enums.SuccessModeIndicator,
			Refresh:   enums.RefreshModeImmediate,
			Delay:     defaultPollDelay,
			Listing:   enums.ListingNews,
			Noun:      "news items",
		},
		enums.JobKindFacebook: {
			Kind:      enums.JobKindFacebook,
			Title:     "Facebook groups",
			Label:     "Scrape facebook",
			BusyLabel: "Scraping...",
			Method:    http.MethodGet,
			Path:      "/scrape/facebook",
			Success:   enums.SuccessModeIndicator,
			Refresh:   enums.RefreshModeReload,
			Delay:     5 * time.Second,
			Listing:   enums.ListingProperties,
			Noun:      "posts",
		},
	}
}

// JobRun is one in-flight activation of a control. Not persisted, gone once the control is released.
type JobRun struct {
	ID      string
	Kind    enums.JobKind
	Started time.Time
}
