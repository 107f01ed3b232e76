package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/routegroup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/natefinch/lumberjack.v2"
)

func Test_makeHostName(t *testing.T) {
	opts.Notify.HostName = "test"
	assert.Equal(t, "test", makeHostName())

	opts.Notify.HostName = ""
	exp, err := os.Hostname()
	require.NoError(t, err)
	assert.Equal(t, exp, makeHostName())
}

func Test_makeNotifier(t *testing.T) {
	defer func() { opts.Notify.EnabledError, opts.Notify.EnabledSuccess, opts.Notify.Webhooks = false, false, nil }()
	opts.Notify.EnabledSuccess, opts.Notify.EnabledError = false, false
	opts.Notify.FromEmail = ""
	opts.Notify.Webhooks = []string{"http://example.com/hook"}
	notif, err := makeNotifier()
	require.NoError(t, err)
	assert.Nil(t, notif)

	opts.Notify.EnabledError = true
	notif, err = makeNotifier()
	require.NoError(t, err)
	require.NotNil(t, notif)
	assert.Equal(t, "scrapedash@"+makeHostName(), opts.Notify.FromEmail,
		"side effect of creating notifier with empty From "+
			"is setting the From based on hostname")
}

func Test_setupLogsWithLogsDisabled(t *testing.T) {
	opts.Log.Enabled = false
	assert.Equal(t, os.Stderr, setupLogs())
}

func Test_setupLogsToFile(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "")
	require.NoError(t, err)
	defer os.Remove(tmpfile.Name())

	opts.Log.Enabled = true
	opts.Log.Filename = tmpfile.Name()
	opts.Log.MaxSize = 100
	opts.Log.MaxBackups = 7
	opts.Log.MaxAge = 0
	opts.Log.EnabledCompress = false
	defer func() { opts.Log.Enabled = false }()

	out := setupLogs()
	assert.IsType(t, &lumberjack.Logger{}, out)

	logger := out.(*lumberjack.Logger)
	assert.Equal(t, tmpfile.Name(), logger.Filename)
	assert.Equal(t, 100, logger.MaxSize)
	assert.Equal(t, 7, logger.MaxBackups)
	assert.Equal(t, 0, logger.MaxAge)
	assert.False(t, logger.Compress)
}

func Test_validateBaseURL(t *testing.T) {
	tests := []struct {
		name, input, want string
		wantErr           bool
	}{
		{"host only", "http://localhost:8000", "http://localhost:8000", false},
		{"trailing slash", "http://localhost:8000/", "http://localhost:8000", false},
		{"with path", "https://example.com/dash/", "https://example.com/dash", false},
		{"spaces", "  http://example.com ", "http://example.com", false},
		{"empty string", "", "", true},
		{"no scheme", "localhost:8000", "", true},
		{"ftp scheme", "ftp://example.com", "", true},
		{"no host", "http://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := validateBaseURL(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_makeRepeater(t *testing.T) {
	opts.Repeater.Attempts = 3
	opts.Repeater.Duration = time.Millisecond
	opts.Repeater.Factor = 1
	defer func() { opts.Repeater.Attempts = 1 }()

	calls := 0
	err := makeRepeater().Do(context.Background(), func() error {
		calls++
		if calls < 3 {
			return assert.AnError
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

type testBackend struct {
	mu      sync.Mutex
	lists   map[string][]string
	scrapes int
	form    map[string][]string
}

func startBackend(t *testing.T) *testBackend {
	t.Helper()
	b := &testBackend{lists: map[string][]string{"property_urls": {"http://a.test"}, "news_urls": {}}}
	router := routegroup.New(http.NewServeMux())
	router.HandleFunc("GET /api/properties", func(w http.ResponseWriter, _ *http.Request) {
		rest.RenderJSON(w, rest.JSON{"properties": []rest.JSON{{"title": "Loft", "price": "250000"}}})
	})
	router.HandleFunc("GET /api/news", func(w http.ResponseWriter, _ *http.Request) {
		rest.RenderJSON(w, rest.JSON{"news_items": []rest.JSON{{"title": "Rates up"}}})
	})
	router.HandleFunc("GET /api/urls", func(w http.ResponseWriter, _ *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		rest.RenderJSON(w, b.lists)
	})
	router.HandleFunc("POST /api/urls", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		if err := json.NewDecoder(r.Body).Decode(&b.lists); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		rest.RenderJSON(w, rest.JSON{"success": true})
	})
	router.HandleFunc("POST /scrape/news", func(w http.ResponseWriter, _ *http.Request) {
		b.mu.Lock()
		b.scrapes++
		b.mu.Unlock()
		rest.RenderJSON(w, rest.JSON{"status": "success", "count": 2})
	})
	router.HandleFunc("POST /search-criteria", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		b.mu.Lock()
		b.form = r.PostForm
		b.mu.Unlock()
	})
	ts := httptest.NewServer(router)
	t.Cleanup(ts.Close)

	opts.Backend = ts.URL + "/"
	opts.Timeout = time.Second
	opts.NoColor = true
	opts.Interval = time.Minute
	opts.Repeater.Attempts = 1
	return b
}

func Test_runListings(t *testing.T) {
	startBackend(t)
	out := &bytes.Buffer{}
	require.NoError(t, run(context.Background(), "listings", nil, out))
	assert.Contains(t, out.String(), "Loft")
	assert.Contains(t, out.String(), "Rates up")
	assert.Contains(t, out.String(), "http://a.test")
}

func Test_runScrape(t *testing.T) {
	b := startBackend(t)
	out := &bytes.Buffer{}

	opts.Scrape.Args.Kind = "news"
	require.NoError(t, run(context.Background(), "scrape", nil, out))
	assert.Contains(t, out.String(), "News scrape completed, found 2 news items")
	assert.Contains(t, out.String(), "Rates up", "news refreshed after the job")
	assert.Equal(t, 1, b.scrapes)

	opts.Scrape.Args.Kind = "twitter"
	assert.Error(t, run(context.Background(), "scrape", nil, out))

	opts.Scrape.Args.Kind = "facebook"
	assert.Error(t, run(context.Background(), "scrape", nil, out), "no such route on the backend")
}

func Test_runURLs(t *testing.T) {
	b := startBackend(t)
	opts.URLs.AddNews = []string{"http://n.test"}
	opts.URLs.RemoveProperty = []int{1}
	opts.URLs.Save = true
	defer func() { opts.URLs.AddNews, opts.URLs.RemoveProperty, opts.URLs.Save = nil, nil, false }()

	out := &bytes.Buffer{}
	require.NoError(t, run(context.Background(), "urls", nil, out))
	assert.Contains(t, out.String(), "URLs saved")
	b.mu.Lock()
	defer b.mu.Unlock()
	assert.Equal(t, map[string][]string{"property_urls": {}, "news_urls": {"http://n.test"}}, b.lists)
}

func Test_runURLsRemoveMany(t *testing.T) {
	b := startBackend(t)
	b.lists["property_urls"] = []string{"http://a.test", "http://b.test", "http://c.test", "http://d.test"}
	opts.URLs.RemoveProperty = []int{1, 2, 2, 4}
	opts.URLs.Save = true
	defer func() { opts.URLs.RemoveProperty, opts.URLs.Save = nil, false }()

	require.NoError(t, run(context.Background(), "urls", nil, &bytes.Buffer{}))
	b.mu.Lock()
	defer b.mu.Unlock()
	assert.Equal(t, []string{"http://c.test"}, b.lists["property_urls"])
}

func Test_removalOrder(t *testing.T) {
	assert.Equal(t, []int{3, 2, 1}, removalOrder([]int{1, 2, 3}))
	assert.Equal(t, []int{5, 2}, removalOrder([]int{2, 5, 2}))
	assert.Empty(t, removalOrder(nil))
}

func Test_runCriteria(t *testing.T) {
	b := startBackend(t)
	opts.Criteria.Fields = []string{"location=north", "max_price=300000"}
	defer func() { opts.Criteria.Fields = nil }()

	out := &bytes.Buffer{}
	require.NoError(t, run(context.Background(), "criteria", nil, out))
	assert.Contains(t, out.String(), "Search criteria saved")
	b.mu.Lock()
	assert.Equal(t, "north", b.form["location"][0])
	b.mu.Unlock()

	opts.Criteria.Fields = []string{"bad"}
	assert.Error(t, run(context.Background(), "criteria", nil, out))
}

func Test_runInteractive(t *testing.T) {
	startBackend(t)
	out := &bytes.Buffer{}
	in := strings.NewReader("urls\nquit\n")
	require.NoError(t, run(context.Background(), "run", in, out))
	assert.Contains(t, out.String(), "[Scrape classified] [Scrape news] [Scrape facebook]")
	assert.Contains(t, out.String(), "http://a.test")
}

func Test_runBadBackend(t *testing.T) {
	opts.Backend = "localhost"
	err := run(context.Background(), "listings", nil, &bytes.Buffer{})
	assert.ErrorContains(t, err, "invalid backend url")
}
