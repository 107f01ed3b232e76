package urls

import (
	"context"
	"errors"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/scrapedash/app/backend"
	"github.com/umputun/scrapedash/app/enums"
	"github.com/umputun/scrapedash/app/urls/mocks"
)

// memRemote is a stable in-memory backend store
type memRemote struct {
	mu    sync.Mutex
	lists backend.URLLists
}

func (m *memRemote) URLs(context.Context) (backend.URLLists, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lists, nil
}

func (m *memRemote) SaveURLs(_ context.Context, lists backend.URLLists) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lists = lists
	return nil
}

func TestStore_Add(t *testing.T) {
	s := New(&mocks.RemoteMock{})

	assert.True(t, s.Add(enums.ListNameProperty, "http://a.test"))
	assert.Equal(t, []string{"http://a.test"}, s.List(enums.ListNameProperty))

	assert.False(t, s.Add(enums.ListNameProperty, "http://a.test"), "duplicate is a no-op")
	assert.False(t, s.Add(enums.ListNameProperty, "  http://a.test \t"), "trimmed duplicate is a no-op")
	assert.Equal(t, []string{"http://a.test"}, s.List(enums.ListNameProperty))

	assert.False(t, s.Add(enums.ListNameProperty, ""))
	assert.False(t, s.Add(enums.ListNameProperty, "   "))
	assert.Len(t, s.List(enums.ListNameProperty), 1)

	assert.True(t, s.Add(enums.ListNameNews, "http://a.test"), "lists are independent")
	assert.True(t, s.Add(enums.ListNameNews, " http://b.test "))
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, s.List(enums.ListNameNews))
	assert.Equal(t, []string{"http://a.test"}, s.List(enums.ListNameProperty))
}

func TestStore_Remove(t *testing.T) {
	s := New(&mocks.RemoteMock{})
	s.Add(enums.ListNameProperty, "http://a.test")
	s.Add(enums.ListNameProperty, "http://b.test")

	assert.False(t, s.Remove(enums.ListNameProperty, 5))
	assert.False(t, s.Remove(enums.ListNameProperty, 2))
	assert.False(t, s.Remove(enums.ListNameProperty, -1))
	assert.False(t, s.Remove(enums.ListNameNews, 0))
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, s.List(enums.ListNameProperty))

	s.Add(enums.ListNameProperty, "http://c.test")
	assert.True(t, s.Remove(enums.ListNameProperty, 1))
	assert.Equal(t, []string{"http://a.test", "http://c.test"}, s.List(enums.ListNameProperty))
}

func TestStore_OrderPreserved(t *testing.T) {
	// random add/remove sequences keep surviving entries in insertion order
	rnd := rand.New(rand.NewSource(42)) //nolint:gosec // deterministic test data
	for round := 0; round < 50; round++ {
		s := New(&mocks.RemoteMock{})
		var model []string
		for step := 0; step < 40; step++ {
			if rnd.Intn(3) > 0 {
				url := "http://u.test/" + string(rune('a'+rnd.Intn(15)))
				added := s.Add(enums.ListNameNews, url)
				if !contains(model, url) {
					require.True(t, added)
					model = append(model, url)
				} else {
					require.False(t, added)
				}
				continue
			}
			idx := rnd.Intn(len(model)+2) - 1
			removed := s.Remove(enums.ListNameNews, idx)
			if idx >= 0 && idx < len(model) {
				require.True(t, removed)
				model = append(model[:idx:idx], model[idx+1:]...)
			} else {
				require.False(t, removed)
			}
		}
		if model == nil {
			model = []string{}
		}
		assert.Equal(t, model, s.List(enums.ListNameNews))
	}
}

func TestStore_Load(t *testing.T) {
	t.Run("replaces both lists", func(t *testing.T) {
		remote := &mocks.RemoteMock{URLsFunc: func(context.Context) (backend.URLLists, error) {
			return backend.URLLists{Property: []string{"p1", "p2"}, News: []string{"n1"}}, nil
		}}
		s := New(remote)
		s.Add(enums.ListNameProperty, "local")

		prop, news, err := s.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"p1", "p2"}, prop)
		assert.Equal(t, []string{"n1"}, news)
		assert.Equal(t, []string{"p1", "p2"}, s.List(enums.ListNameProperty))
		assert.Len(t, remote.URLsCalls(), 1)
	})

	t.Run("failure keeps prior state", func(t *testing.T) {
		remote := &mocks.RemoteMock{URLsFunc: func(context.Context) (backend.URLLists, error) {
			return backend.URLLists{}, &backend.DecodeError{Op: "load urls", Err: errors.New("bad json")}
		}}
		s := New(remote)
		prop, news, err := s.Load(context.Background())
		require.Error(t, err)
		var decErr *backend.DecodeError
		assert.ErrorAs(t, err, &decErr)
		assert.Empty(t, prop, "empty on first load")
		assert.Empty(t, news)

		s.Add(enums.ListNameProperty, "keep")
		s.Add(enums.ListNameNews, "keep-news")
		prop, news, err = s.Load(context.Background())
		require.Error(t, err)
		assert.Equal(t, []string{"keep"}, prop)
		assert.Equal(t, []string{"keep-news"}, news)
	})

	t.Run("malformed list keeps both lists", func(t *testing.T) {
		body := `{"property_urls":["http://a.test"],"news_urls":["http://n.test"]}`
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(body))
		}))
		defer ts.Close()
		s := New(backend.New(backend.Params{BaseURL: ts.URL}))
		_, _, err := s.Load(context.Background())
		require.NoError(t, err)

		body = `{"property_urls":["http://b.test"],"news_urls":{"oops":1}}`
		prop, news, err := s.Load(context.Background())
		var decErr *backend.DecodeError
		require.ErrorAs(t, err, &decErr)
		assert.Equal(t, []string{"http://a.test"}, prop)
		assert.Equal(t, []string{"http://n.test"}, news)
		assert.Equal(t, []string{"http://a.test"}, s.List(enums.ListNameProperty))
		assert.Equal(t, []string{"http://n.test"}, s.List(enums.ListNameNews))
	})

	t.Run("nil lists from remote", func(t *testing.T) {
		remote := &mocks.RemoteMock{URLsFunc: func(context.Context) (backend.URLLists, error) {
			return backend.URLLists{}, nil
		}}
		s := New(remote)
		s.Add(enums.ListNameNews, "old")
		_, _, err := s.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{}, s.List(enums.ListNameNews))
	})
}

func TestStore_Save(t *testing.T) {
	t.Run("sends lists as is", func(t *testing.T) {
		remote := &mocks.RemoteMock{SaveURLsFunc: func(context.Context, backend.URLLists) error { return nil }}
		s := New(remote)
		s.Add(enums.ListNameProperty, "http://z.test")
		s.Add(enums.ListNameProperty, "http://a.test")

		require.NoError(t, s.Save(context.Background()))
		require.Len(t, remote.SaveURLsCalls(), 1)
		assert.Equal(t, backend.URLLists{Property: []string{"http://z.test", "http://a.test"}, News: []string{}},
			remote.SaveURLsCalls()[0].Lists, "no sorting, full pair")
	})

	t.Run("failure is a SaveError and state unchanged", func(t *testing.T) {
		remote := &mocks.RemoteMock{SaveURLsFunc: func(context.Context, backend.URLLists) error {
			return &backend.ServerError{Op: "save urls", Status: 500, Message: "db down"}
		}}
		s := New(remote)
		s.Add(enums.ListNameNews, "http://n.test")

		err := s.Save(context.Background())
		var saveErr *SaveError
		require.ErrorAs(t, err, &saveErr)
		var srvErr *backend.ServerError
		assert.ErrorAs(t, err, &srvErr)
		assert.Equal(t, []string{"http://n.test"}, s.List(enums.ListNameNews))
		assert.Len(t, remote.SaveURLsCalls(), 1, "no automatic retry")
	})
}

func TestStore_RoundTrip(t *testing.T) {
	remote := &memRemote{}
	s := New(remote)
	s.Add(enums.ListNameProperty, "http://p.test/2")
	s.Add(enums.ListNameProperty, "http://p.test/1")
	s.Add(enums.ListNameNews, "http://n.test")
	require.NoError(t, s.Save(context.Background()))

	other := New(remote)
	prop, news, err := other.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"http://p.test/2", "http://p.test/1"}, prop)
	assert.Equal(t, []string{"http://n.test"}, news)
}

func TestStore_Dirty(t *testing.T) {
	remote := &memRemote{lists: backend.URLLists{Property: []string{"http://p.test"}, News: []string{}}}
	s := New(remote)
	assert.False(t, s.Dirty())

	s.Add(enums.ListNameNews, "http://n.test")
	assert.True(t, s.Dirty(), "add marks local edits")
	require.NoError(t, s.Save(context.Background()))
	assert.False(t, s.Dirty(), "save syncs")

	assert.False(t, s.Remove(enums.ListNameNews, 5))
	assert.False(t, s.Add(enums.ListNameNews, "http://n.test"))
	assert.False(t, s.Dirty(), "no-op edits keep it clean")

	s.Remove(enums.ListNameProperty, 0)
	assert.True(t, s.Dirty(), "remove marks local edits")
	_, _, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.False(t, s.Dirty(), "load replaces local edits")

	failing := New(&mocks.RemoteMock{SaveURLsFunc: func(context.Context, backend.URLLists) error { return errors.New("down") }})
	failing.Add(enums.ListNameProperty, "http://x.test")
	require.Error(t, failing.Save(context.Background()))
	assert.True(t, failing.Dirty(), "failed save keeps edits unsynced")
}

func TestStore_OnChange(t *testing.T) {
	remote := &mocks.RemoteMock{URLsFunc: func(context.Context) (backend.URLLists, error) {
		return backend.URLLists{Property: []string{"p"}}, nil
	}}
	s := New(remote)
	var views []backend.URLLists
	s.OnChange(func(lists backend.URLLists) { views = append(views, lists) })

	s.Add(enums.ListNameNews, "n1")
	s.Add(enums.ListNameNews, "n1") // no-op, no render
	s.Remove(enums.ListNameNews, 3) // no-op, no render
	s.Remove(enums.ListNameNews, 0)
	_, _, err := s.Load(context.Background())
	require.NoError(t, err)

	require.Len(t, views, 3)
	assert.Equal(t, []string{"n1"}, views[0].News)
	assert.Equal(t, []string{}, views[1].News)
	assert.Equal(t, []string{"p"}, views[2].Property)
	assert.Equal(t, s.Snapshot(), views[2], "view matches state after every mutation")
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
