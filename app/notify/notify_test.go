package notify

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-pkgz/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/scrapedash/app/enums"
	"github.com/umputun/scrapedash/app/notify/mocks"
)

func TestNewService_Empty(t *testing.T) {
	svc, err := NewService(Params{}, SendersParams{WebhookURLs: []string{"http://example.com/hook"}})
	require.NoError(t, err)
	assert.Nil(t, svc, "no level enabled")

	svc, err = NewService(Params{OnError: true}, SendersParams{})
	require.NoError(t, err)
	assert.Nil(t, svc, "no senders")

	svc, err = NewService(Params{OnError: true}, SendersParams{SlackToken: "token"})
	require.NoError(t, err)
	assert.Nil(t, svc, "slack without channels")
}

func TestNewService_Targets(t *testing.T) {
	svc, err := NewService(Params{OnError: true, Title: "scrapedash"}, SendersParams{
		WebhookURLs:   []string{"http://example.com/1", "http://example.com/2"},
		SlackToken:    "token",
		SlackChannels: []string{"alerts"},
		SMTP:          notify.SMTPParams{Host: "smtp.example.com", Port: 25},
		FromEmail:     "dash@example.com",
		ToEmails:      []string{"a@example.com"},
	})
	require.NoError(t, err)
	require.NotNil(t, svc)
	require.Len(t, svc.targets, 4)
	assert.Equal(t, "http://example.com/1", svc.targets[0].Address)
	assert.Equal(t, "slack:alerts", svc.targets[2].Address)
	assert.Equal(t, "mailto:a@example.com?from=dash%40example.com&subject=scrapedash", svc.targets[3].Address)
	assert.Equal(t, 10*time.Second, svc.Timeout)
}

func TestService_Send(t *testing.T) {
	ok := &mocks.DestinationMock{
		SendFunc:   func(context.Context, string, string) error { return nil },
		SchemaFunc: func() string { return "mailto" },
	}
	bad := &mocks.DestinationMock{
		SendFunc:   func(context.Context, string, string) error { return errors.New("mock error") },
		SchemaFunc: func() string { return "slack" },
	}
	s := New(Params{OnError: true, Title: "scrapedash"}, Target{Client: ok, Address: "mailto:a@example.com"},
		Target{Client: bad, Address: "slack:alerts"})

	err := s.Send(context.Background(), enums.NoticeLevelError, "News scrape failed: db down")
	assert.EqualError(t, err, "slack: mock error")
	require.Len(t, ok.SendCalls(), 1)
	assert.Equal(t, "mailto:a@example.com", ok.SendCalls()[0].Destination)
	assert.Equal(t, "scrapedash [error] News scrape failed: db down", ok.SendCalls()[0].Text)
	require.Len(t, bad.SendCalls(), 1, "failed target doesn't stop others")
	assert.Equal(t, "slack:alerts", bad.SendCalls()[0].Destination)
}

func TestService_NotifyLevels(t *testing.T) {
	var mu sync.Mutex
	var sent []string
	dest := &mocks.DestinationMock{
		SendFunc: func(_ context.Context, _, text string) error {
			mu.Lock()
			defer mu.Unlock()
			sent = append(sent, text)
			return nil
		},
		SchemaFunc: func() string { return "webhook" },
	}
	s := New(Params{OnError: true, OnSuccess: false}, Target{Client: dest, Address: "http://example.com"})

	s.Notify(enums.NoticeLevelError, "failed")
	s.Notify(enums.NoticeLevelSuccess, "done")
	s.Notify(enums.NoticeLevelInfo, "info")
	s.Wait()
	assert.Equal(t, []string{"[error] failed"}, sent)

	s.OnSuccess = true
	s.Notify(enums.NoticeLevelSuccess, "done")
	s.Wait()
	assert.Equal(t, []string{"[error] failed", "[success] done"}, sent)
}

func TestService_NotifyFailureLogged(t *testing.T) {
	dest := &mocks.DestinationMock{
		SendFunc:   func(context.Context, string, string) error { return errors.New("down") },
		SchemaFunc: func() string { return "telegram" },
	}
	s := New(Params{OnError: true, Timeout: time.Second}, Target{Client: dest, Address: "telegram:alerts"})
	s.Notify(enums.NoticeLevelError, "failed")
	s.Wait()
	assert.Len(t, dest.SendCalls(), 1)
}

func TestService_Webhook(t *testing.T) {
	received := make(chan string, 1)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		received <- string(body)
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	svc, err := NewService(Params{OnSuccess: true, Timeout: time.Second}, SendersParams{WebhookURLs: []string{ts.URL}})
	require.NoError(t, err)
	require.NotNil(t, svc)
	svc.Notify(enums.NoticeLevelSuccess, "News scrape completed, found 3 news items")
	svc.Wait()

	select {
	case body := <-received:
		assert.Contains(t, body, "found 3 news items")
	case <-time.After(time.Second):
		t.Fatal("webhook not called")
	}
}

func TestMailTo(t *testing.T) {
	assert.Equal(t, "mailto:a@example.com,b@example.com", MailTo("", []string{"a@example.com", "b@example.com"}, ""))
	assert.Equal(t, "mailto:a@example.com?from=f%40example.com&subject=Scrape+jobs",
		MailTo("f@example.com", []string{"a@example.com"}, "Scrape jobs"))
}
