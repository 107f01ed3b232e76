// Package notify forwards job notices to external destinations: email, slack, telegram and
// webhooks, all delivered by go-pkgz/notify clients.
package notify

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/notify"

	"github.com/umputun/scrapedash/app/enums"
)

//go:generate moq -out mocks/destination.go -pkg mocks -skip-ensure -fmt goimports . Destination

// Destination is a notification client, implemented by go-pkgz/notify clients
type Destination interface {
	Schema() string
	Send(ctx context.Context, destination, text string) error
}

// Target is a destination client with the address to send to
type Target struct {
	Client  Destination
	Address string
}

// Params for the service
type Params struct {
	OnError   bool
	OnSuccess bool
	Timeout   time.Duration
	Title     string // prefix of each message, email subject
}

// SendersParams configures go-pkgz/notify clients and their addresses
type SendersParams struct {
	WebhookURLs      []string
	SlackToken       string
	SlackChannels    []string
	TelegramToken    string
	TelegramChannels []string
	SMTP             notify.SMTPParams
	FromEmail        string
	ToEmails         []string
}

// Service sends notices to all targets. Failures are logged and never returned to the notice source.
type Service struct {
	Params
	targets []Target
	wg      sync.WaitGroup
}

// NewService makes a Service with clients for all configured senders.
// Returns nil if no sender configured or no level enabled.
func NewService(p Params, sp SendersParams) (*Service, error) {
	if !p.OnError && !p.OnSuccess {
		return nil, nil
	}
	targets, err := makeTargets(p, sp)
	if err != nil {
		return nil, err
	}
	if len(targets) == 0 {
		return nil, nil
	}
	return New(p, targets...), nil
}

// New makes a Service for the targets
func New(p Params, targets ...Target) *Service {
	if p.Timeout <= 0 {
		p.Timeout = 10 * time.Second
	}
	return &Service{Params: p, targets: targets}
}

// Notify forwards the notice in background if its level is enabled. Info notices are never forwarded.
func (s *Service) Notify(level enums.NoticeLevel, text string) {
	if !s.enabled(level) {
		return
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), s.Timeout)
		defer cancel()
		if err := s.Send(ctx, level, text); err != nil {
			log.Printf("[WARN] failed to forward %s notice: %v", level, err)
		}
	}()
}

// Send delivers the message to every target, errors of all targets are joined
func (s *Service) Send(ctx context.Context, level enums.NoticeLevel, text string) error {
	msg := s.message(level, text)
	var errs []error
	for _, t := range s.targets {
		if err := t.Client.Send(ctx, t.Address, msg); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", t.Client.Schema(), err))
			continue
		}
		log.Printf("[DEBUG] %s notice sent with %s", level, t.Client.Schema())
	}
	return errors.Join(errs...)
}

// Wait for background sends to complete
func (s *Service) Wait() {
	s.wg.Wait()
}

func (s *Service) enabled(level enums.NoticeLevel) bool {
	switch level {
	case enums.NoticeLevelError:
		return s.OnError
	case enums.NoticeLevelSuccess:
		return s.OnSuccess
	default:
		return false
	}
}

func (s *Service) message(level enums.NoticeLevel, text string) string {
	if s.Title == "" {
		return fmt.Sprintf("[%s] %s", level, text)
	}
	return fmt.Sprintf("%s [%s] %s", s.Title, level, text)
}

func makeTargets(p Params, sp SendersParams) ([]Target, error) {
	res := []Target{}
	if len(sp.WebhookURLs) > 0 {
		wh := notify.NewWebhook(notify.WebhookParams{Timeout: p.Timeout})
		for _, u := range sp.WebhookURLs {
			res = append(res, Target{Client: wh, Address: u})
		}
	}

	if sp.SlackToken != "" && len(sp.SlackChannels) > 0 {
		sl := notify.NewSlack(sp.SlackToken)
		for _, ch := range sp.SlackChannels {
			res = append(res, Target{Client: sl, Address: "slack:" + ch})
		}
	}

	if sp.TelegramToken != "" && len(sp.TelegramChannels) > 0 {
		tg, err := notify.NewTelegram(notify.TelegramParams{Token: sp.TelegramToken, Timeout: p.Timeout})
		if err != nil {
			return nil, fmt.Errorf("failed to make telegram client: %w", err)
		}
		for _, ch := range sp.TelegramChannels {
			res = append(res, Target{Client: tg, Address: "telegram:" + ch})
		}
	}

	if sp.SMTP.Host != "" && len(sp.ToEmails) > 0 {
		if sp.SMTP.TimeOut == 0 {
			sp.SMTP.TimeOut = p.Timeout
		}
		res = append(res, Target{Client: notify.NewEmail(sp.SMTP), Address: MailTo(sp.FromEmail, sp.ToEmails, p.Title)})
	}
	return res, nil
}

// MailTo makes a mailto destination for go-pkgz/notify email client
func MailTo(from string, to []string, subject string) string {
	q := url.Values{}
	if from != "" {
		q.Set("from", from)
	}
	if subject != "" {
		q.Set("subject", subject)
	}
	res := "mailto:" + strings.Join(to, ",")
	if len(q) > 0 {
		res += "?" + q.Encode()
	}
	return res
}
