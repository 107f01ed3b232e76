package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/google/uuid"

	"github.com/umputun/scrapedash/app/backend"
	"github.com/umputun/scrapedash/app/enums"
)

//go:generate moq -out mocks/starter.go -pkg mocks -skip-ensure -fmt goimports . Starter
//go:generate moq -out mocks/control.go -pkg mocks -skip-ensure -fmt goimports . Control
//go:generate moq -out mocks/notifier.go -pkg mocks -skip-ensure -fmt goimports . Notifier
//go:generate moq -out mocks/refresher.go -pkg mocks -skip-ensure -fmt goimports . Refresher
//go:generate moq -out mocks/reloader.go -pkg mocks -skip-ensure -fmt goimports . Reloader

// ErrBusy returned when the control is already triggering its job
var ErrBusy = errors.New("job is already in progress")

// Starter sends job start requests
type Starter interface {
	StartJob(ctx context.Context, method, path string, payload any) (backend.Response, error)
}

// Control is the user control bound to a job. Busy control is disabled and shows its busy label.
type Control interface {
	SetBusy(busy bool)
}

// Notifier shows notices to the user
type Notifier interface {
	Notify(level enums.NoticeLevel, text string)
}

// Refresher updates listings
type Refresher interface {
	Render(listing enums.Listing, payload json.RawMessage)
	Refresh(ctx context.Context, listing enums.Listing) error
}

// Reloader reloads the whole page
type Reloader interface {
	Reload(ctx context.Context) error
}

// Params for making a Trigger
type Params struct {
	Contract  Contract
	Starter   Starter
	Control   Control
	Notifier  Notifier
	Refresher Refresher
	Reloader  Reloader // optional, reload falls back to listing refresh if not set
	Guard     *Guard   // shared between triggers of the page, made if not set
}

// Trigger starts the job of one control and refreshes after it
type Trigger struct {
	Params

	mu    sync.Mutex
	state enums.TriggerState
	wg    sync.WaitGroup // in-flight activations and scheduled refreshes
}

// New makes a Trigger in idle state
func New(p Params) *Trigger {
	if p.Guard == nil {
		p.Guard = NewGuard()
	}
	return &Trigger{Params: p, state: enums.TriggerStateIdle}
}

// Start activates the control and runs the job in background.
// Returns false if the control is busy with a previous activation.
func (t *Trigger) Start(ctx context.Context) bool {
	run, ok := t.acquire()
	if !ok {
		log.Printf("[DEBUG] job %s is in progress, ignore activation", t.Contract.Kind)
		return false
	}
	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		_, _ = t.activate(ctx, run)
	}()
	return true
}

// Run activates the control and waits for the start request to complete.
// Scheduled refreshes are not awaited, use Wait for them.
func (t *Trigger) Run(ctx context.Context) (Outcome, error) {
	run, ok := t.acquire()
	if !ok {
		return Outcome{}, ErrBusy
	}
	return t.activate(ctx, run)
}

// State returns the current state of the control
func (t *Trigger) State() enums.TriggerState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Wait blocks until all activations are done and scheduled refreshes fired
func (t *Trigger) Wait() {
	t.wg.Wait()
}

// acquire moves an idle control to triggering state
func (t *Trigger) acquire() (JobRun, bool) {
	if !t.Guard.Acquire(t.Contract.Kind.String()) {
		return JobRun{}, false
	}
	run := JobRun{ID: uuid.NewString(), Kind: t.Contract.Kind, Started: time.Now()}
	t.setState(enums.TriggerStateTriggering)
	t.Control.SetBusy(true)
	return run, true
}

// release moves the control back to idle. Runs once per activation, deferred by activate.
func (t *Trigger) release(run JobRun) {
	t.setState(enums.TriggerStateIdle)
	t.Control.SetBusy(false)
	t.Guard.Release(t.Contract.Kind.String())
	log.Printf("[DEBUG] job %s released, run %s, %v", run.Kind, run.ID, time.Since(run.Started).Truncate(time.Millisecond))
}

func (t *Trigger) activate(ctx context.Context, run JobRun) (out Outcome, err error) {
	defer t.release(run)

	c := t.Contract
	log.Printf("[INFO] start job %s, run %s, %s %s", c.Kind, run.ID, c.Method, c.Path)
	var payload any // typed nil map would be sent as null
	if c.Payload != nil {
		payload = c.Payload
	}

	resp, err := t.Starter.StartJob(ctx, c.Method, c.Path, payload)
	if err == nil {
		out, err = Interpret(resp, c.Listing, c.Success)
	}
	if err != nil {
		t.setState(enums.TriggerStateFailed)
		log.Printf("[WARN] job %s failed, run %s, %d %s: %v", c.Kind, run.ID, out.Status, statusText(out.Status), err)
		t.Notifier.Notify(enums.NoticeLevelError, failureText(c, err))
		return out, err
	}

	t.setState(enums.TriggerStateSucceeded)
	log.Printf("[INFO] job %s accepted, run %s, count:%d, listing:%v", c.Kind, run.ID, out.Count, out.Payload != nil)
	t.Notifier.Notify(enums.NoticeLevelSuccess, successText(c, out))
	t.refresh(ctx, run, out)
	return out, nil
}

// refresh applies the refresh strategy of the contract
func (t *Trigger) refresh(ctx context.Context, run JobRun, out Outcome) {
	c := t.Contract
	listingRefresh := func(ctx context.Context) error { return t.Refresher.Refresh(ctx, c.Listing) }

	switch c.Refresh {
	case enums.RefreshModeImmediate:
		if out.Payload != nil {
			t.Refresher.Render(c.Listing, out.Payload)
			return
		}
		log.Printf("[DEBUG] job %s, run %s: no %s in response, poll in %v", c.Kind, run.ID, c.Listing, c.Delay)
		t.schedule(ctx, run, "poll "+c.Listing.String(), listingRefresh)
	case enums.RefreshModePoll:
		t.schedule(ctx, run, "poll "+c.Listing.String(), listingRefresh)
	case enums.RefreshModeReload:
		if t.Reloader == nil {
			t.schedule(ctx, run, "poll "+c.Listing.String(), listingRefresh)
			return
		}
		t.schedule(ctx, run, "reload", t.Reloader.Reload)
	}
}

// schedule runs fn after the contract delay, not awaited by the activation
func (t *Trigger) schedule(ctx context.Context, run JobRun, what string, fn func(ctx context.Context) error) {
	t.wg.Add(1)
	time.AfterFunc(t.Contract.Delay, func() {
		defer t.wg.Done()
		if err := fn(ctx); err != nil {
			log.Printf("[WARN] job %s, run %s: %s failed: %v", run.Kind, run.ID, what, err)
			return
		}
		log.Printf("[DEBUG] job %s, run %s: %s done", run.Kind, run.ID, what)
	})
}

func (t *Trigger) setState(s enums.TriggerState) {
	t.mu.Lock()
	t.state = s
	t.mu.Unlock()
}

func successText(c Contract, out Outcome) string {
	switch {
	case out.HasCount:
		return fmt.Sprintf("%s scrape completed, found %d %s", c.Title, out.Count, c.Noun)
	case out.Message != "":
		return fmt.Sprintf("%s: %s", c.Title, out.Message)
	default:
		return fmt.Sprintf("%s scrape started", c.Title)
	}
}

func failureText(c Contract, err error) string {
	if msg := backend.UserMessage(err, ""); msg != "" {
		return fmt.Sprintf("%s scrape failed: %s", c.Title, msg)
	}
	return fmt.Sprintf("%s scrape failed, please try again", c.Title)
}
