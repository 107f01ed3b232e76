package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"os/signal"
	"runtime"
	"slices"
	"strings"
	"syscall"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/notify"
	"github.com/go-pkgz/repeater"
	"github.com/go-pkgz/repeater/strategy"
	"github.com/umputun/go-flags"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/umputun/scrapedash/app/backend"
	"github.com/umputun/scrapedash/app/enums"
	"github.com/umputun/scrapedash/app/jobs"
	"github.com/umputun/scrapedash/app/listing"
	scrnotify "github.com/umputun/scrapedash/app/notify"
	"github.com/umputun/scrapedash/app/session"
	"github.com/umputun/scrapedash/app/view"
)

var opts struct {
	Backend  string        `short:"b" long:"backend" env:"SCRAPEDASH_BACKEND" default:"http://localhost:8000" description:"scraping backend url"`
	Timeout  time.Duration `long:"timeout" env:"SCRAPEDASH_TIMEOUT" default:"30s" description:"backend request timeout"`
	JobsFile string        `short:"j" long:"jobs" env:"SCRAPEDASH_JOBS" description:"jobs file (yaml), built-in jobs if not set"`
	Interval time.Duration `long:"interval" env:"SCRAPEDASH_INTERVAL" default:"60s" description:"properties refresh interval"`
	NoColor  bool          `long:"no-color" env:"SCRAPEDASH_NO_COLOR" description:"disable colored notices"`
	Dbg      bool          `long:"dbg" env:"SCRAPEDASH_DEBUG" description:"debug mode"`

	Repeater struct {
		Attempts int           `long:"attempts" env:"ATTEMPTS" default:"1" description:"how many times to read a listing"`
		Duration time.Duration `long:"duration" env:"DURATION" default:"1s" description:"initial duration"`
		Factor   float64       `long:"factor" env:"FACTOR" default:"2" description:"backoff factor"`
		Jitter   bool          `long:"jitter" env:"JITTER" description:"jitter"`
	} `group:"repeater" namespace:"repeater" env-namespace:"SCRAPEDASH_REPEATER"`

	Notify struct {
		EnabledError     bool          `long:"enabled-error" env:"ENABLED_ERROR" description:"forward error notices"`
		EnabledSuccess   bool          `long:"enabled-success" env:"ENABLED_SUCCESS" description:"forward success notices"`
		Timeout          time.Duration `long:"timeout" env:"TIMEOUT" default:"10s" description:"notification timeout"`
		Webhooks         []string      `long:"webhook" env:"WEBHOOK" env-delim:"," description:"webhook url(s)"`
		SlackToken       string        `long:"slack-token" env:"SLACK_TOKEN" description:"slack token"`
		SlackChannels    []string      `long:"slack-channel" env:"SLACK_CHANNEL" env-delim:"," description:"slack channel(s)"`
		TelegramToken    string        `long:"telegram-token" env:"TELEGRAM_TOKEN" description:"telegram bot token"`
		TelegramChannels []string      `long:"telegram-channel" env:"TELEGRAM_CHANNEL" env-delim:"," description:"telegram channel(s)"`
		SMTPHost         string        `long:"smtp-host" env:"SMTP_HOST" description:"SMTP host"`
		SMTPPort         int           `long:"smtp-port" env:"SMTP_PORT" default:"25" description:"SMTP port"`
		SMTPUsername     string        `long:"smtp-username" env:"SMTP_USERNAME" description:"SMTP user name"`
		SMTPPassword     string        `long:"smtp-password" env:"SMTP_PASSWORD" description:"SMTP password"`
		SMTPTLS          bool          `long:"smtp-tls" env:"SMTP_TLS" description:"enable SMTP TLS"`
		FromEmail        string        `long:"from" env:"FROM" description:"SMTP from email"`
		ToEmails         []string      `long:"to" env:"TO" env-delim:"," description:"SMTP to email(s)"`
		HostName         string        `long:"host" env:"HOSTNAME" description:"host name running scrapedash"`
	} `group:"notify" namespace:"notify" env-namespace:"SCRAPEDASH_NOTIFY"`

	Log struct {
		Enabled         bool   `long:"enabled" env:"ENABLED" description:"enable logging to file"`
		Filename        string `long:"filename" env:"FILENAME" default:"scrapedash.log" description:"file to log to"`
		MaxSize         int    `long:"max-size" env:"MAX_SIZE" default:"100" description:"maximum size in megabytes before rotation"`
		MaxBackups      int    `long:"max-backups" env:"MAX_BACKUPS" default:"7" description:"maximum number of old log files to retain"`
		MaxAge          int    `long:"max-age" env:"MAX_AGE" default:"0" description:"maximum number of days to retain old log files"`
		EnabledCompress bool   `long:"enabled-compress" env:"ENABLED_COMPRESS" description:"compress rotated log files"`
	} `group:"log" namespace:"log" env-namespace:"SCRAPEDASH_LOG"`

	Run struct{} `command:"run" description:"interactive dashboard, default"`

	Scrape struct {
		Args struct {
			Kind string `positional-arg-name:"kind" description:"classified, news or facebook" required:"yes"`
		} `positional-args:"yes"`
	} `command:"scrape" description:"start a scrape job and wait for its refresh"`

	Listings struct{} `command:"listings" description:"print properties and news"`

	URLs struct {
		AddProperty    []string `long:"add-property" description:"add property url"`
		AddNews        []string `long:"add-news" description:"add news url"`
		RemoveProperty []int    `long:"remove-property" description:"remove property url #n"`
		RemoveNews     []int    `long:"remove-news" description:"remove news url #n"`
		Save           bool     `long:"save" description:"save url lists to the backend"`
	} `command:"urls" description:"print and edit url lists"`

	Criteria struct {
		Fields []string `short:"f" long:"field" description:"search criteria field, name=value" required:"yes"`
	} `command:"criteria" description:"submit search criteria"`
}

var revision = "unknown"

func main() {
	fmt.Printf("scrapedash %s\n", revision)

	p := flags.NewParser(&opts, flags.Default)
	p.SubcommandsOptional = true
	if _, err := p.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(2)
	}
	setupLog(opts.Dbg, setupLogs())

	defer func() {
		if x := recover(); x != nil {
			log.Printf("[WARN] run time panic:\n%v", x)
			panic(x)
		}
	}()

	command := "run"
	if p.Active != nil {
		command = p.Active.Name
	}

	ctx, cancel := context.WithCancel(context.Background())
	signals(cancel) // handle SIGQUIT, SIGINT and SIGTERM
	err := run(ctx, command, os.Stdin, os.Stdout)
	cancel()
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("[ERROR] %s failed: %v", command, err)
		os.Exit(1)
	}
}

// run makes the dashboard session and executes the command
func run(ctx context.Context, command string, in io.Reader, out io.Writer) error {
	baseURL, err := validateBaseURL(opts.Backend)
	if err != nil {
		return err
	}
	contracts, err := jobs.LoadContracts(opts.JobsFile)
	if err != nil {
		return err
	}
	notifier, err := makeNotifier()
	if err != nil {
		return err
	}

	params := session.Params{
		Backend:   backend.New(backend.Params{BaseURL: baseURL, Timeout: opts.Timeout, UserAgent: "scrapedash/" + revision}),
		Console:   view.NewConsole(out, !opts.NoColor),
		Contracts: contracts,
		Repeater:  makeRepeater(),
		Interval:  opts.Interval,
	}
	if notifier != nil {
		params.Notifiers = []jobs.Notifier{notifier}
		defer notifier.Wait()
	}
	s := session.New(params)
	defer s.Close()
	log.Printf("[INFO] %s, backend %s, %d jobs", command, baseURL, len(contracts))

	switch command {
	case "scrape":
		return runScrape(ctx, s, opts.Scrape.Args.Kind)
	case "listings":
		if err := s.Load(ctx); err != nil {
			return err
		}
	case "urls":
		return runURLs(ctx, s)
	case "criteria":
		form, err := session.ParseForm(opts.Criteria.Fields)
		if err != nil {
			return err
		}
		return s.OnSubmitCriteria(ctx, form)
	default:
		if err := s.Load(ctx); err != nil {
			log.Printf("[WARN] initial load failed: %v", err)
		}
		s.Start(ctx)
		err := s.Run(ctx, in)
		s.Wait()
		return err
	}
	return nil
}

func runScrape(ctx context.Context, s *session.Session, kind string) error {
	k, err := enums.ParseJobKind(kind)
	if err != nil {
		return err
	}
	_, err = s.Trigger(k).Run(ctx)
	s.Wait() // scheduled refresh
	return err
}

func runURLs(ctx context.Context, s *session.Session) error {
	if _, _, err := s.Store().Load(ctx); err != nil {
		return err
	}
	for _, u := range opts.URLs.AddProperty {
		s.OnAddURL(enums.ListNameProperty, u)
	}
	for _, u := range opts.URLs.AddNews {
		s.OnAddURL(enums.ListNameNews, u)
	}
	for _, n := range removalOrder(opts.URLs.RemoveProperty) {
		s.OnRemoveURL(enums.ListNameProperty, n-1)
	}
	for _, n := range removalOrder(opts.URLs.RemoveNews) {
		s.OnRemoveURL(enums.ListNameNews, n-1)
	}
	if !opts.URLs.Save {
		return nil
	}
	return s.OnSaveURLs(ctx)
}

// removalOrder returns unique positions, highest first, so each removal keeps the rest in place
func removalOrder(positions []int) []int {
	res := slices.Clone(positions)
	slices.Sort(res)
	res = slices.Compact(res)
	slices.Reverse(res)
	return res
}

func makeRepeater() listing.Repeater {
	if opts.Repeater.Attempts <= 1 {
		return repeater.New(&strategy.Once{})
	}
	return repeater.New(&strategy.Backoff{Repeats: opts.Repeater.Attempts, Duration: opts.Repeater.Duration,
		Factor: opts.Repeater.Factor, Jitter: opts.Repeater.Jitter})
}

func makeNotifier() (*scrnotify.Service, error) {
	if !opts.Notify.EnabledError && !opts.Notify.EnabledSuccess {
		return nil, nil
	}
	if opts.Notify.FromEmail == "" {
		opts.Notify.FromEmail = "scrapedash@" + makeHostName()
	}

	return scrnotify.NewService(
		scrnotify.Params{
			OnError:   opts.Notify.EnabledError,
			OnSuccess: opts.Notify.EnabledSuccess,
			Timeout:   opts.Notify.Timeout,
			Title:     "scrapedash on " + makeHostName(),
		},
		scrnotify.SendersParams{
			WebhookURLs:      opts.Notify.Webhooks,
			SlackToken:       opts.Notify.SlackToken,
			SlackChannels:    opts.Notify.SlackChannels,
			TelegramToken:    opts.Notify.TelegramToken,
			TelegramChannels: opts.Notify.TelegramChannels,
			SMTP: notify.SMTPParams{
				Host:     opts.Notify.SMTPHost,
				Port:     opts.Notify.SMTPPort,
				TLS:      opts.Notify.SMTPTLS,
				Username: opts.Notify.SMTPUsername,
				Password: opts.Notify.SMTPPassword,
				TimeOut:  opts.Notify.Timeout,
			},
			FromEmail: opts.Notify.FromEmail,
			ToEmails:  opts.Notify.ToEmails,
		},
	)
}

func makeHostName() string {
	if opts.Notify.HostName != "" {
		return opts.Notify.HostName
	}
	host, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return host
}

// validateBaseURL checks backend url and drops trailing slashes
func validateBaseURL(raw string) (string, error) {
	raw = strings.TrimRight(strings.TrimSpace(raw), "/")
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid backend url %q: %w", raw, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("invalid backend url %q, expected http(s)://host[:port]", raw)
	}
	return raw, nil
}

// setupLogs returns the log destination, rotated file if enabled
func setupLogs() io.Writer {
	if !opts.Log.Enabled {
		return os.Stderr
	}
	return &lumberjack.Logger{
		Filename:   opts.Log.Filename,
		MaxSize:    opts.Log.MaxSize,
		MaxBackups: opts.Log.MaxBackups,
		MaxAge:     opts.Log.MaxAge,
		Compress:   opts.Log.EnabledCompress,
	}
}

func setupLog(dbg bool, out io.Writer) {
	if dbg {
		log.Setup(log.Debug, log.Msec, log.CallerFunc, log.CallerPkg, log.Out(out), log.Err(out))
		return
	}
	log.Setup(log.Msec, log.Out(out), log.Err(out))
}

func signals(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	go func() {
		stacktrace := make([]byte, 8192)
		for sig := range sigChan {
			if sig == syscall.SIGQUIT { // catch SIGQUIT and print stack traces
				length := runtime.Stack(stacktrace, true)
				fmt.Println(string(stacktrace[:length]))
				continue
			}
			log.Printf("[INFO] %s, terminating", sig)
			cancel()
		}
	}()
	signal.Notify(sigChan, syscall.SIGQUIT, syscall.SIGINT, syscall.SIGTERM)
}
