package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/scrapedash/app/enums"
	"github.com/umputun/scrapedash/app/view"
)

// ErrQuit returned by Exec for the quit command
var ErrQuit = errors.New("quit")

var errBusy = errors.New("busy")

const help = `commands:
  load                        reload url lists and listings
  scrape classified|news|facebook
                              start a scrape job
  properties | news           show listing
  urls                        show url lists
  add property|news <url>     add url to the list
  remove property|news <n>    remove url #n from the list
  save                        save url lists
  criteria name=value ...     submit search criteria
  status                      show controls and notices
  help                        show this help
  quit                        exit
`

// Exec runs a single console command. Unknown commands print help.
// Command failures are shown as notices and returned.
func (s *Session) Exec(ctx context.Context, line string) error {
	args := strings.Fields(line)
	if len(args) == 0 {
		return nil
	}
	cmd, args := strings.ToLower(args[0]), args[1:]
	log.Printf("[DEBUG] exec %q", line)

	switch cmd {
	case "load", "reload":
		return s.Reload(ctx)
	case "scrape":
		return s.execScrape(ctx, args)
	case "properties":
		s.console.Printf("%s", view.PropertiesTable(s.console.Properties()))
	case "news":
		s.console.Printf("%s", view.NewsTable(s.console.News()))
	case "urls":
		s.console.Printf("%s", view.URLsTable(s.store.Snapshot()))
	case "add":
		return s.execAdd(args)
	case "remove", "rm":
		return s.execRemove(args)
	case "save":
		return s.OnSaveURLs(ctx)
	case "criteria":
		form, err := ParseForm(args)
		if err != nil {
			s.console.Printf("%v\n", err)
			return err
		}
		return s.OnSubmitCriteria(ctx, form)
	case "status":
		s.console.Printf("%s\n", s.console.Controls())
		for _, n := range s.console.Board().Active() {
			s.console.Printf("  %s: %s\n", n.Level, n.Text)
		}
	case "quit", "exit":
		return ErrQuit
	case "help", "?":
		s.console.Printf("%s", help)
	default:
		s.console.Printf("unknown command %q\n%s", cmd, help)
	}
	return nil
}

// Run reads commands from in until EOF, quit or canceled context
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	lines := make(chan string)
	scanErr := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			case <-done:
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	s.console.Printf("%s\n> ", s.console.Controls())
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					if err != nil {
						return fmt.Errorf("failed to read commands: %w", err)
					}
				default:
				}
				return nil
			}
			if err := s.Exec(ctx, line); err != nil {
				if errors.Is(err, ErrQuit) {
					return nil
				}
				log.Printf("[DEBUG] command %q failed: %v", line, err)
			}
			s.console.Printf("> ")
		}
	}
}

func (s *Session) execScrape(ctx context.Context, args []string) error {
	if len(args) != 1 {
		s.console.Printf("usage: scrape classified|news|facebook\n")
		return errors.New("job kind is required")
	}
	kind, err := enums.ParseJobKind(args[0])
	if err != nil {
		s.console.Printf("%v\n", err)
		return err
	}
	handlers := map[enums.JobKind]func(context.Context) bool{
		enums.JobKindClassified: s.OnScrapeClassified,
		enums.JobKindNews:       s.OnScrapeNews,
		enums.JobKindFacebook:   s.OnScrapeFacebook,
	}
	if !handlers[kind](ctx) {
		return fmt.Errorf("%s: %w", kind, errBusy)
	}
	return nil
}

func (s *Session) execAdd(args []string) error {
	if len(args) != 2 {
		s.console.Printf("usage: add property|news <url>\n")
		return errors.New("list and url are required")
	}
	list, err := enums.ParseListName(args[0])
	if err != nil {
		s.console.Printf("%v\n", err)
		return err
	}
	if !s.OnAddURL(list, args[1]) {
		return fmt.Errorf("url %q not added to %s", args[1], list)
	}
	return nil
}

func (s *Session) execRemove(args []string) error {
	if len(args) != 2 {
		s.console.Printf("usage: remove property|news <n>\n")
		return errors.New("list and position are required")
	}
	list, err := enums.ParseListName(args[0])
	if err != nil {
		s.console.Printf("%v\n", err)
		return err
	}
	n, err := strconv.Atoi(args[1])
	if err != nil {
		s.console.Printf("invalid position %q\n", args[1])
		return fmt.Errorf("invalid position %q: %w", args[1], err)
	}
	if !s.OnRemoveURL(list, n-1) {
		return fmt.Errorf("no url #%d in %s", n, list)
	}
	return nil
}

// ParseForm makes form values from name=value pairs. Repeated names give multiple values.
func ParseForm(pairs []string) (url.Values, error) {
	res := url.Values{}
	for _, p := range pairs {
		name, value, ok := strings.Cut(p, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid form field %q, expected name=value", p)
		}
		res.Add(name, value)
	}
	if len(res) == 0 {
		return nil, errors.New("at least one form field is required")
	}
	return res, nil
}
