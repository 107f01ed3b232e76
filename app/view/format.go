package view

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/umputun/scrapedash/app/backend"
)

const (
	maxTitle = 50
	maxText  = 60
	noValue  = "-"
)

// date layouts sent by the backend, most common first
var dateLayouts = []string{
	"2006-01-02T15:04:05.999999",
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	time.RFC1123,
	"2006-01-02",
}

// FormatDate returns the date part of a timestamp. Unknown formats are returned as is, empty as "-".
func FormatDate(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return noValue
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return v
}

// PropertiesTable renders properties listing
func PropertiesTable(items []backend.Property) string {
	tw := newTable(fmt.Sprintf("Properties (%d)", len(items)))
	tw.AppendHeader(table.Row{"#", "Title", "Price", "Location", "Listed", "Source", "URL"})
	for i, p := range items {
		listed := p.DateListed.String()
		if listed == "" {
			listed = p.CreatedAt.String()
		}
		tw.AppendRow(table.Row{i + 1, shorten(p.Title.String(), maxTitle), orNone(p.Price.String()),
			orNone(p.Location.String()), FormatDate(listed), orNone(p.Source), orNone(p.URL)})
	}
	if len(items) == 0 {
		tw.AppendRow(table.Row{"", "no properties found"})
	}
	return tw.Render() + "\n"
}

// NewsTable renders news listing
func NewsTable(items []backend.NewsItem) string {
	tw := newTable(fmt.Sprintf("News (%d)", len(items)))
	tw.AppendHeader(table.Row{"#", "Title", "Summary", "Published", "Source", "URL"})
	for i, n := range items {
		tw.AppendRow(table.Row{i + 1, shorten(n.Title.String(), maxTitle), orNone(shorten(n.Abstract(), maxText)),
			FormatDate(n.PublishedAt.String()), orNone(n.Source), orNone(n.URL)})
	}
	if len(items) == 0 {
		tw.AppendRow(table.Row{"", "no news found"})
	}
	return tw.Render() + "\n"
}

// URLsTable renders both scrape-target url lists. Numbers are 1-based positions.
func URLsTable(lists backend.URLLists) string {
	tw := newTable(fmt.Sprintf("Scrape URLs (property %d, news %d)", len(lists.Property), len(lists.News)))
	tw.AppendHeader(table.Row{"List", "#", "URL"})
	for i, u := range lists.Property {
		tw.AppendRow(table.Row{"property", i + 1, u})
	}
	if len(lists.Property) > 0 && len(lists.News) > 0 {
		tw.AppendSeparator()
	}
	for i, u := range lists.News {
		tw.AppendRow(table.Row{"news", i + 1, u})
	}
	if len(lists.Property) == 0 && len(lists.News) == 0 {
		tw.AppendRow(table.Row{"", "", "no urls"})
	}
	return tw.Render() + "\n"
}

func newTable(title string) table.Writer {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.SetTitle(title)
	return tw
}

func shorten(s string, limit int) string {
	s = strings.Join(strings.Fields(s), " ")
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return text.Trim(s, limit-1) + "…"
}

func orNone(s string) string {
	if strings.TrimSpace(s) == "" {
		return noValue
	}
	return s
}
