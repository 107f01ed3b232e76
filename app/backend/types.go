package backend

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	log "github.com/go-pkgz/lgr"
)

// Text is a loosely typed scalar from the backend. Scrapers report prices and dates
// as strings, numbers or null, all of them decode to the display string.
type Text string

// UnmarshalJSON accepts string, number, bool and null
func (t *Text) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}
	switch val := v.(type) {
	case nil:
		*t = ""
	case string:
		*t = Text(val)
	case json.Number:
		*t = Text(val.String())
	case bool:
		*t = Text(strconv.FormatBool(val))
	default:
		*t = Text(strings.TrimSpace(string(data)))
	}
	return nil
}

func (t Text) String() string { return string(t) }

// Property is a single classified listing record
type Property struct {
	Title       Text   `json:"title"`
	Price       Text   `json:"price"`
	Location    Text   `json:"location"`
	DateListed  Text   `json:"date_listed"`
	URL         string `json:"url"`
	ImageURL    string `json:"image_url,omitempty"`
	Description Text   `json:"description,omitempty"`
	Source      string `json:"source,omitempty"`
	CreatedAt   Text   `json:"created_at,omitempty"`
}

// NewsItem is a single news listing record. Depending on the scraper the text
// comes as summary or as description.
type NewsItem struct {
	Title       Text   `json:"title"`
	Summary     Text   `json:"summary,omitempty"`
	Description Text   `json:"description,omitempty"`
	URL         string `json:"url"`
	PublishedAt Text   `json:"published_at"`
	ImageURL    string `json:"image_url,omitempty"`
	Source      string `json:"source,omitempty"`
}

// Abstract returns summary, falling back to description
func (n NewsItem) Abstract() string {
	if n.Summary != "" {
		return n.Summary.String()
	}
	return n.Description.String()
}

// URLLists is the pair of scrape-target url lists stored by the backend
type URLLists struct {
	Property []string `json:"property_urls"`
	News     []string `json:"news_urls"`
}

// Response is a raw backend response
type Response struct {
	Status int
	Body   []byte
}

// Envelope gives access to the top level fields of a JSON object response.
// Backend endpoints mix status strings, success flags, messages and payloads
// in the same object.
type Envelope struct {
	fields map[string]json.RawMessage
}

// ParseEnvelope parses body as a JSON object
func ParseEnvelope(body []byte) (Envelope, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return Envelope{}, err
	}
	if fields == nil { // literal null
		fields = map[string]json.RawMessage{}
	}
	return Envelope{fields: fields}, nil
}

// Has reports whether key is present and not null
func (e Envelope) Has(key string) bool {
	raw, ok := e.fields[key]
	return ok && !isNull(raw)
}

// String returns the string value of key, empty if missing or not a string
func (e Envelope) String(key string) string {
	var s string
	if raw, ok := e.fields[key]; ok {
		if err := json.Unmarshal(raw, &s); err != nil {
			return ""
		}
	}
	return s
}

// Bool returns the bool value of key. ok is false if key is missing or not a bool.
func (e Envelope) Bool(key string) (val, ok bool) {
	raw, found := e.fields[key]
	if !found {
		return false, false
	}
	if err := json.Unmarshal(raw, &val); err != nil {
		return false, false
	}
	return val, true
}

// Int returns the integer value of key. ok is false if key is missing or not a number.
func (e Envelope) Int(key string) (val int, ok bool) {
	raw, found := e.fields[key]
	if !found {
		return 0, false
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return 0, false
	}
	return int(f), true
}

// Raw returns the value of the first present, non-null key
func (e Envelope) Raw(keys ...string) json.RawMessage {
	for _, k := range keys {
		if raw, ok := e.fields[k]; ok && !isNull(raw) {
			return raw
		}
	}
	return nil
}

// Message returns the server message, "message" field first, then "error"
func (e Envelope) Message() string {
	if msg := e.String("message"); msg != "" {
		return msg
	}
	return e.String("error")
}

// Failed reports an explicit error flag: success:false, status:"error"|"failed",
// or a non-empty error string.
func (e Envelope) Failed() bool {
	if ok, found := e.Bool("success"); found && !ok {
		return true
	}
	switch strings.ToLower(e.String("status")) {
	case "error", "failed", "fail":
		return true
	}
	return e.String("error") != ""
}

// Succeeded reports an explicit success indicator: success:true or status:"success"
func (e Envelope) Succeeded() bool {
	if ok, found := e.Bool("success"); found && ok {
		return true
	}
	return strings.EqualFold(e.String("status"), "success")
}

// DecodeProperties decodes a properties listing payload. Unexpected shapes
// degrade to an empty list.
func DecodeProperties(raw json.RawMessage) []Property {
	res := []Property{}
	if len(raw) == 0 || isNull(raw) {
		return res
	}
	if err := json.Unmarshal(raw, &res); err != nil {
		log.Printf("[WARN] unexpected properties payload, rendering empty list: %v", err)
		return []Property{}
	}
	return res
}

// DecodeNews decodes a news listing payload. Unexpected shapes degrade to an empty list.
func DecodeNews(raw json.RawMessage) []NewsItem {
	res := []NewsItem{}
	if len(raw) == 0 || isNull(raw) {
		return res
	}
	if err := json.Unmarshal(raw, &res); err != nil {
		log.Printf("[WARN] unexpected news payload, rendering empty list: %v", err)
		return []NewsItem{}
	}
	return res
}

// decodeStrings decodes a list of strings. Missing or null list is empty, any other shape is an error.
func decodeStrings(raw json.RawMessage) ([]string, error) {
	res := []string{}
	if len(raw) == 0 || isNull(raw) {
		return res, nil
	}
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, err
	}
	return res, nil
}

func isNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}
