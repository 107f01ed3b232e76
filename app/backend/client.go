// Package backend implements the http client for the scraping backend api.
// It covers listings, url lists, search criteria and job start endpoints and
// maps failures to TransportError, ServerError and DecodeError.
package backend

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/go-resty/resty/v2"
)

const maxBodySize = 5 * 1024 * 1024

// Client talks to the backend over http
type Client struct {
	cl *resty.Client
}

// Params for making a Client
type Params struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

// New makes a Client for the given backend
func New(p Params) *Client {
	cl := resty.New().
		SetBaseURL(strings.TrimSuffix(p.BaseURL, "/")).
		SetHeader("Accept", "application/json")
	if p.Timeout > 0 {
		cl.SetTimeout(p.Timeout)
	}
	if p.UserAgent != "" {
		cl.SetHeader("User-Agent", p.UserAgent)
	}
	return &Client{cl: cl}
}

// Properties fetches the properties listing
func (c *Client) Properties(ctx context.Context) ([]Property, error) {
	env, err := c.getJSON(ctx, "properties", "/api/properties")
	if err != nil {
		return nil, err
	}
	raw := env.Raw("properties")
	if raw == nil {
		log.Printf("[WARN] properties: no properties in response, rendering empty list")
	}
	return DecodeProperties(raw), nil
}

// News fetches the news listing. Backend versions send it as news_items or news.
func (c *Client) News(ctx context.Context) ([]NewsItem, error) {
	env, err := c.getJSON(ctx, "news", "/api/news")
	if err != nil {
		return nil, err
	}
	raw := env.Raw("news_items", "news")
	if raw == nil {
		log.Printf("[WARN] news: no news_items in response, rendering empty list")
	}
	return DecodeNews(raw), nil
}

// URLs fetches the saved url lists
func (c *Client) URLs(ctx context.Context) (URLLists, error) {
	const op = "load urls"
	env, err := c.getJSON(ctx, op, "/api/urls")
	if err != nil {
		return URLLists{}, err
	}
	property, err := decodeStrings(env.Raw("property_urls"))
	if err != nil {
		return URLLists{}, &DecodeError{Op: op, Err: fmt.Errorf("property_urls: %w", err)}
	}
	news, err := decodeStrings(env.Raw("news_urls"))
	if err != nil {
		return URLLists{}, &DecodeError{Op: op, Err: fmt.Errorf("news_urls: %w", err)}
	}
	return URLLists{Property: property, News: news}, nil
}

// SaveURLs replaces the url lists stored by the backend with lists
func (c *Client) SaveURLs(ctx context.Context, lists URLLists) error {
	const op = "save urls"
	if lists.Property == nil {
		lists.Property = []string{}
	}
	if lists.News == nil {
		lists.News = []string{}
	}

	status, body, err := c.do(ctx, op, c.cl.R().SetBody(lists), http.MethodPost, "/api/urls")
	if err != nil {
		return err
	}
	env, parseErr := ParseEnvelope(body)
	if parseErr != nil {
		if !isSuccess(status) {
			return &ServerError{Op: op, Status: status}
		}
		return &DecodeError{Op: op, Err: parseErr}
	}
	if env.Failed() || !isSuccess(status) {
		return &ServerError{Op: op, Status: status, Message: env.Message()}
	}
	if !env.Succeeded() {
		return &DecodeError{Op: op, Err: errors.New("no success flag in response")}
	}
	return nil
}

// SaveSearchCriteria posts search criteria form fields. Only the http status matters.
func (c *Client) SaveSearchCriteria(ctx context.Context, form url.Values) error {
	const op = "search criteria"
	status, body, err := c.do(ctx, op, c.cl.R().SetFormDataFromValues(form), http.MethodPost, "/search-criteria")
	if err != nil {
		return err
	}
	if !isSuccess(status) {
		return &ServerError{Op: op, Status: status, Message: messageOf(body)}
	}
	return nil
}

// StartJob sends a job start request and returns the raw response.
// The error is set on transport failures only, interpretation of status and body is up to the caller.
func (c *Client) StartJob(ctx context.Context, method, path string, payload any) (Response, error) {
	req := c.cl.R()
	if payload != nil {
		req.SetBody(payload)
	}
	status, body, err := c.do(ctx, "start job "+path, req, method, path)
	if err != nil {
		return Response{}, err
	}
	return Response{Status: status, Body: body}, nil
}

// getJSON makes a GET request and returns the response object. Non-success status
// and explicit error flags give ServerError, malformed body gives DecodeError.
func (c *Client) getJSON(ctx context.Context, op, path string) (Envelope, error) {
	status, body, err := c.do(ctx, op, c.cl.R(), http.MethodGet, path)
	if err != nil {
		return Envelope{}, err
	}
	env, parseErr := ParseEnvelope(body)
	if parseErr != nil {
		if !isSuccess(status) {
			return Envelope{}, &ServerError{Op: op, Status: status}
		}
		return Envelope{}, &DecodeError{Op: op, Err: parseErr}
	}
	if env.Failed() || !isSuccess(status) {
		return Envelope{}, &ServerError{Op: op, Status: status, Message: env.Message()}
	}
	return env, nil
}

// do executes the request and reads the body with size limit
func (c *Client) do(ctx context.Context, op string, req *resty.Request, method, path string) (status int, body []byte, err error) {
	log.Printf("[DEBUG] %s %s", method, path)
	resp, err := req.SetContext(ctx).SetDoNotParseResponse(true).Execute(method, path)
	if err != nil {
		return 0, nil, &TransportError{Op: op, Err: err}
	}
	raw := resp.RawBody()
	if raw == nil {
		return resp.StatusCode(), nil, nil
	}
	defer func() {
		if closeErr := raw.Close(); closeErr != nil {
			log.Printf("[WARN] failed to close response body: %v", closeErr)
		}
	}()

	body, err = io.ReadAll(io.LimitReader(raw, maxBodySize))
	if err != nil {
		return resp.StatusCode(), nil, &TransportError{Op: op, Err: fmt.Errorf("failed to read response: %w", err)}
	}
	log.Printf("[DEBUG] %s %s -> %d, %d bytes", method, path, resp.StatusCode(), len(body))
	return resp.StatusCode(), body, nil
}

// messageOf extracts server message from a JSON body, empty for anything else
func messageOf(body []byte) string {
	env, err := ParseEnvelope(body)
	if err != nil {
		return ""
	}
	return env.Message()
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}
