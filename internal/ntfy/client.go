package ntfy

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

const defaultTimeout = 30 * time.Second

// Request describes a single publish: the fully resolved target URL, the
// HTTP method, the raw message body (POST only) and the header set.
type Request struct {
	URL     string
	Method  string
	Body    []byte
	Headers []Header
}

// Receipt reports a delivered message.
type Receipt struct {
	Status int
	URL    string
}

// DeliveryError is returned when the server answers with a status outside
// 2xx/3xx, or when the request fails at the transport level (Status 0).
type DeliveryError struct {
	Status int
	URL    string
	Body   string
	Err    error
}

func (e *DeliveryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("unexpected response %d from %s", e.Status, e.URL)
}

func (e *DeliveryError) Unwrap() error { return e.Err }

// Client publishes messages over HTTP. It is a thin wrapper around a resty
// client with retries disabled: one invocation, one request.
type Client struct {
	http *resty.Client
	log  zerolog.Logger
}

// NewClient returns a ready-to-use publish client.
func NewClient(log zerolog.Logger) *Client {
	cli := resty.New().
		SetTimeout(defaultTimeout).
		SetRetryCount(0)
	return &Client{http: cli, log: log}
}

// Publish issues exactly one HTTP request for req and maps the response.
// GET requests carry no body; POST sends the message as the raw entity.
func (c *Client) Publish(ctx context.Context, req Request) (Receipt, error) {
	method := strings.ToUpper(strings.TrimSpace(req.Method))
	if !ValidMethod(method) {
		return Receipt{}, fmt.Errorf("method must be GET or POST, got %q", req.Method)
	}

	r := c.http.R().SetContext(ctx)
	for _, h := range req.Headers {
		r.SetHeader(h.Name, h.Value)
	}

	c.log.Debug().
		Str("method", method).
		Str("url", req.URL).
		Int("headers", len(req.Headers)).
		Int("body_bytes", len(req.Body)).
		Msg("publishing")

	start := time.Now()
	var resp *resty.Response
	var err error
	switch method {
	case http.MethodGet:
		resp, err = r.Get(req.URL)
	default:
		resp, err = r.SetBody(req.Body).Post(req.URL)
	}
	if err != nil {
		return Receipt{}, &DeliveryError{URL: req.URL, Err: err}
	}

	status := resp.StatusCode()
	c.log.Debug().
		Int("status", status).
		Dur("elapsed", time.Since(start)).
		Msg("response received")

	if status >= 200 && status < 400 {
		return Receipt{Status: status, URL: req.URL}, nil
	}
	return Receipt{}, &DeliveryError{
		Status: status,
		URL:    req.URL,
		Body:   strings.TrimSpace(resp.String()),
	}
}
