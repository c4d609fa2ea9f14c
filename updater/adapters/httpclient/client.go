package httpclient

import (
	"bytes"
	"click-updater/updater/core"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"golang.org/x/time/rate"
)

const (
	HeaderFrameworks   = "X-Ubuntu-Frameworks"
	HeaderArchitecture = "X-Ubuntu-Architecture"

	maxBodySize = 16 << 20
)

type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

// Client issues store requests on a transport that may be shared with other
// clients. Cancel only aborts requests issued through this instance.
type Client struct {
	log      *slog.Logger
	client   *http.Client
	platform core.Platform
	limiter  *rate.Limiter

	mu       sync.Mutex
	next     uint64
	inflight map[uint64]context.CancelFunc
}

func New(log *slog.Logger, client *http.Client, platform core.Platform, limiter *rate.Limiter) *Client {
	if client == nil {
		client = http.DefaultClient
	}
	return &Client{
		log:      log,
		client:   client,
		platform: platform,
		limiter:  limiter,
		inflight: map[uint64]context.CancelFunc{},
	}
}

func (c *Client) Post(ctx context.Context, url string, body []byte) (Response, error) {
	return c.do(ctx, http.MethodPost, url, body)
}

func (c *Client) Head(ctx context.Context, url string) (Response, error) {
	return c.do(ctx, http.MethodHead, url, nil)
}

// Cancel aborts every outstanding request of this client.
func (c *Client) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for id, cancel := range c.inflight {
		cancel()
		delete(c.inflight, id)
	}
}

func (c *Client) track(ctx context.Context) (context.Context, func()) {
	ctx, cancel := context.WithCancel(ctx)
	c.mu.Lock()
	id := c.next
	c.next++
	c.inflight[id] = cancel
	c.mu.Unlock()
	return ctx, func() {
		c.mu.Lock()
		delete(c.inflight, id)
		c.mu.Unlock()
		cancel()
	}
}

func (c *Client) do(ctx context.Context, method, url string, body []byte) (Response, error) {
	ctx, done := c.track(ctx)
	defer done()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return Response{}, fmt.Errorf("%w: %w", core.ErrNetwork, err)
		}
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return Response{}, fmt.Errorf("%w: cannot create request: %w", core.ErrBadArguments, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(HeaderFrameworks, strings.Join(c.platform.Frameworks, ","))
	req.Header.Set(HeaderArchitecture, c.platform.Architecture)

	resp, err := c.client.Do(req)
	if err != nil {
		return Response{}, fmt.Errorf("%w: %s %s: %w", core.ErrNetwork, method, url, err)
	}
	defer c.closeBody(resp.Body)

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return Response{}, fmt.Errorf("%w: cannot read reply: %w", core.ErrNetwork, err)
	}
	reply := Response{Status: resp.StatusCode, Header: resp.Header, Body: payload}

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return reply, fmt.Errorf("%w: status %d", core.ErrCredentials, resp.StatusCode)
	case http.StatusNotFound:
		return reply, fmt.Errorf("%w: status %d", core.ErrServer, resp.StatusCode)
	case http.StatusOK, http.StatusCreated:
		c.log.Debug("store request succeeded", "method", method, "status", resp.StatusCode)
		return reply, nil
	default:
		return reply, fmt.Errorf("%w: unexpected status %d", core.ErrServer, resp.StatusCode)
	}
}

func (c *Client) closeBody(body io.Closer) {
	if err := body.Close(); err != nil {
		c.log.Warn("failed to close response body", "error", err)
	}
}
