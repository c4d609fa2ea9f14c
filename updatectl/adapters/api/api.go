package api

import (
	"bytes"
	"click-updater/updatectl/core"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	loginEndpoint   = "/api/login"
	statusEndpoint  = "/api/status"
	updatesEndpoint = "/api/updates"
	checkEndpoint   = "/api/check"
	cancelEndpoint  = "/api/cancel"
)

type Client struct {
	log     *slog.Logger
	client  http.Client
	address string
}

func NewClient(address string, timeout time.Duration, log *slog.Logger) *Client {
	return &Client{
		client:  http.Client{Timeout: timeout},
		log:     log,
		address: address,
	}
}

func (c *Client) Login(ctx context.Context, name, password string) (string, error) {
	fullURL, err := url.JoinPath(c.address, loginEndpoint)
	if err != nil {
		return "", fmt.Errorf("cannot join url path: %w", err)
	}
	body, err := json.Marshal(map[string]string{"name": name, "password": password})
	if err != nil {
		return "", fmt.Errorf("cannot encode login: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fullURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("cannot create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("cannot get response: %w", err)
	}
	defer c.closeBody(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return "", statusError(resp.StatusCode)
	}
	token, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("cannot read token: %w", err)
	}
	return string(token), nil
}

func (c *Client) Status(ctx context.Context) (core.CheckStatus, error) {
	var reply core.CheckStatus
	if err := c.doGetEndpoint(ctx, statusEndpoint, nil, &reply); err != nil {
		return core.CheckStatus{}, fmt.Errorf("failed to get status: %w", err)
	}
	return reply, nil
}

func (c *Client) Updates(ctx context.Context, kind core.Kind) (core.UpdatesResult, error) {
	query := url.Values{}
	if kind != "" {
		query.Set("kind", string(kind))
	}
	var reply core.UpdatesResult
	if err := c.doGetEndpoint(ctx, updatesEndpoint, query, &reply); err != nil {
		return core.UpdatesResult{}, fmt.Errorf("failed to get updates: %w", err)
	}
	return reply, nil
}

func (c *Client) doGetEndpoint(ctx context.Context, endpoint string, query url.Values, result any) error {
	fullURL, err := url.JoinPath(c.address, endpoint)
	if err != nil {
		return fmt.Errorf("cannot join url path: %w", err)
	}
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("cannot create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("cannot get response: %w", err)
	}
	defer c.closeBody(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return statusError(resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("cannot decode reply: %w", err)
	}
	return nil
}

func (c *Client) Check(ctx context.Context) error {
	return c.doMutateEndpoint(ctx, http.MethodPost, checkEndpoint)
}

func (c *Client) Cancel(ctx context.Context) error {
	return c.doMutateEndpoint(ctx, http.MethodPost, cancelEndpoint)
}

func (c *Client) Retry(ctx context.Context, identifier string, revision int64) error {
	return c.doMutateEndpoint(ctx, http.MethodPost, updatesEndpoint, identifier, strconv.FormatInt(revision, 10), "retry")
}

func (c *Client) Drop(ctx context.Context) error {
	return c.doMutateEndpoint(ctx, http.MethodDelete, updatesEndpoint)
}

func (c *Client) doMutateEndpoint(ctx context.Context, method, endpoint string, elem ...string) error {
	fullURL, err := url.JoinPath(c.address, append([]string{endpoint}, elem...)...)
	if err != nil {
		return fmt.Errorf("cannot join url path: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, nil)
	if err != nil {
		return fmt.Errorf("cannot create request: %w", err)
	}
	if tokenValue := ctx.Value(core.JwtTokenContextKey); tokenValue != nil {
		if token, ok := tokenValue.(string); ok {
			req.Header.Set("Authorization", "Token "+token)
		}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("cannot get response: %w", err)
	}
	defer c.closeBody(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return statusError(resp.StatusCode)
	}
	return nil
}

func statusError(code int) error {
	switch code {
	case http.StatusAccepted, http.StatusConflict:
		return core.ErrAlreadyExists
	case http.StatusBadRequest:
		return core.ErrBadArguments
	case http.StatusUnauthorized:
		return core.ErrInvalidCredentials
	case http.StatusNotFound:
		return core.ErrNotFound
	case http.StatusServiceUnavailable, http.StatusTooManyRequests:
		return core.ErrServiceUnavailable
	default:
		return fmt.Errorf("unexpected status code %d", code)
	}
}

func (c *Client) closeBody(body io.Closer) {
	if err := body.Close(); err != nil {
		c.log.Warn("failed to close response body", "error", err)
	}
}
