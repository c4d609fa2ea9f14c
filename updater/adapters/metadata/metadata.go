package metadata

import (
	"click-updater/updater/adapters/httpclient"
	"click-updater/updater/core"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"golang.org/x/time/rate"
)

const HeaderClickToken = "X-Click-Token"

type metadataRequest struct {
	Name []string `json:"name"`
}

// Client talks to the click store: package metadata and download tokens.
type Client struct {
	log  *slog.Logger
	http *httpclient.Client
}

func NewClient(log *slog.Logger, client *httpclient.Client) *Client {
	return &Client{log: log, http: client}
}

func (c *Client) RequestMetadata(ctx context.Context, url string, names []string) ([]core.RemotePackage, error) {
	body, err := json.Marshal(metadataRequest{Name: names})
	if err != nil {
		return nil, fmt.Errorf("cannot encode request: %w", err)
	}
	resp, err := c.http.Post(ctx, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to request metadata: %w", err)
	}

	var packages []core.RemotePackage
	if err := json.Unmarshal(resp.Body, &packages); err != nil {
		return nil, fmt.Errorf("%w: cannot decode metadata: %w", core.ErrServer, err)
	}
	c.log.Debug("metadata received", "requested", len(names), "received", len(packages))
	return packages, nil
}

func (c *Client) RequestToken(ctx context.Context, url string) (string, error) {
	resp, err := c.http.Head(ctx, url)
	if err != nil {
		return "", fmt.Errorf("failed to request token: %w", err)
	}
	token := resp.Header.Get(HeaderClickToken)
	if token == "" {
		return "", core.ErrEmptyToken
	}
	return token, nil
}

func (c *Client) Cancel() {
	c.http.Cancel()
}

// Downloader acquires the download token of a single update.
type Downloader struct {
	log    *slog.Logger
	client core.MetadataClient
	update core.Update
}

func NewDownloader(log *slog.Logger, client core.MetadataClient, update core.Update) *Downloader {
	return &Downloader{log: log, client: client, update: update}
}

func (d *Downloader) Download(ctx context.Context, signedURL string) (core.Update, error) {
	update := d.update
	token, err := d.client.RequestToken(ctx, signedURL)
	if err != nil {
		return update, fmt.Errorf("failed to get token for %s: %w", update.Identifier, err)
	}
	d.log.Debug("download token received", "identifier", update.Identifier, "revision", update.Revision)
	update.Token = token
	return update, nil
}

func (d *Downloader) Cancel() {
	d.client.Cancel()
}

// Factory gives every downloader its own client on a shared transport, so
// canceling one download never touches another.
type Factory struct {
	log      *slog.Logger
	client   *http.Client
	platform core.Platform
	limiter  *rate.Limiter
}

func NewFactory(log *slog.Logger, client *http.Client, platform core.Platform, limiter *rate.Limiter) *Factory {
	return &Factory{log: log, client: client, platform: platform, limiter: limiter}
}

func (f *Factory) New(update core.Update) core.TokenDownloader {
	client := NewClient(f.log, httpclient.New(f.log, f.client, f.platform, f.limiter))
	return NewDownloader(f.log, client, update)
}
