package manifest

import (
	"bytes"
	"click-updater/updater/core"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"
)

var listArgs = []string{"list", "--manifest"}

type Provider struct {
	log     *slog.Logger
	command []string
	timeout time.Duration
}

// New returns a provider running "<command> list --manifest". The command
// may carry its own leading arguments.
func New(log *slog.Logger, command string, timeout time.Duration) (*Provider, error) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty package lister command specified")
	}
	return &Provider{log: log, command: fields, timeout: timeout}, nil
}

func (p *Provider) Request(ctx context.Context) ([]core.ManifestEntry, error) {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	args := append(append([]string{}, p.command[1:]...), listArgs...)
	cmd := exec.CommandContext(ctx, p.command[0], args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	p.log.Debug("running package lister", "command", cmd.String())
	out, err := cmd.Output()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = errors.Join(err, ctxErr)
		}
		return nil, fmt.Errorf("%w: %s: %w: %s", core.ErrProcess, cmd.String(), err, strings.TrimSpace(stderr.String()))
	}

	entries, err := Parse(out)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrProcess, err)
	}
	p.log.Debug("manifest parsed", "packages", len(entries))
	return entries, nil
}

type manifestPackage struct {
	Name    string `json:"name"`
	Title   string `json:"title"`
	Version string `json:"version"`
	Hooks   hooks  `json:"hooks"`
}

// hooks keeps only the first hook name, in document order, that declares a
// desktop file.
type hooks struct {
	appID string
}

func (h *hooks) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("hooks: expected object, got %v", tok)
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := keyTok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		if h.appID != "" {
			continue
		}
		var hook map[string]json.RawMessage
		if json.Unmarshal(raw, &hook) != nil {
			continue
		}
		if _, ok := hook["desktop"]; ok {
			h.appID = key
		}
	}
	return nil
}

// Parse decodes the package lister output. Packages without a name are
// skipped.
func Parse(data []byte) ([]core.ManifestEntry, error) {
	var packages []manifestPackage
	if err := json.Unmarshal(data, &packages); err != nil {
		return nil, fmt.Errorf("cannot decode manifest: %w", err)
	}
	entries := make([]core.ManifestEntry, 0, len(packages))
	for _, pkg := range packages {
		if pkg.Name == "" {
			continue
		}
		entries = append(entries, core.ManifestEntry{
			Identifier: pkg.Name,
			Title:      pkg.Title,
			Version:    pkg.Version,
			AppID:      pkg.Hooks.appID,
		})
	}
	return entries, nil
}
