package sso

import (
	"click-updater/updater/core"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

const (
	SignatureParam = "signature"

	defaultSignatureTTL = 5 * time.Minute
)

// Credentials are the account tokens stored by the single sign-on client.
type Credentials struct {
	ConsumerKey    string `yaml:"consumer_key"`
	ConsumerSecret string `yaml:"consumer_secret"`
	TokenKey       string `yaml:"token_key"`
	TokenSecret    string `yaml:"token_secret"`
}

// SignatureClaims bind a signature to one request method and url.
type SignatureClaims struct {
	Method string `json:"htm"`
	URL    string `json:"htu"`
	jwt.RegisteredClaims
}

// Token signs store urls on behalf of the account.
type Token struct {
	creds Credentials
	ttl   time.Duration
	clock func() time.Time
}

func NewToken(creds Credentials, ttl time.Duration) *Token {
	if ttl <= 0 {
		ttl = defaultSignatureTTL
	}
	return &Token{creds: creds, ttl: ttl, clock: time.Now}
}

func (t *Token) IsValid() bool {
	return t.creds.ConsumerKey != "" && t.creds.ConsumerSecret != "" &&
		t.creds.TokenKey != "" && t.creds.TokenSecret != ""
}

// SignURL appends a signature query parameter to rawURL. The signature is an
// HS256 JWT over the method and URL keyed by the consumer and token secrets.
// This scheme is local to click-updater and is not the store's OAuth 1.0
// header signature, so only endpoints that verify this parameter accept it.
func (t *Token) SignURL(rawURL, method string) (string, error) {
	if !t.IsValid() {
		return "", core.ErrInvalidCredentials
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("%w: cannot parse url: %w", core.ErrBadArguments, err)
	}

	now := t.clock()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, SignatureClaims{
		Method: method,
		URL:    RequestURL(u),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    t.creds.ConsumerKey,
			Subject:   t.creds.TokenKey,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
			ID:        uuid.NewString(),
		},
	})
	signature, err := token.SignedString(SigningKey(t.creds))
	if err != nil {
		return "", fmt.Errorf("failed to sign url: %w", err)
	}

	query := u.Query()
	query.Set(SignatureParam, signature)
	u.RawQuery = query.Encode()
	return u.String(), nil
}

// SigningKey derives the HMAC key from both account secrets.
func SigningKey(creds Credentials) []byte {
	return []byte(creds.ConsumerSecret + "&" + creds.TokenSecret)
}

// RequestURL is the url a signature covers: no query and no fragment.
func RequestURL(u *url.URL) string {
	covered := *u
	covered.RawQuery = ""
	covered.Fragment = ""
	return covered.String()
}

// Provider reads credentials from a YAML file. Once a file has been seen,
// its disappearance is reported as a deletion.
type Provider struct {
	log  *slog.Logger
	path string
	ttl  time.Duration

	mu   sync.Mutex
	seen bool
}

func NewProvider(log *slog.Logger, path string, ttl time.Duration) (*Provider, error) {
	if path == "" {
		return nil, fmt.Errorf("empty credentials file specified")
	}
	return &Provider{log: log, path: path, ttl: ttl}, nil
}

func (p *Provider) RequestCredentials(_ context.Context) (core.SigningToken, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	data, err := os.ReadFile(p.path)
	if errors.Is(err, os.ErrNotExist) {
		if p.seen {
			p.seen = false
			return nil, core.ErrCredentialsDeleted
		}
		return nil, core.ErrCredentialsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials: %w", err)
	}

	var creds Credentials
	if err := yaml.Unmarshal(data, &creds); err != nil {
		return nil, fmt.Errorf("%w: malformed credentials file: %w", core.ErrCredentialsNotFound, err)
	}
	token := NewToken(creds, p.ttl)
	if !token.IsValid() {
		return nil, fmt.Errorf("%w: incomplete credentials", core.ErrCredentialsNotFound)
	}
	p.seen = true
	p.log.Debug("credentials loaded", "consumer_key", creds.ConsumerKey)
	return token, nil
}

// InvalidateCredentials removes the credentials file so the user has to sign
// in again.
func (p *Provider) InvalidateCredentials(_ context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := os.Remove(p.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove credentials: %w", err)
	}
	p.log.Info("credentials invalidated", "path", p.path)
	return nil
}
