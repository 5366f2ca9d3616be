package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"custodyapi/internal/config"
)

// Introspection is the subset of the RFC 7662 introspection response the
// service consumes. Only the subject identifier is modeled; no other claim
// is carried past the auth boundary.
type Introspection struct {
	Active  bool   `json:"active"`
	Subject string `json:"sub"`
}

// Introspector validates a bearer credential against the external
// introspection service.
type Introspector interface {
	// Introspect submits the raw token and returns the endpoint's verdict.
	// A non-nil result with Active=false means the credential was understood
	// but is expired or revoked; transport and decoding failures return errors.
	Introspect(ctx context.Context, token string) (*Introspection, error)
}

// HTTPIntrospector calls an OAuth2 token-introspection endpoint over HTTP
// using client-credentials basic auth. It is safe for concurrent use.
type HTTPIntrospector struct {
	endpoint     string
	clientID     string
	clientSecret string
	client       *http.Client
}

var _ Introspector = (*HTTPIntrospector)(nil)

// NewHTTPIntrospector creates an introspection client from config.
func NewHTTPIntrospector(cfg config.AuthConfig) (*HTTPIntrospector, error) {
	if cfg.IntrospectionURL == "" {
		return nil, fmt.Errorf("introspection url is required")
	}
	timeout := time.Duration(cfg.TimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &HTTPIntrospector{
		endpoint:     cfg.IntrospectionURL,
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		client: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}, nil
}

// Introspect posts the token as a form body per RFC 7662.
func (i *HTTPIntrospector) Introspect(ctx context.Context, token string) (*Introspection, error) {
	form := url.Values{}
	form.Set("token", token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, i.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("build introspection request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(i.clientID, i.clientSecret)

	resp, err := i.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call introspection endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("introspection endpoint returned status %d", resp.StatusCode)
	}

	var out Introspection
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode introspection response: %w", err)
	}
	return &out, nil
}
