// Package uprail is a typed Go client for the Union Pacific customer
// API. It manages the bearer-token lifecycle (credential exchange, 2-hour
// expiry, file-backed caching), builds query URLs, and maps JSON
// responses into the validated record shapes of the model package.
//
// A client instance is not safe for concurrent use: the token state it
// owns is mutated without locking, and the backing token file carries no
// cross-process lock either.
package uprail

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/google/go-querystring/query"
	"github.com/gregjones/httpcache"

	"github.com/jkp717/uprail-go/model"
)

const (
	defaultBaseURL = "https://customer.api.up.com"

	routesPath    = "/services/v2/routes"
	locationsPath = "/services/v2/locations"
	shipmentsPath = "/services/v2/shipments"
	casesPath     = "/services/v2/cases"
	waybillsPath  = "/services/v2/waybills"
	equipmentPath = "/services/v2/equipment"
	oauthPath     = "/oauth/token"

	// Layout of the Date header sent on every resource request.
	dateHeaderLayout = "2006-01-02T15:04:05Z"
)

// Client is a synchronous, single-threaded client for the UP customer
// API. Construct one per token-store directory with NewClient.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     *tokenSource
	raw        bool
}

// Response wraps the http.Response of a resource call and carries the
// already-read body. In raw output mode the typed return values are nil
// and Raw is the consumer-facing result.
type Response struct {
	*http.Response
	Raw json.RawMessage
}

type clientOptions struct {
	accessID      string
	secretKey     string
	envDir        string
	forceNewToken bool
	raw           bool
	httpClient    *http.Client
	baseURL       string
}

// Option configures a Client during construction.
type Option func(*clientOptions)

// WithCredentials supplies the API identity explicitly. When both values
// are non-empty the .env credential source is never read.
func WithCredentials(accessID, secretKey string) Option {
	return func(o *clientOptions) {
		o.accessID = accessID
		o.secretKey = secretKey
	}
}

// WithEnvDir sets the directory holding the .env credential file and the
// .token cache file. Defaults to the current working directory.
func WithEnvDir(dir string) Option {
	return func(o *clientOptions) { o.envDir = dir }
}

// WithForceNewToken skips loading any stored token, guaranteeing a fresh
// credential exchange on the first authenticated call.
func WithForceNewToken() Option {
	return func(o *clientOptions) { o.forceNewToken = true }
}

// WithRawOutput bypasses record mapping for the lifetime of the client:
// resource methods return nil typed values and consumers read the
// unmodified JSON from Response.Raw.
func WithRawOutput() Option {
	return func(o *clientOptions) { o.raw = true }
}

// WithHTTPClient replaces the default HTTP client. Use this to impose
// timeouts; the client itself defines no timeout policy.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *clientOptions) { o.httpClient = hc }
}

// WithBaseURL overrides the production API base URL, primarily for tests
// against an httptest server.
func WithBaseURL(base string) Option {
	return func(o *clientOptions) { o.baseURL = base }
}

// NewClient resolves credentials, opens (or creates) the token cache, and
// returns a ready client. The default transport caches GET responses in
// memory using ETag conditional requests.
func NewClient(opts ...Option) (*Client, error) {
	var o clientOptions
	for _, opt := range opts {
		opt(&o)
	}

	if o.envDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolving working directory: %w", err)
		}
		o.envDir = wd
	}
	if o.baseURL == "" {
		o.baseURL = defaultBaseURL
	}
	if o.httpClient == nil {
		o.httpClient = &http.Client{Transport: httpcache.NewMemoryCacheTransport()}
	}

	creds, err := resolveCredentials(o.accessID, o.secretKey, o.envDir)
	if err != nil {
		return nil, err
	}

	cache, err := newTokenCache(o.envDir, o.forceNewToken)
	if err != nil {
		return nil, err
	}

	return &Client{
		baseURL:    o.baseURL,
		httpClient: o.httpClient,
		raw:        o.raw,
		tokens: &tokenSource{
			creds:    creds,
			cache:    cache,
			client:   o.httpClient,
			tokenURL: o.baseURL + oauthPath,
			now:      time.Now,
		},
	}, nil
}

// RefreshToken forces a credential exchange regardless of the cached
// token's age and stores the result.
func (c *Client) RefreshToken(ctx context.Context) error {
	_, err := c.tokens.refresh(ctx)
	return err
}

// InvalidateToken clears the cached token in memory and on disk. The next
// authenticated call performs a fresh exchange.
func (c *Client) InvalidateToken() error {
	return c.tokens.invalidate()
}

// buildURL joins the base URL, resource path, and encoded query
// parameters. Absent optional parameters are omitted entirely and
// list-valued parameters are comma-joined under a single key.
func buildURL(base, path string, params any) (string, error) {
	vals, err := query.Values(params)
	if err != nil {
		return "", fmt.Errorf("encoding query parameters for %s: %w", path, err)
	}
	u := base + path
	if len(vals) > 0 {
		u += "?" + vals.Encode()
	}
	return u, nil
}

// get issues an authenticated GET and returns the response with its body
// read. Statuses other than 200 and 206 become TransportErrors.
func (c *Client) get(ctx context.Context, path string, params any) (*Response, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	u, err := buildURL(c.baseURL, path, params)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", u, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Date", time.Now().UTC().Format(dateHeaderLayout))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling %s: %w", u, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response from %s: %w", u, err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusPartialContent {
		return nil, &TransportError{URL: u, StatusCode: resp.StatusCode, Body: string(body)}
	}

	slog.Debug("up api call", "url", u, "status", resp.StatusCode, "bytes", len(body))
	return &Response{Response: resp, Raw: body}, nil
}

// decodeOne maps a single-object response unless the client is in raw
// output mode.
func decodeOne[T any](c *Client, resp *Response) (*T, error) {
	if c.raw {
		return nil, nil
	}
	return model.Decode[T](resp.Raw)
}

// decodeList maps an array response unless the client is in raw output
// mode.
func decodeList[T any](c *Client, resp *Response) ([]T, error) {
	if c.raw {
		return nil, nil
	}
	return model.DecodeList[T](resp.Raw)
}

func byIDPath(resource, id string) string {
	return resource + "/" + url.PathEscape(id)
}
