package uprail

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/natefinch/atomic"
)

// TokenLifetime is the validity window of a UP bearer token as documented
// by the OAuth token service. Tokens older than this are re-exchanged.
const TokenLifetime = 2 * time.Hour

const (
	tokenFilename     = ".token"
	tokenFileHeader   = "# Automatically created ***DO NOT EDIT***"
	keyToken          = "token"
	keyTokenTimestamp = "token_timestamp"
)

// tokenCache persists a bearer token and its issuance timestamp in a flat
// dotenv-format file so tokens survive across process runs. The file is
// not locked; two processes sharing a token path can race on refresh.
type tokenCache struct {
	path     string
	value    string
	issuedAt time.Time
}

// newTokenCache creates the token file with empty entries if it does not
// exist, otherwise loads the stored token. forceNew skips the load so the
// next Token call always performs a fresh exchange.
func newTokenCache(dir string, forceNew bool) (*tokenCache, error) {
	tc := &tokenCache{path: filepath.Join(dir, tokenFilename)}

	if _, err := os.Stat(tc.path); errors.Is(err, fs.ErrNotExist) {
		slog.Warn("token file not found, creating", "path", tc.path)
		if err := tc.write("", time.Time{}); err != nil {
			return nil, err
		}
		return tc, nil
	} else if err != nil {
		return nil, fmt.Errorf("checking token file %s: %w", tc.path, err)
	}

	if forceNew {
		return tc, nil
	}
	if err := tc.load(); err != nil {
		return nil, err
	}
	return tc, nil
}

// load reads both entries from the file. A token whose timestamp is empty
// or unparseable is never trusted, so it loads as unset.
func (tc *tokenCache) load() error {
	vals, err := godotenv.Read(tc.path)
	if err != nil {
		return fmt.Errorf("reading token file %s: %w", tc.path, err)
	}

	issuedAt, err := time.Parse(time.RFC3339, vals[keyTokenTimestamp])
	if err != nil {
		tc.value = ""
		tc.issuedAt = time.Time{}
		return nil
	}

	tc.value = vals[keyToken]
	tc.issuedAt = issuedAt
	return nil
}

// token returns the cached token, reporting ok=false when unset.
func (tc *tokenCache) token() (value string, issuedAt time.Time, ok bool) {
	if tc.value == "" || tc.issuedAt.IsZero() {
		return "", time.Time{}, false
	}
	return tc.value, tc.issuedAt, true
}

// save writes both entries to the file and updates the in-memory copy.
// Saving an empty value clears the stored token.
func (tc *tokenCache) save(value string, issuedAt time.Time) error {
	if err := tc.write(value, issuedAt); err != nil {
		return err
	}
	tc.value = value
	tc.issuedAt = issuedAt
	return nil
}

func (tc *tokenCache) write(value string, issuedAt time.Time) error {
	timestamp := ""
	if !issuedAt.IsZero() {
		timestamp = issuedAt.Format(time.RFC3339)
	}
	content := fmt.Sprintf("%s\n%s=%s\n%s=%s\n",
		tokenFileHeader, keyToken, value, keyTokenTimestamp, timestamp)
	if err := atomic.WriteFile(tc.path, strings.NewReader(content)); err != nil {
		return fmt.Errorf("writing token file %s: %w", tc.path, err)
	}
	return nil
}

// tokenSource is the single authority for bearer tokens. Token returns
// the cached value while it is fresh and performs a credential exchange
// only when the token is absent or older than TokenLifetime. The token
// service rejects rapid re-exchange attempts, so keeping network calls
// out of the fresh path is the point of this type.
type tokenSource struct {
	creds    Credentials
	cache    *tokenCache
	client   *http.Client
	tokenURL string
	now      func() time.Time
}

// Token returns a valid bearer token, exchanging credentials for a new
// one if the cached token is absent or stale.
func (ts *tokenSource) Token(ctx context.Context) (string, error) {
	if value, issuedAt, ok := ts.cache.token(); ok && ts.now().Before(issuedAt.Add(TokenLifetime)) {
		return value, nil
	}
	return ts.refresh(ctx)
}

// refresh performs an unconditional exchange and stores the result.
func (ts *tokenSource) refresh(ctx context.Context) (string, error) {
	value, err := ts.exchange(ctx)
	if err != nil {
		return "", err
	}
	if err := ts.cache.save(value, ts.now()); err != nil {
		return "", err
	}
	slog.Debug("bearer token refreshed", "token_url", ts.tokenURL)
	return value, nil
}

// invalidate clears the token in memory and in storage.
func (ts *tokenSource) invalidate() error {
	return ts.cache.save("", time.Time{})
}

// exchange POSTs client credentials to the OAuth endpoint and extracts
// the access token. A non-200 status is an AuthenticationError and is
// never retried here.
func (ts *tokenSource) exchange(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, ts.tokenURL,
		strings.NewReader("grant_type=client_credentials"))
	if err != nil {
		return "", fmt.Errorf("building token request: %w", err)
	}
	basic := base64.StdEncoding.EncodeToString([]byte(ts.creds.AccessID + ":" + ts.creds.SecretKey))
	req.Header.Set("Authorization", "Basic "+basic)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := ts.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("token exchange: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &AuthenticationError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading token response: %w", err)
	}

	var payload struct {
		AccessToken *string `json:"access_token"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", &ProtocolError{Msg: fmt.Sprintf("token response: %v", err)}
	}
	if payload.AccessToken == nil {
		return "", &ProtocolError{Msg: `token response has no "access_token" field`}
	}
	return *payload.AccessToken, nil
}
