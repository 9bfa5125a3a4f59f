// Where: internal/infra/license/client.go
// What: License-template API client.
// Why: Fetch license bodies and report why a fetch failed instead of hiding it.
package license

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/poruru-code/projinit/internal/meta"
)

// DefaultBaseURL is the GitHub REST API root.
const DefaultBaseURL = "https://api.github.com"

const (
	acceptHeader   = "application/vnd.github.v3+json"
	defaultTimeout = 10 * time.Second
	maxBodyBytes   = 1 << 20
)

var (
	// ErrNetwork wraps transport failures (DNS, TLS, refused, timeout).
	ErrNetwork = errors.New("license api unreachable")
	// ErrDecode reports a response that is not valid JSON.
	ErrDecode = errors.New("license api returned invalid json")
	// ErrMissingBody reports a JSON response without license text.
	ErrMissingBody = errors.New("license api response has no body")
)

// StatusError reports a non-2xx response.
type StatusError struct {
	Key        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("license %s: unexpected status %d %s", e.Key, e.StatusCode, http.StatusText(e.StatusCode))
}

// Fetcher retrieves raw license text by key.
type Fetcher interface {
	Fetch(ctx context.Context, key string) (string, error)
}

// Client talks to a GitHub-compatible /licenses endpoint.
type Client struct {
	BaseURL    string
	Token      string
	UserAgent  string
	HTTPClient *http.Client
}

// NewClient returns a Client with the default endpoint and timeout.
// An empty baseURL selects DefaultBaseURL.
func NewClient(baseURL, token string) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL:    baseURL,
		Token:      strings.TrimSpace(token),
		UserAgent:  meta.UserAgent,
		HTTPClient: &http.Client{Timeout: defaultTimeout},
	}
}

type licenseResponse struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	Body string `json:"body"`
}

// Fetch issues a single GET for key and returns the license body.
// It never retries.
func (c *Client) Fetch(ctx context.Context, key string) (string, error) {
	endpoint, err := url.JoinPath(c.BaseURL, "licenses", key)
	if err != nil {
		return "", fmt.Errorf("build license url: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("build license request: %w", err)
	}
	req.Header.Set("Accept", acceptHeader)
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	client := c.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &StatusError{Key: key, StatusCode: resp.StatusCode}
	}

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("%w: read body: %v", ErrNetwork, err)
	}
	var decoded licenseResponse
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if strings.TrimSpace(decoded.Body) == "" {
		return "", ErrMissingBody
	}
	return decoded.Body, nil
}

// Render fills the bracketed placeholders used by the license templates.
func Render(body, author string, year int) string {
	y := strconv.Itoa(year)
	return strings.NewReplacer(
		"[year]", y,
		"[yyyy]", y,
		"[fullname]", author,
		"[name of copyright owner]", author,
	).Replace(body)
}
