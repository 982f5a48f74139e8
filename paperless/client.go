package paperless

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultBaseURL is the origin of the Paperless document service.
const DefaultBaseURL = "https://paperless.com.ua"

const defaultTimeout = 30 * time.Second

// Client represents a Paperless API client. It holds no credentials and no
// per-call state; every method takes the client id and access token it needs,
// so a single Client is safe for concurrent use.
type Client struct {
	baseURL   string
	userAgent string
	logger    zerolog.Logger

	// httpClient refuses to follow redirects: a 3xx is returned as-is and
	// fails the status check. fileClient follows redirects and is used only
	// for document content downloads, where the service may redirect to a
	// storage location.
	httpClient *http.Client
	fileClient *http.Client
}

// NewClient creates a new Paperless client. An empty baseURL selects the
// production service origin.
func NewClient(baseURL string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")

	options := clientOptions{
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(&options)
	}

	base := &http.Client{Timeout: options.timeout}
	if options.httpClient != nil {
		base = options.httpClient
	}

	noRedirect := *base
	noRedirect.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}
	follow := *base
	follow.CheckRedirect = nil

	return &Client{
		baseURL:    baseURL,
		userAgent:  options.userAgent,
		logger:     logger,
		httpClient: &noRedirect,
		fileClient: &follow,
	}, nil
}

// BaseURL returns the service origin the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// sessionCookie synthesizes the service's session cookie value. The value
// contains a comma and surrounding quotes, which net/http's cookie helpers
// would mangle, so callers set the Cookie header verbatim. This encoding is
// the remote service's wire contract, not a local convention.
func sessionCookie(clientID, accessToken string) string {
	return fmt.Sprintf(`sessionId="Bearer %s, Id %s"`, accessToken, clientID)
}

// newRequest builds a request against the service origin.
func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, errorf("failed to create request: %v", err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	return req, nil
}

// newAuthenticatedRequest builds a request carrying the session cookie.
func (c *Client) newAuthenticatedRequest(ctx context.Context, method, path string, body io.Reader, clientID, accessToken string) (*http.Request, error) {
	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Cookie", sessionCookie(clientID, accessToken))
	return req, nil
}

// do sends the request and returns the response body. Any non-2xx status,
// including an unfollowed redirect, becomes a client error carrying the
// status line.
func (c *Client) do(req *http.Request, followRedirects bool) ([]byte, error) {
	c.logger.Debug().
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Msg("Making Paperless API request")

	hc := c.httpClient
	if followRedirects {
		hc = c.fileClient
	}

	resp, err := hc.Do(req)
	if err != nil {
		return nil, errorf("request failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errorf("failed to read response body: %v", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, errorf("request failed with status %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	return body, nil
}
