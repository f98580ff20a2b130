// Package cloud is the client for the MakerStudio project-storage
// service.
//
// The service is a small REST API that keeps each user's projects as
// Base64-encoded bundle text. The client is deliberately thin: one
// HTTP attempt per call, no caching, no retry. Callers own any polling
// or queueing policy, and every call reflects the service's state at
// that moment.
package cloud

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// Client talks to one project-storage service instance.
type Client struct {
	config *Config
	client *http.Client
	logger hclog.Logger
}

// NewClient creates a client for the service at cfg.BaseURL. A nil cfg
// means a local service instance with defaults.
func NewClient(cfg *Config) (*Client, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	if cfg.TLSVerify == nil {
		cfg.TLSVerify = DefaultConfig().TLSVerify
	}
	if cfg.Logger == nil {
		cfg.Logger = hclog.NewNullLogger()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid client config: %w", err)
	}

	return &Client{
		config: cfg,
		client: cfg.NewHTTPClient(),
		logger: cfg.Logger.Named("cloud"),
	}, nil
}

// BaseURL returns the configured service address.
func (c *Client) BaseURL() string {
	return c.config.BaseURL
}

// doRequest executes one HTTP request and decodes the JSON response
// into result. There is exactly one attempt per call: transport
// failures propagate to the caller, who decides whether the operation
// is worth repeating.
func (c *Client) doRequest(ctx context.Context, method, path string, body any, result any) error {
	endpoint := c.config.BaseURL + path

	var bodyReader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request body: %w", err)
		}
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, bodyReader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.config.UserAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug("sending request", "method", method, "path", path)

	resp, err := c.client.Do(req)
	if err != nil {
		// No response: a transport failure, not an API error.
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	c.logger.Debug("received response",
		"method", method, "path", path, "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{
			Op:         method + " " + path,
			StatusCode: resp.StatusCode,
			Message:    errorMessage(resp.StatusCode, respBody),
		}
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}

const maxErrorBody = 512

// errorMessage extracts a human-readable message from an error
// response. The service reports errors as {"error": "..."}, but
// proxies in front of some deployments answer differently.
func errorMessage(statusCode int, body []byte) string {
	var apiErr struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &apiErr); err == nil {
		if apiErr.Error != "" {
			return apiErr.Error
		}
		if apiErr.Message != "" {
			return apiErr.Message
		}
	}
	if s := strings.TrimSpace(string(body)); s != "" {
		if len(s) > maxErrorBody {
			s = s[:maxErrorBody]
		}
		return s
	}
	return http.StatusText(statusCode)
}

// pathWithQuery appends encoded query parameters to a path.
func pathWithQuery(path string, params map[string]string) string {
	q := url.Values{}
	for k, v := range params {
		q.Set(k, v)
	}
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}
