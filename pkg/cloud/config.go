package cloud

import (
	"crypto/tls"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-hclog"
)

// DefaultBaseURL is where a local project-storage service listens.
const DefaultBaseURL = "http://localhost:3001"

const (
	defaultTimeout   = 10 * time.Second
	defaultUserAgent = "cloudsync"
)

// Config contains configuration for the project-storage client. Every
// client carries its own Config; there is no package-level service
// address to mutate.
type Config struct {
	// BaseURL is the base URL of the project-storage service.
	// Example: "https://projects.makerstudio.io"
	BaseURL string `json:"baseUrl"`

	// Timeout for API requests.
	// Default: 10 seconds
	Timeout time.Duration `json:"timeout,omitempty"`

	// UserAgent is sent with every request.
	// Default: "cloudsync"
	UserAgent string `json:"userAgent,omitempty"`

	// TLSVerify controls TLS certificate verification. Set to false
	// only for development against self-signed services.
	TLSVerify *bool `json:"tlsVerify,omitempty"`

	// Logger receives request diagnostics. Defaults to a null logger.
	Logger hclog.Logger `json:"-"`
}

// DefaultConfig returns a Config pointing at a local service instance.
func DefaultConfig() *Config {
	tlsVerify := true
	return &Config{
		BaseURL:   DefaultBaseURL,
		Timeout:   defaultTimeout,
		UserAgent: defaultUserAgent,
		TLSVerify: &tlsVerify,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base URL is required")
	}

	parsedURL, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("base URL must use http or https scheme, got: %s", parsedURL.Scheme)
	}

	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got: %v", c.Timeout)
	}

	return nil
}

// NewHTTPClient creates the HTTP client the storage client sends
// through.
func (c *Config) NewHTTPClient() *http.Client {
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}

	if c.TLSVerify != nil && !*c.TLSVerify {
		transport.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: true,
		}
	}

	return &http.Client{
		Timeout:   c.Timeout,
		Transport: transport,
	}
}
