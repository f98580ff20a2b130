package notify

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
)

// NtfyConfig configures the push notification sink.
type NtfyConfig struct {
	// ServerURL is the ntfy server (e.g. "https://ntfy.sh").
	ServerURL string

	// Topic is the ntfy topic notifications are published to.
	Topic string

	// Timeout for the publish request. Default: 10 seconds.
	Timeout time.Duration

	Logger hclog.Logger
}

// Ntfy publishes messages to an ntfy topic, so a headless sync box can
// push its results to a phone. Publish failures are logged and
// swallowed: losing a notification must not fail a sync.
type Ntfy struct {
	serverURL string
	topic     string
	client    *http.Client
	logger    hclog.Logger
}

var _ Notifier = (*Ntfy)(nil)

// NewNtfy creates the push sink. Topic is required.
func NewNtfy(cfg NtfyConfig) (*Ntfy, error) {
	if cfg.Topic == "" {
		return nil, fmt.Errorf("ntfy: topic is required")
	}
	if cfg.ServerURL == "" {
		cfg.ServerURL = "https://ntfy.sh"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	logger := cfg.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Ntfy{
		serverURL: strings.TrimRight(cfg.ServerURL, "/"),
		topic:     cfg.Topic,
		client:    &http.Client{Timeout: cfg.Timeout},
		logger:    logger.Named("notify.ntfy"),
	}, nil
}

func (n *Ntfy) Info(msg string) {
	n.publish(msg, "3")
}

func (n *Ntfy) Error(msg string) {
	// 5 is ntfy's max priority.
	n.publish(msg, "5")
}

func (n *Ntfy) publish(msg, priority string) {
	ctx, cancel := context.WithTimeout(context.Background(), n.client.Timeout)
	defer cancel()

	url := fmt.Sprintf("%s/%s", n.serverURL, n.topic)
	req, err := http.NewRequestWithContext(ctx, "POST", url, strings.NewReader(msg))
	if err != nil {
		n.logger.Warn("failed to build ntfy request", "error", err)
		return
	}
	req.Header.Set("Title", "MakerStudio cloud sync")
	req.Header.Set("Priority", priority)

	resp, err := n.client.Do(req)
	if err != nil {
		n.logger.Warn("failed to publish notification", "error", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		n.logger.Warn("ntfy rejected notification", "status", resp.StatusCode)
	}
}
