package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/hktonylee/Autodesk-Fusion-360-MCP-Server/internal/log"
	"github.com/hktonylee/Autodesk-Fusion-360-MCP-Server/internal/model"
)

// Config configures the SDK client. All fields are optional.
type Config struct {
	// BaseURL is the bridge address. Default: http://localhost:5000.
	BaseURL string

	// HTTPClient is the underlying HTTP client. Default: a client with a
	// 40s timeout, enough to outlive the bridge's interactive operations.
	HTTPClient *http.Client

	// Attempts is how often a request is tried on transport failures.
	// Default: 3.
	Attempts int

	// RetryWait is the pause between attempts. Default: 200ms.
	RetryWait time.Duration

	// Logger receives structured log output. Implement the interface from
	// pkg/client/log to plug in your own logger. Default: noop (silent).
	Logger log.Logger
}

func (c *Config) defaults() error {
	if c.BaseURL == "" {
		c.BaseURL = "http://localhost:5000"
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: 40 * time.Second}
	}
	if c.Attempts <= 0 {
		c.Attempts = 3
	}
	if c.RetryWait <= 0 {
		c.RetryWait = 200 * time.Millisecond
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "client.Client"})
	return nil
}

// Result is the bridge's answer to one operation.
type Result struct {
	Success    bool              `json:"success"`
	Message    string            `json:"message"`
	Error      string            `json:"error,omitempty"`
	EntityData *model.EntityData `json:"entity_data,omitempty"`
}

// Client talks to the modeling bridge. Safe for concurrent use.
type Client struct {
	cfg    Config
	logger log.Logger
}

// New creates a new SDK client.
func New(cfg Config) (*Client, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &Client{cfg: cfg, logger: cfg.Logger}, nil
}

// post sends one operation request and decodes the envelope into out.
// Transport failures are retried; any HTTP response ends the retry loop.
func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("could not encode request: %w", err)
	}

	var lastErr error
	for attempt := 1; attempt <= c.cfg.Attempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(c.cfg.RetryWait):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+path, bytes.NewReader(payload))
		if err != nil {
			return fmt.Errorf("could not build request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.cfg.HTTPClient.Do(req)
		if err != nil {
			lastErr = err
			c.logger.Debugf("attempt %d for %s failed: %v", attempt, path, err)
			continue
		}

		err = json.NewDecoder(resp.Body).Decode(out)
		resp.Body.Close()
		if err != nil {
			return fmt.Errorf("could not decode response: %w", err)
		}
		return nil
	}

	return fmt.Errorf("request failed after %d attempts: %w", c.cfg.Attempts, lastErr)
}

// get sends one read request and decodes the response into out.
func (c *Client) get(ctx context.Context, path string, out any) error {
	var lastErr error
	for attempt := 1; attempt <= c.cfg.Attempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(c.cfg.RetryWait):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+path, nil)
		if err != nil {
			return fmt.Errorf("could not build request: %w", err)
		}

		resp, err := c.cfg.HTTPClient.Do(req)
		if err != nil {
			lastErr = err
			c.logger.Debugf("attempt %d for %s failed: %v", attempt, path, err)
			continue
		}

		err = json.NewDecoder(resp.Body).Decode(out)
		resp.Body.Close()
		if err != nil {
			return fmt.Errorf("could not decode response: %w", err)
		}
		return nil
	}

	return fmt.Errorf("request failed after %d attempts: %w", c.cfg.Attempts, lastErr)
}

// TestConnection checks that the bridge front door is reachable.
func (c *Client) TestConnection(ctx context.Context) error {
	var res Result
	if err := c.post(ctx, "/test_connection", struct{}{}, &res); err != nil {
		return err
	}
	if !res.Success {
		return fmt.Errorf("bridge not healthy: %s", res.Message)
	}
	return nil
}
