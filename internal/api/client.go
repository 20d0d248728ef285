// Package api implements the HTTP access layer for the billing backend.
// Every endpoint wraps its payload in a {success, message, data} envelope;
// the Client unwraps it and hands typed data to the services.
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Config holds the connection settings for the backend API.
type Config struct {
	BaseURL string        // e.g. "http://localhost:8080/api/v1"
	Timeout time.Duration // per-request timeout
}

// Client talks to the billing backend. It carries the bearer token of the
// current session and is safe for concurrent use.
type Client struct {
	baseURL string
	timeout time.Duration

	mu    sync.RWMutex
	token string
}

// NewClient creates a backend client from the given config.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("api base URL is required")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		timeout: timeout,
	}, nil
}

// SetToken attaches a bearer token to all subsequent requests.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// ClearToken drops the stored bearer token.
func (c *Client) ClearToken() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = ""
}

// Token returns the currently stored bearer token, if any.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// envelope is the response wrapper used by every backend endpoint.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) url(path string) string {
	return c.baseURL + "/" + strings.TrimLeft(path, "/")
}

// get performs a GET request against path; query may be empty. The envelope
// data is unmarshalled into out when out is non-nil.
func (c *Client) get(path, query string, out interface{}) error {
	agent := fiber.Get(c.url(path))
	if query != "" {
		agent.QueryString(query)
	}
	return c.do(agent, out)
}

// post performs a POST request with a JSON body.
func (c *Client) post(path string, body, out interface{}) error {
	agent := fiber.Post(c.url(path))
	if body != nil {
		agent.JSON(body)
	}
	return c.do(agent, out)
}

func (c *Client) do(agent *fiber.Agent, out interface{}) error {
	agent.Timeout(c.timeout)
	if token := c.Token(); token != "" {
		agent.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	if err := agent.Parse(); err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("request failed: %w", errs[0])
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if code < http.StatusOK || code >= http.StatusMultipleChoices || !env.Success {
		message := env.Message
		if message == "" {
			message = http.StatusText(code)
		}
		return fmt.Errorf("backend rejected request: %s", message)
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode response data: %w", err)
		}
	}
	return nil
}
