package cloud

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
)

// Client signs and dispatches commands against the API. It holds no state
// that changes after construction and is safe for concurrent use.
type Client struct {
	baseURL    string
	signer     *Signer
	dispatcher Dispatcher
	hooks      []CommandHook
	logger     hclog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithDispatcher replaces the HTTP dispatcher.
func WithDispatcher(d Dispatcher) Option {
	return func(c *Client) {
		c.dispatcher = d
	}
}

// WithHooks registers command hooks. They run in the order given.
func WithHooks(hooks ...CommandHook) Option {
	return func(c *Client) {
		c.hooks = append(c.hooks, hooks...)
	}
}

// WithLogger sets the client logger.
func WithLogger(logger hclog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient creates a new API client from cfg.
func NewClient(cfg Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid client config: %w", err)
	}

	c := &Client{
		baseURL: cfg.BaseURL,
		signer:  NewSigner(cfg.AppSID, cfg.AppKey),
		logger:  hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.Named("cloud")

	if c.dispatcher == nil {
		c.dispatcher = NewHTTPDispatcher(cfg.NewHTTPClient(), cfg.UserAgent, c.logger)
	}

	return c, nil
}

// BaseURL returns the product base URI.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Command is an unsigned command.
type Command struct {
	Method      string
	URI         *URI
	Body        []byte
	ContentType string
	Document    string
}

// ProcessCommand signs cmd.URI and dispatches it.
func (c *Client) ProcessCommand(ctx context.Context, cmd Command) (*Response, error) {
	uri := cmd.URI.String()

	signed, err := c.signer.Sign(uri)
	if err != nil {
		return nil, err
	}

	req := &Request{
		Method:      cmd.Method,
		URI:         uri,
		SignedURI:   signed,
		Body:        cmd.Body,
		ContentType: cmd.ContentType,
		Document:    cmd.Document,
		RequestID:   uuid.NewString(),
	}

	for _, h := range c.hooks {
		h.BeforeCommand(ctx, req)
	}

	resp, err := c.dispatcher.Send(ctx, req)

	for _, h := range c.hooks {
		h.AfterCommand(ctx, req, resp, err)
	}

	return resp, err
}
