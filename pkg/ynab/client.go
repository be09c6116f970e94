package ynab

import (
	"context"
	"net/http"
	"time"

	"github.com/eshaffer321/ynab-targets-go/internal/transport"
	internalTypes "github.com/eshaffer321/ynab-targets-go/internal/types"
	"github.com/getsentry/sentry-go"
	"github.com/pkg/errors"
)

const (
	// DefaultBaseURL is the default YNAB API base URL
	DefaultBaseURL = "https://api.ynab.com/v1"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second

	// LastUsedBudgetID can be passed wherever a budget ID is expected to
	// refer to the most recently used budget
	LastUsedBudgetID = "last-used"

	// CurrentMonth can be passed wherever a month is expected to refer to
	// the current calendar month
	CurrentMonth = "current"
)

// Client is the main YNAB API client
type Client struct {
	// Service interfaces
	Budgets    BudgetService
	Categories CategoryService
	Months     MonthService

	// Internal fields
	baseURL    string
	httpClient *http.Client
	transport  Transport
	options    *ClientOptions
}

// ClientOptions configures the client
type ClientOptions struct {
	// BaseURL overrides the default API base URL
	BaseURL string

	// HTTPClient allows using a custom HTTP client
	HTTPClient *http.Client

	// Timeout sets the HTTP client timeout
	Timeout time.Duration

	// Token is the YNAB personal access token
	Token string

	// Logger for debug logging
	Logger Logger

	// RetryConfig configures retry behavior
	RetryConfig *internalTypes.RetryConfig

	// RateLimiter for rate limiting
	RateLimiter RateLimiter

	// Hooks for observability
	Hooks *internalTypes.Hooks

	// SentryDSN enables Sentry error tracking when set
	SentryDSN string

	// SentryOptions allows custom Sentry configuration
	SentryOptions *sentry.ClientOptions
}

// Logger interface for logging
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

// RateLimiter interface for rate limiting
type RateLimiter interface {
	Wait(ctx context.Context) error
}

// Transport handles HTTP communication with the API
type Transport interface {
	Get(ctx context.Context, path string, result interface{}) error
	SetAuth(token string)
}

// NewClient creates a new YNAB client
func NewClient(opts *ClientOptions) (*Client, error) {
	if opts == nil {
		opts = &ClientOptions{}
	}

	// Initialize Sentry if DSN is provided
	if opts.SentryDSN != "" || opts.SentryOptions != nil {
		sentryOpts := sentry.ClientOptions{}

		// Use provided options if available, otherwise create new ones
		if opts.SentryOptions != nil {
			sentryOpts = *opts.SentryOptions
		}

		// Override DSN if provided separately
		if opts.SentryDSN != "" {
			sentryOpts.Dsn = opts.SentryDSN
		}

		// Set default environment if not provided
		if sentryOpts.Environment == "" {
			sentryOpts.Environment = "production"
		}

		// Initialize Sentry
		if err := sentry.Init(sentryOpts); err != nil {
			// Log error but don't fail client creation
			if opts.Logger != nil {
				opts.Logger.Error("Failed to initialize Sentry", "error", err)
			}
		}
	}

	// Set defaults
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}

	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{
			Timeout: DefaultTimeout,
		}
	}

	if opts.Timeout > 0 {
		opts.HTTPClient.Timeout = opts.Timeout
	}

	// Create transport using the internal package
	transportOpts := &transport.Options{
		BaseURL:     opts.BaseURL,
		HTTPClient:  opts.HTTPClient,
		RetryConfig: opts.RetryConfig,
		Logger:      opts.Logger,
		Hooks:       opts.Hooks,
	}
	trans := transport.NewRESTTransport(transportOpts)

	// Set auth if token provided
	if opts.Token != "" {
		trans.SetAuth(opts.Token)
	}

	// Create client
	c := &Client{
		baseURL:    opts.BaseURL,
		httpClient: opts.HTTPClient,
		transport:  trans,
		options:    opts,
	}

	// Initialize services
	c.initServices()

	return c, nil
}

// NewClientWithToken creates a client with a personal access token
func NewClientWithToken(token string) (*Client, error) {
	return NewClient(&ClientOptions{
		Token: token,
	})
}

// initServices initializes all service implementations
func (c *Client) initServices() {
	c.Budgets = &budgetService{client: c}
	c.Categories = &categoryService{client: c}
	c.Months = &monthService{client: c}
}

// SetToken sets the personal access token
func (c *Client) SetToken(token string) {
	c.transport.SetAuth(token)
}

// get executes a GET request against the API
func (c *Client) get(ctx context.Context, path string, result interface{}) error {
	// Request hook
	if c.options.Hooks != nil && c.options.Hooks.OnRequest != nil {
		// Create pseudo request for hook
		req, _ := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
		c.options.Hooks.OnRequest(ctx, req)
	}

	// Rate limiting
	if c.options.RateLimiter != nil {
		if err := c.options.RateLimiter.Wait(ctx); err != nil {
			// Capture rate limiter errors in Sentry
			if hub := sentry.GetHubFromContext(ctx); hub != nil {
				hub.CaptureException(err)
			} else {
				sentry.CaptureException(err)
			}
			return errors.Wrap(err, "rate limiter")
		}
	}

	// Execute request
	start := time.Now()
	err := c.transport.Get(ctx, path, result)
	duration := time.Since(start)

	// Capture errors in Sentry
	if err != nil {
		captureRequestError(ctx, err, path, duration)
	}

	// Response hook
	if c.options.Hooks != nil && c.options.Hooks.OnResponse != nil {
		// Create pseudo response for hook
		resp := &http.Response{StatusCode: http.StatusOK}
		if err != nil {
			resp.StatusCode = http.StatusInternalServerError
		}
		c.options.Hooks.OnResponse(ctx, resp, duration)
	}

	// Error hook
	if err != nil && c.options.Hooks != nil && c.options.Hooks.OnError != nil {
		c.options.Hooks.OnError(ctx, err)
	}

	return err
}

// captureRequestError reports a failed API request to Sentry with
// request context attached
func captureRequestError(ctx context.Context, err error, path string, duration time.Duration) {
	scopeFn := func(scope *sentry.Scope) {
		scope.SetTag("api.path", path)
		scope.SetContext("request", map[string]interface{}{
			"path":     path,
			"duration": duration.String(),
		})
	}

	if hub := sentry.GetHubFromContext(ctx); hub != nil {
		hub.WithScope(func(scope *sentry.Scope) {
			scopeFn(scope)
			hub.CaptureException(err)
		})
		return
	}

	sentry.WithScope(func(scope *sentry.Scope) {
		scopeFn(scope)
		sentry.CaptureException(err)
	})
}

// Close flushes any pending Sentry events and performs cleanup
func (c *Client) Close() {
	// Flush Sentry events with a 2 second timeout
	sentry.Flush(2 * time.Second)
}
