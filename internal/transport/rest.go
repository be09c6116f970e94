package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/eshaffer321/ynab-targets-go/internal/types"
	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"
)

const (
	authHeaderKey = "Authorization"
	requestIDKey  = "X-Request-ID"
	contentType   = "application/json"
)

// RESTTransport handles communication with the YNAB REST API
type RESTTransport struct {
	baseURL     string
	httpClient  *http.Client
	retryClient *retryablehttp.Client
	headers     map[string]string
	token       string
	logger      types.Logger
	hooks       *types.Hooks
}

// envelope is the standard YNAB response wrapper
type envelope struct {
	Data  json.RawMessage `json:"data,omitempty"`
	Error *types.APIError `json:"error,omitempty"`
}

// NewRESTTransport creates a new REST transport
func NewRESTTransport(opts *Options) *RESTTransport {
	if opts == nil {
		opts = &Options{}
	}

	// Set defaults
	if opts.BaseURL == "" {
		opts.BaseURL = types.DefaultBaseURL
	}

	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{
			Timeout: types.DefaultTimeout,
		}
	}

	// Create retry client if configured
	var retryClient *retryablehttp.Client
	if opts.RetryConfig != nil {
		retryClient = retryablehttp.NewClient()
		retryClient.HTTPClient = opts.HTTPClient
		retryClient.RetryMax = opts.RetryConfig.MaxRetries
		retryClient.RetryWaitMin = opts.RetryConfig.RetryWait
		retryClient.RetryWaitMax = opts.RetryConfig.MaxWait

		if opts.Logger != nil {
			retryClient.Logger = &retryLogger{logger: opts.Logger}
		}
	}

	// Set default headers
	headers := map[string]string{
		"Accept":       contentType,
		"Content-Type": contentType,
		"User-Agent":   types.UserAgent,
	}

	// Merge custom headers
	for k, v := range opts.Headers {
		headers[k] = v
	}

	return &RESTTransport{
		baseURL:     opts.BaseURL,
		httpClient:  opts.HTTPClient,
		retryClient: retryClient,
		headers:     headers,
		logger:      opts.Logger,
		hooks:       opts.Hooks,
	}
}

// Get executes a GET request against the API and decodes the data envelope into result
func (t *RESTTransport) Get(ctx context.Context, path string, result interface{}) error {
	// Check authentication
	if t.token == "" {
		return types.ErrNotAuthenticated
	}

	// Create HTTP request
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, t.baseURL+path, nil)
	if err != nil {
		return errors.Wrap(err, "failed to create request")
	}

	// Set headers
	for k, v := range t.headers {
		httpReq.Header.Set(k, v)
	}
	httpReq.Header.Set(authHeaderKey, fmt.Sprintf("Bearer %s", t.token))

	// Correlation id for logs and hooks
	requestID := uuid.New().String()
	httpReq.Header.Set(requestIDKey, requestID)

	// Call request hook
	if t.hooks != nil && t.hooks.OnRequest != nil {
		t.hooks.OnRequest(ctx, httpReq)
	}

	// Log request
	if t.logger != nil {
		t.logger.Debug("API request", "path", path, "requestId", requestID)
	}

	// Execute request
	start := time.Now()
	resp, err := t.doRequest(httpReq)
	duration := time.Since(start)

	if err != nil {
		if t.hooks != nil && t.hooks.OnError != nil {
			t.hooks.OnError(ctx, err)
		}
		return err
	}
	defer resp.Body.Close()

	// Call response hook
	if t.hooks != nil && t.hooks.OnResponse != nil {
		t.hooks.OnResponse(ctx, resp, duration)
	}

	// Read response
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read response")
	}

	// Log response
	if t.logger != nil {
		t.logger.Debug("API response", "status", resp.StatusCode, "duration", duration, "size", len(respBody), "requestId", requestID)
	}

	// Check status code
	if resp.StatusCode != http.StatusOK {
		return t.handleHTTPError(resp.StatusCode, respBody, requestID)
	}

	// Parse response envelope
	var env envelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		return errors.Wrap(err, "failed to parse response")
	}

	if env.Error != nil {
		return env.Error
	}

	// Unmarshal data
	if result != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, result); err != nil {
			return errors.Wrap(err, "failed to unmarshal result")
		}
	}

	return nil
}

// SetAuth sets the personal access token
func (t *RESTTransport) SetAuth(token string) {
	t.token = token
}

// doRequest executes the HTTP request with retry if configured
func (t *RESTTransport) doRequest(req *http.Request) (*http.Response, error) {
	if t.retryClient != nil {
		// Convert to retryable request
		retryReq, err := retryablehttp.FromRequest(req)
		if err != nil {
			return nil, err
		}
		return t.retryClient.Do(retryReq)
	}
	return t.httpClient.Do(req)
}

// handleHTTPError handles HTTP errors
func (t *RESTTransport) handleHTTPError(statusCode int, body []byte, requestID string) error {
	// Try to parse the API error envelope
	var env envelope
	_ = json.Unmarshal(body, &env)

	var detail string
	if env.Error != nil {
		detail = env.Error.Detail
	}

	// Map status codes to errors
	switch statusCode {
	case http.StatusUnauthorized:
		return types.ErrNotAuthenticated
	case http.StatusForbidden:
		if env.Error != nil && env.Error.ID == "403.1" {
			return types.ErrSubscriptionLapsed
		}
		return types.ErrNotAuthenticated
	case http.StatusNotFound:
		return types.ErrNotFound
	case http.StatusTooManyRequests:
		return types.ErrRateLimited
	case http.StatusRequestTimeout, http.StatusGatewayTimeout:
		return types.ErrTimeout
	case http.StatusBadRequest:
		return &types.Error{
			Code:       "BAD_REQUEST",
			Message:    detail,
			StatusCode: statusCode,
			RequestID:  requestID,
		}
	default:
		if statusCode >= 500 {
			msg := fmt.Sprintf("server error: %d", statusCode)
			if detail != "" {
				msg = fmt.Sprintf("%s: %s", msg, detail)
			}

			return &types.Error{
				Code:       "SERVER_ERROR",
				Message:    msg,
				StatusCode: statusCode,
				RequestID:  requestID,
				Err:        types.ErrServerError,
			}
		}
		return &types.Error{
			Code:       "HTTP_ERROR",
			Message:    fmt.Sprintf("HTTP error: %d", statusCode),
			StatusCode: statusCode,
			RequestID:  requestID,
		}
	}
}

// Options for REST transport
type Options struct {
	BaseURL     string
	HTTPClient  *http.Client
	Headers     map[string]string
	RetryConfig *types.RetryConfig
	Logger      types.Logger
	Hooks       *types.Hooks
}

// retryLogger adapts our logger to retryablehttp
type retryLogger struct {
	logger types.Logger
}

func (l *retryLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, keysAndValues...)
}

func (l *retryLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info(msg, keysAndValues...)
}

func (l *retryLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l *retryLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn(msg, keysAndValues...)
}
