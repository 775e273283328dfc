package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"payctl/internal/logging"
	"payctl/internal/models"
)

// DefaultTimeout bounds a single request when no timeout is configured
const DefaultTimeout = 30 * time.Second

// Client handles communication with the billing backend
type Client struct {
	// Base URL of the API server
	BaseURL string

	// Authentication token
	AuthToken string

	// HTTP client with a timeout
	client *http.Client

	// Token store for managing authentication tokens
	tokenStore *models.TokenStore

	logger logrus.FieldLogger
}

// Option customises a Client
type Option func(*Client)

// WithTimeout sets the per-request timeout
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.client.Timeout = timeout
		}
	}
}

// NewClient creates a new API client
func NewClient(baseURL string, tokenStore *models.TokenStore, opts ...Option) *Client {
	token := ""
	if tokenStore != nil {
		if storedToken, ok := tokenStore.GetAccessToken(); ok {
			token = storedToken
		}
	}

	httpClient, err := newHTTPClient(DefaultTimeout)
	if err != nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}

	c := &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		AuthToken:  token,
		tokenStore: tokenStore,
		client:     httpClient,
		logger:     logging.NewModuleLogger("api"),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// do sends a JSON request and decodes a JSON response into out when out is non-nil.
// Non-2xx responses and transport failures are returned as *RequestError.
func (c *Client) do(ctx context.Context, method, path string, body any, out any, authenticated bool) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("error marshalling request: %w", err)
		}
		reader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	requestID := uuid.New().String()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if authenticated {
		if c.AuthToken == "" {
			return nil, models.ErrNotAuthenticated
		}
		req.Header.Set("Authorization", "Bearer "+c.AuthToken)
	}

	logger := c.logger.WithFields(logrus.Fields{
		"request_id": requestID,
		"method":     method,
		"path":       path,
	})

	resp, err := c.client.Do(req)
	if err != nil {
		logger.WithError(err).Warn("request failed")
		return nil, &RequestError{Method: method, Path: path, Message: err.Error(), Err: err}
	}
	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			logger.WithError(err).Warn("failed to close response body")
		}
	}(resp.Body)

	logger = logger.WithField("status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		reqErr := newResponseError(method, path, resp.StatusCode, bodyBytes)
		logger.WithField("response_message", reqErr.ResponseMessage).Warn("request rejected")
		return resp, reqErr
	}

	logger.Debug("request completed")

	if out == nil {
		return resp, nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && err != io.EOF {
		return resp, fmt.Errorf("error decoding response: %w", err)
	}

	return resp, nil
}
