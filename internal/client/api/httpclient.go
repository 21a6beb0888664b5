package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lifeplan/lifeplan-cli/internal/client/models"
	"github.com/lifeplan/lifeplan-cli/internal/common"
	"github.com/lifeplan/lifeplan-cli/internal/logging"
)

// HTTPClient is the concrete Client over net/http. Requests carry JSON
// bodies, a generated X-Request-Id, and the bearer token when the
// session holds one. Requests are fired once: no retries, no
// cancellation beyond the caller's context.
type HTTPClient struct {
	baseURL string
	httpc   *http.Client
	tokens  TokenSource
	log     logging.Logger
}

// NewHTTPClient builds a client for the given base URL. A zero timeout
// means requests wait indefinitely.
func NewHTTPClient(baseURL string, timeout time.Duration, tokens TokenSource, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
		tokens:  tokens,
		log:     log,
	}
}

func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, payload any) (int, []byte, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, fmt.Errorf("encoding request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return 0, nil, err
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", requestID)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token, ok := c.tokens.Token(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.log.Debug(ctx, "request", "method", method, "path", path, "request_id", requestID)

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.log.Warn(ctx, "transport failure", "path", path, "request_id", requestID, "err", err)
		return 0, nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	c.log.Debug(ctx, "response", "path", path, "request_id", requestID, "status", resp.StatusCode)
	return resp.StatusCode, data, nil
}

// Start fires a request-code call with the {email} body.
func (c *HTTPClient) Start(ctx context.Context, path string, email string) (Outcome, error) {
	status, body, err := c.do(ctx, http.MethodPost, path, nil, map[string]string{"email": email})
	if err != nil {
		return Outcome{}, err
	}
	if status < 200 || status >= 300 {
		return failureOutcome(body), nil
	}
	return decodeOutcome(body), nil
}

// Complete fires a submit-code call with the mode-specific payload.
func (c *HTTPClient) Complete(ctx context.Context, path string, payload any) (Outcome, error) {
	status, body, err := c.do(ctx, http.MethodPost, path, nil, payload)
	if err != nil {
		return Outcome{}, err
	}
	if status < 200 || status >= 300 {
		return failureOutcome(body), nil
	}
	return decodeOutcome(body), nil
}

// CurrentUser fetches the authenticated profile. Both 401 and 500 map
// to common.ErrUnauthorized: the shell treats either as an implicit
// logout.
func (c *HTTPClient) CurrentUser(ctx context.Context) (*models.User, error) {
	status, body, err := c.do(ctx, http.MethodGet, PathUser, nil, nil)
	if err != nil {
		return nil, err
	}
	if status == http.StatusUnauthorized || status == http.StatusInternalServerError {
		return nil, common.ErrUnauthorized
	}
	if status < 200 || status >= 300 {
		return nil, serverError(status, body)
	}

	var u models.User
	if err := json.Unmarshal(body, &u); err != nil {
		return nil, fmt.Errorf("decoding user: %w", err)
	}
	return &u, nil
}

// ListEvents fetches the full collection; the caller replaces its copy
// wholesale.
func (c *HTTPClient) ListEvents(ctx context.Context, sortKey, order string) ([]models.Event, error) {
	query := url.Values{}
	query.Set("sort", sortKey)
	query.Set("order", order)

	status, body, err := c.do(ctx, http.MethodGet, PathEvent, query, nil)
	if err != nil {
		return nil, err
	}
	if status == http.StatusUnauthorized {
		return nil, common.ErrUnauthorized
	}
	if status < 200 || status >= 300 {
		return nil, serverError(status, body)
	}

	var evs []models.Event
	if err := json.Unmarshal(body, &evs); err != nil {
		return nil, fmt.Errorf("decoding events: %w", err)
	}
	return evs, nil
}

func (c *HTTPClient) CreateEvent(ctx context.Context, e models.Event) (*models.Event, error) {
	return c.sendEvent(ctx, http.MethodPost, e)
}

func (c *HTTPClient) UpdateEvent(ctx context.Context, e models.Event) (*models.Event, error) {
	return c.sendEvent(ctx, http.MethodPut, e)
}

func (c *HTTPClient) sendEvent(ctx context.Context, method string, e models.Event) (*models.Event, error) {
	status, body, err := c.do(ctx, method, PathEvent, nil, e)
	if err != nil {
		return nil, err
	}
	if status == http.StatusUnauthorized {
		return nil, common.ErrUnauthorized
	}
	if status < 200 || status >= 300 {
		return nil, serverError(status, body)
	}

	var saved models.Event
	if err := json.Unmarshal(body, &saved); err != nil {
		return nil, fmt.Errorf("decoding event: %w", err)
	}
	return &saved, nil
}

func serverError(status int, body []byte) error {
	var rb responseBody
	if err := json.Unmarshal(body, &rb); err == nil && rb.Error != "" {
		return &Error{StatusCode: status, Message: rb.Error}
	}
	return &Error{StatusCode: status}
}
