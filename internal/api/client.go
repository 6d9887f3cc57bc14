// Package api implements the request capability the roster core consumes:
// JSON over HTTP with a fixed client-side timeout, envelope unwrapping for
// list endpoints, and mapping of transport and response failures onto the
// application error taxonomy.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kbelhadj/roster-management/internal"
)

type Config struct {
	BaseURL   string
	AuthToken string
	Timeout   time.Duration
}

type Client struct {
	baseURL    string
	authToken  string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(config Config, logger *slog.Logger) *Client {
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(config.BaseURL, "/"),
		authToken:  config.AuthToken,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// errorBody is the error shape the roster service responds with. Field-level
// errors take precedence over the generic message when surfacing to users.
type errorBody struct {
	Message string                     `json:"message"`
	Detail  string                     `json:"detail"`
	Errors  []internal.ValidationError `json:"errors"`
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body interface{}) ([]byte, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, internal.NewServerError("failed to encode request body", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, internal.NewServerError("failed to build request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())
	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			c.logger.Error("request timed out", "method", method, "path", path)
			appErr := internal.NewNetworkError("request timed out", err)
			appErr.Code = internal.ErrCodeRequestTimeout
			return nil, appErr
		}
		c.logger.Error("request failed", "method", method, "path", path, "error", err)
		return nil, internal.NewNetworkError("could not reach the roster service", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, internal.NewNetworkError("failed to read response", err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return data, nil
	}
	return nil, c.mapError(resp.StatusCode, data, method, path)
}

func isTimeout(err error) bool {
	var timeoutErr interface{ Timeout() bool }
	return errors.As(err, &timeoutErr) && timeoutErr.Timeout()
}

func (c *Client) mapError(status int, body []byte, method, path string) error {
	var parsed errorBody
	_ = json.Unmarshal(body, &parsed)

	message := parsed.Message
	if message == "" {
		message = parsed.Detail
	}

	c.logger.Error("request rejected",
		"method", method,
		"path", path,
		"status", status,
		"message", message)

	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		if message == "" {
			message = "unauthorized"
		}
		return internal.NewAuthError(message, internal.ErrCodeUnauthorized)
	case status == http.StatusNotFound:
		if message == "" {
			message = "record not found"
		}
		return internal.NewNotFoundError(message, internal.ErrCodeRecordNotFound)
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		if message == "" {
			message = "invalid input"
		}
		appErr := internal.NewValidationError(message, internal.ErrCodeValidationFailed)
		if len(parsed.Errors) > 0 {
			appErr.WithDetails(internal.ValidationErrors{Errors: parsed.Errors})
		}
		return appErr
	default:
		if message == "" {
			message = fmt.Sprintf("roster service returned status %d", status)
		}
		return internal.NewServerError(message, nil)
	}
}

// Get performs a GET and decodes the response into out when provided.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out interface{}) error {
	data, err := c.do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	return decodeInto(data, out)
}

// GetList performs a GET against a list endpoint and unwraps the optional
// envelope: the response may be a bare array or an object exposing a
// `results` field, and both are accepted transparently.
func (c *Client) GetList(ctx context.Context, path string, query url.Values) ([]json.RawMessage, error) {
	data, err := c.do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return nil, err
	}
	return DecodeList(data)
}

func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	data, err := c.do(ctx, http.MethodPost, path, nil, body)
	if err != nil {
		return err
	}
	return decodeInto(data, out)
}

func (c *Client) Patch(ctx context.Context, path string, body, out interface{}) error {
	data, err := c.do(ctx, http.MethodPatch, path, nil, body)
	if err != nil {
		return err
	}
	return decodeInto(data, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	_, err := c.do(ctx, http.MethodDelete, path, nil, nil)
	return err
}

func decodeInto(data []byte, out interface{}) error {
	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return internal.NewServerError("failed to decode response", err)
	}
	return nil
}

type listEnvelope struct {
	Results []json.RawMessage `json:"results"`
}

// DecodeList accepts either a bare JSON array or a `results` envelope.
func DecodeList(data []byte) ([]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}
	if trimmed[0] == '[' {
		var list []json.RawMessage
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, internal.NewServerError("failed to decode list response", err)
		}
		return list, nil
	}
	var envelope listEnvelope
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, internal.NewServerError("failed to decode list envelope", err)
	}
	if envelope.Results == nil {
		return nil, internal.NewServerError("list response carries no results field", nil)
	}
	return envelope.Results, nil
}
