// Package rest implements the remote collaborators over HTTP/JSON.
// Whatever JSON the backend speaks arrives here already parsed into
// the domain structs; the core never sees wire bytes.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"fittrack/internal/domain"
)

// TokenSource supplies the bearer credential of the active principal.
// It returns the empty string when no session is active.
type TokenSource func() string

// Client carries everything the resource clients share: the backend
// base URL, the HTTP client, and the credential source.
type Client struct {
	baseURL string
	http    *http.Client
	token   TokenSource
}

// NewClient creates a Client for the backend at baseURL. A nil
// httpClient gets a default with a sane timeout; the backend owns any
// finer-grained timeout policy.
func NewClient(baseURL string, httpClient *http.Client, token TokenSource) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	if token == nil {
		token = func() string { return "" }
	}
	return &Client{
		baseURL: baseURL,
		http:    httpClient,
		token:   token,
	}
}

type apiError struct {
	Error string `json:"error"`
}

// doJSON performs one request/response round trip. A non-nil out is
// decoded from the response body. Transport failures and 5xx map to
// domain.ErrCollaboratorUnavailable; well-known statuses map to their
// domain errors.
func (c *Client) doJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrCollaboratorUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		return nil
	}

	var remoteMsg apiError
	_ = json.NewDecoder(resp.Body).Decode(&remoteMsg)

	mapped := statusToError(resp.StatusCode)
	if remoteMsg.Error != "" {
		return fmt.Errorf("%w: %s", mapped, remoteMsg.Error)
	}
	return fmt.Errorf("%w: status %d", mapped, resp.StatusCode)
}

// statusToError maps a resource endpoint's status to the domain
// taxonomy. A 401 here means a missing or stale session, not a wrong
// password; the auth client remaps it for its own endpoints, where a
// 401 does mean rejected credentials.
func statusToError(status int) error {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return domain.ErrUnauthenticated
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusConflict:
		return domain.ErrDuplicateAccount
	case http.StatusUnprocessableEntity, http.StatusBadRequest:
		return domain.ErrValidation
	default:
		return domain.ErrCollaboratorUnavailable
	}
}
