package dashapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pulseboard/pulseboard/schema"
)

// defaultTimeout bounds every upstream call; the dashboard blocks on these.
const defaultTimeout = 15 * time.Second

// HTTPClient is the production Client speaking JSON over HTTP.
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

var _ Client = &HTTPClient{} // Compile-time check

// NewHTTPClient returns a Client for the given API base URL.
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: defaultTimeout},
	}
}

// Login implements Client.
func (c *HTTPClient) Login(ctx context.Context, creds schema.Credentials) (schema.Session, error) {
	var session schema.Session
	err := c.do(ctx, http.MethodPost, "/auth/login", "", creds, &session)
	return session, err
}

// Logout implements Client.
func (c *HTTPClient) Logout(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", token, nil, nil)
}

// Register implements Client.
func (c *HTTPClient) Register(ctx context.Context, reg schema.Registration) (schema.Session, error) {
	var session schema.Session
	err := c.do(ctx, http.MethodPost, "/auth/register", "", reg, &session)
	return session, err
}

// CurrentUser implements Client.
func (c *HTTPClient) CurrentUser(ctx context.Context, token string) (schema.User, error) {
	var user schema.User
	err := c.do(ctx, http.MethodGet, "/auth/me", token, nil, &user)
	return user, err
}

// ProjectsOverview implements Client.
func (c *HTTPClient) ProjectsOverview(ctx context.Context, token string) (schema.ProjectsOverview, error) {
	var overview schema.ProjectsOverview
	err := c.do(ctx, http.MethodGet, "/projects/overview", token, nil, &overview)
	return overview, err
}

// do issues one JSON request and decodes the response into out when out is
// non-nil. Non-2xx responses become errors carrying the status and a
// truncated body excerpt.
func (c *HTTPClient) do(ctx context.Context, method, path, token string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s %s returned %d: %s", method, path, resp.StatusCode, strings.TrimSpace(string(excerpt)))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}
