// README: Parse REST identity-provider client (register and login).
package account

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
)

// ParseUser is the opaque user record returned by the identity provider.
type ParseUser struct {
	ObjectID     string  `json:"objectId"`
	Username     *string `json:"username,omitempty"`
	Email        *string `json:"email,omitempty"`
	SessionToken *string `json:"sessionToken,omitempty"`
	Name         *string `json:"name,omitempty"`
}

// APIError is a non-2xx response from the identity provider. Message carries
// the provider's embedded error text when decodable, else the raw body.
type APIError struct {
	StatusCode int
	Code       int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

type parseErrorResponse struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

// Client talks to a Parse-compatible identity provider over REST.
type Client struct {
	baseURL string
	appID   string
	restKey string
	client  *http.Client
}

func NewClient(baseURL, appID, restKey string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		appID:   appID,
		restKey: restKey,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Register creates a new user. Parse requires a username; the email doubles as one.
func (c *Client) Register(ctx context.Context, name, email, password string) (*ParseUser, error) {
	body, err := json.Marshal(map[string]string{
		"username": email,
		"password": password,
		"email":    email,
		"name":     name,
	})
	if err != nil {
		return nil, fmt.Errorf("parse: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/users", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.applyHeaders(req)

	return c.do(req)
}

// Login authenticates with a username (or email) and password.
func (c *Client) Login(ctx context.Context, usernameOrEmail, password string) (*ParseUser, error) {
	q := url.Values{}
	q.Set("username", usernameOrEmail)
	q.Set("password", password)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/login?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("parse: build request: %w", err)
	}
	c.applyHeaders(req)

	return c.do(req)
}

func (c *Client) applyHeaders(req *http.Request) {
	req.Header.Set("X-Parse-Application-Id", c.appID)
	req.Header.Set("X-Parse-REST-API-Key", c.restKey)
}

func (c *Client) do(req *http.Request) (*ParseUser, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("parse: do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(body))}
		var pe parseErrorResponse
		if err := json.Unmarshal(body, &pe); err == nil && pe.Error != "" {
			apiErr.Code = pe.Code
			apiErr.Message = pe.Error
		}
		return nil, apiErr
	}

	var user ParseUser
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, fmt.Errorf("parse: unmarshal user: %w (raw: %s)", err, body)
	}
	return &user, nil
}
