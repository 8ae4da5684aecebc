// Package api is the client for the remote authentication and registration
// service. The rest of the application treats it as an opaque collaborator:
// it returns typed error categories that screens map to user-facing alerts,
// and never mutates application state itself.
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

	"github.com/jessmaeeGit/konek-kalusugan/internal/config"
)

// Error categories surfaced to the UI. Screens branch on these to pick the
// alert wording; anything else is a generic connection failure.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrServerUnavailable  = errors.New("server is currently unavailable")
	ErrConnection         = errors.New("failed to connect to the server")
)

// User is the profile payload returned by a successful login.
type User struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// authResponse is the wire shape shared by the login and register endpoints.
type authResponse struct {
	Success bool   `json:"success"`
	User    *User  `json:"user,omitempty"`
	Message string `json:"message,omitempty"`
}

// RegisterRequest carries the fields submitted by the registration form.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Barangay is one entry of the barangay directory.
type Barangay struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// AuthClient is the contract consumed by the UI layer. The interface exists
// for mocking; production code uses HTTPClient.
type AuthClient interface {
	Login(ctx context.Context, email, password string) (*User, error)
	Register(ctx context.Context, req RegisterRequest) error
	Barangays(ctx context.Context) ([]Barangay, error)
}

// HTTPClient implements AuthClient over plain HTTP.
type HTTPClient struct {
	BaseURL string
	Client  *http.Client
}

// NewHTTPClient creates a client with configured timeouts. It validates the
// base URL eagerly so misconfiguration surfaces at startup, not mid-login.
func NewHTTPClient(baseURL string) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrInvalidURL, err)
	}
	if u.Scheme != config.SchemeHTTP && u.Scheme != config.SchemeHTTPS {
		return nil, fmt.Errorf("%s: %s", config.ErrProtocol, u.Scheme)
	}

	return &HTTPClient{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: config.HTTPTimeout},
	}, nil
}

// Login submits credentials and returns the user payload on success.
func (c *HTTPClient) Login(ctx context.Context, email, password string) (*User, error) {
	body := map[string]string{"email": email, "password": password}

	var out authResponse
	if err := c.post(ctx, config.RouteLogin, body, &out); err != nil {
		return nil, err
	}

	if !out.Success {
		if out.Message != "" {
			return nil, fmt.Errorf("%w: %s", ErrInvalidCredentials, out.Message)
		}
		return nil, ErrInvalidCredentials
	}
	return out.User, nil
}

// Register creates an account. A non-success response surfaces the service
// message.
func (c *HTTPClient) Register(ctx context.Context, req RegisterRequest) error {
	var out authResponse
	if err := c.post(ctx, config.RouteRegister, req, &out); err != nil {
		return err
	}

	if !out.Success {
		if out.Message != "" {
			return fmt.Errorf("%w: %s", ErrServerUnavailable, out.Message)
		}
		return ErrServerUnavailable
	}
	return nil
}

// Barangays fetches the barangay directory used by the address selectors.
func (c *HTTPClient) Barangays(ctx context.Context) ([]Barangay, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+config.RouteBarangays, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrRequestBuild, err)
	}
	req.Header.Set(config.HeaderAccept, config.MimeJSON)
	req.Header.Set(config.HeaderUserAgent, config.UserAgent)

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := categorizeStatus(resp.StatusCode); err != nil {
		return nil, err
	}

	var out []Barangay
	if err := decodeJSON(resp.Body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// post sends a JSON body and decodes the categorized response.
func (c *HTTPClient) post(ctx context.Context, route string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrRequestEncode, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+route, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrRequestBuild, err)
	}
	req.Header.Set(config.HeaderContentType, config.MimeJSON)
	req.Header.Set(config.HeaderAccept, config.MimeJSON)
	req.Header.Set(config.HeaderUserAgent, config.UserAgent)

	resp, err := c.Client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	defer func() { _ = resp.Body.Close() }()

	slog.Debug(config.MsgAPIResponse,
		config.LogKeyComponent, config.CompAPI,
		config.LogKeyURL, route,
		config.LogKeyStatus, resp.StatusCode,
	)

	if err := categorizeStatus(resp.StatusCode); err != nil {
		return err
	}
	return decodeJSON(resp.Body, out)
}

// categorizeStatus maps HTTP failures to the alert categories the screens
// understand.
func categorizeStatus(status int) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusUnauthorized:
		return ErrInvalidCredentials
	case status >= 500:
		return ErrServerUnavailable
	default:
		return fmt.Errorf("%w: unexpected status %d", ErrConnection, status)
	}
}

func decodeJSON(r io.Reader, out any) error {
	limited := io.LimitReader(r, config.MaxHTTPResponseSize)
	if err := json.NewDecoder(limited).Decode(out); err != nil {
		return fmt.Errorf("%s: %w", config.ErrResponseDecode, err)
	}
	return nil
}
