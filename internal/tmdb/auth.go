package tmdb

import (
	"context"
	"fmt"
	"net/http"
)

// Credential-exchange flow: a request token is created, validated against
// the user's login, then exchanged for a session credential.

type tokenResponse struct {
	Success      bool   `json:"success"`
	RequestToken string `json:"request_token"`
}

type sessionResponse struct {
	Success   bool   `json:"success"`
	SessionID string `json:"session_id"`
}

type validateLoginRequest struct {
	Username     string `json:"username"`
	Password     string `json:"password"`
	RequestToken string `json:"request_token"`
}

type createSessionRequest struct {
	RequestToken string `json:"request_token"`
}

// CreateRequestToken starts the sign-in handshake
func (c *Client) CreateRequestToken(ctx context.Context) (string, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/authentication/token/new", nil, nil)
	if err != nil {
		return "", err
	}

	var resp tokenResponse
	if err := c.parse(body, &resp); err != nil {
		return "", err
	}
	if !resp.Success || resp.RequestToken == "" {
		return "", fmt.Errorf("token request was not granted")
	}
	return resp.RequestToken, nil
}

// ValidateWithLogin approves a request token with the user's credentials
func (c *Client) ValidateWithLogin(ctx context.Context, username, password, requestToken string) error {
	payload := validateLoginRequest{
		Username:     username,
		Password:     password,
		RequestToken: requestToken,
	}
	_, err := c.doRequest(ctx, http.MethodPost, "/authentication/token/validate_with_login", nil, payload)
	return err
}

// CreateSession exchanges an approved request token for a session credential
func (c *Client) CreateSession(ctx context.Context, requestToken string) (string, error) {
	payload := createSessionRequest{RequestToken: requestToken}
	body, err := c.doRequest(ctx, http.MethodPost, "/authentication/session/new", nil, payload)
	if err != nil {
		return "", err
	}

	var resp sessionResponse
	if err := c.parse(body, &resp); err != nil {
		return "", err
	}
	if !resp.Success || resp.SessionID == "" {
		return "", fmt.Errorf("session was not created")
	}
	return resp.SessionID, nil
}

// SignIn runs the full three-step handshake and returns the session
// credential
func (c *Client) SignIn(ctx context.Context, username, password string) (string, error) {
	token, err := c.CreateRequestToken(ctx)
	if err != nil {
		return "", fmt.Errorf("creating request token: %w", err)
	}
	if err := c.ValidateWithLogin(ctx, username, password, token); err != nil {
		return "", fmt.Errorf("validating login: %w", err)
	}
	sessionID, err := c.CreateSession(ctx, token)
	if err != nil {
		return "", fmt.Errorf("creating session: %w", err)
	}
	return sessionID, nil
}
