// Copyright (c) sbauth contributors
// SPDX-License-Identifier: MIT

package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	neturl "net/url"
	"strings"
	"time"

	urlBuilder "github.com/sbauth-dev/sbauth-cli/pkg/url"
)

// Client talks to the Supabase Auth (GoTrue) v1 API of one project. All
// fallible methods return *AuthError; callers branch on its ErrorCode.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	session *Session
}

// NewClient builds a client for the project at projectURL using the
// project's anon (or service) API key.
func NewClient(projectURL, apiKey string) (*Client, error) {
	base, err := urlBuilder.Build(projectURL, "auth", "v1")
	if err != nil {
		return nil, NewAuthErrorWithCause(ErrParseURL, err)
	}
	if err := checkHeaderValue(apiKey); err != nil {
		return nil, NewHeaderError(err)
	}

	return &Client{
		baseURL: base,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 30 * time.Second},
	}, nil
}

// UseSession sets the session whose access token authenticates subsequent
// user-scoped calls.
func (c *Client) UseSession(s *Session) {
	c.session = s
}

// CurrentSession returns the session set via UseSession or obtained from the
// last token-issuing call, nil when signed out.
func (c *Client) CurrentSession() *Session {
	return c.session
}

// SignUp registers a new identity. The server answers with a session when
// auto-confirm is on, otherwise with the unconfirmed user embedded in the
// session body.
func (c *Client) SignUp(ctx context.Context, req SignUpRequest) (*Session, error) {
	var session Session
	if err := c.do(ctx, http.MethodPost, "signup", nil, req, &session); err != nil {
		return nil, err
	}
	c.session = &session
	return &session, nil
}

// SignInWithPassword performs the password grant.
func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (*Session, error) {
	query := neturl.Values{"grant_type": []string{"password"}}
	var session Session
	body := passwordGrantRequest{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "token", query, body, &session); err != nil {
		return nil, err
	}
	c.session = &session
	return &session, nil
}

// RefreshSession exchanges a refresh token for a fresh session. An empty
// refreshToken falls back to the current session's token.
func (c *Client) RefreshSession(ctx context.Context, refreshToken string) (*Session, error) {
	if refreshToken == "" && c.session != nil {
		refreshToken = c.session.RefreshToken
	}
	if refreshToken == "" {
		return nil, NewAuthError(ErrMissingRefreshToken)
	}

	query := neturl.Values{"grant_type": []string{"refresh_token"}}
	var session Session
	if err := c.do(ctx, http.MethodPost, "token", query, refreshGrantRequest{RefreshToken: refreshToken}, &session); err != nil {
		return nil, err
	}
	c.session = &session
	return &session, nil
}

// ExchangeCode completes the PKCE flow, trading the authorization code
// received on the callback for a session.
func (c *Client) ExchangeCode(ctx context.Context, authCode, codeVerifier string) (*Session, error) {
	query := neturl.Values{"grant_type": []string{"pkce"}}
	var session Session
	body := pkceGrantRequest{AuthCode: authCode, CodeVerifier: codeVerifier}
	if err := c.do(ctx, http.MethodPost, "token", query, body, &session); err != nil {
		return nil, err
	}
	c.session = &session
	return &session, nil
}

// User fetches the record of the signed-in user.
func (c *Client) User(ctx context.Context) (*User, error) {
	if c.session == nil {
		return nil, NewAuthError(ErrNotAuthenticated)
	}
	var user User
	if err := c.do(ctx, http.MethodGet, "user", nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser changes email, phone, password or metadata of the signed-in
// user.
func (c *Client) UpdateUser(ctx context.Context, req UpdateUserRequest) (*User, error) {
	if c.session == nil {
		return nil, NewAuthError(ErrNotAuthenticated)
	}
	var user User
	if err := c.do(ctx, http.MethodPut, "user", nil, req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// SignOut revokes the current session server-side and drops it locally.
func (c *Client) SignOut(ctx context.Context) error {
	if c.session == nil {
		return NewAuthError(ErrNotAuthenticated)
	}
	if err := c.do(ctx, http.MethodPost, "logout", nil, nil, nil); err != nil {
		return err
	}
	c.session = nil
	return nil
}

// Recover sends a password-recovery email.
func (c *Client) Recover(ctx context.Context, email string) error {
	return c.do(ctx, http.MethodPost, "recover", nil, recoverRequest{Email: email}, nil)
}

// Health reports the auth server's health endpoint.
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	var status HealthStatus
	if err := c.do(ctx, http.MethodGet, "health", nil, nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// ProviderAuthorizeURL builds the /authorize URL that starts an OAuth
// provider sign-in with a PKCE challenge.
func (c *Client) ProviderAuthorizeURL(provider, redirectTo, codeChallenge string) (string, error) {
	authorize, err := urlBuilder.Build(c.baseURL, "authorize")
	if err != nil {
		return "", NewAuthErrorWithCause(ErrParseURL, err)
	}

	parsed, err := neturl.Parse(authorize)
	if err != nil {
		return "", NewAuthErrorWithCause(ErrParseURL, err)
	}
	query := parsed.Query()
	query.Set("provider", provider)
	query.Set("redirect_to", redirectTo)
	query.Set("code_challenge", codeChallenge)
	query.Set("code_challenge_method", "s256")
	parsed.RawQuery = query.Encode()

	return parsed.String(), nil
}

// do runs one request against the auth API: marshal body, set auth
// headers, lift transport and codec failures, classify non-2xx responses.
func (c *Client) do(ctx context.Context, method, path string, query neturl.Values, body, out any) error {
	endpoint, err := urlBuilder.Build(c.baseURL, path)
	if err != nil {
		return NewAuthErrorWithCause(ErrParseURL, err)
	}
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return NewParseError(err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return NewNetworkError(err)
	}

	bearer := c.apiKey
	if c.session != nil && c.session.AccessToken != "" {
		bearer = c.session.AccessToken
	}
	if err := checkHeaderValue(bearer); err != nil {
		return NewHeaderError(err)
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+bearer)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.http.Do(req)
	if err != nil {
		return NewNetworkError(err)
	}
	defer func() {
		_ = res.Body.Close()
	}()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return NewNetworkError(err)
	}

	if res.StatusCode >= http.StatusBadRequest {
		return classifyResponse(res.StatusCode, data)
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return NewParseError(err)
	}
	return nil
}

// classifyResponse turns a non-2xx body into the taxonomy. A body that
// deserializes into the structured payload maps to a specific code when
// the server's error_code is recognized, otherwise wraps the payload
// whole; anything else degrades to the raw status/text pair.
func classifyResponse(status int, body []byte) *AuthError {
	var server ServerError
	if err := json.Unmarshal(body, &server); err != nil {
		return NewStatusError(status, strings.TrimSpace(string(body)))
	}

	if server.ErrorCode != nil {
		switch *server.ErrorCode {
		case "user_already_exists", "email_exists", "phone_exists":
			return NewAuthError(ErrAlreadySignedUp)
		case "invalid_credentials":
			return NewAuthError(ErrWrongCredentials)
		case "user_not_found":
			return NewAuthError(ErrUserNotFound)
		case "bad_jwt", "session_not_found", "session_expired":
			return NewAuthError(ErrWrongToken)
		case "refresh_token_not_found":
			return NewAuthError(ErrMissingRefreshToken)
		}
	}

	return NewServerResponseError(&server)
}

// checkHeaderValue rejects values that cannot travel as an HTTP header
// field (RFC 9110 field-value: no control bytes except horizontal tab).
func checkHeaderValue(v string) error {
	for i := 0; i < len(v); i++ {
		c := v[i]
		if (c < 0x20 && c != '\t') || c == 0x7f {
			return fmt.Errorf("header value contains invalid byte 0x%02x at index %d", c, i)
		}
	}
	return nil
}
