// Copyright (c) sbauth contributors
// SPDX-License-Identifier: MIT

package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the Supabase-specific claims carried by an access token.
type Claims struct {
	jwt.RegisteredClaims
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Role      string `json:"role,omitempty"`
	SessionID string `json:"session_id,omitempty"`
}

// DecodeAccessToken parses an access token without verifying its signature.
// Useful for displaying claims locally; never trust the result for
// authorization decisions.
func DecodeAccessToken(raw string) (*Claims, error) {
	var claims Claims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(raw, &claims); err != nil {
		return nil, NewAuthErrorWithCause(ErrWrongToken, err)
	}
	return &claims, nil
}

// VerifyAccessToken validates an access token against the project's JWT
// secret. Supabase signs access tokens with HS256.
func VerifyAccessToken(raw, secret string) (*Claims, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, NewAuthErrorWithCause(ErrWrongToken, err)
	}
	return &claims, nil
}

// CheckSessionExpiry reports whether the session's access token is past its
// expiry. ExpiresAt is preferred; a session without either timestamp is
// taken as expired.
func CheckSessionExpiry(s *Session) error {
	if s == nil {
		return NewAuthError(ErrNotAuthenticated)
	}
	if s.ExpiresAt > 0 {
		if time.Unix(s.ExpiresAt, 0).After(time.Now()) {
			return nil
		}
		return NewAuthError(ErrWrongToken)
	}

	claims, err := DecodeAccessToken(s.AccessToken)
	if err != nil {
		return err
	}
	if claims.ExpiresAt == nil || !claims.ExpiresAt.After(time.Now()) {
		return NewAuthError(ErrWrongToken)
	}
	return nil
}
