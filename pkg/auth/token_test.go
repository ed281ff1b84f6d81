// Copyright (c) sbauth contributors
// SPDX-License-Identifier: MIT

package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, secret string, expiresAt time.Time) string {
	t.Helper()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Email: "ada@example.com",
		Role:  "authenticated",
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return raw
}

func Test_VerifyAccessToken_Valid(t *testing.T) {
	raw := signedToken(t, "project-secret", time.Now().Add(time.Hour))

	claims, err := VerifyAccessToken(raw, "project-secret")

	assert.Nil(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.Equal(t, "authenticated", claims.Role)
}

func Test_VerifyAccessToken_WrongSecret(t *testing.T) {
	raw := signedToken(t, "project-secret", time.Now().Add(time.Hour))

	_, err := VerifyAccessToken(raw, "other-secret")

	code, _ := CodeOf(err)
	assert.Equal(t, ErrWrongToken, code)
	assert.Equal(t, "JWT Is Invalid", err.Error())
	assert.True(t, errors.Is(err, jwt.ErrTokenSignatureInvalid))
}

func Test_VerifyAccessToken_Expired(t *testing.T) {
	raw := signedToken(t, "project-secret", time.Now().Add(-time.Hour))

	_, err := VerifyAccessToken(raw, "project-secret")

	code, _ := CodeOf(err)
	assert.Equal(t, ErrWrongToken, code)
	assert.True(t, errors.Is(err, jwt.ErrTokenExpired))
}

func Test_DecodeAccessToken_NoSecretNeeded(t *testing.T) {
	raw := signedToken(t, "project-secret", time.Now().Add(time.Hour))

	claims, err := DecodeAccessToken(raw)

	assert.Nil(t, err)
	assert.Equal(t, "user-1", claims.Subject)
}

func Test_DecodeAccessToken_Garbage(t *testing.T) {
	_, err := DecodeAccessToken("not-a-jwt")

	code, _ := CodeOf(err)
	assert.Equal(t, ErrWrongToken, code)
	assert.NotNil(t, errors.Unwrap(err))
}

func Test_CheckSessionExpiry_Fresh(t *testing.T) {
	s := &Session{ExpiresAt: time.Now().Add(time.Hour).Unix()}

	assert.Nil(t, CheckSessionExpiry(s))
}

func Test_CheckSessionExpiry_Expired(t *testing.T) {
	s := &Session{ExpiresAt: time.Now().Add(-time.Hour).Unix()}

	err := CheckSessionExpiry(s)

	code, _ := CodeOf(err)
	assert.Equal(t, ErrWrongToken, code)
}

func Test_CheckSessionExpiry_NoSession(t *testing.T) {
	err := CheckSessionExpiry(nil)

	code, _ := CodeOf(err)
	assert.Equal(t, ErrNotAuthenticated, code)
}

func Test_CheckSessionExpiry_FallsBackToClaims(t *testing.T) {
	s := &Session{AccessToken: signedToken(t, "project-secret", time.Now().Add(time.Hour))}

	assert.Nil(t, CheckSessionExpiry(s))
}
