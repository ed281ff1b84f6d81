// Copyright (c) sbauth contributors
// SPDX-License-Identifier: MIT

package auth

import (
	"errors"
	"fmt"
)

// ErrorCode identifies one failure case of the client. The set is closed:
// every fallible operation of this library resolves to exactly one code,
// so callers can switch over it without a catch-all branch.
type ErrorCode int

const (
	// ErrAlreadySignedUp - sign-up attempted for an identity that already exists.
	ErrAlreadySignedUp ErrorCode = iota
	// ErrWrongCredentials - the email/password combination does not match.
	ErrWrongCredentials
	// ErrUserNotFound - the requested user record does not exist.
	ErrUserNotFound
	// ErrNotAuthenticated - the operation requires a session and none is set.
	ErrNotAuthenticated
	// ErrMissingRefreshToken - a refresh was attempted without a refresh token.
	ErrMissingRefreshToken
	// ErrWrongToken - the access token fails signature or claim validation.
	ErrWrongToken
	// ErrInternal - unclassified internal failure.
	ErrInternal
	// ErrNetwork - failure at the HTTP transport layer.
	ErrNetwork
	// ErrParse - a body failed to deserialize into the expected structure.
	ErrParse
	// ErrInvalidHeaderValue - a value could not be encoded as an HTTP header.
	ErrInvalidHeaderValue
	// ErrInvalidEnvironmentVariable - required configuration could not be
	// read from the process environment.
	ErrInvalidEnvironmentVariable
	// ErrParseURL - a URL string failed to parse.
	ErrParseURL
	// ErrServerResponse - the auth server returned a structured error payload.
	ErrServerResponse
	// ErrHTTPStatus - a call failed with a status/message pair that did not
	// carry a structured payload.
	ErrHTTPStatus
)

// AuthError is the single error surface of the client. Exactly one code is
// active per value; Status/Message are set only for ErrHTTPStatus and
// Server only for ErrServerResponse. Values are immutable once constructed.
type AuthError struct {
	Code    ErrorCode
	Status  int
	Message string
	Server  *ServerError
	Cause   error
}

func (e *AuthError) Error() string {
	switch e.Code {
	case ErrAlreadySignedUp:
		return "User Already Exists"
	case ErrWrongCredentials:
		return "Invalid Credentials"
	case ErrUserNotFound:
		return "User Not Found"
	case ErrNotAuthenticated:
		return "Supabase Client not Authenticated"
	case ErrMissingRefreshToken:
		return "Missing Refresh Token"
	case ErrWrongToken:
		return "JWT Is Invalid"
	case ErrInternal:
		return "Internal Error"
	case ErrNetwork:
		return "Network Error"
	case ErrParse:
		return "Failed to Parse"
	case ErrInvalidHeaderValue:
		return "Header Value is Invalid"
	case ErrInvalidEnvironmentVariable:
		return "Environment Variable Unreadable"
	case ErrParseURL:
		return "Failed to parse URL"
	case ErrServerResponse:
		return e.Server.Error()
	case ErrHTTPStatus:
		return fmt.Sprintf("Error: %d: %s", e.Status, e.Message)
	}
	return "Internal Error"
}

// Unwrap exposes the original foreign error so the cause chain stays
// inspectable through errors.Is/errors.As.
func (e *AuthError) Unwrap() error {
	return e.Cause
}

// Is matches two AuthErrors by code, so callers can compare against
// NewAuthError(code) without caring about the wrapped cause.
func (e *AuthError) Is(target error) bool {
	t, ok := target.(*AuthError)
	return ok && t.Code == e.Code
}

// NewAuthError constructs a payload-free error for the given code.
func NewAuthError(code ErrorCode) *AuthError {
	return &AuthError{Code: code}
}

// NewAuthErrorWithCause constructs an error for the given code wrapping the
// originating failure.
func NewAuthErrorWithCause(code ErrorCode, cause error) *AuthError {
	return &AuthError{Code: code, Cause: cause}
}

// NewNetworkError lifts an HTTP transport failure.
func NewNetworkError(cause error) *AuthError {
	return NewAuthErrorWithCause(ErrNetwork, cause)
}

// NewParseError lifts a JSON encode/decode failure.
func NewParseError(cause error) *AuthError {
	return NewAuthErrorWithCause(ErrParse, cause)
}

// NewHeaderError lifts a header-value construction failure.
func NewHeaderError(cause error) *AuthError {
	return NewAuthErrorWithCause(ErrInvalidHeaderValue, cause)
}

// NewEnvError lifts an environment-variable lookup failure.
func NewEnvError(cause error) *AuthError {
	return NewAuthErrorWithCause(ErrInvalidEnvironmentVariable, cause)
}

// NewServerResponseError wraps a structured error payload returned by the
// auth server. The payload renders verbatim as the error message.
func NewServerResponseError(server *ServerError) *AuthError {
	return &AuthError{Code: ErrServerResponse, Server: server, Cause: server}
}

// NewStatusError reports a failed call whose response carried no structured
// payload, just a status and free text.
func NewStatusError(status int, message string) *AuthError {
	return &AuthError{Code: ErrHTTPStatus, Status: status, Message: message}
}

// CodeOf extracts the ErrorCode from anywhere in err's chain. The second
// return is false when err does not wrap an AuthError.
func CodeOf(err error) (ErrorCode, bool) {
	var ae *AuthError
	if errors.As(err, &ae) {
		return ae.Code, true
	}
	return 0, false
}
