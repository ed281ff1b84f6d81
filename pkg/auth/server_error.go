// Copyright (c) sbauth contributors
// SPDX-License-Identifier: MIT

package auth

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// ServerError is the structured error body returned by Supabase Auth on a
// non-2xx response. The human-readable message arrives under the wire key
// "msg". Optional fields are pointers (or raw JSON) so that absent and
// empty stay distinguishable; absent fields are omitted on re-serialization.
type ServerError struct {
	Code            int             `json:"code"`
	ErrorCode       *string         `json:"error_code,omitempty"`
	Message         string          `json:"msg"`
	InternalError   json.RawMessage `json:"internal_error,omitempty"`
	InternalMessage json.RawMessage `json:"internal_message,omitempty"`
	ErrorID         *string         `json:"error_id,omitempty"`
}

type serverErrorWire struct {
	Code            *int            `json:"code"`
	ErrorCode       *string         `json:"error_code"`
	Message         *string         `json:"msg"`
	InternalError   json.RawMessage `json:"internal_error"`
	InternalMessage json.RawMessage `json:"internal_message"`
	ErrorID         *string         `json:"error_id"`
}

var jsonNull = []byte("null")

// UnmarshalJSON decodes the wire form. code and msg are required; unknown
// fields are ignored; an explicit JSON null counts as absent.
func (e *ServerError) UnmarshalJSON(data []byte) error {
	var w serverErrorWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if w.Code == nil {
		return fmt.Errorf("server error payload: missing required field %q", "code")
	}
	if w.Message == nil {
		return fmt.Errorf("server error payload: missing required field %q", "msg")
	}

	e.Code = *w.Code
	e.ErrorCode = w.ErrorCode
	e.Message = *w.Message
	e.InternalError = dropNull(w.InternalError)
	e.InternalMessage = dropNull(w.InternalMessage)
	e.ErrorID = w.ErrorID
	return nil
}

func dropNull(raw json.RawMessage) json.RawMessage {
	if bytes.Equal(raw, jsonNull) {
		return nil
	}
	return raw
}

// Error renders the payload as a multi-line diagnostic. The first line
// always carries the status code, extended in place by the short error code
// and the correlation ID when present; internal message/error lines follow,
// and the message line always closes the block. Shape is load-bearing:
// callers print this verbatim.
func (e *ServerError) Error() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Status Code %d", e.Code)
	if e.ErrorCode != nil {
		fmt.Fprintf(&b, " (%s)", *e.ErrorCode)
	}
	if e.ErrorID != nil {
		fmt.Fprintf(&b, " [Error ID: %s]", *e.ErrorID)
	}
	if len(e.InternalMessage) > 0 {
		fmt.Fprintf(&b, "\nInternal message: %s", e.InternalMessage)
	}
	if len(e.InternalError) > 0 {
		fmt.Fprintf(&b, "\nInternal error: %s", e.InternalError)
	}
	fmt.Fprintf(&b, "\nMessage: %s", e.Message)

	return b.String()
}
