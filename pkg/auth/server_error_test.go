// Copyright (c) sbauth contributors
// SPDX-License-Identifier: MIT

package auth

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func Test_Render_MessageOnly(t *testing.T) {
	e := &ServerError{Code: 500, Message: "oops"}

	assert.Equal(t, "Status Code 500\nMessage: oops", e.Error())
}

func Test_Render_WithErrorCode(t *testing.T) {
	e := &ServerError{
		Code:      400,
		ErrorCode: strPtr("invalid_grant"),
		Message:   "Bad request",
	}

	assert.Equal(t, "Status Code 400 (invalid_grant)\nMessage: Bad request", e.Error())
}

func Test_Render_AllFields_Order(t *testing.T) {
	e := &ServerError{
		Code:            500,
		ErrorCode:       strPtr("ec"),
		Message:         "boom",
		InternalError:   json.RawMessage(`"ie"`),
		InternalMessage: json.RawMessage(`"im"`),
		ErrorID:         strPtr("eid"),
	}

	want := "Status Code 500 (ec) [Error ID: eid]\n" +
		"Internal message: \"im\"\n" +
		"Internal error: \"ie\"\n" +
		"Message: boom"
	assert.Equal(t, want, e.Error())
}

func Test_Render_StructuredInternalError(t *testing.T) {
	e := &ServerError{
		Code:          500,
		Message:       "boom",
		InternalError: json.RawMessage(`{"hint":"check the logs"}`),
	}

	assert.Equal(t, "Status Code 500\nInternal error: {\"hint\":\"check the logs\"}\nMessage: boom", e.Error())
}

func Test_Marshal_OmitsAbsentFields(t *testing.T) {
	data, err := json.Marshal(&ServerError{Code: 400, Message: "Bad request"})
	require.NoError(t, err)

	var object map[string]any
	require.NoError(t, json.Unmarshal(data, &object))

	assert.Equal(t, map[string]any{"code": float64(400), "msg": "Bad request"}, object)
	assert.NotContains(t, object, "error_code")
	assert.NotContains(t, object, "error_id")
	assert.NotContains(t, object, "internal_error")
	assert.NotContains(t, object, "internal_message")
}

func Test_Unmarshal_Minimal(t *testing.T) {
	var e ServerError
	err := json.Unmarshal([]byte(`{"code":500,"msg":"oops"}`), &e)

	assert.Nil(t, err)
	assert.Equal(t, 500, e.Code)
	assert.Equal(t, "oops", e.Message)
	assert.Nil(t, e.ErrorCode)
	assert.Nil(t, e.ErrorID)
	assert.Nil(t, e.InternalError)
	assert.Nil(t, e.InternalMessage)
}

func Test_Unmarshal_MissingCode_Fails(t *testing.T) {
	var e ServerError
	err := json.Unmarshal([]byte(`{"msg":"oops"}`), &e)

	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), `"code"`)
}

func Test_Unmarshal_MissingMsg_Fails(t *testing.T) {
	var e ServerError
	err := json.Unmarshal([]byte(`{"code":500}`), &e)

	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), `"msg"`)
}

func Test_Unmarshal_IgnoresUnknownFields(t *testing.T) {
	var e ServerError
	err := json.Unmarshal([]byte(`{"code":400,"msg":"Bad request","weak_password":{"reasons":["length"]}}`), &e)

	assert.Nil(t, err)
	assert.Equal(t, 400, e.Code)
}

func Test_Unmarshal_NullOptionals_TreatedAsAbsent(t *testing.T) {
	var e ServerError
	err := json.Unmarshal([]byte(`{"code":400,"msg":"x","error_code":null,"internal_error":null}`), &e)

	assert.Nil(t, err)
	assert.Nil(t, e.ErrorCode)
	assert.Nil(t, e.InternalError)

	data, err := json.Marshal(&e)
	assert.Nil(t, err)
	assert.NotContains(t, string(data), "error_code")
	assert.NotContains(t, string(data), "internal_error")
}

func Test_RoundTrip_FullyPopulated(t *testing.T) {
	original := ServerError{
		Code:            429,
		ErrorCode:       strPtr("over_request_rate_limit"),
		Message:         "Rate limit exceeded",
		InternalError:   json.RawMessage(`{"retry_after":30}`),
		InternalMessage: json.RawMessage(`"too many token refreshes"`),
		ErrorID:         strPtr("4f9c2a"),
	}

	data, err := json.Marshal(&original)
	require.NoError(t, err)

	var decoded ServerError
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, original, decoded)
}
