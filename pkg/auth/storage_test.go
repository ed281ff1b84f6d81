// Copyright (c) sbauth contributors
// SPDX-License-Identifier: MIT

package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testProject = "https://acme.supabase.co"

func Test_SaveAndLoadSession(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	session := &Session{AccessToken: "access-1", RefreshToken: "refresh-1", ExpiresAt: 1900000000}
	require.NoError(t, SaveSession(testProject, session))

	loaded, err := LoadSession(testProject)

	assert.Nil(t, err)
	assert.Equal(t, session, loaded)
}

func Test_LoadSession_NeverSignedIn(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := LoadSession(testProject)

	code, _ := CodeOf(err)
	assert.Equal(t, ErrNotAuthenticated, code)
}

func Test_LoadSession_OtherProjectOnly(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	require.NoError(t, SaveSession("https://other.supabase.co", &Session{AccessToken: "x"}))

	_, err := LoadSession(testProject)

	code, _ := CodeOf(err)
	assert.Equal(t, ErrNotAuthenticated, code)
}

func Test_RemoveSession_LeavesOthers(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	require.NoError(t, SaveSession(testProject, &Session{AccessToken: "a"}))
	require.NoError(t, SaveSession("https://other.supabase.co", &Session{AccessToken: "b"}))

	require.NoError(t, RemoveSession(testProject))

	_, err := LoadSession(testProject)
	assert.NotNil(t, err)

	other, err := LoadSession("https://other.supabase.co")
	assert.Nil(t, err)
	assert.Equal(t, "b", other.AccessToken)
}

func Test_ClearSessions(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	require.NoError(t, SaveSession(testProject, &Session{AccessToken: "a"}))
	require.NoError(t, ClearSessions())

	_, err := LoadSession(testProject)
	assert.NotNil(t, err)

	// Clearing twice is fine
	assert.Nil(t, ClearSessions())
}
