// Copyright (c) sbauth contributors
// SPDX-License-Identifier: MIT

package auth

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	configDirName   = ".sbauth"
	sessionFileName = "sessions.json"
)

// getConfigDir returns the configuration directory path
func getConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, configDirName), nil
}

func getSessionFilePath() (string, error) {
	configDir, err := getConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, sessionFileName), nil
}

// SaveSession persists the session for the given project URL, alongside any
// sessions already stored for other projects.
func SaveSession(projectURL string, session *Session) error {
	configDir, err := getConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	sessionPath, err := getSessionFilePath()
	if err != nil {
		return err
	}

	sessions := map[string]*Session{}
	if data, err := os.ReadFile(sessionPath); err == nil {
		if err := json.Unmarshal(data, &sessions); err != nil {
			return NewParseError(err)
		}
	}

	sessions[projectURL] = session

	data, err := json.MarshalIndent(sessions, "", "  ")
	if err != nil {
		return NewParseError(err)
	}

	if err := os.WriteFile(sessionPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}

	return nil
}

// LoadSession loads the stored session for the given project URL. A missing
// file or missing entry means the user never signed in on this machine.
func LoadSession(projectURL string) (*Session, error) {
	sessionPath, err := getSessionFilePath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(sessionPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NewAuthError(ErrNotAuthenticated)
		}
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	sessions := map[string]*Session{}
	if err := json.Unmarshal(data, &sessions); err != nil {
		return nil, NewParseError(err)
	}

	session, exists := sessions[projectURL]
	if !exists || session == nil {
		return nil, NewAuthError(ErrNotAuthenticated)
	}

	return session, nil
}

// RemoveSession drops the stored session for one project URL, leaving
// sessions for other projects in place.
func RemoveSession(projectURL string) error {
	sessionPath, err := getSessionFilePath()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(sessionPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read session file: %w", err)
	}

	sessions := map[string]*Session{}
	if err := json.Unmarshal(data, &sessions); err != nil {
		return NewParseError(err)
	}

	delete(sessions, projectURL)

	out, err := json.MarshalIndent(sessions, "", "  ")
	if err != nil {
		return NewParseError(err)
	}
	if err := os.WriteFile(sessionPath, out, 0600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

// ClearSessions removes every stored session.
func ClearSessions() error {
	sessionPath, err := getSessionFilePath()
	if err != nil {
		return err
	}

	if err := os.Remove(sessionPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}

	return nil
}
