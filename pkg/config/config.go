// Copyright (c) sbauth contributors
// SPDX-License-Identifier: MIT

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config represents the persisted CLI configuration
type Config struct {
	ProjectURL   string `json:"project_url,omitempty"`
	AnonKey      string `json:"anon_key,omitempty"`
	JWTSecret    string `json:"jwt_secret,omitempty"`
	RedirectPort string `json:"redirect_port,omitempty"`
	Verbose      bool   `json:"verbose,omitempty"`
}

// Manager handles configuration persistence
type Manager struct {
	configDir  string
	configFile string
	config     *Config
}

// NewManager creates a manager rooted in the user's home directory.
func NewManager() (*Manager, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return NewManagerIn(filepath.Join(homeDir, ".sbauth"))
}

// NewManagerIn creates a manager rooted in an explicit directory.
func NewManagerIn(configDir string) (*Manager, error) {
	manager := &Manager{
		configDir:  configDir,
		configFile: filepath.Join(configDir, "config.json"),
		config:     &Config{},
	}

	if err := manager.Load(); err != nil {
		return nil, err
	}

	return manager, nil
}

// Load reads configuration from disk
func (m *Manager) Load() error {
	if _, err := os.Stat(m.configFile); os.IsNotExist(err) {
		return nil // Config file doesn't exist yet
	}

	data, err := os.ReadFile(m.configFile)
	if err != nil {
		return err
	}

	return json.Unmarshal(data, m.config)
}

// Save writes configuration to disk
func (m *Manager) Save() error {
	if err := os.MkdirAll(m.configDir, 0700); err != nil {
		return err
	}

	data, err := json.MarshalIndent(m.config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(m.configFile, data, 0600)
}

// Get returns the current configuration
func (m *Manager) Get() *Config {
	return m.config
}

// Set updates the configuration
func (m *Manager) Set(config *Config) {
	m.config = config
}
