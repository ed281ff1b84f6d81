// Copyright (c) sbauth contributors
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sbauth-dev/sbauth-cli/pkg/auth"
	"github.com/sbauth-dev/sbauth-cli/pkg/constants"
)

// ErrEnvNotSet is the root cause wrapped into the taxonomy when a required
// environment variable is missing or empty.
var ErrEnvNotSet = errors.New("environment variable not set")

// FromEnv builds a Config from the process environment. A .env file in the
// working directory is honored when present; SUPABASE_URL and
// SUPABASE_ANON_KEY are required, SUPABASE_JWT_SECRET is optional.
func FromEnv() (*Config, error) {
	// Missing .env is not an error; the process environment still counts.
	_ = godotenv.Load()

	projectURL, err := lookupEnv(constants.EnvProjectURL)
	if err != nil {
		return nil, auth.NewEnvError(err)
	}

	anonKey, err := lookupEnv(constants.EnvAnonKey)
	if err != nil {
		return nil, auth.NewEnvError(err)
	}

	return &Config{
		ProjectURL: projectURL,
		AnonKey:    anonKey,
		JWTSecret:  os.Getenv(constants.EnvJWTSecret),
	}, nil
}

func lookupEnv(key string) (string, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return "", fmt.Errorf("%s: %w", key, ErrEnvNotSet)
	}
	return value, nil
}
