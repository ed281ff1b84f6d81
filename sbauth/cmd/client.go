// Copyright (c) sbauth contributors
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"os"

	"github.com/sbauth-dev/sbauth-cli/pkg/auth"
	"github.com/sbauth-dev/sbauth-cli/pkg/config"
	"github.com/spf13/viper"
)

// resolveClient builds an auth client from flags, environment and the
// stored config file, in that order of precedence.
func resolveClient() (*auth.Client, string, error) {
	// Update from viper (this gets env vars + config + flags)
	projectURL = viper.GetString("project-url")
	anonKey = viper.GetString("anon-key")

	if projectURL == "" || anonKey == "" {
		envCfg, err := config.FromEnv()
		if err == nil {
			if projectURL == "" {
				projectURL = envCfg.ProjectURL
			}
			if anonKey == "" {
				anonKey = envCfg.AnonKey
			}
		} else if verbose {
			fmt.Fprintf(os.Stderr, "Warning: could not read environment configuration: %v\n", err)
		}
	}

	if projectURL == "" || anonKey == "" {
		manager, err := config.NewManager()
		if err == nil {
			stored := manager.Get()
			if projectURL == "" {
				projectURL = stored.ProjectURL
			}
			if anonKey == "" {
				anonKey = stored.AnonKey
			}
		}
	}

	if projectURL == "" || anonKey == "" {
		// Re-run the env lookup so the returned error names the missing
		// variable instead of a generic message.
		if _, err := config.FromEnv(); err != nil {
			return nil, "", err
		}
		return nil, "", fmt.Errorf("project URL and anon key are required (set --project-url/--anon-key or SUPABASE_URL/SUPABASE_ANON_KEY)")
	}

	client, err := auth.NewClient(projectURL, anonKey)
	if err != nil {
		return nil, "", err
	}
	return client, projectURL, nil
}

// resolveSignedInClient is resolveClient plus the stored session for the
// project, for commands that act on the signed-in user.
func resolveSignedInClient() (*auth.Client, string, error) {
	client, project, err := resolveClient()
	if err != nil {
		return nil, "", err
	}

	session, err := auth.LoadSession(project)
	if err != nil {
		return nil, "", fmt.Errorf("no stored session: %w (try running 'sbauth auth login')", err)
	}
	client.UseSession(session)
	return client, project, nil
}
