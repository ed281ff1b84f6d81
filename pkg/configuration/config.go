// Copyright (c) sbauth contributors
// SPDX-License-Identifier: MIT

package configuration

import (
	"fmt"
	"os"

	"github.com/sbauth-dev/sbauth-cli/api/configuration"
	"gopkg.in/yaml.v3"
)

const ConfigFilename = "sbauth.yaml"

var ErrFileExists = fmt.Errorf("file %s exists, not overwriting (specify '--force' to overwrite)", ConfigFilename)

// GenerateConfig writes a starter project config file into the working
// directory.
func GenerateConfig(forceWrite bool) error {
	DefaultConfig := configuration.Config{
		ProjectURL:      "https://your-project-ref.supabase.co",
		RedirectPort:    "",
		DefaultProvider: "github",
		EnvFile:         ".env",
	}

	// check to see if the config file already exists
	_, err := os.Stat(ConfigFilename)
	if (err == nil) && !forceWrite {
		return ErrFileExists
	}

	cfgYaml, err := yaml.Marshal(DefaultConfig)
	if err != nil {
		return fmt.Errorf("error marshaling default config yaml: %w", err)
	}

	return os.WriteFile(ConfigFilename, cfgYaml, 0600)
}
