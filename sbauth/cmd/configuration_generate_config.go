// Copyright (c) sbauth contributors
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/sbauth-dev/sbauth-cli/pkg/configuration"
	"github.com/spf13/cobra"
)

var forceWrite bool

func init() {
	generateConfigcmd.Flags().BoolVarP(&forceWrite, "force", "f", false, "overwrite an existing config file")
}

var generateConfigcmd = &cobra.Command{
	Use:   "generate-config",
	Short: "Generate a starter sbauth.yaml",
	Long:  `Write a starter sbauth.yaml project configuration into the working directory`,
}

func generateConfig() *cobra.Command {
	generateConfigcmd.RunE = func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		if err := configuration.GenerateConfig(forceWrite); err != nil {
			return err
		}

		fmt.Printf("Wrote %s\n", configuration.ConfigFilename)
		return nil
	}

	return generateConfigcmd
}
