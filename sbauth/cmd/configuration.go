// Copyright (c) sbauth contributors
// SPDX-License-Identifier: MIT

package cmd

import (
	"github.com/spf13/cobra"
)

func SbauthConfiguration() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Project configuration",
		Long:  "Manage the sbauth.yaml project configuration file",
	}

	cmd.AddCommand(generateConfig())

	return cmd
}
