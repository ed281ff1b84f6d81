// Copyright (c) sbauth contributors
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/sbauth-dev/sbauth-cli/pkg/auth"
	"github.com/spf13/cobra"
)

var refreshcmd = &cobra.Command{
	Use:   "refresh",
	Short: "Refresh the stored session",
	Long:  `Exchange the stored refresh token for a fresh session`,
}

func refresh() *cobra.Command {
	refreshcmd.RunE = func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		client, project, err := resolveSignedInClient()
		if err != nil {
			return err
		}

		session, err := withSpinner("Refreshing session... ", func() (*auth.Session, error) {
			return client.RefreshSession(cmd.Context(), "")
		})
		if err != nil {
			return err
		}

		if err := auth.SaveSession(project, session); err != nil {
			return fmt.Errorf("refreshed, but failed to store session: %w", err)
		}

		fmt.Println("Session refreshed.")
		return nil
	}

	return refreshcmd
}
