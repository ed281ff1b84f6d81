// Copyright (c) sbauth contributors
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"os"

	"github.com/sbauth-dev/sbauth-cli/pkg/auth"
	"github.com/spf13/cobra"
)

var logoutAll bool

func init() {
	logoutcmd.Flags().BoolVar(&logoutAll, "all", false, "also drop stored sessions for every other project")
}

var logoutcmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and drop the stored session",
	Long:  `Revoke the current session server-side and remove it from local storage`,
}

func logout() *cobra.Command {
	logoutcmd.RunE = func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		client, project, err := resolveSignedInClient()
		if err != nil {
			return err
		}

		if err := client.SignOut(cmd.Context()); err != nil {
			// Server-side revocation can fail on an already-dead session;
			// the local copy still has to go.
			fmt.Fprintf(os.Stderr, "Warning: server-side sign-out failed: %v\n", err)
		}

		if logoutAll {
			err = auth.ClearSessions()
		} else {
			err = auth.RemoveSession(project)
		}
		if err != nil {
			return err
		}

		fmt.Println("Logged out.")
		return nil
	}

	return logoutcmd
}
