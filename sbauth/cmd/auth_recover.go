// Copyright (c) sbauth contributors
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var recoverEmail string

func init() {
	recovercmd.Flags().StringVarP(&recoverEmail, "email", "e", "", "email address to send the recovery link to")
}

var recovercmd = &cobra.Command{
	Use:   "recover",
	Short: "Send a password recovery email",
	Long:  `Ask the auth server to email a password recovery link`,
}

func recoverPassword() *cobra.Command {
	recovercmd.RunE = func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		client, _, err := resolveClient()
		if err != nil {
			return err
		}

		if recoverEmail == "" {
			recoverEmail, err = promptInput("Email")
			if err != nil {
				return err
			}
		}

		if err := client.Recover(cmd.Context(), recoverEmail); err != nil {
			return err
		}

		fmt.Printf("Recovery email sent to %s.\n", recoverEmail)
		return nil
	}

	return recovercmd
}
