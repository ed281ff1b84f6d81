// Copyright (c) sbauth contributors
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/sbauth-dev/sbauth-cli/pkg/auth"
	"github.com/spf13/cobra"
)

var (
	signupEmail    string
	signupPassword string
)

func init() {
	signupcmd.Flags().StringVarP(&signupEmail, "email", "e", "", "email address to register")
	signupcmd.Flags().StringVarP(&signupPassword, "password", "p", "", "password (prompted when omitted)")
}

var signupcmd = &cobra.Command{
	Use:   "signup",
	Short: "Register a new user",
	Long:  `Register a new user with an email and password`,
}

func signup() *cobra.Command {
	signupcmd.RunE = func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		client, project, err := resolveClient()
		if err != nil {
			return err
		}

		if signupEmail == "" {
			signupEmail, err = promptInput("Email")
			if err != nil {
				return err
			}
		}
		if signupPassword == "" {
			signupPassword, err = promptPassword()
			if err != nil {
				return err
			}
		}

		session, err := withSpinner("Signing up... ", func() (*auth.Session, error) {
			return client.SignUp(cmd.Context(), auth.SignUpRequest{
				Email:    signupEmail,
				Password: signupPassword,
			})
		})
		if err != nil {
			return err
		}

		if session.AccessToken == "" {
			fmt.Printf("Sign-up accepted. Check %s for a confirmation email.\n", signupEmail)
			return nil
		}

		if err := auth.SaveSession(project, session); err != nil {
			return fmt.Errorf("signed up, but failed to store session: %w", err)
		}

		fmt.Println("Successfully signed up!")
		return nil
	}

	return signupcmd
}
