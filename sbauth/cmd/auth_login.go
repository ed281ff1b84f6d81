// Copyright (c) sbauth contributors
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/sbauth-dev/sbauth-cli/pkg/auth"
	"github.com/sbauth-dev/sbauth-cli/pkg/port"
	"github.com/spf13/cobra"
)

var (
	loginEmail    string
	loginPassword string
	loginProvider string
	redirectPort  string
)

func init() {
	logincmd.Flags().StringVarP(&loginEmail, "email", "e", "", "email address to sign in with")
	logincmd.Flags().StringVarP(&loginPassword, "password", "p", "", "password (prompted when omitted)")
	logincmd.Flags().StringVar(&loginProvider, "provider", "", "OAuth provider to sign in through (e.g. github, google)")
	logincmd.Flags().StringVar(&redirectPort, "redirect-port", "", "localhost port for the provider callback (random when omitted)")
}

var logincmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to the project",
	Long:  `Sign in with email/password, or through an OAuth provider with --provider`,
}

func login() *cobra.Command {
	logincmd.RunE = func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		client, project, err := resolveClient()
		if err != nil {
			return err
		}

		var session *auth.Session
		if loginProvider != "" {
			if redirectPort == "" {
				redirectPort = port.GenerateRandomPortOrDefault()
			}
			session, err = auth.SignInWithProvider(cmd.Context(), client, loginProvider, redirectPort)
		} else {
			if loginEmail == "" {
				loginEmail, err = promptInput("Email")
				if err != nil {
					return err
				}
			}
			if loginPassword == "" {
				loginPassword, err = promptPassword()
				if err != nil {
					return err
				}
			}
			session, err = withSpinner("Signing in... ", func() (*auth.Session, error) {
				return client.SignInWithPassword(cmd.Context(), loginEmail, loginPassword)
			})
		}
		if err != nil {
			return err
		}

		if err := auth.SaveSession(project, session); err != nil {
			return fmt.Errorf("signed in, but failed to store session: %w", err)
		}

		fmt.Println("Successfully logged in!")
		return nil
	}

	return logincmd
}
