// Copyright (c) sbauth contributors
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/sbauth-dev/sbauth-cli/pkg/auth"
	"github.com/sbauth-dev/sbauth-cli/pkg/config"
	"github.com/spf13/cobra"
)

func Token() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Access token operations",
		Long:  "Inspect or verify the stored access token",
	}

	cmd.AddCommand(tokenInspect())
	cmd.AddCommand(tokenVerify())

	return cmd
}

var tokenInspectcmd = &cobra.Command{
	Use:   "inspect",
	Short: "Decode the stored access token",
	Long:  `Decode the stored access token's claims without verifying its signature`,
}

func tokenInspect() *cobra.Command {
	tokenInspectcmd.RunE = func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		client, _, err := resolveSignedInClient()
		if err != nil {
			return err
		}

		claims, err := auth.DecodeAccessToken(client.CurrentSession().AccessToken)
		if err != nil {
			return err
		}

		printClaims(claims)
		fmt.Fprintln(os.Stderr, "Note: claims decoded without signature verification; run 'sbauth token verify' to verify.")
		return nil
	}

	return tokenInspectcmd
}

var tokenVerifycmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify the stored access token",
	Long:  `Verify the stored access token against the project's JWT secret (SUPABASE_JWT_SECRET)`,
}

func tokenVerify() *cobra.Command {
	tokenVerifycmd.RunE = func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		client, _, err := resolveSignedInClient()
		if err != nil {
			return err
		}

		envCfg, err := config.FromEnv()
		if err != nil {
			return err
		}
		if envCfg.JWTSecret == "" {
			return fmt.Errorf("SUPABASE_JWT_SECRET must be set to verify tokens locally")
		}

		claims, err := auth.VerifyAccessToken(client.CurrentSession().AccessToken, envCfg.JWTSecret)
		if err != nil {
			return err
		}

		fmt.Println("Token signature is valid.")
		printClaims(claims)
		return nil
	}

	return tokenVerifycmd
}

func printClaims(claims *auth.Claims) {
	if claims.Subject != "" {
		fmt.Printf("Subject:    %s\n", claims.Subject)
	}
	if claims.Email != "" {
		fmt.Printf("Email:      %s\n", claims.Email)
	}
	if claims.Role != "" {
		fmt.Printf("Role:       %s\n", claims.Role)
	}
	if claims.SessionID != "" {
		fmt.Printf("Session ID: %s\n", claims.SessionID)
	}
	if claims.ExpiresAt != nil {
		fmt.Printf("Expires:    %s\n", claims.ExpiresAt.Format(time.RFC3339))
	}
}
