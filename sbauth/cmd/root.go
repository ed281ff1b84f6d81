// Copyright (c) sbauth contributors
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	projectURL string
	anonKey    string
	verbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&projectURL, "project-url", "", "Supabase project URL (defaults to SUPABASE_URL)")
	rootCmd.PersistentFlags().StringVar(&anonKey, "anon-key", "", "Supabase anon API key (defaults to SUPABASE_ANON_KEY)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	// Bind flags to viper
	mustBindPFlag("project-url", rootCmd.PersistentFlags().Lookup("project-url"))
	mustBindPFlag("anon-key", rootCmd.PersistentFlags().Lookup("anon-key"))
}

var rootCmd = &cobra.Command{
	Use:   "sbauth",
	Short: "sbauth - Supabase Auth from the command line",
	Long:  "sbauth - Sign up, sign in and manage Supabase Auth users from the command line",
}

func Execute() error {

	rootCmd.AddCommand(Auth())
	rootCmd.AddCommand(User())
	rootCmd.AddCommand(Token())
	rootCmd.AddCommand(SbauthConfiguration())

	return rootCmd.Execute()
}

func mustBindPFlag(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("failed to bind flag %q: %v", key, err))
	}
}
