package cmd

import (
	"github.com/spf13/cobra"
)

func Auth() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "auth things",
		Long:  "sign up, sign in, refresh and sign out",
	}

	cmd.AddCommand(signup())
	cmd.AddCommand(login())
	cmd.AddCommand(refresh())
	cmd.AddCommand(logout())
	cmd.AddCommand(recoverPassword())

	return cmd
}
