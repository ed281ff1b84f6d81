// Copyright (c) sbauth contributors
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/sbauth-dev/sbauth-cli/pkg/auth"
	"github.com/spf13/cobra"
)

func User() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "User operations",
		Long:  "Inspect and update the signed-in user",
	}

	cmd.AddCommand(userGet())
	cmd.AddCommand(userUpdate())

	return cmd
}

var userGetcmd = &cobra.Command{
	Use:   "get",
	Short: "Show the signed-in user",
	Long:  `Fetch and display the signed-in user's record`,
}

func userGet() *cobra.Command {
	userGetcmd.RunE = func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		client, _, err := resolveSignedInClient()
		if err != nil {
			return err
		}

		user, err := withSpinner("Fetching user... ", func() (*auth.User, error) {
			return client.User(cmd.Context())
		})
		if err != nil {
			return err
		}

		md := userMarkdown(user)

		// Render with glamour to stdout
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(100),
		)
		if err != nil {
			fmt.Print(md)
			return nil
		}

		rendered, err := r.Render(md)
		if err != nil {
			fmt.Print(md)
			return nil
		}

		fmt.Print(rendered)
		return nil
	}

	return userGetcmd
}

func userMarkdown(u *auth.User) string {
	var b strings.Builder

	title := u.Email
	if title == "" {
		title = u.Phone
	}
	if title == "" {
		title = u.ID
	}

	fmt.Fprintf(&b, "# %s\n\n", title)
	fmt.Fprintf(&b, "| Field | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| ID | %s |\n", u.ID)
	if u.Role != "" {
		fmt.Fprintf(&b, "| Role | %s |\n", u.Role)
	}
	if u.Email != "" {
		fmt.Fprintf(&b, "| Email | %s |\n", u.Email)
	}
	if u.Phone != "" {
		fmt.Fprintf(&b, "| Phone | %s |\n", u.Phone)
	}
	if u.EmailConfirmedAt != nil {
		fmt.Fprintf(&b, "| Email confirmed | %s |\n", u.EmailConfirmedAt.Format(time.RFC3339))
	}
	if u.LastSignInAt != nil {
		fmt.Fprintf(&b, "| Last sign-in | %s |\n", u.LastSignInAt.Format(time.RFC3339))
	}
	fmt.Fprintf(&b, "| Created | %s |\n", u.CreatedAt.Format(time.RFC3339))

	if len(u.UserMetadata) > 0 {
		fmt.Fprintf(&b, "\n## Metadata\n\n")
		for k, v := range u.UserMetadata {
			fmt.Fprintf(&b, "- **%s**: %v\n", k, v)
		}
	}

	return b.String()
}

var (
	updateEmail    string
	updatePhone    string
	updatePassword string
)

func init() {
	userUpdatecmd.Flags().StringVar(&updateEmail, "email", "", "new email address")
	userUpdatecmd.Flags().StringVar(&updatePhone, "phone", "", "new phone number")
	userUpdatecmd.Flags().StringVar(&updatePassword, "password", "", "new password")
}

var userUpdatecmd = &cobra.Command{
	Use:   "update",
	Short: "Update the signed-in user",
	Long:  `Change the signed-in user's email, phone or password`,
}

func userUpdate() *cobra.Command {
	userUpdatecmd.RunE = func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		if updateEmail == "" && updatePhone == "" && updatePassword == "" {
			return fmt.Errorf("nothing to update: provide --email, --phone or --password")
		}

		client, _, err := resolveSignedInClient()
		if err != nil {
			return err
		}

		user, err := withSpinner("Updating user... ", func() (*auth.User, error) {
			return client.UpdateUser(cmd.Context(), auth.UpdateUserRequest{
				Email:    updateEmail,
				Phone:    updatePhone,
				Password: updatePassword,
			})
		})
		if err != nil {
			return err
		}

		fmt.Printf("Updated user %s.\n", user.ID)
		return nil
	}

	return userUpdatecmd
}
