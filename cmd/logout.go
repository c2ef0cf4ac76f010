package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and clear the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		store, client, err := buildClient(cfg)
		if err != nil {
			return err
		}

		if store.Current().IsAuthenticated() {
			// Best effort; the token is discarded locally either way.
			_ = client.LogoutRemote(cmd.Context())
		}

		if err := store.Logout(); err != nil {
			return fmt.Errorf("clear session: %w", err)
		}
		fmt.Println("Signed out.")
		return nil
	},
}
