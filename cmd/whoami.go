package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in account",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		store, client, err := buildClient(cfg)
		if err != nil {
			return err
		}

		if !store.Current().IsAuthenticated() {
			fmt.Println("Not signed in. Run: eduai login")
			return nil
		}

		me, err := client.Me(cmd.Context())
		if err != nil {
			return fmt.Errorf("fetch account: %w", err)
		}

		fmt.Printf("%s <%s>\n", me.FullName, me.Email)
		fmt.Printf("Role:  %s\n", me.Role)
		if me.Profile.Grade != "" {
			fmt.Printf("Grade: %s\n", me.Profile.Grade)
		}
		if me.Profile.PreferredLanguage != "" {
			fmt.Printf("Language: %s\n", me.Profile.PreferredLanguage)
		}
		return nil
	},
}
