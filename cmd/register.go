package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eduai/eduai/internal/api"
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an EduAI account",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		store, _, err := buildClient(cfg)
		if err != nil {
			return err
		}

		req := api.RegisterRequest{}
		req.Email, _ = cmd.Flags().GetString("email")
		req.Password, _ = cmd.Flags().GetString("password")
		req.FullName, _ = cmd.Flags().GetString("name")
		req.Grade, _ = cmd.Flags().GetString("grade")
		req.PreferredLanguage, _ = cmd.Flags().GetString("language")

		if req.Email == "" || req.Password == "" || req.FullName == "" {
			return fmt.Errorf("--email, --password and --name are required")
		}

		if err := store.Register(cmd.Context(), req); err != nil {
			return fmt.Errorf("registration failed: %w", err)
		}

		sess := store.Current()
		fmt.Printf("Account created. Signed in as %s (%s)\n", sess.User.FullName, sess.User.Email)
		return nil
	},
}

func init() {
	registerCmd.Flags().String("email", "", "Account email")
	registerCmd.Flags().String("password", "", "Account password")
	registerCmd.Flags().String("name", "", "Full name")
	registerCmd.Flags().String("grade", "", "School grade (optional)")
	registerCmd.Flags().String("language", "", "Preferred language (optional)")
}
