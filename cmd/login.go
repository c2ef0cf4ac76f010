package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to the EduAI platform",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		store, _, err := buildClient(cfg)
		if err != nil {
			return err
		}

		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")
		reader := bufio.NewReader(os.Stdin)
		if email == "" {
			fmt.Print("Email: ")
			email, _ = reader.ReadString('\n')
			email = strings.TrimSpace(email)
		}
		if password == "" {
			fmt.Print("Password: ")
			password, _ = reader.ReadString('\n')
			password = strings.TrimRight(password, "\r\n")
		}

		if err := store.Login(cmd.Context(), email, password); err != nil {
			return fmt.Errorf("login failed: %w", err)
		}

		sess := store.Current()
		fmt.Printf("Signed in as %s (%s)\n", sess.User.FullName, sess.User.Email)
		return nil
	},
}

func init() {
	loginCmd.Flags().String("email", "", "Account email (prompted if omitted)")
	loginCmd.Flags().String("password", "", "Account password (prompted if omitted)")
}
