package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var subjectsCmd = &cobra.Command{
	Use:   "subjects",
	Short: "List assessable subjects",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		_, client, err := buildClient(cfg)
		if err != nil {
			return err
		}

		subjects, err := client.Subjects(cmd.Context())
		if err != nil {
			return fmt.Errorf("fetch subjects: %w", err)
		}

		for _, s := range subjects {
			fmt.Printf("%3d  %-20s %s\n", s.ID, s.Name, s.Description)
			if len(s.Topics) > 0 {
				fmt.Printf("     topics: %s\n", strings.Join(s.Topics, ", "))
			}
		}
		return nil
	},
}
