package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eduai/eduai/internal/api"
)

var careersCmd = &cobra.Command{
	Use:   "careers",
	Short: "Browse career guidance",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		_, client, err := buildClient(cfg)
		if err != nil {
			return err
		}

		filter := api.CareerFilter{}
		filter.Industry, _ = cmd.Flags().GetString("industry")
		filter.Category, _ = cmd.Flags().GetString("category")
		filter.Language, _ = cmd.Flags().GetString("language")

		careers, err := client.Careers(cmd.Context(), filter)
		if err != nil {
			return fmt.Errorf("fetch careers: %w", err)
		}

		for _, c := range careers {
			fmt.Printf("%s (%s / %s)\n", c.Title, c.Industry, c.Category)
			if c.AvgSalaryRange != "" {
				fmt.Printf("  salary: %s\n", c.AvgSalaryRange)
			}
			if len(c.RequiredSkills) > 0 {
				fmt.Printf("  skills: %s\n", strings.Join(c.RequiredSkills, ", "))
			}
		}
		return nil
	},
}

var careersLanguagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List supported career-guidance languages",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		_, client, err := buildClient(cfg)
		if err != nil {
			return err
		}

		langs, err := client.Languages(cmd.Context())
		if err != nil {
			return fmt.Errorf("fetch languages: %w", err)
		}
		for code, name := range langs {
			fmt.Printf("%-6s %s\n", code, name)
		}
		return nil
	},
}

func init() {
	careersCmd.Flags().String("industry", "", "Filter by industry")
	careersCmd.Flags().String("category", "", "Filter by category")
	careersCmd.Flags().String("language", "", "Translate listings to this language")
	careersCmd.AddCommand(careersLanguagesCmd)
}
