package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "eduai",
	Short: "AI-powered learning companion",
	Long:  "EduAI — terminal client for the EduAI learning platform: assessments, AI tutoring and study planning.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	// A local .env is a convenience for development; missing is fine.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("api-url", "", "Platform API base URL (overrides EDUAI_API_URL)")
	rootCmd.PersistentFlags().String("data-dir", "", "Directory for local data (overrides EDUAI_DATA_DIR)")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(subjectsCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(plansCmd)
	rootCmd.AddCommand(careersCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}
