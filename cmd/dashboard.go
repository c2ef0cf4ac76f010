package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show your learning dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		_, client, err := buildClient(cfg)
		if err != nil {
			return err
		}

		d, err := client.Dashboard(cmd.Context())
		if err != nil {
			return fmt.Errorf("fetch dashboard: %w", err)
		}

		fmt.Printf("%s (grade %s)\n\n", d.User.Name, d.User.Grade)
		fmt.Printf("Assessments taken: %d\n", d.Stats.TotalAssessments)
		fmt.Printf("Average score:     %.0f%%\n", d.Stats.AverageScore)
		fmt.Printf("Learning streak:   %d days\n", d.Stats.LearningStreak)
		fmt.Printf("Study hours/week:  %d\n", d.Stats.StudyHoursThisWeek)

		if len(d.Skills) > 0 {
			fmt.Println("\nSkills")
			for _, s := range d.Skills {
				fmt.Printf("  %-24s %3d%%  (%s)\n", s.Name, s.Proficiency, s.Category)
			}
		}
		if len(d.RecentAssessments) > 0 {
			fmt.Println("\nRecent assessments")
			for _, a := range d.RecentAssessments {
				fmt.Printf("  %-20s %5.0f%%  %s\n", a.Subject, a.Score, a.Status)
			}
		}
		if len(d.Recommendations) > 0 {
			fmt.Println()
			for _, rec := range d.Recommendations {
				fmt.Println("•", rec)
			}
		}
		return nil
	},
}
