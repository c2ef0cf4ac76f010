package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eduai/eduai/internal/api"
)

var plansCmd = &cobra.Command{
	Use:   "plans",
	Short: "List your study plans",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		_, client, err := buildClient(cfg)
		if err != nil {
			return err
		}

		plans, err := client.StudyPlans(cmd.Context())
		if err != nil {
			return fmt.Errorf("fetch study plans: %w", err)
		}
		if len(plans) == 0 {
			fmt.Println("No study plans yet. Run: eduai plans generate --subject <id>")
			return nil
		}

		for _, p := range plans {
			fmt.Printf("%3d  %-30s %-10s %3.0f%%  %s to %s\n",
				p.ID, p.Title, p.Status, p.Progress, p.StartDate, p.EndDate)
		}
		return nil
	},
}

var plansGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a personalized study plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		_, client, err := buildClient(cfg)
		if err != nil {
			return err
		}

		req := api.GeneratePlanRequest{}
		req.SubjectID, _ = cmd.Flags().GetInt64("subject")
		req.StartDate, _ = cmd.Flags().GetString("start")
		req.EndDate, _ = cmd.Flags().GetString("end")
		req.DailyHours, _ = cmd.Flags().GetFloat64("hours")
		if topics, _ := cmd.Flags().GetString("topics"); topics != "" {
			req.Topics = strings.Split(topics, ",")
		}

		if req.SubjectID == 0 {
			return fmt.Errorf("--subject is required")
		}

		if err := client.GenerateStudyPlan(cmd.Context(), req); err != nil {
			return fmt.Errorf("generate plan: %w", err)
		}
		fmt.Println("Study plan generated. Run: eduai plans")
		return nil
	},
}

func init() {
	plansGenerateCmd.Flags().Int64("subject", 0, "Subject id (see: eduai subjects)")
	plansGenerateCmd.Flags().String("topics", "", "Comma-separated topics to focus on")
	plansGenerateCmd.Flags().String("start", "", "Start date (YYYY-MM-DD)")
	plansGenerateCmd.Flags().String("end", "", "End date (YYYY-MM-DD)")
	plansGenerateCmd.Flags().Float64("hours", 0, "Daily study hours")
	plansCmd.AddCommand(plansGenerateCmd)
}
