package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/eduai/eduai/internal/config"
	"github.com/eduai/eduai/internal/history"
)

var resultsCmd = &cobra.Command{
	Use:   "results [assessment-id]",
	Short: "Show local attempt history, or detailed results for one assessment",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}

		if len(args) == 1 {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid assessment id %q", args[0])
			}
			return showDetails(cmd, cfg, id)
		}

		dbPath, err := cfg.DataPath("history.db")
		if err != nil {
			return fmt.Errorf("resolve data dir: %w", err)
		}
		hist, err := history.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open history: %w", err)
		}
		defer hist.Close()

		attempts, err := hist.Recent(cmd.Context(), 20)
		if err != nil {
			return fmt.Errorf("read history: %w", err)
		}
		if len(attempts) == 0 {
			fmt.Println("No assessments taken yet.")
			return nil
		}

		fmt.Printf("%-12s %-20s %8s %10s  %s\n", "Date", "Subject", "Score", "Correct", "Level")
		for _, a := range attempts {
			fmt.Printf("%-12s %-20s %7.0f%% %6d/%-3d  %s\n",
				a.CompletedAt.Local().Format("2006-01-02"),
				a.Subject, a.Score, a.CorrectAnswers, a.TotalQuestions, a.OverallLevel)
		}
		return nil
	},
}

// showDetails prints the server-side graded review for one assessment.
func showDetails(cmd *cobra.Command, cfg config.Config, id int64) error {
	_, client, err := buildClient(cfg)
	if err != nil {
		return err
	}

	details, err := client.AssessmentResults(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("fetch results: %w", err)
	}

	fmt.Printf("%s: %.0f%% (%d of %d correct)\n",
		details.Subject, details.Score, details.CorrectAnswers, details.TotalQuestions)
	if details.GapAnalysis.OverallLevel != "" {
		fmt.Println("Level:", details.GapAnalysis.OverallLevel)
	}
	for _, r := range details.Responses {
		mark := "✗"
		if r.IsCorrect {
			mark = "✓"
		}
		fmt.Printf("\n%s %s\n", mark, r.QuestionText)
		fmt.Printf("  your answer: %s\n", r.YourAnswer)
		if !r.IsCorrect {
			fmt.Printf("  correct:     %s\n", r.CorrectAnswer)
		}
		if r.Explanation != "" {
			fmt.Printf("  %s\n", r.Explanation)
		}
	}
	if len(details.Recommendations) > 0 {
		fmt.Println()
		for _, rec := range details.Recommendations {
			fmt.Println("•", rec)
		}
	}
	return nil
}
