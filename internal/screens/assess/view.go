package assess

import (
	"fmt"
	"strings"
	"time"

	"github.com/eduai/eduai/internal/ui/components"
	"github.com/eduai/eduai/internal/ui/layout"
	"github.com/eduai/eduai/internal/ui/theme"
)

func (s *Screen) View(width, height int) string {
	switch s.phase {
	case phaseLoadingSubjects:
		return layout.Center(theme.Hint.Render("Loading subjects..."), width, height)
	case phasePickSubject:
		return s.viewPicker(width, height)
	case phaseStarting:
		return layout.Center(theme.Hint.Render("Preparing your assessment..."), width, height)
	case phaseQuestion:
		return s.viewQuestion(width, height)
	case phaseSubmitting:
		return layout.Center(theme.Hint.Render("Grading your answers..."), width, height)
	case phaseResults:
		return s.viewResults(width, height)
	}
	return ""
}

func (s *Screen) viewPicker(width, height int) string {
	var lines []string
	lines = append(lines, theme.Title.Render("Pick a subject"), "")
	lines = append(lines, s.picker.View())
	if s.errMsg != "" {
		lines = append(lines, theme.Incorrect.Render(s.errMsg))
	}
	card := theme.Card.Width(50).Render(strings.Join(lines, "\n"))
	return layout.Center(card, width, height)
}

func (s *Screen) viewQuestion(width, height int) string {
	answered, total := s.runner.Progress()
	q := s.runner.CurrentQuestion()
	if q == nil {
		return layout.Center(theme.Hint.Render("Nothing to show."), width, height)
	}

	cw := width - 20
	if cw > 72 {
		cw = 72
	}
	if cw < 40 {
		cw = 40
	}

	progress := components.NewProgressBar(
		fmt.Sprintf("Question %d of %d", answered+1, total),
		float64(answered)/float64(total),
		false,
		cw-6,
	)

	var lines []string
	lines = append(lines, progress.View(), "")
	if q.Topic != "" {
		lines = append(lines, theme.Hint.Render(q.Topic), "")
	}
	lines = append(lines, s.choices.View())
	lines = append(lines, theme.Hint.Render("Elapsed: "+time.Since(s.started).Truncate(time.Second).String()))
	if s.errMsg != "" {
		lines = append(lines, "", theme.Incorrect.Render(s.errMsg))
	}

	card := theme.Card.Width(cw).Render(strings.Join(lines, "\n"))
	return layout.Center(card, width, height)
}

func (s *Screen) viewResults(width, height int) string {
	res := s.runner.Results()
	if res == nil {
		return layout.Center(theme.Hint.Render("No results yet."), width, height)
	}

	var lines []string
	lines = append(lines, theme.Title.Render("Your Results"), "")
	lines = append(lines, theme.Body.Render(fmt.Sprintf(
		"Score: %.0f%%   (%d of %d correct)", res.Score, res.CorrectAnswers, res.TotalQuestions)))
	if res.GapAnalysis.OverallLevel != "" {
		lines = append(lines, theme.Body.Render("Level: "+res.GapAnalysis.OverallLevel))
	}

	if len(res.GapAnalysis.Strengths) > 0 {
		lines = append(lines, "", theme.Correct.Render("Strengths"))
		for _, st := range res.GapAnalysis.Strengths {
			lines = append(lines, theme.Body.Render(fmt.Sprintf("  %s (%.0f%%)", st.Topic, st.Accuracy*100)))
		}
	}
	if len(res.GapAnalysis.Gaps) > 0 {
		lines = append(lines, "", theme.Incorrect.Render("Needs work"))
		for _, g := range res.GapAnalysis.Gaps {
			lines = append(lines, theme.Body.Render(fmt.Sprintf("  %s (%.0f%%, %s)", g.Topic, g.Accuracy*100, g.Severity)))
		}
	}
	if len(res.Recommendations) > 0 {
		lines = append(lines, "", theme.Subtitle.Render("Recommendations"))
		for _, rec := range res.Recommendations {
			lines = append(lines, theme.Hint.Render("  • "+rec))
		}
	}
	lines = append(lines, "", theme.Hint.Render("Press R to try another subject."))

	card := theme.Card.Width(64).Render(strings.Join(lines, "\n"))
	return layout.Center(card, width, height)
}
