package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/quizdeck/quizdeck/internal/quiz"
	"github.com/quizdeck/quizdeck/internal/quizgen"
	"github.com/quizdeck/quizdeck/internal/router"
	"github.com/quizdeck/quizdeck/internal/screen"
	"github.com/quizdeck/quizdeck/internal/ui/components"
	"github.com/quizdeck/quizdeck/internal/ui/layout"
	"github.com/quizdeck/quizdeck/internal/ui/theme"
)

// FailureNotice renders a one-line explanation of why sample questions
// were shown instead of generated ones. Empty for nil.
func FailureNotice(f *quizgen.Failure) string {
	if f == nil {
		return ""
	}
	switch f.Kind {
	case quizgen.FailureTransport:
		return "Showing sample questions: the model could not be reached."
	case quizgen.FailureMalformedJSON:
		return "Showing sample questions: the model reply was not valid JSON."
	case quizgen.FailureSchemaMismatch:
		return "Showing sample questions: the model reply did not match the expected quiz shape."
	default:
		return "Showing sample questions: quiz generation failed."
	}
}

// ResultsScreen shows the graded score and a per-question review.
type ResultsScreen struct {
	graded     *quiz.Result
	gen        *quizgen.Result
	difficulty string
	menu       components.Menu
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)
var _ screen.StatusProvider = (*ResultsScreen)(nil)

// New creates the results screen. retake rebuilds a fresh attempt at the
// same questions; restart returns to a blank compose screen.
func New(graded *quiz.Result, gen *quizgen.Result, difficulty string, retake, restart func() screen.Screen) *ResultsScreen {
	menu := components.NewMenu([]components.MenuItem{
		{Label: "Retake this quiz", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: retake()}
			}
		}},
		{Label: "New quiz", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.ResetScreenMsg{Screen: restart()}
			}
		}},
	})

	return &ResultsScreen{
		graded:     graded,
		gen:        gen,
		difficulty: difficulty,
		menu:       menu,
	}
}

func (r *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultsScreen) Title() string {
	return "Results"
}

func (r *ResultsScreen) Status() string {
	return fmt.Sprintf("%d/%d · %s", r.graded.Score, r.graded.Total, r.difficulty)
}

func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	r.menu, cmd = r.menu.Update(msg)
	return r, cmd
}

func (r *ResultsScreen) View(width, height int) string {
	var b strings.Builder

	score := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("Score: %d / %d  (%.1f%%)", r.graded.Score, r.graded.Total, r.graded.Percentage))
	b.WriteString("\n")
	b.WriteString(score)
	b.WriteString("\n")

	if notice := FailureNotice(r.gen.Failure); notice != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Warning).
			Render(notice))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, rev := range r.graded.Review {
		b.WriteString(renderReview(i, rev, width))
		b.WriteString("\n")
	}

	b.WriteString(r.menu.View())

	return b.String()
}

// renderReview renders one question with its options color-coded by
// outcome.
func renderReview(i int, rev quiz.QuestionReview, width int) string {
	var b strings.Builder

	header := fmt.Sprintf("  %d. %s", i+1, rev.Question.Text)
	if rev.Correct {
		b.WriteString(theme.Correct.Render("  ✓") + lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(header))
	} else {
		b.WriteString(theme.Incorrect.Render("  ✗") + lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(header))
	}
	b.WriteString("\n")

	for _, key := range quizgen.OptionKeys {
		line := fmt.Sprintf("       %s)  %s", key, rev.Question.Options[key])
		switch {
		case key == rev.Question.CorrectKey:
			b.WriteString(theme.Correct.Render(line + "  ← correct answer"))
		case rev.Answered && key == rev.SelectedKey:
			b.WriteString(theme.Incorrect.Render(line + "  ← your answer"))
		default:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(line))
		}
		b.WriteString("\n")
	}

	if !rev.Answered {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("       (not answered)"))
		b.WriteString("\n")
	}

	return b.String()
}
