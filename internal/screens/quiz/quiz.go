package quiz

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/quizdeck/quizdeck/internal/quiz"
	"github.com/quizdeck/quizdeck/internal/quizgen"
	"github.com/quizdeck/quizdeck/internal/router"
	"github.com/quizdeck/quizdeck/internal/screen"
	"github.com/quizdeck/quizdeck/internal/screens/results"
	"github.com/quizdeck/quizdeck/internal/store"
	"github.com/quizdeck/quizdeck/internal/ui/components"
	"github.com/quizdeck/quizdeck/internal/ui/layout"
	"github.com/quizdeck/quizdeck/internal/ui/theme"
)

// QuizScreen drives one quiz attempt: navigate questions, pick answers,
// submit for grading.
type QuizScreen struct {
	session    *quiz.Session
	gen        *quizgen.Result
	difficulty string
	eventRepo  store.EventRepo
	restart    func() screen.Screen
	index      int
	options    components.OptionList
	warnMsg    string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)

// New creates a QuizScreen over a freshly loaded session. restart builds
// a blank compose screen for the results screen's "new quiz" action.
func New(gen *quizgen.Result, difficulty string, eventRepo store.EventRepo, restart func() screen.Screen) *QuizScreen {
	session := quiz.NewSession()
	session.Load(gen.Questions)

	s := &QuizScreen{
		session:    session,
		gen:        gen,
		difficulty: difficulty,
		eventRepo:  eventRepo,
		restart:    restart,
	}
	if len(gen.Questions) > 0 {
		s.options = s.optionListFor(0)
	}
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

func (s *QuizScreen) Status() string {
	return fmt.Sprintf("%d/%d answered · %s", s.answeredCount(), len(s.session.Questions()), s.difficulty)
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "a-d", Description: "Answer"},
		{Key: "←→", Description: "Question"},
		{Key: "Ctrl+S", Description: "Submit"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "left", "h", "shift+tab":
		s.moveTo(s.index - 1)
		return s, nil
	case "right", "l", "tab":
		s.moveTo(s.index + 1)
		return s, nil
	case "ctrl+s":
		return s.submit()
	}

	var cmd tea.Cmd
	s.options, cmd = s.options.Update(msg)
	if s.options.ChosenKey != "" {
		if err := s.session.SelectAnswer(s.index, s.options.ChosenKey); err != nil {
			s.warnMsg = err.Error()
		} else {
			s.warnMsg = ""
		}
	}
	return s, cmd
}

// moveTo switches the displayed question, restoring any recorded answer.
func (s *QuizScreen) moveTo(i int) {
	if i < 0 || i >= len(s.session.Questions()) {
		return
	}
	s.index = i
	s.options = s.optionListFor(i)
}

func (s *QuizScreen) optionListFor(i int) components.OptionList {
	q := s.session.Questions()[i]
	ol := components.NewOptionList(quizgen.OptionKeys, q.Options)
	if key, ok := s.session.Selection(i); ok {
		ol.SetChosen(key)
	}
	return ol
}

func (s *QuizScreen) answeredCount() int {
	n := 0
	for i := range s.session.Questions() {
		if _, ok := s.session.Selection(i); ok {
			n++
		}
	}
	return n
}

// submit grades the session, records the result event, and pushes the
// results screen. Unanswered questions count as wrong.
func (s *QuizScreen) submit() (screen.Screen, tea.Cmd) {
	res, err := s.session.Submit()
	if err != nil {
		s.warnMsg = err.Error()
		return s, nil
	}

	// Recording failures never block the user's result.
	err = s.eventRepo.AppendQuizResult(context.Background(), store.QuizResultEventData{
		QuizID:        s.session.ID(),
		Difficulty:    s.difficulty,
		Source:        string(s.gen.Source),
		QuestionCount: res.Total,
		Score:         res.Score,
		Percentage:    res.Percentage,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record quiz result event: %v\n", err)
	}

	gen := s.gen
	difficulty := s.difficulty
	eventRepo := s.eventRepo
	restart := s.restart
	retake := func() screen.Screen {
		return New(gen, difficulty, eventRepo, restart)
	}

	next := results.New(res, gen, difficulty, retake, restart)
	return s, func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

func (s *QuizScreen) View(width, height int) string {
	questions := s.session.Questions()
	q := questions[s.index]

	var b strings.Builder

	info := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Question %d of %d", s.index+1, len(questions)))
	b.WriteString(info)
	b.WriteString("\n")

	if notice := results.FailureNotice(s.gen.Failure); notice != "" {
		b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.Warning).Render(notice))
		b.WriteString("\n")
	}

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	questionStyle := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(questionStyle.Render(q.Text))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.options.View()))

	if s.warnMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Warning).
			Render(s.warnMsg))
	}

	return b.String()
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
