package compose

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/quizdeck/quizdeck/internal/quizgen"
	"github.com/quizdeck/quizdeck/internal/router"
	"github.com/quizdeck/quizdeck/internal/screen"
	quizscreen "github.com/quizdeck/quizdeck/internal/screens/quiz"
	"github.com/quizdeck/quizdeck/internal/store"
	"github.com/quizdeck/quizdeck/internal/ui/components"
	"github.com/quizdeck/quizdeck/internal/ui/layout"
	"github.com/quizdeck/quizdeck/internal/ui/theme"
)

// Difficulty levels offered in the picker.
var difficulties = []string{"easy", "medium", "hard"}

// quizReadyMsg is sent when quiz generation completes.
type quizReadyMsg struct {
	Result *quizgen.Result
	Err    error
}

// ComposeScreen is the root screen: paste text, pick a difficulty,
// generate a quiz.
type ComposeScreen struct {
	generator  quizgen.Generator
	eventRepo  store.EventRepo
	input      components.TextArea
	diffIndex  int
	generating bool
	warnMsg    string
}

var _ screen.Screen = (*ComposeScreen)(nil)
var _ screen.KeyHintProvider = (*ComposeScreen)(nil)
var _ screen.StatusProvider = (*ComposeScreen)(nil)

// New creates a new ComposeScreen with injected dependencies.
func New(generator quizgen.Generator, eventRepo store.EventRepo) *ComposeScreen {
	return &ComposeScreen{
		generator: generator,
		eventRepo: eventRepo,
		diffIndex: 1, // medium
		input:     components.NewTextArea("Paste the text to quiz yourself on..."),
	}
}

func (c *ComposeScreen) Init() tea.Cmd {
	return c.input.Init()
}

func (c *ComposeScreen) Title() string {
	return "New Quiz"
}

func (c *ComposeScreen) Status() string {
	return difficulties[c.diffIndex]
}

func (c *ComposeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Ctrl+G", Description: "Generate"},
		{Key: "Ctrl+D", Description: "Difficulty"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (c *ComposeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case quizReadyMsg:
		return c.handleQuizReady(msg)

	case tea.KeyMsg:
		if c.generating {
			return c, nil
		}
		switch msg.String() {
		case "ctrl+d":
			c.diffIndex = (c.diffIndex + 1) % len(difficulties)
			return c, nil
		case "ctrl+g":
			return c.startGeneration()
		}
	}

	if c.generating {
		return c, nil
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

// startGeneration kicks off quiz generation. Empty input never reaches
// the provider; it just shows a warning.
func (c *ComposeScreen) startGeneration() (screen.Screen, tea.Cmd) {
	text := c.input.Value()
	if strings.TrimSpace(text) == "" {
		c.warnMsg = "Please paste some text before generating a quiz."
		return c, nil
	}

	c.warnMsg = ""
	c.generating = true
	input := quizgen.Input{
		Text:       text,
		Difficulty: difficulties[c.diffIndex],
	}

	return c, func() tea.Msg {
		result, err := c.generator.Generate(context.Background(), input)
		return quizReadyMsg{Result: result, Err: err}
	}
}

func (c *ComposeScreen) handleQuizReady(msg quizReadyMsg) (screen.Screen, tea.Cmd) {
	c.generating = false

	if msg.Err != nil {
		if errors.Is(msg.Err, quizgen.ErrEmptyInput) {
			c.warnMsg = "Please paste some text before generating a quiz."
		} else {
			c.warnMsg = fmt.Sprintf("Quiz generation failed: %v", msg.Err)
		}
		return c, nil
	}

	generator := c.generator
	eventRepo := c.eventRepo
	restart := func() screen.Screen {
		return New(generator, eventRepo)
	}

	next := quizscreen.New(msg.Result, difficulties[c.diffIndex], c.eventRepo, restart)
	return c, func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

func (c *ComposeScreen) View(width, height int) string {
	if c.generating {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  Generating quiz...")
	}

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  Source text"))
	b.WriteString("\n\n")

	inputHeight := height - 8
	if inputHeight < 3 {
		inputHeight = 3
	}
	c.input.SetSize(width-4, inputHeight)
	b.WriteString(lipgloss.NewStyle().PaddingLeft(2).Render(c.input.View()))
	b.WriteString("\n\n")

	diffLine := fmt.Sprintf("  Difficulty: %s",
		lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(difficulties[c.diffIndex]))
	b.WriteString(diffLine)

	if c.warnMsg != "" {
		b.WriteString("\n\n")
		b.WriteString("  " + theme.Warn.Render(c.warnMsg))
	}

	return b.String()
}
