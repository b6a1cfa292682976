package cmd

import (
	"fmt"
	"os"

	"github.com/quizdeck/quizdeck/internal/app"
	"github.com/quizdeck/quizdeck/internal/llm"
	"github.com/quizdeck/quizdeck/internal/quizgen"
	"github.com/quizdeck/quizdeck/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo := st.EventRepo()

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Quizzes will fall back to the built-in sample questions.")
		provider = llm.NewMockProvider()
	}

	opts := app.Options{
		Generator: quizgen.New(provider, quizgen.DefaultConfig()),
		EventRepo: eventRepo,
	}

	return app.Run(opts)
}
