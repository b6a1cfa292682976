package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/quizdeck/quizdeck/internal/llm"
	"github.com/quizdeck/quizdeck/internal/quizgen"
	"github.com/quizdeck/quizdeck/internal/store"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate [file]",
	Short: "Generate a quiz from a text file (or stdin) and print it as JSON",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		level, _ := cmd.Flags().GetString("level")

		var text []byte
		var err error
		if len(args) == 1 {
			text, err = os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read input file: %w", err)
			}
		} else {
			text, err = io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
		if err != nil {
			return fmt.Errorf("configure LLM provider: %w", err)
		}

		generator := quizgen.New(provider, quizgen.DefaultConfig())
		result, err := generator.Generate(ctx, quizgen.Input{
			Text:       string(text),
			Difficulty: level,
		})
		if err != nil {
			return err
		}

		if result.Failure != nil {
			fmt.Fprintf(os.Stderr, "warning: %s generation failure, emitting sample questions: %s\n",
				result.Failure.Kind, result.Failure.Detail)
		}

		out := struct {
			Source    quizgen.Source      `json:"source"`
			Questions []generatedQuestion `json:"mcqs"`
		}{Source: result.Source}
		for _, q := range result.Questions {
			out.Questions = append(out.Questions, generatedQuestion{
				MCQ:     q.Text,
				Options: q.Options,
				Correct: q.CorrectKey,
			})
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	},
}

// generatedQuestion mirrors the wire shape so output can be piped into
// other tools that consume the same format.
type generatedQuestion struct {
	MCQ     string            `json:"mcq"`
	Options map[string]string `json:"options"`
	Correct string            `json:"correct"`
}

func init() {
	generateCmd.Flags().StringP("level", "l", "medium", "Difficulty level (easy, medium, hard)")
}
