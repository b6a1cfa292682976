package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/quizdeck/quizdeck/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show quiz history and aggregate scores",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		stats, err := s.EventRepo().AggregateQuizStats(ctx)
		if err != nil {
			return fmt.Errorf("aggregate stats: %w", err)
		}

		if stats.Quizzes == 0 {
			fmt.Println("No quizzes taken yet.")
			return nil
		}

		fmt.Println("Overall")
		fmt.Println(strings.Repeat("─", 60))
		fmt.Printf("Quizzes taken:     %d\n", stats.Quizzes)
		fmt.Printf("Questions graded:  %d\n", stats.Questions)
		fmt.Printf("Correct answers:   %d\n", stats.Correct)
		fmt.Printf("Average score:     %.1f%%\n", stats.AvgPercentage)
		fmt.Printf("Generated/fallback: %d/%d\n", stats.GeneratedCount, stats.FallbackCount)

		recent, err := s.EventRepo().RecentQuizResults(ctx, store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query recent results: %w", err)
		}

		fmt.Println()
		fmt.Println("Recent Quizzes")
		fmt.Println(strings.Repeat("─", 60))
		fmt.Printf("%-19s  %-8s  %-9s  %-5s  %s\n",
			"Timestamp", "Level", "Source", "Score", "Pct")
		fmt.Println(strings.Repeat("─", 60))
		for _, e := range recent {
			fmt.Printf("%-19s  %-8s  %-9s  %d/%-3d  %.1f%%\n",
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				e.Difficulty,
				e.Source,
				e.Score,
				e.QuestionCount,
				e.Percentage,
			)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().IntP("limit", "n", 10, "Number of recent quizzes to show")
}
