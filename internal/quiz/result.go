package quiz

import "github.com/quizdeck/quizdeck/internal/quizgen"

// Result holds the graded outcome of a submitted session.
type Result struct {
	// Score is the count of questions whose selection matches the
	// correct key. Unanswered questions never score.
	Score int

	// Total is the number of questions in the set.
	Total int

	// Percentage is 100 * Score / Total.
	Percentage float64

	// Review holds one entry per question, in order, for the results
	// display.
	Review []QuestionReview
}

// QuestionReview pairs a question with the user's selection for the
// post-submission review.
type QuestionReview struct {
	Question    quizgen.Question
	SelectedKey string // "" when unanswered
	Answered    bool
	Correct     bool
}

// buildResult computes the score from a question set and its selections.
func buildResult(questions quizgen.QuestionSet, selections []string) *Result {
	r := &Result{Total: len(questions)}

	for i, q := range questions {
		selected := selections[i]
		review := QuestionReview{
			Question:    q,
			SelectedKey: selected,
			Answered:    selected != "",
			Correct:     selected != "" && selected == q.CorrectKey,
		}
		if review.Correct {
			r.Score++
		}
		r.Review = append(r.Review, review)
	}

	if r.Total > 0 {
		r.Percentage = 100 * float64(r.Score) / float64(r.Total)
	}

	return r
}
