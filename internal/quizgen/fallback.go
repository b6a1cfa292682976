package quizgen

// DefaultQuestionSet returns the fixed placeholder quiz substituted
// whenever generation or validation fails. It passes the same structural
// checks as a generated set and has no failure mode.
func DefaultQuestionSet() QuestionSet {
	return QuestionSet{
		{
			Text: "Sample Question 1",
			Options: map[string]string{
				"a": "Option A",
				"b": "Option B",
				"c": "Option C",
				"d": "Option D",
			},
			CorrectKey: "a",
		},
		{
			Text: "Sample Question 2",
			Options: map[string]string{
				"a": "Option A",
				"b": "Option B",
				"c": "Option C",
				"d": "Option D",
			},
			CorrectKey: "b",
		},
		{
			Text: "Sample Question 3",
			Options: map[string]string{
				"a": "Option A",
				"b": "Option B",
				"c": "Option C",
				"d": "Option D",
			},
			CorrectKey: "c",
		},
	}
}
