package quizgen

import "github.com/quizdeck/quizdeck/internal/llm"

// QuizSchema defines the JSON schema for LLM quiz generation responses.
// Providers with native structured output enforce it at the API level;
// ParseQuestionSet re-checks the same shape on the returned text.
var QuizSchema = &llm.Schema{
	Name:        "mcq-batch",
	Description: "A batch of multiple-choice questions derived from source text",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"mcqs": map[string]any{
				"type":        "array",
				"minItems":    1,
				"description": "The generated questions, in presentation order",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"mcq": map[string]any{
							"type":        "string",
							"minLength":   1,
							"description": "The question text shown to the user",
						},
						"options": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"a": map[string]any{"type": "string", "minLength": 1},
								"b": map[string]any{"type": "string", "minLength": 1},
								"c": map[string]any{"type": "string", "minLength": 1},
								"d": map[string]any{"type": "string", "minLength": 1},
							},
							"required":             []any{"a", "b", "c", "d"},
							"additionalProperties": false,
							"description":          "Exactly four answer options keyed a through d",
						},
						"correct": map[string]any{
							"type":        "string",
							"enum":        []any{"a", "b", "c", "d"},
							"description": "The key of the correct option",
						},
					},
					"required":             []any{"mcq", "options", "correct"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"mcqs"},
		"additionalProperties": false,
	},
}
