package quizgen

import (
	"fmt"
	"strings"

	"github.com/quizdeck/quizdeck/internal/llm"
)

const systemPrompt = `You are a quiz author. Given a block of source text, create a quiz with exactly 3 multiple choice questions.

Rules:
- Generate exactly 3 questions.
- Each question must have exactly 4 options, keyed "a", "b", "c", "d".
- The "correct" field must contain the key of the correct option (a, b, c, or d).
- Questions must be answerable from the provided text alone.
- Match the requested difficulty level.
- Respond with a single JSON object of this exact structure and nothing else — no prose, no code fences:
{
  "mcqs": [
    {
      "mcq": "Question text here",
      "options": {
        "a": "First option",
        "b": "Second option",
        "c": "Third option",
        "d": "Fourth option"
      },
      "correct": "a"
    }
  ]
}`

// buildUserMessage constructs the user message embedding the source text
// verbatim along with the difficulty label.
func buildUserMessage(input Input) string {
	var b strings.Builder

	b.WriteString("Text:\n")
	b.WriteString(input.Text)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Difficulty level: %s\n", input.Difficulty)

	return b.String()
}

// buildRequest assembles the full generation request. The sampling
// parameters come from Config and are the same for every call.
func buildRequest(input Input, cfg Config) llm.Request {
	return llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input)},
		},
		Schema:      QuizSchema,
		MaxTokens:   cfg.MaxTokens,
		Temperature: cfg.Temperature,
		TopP:        cfg.TopP,
	}
}
