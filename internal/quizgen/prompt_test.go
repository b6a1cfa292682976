package quizgen

import (
	"strings"
	"testing"
)

func TestBuildUserMessage_EmbedsTextVerbatim(t *testing.T) {
	text := "The mitochondria is the powerhouse of the cell.\n\nIt has two membranes."
	msg := buildUserMessage(Input{Text: text, Difficulty: "medium"})

	if !strings.Contains(msg, text) {
		t.Errorf("expected user message to contain the source text verbatim")
	}
	if !strings.Contains(msg, "Difficulty level: medium") {
		t.Errorf("expected difficulty label, got:\n%s", msg)
	}
}

func TestBuildUserMessage_DifficultyPassedThrough(t *testing.T) {
	// The label is uninterpreted: arbitrary strings go into the prompt as-is.
	msg := buildUserMessage(Input{Text: "some text", Difficulty: "fiendish"})
	if !strings.Contains(msg, "Difficulty level: fiendish") {
		t.Errorf("expected pass-through difficulty, got:\n%s", msg)
	}
}

func TestBuildRequest_SystemPromptRules(t *testing.T) {
	req := buildRequest(Input{Text: "abc", Difficulty: "easy"}, DefaultConfig())

	for _, want := range []string{
		"exactly 3 questions",
		`"mcqs"`,
		`"correct"`,
		"no prose, no code fences",
	} {
		if !strings.Contains(req.System, want) {
			t.Errorf("expected system prompt to contain %q", want)
		}
	}
}

func TestBuildRequest_SamplingConfig(t *testing.T) {
	cfg := DefaultConfig()
	req := buildRequest(Input{Text: "abc", Difficulty: "easy"}, cfg)

	if req.MaxTokens != 2000 {
		t.Errorf("MaxTokens = %d, want 2000", req.MaxTokens)
	}
	if req.Temperature != 0.7 {
		t.Errorf("Temperature = %v, want 0.7", req.Temperature)
	}
	if req.TopP != 1.0 {
		t.Errorf("TopP = %v, want 1.0", req.TopP)
	}
	if req.Schema == nil {
		t.Fatal("expected a response schema on the request")
	}
	if req.Schema.Name != "mcq-batch" {
		t.Errorf("schema name = %q, want mcq-batch", req.Schema.Name)
	}
	if len(req.Messages) != 1 {
		t.Fatalf("expected exactly one user message, got %d", len(req.Messages))
	}
}
