package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/quizdeck/quizdeck/internal/llm"
)

func testInput() Input {
	return Input{
		Text:       "Photosynthesis converts light energy into chemical energy.",
		Difficulty: "easy",
	}
}

func TestGenerate_Success(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(validQuizJSON()),
	})
	gen := New(mock, DefaultConfig())

	result, err := gen.Generate(context.Background(), testInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Source != SourceGenerated {
		t.Errorf("source = %q, want generated", result.Source)
	}
	if result.Failure != nil {
		t.Errorf("expected nil failure, got %+v", result.Failure)
	}
	if len(result.Questions) != 3 {
		t.Errorf("expected 3 questions, got %d", len(result.Questions))
	}
}

func TestGenerate_EmptyInput(t *testing.T) {
	mock := llm.NewMockProvider()
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), Input{Text: "   \n\t  ", Difficulty: "easy"})
	if !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
	if mock.CallCount() != 0 {
		t.Errorf("expected no provider calls for empty input, got %d", mock.CallCount())
	}
}

func TestGenerate_ProviderErrorFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("connection refused")},
	})
	gen := New(mock, DefaultConfig())

	result, err := gen.Generate(context.Background(), testInput())
	if err != nil {
		t.Fatalf("provider failures must degrade, not error: %v", err)
	}
	if result.Source != SourceFallback {
		t.Errorf("source = %q, want fallback", result.Source)
	}
	if result.Failure == nil || result.Failure.Kind != FailureTransport {
		t.Errorf("expected transport failure, got %+v", result.Failure)
	}
	if len(result.Questions) != 3 {
		t.Errorf("expected the 3 fallback questions, got %d", len(result.Questions))
	}
}

func TestGenerate_RateLimitFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrRateLimit{RetryAfter: time.Second, Err: errors.New("429")},
	})
	gen := New(mock, DefaultConfig())

	result, err := gen.Generate(context.Background(), testInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Failure == nil || result.Failure.Kind != FailureTransport {
		t.Errorf("expected transport failure, got %+v", result.Failure)
	}
}

func TestGenerate_SchemaRejectionFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrInvalidResponse{Content: json.RawMessage(`{}`), Err: errors.New("schema validation failed")},
	})
	gen := New(mock, DefaultConfig())

	result, err := gen.Generate(context.Background(), testInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Failure == nil || result.Failure.Kind != FailureSchemaMismatch {
		t.Errorf("expected schema_mismatch failure, got %+v", result.Failure)
	}
}

func TestGenerate_MalformedReplyFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`Sure! Here are your questions: {"mcqs": [`),
	})
	gen := New(mock, DefaultConfig())

	result, err := gen.Generate(context.Background(), testInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Source != SourceFallback {
		t.Errorf("source = %q, want fallback", result.Source)
	}
	if result.Failure == nil || result.Failure.Kind != FailureMalformedJSON {
		t.Errorf("expected malformed_json failure, got %+v", result.Failure)
	}
}

func TestGenerate_BadShapeFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"mcqs": [{"mcq": "Q?", "options": {"a":"1"}, "correct": "a"}]}`),
	})
	gen := New(mock, DefaultConfig())

	result, err := gen.Generate(context.Background(), testInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Failure == nil || result.Failure.Kind != FailureSchemaMismatch {
		t.Errorf("expected schema_mismatch failure, got %+v", result.Failure)
	}
}

func TestGenerate_RequestCarriesInput(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(validQuizJSON()),
	})
	gen := New(mock, DefaultConfig())

	input := testInput()
	_, err := gen.Generate(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 provider call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if len(req.Messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(req.Messages))
	}
	userMsg := req.Messages[0].Content
	if !strings.Contains(userMsg, input.Text) {
		t.Errorf("expected user message to embed the source text")
	}
	if !strings.Contains(userMsg, "Difficulty level: easy") {
		t.Errorf("expected difficulty label in user message")
	}
	if req.MaxTokens != 2000 || req.Temperature != 0.7 || req.TopP != 1.0 {
		t.Errorf("unexpected sampling params: %+v", req)
	}
}
