package quizgen

import (
	"context"
	"errors"
	"strings"

	"github.com/quizdeck/quizdeck/internal/llm"
)

// ErrEmptyInput is returned when the source text is empty after trimming
// surrounding whitespace. No request is constructed and no provider call
// is made; the caller should surface a warning rather than a quiz.
var ErrEmptyInput = errors.New("no text content to generate questions from")

// Generator produces a quiz from source text.
type Generator interface {
	// Generate builds the prompt, calls the provider, and validates the
	// reply. Provider and validation failures degrade to the fallback
	// question set recorded on the Result — the only error returned is
	// ErrEmptyInput. At most one request is in flight per call; there is
	// no internal queueing or retry beyond the provider middleware.
	Generate(ctx context.Context, input Input) (*Result, error)
}

// LLMGenerator implements Generator using an LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates an LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

func (g *LLMGenerator) Generate(ctx context.Context, input Input) (*Result, error) {
	if strings.TrimSpace(input.Text) == "" {
		return nil, ErrEmptyInput
	}

	ctx = llm.WithPurpose(ctx, "quiz-gen")
	req := buildRequest(input, g.config)

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return fallbackResult(providerFailure(err)), nil
	}

	questions, err := ParseQuestionSet(resp.Content)
	if err != nil {
		var vErr *ValidationError
		if errors.As(err, &vErr) {
			return fallbackResult(&Failure{Kind: vErr.Kind, Detail: vErr.Detail}), nil
		}
		return fallbackResult(&Failure{Kind: FailureSchemaMismatch, Detail: err.Error()}), nil
	}

	return &Result{Questions: questions, Source: SourceGenerated}, nil
}

// fallbackResult wraps the placeholder set with the failure that caused it.
func fallbackResult(f *Failure) *Result {
	return &Result{
		Questions: DefaultQuestionSet(),
		Source:    SourceFallback,
		Failure:   f,
	}
}

// providerFailure maps a provider error to the failure taxonomy.
// A schema rejection at the provider boundary is a response problem,
// not a transport one.
func providerFailure(err error) *Failure {
	var invResp *llm.ErrInvalidResponse
	if errors.As(err, &invResp) {
		return &Failure{Kind: FailureSchemaMismatch, Detail: err.Error()}
	}
	return &Failure{Kind: FailureTransport, Detail: err.Error()}
}
