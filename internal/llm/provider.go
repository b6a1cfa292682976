package llm

import (
	"context"
	"encoding/json"
)

// Provider is the single seam between quiz generation and the LLM
// vendors. Everything above it works with Request/Response; everything
// below translates to one vendor SDK.
type Provider interface {
	// Generate sends the request and returns the reply. When the request
	// carries a Schema, the reply Content is JSON already validated
	// against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID reports the configured model identifier.
	ModelID() string
}

// Request is a vendor-neutral generation request.
type Request struct {
	// System sets the model's role and output rules (the quiz-author
	// instructions).
	System string

	// Messages is the conversation. Quiz generation is single-turn, so
	// in practice this holds one user message with the source text.
	Messages []Message

	// Schema, when set, requests structured output: providers with a
	// native mechanism enforce it at the API, and the reply is validated
	// against it either way. Nil means free-form text.
	Schema *Schema

	// MaxTokens caps the reply length.
	MaxTokens int

	// Temperature is the sampling temperature, 0.0-1.0. Zero means the
	// vendor default.
	Temperature float64

	// TopP is the nucleus sampling threshold, 0.0-1.0. Zero means the
	// vendor default.
	TopP float64
}

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role identifies the message author.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is a named JSON Schema for structured output. Name doubles as
// the vendor-side identifier (tool name, response-format name) and the
// compile cache key, so it must be stable: the quiz batch schema is
// "mcq-batch".
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

// Response is a vendor-neutral generation reply.
type Response struct {
	// Content is the reply body. Schema-validated JSON when the request
	// carried a Schema, raw text otherwise.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request, which may be
	// more specific than the configured ModelID.
	Model string

	// StopReason is normalized across vendors: "end", "max_tokens".
	StopReason string
}

// Usage is the token accounting for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
