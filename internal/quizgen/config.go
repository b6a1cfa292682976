package quizgen

// Config holds the sampling parameters for quiz generation. They are
// fixed configuration constants, not derived per call.
type Config struct {
	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// TopP is the nucleus sampling threshold (0.0-1.0).
	TopP float64
}

// DefaultConfig returns the recommended generation parameters.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   2000,
		Temperature: 0.7,
		TopP:        1.0,
	}
}
