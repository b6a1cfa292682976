package quizgen

// OptionKeys is the fixed, ordered set of option labels every question
// carries. Every generated or fallback question has exactly these four.
var OptionKeys = []string{"a", "b", "c", "d"}

// Question is a single multiple-choice question ready for display.
// Immutable once created.
type Question struct {
	// Text is the question prompt shown to the user.
	Text string

	// Options maps each option key (a-d) to its display text.
	// All four keys are present with non-empty text.
	Options map[string]string

	// CorrectKey names the correct option. Always one of OptionKeys.
	CorrectKey string
}

// QuestionSet is the ordered batch of questions forming one quiz.
type QuestionSet []Question

// Input holds everything needed to generate a quiz.
type Input struct {
	// Text is the source material the questions are drawn from,
	// embedded in the prompt verbatim.
	Text string

	// Difficulty is a caller-supplied label (e.g. "easy", "medium",
	// "hard") passed through to the prompt uninterpreted.
	Difficulty string
}

// Source records where a question set came from.
type Source string

const (
	// SourceGenerated means the set came from a validated LLM response.
	SourceGenerated Source = "generated"

	// SourceFallback means generation or validation failed and the
	// built-in placeholder set was substituted.
	SourceFallback Source = "fallback"
)

// Result is the outcome of one generation attempt. The question set is
// always present and always structurally valid: failures on the
// generation path degrade to the fallback set rather than propagating.
type Result struct {
	Questions QuestionSet
	Source    Source

	// Failure describes why the fallback was substituted.
	// Nil when Source is SourceGenerated.
	Failure *Failure
}

// Failure names the category of a generation failure for user-facing
// notices and diagnostics.
type Failure struct {
	Kind   FailureKind
	Detail string
}

// FailureKind is the failure taxonomy for the generation path.
type FailureKind string

const (
	// FailureTransport covers provider call errors: network, auth,
	// rate limits, timeouts, 5xx.
	FailureTransport FailureKind = "transport"

	// FailureMalformedJSON means the reply was not parseable JSON.
	FailureMalformedJSON FailureKind = "malformed_json"

	// FailureSchemaMismatch means the reply parsed but did not match
	// the expected quiz shape.
	FailureSchemaMismatch FailureKind = "schema_mismatch"
)
