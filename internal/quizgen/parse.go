package quizgen

import (
	"encoding/json"
	"fmt"
)

// ValidationError describes why a model reply failed validation.
type ValidationError struct {
	Kind   FailureKind // FailureMalformedJSON or FailureSchemaMismatch
	Detail string      // Human-readable description for diagnostics
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

// mcqOutput is the raw wire shape of a single question.
type mcqOutput struct {
	MCQ     string            `json:"mcq"`
	Options map[string]string `json:"options"`
	Correct string            `json:"correct"`
}

// ParseQuestionSet parses and validates a raw model reply into a
// QuestionSet. The check is all-or-nothing: one bad element invalidates
// the whole batch, there is no partial repair. Any number of questions
// above zero is accepted — the prompt asks for three, but the count is
// not enforced here.
//
// Pure function of its input; the error, when non-nil, is always a
// *ValidationError.
func ParseQuestionSet(raw []byte) (QuestionSet, error) {
	var probe any
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, &ValidationError{
			Kind:   FailureMalformedJSON,
			Detail: err.Error(),
		}
	}

	var envelope struct {
		MCQs []mcqOutput `json:"mcqs"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, &ValidationError{
			Kind:   FailureSchemaMismatch,
			Detail: err.Error(),
		}
	}
	if envelope.MCQs == nil {
		return nil, &ValidationError{
			Kind:   FailureSchemaMismatch,
			Detail: `top-level key "mcqs" missing or not an array`,
		}
	}
	if len(envelope.MCQs) == 0 {
		return nil, &ValidationError{
			Kind:   FailureSchemaMismatch,
			Detail: `"mcqs" is empty`,
		}
	}

	set := make(QuestionSet, 0, len(envelope.MCQs))
	for i, out := range envelope.MCQs {
		q, err := validateQuestion(out)
		if err != nil {
			return nil, &ValidationError{
				Kind:   FailureSchemaMismatch,
				Detail: fmt.Sprintf("question %d: %s", i+1, err.Detail),
			}
		}
		set = append(set, q)
	}

	return set, nil
}

// validateQuestion checks one wire-format question and converts it.
func validateQuestion(out mcqOutput) (Question, *ValidationError) {
	fail := func(format string, args ...any) (Question, *ValidationError) {
		return Question{}, &ValidationError{
			Kind:   FailureSchemaMismatch,
			Detail: fmt.Sprintf(format, args...),
		}
	}

	if out.MCQ == "" {
		return fail(`"mcq" is empty`)
	}
	if len(out.Options) != len(OptionKeys) {
		return fail(`"options" must have exactly %d entries, got %d`, len(OptionKeys), len(out.Options))
	}

	options := make(map[string]string, len(OptionKeys))
	for _, key := range OptionKeys {
		text, ok := out.Options[key]
		if !ok {
			return fail(`"options" missing key %q`, key)
		}
		if text == "" {
			return fail(`option %q is empty`, key)
		}
		options[key] = text
	}

	if _, ok := options[out.Correct]; !ok {
		return fail(`"correct" is %q, want one of a-d`, out.Correct)
	}

	return Question{
		Text:       out.MCQ,
		Options:    options,
		CorrectKey: out.Correct,
	}, nil
}
