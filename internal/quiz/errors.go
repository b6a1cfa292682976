package quiz

import "errors"

// Session API misuse is a programming defect, not a user-facing
// condition; these errors should never reach the display layer.
var (
	// ErrIndexOutOfRange means the question index is not a valid
	// position in the loaded question set.
	ErrIndexOutOfRange = errors.New("question index out of range")

	// ErrInvalidOption means the option key is not one of the
	// question's option keys.
	ErrInvalidOption = errors.New("option key not among a-d")

	// ErrNothingToSubmit means Submit was called with no question set
	// loaded.
	ErrNothingToSubmit = errors.New("no question set loaded")

	// ErrAlreadyGraded means an answer selection was attempted after
	// submission; selections are frozen once graded.
	ErrAlreadyGraded = errors.New("session already graded")
)
