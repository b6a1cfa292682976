package quiz

import (
	"github.com/google/uuid"

	"github.com/quizdeck/quizdeck/internal/quizgen"
)

// State is the session lifecycle phase.
type State int

const (
	// StateEmpty means no question set is loaded.
	StateEmpty State = iota

	// StateLoaded means a question set is present and accepting answer
	// selections.
	StateLoaded

	// StateGraded means the session was submitted and scored. Terminal
	// until superseded by the next Load.
	StateGraded
)

// Session is the quiz-taking state machine. It owns the active question
// set, one answer selection slot per question, and the graded flag.
// A Session is owned by a single caller; it is not safe for concurrent
// use. Multi-user scenarios need one Session per user.
type Session struct {
	id         string
	questions  quizgen.QuestionSet
	selections []string // one slot per question; "" = unset
	graded     bool
}

// NewSession creates an empty session with no question set loaded.
func NewSession() *Session {
	return &Session{}
}

// Load installs a new question set, discarding any prior questions,
// selections, and graded state. This is a full replace, not a merge.
// The invariant len(selections) == len(questions) is established here
// and holds for the session's lifetime.
func (s *Session) Load(questions quizgen.QuestionSet) {
	s.id = uuid.NewString()
	s.questions = questions
	s.selections = make([]string, len(questions))
	s.graded = false
}

// ID returns the identifier assigned at the last Load, or "" when empty.
func (s *Session) ID() string {
	return s.id
}

// State reports the current lifecycle phase.
func (s *Session) State() State {
	switch {
	case len(s.questions) == 0:
		return StateEmpty
	case s.graded:
		return StateGraded
	default:
		return StateLoaded
	}
}

// Questions returns the loaded question set.
func (s *Session) Questions() quizgen.QuestionSet {
	return s.questions
}

// Selection returns the selected option key for question i and whether
// one has been made. Out-of-range indices report no selection.
func (s *Session) Selection(i int) (string, bool) {
	if i < 0 || i >= len(s.selections) {
		return "", false
	}
	return s.selections[i], s.selections[i] != ""
}

// SelectAnswer records the option key for question i, overwriting any
// prior selection. Selections are rejected once the session is graded.
func (s *Session) SelectAnswer(i int, key string) error {
	if s.graded {
		return ErrAlreadyGraded
	}
	if i < 0 || i >= len(s.questions) {
		return ErrIndexOutOfRange
	}
	if _, ok := s.questions[i].Options[key]; !ok {
		return ErrInvalidOption
	}
	s.selections[i] = key
	return nil
}

// Submit grades the session and transitions it to StateGraded.
// Submitting an already-graded session recomputes the same result from
// the frozen selections — the call is idempotent.
func (s *Session) Submit() (*Result, error) {
	if len(s.questions) == 0 {
		return nil, ErrNothingToSubmit
	}

	s.graded = true
	return buildResult(s.questions, s.selections), nil
}
