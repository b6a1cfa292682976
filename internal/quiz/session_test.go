package quiz

import (
	"errors"
	"math"
	"testing"

	"github.com/quizdeck/quizdeck/internal/quizgen"
)

func testQuestions() quizgen.QuestionSet {
	opts := func() map[string]string {
		return map[string]string{"a": "A", "b": "B", "c": "C", "d": "D"}
	}
	return quizgen.QuestionSet{
		{Text: "Q1", Options: opts(), CorrectKey: "b"},
		{Text: "Q2", Options: opts(), CorrectKey: "a"},
		{Text: "Q3", Options: opts(), CorrectKey: "d"},
	}
}

func TestSession_StateLifecycle(t *testing.T) {
	s := NewSession()
	if s.State() != StateEmpty {
		t.Fatalf("new session state = %v, want empty", s.State())
	}

	s.Load(testQuestions())
	if s.State() != StateLoaded {
		t.Fatalf("state after load = %v, want loaded", s.State())
	}
	if s.ID() == "" {
		t.Error("expected a session ID after load")
	}

	if _, err := s.Submit(); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if s.State() != StateGraded {
		t.Fatalf("state after submit = %v, want graded", s.State())
	}
}

func TestSession_ScoreSingleCorrect(t *testing.T) {
	s := NewSession()
	s.Load(testQuestions())

	if err := s.SelectAnswer(0, "b"); err != nil {
		t.Fatalf("select: %v", err)
	}

	res, err := s.Submit()
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if res.Score != 1 {
		t.Errorf("score = %d, want 1", res.Score)
	}
	if res.Total != 3 {
		t.Errorf("total = %d, want 3", res.Total)
	}
	want := 100.0 / 3.0
	if math.Abs(res.Percentage-want) > 1e-9 {
		t.Errorf("percentage = %v, want %v", res.Percentage, want)
	}
}

func TestSession_NoSelectionsScoreZero(t *testing.T) {
	s := NewSession()
	s.Load(testQuestions())

	res, err := s.Submit()
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if res.Score != 0 {
		t.Errorf("score = %d, want 0", res.Score)
	}
	if res.Percentage != 0 {
		t.Errorf("percentage = %v, want 0", res.Percentage)
	}
	for i, rev := range res.Review {
		if rev.Answered {
			t.Errorf("review[%d] reported answered", i)
		}
	}
}

func TestSession_AllCorrect(t *testing.T) {
	s := NewSession()
	s.Load(testQuestions())

	for i, q := range s.Questions() {
		if err := s.SelectAnswer(i, q.CorrectKey); err != nil {
			t.Fatalf("select %d: %v", i, err)
		}
	}

	res, err := s.Submit()
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if res.Score != 3 || res.Percentage != 100.0 {
		t.Errorf("score = %d (%.1f%%), want 3 (100.0%%)", res.Score, res.Percentage)
	}
}

func TestSession_SelectOverwrites(t *testing.T) {
	s := NewSession()
	s.Load(testQuestions())

	if err := s.SelectAnswer(0, "a"); err != nil {
		t.Fatalf("select: %v", err)
	}
	if err := s.SelectAnswer(0, "b"); err != nil {
		t.Fatalf("re-select: %v", err)
	}

	key, ok := s.Selection(0)
	if !ok || key != "b" {
		t.Fatalf("selection = %q (%v), want b", key, ok)
	}

	res, _ := s.Submit()
	if res.Score != 1 {
		t.Errorf("score = %d, want 1 (last selection wins)", res.Score)
	}
}

func TestSession_SelectOutOfRange(t *testing.T) {
	s := NewSession()
	s.Load(testQuestions())
	_ = s.SelectAnswer(0, "b")

	if err := s.SelectAnswer(3, "a"); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
	if err := s.SelectAnswer(-1, "a"); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}

	// Prior selections are untouched by the rejected calls.
	key, ok := s.Selection(0)
	if !ok || key != "b" {
		t.Errorf("selection = %q (%v), want b", key, ok)
	}
}

func TestSession_SelectInvalidOption(t *testing.T) {
	s := NewSession()
	s.Load(testQuestions())

	if err := s.SelectAnswer(0, "e"); !errors.Is(err, ErrInvalidOption) {
		t.Fatalf("expected ErrInvalidOption, got %v", err)
	}
	if _, ok := s.Selection(0); ok {
		t.Error("rejected selection must not be recorded")
	}
}

func TestSession_SubmitEmpty(t *testing.T) {
	s := NewSession()
	if _, err := s.Submit(); !errors.Is(err, ErrNothingToSubmit) {
		t.Fatalf("expected ErrNothingToSubmit, got %v", err)
	}
	if s.State() != StateEmpty {
		t.Errorf("state = %v, want empty", s.State())
	}
}

func TestSession_SubmitIdempotent(t *testing.T) {
	s := NewSession()
	s.Load(testQuestions())
	_ = s.SelectAnswer(0, "b")
	_ = s.SelectAnswer(1, "c")

	first, err := s.Submit()
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	second, err := s.Submit()
	if err != nil {
		t.Fatalf("repeat submit: %v", err)
	}
	if first.Score != second.Score || first.Percentage != second.Percentage {
		t.Errorf("repeat submit changed the result: %+v vs %+v", first, second)
	}
}

func TestSession_SelectAfterGraded(t *testing.T) {
	s := NewSession()
	s.Load(testQuestions())
	_, _ = s.Submit()

	if err := s.SelectAnswer(0, "b"); !errors.Is(err, ErrAlreadyGraded) {
		t.Fatalf("expected ErrAlreadyGraded, got %v", err)
	}
	if _, ok := s.Selection(0); ok {
		t.Error("late selection must not be recorded")
	}
}

func TestSession_LoadReplacesEverything(t *testing.T) {
	s := NewSession()
	s.Load(testQuestions())
	_ = s.SelectAnswer(0, "b")
	_, _ = s.Submit()
	firstID := s.ID()

	replacement := quizgen.QuestionSet{
		{Text: "New Q", Options: map[string]string{"a": "A", "b": "B", "c": "C", "d": "D"}, CorrectKey: "c"},
	}
	s.Load(replacement)

	if s.State() != StateLoaded {
		t.Fatalf("state after reload = %v, want loaded", s.State())
	}
	if s.ID() == firstID {
		t.Error("expected a fresh session ID on reload")
	}
	if _, ok := s.Selection(0); ok {
		t.Error("expected selections cleared on reload")
	}
	if len(s.Questions()) != 1 {
		t.Errorf("question count = %d, want 1", len(s.Questions()))
	}

	// Graded flag cleared: selection and submission work again.
	if err := s.SelectAnswer(0, "c"); err != nil {
		t.Fatalf("select after reload: %v", err)
	}
	res, err := s.Submit()
	if err != nil {
		t.Fatalf("submit after reload: %v", err)
	}
	if res.Score != 1 || res.Percentage != 100.0 {
		t.Errorf("score = %d (%.1f%%), want 1 (100.0%%)", res.Score, res.Percentage)
	}
}

func TestSession_ReviewDetail(t *testing.T) {
	s := NewSession()
	s.Load(testQuestions())
	_ = s.SelectAnswer(0, "c") // wrong
	_ = s.SelectAnswer(1, "a") // right

	res, err := s.Submit()
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if len(res.Review) != 3 {
		t.Fatalf("review length = %d, want 3", len(res.Review))
	}

	if r := res.Review[0]; !r.Answered || r.Correct || r.SelectedKey != "c" {
		t.Errorf("review[0] = %+v, want answered wrong with c", r)
	}
	if r := res.Review[1]; !r.Answered || !r.Correct || r.SelectedKey != "a" {
		t.Errorf("review[1] = %+v, want answered right with a", r)
	}
	if r := res.Review[2]; r.Answered || r.Correct {
		t.Errorf("review[2] = %+v, want unanswered", r)
	}
}
