package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int    // max results (0 = unlimited)
	Purpose string // filter LLM events by purpose ("" = all)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a recorded LLM request, as read back from the log.
type LLMEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsageStat aggregates token usage for one purpose label.
type LLMUsageStat struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// QuizResultEventData captures the outcome of one submitted quiz.
type QuizResultEventData struct {
	QuizID        string
	Difficulty    string
	Source        string // "generated" or "fallback"
	QuestionCount int
	Score         int
	Percentage    float64
}

// QuizResultEvent is a recorded quiz submission, as read back from the log.
type QuizResultEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	QuizResultEventData
}

// QuizStats aggregates all recorded quiz submissions.
type QuizStats struct {
	Quizzes        int
	Questions      int
	Correct        int
	AvgPercentage  float64
	FallbackCount  int
	GeneratedCount int
}

// EventRepo provides append and query access to domain events.
// Implementations must never fail the caller's primary flow: event
// logging errors are the caller's to report, not to propagate.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns recorded LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns one LLM event by ID, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates token usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStat, error)

	// AppendQuizResult records a graded quiz submission.
	AppendQuizResult(ctx context.Context, data QuizResultEventData) error

	// RecentQuizResults returns recorded quiz submissions, newest first.
	RecentQuizResults(ctx context.Context, opts QueryOpts) ([]QuizResultEvent, error)

	// AggregateQuizStats summarizes all recorded quiz submissions.
	AggregateQuizStats(ctx context.Context) (*QuizStats, error)
}
