package store

import (
	"context"
	"fmt"
	"time"
)

func (r *eventRepo) AppendQuizResult(ctx context.Context, data QuizResultEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO quiz_result_events
			(sequence, timestamp, quiz_id, difficulty, source,
			 question_count, score, percentage)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		seqNum,
		time.Now().UTC().Format(time.RFC3339),
		data.QuizID,
		data.Difficulty,
		data.Source,
		data.QuestionCount,
		data.Score,
		data.Percentage,
	)
	if err != nil {
		return fmt.Errorf("save quiz result event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentQuizResults(ctx context.Context, opts QueryOpts) ([]QuizResultEvent, error) {
	query := `SELECT id, sequence, timestamp, quiz_id, difficulty, source,
			question_count, score, percentage
		 FROM quiz_result_events
		 ORDER BY sequence DESC`
	args := []any{}
	if opts.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, opts.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query quiz results: %w", err)
	}
	defer rows.Close()

	var events []QuizResultEvent
	for rows.Next() {
		var e QuizResultEvent
		var ts string
		err := rows.Scan(
			&e.ID, &e.Sequence, &ts, &e.QuizID, &e.Difficulty, &e.Source,
			&e.QuestionCount, &e.Score, &e.Percentage,
		)
		if err != nil {
			return nil, fmt.Errorf("scan quiz result: %w", err)
		}
		e.Timestamp, err = time.Parse(time.RFC3339, ts)
		if err != nil {
			return nil, fmt.Errorf("parse event timestamp: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *eventRepo) AggregateQuizStats(ctx context.Context) (*QuizStats, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*),
			COALESCE(SUM(question_count), 0),
			COALESCE(SUM(score), 0),
			COALESCE(AVG(percentage), 0),
			COALESCE(SUM(CASE WHEN source = 'fallback' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN source = 'generated' THEN 1 ELSE 0 END), 0)
		 FROM quiz_result_events`)

	var st QuizStats
	err := row.Scan(&st.Quizzes, &st.Questions, &st.Correct,
		&st.AvgPercentage, &st.FallbackCount, &st.GeneratedCount)
	if err != nil {
		return nil, fmt.Errorf("aggregate quiz stats: %w", err)
	}
	return &st, nil
}
