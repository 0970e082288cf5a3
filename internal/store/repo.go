package store

import (
	"context"
	"time"
)

// QueryOpts configures record queries with filtering and pagination.
type QueryOpts struct {
	Limit   int       // max results (0 = unlimited)
	After   int64     // sequence > After
	Before  int64     // sequence < Before
	From    time.Time // finished/answered >= From
	To      time.Time // finished/answered <= To
	Section string    // section ID ("" = all)
}

// SessionRecord is one finished quiz run.
type SessionRecord struct {
	Sequence   int64
	SessionID  string
	Section    string
	Difficulty string
	Score      int
	Correct    int
	Answered   int
	Total      int
	BestStreak int
	Timeouts   int
	Duration   time.Duration
	StartedAt  time.Time
	FinishedAt time.Time
}

// Accuracy returns Correct / Answered, or 0 when nothing was answered.
func (r SessionRecord) Accuracy() float64 {
	if r.Answered == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.Answered)
}

// AnswerRecord is one answered (or timed-out) question.
type AnswerRecord struct {
	Sequence      int64
	SessionID     string
	Section       string
	QuestionIndex int
	Prompt        string
	Selected      string
	CorrectAnswer string
	IsCorrect     bool
	TimeTaken     time.Duration
	AnsweredAt    time.Time
}

// BestScore is the high score for one section.
type BestScore struct {
	Section    string
	Score      int
	Sessions   int
	LastPlayed time.Time
}

// SectionStats aggregates every recorded session of one section.
type SectionStats struct {
	Section    string
	Sessions   int
	Answered   int
	Correct    int
	BestScore  int
	BestStreak int
	Timeouts   int
}

// Accuracy returns Correct / Answered, or 0 when nothing was answered.
func (s SectionStats) Accuracy() float64 {
	if s.Answered == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Answered)
}

// EventRepo provides append and query access to quiz history.
type EventRepo interface {
	// AppendSession records a finished session.
	AppendSession(ctx context.Context, rec SessionRecord) error

	// AppendAnswer records one answered question.
	AppendAnswer(ctx context.Context, rec AnswerRecord) error

	// RecentSessions returns sessions newest first.
	RecentSessions(ctx context.Context, opts QueryOpts) ([]SessionRecord, error)

	// Answers returns the answers of one session in question order.
	Answers(ctx context.Context, sessionID string) ([]AnswerRecord, error)

	// BestScores returns the high score per section ID.
	BestScores(ctx context.Context) (map[string]BestScore, error)

	// SectionStats returns aggregates per section, ordered by section ID.
	SectionStats(ctx context.Context) ([]SectionStats, error)

	// Reset deletes all recorded sessions and answers.
	Reset(ctx context.Context) error
}
