package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
)

// eventRepo implements EventRepo on sqlx.
type eventRepo struct {
	db  *sqlx.DB
	seq *sequenceCounter
}

var _ EventRepo = (*eventRepo)(nil)

// sessionRow is the quiz_sessions row layout. Times are unix milliseconds.
type sessionRow struct {
	Sequence   int64  `db:"sequence"`
	SessionID  string `db:"session_id"`
	Section    string `db:"section"`
	Difficulty string `db:"difficulty"`
	Score      int    `db:"score"`
	Correct    int    `db:"correct"`
	Answered   int    `db:"answered"`
	Total      int    `db:"total"`
	BestStreak int    `db:"best_streak"`
	Timeouts   int    `db:"timeouts"`
	DurationMs int64  `db:"duration_ms"`
	StartedAt  int64  `db:"started_at"`
	FinishedAt int64  `db:"finished_at"`
}

func (r sessionRow) record() SessionRecord {
	return SessionRecord{
		Sequence:   r.Sequence,
		SessionID:  r.SessionID,
		Section:    r.Section,
		Difficulty: r.Difficulty,
		Score:      r.Score,
		Correct:    r.Correct,
		Answered:   r.Answered,
		Total:      r.Total,
		BestStreak: r.BestStreak,
		Timeouts:   r.Timeouts,
		Duration:   time.Duration(r.DurationMs) * time.Millisecond,
		StartedAt:  fromMillis(r.StartedAt),
		FinishedAt: fromMillis(r.FinishedAt),
	}
}

type answerRow struct {
	Sequence      int64  `db:"sequence"`
	SessionID     string `db:"session_id"`
	Section       string `db:"section"`
	QuestionIndex int    `db:"question_index"`
	Prompt        string `db:"prompt"`
	Selected      string `db:"selected"`
	CorrectAnswer string `db:"correct_answer"`
	IsCorrect     bool   `db:"is_correct"`
	TimeTakenMs   int64  `db:"time_taken_ms"`
	AnsweredAt    int64  `db:"answered_at"`
}

func (r answerRow) record() AnswerRecord {
	return AnswerRecord{
		Sequence:      r.Sequence,
		SessionID:     r.SessionID,
		Section:       r.Section,
		QuestionIndex: r.QuestionIndex,
		Prompt:        r.Prompt,
		Selected:      r.Selected,
		CorrectAnswer: r.CorrectAnswer,
		IsCorrect:     r.IsCorrect,
		TimeTaken:     time.Duration(r.TimeTakenMs) * time.Millisecond,
		AnsweredAt:    fromMillis(r.AnsweredAt),
	}
}

func (r *eventRepo) AppendSession(ctx context.Context, rec SessionRecord) error {
	return r.inTx(ctx, func(tx *sqlx.Tx) error {
		seq, err := r.seq.nextWith(ctx, tx)
		if err != nil {
			return err
		}
		row := sessionRow{
			Sequence:   seq,
			SessionID:  rec.SessionID,
			Section:    rec.Section,
			Difficulty: rec.Difficulty,
			Score:      rec.Score,
			Correct:    rec.Correct,
			Answered:   rec.Answered,
			Total:      rec.Total,
			BestStreak: rec.BestStreak,
			Timeouts:   rec.Timeouts,
			DurationMs: rec.Duration.Milliseconds(),
			StartedAt:  toMillis(rec.StartedAt),
			FinishedAt: toMillis(rec.FinishedAt),
		}
		_, err = tx.NamedExecContext(ctx, `INSERT INTO quiz_sessions (
			sequence, session_id, section, difficulty, score, correct, answered, total,
			best_streak, timeouts, duration_ms, started_at, finished_at
		) VALUES (
			:sequence, :session_id, :section, :difficulty, :score, :correct, :answered, :total,
			:best_streak, :timeouts, :duration_ms, :started_at, :finished_at
		)`, row)
		if err != nil {
			return fmt.Errorf("insert session: %w", err)
		}
		return nil
	})
}

func (r *eventRepo) AppendAnswer(ctx context.Context, rec AnswerRecord) error {
	return r.inTx(ctx, func(tx *sqlx.Tx) error {
		seq, err := r.seq.nextWith(ctx, tx)
		if err != nil {
			return err
		}
		row := answerRow{
			Sequence:      seq,
			SessionID:     rec.SessionID,
			Section:       rec.Section,
			QuestionIndex: rec.QuestionIndex,
			Prompt:        rec.Prompt,
			Selected:      rec.Selected,
			CorrectAnswer: rec.CorrectAnswer,
			IsCorrect:     rec.IsCorrect,
			TimeTakenMs:   rec.TimeTaken.Milliseconds(),
			AnsweredAt:    toMillis(rec.AnsweredAt),
		}
		_, err = tx.NamedExecContext(ctx, `INSERT INTO quiz_answers (
			sequence, session_id, section, question_index, prompt, selected,
			correct_answer, is_correct, time_taken_ms, answered_at
		) VALUES (
			:sequence, :session_id, :section, :question_index, :prompt, :selected,
			:correct_answer, :is_correct, :time_taken_ms, :answered_at
		)`, row)
		if err != nil {
			return fmt.Errorf("insert answer: %w", err)
		}
		return nil
	})
}

func (r *eventRepo) RecentSessions(ctx context.Context, opts QueryOpts) ([]SessionRecord, error) {
	where, args := opts.filter("finished_at")
	query := `SELECT sequence, session_id, section, difficulty, score, correct, answered, total,
		best_streak, timeouts, duration_ms, started_at, finished_at
		FROM quiz_sessions` + where + ` ORDER BY sequence DESC`
	if opts.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", opts.Limit)
	}

	var rows []sessionRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	out := make([]SessionRecord, len(rows))
	for i, row := range rows {
		out[i] = row.record()
	}
	return out, nil
}

func (r *eventRepo) Answers(ctx context.Context, sessionID string) ([]AnswerRecord, error) {
	var rows []answerRow
	err := r.db.SelectContext(ctx, &rows, `SELECT sequence, session_id, section, question_index,
		prompt, selected, correct_answer, is_correct, time_taken_ms, answered_at
		FROM quiz_answers WHERE session_id = ? ORDER BY question_index, sequence`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("query answers: %w", err)
	}
	out := make([]AnswerRecord, len(rows))
	for i, row := range rows {
		out[i] = row.record()
	}
	return out, nil
}

func (r *eventRepo) BestScores(ctx context.Context) (map[string]BestScore, error) {
	var rows []struct {
		Section    string `db:"section"`
		Score      int    `db:"score"`
		Sessions   int    `db:"sessions"`
		LastPlayed int64  `db:"last_played"`
	}
	err := r.db.SelectContext(ctx, &rows, `SELECT section, MAX(score) AS score,
		COUNT(*) AS sessions, MAX(finished_at) AS last_played
		FROM quiz_sessions GROUP BY section`)
	if err != nil {
		return nil, fmt.Errorf("query best scores: %w", err)
	}
	out := make(map[string]BestScore, len(rows))
	for _, row := range rows {
		out[row.Section] = BestScore{
			Section:    row.Section,
			Score:      row.Score,
			Sessions:   row.Sessions,
			LastPlayed: fromMillis(row.LastPlayed),
		}
	}
	return out, nil
}

func (r *eventRepo) SectionStats(ctx context.Context) ([]SectionStats, error) {
	var rows []struct {
		Section    string `db:"section"`
		Sessions   int    `db:"sessions"`
		Answered   int    `db:"answered"`
		Correct    int    `db:"correct"`
		BestScore  int    `db:"best_score"`
		BestStreak int    `db:"best_streak"`
		Timeouts   int    `db:"timeouts"`
	}
	err := r.db.SelectContext(ctx, &rows, `SELECT section, COUNT(*) AS sessions,
		SUM(answered) AS answered, SUM(correct) AS correct, MAX(score) AS best_score,
		MAX(best_streak) AS best_streak, SUM(timeouts) AS timeouts
		FROM quiz_sessions GROUP BY section ORDER BY section`)
	if err != nil {
		return nil, fmt.Errorf("query section stats: %w", err)
	}
	out := make([]SectionStats, len(rows))
	for i, row := range rows {
		out[i] = SectionStats(row)
	}
	return out, nil
}

func (r *eventRepo) Reset(ctx context.Context) error {
	return r.inTx(ctx, func(tx *sqlx.Tx) error {
		for _, table := range []string{"quiz_answers", "quiz_sessions"} {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
				return fmt.Errorf("clear %s: %w", table, err)
			}
		}
		return nil
	})
}

// inTx runs fn in a transaction, committing on success.
func (r *eventRepo) inTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// filter builds the WHERE clause for opts. timeCol is the column From
// and To apply to.
func (o QueryOpts) filter(timeCol string) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if o.After > 0 {
		conds = append(conds, "sequence > ?")
		args = append(args, o.After)
	}
	if o.Before > 0 {
		conds = append(conds, "sequence < ?")
		args = append(args, o.Before)
	}
	if !o.From.IsZero() {
		conds = append(conds, timeCol+" >= ?")
		args = append(args, toMillis(o.From))
	}
	if !o.To.IsZero() {
		conds = append(conds, timeCol+" <= ?")
		args = append(args, toMillis(o.To))
	}
	if o.Section != "" {
		conds = append(conds, "section = ?")
		args = append(args, o.Section)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func toMillis(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

func fromMillis(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms)
}
