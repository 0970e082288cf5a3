package session

import (
	"time"

	"github.com/abhisek/brainquiz/internal/problemgen"
	"github.com/abhisek/brainquiz/internal/section"
)

// SessionSummary holds the data displayed on the game-over screen.
type SessionSummary struct {
	SessionID      string
	Section        section.Kind
	Difficulty     problemgen.Difficulty
	Score          int
	TotalQuestions int
	Answered       int
	TotalCorrect   int
	BestStreak     int
	Timeouts       int
	Accuracy       float64
	Duration       time.Duration
	StartedAt      time.Time
	FinishedAt     time.Time
}

// BuildSummary creates a SessionSummary from the engine's current state.
// It may be called mid-session; the duration then runs up to now.
func BuildSummary(e *Engine) *SessionSummary {
	answered := len(e.results)

	var accuracy float64
	if answered > 0 {
		accuracy = float64(e.correct) / float64(answered)
	}

	end := e.finishedAt
	if end.IsZero() {
		end = e.now()
	}

	return &SessionSummary{
		SessionID:      e.sessionID,
		Section:        e.cfg.Kind,
		Difficulty:     e.difficulty,
		Score:          e.score,
		TotalQuestions: len(e.questions),
		Answered:       answered,
		TotalCorrect:   e.correct,
		BestStreak:     e.bestStreak,
		Timeouts:       e.timeouts,
		Accuracy:       accuracy,
		Duration:       end.Sub(e.startedAt),
		StartedAt:      e.startedAt,
		FinishedAt:     e.finishedAt,
	}
}
