package session

import (
	"time"

	"github.com/abhisek/brainquiz/internal/problemgen"
)

// Phase represents where a session is in its lifecycle.
type Phase int

const (
	PhaseNotStarted Phase = iota // No questions generated yet
	PhaseInProgress              // Serving questions
	PhaseGameOver                // Last question answered or timed out
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not-started"
	case PhaseInProgress:
		return "in-progress"
	case PhaseGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Outcome is the tri-state result of the current question.
type Outcome int

const (
	OutcomeUnknown   Outcome = iota // Not answered yet
	OutcomeCorrect                  // Answered correctly
	OutcomeIncorrect                // Answered wrong or timed out
)

// Step tells the caller to schedule the deferred advance.
type Step struct {
	// Token must be passed back to Advance. A stale token is ignored.
	Token uint64

	// Delay is how long to show feedback before advancing.
	Delay time.Duration

	// Correct reports whether the recorded answer was right.
	Correct bool
}

// TickResult reports what a countdown tick did.
type TickResult struct {
	// Running is true while the countdown is still going; the caller
	// schedules the next tick.
	Running bool

	// Remaining is the seconds left after this tick.
	Remaining int

	// TimedOut is true on the single tick that expired the question.
	TimedOut bool

	// Step is set when TimedOut is true.
	Step Step
}

// Result records one answered question.
type Result struct {
	Index      int
	Prompt     string
	Selected   problemgen.Answer
	Correct    problemgen.Answer
	IsCorrect  bool
	AnsweredAt time.Time
	TimeTaken  time.Duration
}
