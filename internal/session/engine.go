// Package session runs one quiz section: it owns the generated questions,
// score, streak and per-question countdown, and decides when the game is
// over. The engine is driven by discrete events (answer, tick, advance)
// and is not safe for concurrent use.
package session

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/brainquiz/internal/feedback"
	"github.com/abhisek/brainquiz/internal/problemgen"
	"github.com/abhisek/brainquiz/internal/section"
)

// Engine is the session state machine shared by every section.
type Engine struct {
	cfg     section.Config
	gen     problemgen.Generator
	genCfg  problemgen.Config
	rng     *rand.Rand
	effects feedback.Effects
	logger  *zap.Logger
	now     func() time.Time
	newID   func() string

	// SessionID is regenerated on every Start.
	sessionID  string
	difficulty problemgen.Difficulty

	questions []problemgen.Question
	index     int

	score      int
	streak     int
	bestStreak int
	correct    int
	timeouts   int

	selected problemgen.Answer
	outcome  Outcome
	phase    Phase

	// token is bumped on every question transition and restart. Deferred
	// work carries the token it was scheduled under.
	token     uint64
	countdown Countdown

	startedAt     time.Time
	finishedAt    time.Time
	questionShown time.Time
	results       []Result
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand sets the random source for question generation.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) { e.rng = r }
}

// WithEffects sets the sound and haptic collaborators.
func WithEffects(fx feedback.Effects) Option {
	return func(e *Engine) { e.effects = fx }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithIDs overrides session ID generation.
func WithIDs(newID func() string) Option {
	return func(e *Engine) { e.newID = newID }
}

// WithGeneratorConfig overrides the validator chain and retry count.
func WithGeneratorConfig(c problemgen.Config) Option {
	return func(e *Engine) { e.genCfg = c }
}

// New creates an engine for one section. Call Start before use.
func New(cfg section.Config, gen problemgen.Generator, opts ...Option) *Engine {
	e := &Engine{
		cfg:       cfg,
		gen:       gen,
		genCfg:    problemgen.DefaultConfig(),
		logger:    zap.NewNop(),
		now:       time.Now,
		newID:     uuid.NewString,
		countdown: NewCountdown(cfg.Seconds()),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		seed := uint64(e.now().UnixNano())
		e.rng = rand.New(rand.NewPCG(seed, seed>>1|1))
	}
	if e.effects.Logger == nil {
		e.effects.Logger = e.logger
	}
	e.genCfg.Options = cfg.OptionsCount
	return e
}

// Start generates a fresh question sequence and resets all counters.
// On error the previous state is left untouched.
func (e *Engine) Start(d problemgen.Difficulty) error {
	qs, err := problemgen.GenerateSet(e.rng, e.gen, e.cfg.TotalQuestions, d, e.genCfg)
	if err != nil {
		return fmt.Errorf("start %s: %w", e.cfg.Kind, err)
	}

	e.sessionID = e.newID()
	e.difficulty = d
	e.questions = qs
	e.index = 0
	e.score = 0
	e.streak = 0
	e.bestStreak = 0
	e.correct = 0
	e.timeouts = 0
	e.selected = problemgen.Answer{}
	e.outcome = OutcomeUnknown
	e.phase = PhaseInProgress
	e.results = make([]Result, 0, len(qs))
	e.token++
	e.countdown.Reset()
	e.startedAt = e.now()
	e.finishedAt = time.Time{}
	e.questionShown = e.startedAt

	e.logger.Debug("session started",
		zap.String("session_id", e.sessionID),
		zap.Stringer("section", e.cfg.Kind),
		zap.Stringer("difficulty", d),
		zap.Int("questions", len(qs)))
	return nil
}

// Restart is Start with a new question sequence.
func (e *Engine) Restart(d problemgen.Difficulty) error {
	return e.Start(d)
}

// Submit records an answer for the current question. It returns false and
// changes nothing when the session is not in progress or the question is
// already answered.
func (e *Engine) Submit(a problemgen.Answer) (Step, bool) {
	if e.phase != PhaseInProgress || !e.selected.IsZero() || a.IsZero() {
		return Step{}, false
	}

	q := &e.questions[e.index]
	ok := problemgen.CheckAnswer(a, q)

	e.countdown.Stop()
	e.selected = a

	if ok {
		e.score += e.cfg.Scoring.Points(e.streak)
		e.streak++
		e.correct++
		e.bestStreak = max(e.bestStreak, e.streak)
		e.outcome = OutcomeCorrect
	} else {
		e.streak = 0
		e.outcome = OutcomeIncorrect
		if a.IsTimeout() {
			e.timeouts++
		}
	}

	at := e.now()
	e.results = append(e.results, Result{
		Index:      e.index,
		Prompt:     q.Prompt,
		Selected:   a,
		Correct:    q.Correct,
		IsCorrect:  ok,
		AnsweredAt: at,
		TimeTaken:  at.Sub(e.questionShown),
	})

	ctx := context.Background()
	if ok {
		e.effects.Play(ctx, feedback.SoundCorrect)
		e.effects.Trigger(ctx, feedback.HapticSuccess)
	} else {
		e.effects.Play(ctx, feedback.SoundIncorrect)
		e.effects.Trigger(ctx, feedback.HapticError)
	}

	return Step{Token: e.token, Delay: e.cfg.FeedbackDelay, Correct: ok}, true
}

// Timeout records the timeout sentinel, which is always incorrect.
func (e *Engine) Timeout() (Step, bool) {
	return e.Submit(problemgen.TimeoutAnswer)
}

// Advance moves past an answered question once the feedback delay is
// over. It is a no-op for stale tokens and unanswered questions.
func (e *Engine) Advance(token uint64) bool {
	if token != e.token || e.phase != PhaseInProgress || e.selected.IsZero() {
		return false
	}

	e.token++
	if e.index+1 < len(e.questions) {
		e.index++
		e.selected = problemgen.Answer{}
		e.outcome = OutcomeUnknown
		e.countdown.Reset()
		e.questionShown = e.now()
		return true
	}

	e.phase = PhaseGameOver
	e.countdown.Stop()
	e.finishedAt = e.now()
	e.logger.Debug("session finished",
		zap.String("session_id", e.sessionID),
		zap.Int("score", e.score),
		zap.Int("correct", e.correct),
		zap.Int("total", len(e.questions)))
	return true
}

// Tick advances the countdown by one second. Ticks with a stale token or
// while no countdown is running do nothing. The tick that reaches zero
// records a timeout exactly once.
func (e *Engine) Tick(token uint64) TickResult {
	if token != e.token || e.phase != PhaseInProgress || !e.countdown.Active {
		return TickResult{Remaining: e.countdown.Remaining}
	}

	if !e.countdown.Tick() {
		if r := e.countdown.Remaining; r >= 1 && r <= e.cfg.TickWarning {
			e.effects.Play(context.Background(), feedback.SoundTick)
		}
		return TickResult{Running: true, Remaining: e.countdown.Remaining}
	}

	step, ok := e.Timeout()
	return TickResult{Remaining: 0, TimedOut: ok, Step: step}
}

// Config returns the section config the engine runs with.
func (e *Engine) Config() section.Config { return e.cfg }

// SessionID returns the ID of the current run.
func (e *Engine) SessionID() string { return e.sessionID }

// Difficulty returns the difficulty of the current run.
func (e *Engine) Difficulty() problemgen.Difficulty { return e.difficulty }

// Phase returns the lifecycle phase.
func (e *Engine) Phase() Phase { return e.phase }

// IsGameOver reports whether the last question has been resolved.
func (e *Engine) IsGameOver() bool { return e.phase == PhaseGameOver }

// Current returns the question being shown, or nil before Start.
func (e *Engine) Current() *problemgen.Question {
	if e.index < 0 || e.index >= len(e.questions) {
		return nil
	}
	return &e.questions[e.index]
}

// Questions returns the generated sequence.
func (e *Engine) Questions() []problemgen.Question { return e.questions }

// Index returns the zero-based index of the current question.
func (e *Engine) Index() int { return e.index }

// Total returns the number of questions in this run.
func (e *Engine) Total() int { return len(e.questions) }

// Score returns the running score.
func (e *Engine) Score() int { return e.score }

// Streak returns the number of consecutive correct answers.
func (e *Engine) Streak() int { return e.streak }

// Correct returns the number of correct answers so far.
func (e *Engine) Correct() int { return e.correct }

// Selected returns the answer recorded for the current question. The
// zero Answer means unanswered.
func (e *Engine) Selected() problemgen.Answer { return e.selected }

// Outcome returns the current question's outcome.
func (e *Engine) Outcome() Outcome { return e.outcome }

// Countdown returns a copy of the per-question timer.
func (e *Engine) Countdown() Countdown { return e.countdown }

// Token returns the current epoch token.
func (e *Engine) Token() uint64 { return e.token }

// Results returns the answers recorded so far.
func (e *Engine) Results() []Result { return e.results }

// LastResult returns the most recent answer, if any.
func (e *Engine) LastResult() (Result, bool) {
	if len(e.results) == 0 {
		return Result{}, false
	}
	return e.results[len(e.results)-1], true
}
