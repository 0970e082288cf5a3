package session

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/brainquiz/internal/feedback"
	"github.com/abhisek/brainquiz/internal/problemgen"
	"github.com/abhisek/brainquiz/internal/router"
	"github.com/abhisek/brainquiz/internal/screen"
	"github.com/abhisek/brainquiz/internal/screens/summary"
	"github.com/abhisek/brainquiz/internal/section"
	sess "github.com/abhisek/brainquiz/internal/session"
	"github.com/abhisek/brainquiz/internal/store"
	"github.com/abhisek/brainquiz/internal/ui/components"
	"github.com/abhisek/brainquiz/internal/ui/layout"
)

const persistTimeout = 2 * time.Second

// Deps are the collaborators shared by every quiz screen.
type Deps struct {
	Registry   *section.Registry
	EventRepo  store.EventRepo // nil disables history
	Sound      feedback.SoundPlayer
	Logger     *zap.Logger
	Rand       *rand.Rand // nil seeds each engine from the clock
	Difficulty problemgen.Difficulty
}

type stage int

const (
	stagePickDifficulty stage = iota
	stagePlaying
	stageGameOver
	stageError
)

// SessionScreen plays one section from the first question to game over.
type SessionScreen struct {
	deps    Deps
	cfg     section.Config
	engine  *sess.Engine
	flash   *feedback.Flash
	keys    keyMap
	stage   stage
	picker  components.Menu
	choices components.MultiChoice
	cue     feedback.Haptic
	summary *sess.SessionSummary
	errMsg  string
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)
var _ layout.ScoreboardProvider = (*SessionScreen)(nil)

// New creates a quiz screen for kind. Configuration problems are shown
// on the screen rather than returned.
func New(deps Deps, kind section.Kind) *SessionScreen {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	s := &SessionScreen{
		deps:  deps,
		keys:  defaultKeyMap(),
		flash: &feedback.Flash{},
		cfg:   section.Default(kind),
	}

	cfg, err := deps.Registry.Config(kind)
	if err != nil {
		s.fail(err)
		return s
	}
	gen, err := section.NewGenerator(kind)
	if err != nil {
		s.fail(err)
		return s
	}
	s.cfg = cfg

	logger := deps.Logger.Named("session")
	opts := []sess.Option{
		sess.WithLogger(logger),
		sess.WithEffects(feedback.Effects{Sound: deps.Sound, Haptics: s.flash, Logger: logger}),
	}
	if deps.Rand != nil {
		opts = append(opts, sess.WithRand(deps.Rand))
	}
	s.engine = sess.New(cfg, gen, opts...)
	s.picker = newDifficultyPicker(gen, deps.Difficulty)
	return s
}

func newDifficultyPicker(gen problemgen.Generator, preselected problemgen.Difficulty) components.Menu {
	items := make([]components.MenuItem, 0, len(problemgen.Difficulties))
	for _, d := range problemgen.Difficulties {
		items = append(items, components.MenuItem{
			Label:  difficultyLabel(d),
			Detail: difficultyDetail(gen, d),
			Action: func() tea.Cmd {
				return func() tea.Msg { return difficultyChosenMsg{Difficulty: d} }
			},
		})
	}
	m := components.NewMenu(items)
	if int(preselected) < len(items) {
		m.Selected = int(preselected)
	}
	return m
}

func difficultyLabel(d problemgen.Difficulty) string {
	switch d {
	case problemgen.Medium:
		return "Medium"
	case problemgen.Hard:
		return "Hard"
	default:
		return "Easy"
	}
}

// difficultyDetail describes the starting operand range of gen.
func difficultyDetail(gen problemgen.Generator, d problemgen.Difficulty) string {
	rg, ok := gen.(problemgen.RangedGenerator)
	if !ok {
		return ""
	}
	lo, hi := rg.OperandRange(d)
	return fmt.Sprintf("numbers %d-%d, growing as you go", lo, hi)
}

func (s *SessionScreen) Init() tea.Cmd {
	if s.stage == stageError {
		return nil
	}
	if s.cfg.HasDifficulty {
		s.stage = stagePickDifficulty
		return nil
	}
	return s.start(problemgen.Easy)
}

func (s *SessionScreen) Title() string {
	return s.cfg.Title
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	switch s.stage {
	case stagePickDifficulty:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Start"},
			{Key: "Esc", Description: "Home"},
		}
	case stagePlaying:
		return []layout.KeyHint{
			{Key: "1-4", Description: "Answer"},
			{Key: "↑↓ Enter", Description: "Select"},
			{Key: "Esc", Description: "Home"},
		}
	case stageGameOver:
		return []layout.KeyHint{
			{Key: "R", Description: "Try Again"},
			{Key: "D", Description: "Review"},
			{Key: "Esc", Description: "Home"},
		}
	}
	return []layout.KeyHint{{Key: "any key", Description: "Back"}}
}

// Scoreboard shows the live score once questions are on screen.
func (s *SessionScreen) Scoreboard() (layout.Scoreboard, bool) {
	if s.stage != stagePlaying && s.stage != stageGameOver {
		return layout.Scoreboard{}, false
	}
	return layout.Scoreboard{Score: s.engine.Score(), Streak: s.engine.Streak()}, true
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case difficultyChosenMsg:
		if s.stage != stagePickDifficulty {
			return s, nil
		}
		return s, s.start(msg.Difficulty)

	case timerTickMsg:
		return s, s.handleTick(msg)

	case advanceMsg:
		return s, s.handleAdvance(msg)

	case persistAnswerMsg:
		if msg.Err != nil {
			s.deps.Logger.Warn("record answer failed", zap.Error(msg.Err))
		}
		return s, nil

	case persistSessionMsg:
		if msg.Err != nil {
			s.deps.Logger.Warn("record session failed", zap.Error(msg.Err))
		}
		return s, nil

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *SessionScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch s.stage {
	case stageError:
		return s, func() tea.Msg { return router.PopScreenMsg{} }

	case stagePickDifficulty:
		var cmd tea.Cmd
		s.picker, cmd = s.picker.Update(msg)
		return s, cmd

	case stagePlaying:
		// Input is locked while feedback is showing.
		if !s.engine.Selected().IsZero() {
			return s, nil
		}
		switch {
		case key.Matches(msg, s.keys.Up):
			s.choices.Move(-1)
		case key.Matches(msg, s.keys.Down):
			s.choices.Move(1)
		case key.Matches(msg, s.keys.Submit):
			return s, s.choose(s.choices.Cursor)
		case key.Matches(msg, s.keys.Choose):
			return s, s.choose(int(msg.String()[0] - '1'))
		}

	case stageGameOver:
		switch {
		case key.Matches(msg, s.keys.Retry):
			return s, s.start(s.engine.Difficulty())
		case key.Matches(msg, s.keys.Details):
			review := summary.New(s.summary, s.engine.Results())
			return s, func() tea.Msg { return router.PushScreenMsg{Screen: review} }
		}
	}
	return s, nil
}

// start begins a fresh run. Play Again goes through here too.
func (s *SessionScreen) start(d problemgen.Difficulty) tea.Cmd {
	if err := s.engine.Start(d); err != nil {
		s.deps.Logger.Error("start session failed",
			zap.Stringer("section", s.cfg.Kind), zap.Error(err))
		s.fail(err)
		return nil
	}
	s.stage = stagePlaying
	s.summary = nil
	s.cue = ""
	s.resetChoices()
	return s.scheduleTick()
}

func (s *SessionScreen) fail(err error) {
	s.stage = stageError
	s.errMsg = err.Error()
}

func (s *SessionScreen) resetChoices() {
	q := s.engine.Current()
	if q == nil {
		s.choices = components.MultiChoice{}
		return
	}
	labels := make([]string, len(q.Options))
	for i, o := range q.Options {
		labels[i] = o.String()
	}
	s.choices = components.NewMultiChoice(labels, q.IndexOf(q.Correct))
}

// choose submits option i of the current question.
func (s *SessionScreen) choose(i int) tea.Cmd {
	q := s.engine.Current()
	if q == nil || i < 0 || i >= len(q.Options) {
		return nil
	}
	step, ok := s.engine.Submit(q.Options[i])
	if !ok {
		return nil
	}
	s.choices.Reveal(i)
	s.takeCue()
	return tea.Batch(s.scheduleAdvance(step), s.persistAnswer())
}

func (s *SessionScreen) handleTick(msg timerTickMsg) tea.Cmd {
	if s.stage != stagePlaying || msg.SessionID != s.engine.SessionID() {
		return nil
	}
	res := s.engine.Tick(msg.Token)
	switch {
	case res.TimedOut:
		s.choices.Reveal(-1)
		s.takeCue()
		return tea.Batch(s.scheduleAdvance(res.Step), s.persistAnswer())
	case res.Running:
		return s.scheduleTick()
	}
	return nil
}

func (s *SessionScreen) handleAdvance(msg advanceMsg) tea.Cmd {
	if s.stage != stagePlaying || msg.SessionID != s.engine.SessionID() {
		return nil
	}
	if !s.engine.Advance(msg.Token) {
		return nil
	}
	s.cue = ""
	if s.engine.IsGameOver() {
		s.stage = stageGameOver
		s.summary = sess.BuildSummary(s.engine)
		return s.persistSession()
	}
	s.resetChoices()
	return s.scheduleTick()
}

func (s *SessionScreen) takeCue() {
	if h, ok := s.flash.Take(); ok {
		s.cue = h
	}
}

// scheduleTick queues the next countdown tick if the timer is running.
func (s *SessionScreen) scheduleTick() tea.Cmd {
	if !s.engine.Countdown().Active {
		return nil
	}
	id, token := s.engine.SessionID(), s.engine.Token()
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return timerTickMsg{SessionID: id, Token: token}
	})
}

func (s *SessionScreen) scheduleAdvance(step sess.Step) tea.Cmd {
	id := s.engine.SessionID()
	return tea.Tick(step.Delay, func(time.Time) tea.Msg {
		return advanceMsg{SessionID: id, Token: step.Token}
	})
}

func (s *SessionScreen) persistAnswer() tea.Cmd {
	repo := s.deps.EventRepo
	res, ok := s.engine.LastResult()
	if repo == nil || !ok {
		return nil
	}
	rec := store.AnswerRecord{
		SessionID:     s.engine.SessionID(),
		Section:       s.cfg.Kind.ID(),
		QuestionIndex: res.Index,
		Prompt:        res.Prompt,
		Selected:      res.Selected.String(),
		CorrectAnswer: res.Correct.String(),
		IsCorrect:     res.IsCorrect,
		TimeTaken:     res.TimeTaken,
		AnsweredAt:    res.AnsweredAt,
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()
		return persistAnswerMsg{Err: repo.AppendAnswer(ctx, rec)}
	}
}

func (s *SessionScreen) persistSession() tea.Cmd {
	repo := s.deps.EventRepo
	if repo == nil || s.summary == nil {
		return nil
	}
	rec := SessionRecord(s.summary, s.cfg.HasDifficulty)
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()
		return persistSessionMsg{Err: repo.AppendSession(ctx, rec)}
	}
}

// SessionRecord converts a finished run into its history row. Sections
// without a difficulty picker record an empty difficulty.
func SessionRecord(sum *sess.SessionSummary, hasDifficulty bool) store.SessionRecord {
	rec := store.SessionRecord{
		SessionID:  sum.SessionID,
		Section:    sum.Section.ID(),
		Score:      sum.Score,
		Correct:    sum.TotalCorrect,
		Answered:   sum.Answered,
		Total:      sum.TotalQuestions,
		BestStreak: sum.BestStreak,
		Timeouts:   sum.Timeouts,
		Duration:   sum.Duration,
		StartedAt:  sum.StartedAt,
		FinishedAt: sum.FinishedAt,
	}
	if hasDifficulty {
		rec.Difficulty = sum.Difficulty.String()
	}
	return rec
}
