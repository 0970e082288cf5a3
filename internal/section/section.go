// Package section defines the nine quiz sections and their per-section
// rules: question count, feedback delay, timer and scoring.
package section

import (
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/brainquiz/internal/problemgen"
)

// Kind identifies a quiz section.
type Kind int

const (
	Addition Kind = iota
	Subtraction
	Multiplication
	Division
	PEMDAS
	WordProblems
	NumberSeries
	LogicPuzzles
	SpeedMath
)

// All returns every section in home-menu order.
func All() []Kind {
	return []Kind{
		Addition, Subtraction, Multiplication, Division, PEMDAS,
		WordProblems, NumberSeries, SpeedMath, LogicPuzzles,
	}
}

var ids = map[Kind]string{
	Addition:       "addition",
	Subtraction:    "subtraction",
	Multiplication: "multiplication",
	Division:       "division",
	PEMDAS:         "pemdas",
	WordProblems:   "word-problems",
	NumberSeries:   "number-series",
	LogicPuzzles:   "logic-puzzles",
	SpeedMath:      "speed-math",
}

// ID returns the stable identifier used in config keys, the CLI and the store.
func (k Kind) ID() string {
	if id, ok := ids[k]; ok {
		return id
	}
	return fmt.Sprintf("section-%d", int(k))
}

func (k Kind) String() string { return k.ID() }

// Parse resolves an identifier such as "word-problems". Underscores and
// case are ignored.
func Parse(s string) (Kind, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	for k, id := range ids {
		if id == norm || strings.ReplaceAll(id, "-", "") == norm {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown section %q", s)
}

// Scoring selects how a correct answer is rewarded.
type Scoring int

const (
	Flat        Scoring = iota // +10 per correct answer
	StreakBonus                // +10 × (streak + 1)
)

// PointsPerCorrect is the base reward for a correct answer.
const PointsPerCorrect = 10

// Points returns the reward for a correct answer given the streak before it.
func (s Scoring) Points(streak int) int {
	if s == StreakBonus {
		return PointsPerCorrect * (streak + 1)
	}
	return PointsPerCorrect
}

// Config holds the rules for one section.
type Config struct {
	Kind        Kind
	Title       string
	Description string

	TotalQuestions int
	OptionsCount   int

	// FeedbackDelay is how long the answer feedback stays up before the
	// next question.
	FeedbackDelay time.Duration

	// TimerDuration is the per-question time limit. Zero means untimed.
	TimerDuration time.Duration

	// TickWarning is the number of final seconds that play a tick sound.
	TickWarning int

	Scoring       Scoring
	HasDifficulty bool
}

// Timed reports whether questions have a time limit.
func (c Config) Timed() bool { return c.TimerDuration > 0 }

// Seconds returns the timer duration in whole seconds.
func (c Config) Seconds() int { return int(c.TimerDuration / time.Second) }

// Validate checks the values a config override may have broken.
func (c Config) Validate() error {
	if c.TotalQuestions <= 0 {
		return fmt.Errorf("%s: total questions must be positive, got %d", c.Kind, c.TotalQuestions)
	}
	if c.OptionsCount < 2 {
		return fmt.Errorf("%s: need at least 2 options, got %d", c.Kind, c.OptionsCount)
	}
	if c.FeedbackDelay < 0 {
		return fmt.Errorf("%s: feedback delay must not be negative", c.Kind)
	}
	if c.TimerDuration < 0 || c.TimerDuration%time.Second != 0 {
		return fmt.Errorf("%s: timer must be a whole number of seconds, got %s", c.Kind, c.TimerDuration)
	}
	return nil
}

var defaults = map[Kind]Config{
	Addition: {
		Title: "Addition", Description: "Mastering the basics",
		TotalQuestions: 100, OptionsCount: 4,
		FeedbackDelay: 1000 * time.Millisecond,
		Scoring:       StreakBonus, HasDifficulty: true,
	},
	Subtraction: {
		Title: "Subtraction", Description: "Sharpen your skills",
		TotalQuestions: 100, OptionsCount: 4,
		FeedbackDelay: 500 * time.Millisecond,
	},
	Multiplication: {
		Title: "Multiplication", Description: "Tables and techniques",
		TotalQuestions: 100, OptionsCount: 4,
		FeedbackDelay: 500 * time.Millisecond,
		HasDifficulty: true,
	},
	Division: {
		Title: "Division", Description: "Divide and conquer",
		TotalQuestions: 100, OptionsCount: 4,
		FeedbackDelay: 500 * time.Millisecond,
	},
	PEMDAS: {
		Title: "PEMDAS", Description: "Order of operations",
		TotalQuestions: 100, OptionsCount: 4,
		FeedbackDelay: 600 * time.Millisecond,
		TimerDuration: 8 * time.Second, TickWarning: 3,
	},
	WordProblems: {
		Title: "Word Problems", Description: "Real-world scenarios",
		TotalQuestions: 50, OptionsCount: 4,
		FeedbackDelay: 600 * time.Millisecond,
	},
	NumberSeries: {
		Title: "Number Series", Description: "Find the next number",
		TotalQuestions: 100, OptionsCount: 4,
		FeedbackDelay: 600 * time.Millisecond,
		TimerDuration: 12 * time.Second, TickWarning: 4,
	},
	LogicPuzzles: {
		Title: "Logic Puzzles", Description: "Challenge your mind",
		TotalQuestions: 20, OptionsCount: 4,
		FeedbackDelay: 600 * time.Millisecond,
		TimerDuration: 15 * time.Second, TickWarning: 5,
	},
	SpeedMath: {
		Title: "Speed Math", Description: "Quick calculations",
		TotalQuestions: 60, OptionsCount: 4,
		FeedbackDelay: 400 * time.Millisecond,
		TimerDuration: 5 * time.Second, TickWarning: 2,
		Scoring: StreakBonus, HasDifficulty: true,
	},
}

// Default returns the built-in config for k.
func Default(k Kind) Config {
	c := defaults[k]
	c.Kind = k
	return c
}

// Title is shorthand for Default(k).Title.
func (k Kind) Title() string { return Default(k).Title }

// NewGenerator returns the question generator for k.
func NewGenerator(k Kind) (problemgen.Generator, error) {
	switch k {
	case Addition:
		return problemgen.Addition{}, nil
	case Subtraction:
		return problemgen.Subtraction{}, nil
	case Multiplication:
		return problemgen.Multiplication{}, nil
	case Division:
		return problemgen.Division{}, nil
	case PEMDAS:
		return problemgen.PEMDAS{}, nil
	case WordProblems:
		return problemgen.WordProblems{}, nil
	case NumberSeries:
		return problemgen.NumberSeries{}, nil
	case LogicPuzzles:
		g, err := problemgen.NewLogicPuzzles()
		if err != nil {
			return nil, fmt.Errorf("load logic puzzles: %w", err)
		}
		return g, nil
	case SpeedMath:
		return problemgen.SpeedMath{}, nil
	}
	return nil, fmt.Errorf("no generator for %s", k)
}
