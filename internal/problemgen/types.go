package problemgen

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// answerKind distinguishes the variants an Answer can hold.
type answerKind uint8

const (
	kindNone    answerKind = iota // unanswered
	kindNumber                    // integer answer
	kindText                      // free text answer (riddles)
	kindTimeout                   // time ran out
)

// Answer is a multiple-choice value: either an integer or a short text.
// The zero value means "unanswered". Answers are comparable with ==.
type Answer struct {
	kind answerKind
	num  int
	text string
}

// TimeoutAnswer is recorded when the countdown expires. It never equals
// any generated option.
var TimeoutAnswer = Answer{kind: kindTimeout}

// Number returns a numeric answer.
func Number(n int) Answer {
	return Answer{kind: kindNumber, num: n}
}

// Text returns a text answer.
func Text(s string) Answer {
	return Answer{kind: kindText, text: s}
}

// IsZero reports whether a is the unanswered sentinel.
func (a Answer) IsZero() bool { return a.kind == kindNone }

// IsTimeout reports whether a is the timeout sentinel.
func (a Answer) IsTimeout() bool { return a.kind == kindTimeout }

// Int returns the numeric value and whether a holds a number.
func (a Answer) Int() (int, bool) {
	return a.num, a.kind == kindNumber
}

func (a Answer) String() string {
	switch a.kind {
	case kindNumber:
		return strconv.Itoa(a.num)
	case kindText:
		return a.text
	case kindTimeout:
		return "timeout"
	default:
		return ""
	}
}

// MarshalJSON encodes numbers as JSON numbers and everything else as strings.
func (a Answer) MarshalJSON() ([]byte, error) {
	if a.kind == kindNumber {
		return []byte(strconv.Itoa(a.num)), nil
	}
	return json.Marshal(a.String())
}

// UnmarshalJSON accepts either a JSON integer or a JSON string.
func (a *Answer) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Text(s)
		return nil
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return fmt.Errorf("answer must be an integer or a string, got %s", trimmed)
	}
	*a = Number(n)
	return nil
}

// Question is a generated multiple-choice question ready for display.
type Question struct {
	// Prompt is the expression or text shown to the player,
	// e.g. "5 + 3", "28 ÷ 4" or a riddle.
	Prompt string

	// Correct is the right answer. It appears exactly once in Options.
	Correct Answer

	// Options holds the shuffled choices, correct answer included.
	Options []Answer

	// Operands are the generated inputs, in generation order.
	// Empty for bank questions.
	Operands []int

	// Shape names the template the question came from,
	// e.g. "addition", "(a+b)*c", "geometric", "bank".
	Shape string

	// Explanation is a short worked answer shown after a miss.
	Explanation string
}

// IndexOf returns the position of a in the options, or -1.
func (q *Question) IndexOf(a Answer) int {
	for i, o := range q.Options {
		if o == a {
			return i
		}
	}
	return -1
}

// Difficulty selects operand ranges for sections that support it.
type Difficulty int

const (
	Easy   Difficulty = iota // smallest operand range
	Medium
	Hard // largest operand range
)

// Difficulties lists every difficulty in display order.
var Difficulties = []Difficulty{Easy, Medium, Hard}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return fmt.Sprintf("difficulty(%d)", int(d))
	}
}

// ParseDifficulty parses "easy", "medium" or "hard" (case-insensitive).
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy", "":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	}
	return Easy, fmt.Errorf("unknown difficulty %q (want easy, medium or hard)", s)
}

// GenerateInput holds all context needed to generate one question.
type GenerateInput struct {
	// Index is the zero-based position in the session. Operand ranges
	// widen as it grows.
	Index int

	// Difficulty is the player's chosen difficulty. Sections without a
	// difficulty picker ignore it.
	Difficulty Difficulty

	// Options is the number of choices to produce, correct one included.
	Options int
}
