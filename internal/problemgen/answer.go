package problemgen

import (
	"strconv"
	"strings"
)

// ResolveInput maps typed console input to one of the question's options.
//
// Resolution rules:
//   - Whitespace is trimmed
//   - An integer 1..len(Options) selects that option by position
//   - Otherwise the input is matched against the option text, case-insensitively
//
// Returns false if the input matches nothing.
func ResolveInput(input string, q *Question) (Answer, bool) {
	input = strings.TrimSpace(input)
	if input == "" {
		return Answer{}, false
	}

	if idx, err := strconv.Atoi(input); err == nil && idx >= 1 && idx <= len(q.Options) {
		return q.Options[idx-1], true
	}

	for _, o := range q.Options {
		if strings.EqualFold(strings.TrimSpace(o.String()), input) {
			return o, true
		}
	}
	return Answer{}, false
}

// CheckAnswer reports whether a is exactly the correct answer.
// The timeout sentinel is never correct.
func CheckAnswer(a Answer, q *Question) bool {
	if a.IsZero() || a.IsTimeout() {
		return false
	}
	return a == q.Correct
}
