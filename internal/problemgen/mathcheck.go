package problemgen

import (
	"fmt"
	"regexp"
	"strconv"
)

// MathCheckValidator independently recomputes the answer from a plain
// binary prompt such as "28 ÷ 4". Prompts that are not a single binary
// expression (series, riddles, word problems) pass through silently.
type MathCheckValidator struct{}

func (v *MathCheckValidator) Name() string { return "math-check" }

func (v *MathCheckValidator) Validate(q *Question, _ GenerateInput) *ValidationError {
	computed, err := computeAnswer(q.Prompt)
	if err != nil {
		return nil
	}
	if got, ok := q.Correct.Int(); !ok || got != computed {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("computed %d but question claims %q", computed, q.Correct.String()),
			Retryable: true,
		}
	}
	return nil
}

// binaryRe matches a whole prompt of the form "a op b".
var binaryRe = regexp.MustCompile(`^\s*(\d+)\s*([+\-−×÷*/])\s*(\d+)\s*$`)

// computeAnswer evaluates a binary prompt. Returns an error if the prompt
// is not computable or the division is inexact.
func computeAnswer(prompt string) (int, error) {
	m := binaryRe.FindStringSubmatch(prompt)
	if m == nil {
		return 0, fmt.Errorf("not computable")
	}
	a, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, err
	}
	b, err := strconv.Atoi(m[3])
	if err != nil {
		return 0, err
	}

	switch normalizeOp(m[2]) {
	case "+":
		return a + b, nil
	case "-":
		return a - b, nil
	case "*":
		return a * b, nil
	case "/":
		if b == 0 {
			return 0, fmt.Errorf("division by zero")
		}
		if a%b != 0 {
			return 0, fmt.Errorf("inexact division %d / %d", a, b)
		}
		return a / b, nil
	}
	return 0, fmt.Errorf("unsupported operator: %s", m[2])
}

// normalizeOp normalizes the display symbols for minus, times and divide.
func normalizeOp(op string) string {
	switch op {
	case "−":
		return "-"
	case "×":
		return "*"
	case "÷":
		return "/"
	default:
		return op
	}
}
