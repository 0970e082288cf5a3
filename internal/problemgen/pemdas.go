package problemgen

import (
	"fmt"
	"math/rand/v2"
)

// PEMDAS expression shapes.
const (
	ShapeSumTimes  = "(a+b)*c"
	ShapeTimesPlus = "a*b+c"
	ShapeTimesLess = "a*b-c"
	ShapeDiffTimes = "(a-b)*c"
)

var pemdasShapes = []string{ShapeSumTimes, ShapeTimesPlus, ShapeTimesLess, ShapeDiffTimes}

var pemdasDistractors = DistractorSpec{MinOffset: -5, MaxOffset: 4, Min: 0}

// PEMDAS picks one of four fixed expression shapes. Operands stay small
// enough for mental math and every intermediate result is non-negative.
type PEMDAS struct{}

func (PEMDAS) Generate(r *rand.Rand, in GenerateInput) (Question, error) {
	shape := pemdasShapes[r.IntN(len(pemdasShapes))]
	a := r.IntN(10) + 1
	b := r.IntN(10) + 1
	c := r.IntN(5) + 2
	return BuildPEMDAS(r, shape, a, b, c, in.Options)
}

// BuildPEMDAS evaluates shape with the given operands. For ShapeTimesLess
// c is redrawn from 1..a*b, and for ShapeDiffTimes a and b are ordered so
// the difference is non-negative.
func BuildPEMDAS(r *rand.Rand, shape string, a, b, c, options int) (Question, error) {
	var (
		answer int
		prompt string
	)
	switch shape {
	case ShapeSumTimes:
		answer = (a + b) * c
		prompt = fmt.Sprintf("(%d + %d) × %d", a, b, c)
	case ShapeTimesPlus:
		answer = a*b + c
		prompt = fmt.Sprintf("%d × %d + %d", a, b, c)
	case ShapeTimesLess:
		product := a * b
		c = r.IntN(product) + 1
		answer = product - c
		prompt = fmt.Sprintf("%d × %d - %d", a, b, c)
	case ShapeDiffTimes:
		a, b = max(a, b), min(a, b)
		answer = (a - b) * c
		prompt = fmt.Sprintf("(%d - %d) × %d", a, b, c)
	default:
		return Question{}, &ValidationError{
			Validator: "pemdas",
			Message:   fmt.Sprintf("unknown shape %q", shape),
			Retryable: false,
		}
	}

	return Question{
		Prompt:      prompt,
		Correct:     Number(answer),
		Options:     NumericOptions(r, answer, options, pemdasDistractors),
		Operands:    []int{a, b, c},
		Shape:       shape,
		Explanation: pemdasExplanation(shape, a, b, c, answer),
	}, nil
}

func pemdasExplanation(shape string, a, b, c, answer int) string {
	switch shape {
	case ShapeSumTimes:
		return fmt.Sprintf("Parentheses first: %d + %d = %d, then %d × %d = %d", a, b, a+b, a+b, c, answer)
	case ShapeDiffTimes:
		return fmt.Sprintf("Parentheses first: %d - %d = %d, then %d × %d = %d", a, b, a-b, a-b, c, answer)
	default:
		return fmt.Sprintf("Multiply first: %d × %d = %d, then the rest gives %d", a, b, a*b, answer)
	}
}
