package problemgen

import (
	"fmt"
	"math/rand/v2"
)

// Operator symbols as displayed in prompts.
const (
	OpAdd = "+"
	OpSub = "-"
	OpMul = "×"
	OpDiv = "÷"
)

// BuildArithmetic assembles a binary question "a op b" with numeric
// distractors. Callers guarantee the result is a non-negative integer.
func BuildArithmetic(r *rand.Rand, a int, op string, b int, options int, spec DistractorSpec) Question {
	var answer int
	switch op {
	case OpAdd:
		answer = a + b
	case OpSub:
		answer = a - b
	case OpMul:
		answer = a * b
	case OpDiv:
		answer = a / b
	}
	prompt := fmt.Sprintf("%d %s %d", a, op, b)
	return Question{
		Prompt:      prompt,
		Correct:     Number(answer),
		Options:     NumericOptions(r, answer, options, spec),
		Operands:    []int{a, b},
		Shape:       shapeFor(op),
		Explanation: fmt.Sprintf("%s = %d", prompt, answer),
	}
}

// BuildDivision builds "dividend ÷ divisor" where dividend = quotient × divisor,
// so the answer is always exact.
func BuildDivision(r *rand.Rand, quotient, divisor, options int) Question {
	q := BuildArithmetic(r, quotient*divisor, OpDiv, divisor, options, divisionDistractors)
	q.Explanation = fmt.Sprintf("%d × %d = %d, so %s", quotient, divisor, quotient*divisor, q.Explanation)
	return q
}

func shapeFor(op string) string {
	switch op {
	case OpAdd:
		return "addition"
	case OpSub:
		return "subtraction"
	case OpMul:
		return "multiplication"
	default:
		return "division"
	}
}

var (
	additionDistractors       = DistractorSpec{MinOffset: -5, MaxOffset: 5, Min: 0}
	subtractionDistractors    = DistractorSpec{MinOffset: -5, MaxOffset: 4, Min: 0}
	multiplicationDistractors = DistractorSpec{MinOffset: -5, MaxOffset: 5, Min: 0}
	divisionDistractors       = DistractorSpec{MinOffset: -2, MaxOffset: 2, Min: 1}
)

// operandRange returns the inclusive operand bounds for a difficulty.
type operandRange struct{ lo, hi int }

// RangedGenerator is a generator whose operand range depends on the
// difficulty. The bounds are those of the first question; later
// questions may widen the upper bound.
type RangedGenerator interface {
	Generator
	OperandRange(d Difficulty) (lo, hi int)
}

func lookupRange(ranges map[Difficulty]operandRange, d Difficulty) (int, int) {
	rg := ranges[d]
	return rg.lo, rg.hi
}

var additionRanges = map[Difficulty]operandRange{
	Easy:   {1, 10},
	Medium: {10, 50},
	Hard:   {50, 200},
}

// Addition ramps operand ranges with difficulty. The upper bound also
// grows by one every ten questions.
type Addition struct{}

func (Addition) OperandRange(d Difficulty) (int, int) { return lookupRange(additionRanges, d) }

func (Addition) Generate(r *rand.Rand, in GenerateInput) (Question, error) {
	rg, ok := additionRanges[in.Difficulty]
	if !ok {
		return Question{}, fmt.Errorf("addition: unsupported difficulty %s", in.Difficulty)
	}
	hi := rg.hi + in.Index/10
	a := between(r, rg.lo, hi)
	b := between(r, rg.lo, hi)
	return BuildArithmetic(r, a, OpAdd, b, in.Options, additionDistractors), nil
}

// Subtraction widens operands with the index and orders them so the
// difference is never negative.
type Subtraction struct{}

func (Subtraction) Generate(r *rand.Rand, in GenerateInput) (Question, error) {
	a := r.IntN(10+in.Index*2) + 1
	b := r.IntN(10+in.Index*2) + 1
	a, b = max(a, b), min(a, b)
	return BuildArithmetic(r, a, OpSub, b, in.Options, subtractionDistractors), nil
}

var multiplicationRanges = map[Difficulty]operandRange{
	Easy:   {1, 5},
	Medium: {2, 10},
	Hard:   {6, 15},
}

// Multiplication draws factors from the difficulty's table range. Near
// products such as a×(b+1) are offered as distractors first.
type Multiplication struct{}

func (Multiplication) OperandRange(d Difficulty) (int, int) {
	return lookupRange(multiplicationRanges, d)
}

func (Multiplication) Generate(r *rand.Rand, in GenerateInput) (Question, error) {
	rg, ok := multiplicationRanges[in.Difficulty]
	if !ok {
		return Question{}, fmt.Errorf("multiplication: unsupported difficulty %s", in.Difficulty)
	}
	hi := rg.hi + in.Index/10
	a := between(r, rg.lo, hi)
	b := between(r, rg.lo, hi)

	spec := multiplicationDistractors
	spec.Seeds = []int{a * (b + 1), a * (b - 1), (a + 1) * b}
	Shuffle(r, spec.Seeds)
	spec.Seeds = spec.Seeds[:2]
	return BuildArithmetic(r, a, OpMul, b, in.Options, spec), nil
}

// Division builds exact quotients: quotient in 2..9 and a divisor range
// that widens with the index.
type Division struct{}

func (Division) Generate(r *rand.Rand, in GenerateInput) (Question, error) {
	quotient := r.IntN(8) + 2
	divisor := r.IntN(5+in.Index) + 2
	return BuildDivision(r, quotient, divisor, in.Options), nil
}

var speedRanges = map[Difficulty]operandRange{
	Easy:   {1, 20},
	Medium: {10, 60},
	Hard:   {50, 200},
}

// SpeedMath mixes addition and subtraction for quick-fire rounds.
type SpeedMath struct{}

func (SpeedMath) OperandRange(d Difficulty) (int, int) { return lookupRange(speedRanges, d) }

func (SpeedMath) Generate(r *rand.Rand, in GenerateInput) (Question, error) {
	rg, ok := speedRanges[in.Difficulty]
	if !ok {
		return Question{}, fmt.Errorf("speed math: unsupported difficulty %s", in.Difficulty)
	}
	hi := rg.hi + in.Index/5
	a := between(r, rg.lo, hi)
	b := between(r, rg.lo, hi)
	if r.IntN(2) == 0 {
		return BuildArithmetic(r, a, OpAdd, b, in.Options, additionDistractors), nil
	}
	a, b = max(a, b), min(a, b)
	return BuildArithmetic(r, a, OpSub, b, in.Options, subtractionDistractors), nil
}
