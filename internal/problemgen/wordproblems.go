package problemgen

import (
	"fmt"
	"math/rand/v2"
)

var (
	wordNames = []string{"Alice", "Ben", "Clara", "David", "Eva", "Frank"}
	wordItems = []string{"apples", "balloons", "cookies", "pencils", "stickers", "marbles"}
)

// wordTemplate renders a short story around two operands.
type wordTemplate struct {
	kind   string
	render func(name, item string, a, b int) (string, int, int, int)
}

var wordTemplates = []wordTemplate{
	{
		kind: "addition",
		render: func(name, item string, a, b int) (string, int, int, int) {
			text := fmt.Sprintf("%s has %d %s. They get %d more. How many %s does %s have now?",
				name, a, item, b, item, name)
			return text, a + b, a, b
		},
	},
	{
		kind: "subtraction",
		render: func(name, item string, a, b int) (string, int, int, int) {
			a, b = max(a, b), min(a, b)
			if a == b {
				a++
			}
			text := fmt.Sprintf("%s starts with %d %s. They give away %d. How many are left?",
				name, a, item, b)
			return text, a - b, a, b
		},
	},
	{
		kind: "multiplication",
		render: func(_, item string, a, b int) (string, int, int, int) {
			text := fmt.Sprintf("There are %d boxes. Each box has %d %s. How many %s are there in total?",
				a, b, item, item)
			return text, a * b, a, b
		},
	},
}

var wordDistractors = DistractorSpec{MinOffset: -5, MaxOffset: 4, Min: 1}

// WordProblems frames addition, subtraction and multiplication as short
// stories with a random name and item.
type WordProblems struct{}

func (WordProblems) Generate(r *rand.Rand, in GenerateInput) (Question, error) {
	tmpl := wordTemplates[r.IntN(len(wordTemplates))]

	var a, b int
	if tmpl.kind == "multiplication" {
		a = r.IntN(5+in.Index/5) + 2
		b = r.IntN(5+in.Index/5) + 2
	} else {
		a = r.IntN(10+in.Index*2) + 1
		b = r.IntN(10+in.Index*2) + 1
	}

	name := wordNames[r.IntN(len(wordNames))]
	item := wordItems[r.IntN(len(wordItems))]
	text, answer, a, b := tmpl.render(name, item, a, b)

	return Question{
		Prompt:      text,
		Correct:     Number(answer),
		Options:     NumericOptions(r, answer, in.Options, wordDistractors),
		Operands:    []int{a, b},
		Shape:       tmpl.kind,
		Explanation: wordExplanation(tmpl.kind, a, b, answer),
	}, nil
}

func wordExplanation(kind string, a, b, answer int) string {
	switch kind {
	case "addition":
		return fmt.Sprintf("%d + %d = %d", a, b, answer)
	case "subtraction":
		return fmt.Sprintf("%d - %d = %d", a, b, answer)
	default:
		return fmt.Sprintf("%d × %d = %d", a, b, answer)
	}
}
