package problemgen

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
)

// Number series families.
const (
	SeriesArithmetic  = "arithmetic"
	SeriesGeometric   = "geometric"
	SeriesSquares     = "squares"
	SeriesFibonacci   = "fibonacci"
	SeriesAlternating = "alternating"
)

var seriesFamilies = []string{
	SeriesArithmetic,
	SeriesGeometric,
	SeriesSquares,
	SeriesFibonacci,
	SeriesAlternating,
}

var seriesDistractors = DistractorSpec{MinOffset: -5, MaxOffset: 4, Min: 1}

// NumberSeries shows a few terms of a sequence and asks for the next one.
type NumberSeries struct{}

func (NumberSeries) Generate(r *rand.Rand, in GenerateInput) (Question, error) {
	family := seriesFamilies[r.IntN(len(seriesFamilies))]
	terms, next, rule := buildSeries(r, family, in.Index)

	return Question{
		Prompt:      formatSeries(terms),
		Correct:     Number(next),
		Options:     NumericOptions(r, next, in.Options, seriesDistractors),
		Operands:    terms,
		Shape:       family,
		Explanation: fmt.Sprintf("%s, so the next term is %d", rule, next),
	}, nil
}

// buildSeries returns the shown terms, the hidden next term and a short
// description of the rule.
func buildSeries(r *rand.Rand, family string, index int) ([]int, int, string) {
	switch family {
	case SeriesGeometric:
		start := r.IntN(3) + 2
		ratio := r.IntN(2) + 2
		terms := []int{start, start * ratio, start * ratio * ratio}
		return terms, terms[2] * ratio, fmt.Sprintf("Each term is multiplied by %d", ratio)

	case SeriesSquares:
		start := r.IntN(5) + 1 + index/10
		terms := make([]int, 4)
		for j := range terms {
			terms[j] = (start + j) * (start + j)
		}
		n := start + 4
		return terms, n * n, fmt.Sprintf("These are perfect squares; %d × %d", n, n)

	case SeriesFibonacci:
		terms := []int{r.IntN(4) + 1, r.IntN(4) + 1}
		for j := 0; j < 3; j++ {
			terms = append(terms, terms[j]+terms[j+1])
		}
		return terms, terms[3] + terms[4], "Each term is the sum of the two before it"

	case SeriesAlternating:
		s1 := r.IntN(10) + 1
		d1 := r.IntN(3) + 1
		s2 := r.IntN(10) + 20
		d2 := r.IntN(3) + 1
		terms := []int{s1, s2, s1 + d1, s2 + d2, s1 + 2*d1}
		return terms, s2 + 2*d2, fmt.Sprintf("Two sequences interleave: +%d and +%d", d1, d2)

	default:
		start := r.IntN(10) + 1
		diff := r.IntN(5) + 2 + index/10
		terms := make([]int, 4)
		for j := range terms {
			terms[j] = start + j*diff
		}
		return terms, start + 4*diff, fmt.Sprintf("Each term adds %d", diff)
	}
}

// formatSeries renders terms as "2,  4,  8..."
func formatSeries(terms []int) string {
	parts := make([]string, len(terms))
	for i, t := range terms {
		parts[i] = strconv.Itoa(t)
	}
	return strings.Join(parts, ",  ") + "..."
}
