package problemgen

import "math/rand/v2"

// maxDistractorAttempts caps random offset sampling before the
// deterministic scan takes over.
const maxDistractorAttempts = 64

// DistractorSpec describes how wrong numeric options are synthesized.
type DistractorSpec struct {
	// Count is the number of distractors wanted.
	Count int

	// MinOffset and MaxOffset bound the random offset from the correct
	// answer, inclusive. Zero is always skipped.
	MinOffset int
	MaxOffset int

	// Min is the smallest acceptable value.
	Min int

	// Seeds are template-specific near misses tried before sampling.
	Seeds []int
}

// Distractors returns spec.Count distinct wrong values near correct.
//
// Seeds are tried first, then random offsets for at most
// maxDistractorAttempts samples. Whatever is still missing is filled by
// scanning outward: correct+1, correct-1, correct+2, ... which always
// terminates because values above correct are unbounded.
func Distractors(r *rand.Rand, correct int, spec DistractorSpec) []int {
	out := make([]int, 0, spec.Count)
	seen := map[int]struct{}{correct: {}}

	accept := func(v int) {
		if len(out) >= spec.Count || v < spec.Min {
			return
		}
		if _, dup := seen[v]; dup {
			return
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}

	for _, s := range spec.Seeds {
		accept(s)
	}

	span := spec.MaxOffset - spec.MinOffset + 1
	if span > 1 {
		for i := 0; i < maxDistractorAttempts && len(out) < spec.Count; i++ {
			off := r.IntN(span) + spec.MinOffset
			if off == 0 {
				continue
			}
			accept(correct + off)
		}
	}

	for k := 1; len(out) < spec.Count; k++ {
		accept(correct + k)
		accept(correct - k)
	}
	return out
}

// NumericOptions builds a shuffled option set of n values around correct.
func NumericOptions(r *rand.Rand, correct, n int, spec DistractorSpec) []Answer {
	spec.Count = n - 1
	wrong := Distractors(r, correct, spec)
	opts := make([]Answer, 0, n)
	opts = append(opts, Number(correct))
	for _, w := range wrong {
		opts = append(opts, Number(w))
	}
	Shuffle(r, opts)
	return opts
}

// Shuffle permutes s in place (Fisher-Yates) using r.
func Shuffle[T any](r *rand.Rand, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}

// between returns a uniform integer in [lo, hi].
func between(r *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.IntN(hi-lo+1)
}
