package problemgen

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// ErrGeneration wraps every failure returned by GenerateSet.
var ErrGeneration = errors.New("question generation failed")

// Generator produces one question for a position in a session.
// Implementations must draw all randomness from r.
type Generator interface {
	Generate(r *rand.Rand, input GenerateInput) (Question, error)
}

// GeneratorFunc adapts a plain function to the Generator interface.
type GeneratorFunc func(r *rand.Rand, input GenerateInput) (Question, error)

func (f GeneratorFunc) Generate(r *rand.Rand, input GenerateInput) (Question, error) {
	return f(r, input)
}

// SetGenerator is implemented by generators that pick a whole session at
// once, such as a fixed bank drawn without replacement.
type SetGenerator interface {
	GenerateSet(r *rand.Rand, n int, input GenerateInput) ([]Question, error)
}

// GenerateSet produces n validated questions. A question failing a
// retryable validator is regenerated up to cfg.MaxAttempts times.
func GenerateSet(r *rand.Rand, g Generator, n int, d Difficulty, cfg Config) ([]Question, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: question count must be positive, got %d", ErrGeneration, n)
	}
	attempts := cfg.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	base := GenerateInput{Difficulty: d, Options: cfg.Options}

	if sg, ok := g.(SetGenerator); ok {
		qs, err := sg.GenerateSet(r, n, base)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrGeneration, err)
		}
		for i := range qs {
			in := base
			in.Index = i
			if verr := validate(&qs[i], in, cfg.Validators); verr != nil {
				return nil, fmt.Errorf("%w: question %d: %w", ErrGeneration, i, verr)
			}
		}
		return qs, nil
	}

	qs := make([]Question, 0, n)
	for i := 0; i < n; i++ {
		in := base
		in.Index = i

		var lastErr error
		for attempt := 0; attempt < attempts; attempt++ {
			q, err := g.Generate(r, in)
			if err != nil {
				lastErr = err
				break
			}
			if verr := validate(&q, in, cfg.Validators); verr != nil {
				lastErr = verr
				if verr.Retryable {
					continue
				}
				break
			}
			qs = append(qs, q)
			lastErr = nil
			break
		}
		if lastErr != nil {
			return nil, fmt.Errorf("%w: question %d: %w", ErrGeneration, i, lastErr)
		}
	}
	return qs, nil
}

// validate runs the chain and returns the first failure.
func validate(q *Question, in GenerateInput, validators []Validator) *ValidationError {
	for _, v := range validators {
		if err := v.Validate(q, in); err != nil {
			return err
		}
	}
	return nil
}
