package problemgen

import "fmt"

// StructuralValidator checks the option set: the configured count, no
// duplicates, and the correct answer present exactly once.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *Question, input GenerateInput) *ValidationError {
	if q.Prompt == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "prompt is empty",
			Retryable: true,
		}
	}
	if q.Correct.IsZero() || q.Correct.IsTimeout() {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "correct answer is not set",
			Retryable: false,
		}
	}
	if input.Options > 0 && len(q.Options) != input.Options {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("expected %d options, got %d", input.Options, len(q.Options)),
			Retryable: true,
		}
	}

	seen := make(map[Answer]struct{}, len(q.Options))
	hits := 0
	for _, o := range q.Options {
		if _, dup := seen[o]; dup {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("duplicate option %q", o.String()),
				Retryable: true,
			}
		}
		seen[o] = struct{}{}
		if o == q.Correct {
			hits++
		}
	}
	if hits != 1 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("correct answer %q appears %d times in options", q.Correct.String(), hits),
			Retryable: true,
		}
	}
	return nil
}

// DomainValidator rejects negative numeric answers and options.
type DomainValidator struct{}

func (v *DomainValidator) Name() string { return "domain" }

func (v *DomainValidator) Validate(q *Question, _ GenerateInput) *ValidationError {
	if n, ok := q.Correct.Int(); ok && n < 0 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("correct answer %d is negative", n),
			Retryable: true,
		}
	}
	for _, o := range q.Options {
		if n, ok := o.Int(); ok && n < 0 {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("option %d is negative", n),
				Retryable: true,
			}
		}
	}
	return nil
}
