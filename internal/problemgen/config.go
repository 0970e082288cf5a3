package problemgen

// Config controls how GenerateSet builds a question sequence.
type Config struct {
	// Validators is the ordered list of validators to run on every
	// generated question. They execute in order; the first failure
	// stops the pipeline.
	Validators []Validator

	// MaxAttempts is how many times a single index is generated before
	// giving up on a retryable validation failure.
	MaxAttempts int

	// Options is the number of choices per question.
	Options int
}

// DefaultConfig returns a Config with the standard validator chain
// and recommended defaults.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&DomainValidator{},
			&MathCheckValidator{},
		},
		MaxAttempts: 3,
		Options:     4,
	}
}
