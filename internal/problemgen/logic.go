package problemgen

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed bank/puzzles.json
var puzzleBankJSON []byte

//go:embed bank/puzzles.schema.json
var puzzleSchemaJSON []byte

const puzzleSchemaURL = "schema://logic-puzzles.json"

// Puzzle is one curated riddle or pattern question.
type Puzzle struct {
	ID          string   `json:"id"`
	Prompt      string   `json:"prompt"`
	Answer      Answer   `json:"answer"`
	Options     []Answer `json:"options"`
	Explanation string   `json:"explanation,omitempty"`
}

var compilePuzzleSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(puzzleSchemaJSON))
	if err != nil {
		return nil, fmt.Errorf("parse puzzle schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(puzzleSchemaURL, doc); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(puzzleSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	return compiled, nil
})

// LoadPuzzles validates data against the puzzle bank schema and decodes it.
// Every puzzle's answer must be one of its options.
func LoadPuzzles(data []byte) ([]Puzzle, error) {
	schema, err := compilePuzzleSchema()
	if err != nil {
		return nil, err
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if err := schema.Validate(inst); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var puzzles []Puzzle
	if err := json.Unmarshal(data, &puzzles); err != nil {
		return nil, fmt.Errorf("decode puzzles: %w", err)
	}

	ids := make(map[string]struct{}, len(puzzles))
	for _, p := range puzzles {
		if _, dup := ids[p.ID]; dup {
			return nil, fmt.Errorf("puzzle %q: duplicate id", p.ID)
		}
		ids[p.ID] = struct{}{}

		found := false
		for _, o := range p.Options {
			if o == p.Answer {
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("puzzle %q: answer %q is not among its options", p.ID, p.Answer.String())
		}
	}
	return puzzles, nil
}

// DefaultPuzzles returns the embedded puzzle bank.
var DefaultPuzzles = sync.OnceValues(func() ([]Puzzle, error) {
	return LoadPuzzles(puzzleBankJSON)
})

// LogicPuzzles serves questions from a fixed bank. A session shuffles the
// bank and takes a prefix, so no puzzle repeats within a session.
type LogicPuzzles struct {
	Bank []Puzzle
}

// NewLogicPuzzles returns a generator over the embedded bank.
func NewLogicPuzzles() (*LogicPuzzles, error) {
	bank, err := DefaultPuzzles()
	if err != nil {
		return nil, err
	}
	return &LogicPuzzles{Bank: bank}, nil
}

// Generate returns the puzzle at the input index in bank order, with
// shuffled options.
func (g *LogicPuzzles) Generate(r *rand.Rand, in GenerateInput) (Question, error) {
	if in.Index < 0 || in.Index >= len(g.Bank) {
		return Question{}, &ValidationError{
			Validator: "logic-bank",
			Message:   fmt.Sprintf("index %d outside bank of %d puzzles", in.Index, len(g.Bank)),
			Retryable: false,
		}
	}
	return puzzleQuestion(r, g.Bank[in.Index], in.Options)
}

// GenerateSet draws min(n, len(bank)) puzzles without replacement.
func (g *LogicPuzzles) GenerateSet(r *rand.Rand, n int, in GenerateInput) ([]Question, error) {
	if len(g.Bank) == 0 {
		return nil, fmt.Errorf("logic puzzle bank is empty")
	}
	order := make([]Puzzle, len(g.Bank))
	copy(order, g.Bank)
	Shuffle(r, order)
	if n > len(order) {
		n = len(order)
	}

	qs := make([]Question, 0, n)
	for _, p := range order[:n] {
		q, err := puzzleQuestion(r, p, in.Options)
		if err != nil {
			return nil, err
		}
		qs = append(qs, q)
	}
	return qs, nil
}

// puzzleQuestion keeps the answer plus the first options-1 curated
// distractors and shuffles them.
func puzzleQuestion(r *rand.Rand, p Puzzle, options int) (Question, error) {
	opts := []Answer{p.Answer}
	for _, o := range p.Options {
		if len(opts) == options {
			break
		}
		if o != p.Answer {
			opts = append(opts, o)
		}
	}
	if len(opts) < options {
		return Question{}, &ValidationError{
			Validator: "logic-bank",
			Message:   fmt.Sprintf("puzzle %q has %d options, need %d", p.ID, len(opts), options),
			Retryable: false,
		}
	}
	Shuffle(r, opts)

	explanation := p.Explanation
	if explanation == "" {
		explanation = fmt.Sprintf("The answer is %s", p.Answer.String())
	}
	return Question{
		Prompt:      p.Prompt,
		Correct:     p.Answer,
		Options:     opts,
		Shape:       "bank",
		Explanation: explanation,
	}, nil
}
