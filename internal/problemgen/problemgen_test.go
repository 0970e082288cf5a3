package problemgen

import (
	"encoding/json"
	"errors"
	"math/rand/v2"
	"strings"
	"testing"
)

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func checkOptions(t *testing.T, q Question, want int) {
	t.Helper()
	if len(q.Options) != want {
		t.Fatalf("%q: got %d options, want %d", q.Prompt, len(q.Options), want)
	}
	seen := map[Answer]bool{}
	hits := 0
	for _, o := range q.Options {
		if seen[o] {
			t.Fatalf("%q: duplicate option %s", q.Prompt, o)
		}
		seen[o] = true
		if o == q.Correct {
			hits++
		}
	}
	if hits != 1 {
		t.Fatalf("%q: correct answer %s appears %d times", q.Prompt, q.Correct, hits)
	}
}

func TestGenerators_OptionInvariants(t *testing.T) {
	logic, err := NewLogicPuzzles()
	if err != nil {
		t.Fatalf("load puzzles: %v", err)
	}

	gens := map[string]Generator{
		"addition":       Addition{},
		"subtraction":    Subtraction{},
		"multiplication": Multiplication{},
		"division":       Division{},
		"pemdas":         PEMDAS{},
		"word":           WordProblems{},
		"series":         NumberSeries{},
		"logic":          logic,
		"speed":          SpeedMath{},
	}

	cfg := DefaultConfig()
	for name, g := range gens {
		for _, d := range Difficulties {
			for seed := uint64(1); seed <= 5; seed++ {
				qs, err := GenerateSet(newRand(seed), g, 100, d, cfg)
				if err != nil {
					t.Fatalf("%s/%s seed %d: %v", name, d, seed, err)
				}
				for _, q := range qs {
					checkOptions(t, q, cfg.Options)
					if n, ok := q.Correct.Int(); ok && n < 0 {
						t.Errorf("%s: negative answer %d for %q", name, n, q.Prompt)
					}
				}
			}
		}
	}
}

func TestDivision_Exact(t *testing.T) {
	r := newRand(7)
	for i := 0; i < 100; i++ {
		q, err := Division{}.Generate(r, GenerateInput{Index: i, Options: 4})
		if err != nil {
			t.Fatal(err)
		}
		dividend, divisor := q.Operands[0], q.Operands[1]
		got, _ := q.Correct.Int()
		if dividend%divisor != 0 {
			t.Errorf("%d %% %d != 0", dividend, divisor)
		}
		if dividend/divisor != got {
			t.Errorf("%d / %d = %d, question says %d", dividend, divisor, dividend/divisor, got)
		}
		if got < 2 || got > 9 {
			t.Errorf("quotient %d outside 2..9", got)
		}
	}
}

func TestBuildDivision_Scenario(t *testing.T) {
	q := BuildDivision(newRand(1), 7, 4, 4)
	if q.Prompt != "28 ÷ 4" {
		t.Errorf("prompt = %q, want %q", q.Prompt, "28 ÷ 4")
	}
	checkOptions(t, q, 4)
	if q.Correct != Number(7) {
		t.Errorf("correct = %s, want 7", q.Correct)
	}
	for _, o := range q.Options {
		if n, _ := o.Int(); n <= 0 {
			t.Errorf("option %d is not positive", n)
		}
	}
}

func TestSubtraction_NonNegative(t *testing.T) {
	r := newRand(3)
	for i := 0; i < 200; i++ {
		q, _ := Subtraction{}.Generate(r, GenerateInput{Index: i % 100, Options: 4})
		if q.Operands[0] < q.Operands[1] {
			t.Errorf("operands not ordered: %v", q.Operands)
		}
		if n, _ := q.Correct.Int(); n < 0 {
			t.Errorf("negative difference for %q", q.Prompt)
		}
	}
}

func TestPEMDAS_Shapes(t *testing.T) {
	r := newRand(11)
	tests := []struct {
		shape   string
		a, b, c int
		want    int
		prompt  string
	}{
		{ShapeSumTimes, 2, 3, 4, 20, "(2 + 3) × 4"},
		{ShapeTimesPlus, 2, 3, 4, 10, "2 × 3 + 4"},
		{ShapeDiffTimes, 3, 8, 2, 10, "(8 - 3) × 2"},
	}
	for _, tt := range tests {
		q, err := BuildPEMDAS(r, tt.shape, tt.a, tt.b, tt.c, 4)
		if err != nil {
			t.Fatalf("%s: %v", tt.shape, err)
		}
		if q.Prompt != tt.prompt {
			t.Errorf("%s: prompt = %q, want %q", tt.shape, q.Prompt, tt.prompt)
		}
		if q.Correct != Number(tt.want) {
			t.Errorf("%s: answer = %s, want %d", tt.shape, q.Correct, tt.want)
		}
	}

	if _, err := BuildPEMDAS(r, "a^b", 1, 2, 3, 4); err == nil {
		t.Error("expected error for unknown shape")
	}
}

func TestPEMDAS_TimesLessNeverNegative(t *testing.T) {
	r := newRand(5)
	for i := 0; i < 500; i++ {
		a, b := r.IntN(10)+1, r.IntN(10)+1
		q, err := BuildPEMDAS(r, ShapeTimesLess, a, b, 0, 4)
		if err != nil {
			t.Fatal(err)
		}
		n, _ := q.Correct.Int()
		if n < 0 || n >= a*b {
			t.Errorf("%q = %d, want 0 <= x < %d", q.Prompt, n, a*b)
		}
	}
}

func TestNumberSeries_Families(t *testing.T) {
	r := newRand(9)
	for i := 0; i < 300; i++ {
		for _, fam := range seriesFamilies {
			terms, next, _ := buildSeries(r, fam, i%100)
			switch fam {
			case SeriesArithmetic:
				d := terms[1] - terms[0]
				if next != terms[3]+d {
					t.Errorf("arithmetic %v next %d", terms, next)
				}
			case SeriesGeometric:
				ratio := terms[1] / terms[0]
				if next != terms[2]*ratio {
					t.Errorf("geometric %v next %d", terms, next)
				}
			case SeriesFibonacci:
				if len(terms) != 5 || next != terms[3]+terms[4] {
					t.Errorf("fibonacci %v next %d", terms, next)
				}
			case SeriesAlternating:
				if next != terms[3]+(terms[3]-terms[1]) {
					t.Errorf("alternating %v next %d", terms, next)
				}
			}
			if next <= 0 {
				t.Errorf("%s: non-positive next term %d", fam, next)
			}
		}
	}
}

func TestNumberSeries_StartRanges(t *testing.T) {
	r := newRand(21)
	for i := 0; i < 300; i++ {
		idx := i % 100
		for _, fam := range seriesFamilies {
			terms, _, _ := buildSeries(r, fam, idx)
			switch fam {
			case SeriesArithmetic:
				d := terms[1] - terms[0]
				if len(terms) != 4 || terms[0] < 1 || terms[0] > 10 || d < 2+idx/10 || d > 6+idx/10 {
					t.Errorf("arithmetic index %d: %v", idx, terms)
				}
			case SeriesGeometric:
				ratio := terms[1] / terms[0]
				if len(terms) != 3 || terms[0] < 2 || terms[0] > 4 || ratio < 2 || ratio > 3 {
					t.Errorf("geometric: %v", terms)
				}
			case SeriesSquares:
				lo, hi := 1+idx/10, 5+idx/10
				if len(terms) != 4 || terms[0] < lo*lo || terms[0] > hi*hi {
					t.Errorf("squares index %d: %v", idx, terms)
				}
			case SeriesFibonacci:
				if terms[0] < 1 || terms[0] > 4 || terms[1] < 1 || terms[1] > 4 {
					t.Errorf("fibonacci seeds: %v", terms)
				}
			case SeriesAlternating:
				if len(terms) != 5 || terms[0] < 1 || terms[0] > 10 || terms[1] < 20 || terms[1] > 29 {
					t.Errorf("alternating: %v", terms)
				}
			}
		}
	}
}

func TestNumberSeries_PromptSuffix(t *testing.T) {
	r := newRand(4)
	for i := 0; i < 50; i++ {
		q, err := NumberSeries{}.Generate(r, GenerateInput{Index: i, Options: 4})
		if err != nil {
			t.Fatal(err)
		}
		if !strings.HasSuffix(q.Prompt, "...") || strings.HasSuffix(q.Prompt, ", ...") {
			t.Errorf("prompt %q should end with the last term followed by ...", q.Prompt)
		}
		for _, o := range q.Options {
			if n, _ := o.Int(); n < 1 {
				t.Errorf("%q: option %v below 1", q.Prompt, o)
			}
		}
	}
}

func TestFormatSeries(t *testing.T) {
	got := formatSeries([]int{2, 4, 8})
	if got != "2,  4,  8..." {
		t.Errorf("formatSeries = %q", got)
	}
}

func TestWordProblems_Text(t *testing.T) {
	r := newRand(2)
	for i := 0; i < 100; i++ {
		q, err := WordProblems{}.Generate(r, GenerateInput{Index: i % 50, Options: 4})
		if err != nil {
			t.Fatal(err)
		}
		if !strings.HasSuffix(q.Prompt, "?") {
			t.Errorf("prompt %q should be a question", q.Prompt)
		}
		n, _ := q.Correct.Int()
		if n <= 0 {
			t.Errorf("%q: answer %d should be positive", q.Prompt, n)
		}
		if q.Shape == "subtraction" && q.Operands[0] <= q.Operands[1] {
			t.Errorf("subtraction operands %v not strictly ordered", q.Operands)
		}
	}
}

func TestDistractors_TinyDomainTerminates(t *testing.T) {
	r := newRand(1)
	// Correct answer 0 with min 0 and a narrow window: random sampling can
	// only ever produce 1 and 2, so the scan must fill the rest.
	got := Distractors(r, 0, DistractorSpec{Count: 5, MinOffset: -2, MaxOffset: 2, Min: 0})
	if len(got) != 5 {
		t.Fatalf("got %d distractors, want 5", len(got))
	}
	seen := map[int]bool{}
	for _, v := range got {
		if v <= 0 {
			t.Errorf("distractor %d should be > 0", v)
		}
		if seen[v] {
			t.Errorf("duplicate distractor %d", v)
		}
		seen[v] = true
	}
}

func TestDistractors_SeedsFirst(t *testing.T) {
	got := Distractors(newRand(1), 12, DistractorSpec{Count: 3, MinOffset: -1, MaxOffset: 1, Seeds: []int{15, 12, 9}})
	if got[0] != 15 || got[1] != 9 {
		t.Errorf("seeds not used first: %v", got)
	}
}

func TestAddition_Scenario(t *testing.T) {
	q := BuildArithmetic(newRand(4), 5, OpAdd, 3, 4, additionDistractors)
	if q.Prompt != "5 + 3" {
		t.Errorf("prompt = %q", q.Prompt)
	}
	checkOptions(t, q, 4)
	if !CheckAnswer(Number(8), &q) {
		t.Error("8 should be correct")
	}
	for _, wrong := range []int{6, 7, 9} {
		if CheckAnswer(Number(wrong), &q) {
			t.Errorf("%d should be wrong", wrong)
		}
	}
	if CheckAnswer(TimeoutAnswer, &q) {
		t.Error("timeout should never be correct")
	}
}

func TestLogicPuzzles_NoRepeats(t *testing.T) {
	g, err := NewLogicPuzzles()
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Bank) != 20 {
		t.Fatalf("bank has %d puzzles, want 20", len(g.Bank))
	}

	qs, err := GenerateSet(newRand(8), g, 50, Easy, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if len(qs) != 20 {
		t.Fatalf("got %d questions, want the whole bank of 20", len(qs))
	}
	seen := map[string]bool{}
	for _, q := range qs {
		if seen[q.Prompt] {
			t.Errorf("puzzle repeated: %q", q.Prompt)
		}
		seen[q.Prompt] = true
	}
}

func TestLogicPuzzles_IndexOutsideBank(t *testing.T) {
	g := &LogicPuzzles{}
	_, err := g.Generate(newRand(1), GenerateInput{Index: 0, Options: 4})
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Retryable {
		t.Fatalf("expected non-retryable validation error, got %v", err)
	}
}

func TestLoadPuzzles_SchemaRejects(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not an array", `{"id":"x"}`},
		{"missing options", `[{"id":"x","prompt":"p","answer":1}]`},
		{"bad id", `[{"id":"Bad Id","prompt":"p","answer":1,"options":[1,2]}]`},
		{"duplicate options", `[{"id":"x","prompt":"p","answer":1,"options":[1,1]}]`},
		{"answer missing from options", `[{"id":"x","prompt":"p","answer":3,"options":[1,2]}]`},
	}
	for _, tt := range tests {
		if _, err := LoadPuzzles([]byte(tt.data)); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

func TestAnswer_JSON(t *testing.T) {
	var got []Answer
	if err := json.Unmarshal([]byte(`[32, "A Map", "1"]`), &got); err != nil {
		t.Fatal(err)
	}
	want := []Answer{Number(32), Text("A Map"), Text("1")}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("answer %d = %#v, want %#v", i, got[i], want[i])
		}
	}
	if Text("1") == Number(1) {
		t.Error("text and number answers must differ")
	}
	if Text("timeout") == TimeoutAnswer {
		t.Error("timeout sentinel must not equal a text answer")
	}
}

func TestResolveInput(t *testing.T) {
	q := &Question{Correct: Text("A Map"), Options: []Answer{Text("A Globe"), Text("A Map"), Number(3)}}
	tests := []struct {
		input string
		want  Answer
		ok    bool
	}{
		{"2", Text("A Map"), true},
		{" a map ", Text("A Map"), true},
		{"3", Number(3), true},
		{"4", Answer{}, false},
		{"", Answer{}, false},
	}
	for _, tt := range tests {
		got, ok := ResolveInput(tt.input, q)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ResolveInput(%q) = %v, %v; want %v, %v", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Validator: "test-validator",
		Message:   "something went wrong",
		Retryable: true,
	}
	expected := `validator "test-validator": something went wrong`
	if err.Error() != expected {
		t.Errorf("got %q, want %q", err.Error(), expected)
	}
}

func TestDefaultConfig_ValidatorChain(t *testing.T) {
	cfg := DefaultConfig()
	names := []string{"structural", "domain", "math-check"}
	if len(cfg.Validators) != len(names) {
		t.Fatalf("expected %d validators, got %d", len(names), len(cfg.Validators))
	}
	for i, v := range cfg.Validators {
		if v.Name() != names[i] {
			t.Errorf("validator %d: expected %q, got %q", i, names[i], v.Name())
		}
	}
}

func TestStructural_Failures(t *testing.T) {
	v := &StructuralValidator{}
	in := GenerateInput{Options: 3}
	tests := []struct {
		name string
		q    Question
	}{
		{"empty prompt", Question{Correct: Number(1), Options: []Answer{Number(1), Number(2), Number(3)}}},
		{"wrong count", Question{Prompt: "p", Correct: Number(1), Options: []Answer{Number(1), Number(2)}}},
		{"duplicate", Question{Prompt: "p", Correct: Number(1), Options: []Answer{Number(1), Number(2), Number(2)}}},
		{"missing correct", Question{Prompt: "p", Correct: Number(9), Options: []Answer{Number(1), Number(2), Number(3)}}},
	}
	for _, tt := range tests {
		if err := v.Validate(&tt.q, in); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

func TestMathCheck(t *testing.T) {
	v := &MathCheckValidator{}
	tests := []struct {
		prompt  string
		correct Answer
		wantErr bool
	}{
		{"5 + 3", Number(8), false},
		{"5 + 3", Number(9), true},
		{"12 - 7", Number(5), false},
		{"6 × 4", Number(24), false},
		{"28 ÷ 4", Number(7), false},
		{"(2 + 3) × 4", Number(1), false}, // not a binary prompt, passes through
		{"What has an eye?", Text("A needle"), false},
	}
	for _, tt := range tests {
		q := &Question{Prompt: tt.prompt, Correct: tt.correct}
		err := v.Validate(q, GenerateInput{})
		if (err != nil) != tt.wantErr {
			t.Errorf("%q = %s: err = %v, wantErr %v", tt.prompt, tt.correct, err, tt.wantErr)
		}
	}
}

func TestGenerateSet_RetriesThenFails(t *testing.T) {
	calls := 0
	bad := GeneratorFunc(func(r *rand.Rand, in GenerateInput) (Question, error) {
		calls++
		return Question{Prompt: "1 + 1", Correct: Number(3), Options: []Answer{Number(3), Number(1), Number(4), Number(5)}}, nil
	})
	_, err := GenerateSet(newRand(1), bad, 1, Easy, DefaultConfig())
	if !errors.Is(err, ErrGeneration) {
		t.Fatalf("expected ErrGeneration, got %v", err)
	}
	if calls != 3 {
		t.Errorf("generator called %d times, want 3", calls)
	}
}

func TestGenerateSet_Deterministic(t *testing.T) {
	a, err := GenerateSet(newRand(42), Addition{}, 10, Medium, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	b, _ := GenerateSet(newRand(42), Addition{}, 10, Medium, DefaultConfig())
	for i := range a {
		if a[i].Prompt != b[i].Prompt {
			t.Errorf("question %d differs with the same seed: %q vs %q", i, a[i].Prompt, b[i].Prompt)
		}
	}
}

func TestAddition_OperandBounds(t *testing.T) {
	tests := []struct {
		d      Difficulty
		lo, hi int
	}{
		{Easy, 1, 10},
		{Medium, 10, 50},
		{Hard, 50, 200},
	}
	for _, tt := range tests {
		t.Run(tt.d.String(), func(t *testing.T) {
			for _, index := range []int{0, 9, 10, 55, 99} {
				hi := tt.hi + index/10
				for seed := uint64(0); seed < 200; seed++ {
					q, err := Addition{}.Generate(newRand(seed), GenerateInput{Index: index, Difficulty: tt.d, Options: 4})
					if err != nil {
						t.Fatal(err)
					}
					for _, op := range q.Operands {
						if op < tt.lo || op > hi {
							t.Fatalf("index %d seed %d: operand %d outside [%d, %d]", index, seed, op, tt.lo, hi)
						}
					}
				}
			}
		})
	}
}

func TestAddition_DistractorWindow(t *testing.T) {
	for seed := uint64(0); seed < 200; seed++ {
		q, err := Addition{}.Generate(newRand(seed), GenerateInput{Index: int(seed % 100), Difficulty: Easy, Options: 4})
		if err != nil {
			t.Fatal(err)
		}
		correct, _ := q.Correct.Int()
		for _, o := range q.Options {
			v, _ := o.Int()
			if d := v - correct; d < -5 || d > 5 || v < 0 {
				t.Fatalf("seed %d: option %d too far from %d", seed, v, correct)
			}
		}
	}
}

func TestOperandRange(t *testing.T) {
	tests := []struct {
		g      RangedGenerator
		d      Difficulty
		lo, hi int
	}{
		{Addition{}, Easy, 1, 10},
		{Addition{}, Hard, 50, 200},
		{Multiplication{}, Medium, 2, 10},
		{SpeedMath{}, Easy, 1, 20},
	}
	for _, tt := range tests {
		lo, hi := tt.g.OperandRange(tt.d)
		if lo != tt.lo || hi != tt.hi {
			t.Errorf("%T %s: got %d-%d, want %d-%d", tt.g, tt.d, lo, hi, tt.lo, tt.hi)
		}
	}
}
