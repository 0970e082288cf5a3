package cmd

import (
	"bytes"
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/brainquiz/internal/config"
	"github.com/abhisek/brainquiz/internal/problemgen"
	"github.com/abhisek/brainquiz/internal/section"
	"github.com/abhisek/brainquiz/internal/session"
)

// oracle answers every prompt with the correct option number.
type oracle struct {
	e   *session.Engine
	buf []byte
}

func (o *oracle) Read(p []byte) (int, error) {
	if len(o.buf) == 0 {
		q := o.e.Current()
		o.buf = []byte(fmt.Sprintf("%d\n", q.IndexOf(q.Correct)+1))
	}
	n := copy(p, o.buf)
	o.buf = o.buf[n:]
	return n, nil
}

func newEngine(t *testing.T, kind section.Kind, n int) *session.Engine {
	t.Helper()
	cfg := section.Default(kind)
	cfg.TotalQuestions = n
	cfg.TimerDuration = 0
	gen, err := section.NewGenerator(kind)
	require.NoError(t, err)
	e := session.New(cfg, gen, session.WithRand(rand.New(rand.NewPCG(3, 5))))
	require.NoError(t, e.Start(problemgen.Easy))
	return e
}

func TestConsoleQuizAllCorrect(t *testing.T) {
	e := newEngine(t, section.Division, 3)
	var out bytes.Buffer

	require.NoError(t, consoleQuiz(&oracle{e: e}, &out, e))

	assert.True(t, e.IsGameOver())
	assert.Equal(t, 3, e.Correct())
	assert.Equal(t, 3, strings.Count(out.String(), "Correct!"))
	assert.Contains(t, out.String(), "Summary: 3/3 correct")
}

func TestConsoleQuizRetriesUnknownInput(t *testing.T) {
	e := newEngine(t, section.Subtraction, 1)
	q := e.Current()
	in := strings.NewReader(fmt.Sprintf("nope\n%d\n", q.IndexOf(q.Correct)+1))
	var out bytes.Buffer

	require.NoError(t, consoleQuiz(in, &out, e))

	assert.Contains(t, out.String(), "Pick 1-4")
	assert.Equal(t, 1, e.Correct())
}

func TestConsoleQuizWrongAnswerShowsCorrection(t *testing.T) {
	e := newEngine(t, section.Addition, 1)
	q := e.Current()
	wrong := 1
	if q.IndexOf(q.Correct) == 0 {
		wrong = 2
	}
	var out bytes.Buffer

	require.NoError(t, consoleQuiz(strings.NewReader(fmt.Sprintf("%d\n", wrong)), &out, e))

	assert.Contains(t, out.String(), "Answer: "+q.Correct.String())
	assert.Equal(t, 0, e.Score())
}

func TestConsoleQuizClosedInput(t *testing.T) {
	e := newEngine(t, section.Division, 2)
	var out bytes.Buffer

	require.NoError(t, consoleQuiz(strings.NewReader(""), &out, e))
	assert.Contains(t, out.String(), "(input closed)")
	assert.False(t, e.IsGameOver())
}

func TestFlagBinderOnlyAppliesChangedFlags(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())
	t.Setenv("BRAINQUIZ_SEED", "99")

	c := &cobra.Command{Use: "x", RunE: func(*cobra.Command, []string) error { return nil }}
	c.Flags().String("db", "", "")
	c.Flags().Uint64("seed", 0, "")
	c.Flags().String("difficulty", "", "")
	c.Flags().Bool("no-sound", false, "")
	c.Flags().Bool("no-history", false, "")
	require.NoError(t, c.ParseFlags([]string{"--db", "/tmp/q.db", "--difficulty", "hard", "--no-sound"}))

	cfg, err := config.Load("", flagBinder(c))
	require.NoError(t, err)

	assert.Equal(t, "/tmp/q.db", cfg.DBPath)
	assert.Equal(t, "hard", cfg.Difficulty)
	assert.Equal(t, uint64(99), cfg.Seed, "unset --seed keeps the env value")
	assert.False(t, cfg.Sound.Enabled)
	assert.True(t, cfg.History.Enabled)
}

func TestNewRand(t *testing.T) {
	assert.Nil(t, newRand(0))
	a, b := newRand(42), newRand(42)
	require.NotNil(t, a)
	assert.Equal(t, a.IntN(1000), b.IntN(1000))
}

func TestSectionsCommandListsAll(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())

	var out bytes.Buffer
	c := &cobra.Command{Use: "sections", RunE: sectionsCmd.RunE}
	c.SetOut(&out)
	c.SetArgs([]string{})
	require.NoError(t, c.Execute())

	for _, k := range section.All() {
		assert.Contains(t, out.String(), k.ID())
	}
	assert.Contains(t, out.String(), "8s", "PEMDAS timer")
}

func TestSectionTitle(t *testing.T) {
	assert.Equal(t, "Word Problems", sectionTitle("word-problems"))
	assert.Equal(t, "mystery", sectionTitle("mystery"))
}
