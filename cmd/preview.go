package cmd

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/brainquiz/internal/problemgen"
	"github.com/abhisek/brainquiz/internal/section"
	"github.com/abhisek/brainquiz/internal/session"
)

var previewCmd = &cobra.Command{
	Use:   "preview <section>",
	Short: "Answer a few questions of a section in the console (no history)",
	Long: `Generate and interactively answer questions for one section.

Runs the same engine as the TUI without a timer and without recording
anything. Useful with --seed to inspect a reproducible question set.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: sectionIDs(),
	RunE:      runPreview,
}

func init() {
	previewCmd.Flags().Int("count", 5, "Number of questions")
	previewCmd.Flags().String("difficulty", "", "Difficulty for sections that have one: easy, medium or hard")
}

func runPreview(cmd *cobra.Command, args []string) error {
	kind, err := section.Parse(args[0])
	if err != nil {
		return err
	}
	count, _ := cmd.Flags().GetInt("count")
	if count <= 0 {
		return fmt.Errorf("--count must be positive, got %d", count)
	}

	e, cleanup, err := setup(cmd, storeNever)
	defer cleanup()
	if err != nil {
		return err
	}

	reg, err := e.cfg.Registry()
	if err != nil {
		return err
	}
	cfg, err := reg.Config(kind)
	if err != nil {
		return err
	}
	cfg.TotalQuestions = count
	cfg.TimerDuration = 0
	cfg.FeedbackDelay = 0

	gen, err := section.NewGenerator(kind)
	if err != nil {
		return err
	}

	opts := []session.Option{session.WithLogger(e.logger)}
	if r := newRand(e.cfg.Seed); r != nil {
		opts = append(opts, session.WithRand(r))
	}
	engine := session.New(cfg, gen, opts...)

	d := problemgen.Easy
	if cfg.HasDifficulty {
		d = e.cfg.DefaultDifficulty()
	}
	if err := engine.Start(d); err != nil {
		return err
	}
	e.logger.Debug("preview started", zap.Stringer("section", kind), zap.Int("count", count))

	return consoleQuiz(cmd.InOrStdin(), cmd.OutOrStdout(), engine)
}

// consoleQuiz plays a started engine to the end over a line-oriented
// reader and writer.
func consoleQuiz(in io.Reader, out io.Writer, e *session.Engine) error {
	scanner := bufio.NewScanner(in)
	cfg := e.Config()

	title := cfg.Title
	if cfg.HasDifficulty {
		title += " (" + e.Difficulty().String() + ")"
	}
	fmt.Fprintf(out, "%s: %d questions\n\n", title, e.Total())

	for !e.IsGameOver() {
		q := e.Current()
		fmt.Fprintf(out, "── Question %d/%d ──\n", e.Index()+1, e.Total())
		fmt.Fprintln(out, q.Prompt)
		for i, o := range q.Options {
			fmt.Fprintf(out, "  %d) %s\n", i+1, o)
		}

		var step session.Step
		for {
			fmt.Fprint(out, "\nYour answer: ")
			if !scanner.Scan() {
				fmt.Fprintln(out, "\n(input closed)")
				return scanner.Err()
			}
			a, ok := problemgen.ResolveInput(scanner.Text(), q)
			if !ok {
				fmt.Fprintf(out, "Pick 1-%d or type one of the options.\n", len(q.Options))
				continue
			}
			step, _ = e.Submit(a)
			break
		}

		if step.Correct {
			fmt.Fprintln(out, "\033[32m✓ Correct!\033[0m")
		} else {
			fmt.Fprintf(out, "\033[31m✗ Wrong.\033[0m Answer: %s\n", q.Correct)
			if q.Explanation != "" {
				fmt.Fprintf(out, "Explanation: %s\n", q.Explanation)
			}
		}
		fmt.Fprintln(out)
		e.Advance(step.Token)
	}

	sum := session.BuildSummary(e)
	fmt.Fprintf(out, "── Summary: %d/%d correct, score %d, best streak %d ──\n",
		sum.TotalCorrect, sum.TotalQuestions, sum.Score, sum.BestStreak)
	return nil
}
