package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/brainquiz/internal/app"
	"github.com/abhisek/brainquiz/internal/section"
)

// runApp resolves dependencies and launches the TUI, optionally straight
// into one section.
func runApp(cmd *cobra.Command, kind *section.Kind) error {
	e, cleanup, err := setup(cmd, storeIfHistory)
	defer cleanup()
	if err != nil {
		return err
	}

	deps, err := e.deps()
	if err != nil {
		return err
	}

	e.logger.Info("starting tui",
		zap.Bool("history", deps.EventRepo != nil),
		zap.Bool("sound", e.cfg.Sound.Enabled),
		zap.Uint64("seed", e.cfg.Seed))

	return app.Run(app.Options{
		Deps:           deps,
		SplashDuration: e.cfg.SplashDuration,
		Section:        kind,
	})
}
