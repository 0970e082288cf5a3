package cmd

import (
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/abhisek/brainquiz/internal/config"
	"github.com/abhisek/brainquiz/internal/feedback"
	"github.com/abhisek/brainquiz/internal/logging"
	sessionscreen "github.com/abhisek/brainquiz/internal/screens/session"
	"github.com/abhisek/brainquiz/internal/store"
)

var rootCmd = &cobra.Command{
	Use:           "brainquiz",
	Short:         "Terminal brain-training quiz",
	Long:          "Brain Quiz: nine timed and untimed multiple-choice sections of arithmetic, series and logic.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, nil)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("db", "", "Path to SQLite database file (overrides BRAINQUIZ_DB env var)")
	pf.String("config", "", "Path to a config file (default $XDG_CONFIG_HOME/brainquiz/config.yaml)")
	pf.Uint64("seed", 0, "Random seed for reproducible question sets (0 = from the clock)")
	pf.Bool("no-sound", false, "Disable the terminal bell")
	pf.Bool("no-history", false, "Do not record sessions")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(sectionsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// flagBinder maps command-line flags onto config keys. Only flags the
// user actually set override the file and environment.
func flagBinder(cmd *cobra.Command) config.Binder {
	return func(v *viper.Viper) error {
		flags := cmd.Flags()
		for key, name := range map[string]string{
			"db_path":    "db",
			"seed":       "seed",
			"difficulty": "difficulty",
		} {
			f := flags.Lookup(name)
			if f == nil || !f.Changed {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return err
			}
		}
		if off, _ := flags.GetBool("no-sound"); off {
			v.Set("sound.enabled", false)
		}
		if off, _ := flags.GetBool("no-history"); off {
			v.Set("history.enabled", false)
		}
		return nil
	}
}

// env is everything a command needs after flags and config are resolved.
type env struct {
	cfg    *config.Config
	logger *zap.Logger
	store  *store.Store // nil when history is off and the command can do without
}

// storeMode says when setup opens the database.
type storeMode int

const (
	storeIfHistory storeMode = iota // only when history is enabled
	storeAlways
	storeNever
)

// setup loads config, starts the log file and, per mode, opens the
// store. The returned cleanup is never nil.
func setup(cmd *cobra.Command, mode storeMode) (*env, func(), error) {
	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configFile, flagBinder(cmd))
	if err != nil {
		return nil, func() {}, err
	}

	logger, closeLog, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logging disabled:", err)
	}
	e := &env{cfg: cfg, logger: logger}
	cleanup := func() {
		if e.store != nil {
			if err := e.store.Close(); err != nil {
				e.logger.Warn("close store", zap.Error(err))
			}
		}
		closeLog()
	}

	if mode == storeAlways || (mode == storeIfHistory && cfg.History.Enabled) {
		dbPath, err := resolveDBPath(cfg)
		if err != nil {
			cleanup()
			return nil, func() {}, fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			cleanup()
			return nil, func() {}, fmt.Errorf("open database: %w", err)
		}
		e.store = st
		logger.Debug("store opened", zap.String("path", dbPath))
	}
	return e, cleanup, nil
}

// resolveDBPath returns the database path using --db or BRAINQUIZ_DB
// (both land in db_path), then the default XDG path.
func resolveDBPath(cfg *config.Config) (string, error) {
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

// newRand returns a seeded PCG source, or nil to let each engine seed
// itself from the clock.
func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return nil
	}
	return rand.New(rand.NewPCG(seed, seed>>1|1))
}

// deps builds the quiz screen collaborators from the resolved env.
func (e *env) deps() (sessionscreen.Deps, error) {
	reg, err := e.cfg.Registry()
	if err != nil {
		return sessionscreen.Deps{}, err
	}

	var sound feedback.SoundPlayer = feedback.Nop{}
	if e.cfg.Sound.Enabled {
		sound = feedback.NewBell(os.Stderr)
	}

	d := sessionscreen.Deps{
		Registry:   reg,
		Sound:      sound,
		Logger:     e.logger,
		Rand:       newRand(e.cfg.Seed),
		Difficulty: e.cfg.DefaultDifficulty(),
	}
	if e.store != nil && e.cfg.History.Enabled {
		d.EventRepo = e.store.EventRepo()
	}
	return d, nil
}
