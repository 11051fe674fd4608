// Package cli implements the crimereport command-line interface: an
// interactive reporting menu plus a few housekeeping subcommands.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/flyinginsectsunpig/crimereport/internal/logger"
	"github.com/flyinginsectsunpig/crimereport/internal/paths"
	"github.com/flyinginsectsunpig/crimereport/internal/store"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// exitError carries the process exit code for an error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// sysError marks err as a system failure (config, backend, I/O).
func sysError(err error) error {
	return &exitError{code: exitSysError, err: err}
}

// exitCode maps an error returned by the root command to a process exit code.
// Unmarked errors are user errors: bad flags, arguments, or input.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitUserError
}

// rootFlags holds flag values for one command tree.
type rootFlags struct {
	configDir string
	backend   string
	logLevel  string
	seed      bool
}

// NewRootCmd creates the top-level "crimereport" command with global flags
// and all subcommands registered. Running it without a subcommand starts
// the interactive menu on the command's input and output.
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:   "crimereport",
		Short: "Report and track crimes from the terminal",
		Long:  "crimereport keeps an in-memory register of crime reports.\nRun without arguments to open the interactive menu.",
		Args:  cobra.NoArgs,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenuCmd(cmd, flags)
		},
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/crimereport)")
	root.Flags().StringVar(&flags.backend, "backend", "", "storage backend: memory or sqlite")
	root.Flags().StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn, error")
	root.Flags().BoolVar(&flags.seed, "seed", false, "load sample reports on startup")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(flags))
	root.AddCommand(newCategoriesCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

// runMenuCmd loads configuration, opens the store, optionally seeds it,
// and hands control to the menu until the user exits or input ends.
func runMenuCmd(cmd *cobra.Command, flags *rootFlags) error {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}

	cfg, err := loadSettings(cmd, configDir)
	if err != nil {
		return sysError(err)
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())

	s, err := store.Open(cfg.storeConfig(), log)
	if err != nil {
		return sysError(err)
	}
	defer func() {
		if err := s.Close(); err != nil {
			log.WithError(err).Error("closing store")
		}
	}()

	seeded := 0
	if cfg.Seed {
		if seeded, err = seedReports(s); err != nil {
			return sysError(fmt.Errorf("seed reports: %w", err))
		}
	}
	log.WithField("backend", cfg.Backend).WithField("seeded", seeded).Info("store opened")

	return newMenu(cmd.InOrStdin(), cmd.OutOrStdout(), s, log).run()
}

