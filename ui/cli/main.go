// Copyright (c) 2026 Keymaster Team
// Tally - bounded counter terminal app
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"runtime/debug"

	log "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/toeirei/tally/buildvars"
	"github.com/toeirei/tally/core/counter"
	"github.com/toeirei/tally/internal/config"
	"github.com/toeirei/tally/internal/i18n"
	"github.com/toeirei/tally/internal/logging"
	"github.com/toeirei/tally/ui/cells"
	"github.com/toeirei/tally/ui/rawterm"
	"github.com/toeirei/tally/ui/render"
	"github.com/toeirei/tally/ui/tui"
)

var gitCommit = "dev" // set at build time with the short commit SHA
var buildDate = ""    // set at build time (RFC3339)

// Runner shows variant v with the named driver until the user quits.
type Runner func(driver string, v render.Variant, s *counter.State) error

// RunDriver is the Runner used outside of tests.
func RunDriver(driver string, v render.Variant, s *counter.State) error {
	switch driver {
	case config.DriverTcell:
		return cells.Run(v, s)
	case config.DriverRaw:
		return rawterm.Run(v, s)
	case config.DriverTea, "":
		return tui.Run(v, s)
	}
	return fmt.Errorf("unknown driver %q", driver)
}

type app struct {
	cfgFile  string
	config   config.Config
	run      Runner
	closeLog func() error
}

type Option func(*app)

// WithRunner replaces the driver dispatch, mostly for tests.
func WithRunner(r Runner) Option {
	return func(a *app) { a.run = r }
}

// Execute runs the CLI entrypoint. The main package should call this
// function and handle process exit.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd creates the root command with its subcommands. Every call
// returns an independent tree so that tests can run commands in isolation.
func NewRootCmd(opts ...Option) *cobra.Command {
	a := &app{
		run:      RunDriver,
		closeLog: func() error { return nil },
	}
	for _, opt := range opts {
		opt(a)
	}

	cmd := &cobra.Command{
		Use:   "tally",
		Short: "Tally is a bounded counter for your terminal.",
		Long: `Tally shows an 8-bit counter in a bordered terminal panel.
Press the right arrow to increment, the left arrow to decrement and q to quit.
The value saturates at 0 and 255.

Running without a subcommand starts the counter screen.`,
		Args:               cobra.NoArgs,
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.teardown,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.screen(render.Counter)
		},
	}
	cmd.Version = compositeVersion(resolveBuildVersion(nil))

	cmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/tally/tally.yaml)")
	cmd.PersistentFlags().String("driver", config.DriverTea, `terminal driver ("tea", "tcell", "raw")`)
	cmd.PersistentFlags().String("language", "en", `UI language ("en", "de")`)
	cmd.PersistentFlags().String("log.file", "", "append logs to this file (default: no logs)")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "log debug messages")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "placeholder",
			Short: "Show the static placeholder panel",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.screen(render.Placeholder)
			},
		},
		newKeysCmd(),
	)
	return cmd
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	var explicit *string
	if cmd.Flags().Changed("config") && a.cfgFile != "" {
		explicit = &a.cfgFile
	}

	cfg, err := config.Load(cmd, explicit)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	a.config = cfg

	i18n.Init(cfg.Language)

	closeLog, err := logging.Setup(cfg.Log.File, cfg.Verbose)
	if err != nil {
		// keep running without a log file rather than refusing to start
		log.Warnf("could not open log file: %v", err)
	} else {
		a.closeLog = closeLog
	}
	logging.Infof("tally %s starting: driver=%s language=%s", cmd.Version, cfg.Driver, i18n.Lang())
	return nil
}

func (a *app) teardown(cmd *cobra.Command, args []string) error {
	logging.Debugf("tally exiting")
	return a.closeLog()
}

func (a *app) screen(v render.Variant) error {
	s := counter.New()
	if err := a.run(a.config.Driver, v, s); err != nil {
		logging.Errorf("%s screen failed: %v", v, err)
		// the post-run hook is skipped on error
		_ = a.closeLog()
		return err
	}
	logging.Infof("%s screen closed at value %d", v, s.Value())
	return nil
}

func compositeVersion(v, c, d string) string {
	out := v
	if c != "" && c != "dev" {
		out = out + " (" + c + ")"
	}
	if d != "" {
		out = out + " built: " + d
	}
	return out
}

// resolveBuildVersion prefers the linker-injected version, then the module
// version recorded by the Go toolchain.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := buildvars.VersionOrDefault("dev")
	resolvedCommit := gitCommit
	resolvedDate := buildDate

	if info == nil {
		if local, ok := debug.ReadBuildInfo(); ok {
			info = local
		}
	}
	if info == nil {
		return resolvedVersion, resolvedCommit, resolvedDate
	}

	if resolvedVersion == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		resolvedVersion = info.Main.Version
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if s.Value != "" {
				resolvedCommit = s.Value[:min(len(s.Value), 7)]
			}
		case "vcs.time":
			if s.Value != "" {
				resolvedDate = s.Value
			}
		}
	}
	return resolvedVersion, resolvedCommit, resolvedDate
}
