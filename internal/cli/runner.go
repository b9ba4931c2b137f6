package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/idilsaglam/packlist/internal/config"
	"github.com/idilsaglam/packlist/internal/logging"
	"github.com/idilsaglam/packlist/internal/replay"
	"github.com/idilsaglam/packlist/internal/session"
	"github.com/idilsaglam/packlist/internal/store"
	"github.com/idilsaglam/packlist/internal/tui"
	"github.com/idilsaglam/packlist/internal/ui"
	"github.com/idilsaglam/packlist/internal/view"
)

// Exit codes: 0 ok, 1 error, 2 usage.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// usageError marks mistakes in how the command was invoked.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func usage(args cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, a []string) error {
		if err := args(cmd, a); err != nil {
			return usageError{err}
		}
		return nil
	}
}

// Options tune behavior from root flags.
type Options struct {
	ConfigPath string
	EnvFile    string
	Theme      string
	Sort       string
	Verbose    bool
}

// app carries what PersistentPreRunE prepared for the subcommands.
type app struct {
	opt   Options
	cfg   *config.Config
	order view.SortOrder
	log   *zap.Logger

	// runTUI is swapped out in tests.
	runTUI func(*session.Session, *zap.Logger) error
}

// newSession starts every run with an empty list.
func (a *app) newSession() *session.Session {
	return session.New(store.New(store.WithLogger(a.log.Named("store"))), a.order, a.log.Named("session"))
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop(), runTUI: tui.Run}
	return newRootCmd(a)
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "packlist",
		Short: "packlist - a vacation packing checklist",
		Long: `packlist keeps a packing checklist for the current session.

Run without arguments to open the interactive list:
  a        add an item (↑/↓ picks the quantity 1-10)
  space    mark the selected item packed / unpacked
  d        delete the selected item
  s        switch between input order and description order
  C        clear the whole list
  q        quit

Nothing is saved: the list is gone when you quit.`,
		Args:          usage(cobra.NoArgs),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.prepare(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := a.newSession()
			defer sess.Close()
			a.log.Info("session started", zap.Stringer("sort", a.order))
			if err := a.runTUI(sess, a.log.Named("tui")); err != nil {
				return fmt.Errorf("tui: %w", err)
			}
			a.log.Info("session ended", zap.Int("items", sess.Store().Snapshot().Len()))
			return nil
		},
	}
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error { return usageError{err} })

	pf := root.PersistentFlags()
	pf.StringVar(&a.opt.ConfigPath, "config", config.DefaultPath, "config file (YAML)")
	pf.StringVar(&a.opt.EnvFile, "env-file", ".env", "dotenv file with PACKLIST_* overrides")
	pf.StringVar(&a.opt.Theme, "theme", "", "color theme: classic, neon or mono")
	pf.StringVar(&a.opt.Sort, "sort", "", "initial order: input or description")
	pf.BoolVarP(&a.opt.Verbose, "verbose", "v", false, "debug logging (needs logging.file)")

	root.AddCommand(newReplayCmd(a))
	return root
}

func newReplayCmd(a *app) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "replay <script.yaml>",
		Short: "Apply a scripted sequence of list events and print the result",
		Long: `Reads a YAML script of events and prints the final list.

Example script:
  sort: description
  events:
    - add: {description: Passport, quantity: 1, ref: passport}
    - add: {description: Sunscreen, quantity: 2, ref: sunscreen}
    - toggle: passport
    - delete: sunscreen
    - sort: input
    - clear: true`,
		Args: usage(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			script, err := replay.Load(args[0])
			if err != nil {
				return err
			}
			sess := a.newSession()
			defer sess.Close()
			if err := replay.NewRunner(sess, a.log.Named("replay")).Run(script); err != nil {
				return err
			}
			f := sess.Frame()
			a.log.Info("replay finished",
				zap.String("script", args[0]),
				zap.Int("events", len(script.Events)),
				zap.Int("items", len(f.Items)))
			out := cmd.OutOrStdout()
			if asJSON {
				return replay.WriteJSON(out, f)
			}
			fmt.Fprintln(out, ui.Panel(ui.FrameLines(f)))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the final frame as JSON")
	return cmd
}

// prepare loads config, applies flag overrides and builds the logger.
func (a *app) prepare(cmd *cobra.Command) error {
	if err := config.LoadEnvFile(a.opt.EnvFile); err != nil {
		return err
	}
	cfg, err := config.Load(a.opt.ConfigPath)
	if err != nil {
		return err
	}
	if a.opt.Theme != "" {
		cfg.Theme = a.opt.Theme
	}
	if a.opt.Sort != "" {
		cfg.Sort = a.opt.Sort
	}
	if err := ui.SetTheme(cfg.Theme); err != nil {
		return err
	}
	order, err := view.ParseSortOrder(cfg.Sort)
	if err != nil {
		return err
	}
	log, err := logging.New(logging.Options{
		Level:   cfg.Logging.Level,
		File:    cfg.Logging.File,
		Verbose: a.opt.Verbose,
	})
	if err != nil {
		return err
	}
	a.cfg, a.order, a.log = cfg, order, log
	a.log.Debug("config loaded",
		zap.String("path", a.opt.ConfigPath),
		zap.String("theme", cfg.Theme),
		zap.Stringer("sort", order))
	return nil
}

// Run executes the command line and returns an exit code.
func Run(args []string) int {
	return run(NewRootCmd(), args, os.Stdout, os.Stderr)
}

func run(root *cobra.Command, args []string, stdout, stderr io.Writer) int {
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	cmd, err := root.ExecuteC()
	if err == nil {
		return ExitOK
	}
	ui.FprintFail(stderr, err.Error())
	var ue usageError
	if errors.As(err, &ue) {
		if cmd == nil {
			cmd = root
		}
		fmt.Fprintln(stderr)
		_ = cmd.Usage()
		return ExitUsage
	}
	return ExitError
}
