package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/idilsaglam/kanban/internal/config"
	"github.com/idilsaglam/kanban/internal/logging"
	"github.com/idilsaglam/kanban/internal/source"
	"github.com/idilsaglam/kanban/internal/ui"
)

// Exit codes: 0 ok, 1 error, 2 usage.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// usageError marks failures caused by bad flags or configuration values.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

// env is what every subcommand receives after the root pre-run.
type env struct {
	cfg    *config.Config
	log    *zap.Logger
	stdout io.Writer
	stderr io.Writer
}

// newRootCmd builds the command tree.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	e := &env{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "kanban",
		Short: "Terminal kanban board for a remote ticket feed",
		Long: `kanban fetches tickets once from an HTTP endpoint (or a local file),
groups them by status, assignee or priority, orders them by priority or
title, and draws them as columns.

Run without a subcommand to open the interactive board.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if e.log != nil {
				_ = e.log.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBoard(cmd.Context(), e)
		},
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})
	root.SetOut(stdout)
	root.SetErr(stderr)

	f := root.PersistentFlags()
	f.StringP("config", "c", "", "config file (default is $XDG_CONFIG_HOME/kanban/config.yaml)")
	f.String("url", "", "ticket endpoint URL")
	f.String("file", "", "read tickets from a local JSON file instead of the endpoint")
	f.StringP("group", "g", "", "grouping: status, user or priority")
	f.StringP("order", "o", "", "ordering: priority or title")
	f.String("theme", "", "color theme: classic, neon or mono")
	f.String("log-level", "", "log level: debug, info, warn or error")
	f.String("log-file", "", "write logs to this file")
	f.Bool("no-color", false, "disable colors")
	f.Bool("force-color", false, "emit colors even when stdout is not a terminal")

	root.AddCommand(newBoardCmd(e), newListCmd(e), newExportCmd(e), newVersionCmd(e))
	return root
}

// flagKeys maps persistent flags to config keys.
var flagKeys = map[string]string{
	"url":       "source.url",
	"file":      "source.file",
	"group":     "board.grouping",
	"order":     "board.ordering",
	"theme":     "ui.theme",
	"log-level": "logging.level",
	"log-file":  "logging.file",
}

func (e *env) setup(cmd *cobra.Command) error {
	flags := cmd.Flags()
	cfgFile, _ := flags.GetString("config")
	if err := config.Init(cfgFile); err != nil {
		return usageError{fmt.Errorf("config: %w", err)}
	}
	var bindErr error
	flags.VisitAll(func(fl *pflag.Flag) {
		if k, ok := flagKeys[fl.Name]; ok && fl.Changed {
			if err := viper.BindPFlag(k, fl); err != nil {
				bindErr = errors.Join(bindErr, err)
			}
		}
	})
	if bindErr != nil {
		return bindErr
	}

	cfg, err := config.Load()
	if err != nil {
		return usageError{err}
	}
	e.cfg = cfg

	ui.SetTheme(cfg.UI.Theme)
	noColor, _ := flags.GetBool("no-color")
	forceColor, _ := flags.GetBool("force-color")
	ui.SetColorForcing(forceColor, noColor)

	log, err := logging.New(logging.Options{
		Level: cfg.Logging.Level,
		File:  cfg.Logging.File,
		Quiet: isInteractive(cmd),
	})
	if err != nil {
		return err
	}
	e.log = log.With(zap.String("command", cmd.Name()))
	e.log.Debug("configuration loaded",
		zap.String("config_file", viper.ConfigFileUsed()),
		zap.String("grouping", cfg.Board.Grouping),
		zap.String("ordering", cfg.Board.Ordering))
	return nil
}

func isInteractive(cmd *cobra.Command) bool {
	return cmd.Name() == "kanban" || cmd.Name() == "board"
}

// newSource picks the file source when one is configured.
func (e *env) newSource() source.Source {
	if e.cfg.Source.File != "" {
		return source.File{Path: e.cfg.Source.File}
	}
	h := source.NewHTTP(e.cfg.Source.URL, e.log)
	h.Token = e.cfg.Source.Token
	h.Timeout = e.cfg.Source.Timeout()
	return h
}

// Run executes the CLI and returns an exit code.
func Run(ctx context.Context, args []string) int {
	return run(ctx, args, os.Stdout, os.Stderr)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	// every invocation starts from a clean viper
	viper.Reset()

	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	if err == nil {
		return ExitOK
	}
	ui.Fail(stderr, err.Error())

	var ue usageError
	if errors.As(err, &ue) || isCobraUsage(err) {
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, root.UsageString())
		return ExitUsage
	}
	return ExitError
}

// cobra reports unknown commands and argument count problems as plain errors
func isCobraUsage(err error) bool {
	msg := err.Error()
	for _, p := range []string{"unknown command", "accepts ", "requires at least", "requires at most"} {
		if strings.Contains(msg, p) {
			return true
		}
	}
	return false
}
