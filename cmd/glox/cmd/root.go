package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ltungv/lox/gloxfront/internal/config"
	"github.com/ltungv/lox/gloxfront/internal/lox"
	"github.com/ltungv/lox/gloxfront/internal/runner"
)

// Exit codes, following sysexits.h
const (
	exitOK       = 0
	exitUsage    = 64
	exitDataErr  = 65
	exitSoftware = 70
	exitIOErr    = 74
)

var (
	cfgFile string
	verbose bool
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "glox [script]",
	Short: "Lox expression front end",
	Long: `glox scans and parses Lox expressions and prints their syntax tree.

Without a script it starts an interactive prompt; type "exit" to leave.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, args, "")
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $"+config.EnvConfigPath+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

// usageError marks errors caused by how glox was invoked.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }

func (e *usageError) Unwrap() error { return e.err }

// run loads the configuration and either runs the script named by args or
// starts the prompt. A non-empty mode overrides the configured output mode.
func run(cmd *cobra.Command, args []string, mode string) error {
	cfg, err := loadConfig()
	if err != nil {
		return &usageError{err}
	}
	if mode != "" {
		cfg.Output.Mode = mode
	}
	if noColor {
		cfg.Output.Color = false
	}

	log := newLogger(cmd.ErrOrStderr(), cfg)
	log.WithField("mode", cfg.Output.Mode).Debug("configuration loaded")

	r := runner.New(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr(), log)
	if len(args) == 1 {
		return r.RunFile(args[0])
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	err = r.RunPrompt(ctx, cmd.InOrStdin())
	if errors.Is(err, context.Canceled) {
		// leave the terminal on a fresh line after Ctrl-C
		fmt.Fprintln(cmd.OutOrStdout())
		return nil
	}
	if err != nil {
		return &fs.PathError{Op: "read", Path: "stdin", Err: err}
	}
	return nil
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.Load(cfgFile)
	}
	return config.LoadFromEnv()
}

func newLogger(out io.Writer, cfg *config.Config) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(cfg.LogLevel())
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	log.SetFormatter(&logrus.TextFormatter{
		DisableColors:    !cfg.Output.Color,
		DisableTimestamp: true,
	})
	return log
}

// ExitCode maps the error returned by Execute to a process exit status. Lox
// errors have already been reported when they reach here; anything else is
// printed.
func ExitCode(err error) int {
	if err == nil {
		return exitOK
	}

	var lexErr *lox.LexError
	var syntaxErr *lox.SyntaxError
	var usageErr *usageError
	var pathErr *fs.PathError
	switch {
	case errors.As(err, &lexErr), errors.As(err, &syntaxErr):
		return exitDataErr
	case errors.Is(err, lox.ErrInternal):
		return exitSoftware
	case errors.As(err, &usageErr):
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitUsage
	case errors.As(err, &pathErr):
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitIOErr
	default:
		// cobra argument and flag errors
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Usage: glox [script]")
		return exitUsage
	}
}
