package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"textquiz/internal/config"
	"textquiz/internal/logger"
	"textquiz/internal/quiz"
)

// ErrUsage is returned when the mode or the file name is missing.
var ErrUsage = errors.New("usage: quiz <run|create> <filename>")

// UsageExitCode is the process status for a missing mode or file name.
const UsageExitCode = -1

// App dispatches `quiz <mode> <filename>` to its Actions. When no Actions
// are injected they are built from the loaded configuration on first use.
type App struct {
	in      io.Reader
	out     io.Writer
	errOut  io.Writer
	log     zerolog.Logger
	actions *Actions
}

func NewApp(in io.Reader, out, errOut io.Writer) *App {
	return &App{
		in:     in,
		out:    out,
		errOut: errOut,
		log:    zerolog.Nop(),
	}
}

// WithActions replaces the configured actions, mainly for tests.
func (a *App) WithActions(actions Actions) *App {
	a.actions = &actions
	return a
}

// Main runs the CLI with args (without the program name) and returns the
// process exit code.
func Main(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	return NewApp(in, out, errOut).Execute(ctx, args)
}

func (a *App) Execute(ctx context.Context, args []string) int {
	root := a.Command()
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrUsage):
		return UsageExitCode
	default:
		fmt.Fprintln(a.errOut, "error:", err)
		return 1
	}
}

// Command builds a fresh command tree bound to this App.
func (a *App) Command() *cobra.Command {
	root := &cobra.Command{
		Use:   "quiz <mode> <filename>",
		Short: "Take and write plain-text quizzes",
		Long: `quiz presents the questions of a plain-text quiz file and reports a score,
or interactively writes new questions to a quiz file.

Each line of a quiz file is one question:
  TF,<statement>,<T|F>
  MC,<question>,<correct choice number>,<choice 1>,<choice 2>,...`,
		Args:              requireArgs(2),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE:              a.ignoreMode,
	}
	root.CompletionOptions.DisableDefaultCmd = true
	// "help" is just another unknown mode.
	root.SetHelpCommand(&cobra.Command{
		Use:    "help <filename>",
		Hidden: true,
		Args:   requireArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.ignoreMode(cmd, append([]string{cmd.Name()}, args...))
		},
	})
	root.SetIn(a.in)
	root.SetOut(a.out)
	root.SetErr(a.errOut)
	root.PersistentFlags().String("config", "", "path to a YAML config file (default $QUIZ_CONFIG)")

	root.AddCommand(
		a.runCommand(),
		a.createCommand(),
		a.importCommand(),
		a.historyCommand(),
	)
	return root
}

func (a *App) runCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run <filename>",
		Short: "Take the quiz in a file",
		Args:  requireArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.actions.Run(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "You have %d/%d (%s%%) correct.\n",
				result.Correct, result.Total, formatPercentage(result))
			return nil
		},
	}
}

func (a *App) createCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create <filename>",
		Short: "Write new questions and append them to a file",
		Args:  requireArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := a.actions.Create(cmd.Context(), args[0])
			return err
		},
	}
}

func (a *App) importCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <filename>",
		Short: "Append questions from OpenTriviaDB to a file",
		Args:  requireArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, _ := cmd.Flags().GetInt("amount")
			summary, err := a.actions.Import(cmd.Context(), args[0], amount)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Imported %d questions into %s", summary.Imported, args[0])
			if summary.Skipped > 0 {
				fmt.Fprintf(a.out, " (%d skipped)", summary.Skipped)
			}
			fmt.Fprintln(a.out)
			return nil
		},
	}
	cmd.Flags().IntP("amount", "n", 0, "number of questions to fetch (default from config)")
	return cmd
}

func (a *App) historyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history <filename>",
		Short: "List previous runs of a quiz file",
		Args:  requireArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")
			runs, err := a.actions.History(cmd.Context(), args[0], limit)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Fprintf(a.out, "No runs recorded for %s\n", args[0])
				return nil
			}
			for _, run := range runs {
				result := quiz.Result{Total: run.Total, Correct: run.Correct}
				fmt.Fprintf(a.out, "%s  %d/%d (%s%%)\n",
					run.EndedAt.Local().Format("2006-01-02 15:04:05"),
					run.Correct, run.Total, formatPercentage(result))
			}
			return nil
		},
	}
	cmd.Flags().IntP("limit", "l", 10, "maximum number of runs to list")
	return cmd
}

func (a *App) ignoreMode(_ *cobra.Command, args []string) error {
	a.log.Debug().Str("mode", args[0]).Msg("unrecognized mode, nothing to do")
	return nil
}

// setup loads configuration and builds the default actions unless actions
// were injected.
func (a *App) setup(cmd *cobra.Command, _ []string) error {
	if a.actions != nil {
		return nil
	}

	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	a.log = logger.Setup(cfg.LogLevel, cfg.LogFormat, a.errOut)
	a.log.Debug().Str("command", cmd.Name()).Msg("configuration loaded")

	actions := NewActions(cfg, a.log, a.in, a.out)
	a.actions = &actions
	return nil
}

// requireArgs reports a missing positional argument as ErrUsage. Extra
// arguments are ignored.
func requireArgs(n int) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) < n {
			return ErrUsage
		}
		return nil
	}
}

func formatPercentage(result quiz.Result) string {
	return strconv.FormatFloat(result.Percentage(), 'f', -1, 64)
}
