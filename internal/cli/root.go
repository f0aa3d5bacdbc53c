package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/spin/internal/errors"
	"github.com/rileyhilliard/spin/internal/logger"
	"github.com/rileyhilliard/spin/internal/ui"
	"github.com/spf13/cobra"
)

// debugLogFile receives logs while the interactive wheel owns the terminal.
const debugLogFile = "spin-debug.log"

var rootCmd = &cobra.Command{
	Use:   "spin [names...]",
	Short: "Spin a wheel of names and pick someone at random",
	Long: `spin puts a list of names on a wheel and picks one uniformly at random.

Run it with no arguments to open the interactive wheel, or pass names to
preload them. Use 'spin pick' to get a winner without the animation.`,
	Example: `  spin
  spin Alice Bob Carol
  spin pick --json Alice Bob Carol
  spin --seed 42 pick Alice Bob`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetDebug(globalFlags.Verbose)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSession(cmd, args)
		if err != nil {
			return err
		}
		if !stdoutIsTerminal() {
			return runPick(cmd.Context(), cmd.OutOrStdout(), s, pickOptions{})
		}
		return runWheel(cmd, s)
	},
}

func init() {
	AddGlobalFlags(rootCmd, &globalFlags)
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err == nil {
		return
	}

	if code, ok := errors.GetExitCode(err); ok {
		os.Exit(code)
	}

	fmt.Fprintln(os.Stderr, err)
	if isUsageError(err) {
		fmt.Fprintln(os.Stderr, ui.MutedStyle().Render("Run 'spin --help' for usage."))
	}
	os.Exit(1)
}

// runWheel opens the interactive picker and prints the last winner on exit.
func runWheel(cmd *cobra.Command, s *session) error {
	log := logger.Noop()
	if logger.DebugEnabled() {
		f, err := tea.LogToFile(debugLogFile, "spin")
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrUI,
				"Couldn't open the debug log",
				"Check that the current directory is writable, or unset "+logger.DebugEnv)
		}
		defer f.Close()
		log = logger.NewEnvLogger("[wheel]")
	}

	w := s.newWheel(log)
	model := ui.NewModel(w, ui.Options{
		Palette:      s.Config.Palette,
		SpinDuration: s.Config.Spin.Duration,
		MinTurns:     s.Config.Spin.MinTurns,
		Logger:       log,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	final, err := p.Run()
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrUI,
			"The wheel stopped unexpectedly",
			fmt.Sprintf("Run with %s=1 and check %s", logger.DebugEnv, debugLogFile))
	}

	if m, ok := final.(ui.Model); ok && m.HasWinner() {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.SuccessStyle().Render(ui.SymbolSuccess), m.Winner())
	}
	return nil
}

// isUsageError reports whether err came from cobra's flag or argument parsing.
func isUsageError(err error) bool {
	msg := err.Error()
	for _, prefix := range []string{"unknown flag", "unknown shorthand flag", "flag needs an argument", "invalid argument"} {
		if strings.HasPrefix(msg, prefix) {
			return true
		}
	}
	return false
}
