package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/rileyhilliard/spin/internal/errors"
	"github.com/rileyhilliard/spin/internal/roster"
	"github.com/rileyhilliard/spin/internal/selection"
	"github.com/rileyhilliard/spin/internal/ui"
	"github.com/rileyhilliard/spin/internal/util"
	"github.com/rileyhilliard/spin/internal/wheel"
	"github.com/spf13/cobra"
)

// ExitNoWinner is the exit code when a spin finishes without a winner.
const ExitNoWinner = 2

// pickOptions holds options for the pick command.
type pickOptions struct {
	JSON      bool // Print a JSON envelope instead of text
	NoAnimate bool // Skip the line spinner even on a terminal
}

var pickOpts pickOptions

var pickCmd = &cobra.Command{
	Use:   "pick [names...]",
	Short: "Pick a winner without the interactive wheel",
	Long: `Spin once and print the winner.

With no names on the command line or in the config, pick prompts for them
when stdin is a terminal.`,
	Example: `  spin pick Alice Bob Carol
  spin pick --json --seed 7 Alice Bob`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSession(cmd, args)
		if err != nil {
			return err
		}
		return runPick(cmd.Context(), cmd.OutOrStdout(), s, pickOpts)
	},
}

func init() {
	rootCmd.AddCommand(pickCmd)
	pickCmd.Flags().BoolVar(&pickOpts.JSON, "json", false, "output the result as JSON")
	pickCmd.Flags().BoolVar(&pickOpts.NoAnimate, "no-animate", false, "skip the spinner animation")
}

// PickResult is the data payload of `spin pick --json`.
type PickResult struct {
	Winner     string   `json:"winner"`
	Index      int      `json:"index"`
	SpinID     string   `json:"spin_id"`
	Entries    []string `json:"entries"`
	Seed       *uint64  `json:"seed,omitempty"`
	DurationMs int64    `json:"duration_ms"`
}

// runPick spins once and reports the winner to out.
func runPick(ctx context.Context, out io.Writer, s *session, opts pickOptions) error {
	if len(s.Names) == 0 && !opts.JSON && stdinIsTerminal() {
		names, err := promptNames()
		if err != nil {
			return err
		}
		s.Names = names
	}

	w := s.newWheel(s.Log)
	s.Log.Debug("picking from %s", util.JoinOrNone(w.Names()))
	spin, err := w.Spin()
	if err != nil {
		err = spinError(err, w.Len())
		if opts.JSON {
			if werr := WriteJSONFromError(out, err); werr != nil {
				return werr
			}
			return errors.NewExitError(1)
		}
		return err
	}

	animate := !opts.JSON && !opts.NoAnimate && stdoutIsTerminal()
	var spinner *ui.Spinner
	if animate {
		spinner = ui.NewSpinner("Spinning")
		spinner.SetOutput(func(line string) { fmt.Fprint(out, line) })
		spinner.SetCycle(labels(w), ui.Palette(s.Config.Palette))
		spinner.Start()

		if err := wait(ctx, s.Config.Spin.Duration); err != nil {
			spinner.Fail("Cancelled")
			return errors.WrapWithCode(err, errors.ErrInput,
				"Spin cancelled",
				"Run the pick again, or use --no-animate to skip the wait")
		}
	}

	winner, _ := w.Finish(spin)
	history := w.History()
	result := history[len(history)-1]

	if opts.JSON {
		data := PickResult{
			Winner:     winner,
			Index:      result.Index,
			SpinID:     result.SpinID,
			Entries:    w.Names(),
			DurationMs: result.Duration().Milliseconds(),
		}
		if s.Seeded {
			seed := s.Seed
			data.Seed = &seed
		}
		if err := WriteJSONSuccess(out, data); err != nil {
			return err
		}
	} else if spinner != nil {
		if result.HasWinner() {
			spinner.Success("The winner is " + winner)
		} else {
			spinner.Fail("No winner")
		}
	} else {
		fmt.Fprintln(out, winner)
	}

	if !result.HasWinner() {
		return errors.NewExitError(ExitNoWinner)
	}
	return nil
}

// spinError turns a rejected spin into a user-facing error.
func spinError(err error, have int) error {
	if errors.Is(err, selection.ErrNotEnoughEntries) {
		return errors.WrapWithCode(err, errors.ErrRoster,
			fmt.Sprintf("Need at least %d names to spin, got %s", selection.MinEntries, util.Count(have, "name", "names")),
			"Pass names as arguments, with --name, or under names: in .spin.yaml")
	}
	return errors.Wrap(err, "Couldn't start the spin")
}

// labels returns the truncated sector labels for the spinner line.
func labels(w *wheel.Wheel) []string {
	entries := w.View().Entries
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Label
	}
	return out
}

// wait sleeps for d unless ctx is cancelled first.
func wait(ctx context.Context, d time.Duration) error {
	if ctx == nil {
		ctx = context.Background()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// countNames is how many distinct names raw would put on the wheel.
func countNames(raw string) int {
	return roster.New(splitNames(raw)...).Len()
}

// promptNames asks for names with a huh form.
func promptNames() ([]string, error) {
	var raw string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Who's on the wheel?").
				Description("One name per line, or separate them with commas").
				Placeholder("Alice\nBob\nCarol").
				Value(&raw).
				Validate(func(s string) error {
					if countNames(s) < selection.MinEntries {
						return fmt.Errorf("enter at least %d names", selection.MinEntries)
					}
					return nil
				}),
		),
	)

	if err := form.Run(); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrInput,
			"Failed to get names",
			"Pass names as arguments instead: spin pick Alice Bob")
	}
	return splitNames(raw), nil
}
