package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/rileyhilliard/spin/internal/config"
	"github.com/rileyhilliard/spin/internal/errors"
	"github.com/rileyhilliard/spin/internal/roster"
	"github.com/rileyhilliard/spin/internal/ui"
	"github.com/rileyhilliard/spin/internal/util"
	"github.com/spf13/cobra"
)

// InitOptions holds options for the init command.
type InitOptions struct {
	Path           string   // Where to write; defaults to ./.spin.yaml
	Names          []string // Names to seed the config with
	Overwrite      bool     // Overwrite existing config without asking
	NonInteractive bool     // Never prompt
}

var initOpts InitOptions

var initCmd = &cobra.Command{
	Use:   "init [names...]",
	Short: "Create a .spin.yaml config file",
	Long: `Create a .spin.yaml in the current directory with default settings.

Any names given are saved under names: and loaded every time spin starts here.`,
	Example: `  spin init
  spin init Alice Bob Carol`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := initOpts
		opts.Names = append(append([]string{}, globalFlags.Names...), args...)
		if !stdinIsTerminal() {
			opts.NonInteractive = true
		}
		return Init(cmd.OutOrStdout(), opts)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVarP(&initOpts.Overwrite, "force", "f", false, "overwrite an existing config without asking")
	initCmd.Flags().BoolVar(&initOpts.NonInteractive, "non-interactive", false, "never prompt")
}

// Init creates a new .spin.yaml configuration file.
func Init(out io.Writer, opts InitOptions) error {
	path := opts.Path
	if path == "" {
		path = filepath.Join(".", config.ConfigFileName)
	}

	if _, err := os.Stat(path); err == nil && !opts.Overwrite {
		if opts.NonInteractive {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", path),
				"Use --force to overwrite")
		}

		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", filepath.Base(path))).
					Value(&overwrite),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrInput,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}
		if !overwrite {
			fmt.Fprintln(out, "Cancelled.")
			return nil
		}
	}

	cfg := config.DefaultConfig()
	cfg.Names = roster.New(opts.Names...).List()

	if err := config.Write(path, cfg); err != nil {
		return err
	}

	fmt.Fprintf(out, "%s Created %s", ui.SuccessStyle().Render(ui.SymbolSuccess), path)
	if n := len(cfg.Names); n > 0 {
		fmt.Fprintf(out, " with %s", util.Count(n, "name", "names"))
	}
	fmt.Fprintln(out)
	return nil
}
