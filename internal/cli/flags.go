package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// GlobalFlags holds the persistent flags shared by every command.
type GlobalFlags struct {
	Config  string
	Seed    uint64
	NoColor bool
	Verbose bool
	Names   []string
}

var globalFlags GlobalFlags

// AddGlobalFlags registers --config, --seed, --no-color, --verbose and --name.
func AddGlobalFlags(cmd *cobra.Command, flags *GlobalFlags) {
	pf := cmd.PersistentFlags()
	pf.StringVarP(&flags.Config, "config", "c", "", "config file (default: .spin.yaml in this or a parent directory)")
	pf.Uint64Var(&flags.Seed, "seed", 0, "seed the random source for reproducible picks")
	pf.BoolVar(&flags.NoColor, "no-color", false, "disable colored output")
	pf.BoolVarP(&flags.Verbose, "verbose", "v", false, "print debug logs")
	pf.StringArrayVarP(&flags.Names, "name", "n", nil, "add a name to the wheel (repeatable)")
}

// seedFromFlags returns the --seed value and whether it was given.
func seedFromFlags(cmd *cobra.Command) (uint64, bool) {
	if f := cmd.Flags().Lookup("seed"); f != nil && f.Changed {
		return globalFlags.Seed, true
	}
	return 0, false
}

// splitNames breaks free text into names on newlines and commas.
func splitNames(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == '\n' || r == ','
	})

	names := make([]string, 0, len(fields))
	for _, f := range fields {
		if name := strings.TrimSpace(f); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// Terminal checks are variables so tests can force either path.
var (
	stdoutIsTerminal = func() bool { return term.IsTerminal(int(os.Stdout.Fd())) }
	stdinIsTerminal  = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }
)
