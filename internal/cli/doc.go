// Package cli implements the spin command-line interface.
//
// Commands are Cobra commands that load configuration, build a wheel.Wheel
// and hand it to either the interactive picker or the headless pick:
//
//	spin [names...]        - Open the interactive wheel
//	spin pick [names...]   - Pick a winner and print it (--json for scripts)
//	spin init [names...]   - Create .spin.yaml with defaults
//	spin version           - Print version information
//	spin completion        - Generate shell completions
//
// # Names
//
// Names are collected in order from the config file (names, then
// names_file), repeated --name flags, and positional arguments. Duplicates
// and blank entries are dropped by the roster.
//
// # Flag Handling
//
// Global flags (--config, --seed, --no-color, --verbose, --name) are
// defined on the root command and available to all subcommands. A --seed
// (or seed in the config) makes every spin of the run reproducible.
//
// # Output
//
// When stdout is not a terminal the root command falls back to a headless
// pick, so `spin Alice Bob | tee winner.txt` prints a single name.
package cli
