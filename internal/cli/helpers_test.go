package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/spin/internal/config"
	"github.com/rileyhilliard/spin/internal/logger"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

// isolate runs the test in a fresh git-rooted directory with its own HOME so
// no real config is discovered.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, "work")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".git"), 0755))
	t.Chdir(dir)
	return dir
}

// noTerminal makes both stdin and stdout look piped.
func noTerminal(t *testing.T) {
	t.Helper()
	setTerminal(t, false, false)
}

func setTerminal(t *testing.T, stdin, stdout bool) {
	t.Helper()
	origIn, origOut := stdinIsTerminal, stdoutIsTerminal
	stdinIsTerminal = func() bool { return stdin }
	stdoutIsTerminal = func() bool { return stdout }
	t.Cleanup(func() {
		stdinIsTerminal, stdoutIsTerminal = origIn, origOut
	})
}

// resetGlobals clears flag state shared through package variables.
func resetGlobals(t *testing.T) {
	t.Helper()
	origProfile := lipgloss.ColorProfile()
	t.Cleanup(func() {
		globalFlags = GlobalFlags{}
		pickOpts = pickOptions{}
		initOpts = InitOptions{}
		lipgloss.SetColorProfile(origProfile)
	})
	globalFlags = GlobalFlags{}
}

// newFlagCmd returns a command with the global flags parsed from args.
func newFlagCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	resetGlobals(t)
	cmd := &cobra.Command{Use: "spin"}
	AddGlobalFlags(cmd, &globalFlags)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}

func testSession(names ...string) *session {
	cfg := config.DefaultConfig()
	cfg.Spin.Duration = 10 * time.Millisecond
	return &session{
		Config: cfg,
		Names:  names,
		Log:    logger.Noop(),
	}
}
