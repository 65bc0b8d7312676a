package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/viper"
)

// executeCommand runs the root command with args against a fresh HOME and
// returns everything written to stdout.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	return runCommand(t, args...)
}

// runCommand runs the root command with args using the current HOME.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out, _, err := runCommandStderr(t, args...)
	return out, err
}

// runCommandStderr is runCommand that also returns stderr.
func runCommandStderr(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("ISOPRO_HOME", "")

	viper.Reset()
	t.Cleanup(viper.Reset)
	resetFlags()

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func resetFlags() {
	verbose = false
	listTagFilter, listVersionFilter, listJSON = "", "", false
	searchTagFilter, searchJSON = "", false
	showVersion = ""
	versionShort, versionJSON = false, false
}
