package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/showreel/internal/logger"
)

func executeCommand(root *cobra.Command, args ...string) (string, error) {
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func writeDeck(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deck.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func testApp() *AppContext {
	return &AppContext{Log: logger.Nop()}
}

// stubPlayRunner replaces the TUI runner for the duration of a test and records what it
// was called with.
func stubPlayRunner(t *testing.T) *[]playOptions {
	t.Helper()
	calls := &[]playOptions{}
	original := playCmdRunner
	playCmdRunner = func(app *AppContext, opts playOptions, _ io.Writer) error {
		*calls = append(*calls, opts)
		return nil
	}
	t.Cleanup(func() { playCmdRunner = original })
	return calls
}
