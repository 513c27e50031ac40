package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	requesterFixture  = filepath.Join("..", "..", "testdata", "profiles", "requester.json")
	candidatesFixture = filepath.Join("..", "..", "testdata", "profiles", "candidates.json")
)

// getBinaryPath returns the path to the lingua_match binary for testing
func getBinaryPath(t *testing.T) string {
	binaryName := "lingua_match"
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", binaryName)
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'go build -o bin/lingua_match ./cmd/lingua_match'", binaryPath)
	}

	return binaryPath
}

// execute runs the root command in-process with flag variables reset to their defaults.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	configPath, verbose = "", false
	rankRequester, rankCandidates, rankOutput, rankTop = "", "", "", 0
	scoreA, scoreB, scoreExplain = "", "", false
	feedUser, feedTop = "", 0
	importInput, importIncomplete = "", false

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err = rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
