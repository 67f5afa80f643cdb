// Package testutil runs the built testsel binary for end-to-end tests.
package testutil

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"strings"
	"testing"
)

// ExecResult holds the result of a CLI command execution.
type ExecResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// binaryPaths are tried in order: the project root, then two levels up
// from cmd/testsel.
var binaryPaths = []string{"./testsel", "../../testsel"}

// RunCLI executes the testsel binary with the given arguments and returns the result.
// The binary must be built before running tests (use make build); the test
// is skipped when it is missing.
func RunCLI(tb testing.TB, args ...string) ExecResult {
	tb.Helper()

	binary := findBinary()
	if binary == "" {
		tb.Skip("testsel binary not found - run 'make build' first")
	}

	cmd := exec.Command(binary, args...)
	cmd.Env = cleanEnv()
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitCode := 0
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	} else if err != nil {
		tb.Fatalf("failed to run testsel: %v", err)
	}

	return ExecResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}

func findBinary() string {
	for _, p := range binaryPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// cleanEnv drops TESTSEL_* variables so the caller's settings do not leak
// into the run.
func cleanEnv() []string {
	var env []string
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, "TESTSEL_") {
			continue
		}
		env = append(env, kv)
	}
	return env
}
