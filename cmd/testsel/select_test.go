package main

import (
	"strings"
	"testing"

	"github.com/ivoronin/testsel/internal/testutil"
)

const testCatalog = "testdata/tests.yaml"

func TestSelectCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		args         []string
		wantSubstrs  []string
		notSubstrs   []string
		wantExitCode int
	}{
		{
			name:         "no rules selects everything",
			args:         []string{"select", "-c", testCatalog},
			wantSubstrs:  []string{"TEST", "SELECTED", "REASON", "login.valid", "login.flaky", "report.export"},
			wantExitCode: ExitSuccess,
		},
		{
			name:         "include and exclude",
			args:         []string{"select", "-c", testCatalog, "-i", "priority lt 3", "-e", "unstable"},
			wantSubstrs:  []string{"login.valid"},
			notSubstrs:   []string{"login.flaky", "report.export"},
			wantExitCode: ExitSuccess,
		},
		{
			name:         "show all",
			args:         []string{"select", "-c", testCatalog, "-e", "unstable", "-a"},
			wantSubstrs:  []string{"login.flaky", "excluded by unstable EQUAL true"},
			wantExitCode: ExitSuccess,
		},
		{
			name:         "container intersection",
			args:         []string{"select", "-c", testCatalog, "-i", "with envs prod, qa"},
			wantSubstrs:  []string{"report.export"},
			notSubstrs:   []string{"login.valid"},
			wantExitCode: ExitSuccess,
		},
		{
			name:         "all combinator",
			args:         []string{"select", "-c", testCatalog, "--combinator", "all", "-i", "with tags login", "-i", "app_version ge 2.0.0"},
			wantSubstrs:  []string{"login.valid", "included by all of 2 rules"},
			notSubstrs:   []string{"login.flaky"},
			wantExitCode: ExitSuccess,
		},
		{
			name:         "json output",
			args:         []string{"select", "-c", testCatalog, "-j", "-i", "owner = billing"},
			wantSubstrs:  []string{`"id": "report.export"`, `"selected": true`},
			wantExitCode: ExitSuccess,
		},
		{
			name:         "yaml output",
			args:         []string{"select", "-c", testCatalog, "-o", "yaml", "-i", "owner = billing"},
			wantSubstrs:  []string{"id: report.export"},
			wantExitCode: ExitSuccess,
		},
		{
			name:         "nothing selected",
			args:         []string{"select", "-c", testCatalog, "-i", "priority gt 10"},
			wantExitCode: ExitNoneSelected,
		},
		{
			name:         "invalid rule",
			args:         []string{"select", "-c", testCatalog, "-i", "unstable gt true"},
			wantExitCode: ExitInputError,
		},
		{
			name:         "missing catalog",
			args:         []string{"select", "-c", "testdata/missing.yaml"},
			wantExitCode: ExitInputError,
		},
		{
			name:         "bad combinator",
			args:         []string{"select", "-c", testCatalog, "--combinator", "xor"},
			wantExitCode: ExitInputError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result := testutil.RunCLI(t, tt.args...)

			if result.ExitCode != tt.wantExitCode {
				t.Errorf("exit code = %d, want %d\nstderr: %s", result.ExitCode, tt.wantExitCode, result.Stderr)
			}
			for _, substr := range tt.wantSubstrs {
				if !strings.Contains(result.Stdout, substr) {
					t.Errorf("stdout should contain %q, got:\n%s", substr, result.Stdout)
				}
			}
			for _, substr := range tt.notSubstrs {
				if strings.Contains(result.Stdout, substr) {
					t.Errorf("stdout should not contain %q, got:\n%s", substr, result.Stdout)
				}
			}
		})
	}
}

func TestSelectCommand_InvalidRuleMessage(t *testing.T) {
	t.Parallel()
	result := testutil.RunCLI(t, "select", "-c", testCatalog, "-i", "unstable gt true")

	if !strings.Contains(result.Stderr, "invalid selection rule") {
		t.Errorf("stderr should name the rule error, got:\n%s", result.Stderr)
	}
	if !strings.Contains(result.Stderr, "unstable") {
		t.Errorf("stderr should name the property, got:\n%s", result.Stderr)
	}
}
