package main

// Notes:
// - print*Usage: we test that required content strings are present in the
//   output. We don't test exact formatting as that's an implementation detail.
// - runHelp: we test routing to the correct help topic.
// - Every flag registered by a parser must be documented; we check this by
//   walking the flag sets.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"bytes"
	"io"
	"strings"
	"testing"

	flag "github.com/spf13/pflag"
)

// ---------------------------------------------------------------------------
// TestPrintUsage - Main usage output
// ---------------------------------------------------------------------------

func TestPrintUsage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printUsage(&buf)

	for _, cmd := range commands {
		if !strings.Contains(buf.String(), cmd) {
			t.Errorf("printUsage output should mention %q", cmd)
		}
	}
	if !strings.Contains(buf.String(), "woff2css <font.woff>") {
		t.Error("printUsage output should document the short embed form")
	}
}

// ---------------------------------------------------------------------------
// TestCommandUsage_DocumentsEveryFlag - Help stays in sync with flags
// ---------------------------------------------------------------------------

func TestCommandUsage_DocumentsEveryFlag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		usage func(io.Writer)
		flags *flag.FlagSet
	}{
		{"embed", printEmbedUsage, embedFlagSet(&embedFlags{}, io.Discard)},
		{"batch", printBatchUsage, batchFlagSet(&batchFlags{}, io.Discard)},
		{"specimen", printSpecimenUsage, specimenFlagSet(&specimenFlags{}, io.Discard)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			tt.usage(&buf)
			tt.flags.VisitAll(func(f *flag.Flag) {
				if !strings.Contains(buf.String(), "--"+f.Name) {
					t.Errorf("%s usage does not document --%s", tt.name, f.Name)
				}
			})
		})
	}
}

// ---------------------------------------------------------------------------
// TestRunHelp - Topic routing
// ---------------------------------------------------------------------------

func TestRunHelp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		want     int
		contains string
	}{
		{"no topic", nil, ExitSuccess, "Commands:"},
		{"embed", []string{"embed"}, ExitSuccess, "Usage: woff2css embed"},
		{"batch", []string{"batch"}, ExitSuccess, "--combined-dir"},
		{"specimen", []string{"specimen"}, ExitSuccess, "--asset-path"},
		{"config", []string{"config"}, ExitSuccess, "WOFF2CSS_FAMILY"},
		{"command without topic", []string{"version"}, ExitSuccess, "Commands:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, _ := newTestEnv()
			if got := runHelp(tt.args, env); got != tt.want {
				t.Errorf("runHelp(%v) = %d, want %d", tt.args, got, tt.want)
			}
			if !strings.Contains(stdout.String(), tt.contains) {
				t.Errorf("runHelp(%v) output should contain %q", tt.args, tt.contains)
			}
		})
	}
}

func TestRunHelp_UnknownTopic(t *testing.T) {
	t.Parallel()

	env, stdout, stderr := newTestEnv()
	if got := runHelp([]string{"convert"}, env); got != ExitUsage {
		t.Errorf("runHelp() = %d, want %d", got, ExitUsage)
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout = %q, want empty", stdout.String())
	}
	if !strings.Contains(stderr.String(), "unknown command: convert") {
		t.Errorf("stderr = %q", stderr.String())
	}
}
