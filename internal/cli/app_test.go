package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// noConfig returns a --config path that does not exist, so runs pick up
// built-in defaults instead of whatever the host has in ~/.config.
func noConfig(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "absent.yaml")
}

func TestRunJSONDryRun(t *testing.T) {
	t.Parallel()
	target := filepath.Join(t.TempDir(), "crontab")
	var stdout, stderr bytes.Buffer

	code := Run([]string{
		"--config", noConfig(t), "--no-color",
		"--json", "--dry-run", "--file", target, "--next", "2",
		"--comment", "sync", "--env", "MAILTO=ops@example.com",
		"every 15 minutes", "--", "echo", "hi",
	}, &stdout, &stderr)
	if code != ExitOK {
		t.Fatalf("exit = %d, stderr: %s", code, stderr.String())
	}

	var report Report
	if err := json.Unmarshal(stdout.Bytes(), &report); err != nil {
		t.Fatalf("decode report: %v\n%s", err, stdout.String())
	}
	if report.Cron != "*/15 * * * *" {
		t.Fatalf("cron = %q", report.Cron)
	}
	if report.Entry.Command != "echo hi" {
		t.Fatalf("command = %q", report.Entry.Command)
	}
	if report.Entry.Comment != "sync" || len(report.Entry.Env) != 1 {
		t.Fatalf("entry = %+v", report.Entry)
	}
	if !report.DryRun || report.WroteFile {
		t.Fatalf("dry_run=%v wrote_file=%v", report.DryRun, report.WroteFile)
	}
	if report.File != target {
		t.Fatalf("file = %q, want %q", report.File, target)
	}
	if len(report.NextRuns) != 2 {
		t.Fatalf("next_runs = %v", report.NextRuns)
	}
	if _, err := os.Stat(target); !os.IsNotExist(err) {
		t.Fatalf("dry run must not create %q", target)
	}
}

func TestRunWrite(t *testing.T) {
	t.Parallel()
	target := filepath.Join(t.TempDir(), "crontab")
	var stdout, stderr bytes.Buffer

	code := Run([]string{
		"--config", noConfig(t), "--no-color",
		"--write", "--file", target,
		"daily at 5:00", "--", "backup",
	}, &stdout, &stderr)
	if code != ExitOK {
		t.Fatalf("exit = %d, stderr: %s", code, stderr.String())
	}

	b, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	if string(b) != "0 5 * * * backup\n" {
		t.Fatalf("file content = %q", string(b))
	}
	if !strings.Contains(stdout.String(), "0 5 * * *") {
		t.Fatalf("summary missing cron line:\n%s", stdout.String())
	}
	if !strings.Contains(stdout.String(), "written") {
		t.Fatalf("summary missing write status:\n%s", stdout.String())
	}
}

func TestRunParseErrorJSON(t *testing.T) {
	t.Parallel()
	var stdout, stderr bytes.Buffer

	code := Run([]string{
		"--config", noConfig(t), "--no-color", "--json",
		"every 99 minutes", "--", "true",
	}, &stdout, &stderr)
	if code != ExitParse {
		t.Fatalf("exit = %d, want %d", code, ExitParse)
	}
	if stdout.Len() != 0 {
		t.Fatalf("stdout should stay clean on parse errors: %q", stdout.String())
	}

	var report errorReport
	if err := json.Unmarshal(stderr.Bytes(), &report); err != nil {
		t.Fatalf("decode error report: %v\n%s", err, stderr.String())
	}
	if report.Error.Kind != "invalid_interval" {
		t.Fatalf("kind = %q", report.Error.Kind)
	}
	if report.Error.Input == "" || report.Error.Reason == "" {
		t.Fatalf("incomplete error report: %+v", report.Error)
	}
}

func TestRunParseErrorText(t *testing.T) {
	t.Parallel()
	var stdout, stderr bytes.Buffer

	code := Run([]string{
		"--config", noConfig(t), "--no-color",
		"whenever it rains", "--", "true",
	}, &stdout, &stderr)
	if code != ExitParse {
		t.Fatalf("exit = %d, want %d", code, ExitParse)
	}
	if !strings.Contains(stderr.String(), "unsupported phrasing") {
		t.Fatalf("stderr = %q", stderr.String())
	}
}

func TestRunListPatterns(t *testing.T) {
	t.Parallel()
	var stdout, stderr bytes.Buffer

	code := Run([]string{"--config", noConfig(t), "--no-color", "--list-patterns"}, &stdout, &stderr)
	if code != ExitOK {
		t.Fatalf("exit = %d, stderr: %s", code, stderr.String())
	}
	out := stdout.String()
	if !strings.Contains(out, "Supported phrasing samples:") {
		t.Fatalf("missing header:\n%s", out)
	}
	for _, want := range []string{"e.g.", "every 15 minutes", "weekdays"} {
		if !strings.Contains(out, want) {
			t.Fatalf("guide missing %q:\n%s", want, out)
		}
	}
}

func TestRunUsageErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		argv []string
	}{
		{name: "no expression", argv: nil},
		{name: "no command", argv: []string{"daily at 5:00"}},
		{name: "file without write", argv: []string{"--file", "/tmp/ct", "daily at 5:00", "--", "true"}},
		{name: "bad env", argv: []string{"--env", "no-equals", "--dry-run", "daily at 5:00", "--", "true"}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var stdout, stderr bytes.Buffer
			argv := append([]string{"--config", noConfig(t), "--no-color"}, tt.argv...)
			if code := Run(argv, &stdout, &stderr); code != ExitError {
				t.Fatalf("exit = %d, want %d", code, ExitError)
			}
			if stderr.Len() == 0 {
				t.Fatal("expected a diagnostic on stderr")
			}
		})
	}
}
