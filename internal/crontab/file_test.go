package crontab

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAppendCreatesFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "nested", "crontab")
	if err := Append(path, "# job\n0 5 * * * backup"); err != nil {
		t.Fatalf("Append error: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	if string(b) != "# job\n0 5 * * * backup\n" {
		t.Fatalf("unexpected content: %q", string(b))
	}
}

func TestAppendAfterUnterminatedLine(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "crontab")
	if err := os.WriteFile(path, []byte("0 1 * * * old"), 0o644); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}
	if err := Append(path, "0 2 * * * new"); err != nil {
		t.Fatalf("Append error: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	if string(b) != "0 1 * * * old\n0 2 * * * new\n" {
		t.Fatalf("unexpected content: %q", string(b))
	}
}

func TestAppendAfterTerminatedLine(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "crontab")
	if err := os.WriteFile(path, []byte("0 1 * * * old\n"), 0o644); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}
	if err := Append(path, "0 2 * * * new"); err != nil {
		t.Fatalf("Append error: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	if string(b) != "0 1 * * * old\n0 2 * * * new\n" {
		t.Fatalf("unexpected content: %q", string(b))
	}
}
