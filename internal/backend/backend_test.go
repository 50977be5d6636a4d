package backend

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// fakeProgram drops an executable stub named prog into dir.
func fakeProgram(t *testing.T, dir, prog string) {
	t.Helper()
	path := filepath.Join(dir, prog)
	if err := os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatal(err)
	}
}

func TestDetectPrefersTmux(t *testing.T) {
	dir := t.TempDir()
	fakeProgram(t, dir, "tmux")
	fakeProgram(t, dir, "screen")
	t.Setenv("PATH", dir)

	b, err := Detect("", "")
	if err != nil {
		t.Fatalf("Detect() error: %v", err)
	}
	if b.Kind() != Tmux {
		t.Errorf("Kind() = %q, want %q", b.Kind(), Tmux)
	}
}

func TestDetectFallsBackToScreen(t *testing.T) {
	dir := t.TempDir()
	fakeProgram(t, dir, "screen")
	t.Setenv("PATH", dir)

	b, err := Detect("", "")
	if err != nil {
		t.Fatalf("Detect() error: %v", err)
	}
	if b.Kind() != Screen {
		t.Errorf("Kind() = %q, want %q", b.Kind(), Screen)
	}
}

func TestDetectNoBackend(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	if _, err := Detect("", ""); !errors.Is(err, ErrNoBackend) {
		t.Errorf("Detect() error = %v, want ErrNoBackend", err)
	}
}

func TestDetectForcedMissing(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	_, err := Detect("tmux", "")
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("Detect() error = %v, want NotFoundError", err)
	}
	if notFound.Name != "tmux" {
		t.Errorf("NotFoundError.Name = %q, want %q", notFound.Name, "tmux")
	}
}

func TestDetectForcedScreenIgnoresTmux(t *testing.T) {
	dir := t.TempDir()
	fakeProgram(t, dir, "tmux")
	fakeProgram(t, dir, "screen")
	t.Setenv("PATH", dir)

	b, err := Detect("screen", "")
	if err != nil {
		t.Fatalf("Detect() error: %v", err)
	}
	if b.Kind() != Screen {
		t.Errorf("Kind() = %q, want %q", b.Kind(), Screen)
	}
}

func TestDetectForcedUnsupported(t *testing.T) {
	dir := t.TempDir()
	fakeProgram(t, dir, "zellij")
	t.Setenv("PATH", dir)

	if _, err := Detect("zellij", ""); err == nil {
		t.Error("Detect(\"zellij\") succeeded, want error")
	}
}

func TestDetectIsDeterministic(t *testing.T) {
	dir := t.TempDir()
	fakeProgram(t, dir, "tmux")
	t.Setenv("PATH", dir)

	first, err := Detect("", "")
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		b, err := Detect("", "")
		if err != nil {
			t.Fatal(err)
		}
		if b.Kind() != first.Kind() || b.Path() != first.Path() {
			t.Errorf("Detect() run %d = %s %s, want %s %s", i, b.Kind(), b.Path(), first.Kind(), first.Path())
		}
	}
}
