package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadInputsConcatenatesFiles(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.sexp")
	second := filepath.Join(dir, "second.sexp")
	if err := os.WriteFile(first, []byte("(a b)"), 0o644); err != nil {
		t.Fatalf("write first: %v", err)
	}
	if err := os.WriteFile(second, []byte("(c d)\n"), 0o644); err != nil {
		t.Fatalf("write second: %v", err)
	}

	got, err := readInputs([]string{first, second})
	if err != nil {
		t.Fatalf("readInputs: %v", err)
	}
	if string(got) != "(a b)\n(c d)\n" {
		t.Fatalf("unexpected input: %q", string(got))
	}
}

func TestReadInputsMissingFile(t *testing.T) {
	if _, err := readInputs([]string{filepath.Join(t.TempDir(), "absent")}); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestResolveWidthExplicit(t *testing.T) {
	if got := resolveWidth(72); got != 72 {
		t.Fatalf("explicit width: got %d", got)
	}
}

func TestStrconvAtoi(t *testing.T) {
	if n, err := strconvAtoi("120"); err != nil || n != 120 {
		t.Fatalf("expected 120, got %d err %v", n, err)
	}
	for _, bad := range []string{"", "12x", "-3"} {
		if _, err := strconvAtoi(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestResolveOutputCreatesDirectories(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "out.txt")
	w, closer, err := resolveOutput(path)
	if err != nil {
		t.Fatalf("resolveOutput: %v", err)
	}
	if closer == nil {
		t.Fatal("expected closer for file output")
	}
	if _, err := w.Write([]byte("ok")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "ok" {
		t.Fatalf("unexpected content: %q", string(data))
	}
}
