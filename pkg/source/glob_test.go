package source

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestResolve_SingleFile(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "test.log", "test")

	result, err := Resolve([]string{file}, false)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if len(result) != 1 || result[0] != file {
		t.Errorf("Resolve() = %v, want [%s]", result, file)
	}
}

func TestResolve_GlobPattern(t *testing.T) {
	dir := t.TempDir()
	for _, f := range []string{"a.log", "b.log", "c.txt"} {
		writeFile(t, dir, f, "test")
	}

	result, err := Resolve([]string{filepath.Join(dir, "*.log")}, false)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if len(result) != 2 {
		t.Errorf("Resolve() returned %d files, want 2", len(result))
	}
}

func TestResolve_NoMatchIsError(t *testing.T) {
	dir := t.TempDir()
	pattern := filepath.Join(dir, "*.nonexistent")

	_, err := Resolve([]string{pattern}, false)
	var nfe *NoFilesError
	if !errors.As(err, &nfe) {
		t.Fatalf("Resolve() error = %v, want *NoFilesError", err)
	}
	if len(nfe.Patterns) != 1 || nfe.Patterns[0] != pattern {
		t.Errorf("NoFilesError.Patterns = %v, want [%s]", nfe.Patterns, pattern)
	}
}

func TestResolve_NoMatchAllowEmpty(t *testing.T) {
	dir := t.TempDir()

	result, err := Resolve([]string{filepath.Join(dir, "*.nonexistent")}, true)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if len(result) != 0 {
		t.Errorf("Resolve() = %v, want empty", result)
	}
}

func TestResolve_Deduplication(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "test.log", "test")

	result, err := Resolve([]string{file, file, filepath.Join(dir, "*.log")}, false)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if len(result) != 1 {
		t.Errorf("Resolve() returned %d files, want 1 (deduplicated)", len(result))
	}
}

func TestResolve_Deterministic(t *testing.T) {
	dir := t.TempDir()
	for _, f := range []string{"b.log", "a.log", "c.log"} {
		writeFile(t, dir, f, "test")
	}

	first, err := Resolve([]string{filepath.Join(dir, "*.log")}, false)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Resolve([]string{filepath.Join(dir, "*.log")}, false)
	if err != nil {
		t.Fatal(err)
	}

	if len(first) != 3 {
		t.Fatalf("Resolve() returned %d files, want 3", len(first))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("Resolve() not deterministic: %v vs %v", first, second)
		}
	}
	if filepath.Base(first[0]) != "a.log" {
		t.Errorf("Resolve() first file = %s, want a.log (sorted)", first[0])
	}
}

func TestResolve_InvalidPattern(t *testing.T) {
	_, err := Resolve([]string{"[invalid"}, false)
	if err == nil {
		t.Error("Resolve() expected error for invalid pattern")
	}
}
