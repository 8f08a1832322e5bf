package plugins

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestFindPlugin_NotFound(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	_, err := FindPlugin("definitely-not-a-real-plugin")
	if !errors.Is(err, ErrPluginNotFound) {
		t.Errorf("FindPlugin() error = %v, want ErrPluginNotFound", err)
	}
}

func TestFindPlugin_InPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("executable-bit test is not portable to windows")
	}

	dir := t.TempDir()
	pluginPath := filepath.Join(dir, "data-parser-testcmd")
	if err := os.WriteFile(pluginPath, []byte("#!/bin/sh\nexit 0\n"), 0755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", dir)

	found, err := FindPlugin("testcmd")
	if err != nil {
		t.Fatalf("FindPlugin() error = %v", err)
	}
	if found != pluginPath {
		t.Errorf("FindPlugin() = %q, want %q", found, pluginPath)
	}
}

func TestFindPlugin_NonExecutableIgnored(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("executable-bit test is not portable to windows")
	}

	dir := t.TempDir()
	pluginPath := filepath.Join(dir, "data-parser-noexec")
	if err := os.WriteFile(pluginPath, []byte("not a script"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", dir)

	if _, err := FindPlugin("noexec"); !errors.Is(err, ErrPluginNotFound) {
		t.Errorf("FindPlugin() error = %v, want ErrPluginNotFound for non-executable", err)
	}
}

func TestExecute_ExitCode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script test is not portable to windows")
	}

	dir := t.TempDir()
	pluginPath := filepath.Join(dir, "data-parser-fail")
	if err := os.WriteFile(pluginPath, []byte("#!/bin/sh\nexit 3\n"), 0755); err != nil {
		t.Fatal(err)
	}

	if code := Execute(pluginPath, nil); code != 3 {
		t.Errorf("Execute() = %d, want 3", code)
	}
}

func TestFormatNotFoundError(t *testing.T) {
	msg := FormatNotFoundError("foo")
	if !strings.Contains(msg, `unknown command "foo"`) {
		t.Errorf("message missing command name:\n%s", msg)
	}
	if !strings.Contains(msg, "data-parser-foo") {
		t.Errorf("message missing plugin name:\n%s", msg)
	}
}

func TestIsExecutable_Directory(t *testing.T) {
	if isExecutable(t.TempDir()) {
		t.Error("isExecutable() should be false for directories")
	}
}
