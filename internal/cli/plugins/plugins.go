// Package plugins discovers and runs external subcommands. A plugin is a
// standalone binary named data-parser-<command>, resolved the way kubectl and
// git resolve theirs.
package plugins

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ErrPluginNotFound is returned when no plugin binary can be located.
var ErrPluginNotFound = errors.New("plugin not found")

// FindPlugin locates the binary for command, checking the directory of the
// running executable, then ~/.data-parser/plugins/, then PATH. Returns
// ErrPluginNotFound when no executable candidate exists.
func FindPlugin(command string) (string, error) {
	pluginName := "data-parser-" + command

	if execPath, err := os.Executable(); err == nil {
		candidate := filepath.Join(filepath.Dir(execPath), pluginName)
		if isExecutable(candidate) {
			return candidate, nil
		}
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		candidate := filepath.Join(homeDir, ".data-parser", "plugins", pluginName)
		if isExecutable(candidate) {
			return candidate, nil
		}
	}

	if path, err := exec.LookPath(pluginName); err == nil {
		return path, nil
	}

	return "", ErrPluginNotFound
}

// Execute runs a plugin with the caller's stdio and returns its exit code.
func Execute(pluginPath string, args []string) int {
	cmd := exec.Command(pluginPath, args...) // #nosec G204 -- plugin path is discovered, not user input
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing plugin: %v\n", err)
		return 2
	}
	return 0
}

// FormatNotFoundError builds the message shown when a command is neither
// built in nor available as a plugin.
func FormatNotFoundError(command string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Error: unknown command %q\n\n", command)
	fmt.Fprintf(&b, "No plugin named data-parser-%s was found in:\n", command)
	b.WriteString("  - the directory of the data-parser binary\n")
	b.WriteString("  - ~/.data-parser/plugins/\n")
	b.WriteString("  - PATH\n")
	return b.String()
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	return info.Mode()&0111 != 0
}
