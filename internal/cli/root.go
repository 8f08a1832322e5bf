// Package cli provides the command-line interface for data-parser.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zhiyong9654/data-parser/internal/cli/commands"
	"github.com/zhiyong9654/data-parser/internal/cli/plugins"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()

	// Check if the first argument might be a plugin command
	if len(os.Args) > 1 {
		potentialCommand := os.Args[1]
		// Skip flags (start with -)
		if len(potentialCommand) > 0 && potentialCommand[0] != '-' {
			if !isBuiltinCommand(rootCmd, potentialCommand) {
				if pluginPath, err := plugins.FindPlugin(potentialCommand); err == nil {
					return plugins.Execute(pluginPath, os.Args[2:])
				}
				// Plugin not found - fall through to Cobra which will show the error
			}
		}
	}

	if err := rootCmd.Execute(); err != nil {
		if len(os.Args) > 1 {
			potentialCommand := os.Args[1]
			if len(potentialCommand) > 0 && potentialCommand[0] != '-' {
				if !isBuiltinCommand(rootCmd, potentialCommand) {
					_, _ = fmt.Fprintln(os.Stderr, plugins.FormatNotFoundError(potentialCommand))
					return 2
				}
			}
		}
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2 // Configuration or runtime error
	}
	return commands.ExitCode
}

// isBuiltinCommand checks if a command name is a built-in cobra command.
func isBuiltinCommand(rootCmd *cobra.Command, name string) bool {
	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == name || cmd.HasAlias(name) {
			return true
		}
	}
	return name == "help" || name == "completion"
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "data-parser",
		Short: "Parse semi-structured log files into tables",
		Long: `data-parser applies a regular expression with capture groups to every line
of one or more log files and assembles the captured values into a table.

Lines stream lazily from disk and are matched in parallel, so the input may
be far larger than memory. Per-line match failures follow a configurable
policy: raise on the first failure, skip failing lines, or include them as
diagnostic rows.

PLUGINS:
  data-parser supports plugins for extended functionality. Plugins are
  standalone binaries named data-parser-<command> that are automatically
  discovered and invoked.

  Plugin locations (searched in order):
    1. Same directory as the data-parser binary
    2. ~/.data-parser/plugins/
    3. Anywhere in PATH`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add subcommands
	rootCmd.AddCommand(commands.NewParseCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewDetectCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
