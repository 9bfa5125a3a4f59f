// Where: cmd/projinit/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"os"
	"path/filepath"

	"github.com/poruru-code/projinit/internal/command"
)

var (
	executable   = os.Executable
	evalSymlinks = filepath.EvalSymlinks
)

// buildDependencies constructs the runtime dependencies for the CLI.
// Prompter, license fetcher and config path are resolved by the command
// after the env file is loaded.
func buildDependencies() command.Dependencies {
	return command.Dependencies{
		In:       os.Stdin,
		Out:      os.Stdout,
		ErrOut:   os.Stderr,
		SelfPath: selfPath(),
	}
}

// selfPath returns the resolved path of the running binary, or "" when it
// cannot be determined. The init workflow removes it only when it lives
// inside the template root.
func selfPath() string {
	path, err := executable()
	if err != nil {
		return ""
	}
	if resolved, err := evalSymlinks(path); err == nil {
		return resolved
	}
	return path
}
