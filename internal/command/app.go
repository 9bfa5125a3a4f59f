// Where: internal/command/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package command

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/poruru-code/projinit/internal/constants"
	"github.com/poruru-code/projinit/internal/infra/interaction"
	"github.com/poruru-code/projinit/internal/infra/license"
	"github.com/poruru-code/projinit/internal/infra/ui"
	"github.com/poruru-code/projinit/internal/meta"
	"github.com/poruru-code/projinit/internal/version"
)

// Dependencies holds all injected dependencies required for CLI command execution.
// Nil fields fall back to the real terminal, network and user config.
type Dependencies struct {
	In         io.Reader
	Out        io.Writer
	ErrOut     io.Writer
	Prompter   interaction.Prompter
	Fetcher    license.Fetcher
	Now        func() time.Time
	SelfPath   string
	ConfigPath func() (string, error)
}

// CLI defines the command-line interface structure parsed by Kong.
// Running without arguments selects the init command.
type CLI struct {
	Dir     string     `short:"C" name:"dir" default:"." help:"Template root directory"`
	Rules   string     `name:"rules" help:"Path to a custom rule-set YAML (default: built-in Python template rules)"`
	EnvFile string     `name:"env-file" help:"Path to .env file"`
	NoEmoji bool       `name:"no-emoji" help:"Disable emoji output"`
	Init    InitCmd    `cmd:"" default:"1" help:"Customize the template in the current directory"`
	Version VersionCmd `cmd:"" help:"Show version information"`
}

type (
	// InitCmd defines the init command flags.
	InitCmd struct {
		NoSave bool `name:"no-save-defaults" help:"Do not remember author details for the next run"`
	}

	VersionCmd struct{}
)

// Run is the main entry point for CLI command execution.
// It parses the command-line arguments and dispatches to the handler.
// Returns 0 on success, 1 on error.
func Run(args []string, deps Dependencies) int {
	if deps.In == nil {
		deps.In = os.Stdin
	}
	if deps.Out == nil {
		deps.Out = os.Stdout
	}
	if deps.ErrOut == nil {
		deps.ErrOut = os.Stderr
	}
	out := deps.Out

	cli := CLI{}
	parser, err := kong.New(&cli,
		kong.Name(cliName()),
		kong.Description("Initialize a new project from the template in place."),
		kong.Writers(out, deps.ErrOut),
	)
	if err != nil {
		return exitWithError(out, err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return exitWithError(out, err)
	}

	loadEnvFile(cli.EnvFile, cli.Dir, plainUI(out))

	command := ctx.Command()
	if exitCode, handled := dispatchCommand(command, cli, deps); handled {
		return exitCode
	}

	plainUI(out).Warn("unknown command")
	return 1
}

type commandHandler func(CLI, Dependencies) int

func dispatchCommand(command string, cli CLI, deps Dependencies) (int, bool) {
	handlers := map[string]commandHandler{
		"init":    runInit,
		"version": runVersion,
	}

	if handler, ok := handlers[command]; ok {
		return handler(cli, deps), true
	}
	return 1, false
}

// runVersion prints the version information of the CLI.
func runVersion(_ CLI, deps Dependencies) int {
	plainUI(deps.Out).Info(fmt.Sprintf("%s %s", meta.AppName, version.GetVersion()))
	return 0
}

// loadEnvFile loads the explicit env file, or .env in the template root
// when present. Failures only warn.
func loadEnvFile(path, dir string, out ui.UserInterface) {
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			out.Warn(fmt.Sprintf("Warning: failed to load env file %s: %v", path, err))
		}
		return
	}
	local := filepath.Join(dir, ".env")
	if _, err := os.Stat(local); err == nil {
		if err := godotenv.Load(local); err != nil {
			out.Warn(fmt.Sprintf("Warning: failed to load %s: %v", local, err))
		}
	}
}

func emojiEnabled(cli CLI, out io.Writer) bool {
	if cli.NoEmoji || os.Getenv(constants.EnvNoEmoji) != "" {
		return false
	}
	file, ok := out.(*os.File)
	return ok && interaction.IsTerminal(file)
}
