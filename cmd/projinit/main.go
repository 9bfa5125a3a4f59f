// Where: cmd/projinit/main.go
// What: CLI entrypoint.
// Why: Execute projinit commands with configured dependencies.
package main

import (
	"os"

	"github.com/poruru-code/projinit/internal/command"
)

func main() {
	os.Exit(command.Run(os.Args[1:], buildDependencies()))
}
