// Where: internal/command/output.go
// What: Output helpers for command adapters.
// Why: Centralize UserInterface usage and raw line output.
package command

import (
	"fmt"
	"io"

	"github.com/poruru-code/projinit/internal/infra/ui"
)

// plainUI prints without emoji, for messages emitted before the
// terminal is known.
func plainUI(out io.Writer) ui.UserInterface {
	return ui.NewConsoleUI(out, false)
}

// exitWithError prints an error message to the output writer and returns
// exit code 1 for CLI error handling.
func exitWithError(out io.Writer, err error) int {
	plainUI(out).Info(fmt.Sprintf("Error: %v", err))
	return 1
}
