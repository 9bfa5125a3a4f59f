// Where: internal/command/branding.go
// What: CLI naming.
// Why: Keep the program name in help output consistent with how it was invoked.
package command

import (
	"os"
	"strings"

	"github.com/poruru-code/projinit/internal/meta"
)

func cliName() string {
	name := strings.TrimSpace(os.Getenv("CLI_CMD"))
	if name == "" {
		name = strings.TrimSpace(meta.Slug)
	}
	if name == "" {
		name = "projinit"
	}
	return name
}
