// Where: internal/constants/env.go
// What: Environment variable naming constants.
// Why: Centralize environment variable names to avoid typos and inconsistencies.
package constants

import "github.com/poruru-code/projinit/internal/meta"

const (
	// User configuration
	EnvHome        = meta.EnvPrefix + "_HOME"
	EnvAuthorName  = meta.EnvPrefix + "_AUTHOR_NAME"
	EnvAuthorEmail = meta.EnvPrefix + "_AUTHOR_EMAIL"

	// License API
	EnvLicenseAPI  = meta.EnvPrefix + "_LICENSE_API"
	EnvGitHubToken = "GITHUB_TOKEN"

	// Output
	EnvNoEmoji = meta.EnvPrefix + "_NO_EMOJI"
)
