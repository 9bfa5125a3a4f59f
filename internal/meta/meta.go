// Where: internal/meta/meta.go
// What: CLI-local metadata constants.
// Why: Keep branding and directory names in one place.
package meta

const (
	// Project Identity
	AppName   = "projinit"
	Slug      = "projinit"
	EnvPrefix = "PROJINIT"
	UserAgent = "projinit-template-initializer"

	// Directory Layout
	HomeDir        = ".projinit"
	ConfigFileName = "config.yaml"

	// Manual fallback for license text
	LicenseHelpURL = "https://choosealicense.com/licenses/%s/"
)
