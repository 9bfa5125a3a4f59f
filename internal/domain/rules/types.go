// Where: internal/domain/rules/types.go
// What: Rule-set model for template substitutions.
// Why: Describe template customization as data instead of code.
package rules

// RuleSet describes how a template project is customized.
type RuleSet struct {
	Name       string   `yaml:"name"`
	Required   []string `yaml:"required"`
	PackageDir string   `yaml:"package_dir,omitempty"`
	Cleanup    []string `yaml:"cleanup,omitempty"`
	Targets    []Target `yaml:"targets,omitempty"`
	PostRename []Target `yaml:"post_rename,omitempty"`
	License    License  `yaml:"license,omitempty"`
}

// Target is one file (Path) or file pattern (Glob) and the rules applied to it.
type Target struct {
	Path     string `yaml:"path,omitempty"`
	Glob     string `yaml:"glob,omitempty"`
	Write    string `yaml:"write,omitempty"`
	Optional bool   `yaml:"optional,omitempty"`
	Rules    []Rule `yaml:"rules,omitempty"`
}

// Rule is a single regular-expression find/replace.
// Replace is a template; Expand enables $1 style group references.
type Rule struct {
	Pattern string `yaml:"pattern"`
	Replace string `yaml:"replace"`
	Expand  bool   `yaml:"expand,omitempty"`
}

// License configures where generated license text is written.
type License struct {
	Output string `yaml:"output,omitempty"`
}

// DefaultLicenseOutput is used when the rule set leaves License.Output empty.
const DefaultLicenseOutput = "LICENSE"

// LicenseOutput returns the license file path relative to the template root.
func (rs RuleSet) LicenseOutput() string {
	if rs.License.Output == "" {
		return DefaultLicenseOutput
	}
	return rs.License.Output
}

// IsWrite reports whether the target overwrites the whole file.
func (t Target) IsWrite() bool {
	return t.Write != ""
}

// Label identifies the target in messages.
func (t Target) Label() string {
	if t.Path != "" {
		return t.Path
	}
	return t.Glob
}
