// Where: assets/assets.go
// What: Embed the default substitution rule set and its JSON Schema.
// Why: Ship a working initializer without any files besides the binary.
package assets

import _ "embed"

// DefaultRules is the rule set for the Python project template.
//
//go:embed rules/python.yaml
var DefaultRules []byte

// RuleSetSchema validates rule-set documents after YAML to JSON conversion.
//
//go:embed schema/ruleset.schema.json
var RuleSetSchema []byte
