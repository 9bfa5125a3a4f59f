// Where: internal/domain/rules/load.go
// What: Load, schema-validate and check rule sets.
// Why: Reject malformed rule sets before any file is touched.
package rules

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/poruru-code/projinit/assets"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
	k8syaml "sigs.k8s.io/yaml"
)

const schemaResource = "ruleset.schema.json"

var (
	schemaOnce     sync.Once
	schemaErr      error
	compiledSchema *jsonschema.Schema
)

// Default returns the embedded rule set for the Python template.
func Default() (RuleSet, error) {
	rs, err := Parse(assets.DefaultRules)
	if err != nil {
		return RuleSet{}, fmt.Errorf("default rule set: %w", err)
	}
	return rs, nil
}

// Load reads a rule set from path, or returns Default when path is empty.
func Load(path string) (RuleSet, error) {
	if path == "" {
		return Default()
	}
	payload, err := os.ReadFile(path)
	if err != nil {
		return RuleSet{}, fmt.Errorf("read rule set: %w", err)
	}
	rs, err := Parse(payload)
	if err != nil {
		return RuleSet{}, fmt.Errorf("rule set %s: %w", path, err)
	}
	return rs, nil
}

// Parse validates payload against the rule-set schema and decodes it.
func Parse(payload []byte) (RuleSet, error) {
	if err := validateSchema(payload); err != nil {
		return RuleSet{}, err
	}

	var rs RuleSet
	dec := yaml.NewDecoder(bytes.NewReader(payload))
	dec.KnownFields(true)
	if err := dec.Decode(&rs); err != nil && !errors.Is(err, io.EOF) {
		return RuleSet{}, fmt.Errorf("decode rule set: %w", err)
	}
	if err := rs.Check(); err != nil {
		return RuleSet{}, err
	}
	return rs, nil
}

func validateSchema(payload []byte) error {
	sch, err := loadSchema()
	if err != nil {
		return fmt.Errorf("load rule-set schema: %w", err)
	}
	jsonData, err := k8syaml.YAMLToJSON(payload)
	if err != nil {
		return fmt.Errorf("convert yaml to json: %w", err)
	}
	var document any
	if err := json.Unmarshal(jsonData, &document); err != nil {
		return fmt.Errorf("unmarshal json: %w", err)
	}
	if err := sch.Validate(document); err != nil {
		return fmt.Errorf("invalid rule set: %w", err)
	}
	return nil
}

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(schemaResource, bytes.NewReader(assets.RuleSetSchema)); err != nil {
			schemaErr = err
			return
		}
		compiledSchema, schemaErr = compiler.Compile(schemaResource)
	})
	return compiledSchema, schemaErr
}

// Check compiles every pattern and parses every replacement template.
func (rs RuleSet) Check() error {
	var errs []error
	check := func(section string, targets []Target) {
		for i, t := range targets {
			if t.Path == "" && t.Glob == "" {
				errs = append(errs, fmt.Errorf("%s[%d]: path or glob is required", section, i))
			}
			if t.IsWrite() {
				if _, err := parseTemplate(t.Write); err != nil {
					errs = append(errs, fmt.Errorf("%s[%d] %s: write: %w", section, i, t.Label(), err))
				}
			}
			for j, r := range t.Rules {
				if _, err := r.compile(); err != nil {
					errs = append(errs, fmt.Errorf("%s[%d] %s: rule %d: %w", section, i, t.Label(), j, err))
				}
			}
		}
	}
	check("targets", rs.Targets)
	check("post_rename", rs.PostRename)
	return errors.Join(errs...)
}
