// Where: internal/domain/rules/rules_test.go
// What: Tests for rule-set loading and rendering.
// Why: The embedded rule set must stay loadable and produce the expected edits.
package rules

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/poruru-code/projinit/internal/domain/project"
)

func testData() Data {
	cfg := project.Config{
		Name:        "my_cool_lib",
		Description: "A cool library",
		AuthorName:  "Jane Doe",
		AuthorEmail: "jane@example.com",
		Version:     "3.10",
		License:     "mit",
	}
	return NewData(cfg, time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC))
}

func TestDefaultRuleSetLoads(t *testing.T) {
	rs, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if rs.Name != "python" {
		t.Fatalf("name = %q", rs.Name)
	}
	if rs.PackageDir != "package_name" {
		t.Fatalf("package_dir = %q", rs.PackageDir)
	}
	want := []string{"pyproject.toml", "package_name", "README.md"}
	if strings.Join(rs.Required, ",") != strings.Join(want, ",") {
		t.Fatalf("required = %v", rs.Required)
	}
	if rs.LicenseOutput() != "LICENSE" {
		t.Fatalf("license output = %q", rs.LicenseOutput())
	}
}

func applyAll(t *testing.T, targets []ResolvedTarget, label, content string) string {
	t.Helper()
	found := false
	for _, target := range targets {
		if target.Label() != label {
			continue
		}
		found = true
		for _, sub := range target.Substitutions {
			content = sub.Apply(content)
		}
	}
	if !found {
		t.Fatalf("no target %q", label)
	}
	return content
}

func TestDefaultPlanRewritesManifest(t *testing.T) {
	rs, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	plan, err := rs.Resolve(testData())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	in := strings.Join([]string{
		`name = "package-name"`,
		`description = ""`,
		`authors = [`,
		`#   "Author Name <author-email@domain.com>",`,
		`]`,
		`python = "^3.8,<3.9"`,
		`target-version = "py38"`,
		`python_version = "3.8"`,
	}, "\n")
	got := applyAll(t, plan.Targets, "pyproject.toml", in)

	for _, want := range []string{
		`name = "my_cool_lib"`,
		`description = "A cool library"`,
		`    "Jane Doe <jane@example.com>",`,
		`python = "^3.10,<3.11"`,
		`target-version = "py310"`,
		`python_version = "3.10"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("manifest missing %q:\n%s", want, got)
		}
	}
}

func TestDefaultPlanWorkflowPatterns(t *testing.T) {
	rs, _ := Default()
	plan, err := rs.Resolve(testData())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	in := "a: python-version: [\"3.8\", \"3.9\"]\nb: python-version: '3.8'\nc: python-version: 3.8\n"
	got := applyAll(t, plan.Targets, ".github/workflows/*.yml", in)
	want := "a: python-version: [\"3.10\"]\nb: python-version: \"3.10\"\nc: python-version: 3.10\n"
	if got != want {
		t.Fatalf("workflow rewrite:\n got %q\nwant %q", got, want)
	}
}

func TestDefaultPlanReadme(t *testing.T) {
	rs, _ := Default()
	plan, err := rs.Resolve(testData())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	in := "# Python Template Project\n\nIntro\n\n## Initialize New Project from Template\n\nrun it\n\n## Local Development\n\nsetup\n"
	got := applyAll(t, plan.PostRename, "README.md", in)
	want := "# My Cool Lib\n\nIntro\n\n## Local Development\n\nsetup\n"
	if got != want {
		t.Fatalf("readme rewrite:\n got %q\nwant %q", got, want)
	}
}

func TestDefaultPlanWritesVersionPin(t *testing.T) {
	rs, _ := Default()
	plan, err := rs.Resolve(testData())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	first := plan.Targets[0]
	if first.Path != ".python-version" || !first.IsWrite || first.Write != "3.10" {
		t.Fatalf("unexpected pin target: %+v", first)
	}
}

func TestLiteralReplacementKeepsDollarSigns(t *testing.T) {
	rule := Rule{Pattern: `description = ""`, Replace: `description = "{{ .Description }}"`}
	data := testData()
	data.Description = "costs $1 or ${2}"
	sub, err := rule.Resolve(data)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	got := sub.Apply(`description = ""`)
	if got != `description = "costs $1 or ${2}"` {
		t.Fatalf("Apply = %q", got)
	}
}

func TestParseRejectsInvalidDocuments(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "unknown field",
			doc:  "name: x\nrequired: []\nbogus: 1\n",
			want: "invalid rule set",
		},
		{
			name: "target without path or glob",
			doc:  "name: x\nrequired: []\ntargets:\n  - rules: []\n",
			want: "invalid rule set",
		},
		{
			name: "bad regexp",
			doc:  "name: x\nrequired: []\ntargets:\n  - path: a.txt\n    rules:\n      - pattern: '(unclosed'\n        replace: x\n",
			want: "compile pattern",
		},
		{
			name: "bad template",
			doc:  "name: x\nrequired: []\ntargets:\n  - path: a.txt\n    rules:\n      - pattern: a\n        replace: '{{ .Name '\n",
			want: "parse replacement",
		},
		{
			name: "empty",
			doc:  "",
			want: "invalid rule set",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.doc))
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("Parse error = %v, want %q", err, tc.want)
			}
		})
	}
}

func TestResolveFailsOnUnknownField(t *testing.T) {
	rs := RuleSet{
		Name:    "x",
		Targets: []Target{{Path: "a", Rules: []Rule{{Pattern: "a", Replace: "{{ .Nope }}"}}}},
	}
	if _, err := rs.Resolve(testData()); err == nil {
		t.Fatal("expected render error for unknown field")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	doc := "name: custom\nrequired: [go.mod]\npackage_dir: pkgname\nlicense:\n  output: COPYING\n"
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("write rules: %v", err)
	}
	rs, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if rs.Name != "custom" || rs.PackageDir != "pkgname" || rs.LicenseOutput() != "COPYING" {
		t.Fatalf("unexpected rule set: %+v", rs)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}

	def, err := Load("")
	if err != nil || def.Name != "python" {
		t.Fatalf("Load(\"\") = %+v, %v", def, err)
	}
}
