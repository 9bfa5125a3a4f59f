package workflows

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/poruru-code/projinit/internal/domain/project"
	"github.com/poruru-code/projinit/internal/infra/interaction"
	"github.com/poruru-code/projinit/internal/infra/ui"
)

type recordingUI struct {
	infos     []string
	warnings  []string
	successes []string
	blocks    []string
	lists     map[string][]string
}

func (u *recordingUI) Info(msg string)    { u.infos = append(u.infos, msg) }
func (u *recordingUI) Warn(msg string)    { u.warnings = append(u.warnings, msg) }
func (u *recordingUI) Success(msg string) { u.successes = append(u.successes, msg) }

func (u *recordingUI) Block(_, title string, _ []ui.KeyValue) {
	u.blocks = append(u.blocks, title)
}

func (u *recordingUI) List(_, title string, items []string) {
	if u.lists == nil {
		u.lists = map[string][]string{}
	}
	u.lists[title] = append([]string(nil), items...)
}

// scriptedPrompter answers prompts from a queue and records titles.
type scriptedPrompter struct {
	answers []string
	titles  []string
}

func (p *scriptedPrompter) next(title string) (string, error) {
	p.titles = append(p.titles, title)
	if len(p.answers) == 0 {
		return "", io.EOF
	}
	answer := p.answers[0]
	p.answers = p.answers[1:]
	return answer, nil
}

func (p *scriptedPrompter) Input(title string, _ []string) (string, error) {
	return p.next(title)
}

func (p *scriptedPrompter) SelectValue(title string, _ []interaction.SelectOption) (string, error) {
	return p.next(title)
}

type staticCollector struct {
	cfg   project.Config
	err   error
	calls int
}

func (c *staticCollector) Collect() (project.Config, error) {
	c.calls++
	return c.cfg, c.err
}

type fakeFetcher struct {
	body  string
	err   error
	calls []string
}

func (f *fakeFetcher) Fetch(_ context.Context, key string) (string, error) {
	f.calls = append(f.calls, key)
	return f.body, f.err
}

const (
	fixturePyproject = `[tool.poetry]
name = "package-name"
description = ""
authors = [
    # "Author Name <author-email@domain.com>",
]

[tool.poetry.dependencies]
python = "^3.8,<3.9"

[tool.ruff]
target-version = "py38"

[tool.mypy]
python_version = "3.8"
`
	fixtureReadme = `# Python Template Project

A template.

## Initialize New Project from Template

Run the initializer.

## Local Development

Install dependencies.
`
	fixtureTest = `from package_name.example import add
import package_name


def test_add() -> None:
    assert add(1, 2) == 3
`
	fixtureWorkflow = `jobs:
  test:
    strategy:
      matrix:
        python-version: ["3.8", "3.9"]
`
)

func writeTemplateFixture(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	files := map[string]string{
		"pyproject.toml":           fixturePyproject,
		"README.md":                fixtureReadme,
		"package_name/__init__.py": "",
		"package_name/example.py":  "def add(a, b):\n    return a + b\n",
		"tests/test_example.py":    fixtureTest,
		".github/workflows/ci.yml": fixtureWorkflow,
		".python-version":          "3.8",
		"init_project.py":          "print('init')\n",
	}
	for rel, content := range files {
		writeFixture(t, root, rel, content)
	}
	return root
}

func writeFixture(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", rel, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", rel, err)
	}
}

func readFixture(t *testing.T, root, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, rel))
	if err != nil {
		t.Fatalf("read %s: %v", rel, err)
	}
	return string(data)
}

func exists(root, rel string) bool {
	_, err := os.Stat(filepath.Join(root, rel))
	return err == nil
}

func describe(cfg project.Config) string {
	return fmt.Sprintf("%s/%s/%s", cfg.Name, cfg.Version, cfg.License)
}
