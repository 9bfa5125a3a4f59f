// Where: internal/domain/rules/render.go
// What: Resolve rule templates against project data.
// Why: Turn declarative rules into concrete regexp substitutions.
package rules

import (
	"bytes"
	"fmt"
	"regexp"
	"text/template"
	"time"

	"github.com/Masterminds/sprig/v3"
	"github.com/poruru-code/projinit/internal/domain/project"
)

// Data is the template context available to replacements.
type Data struct {
	Name        string
	Description string
	AuthorName  string
	AuthorEmail string
	Version     string
	License     string
	Title       string
	Year        int
}

// NewData builds the template context for cfg at time now.
func NewData(cfg project.Config, now time.Time) Data {
	return Data{
		Name:        cfg.Name,
		Description: cfg.Description,
		AuthorName:  cfg.AuthorName,
		AuthorEmail: cfg.AuthorEmail,
		Version:     cfg.Version,
		License:     cfg.License,
		Title:       project.Title(cfg.Name),
		Year:        now.Year(),
	}
}

// Substitution is a compiled rule with its rendered replacement.
type Substitution struct {
	Pattern     *regexp.Regexp
	Replacement string
	Expand      bool
}

// Apply runs the substitution over content.
func (s Substitution) Apply(content string) string {
	if s.Expand {
		return s.Pattern.ReplaceAllString(content, s.Replacement)
	}
	return s.Pattern.ReplaceAllLiteralString(content, s.Replacement)
}

// ResolvedTarget is a Target whose templates have been rendered.
type ResolvedTarget struct {
	Path          string
	Glob          string
	Write         string
	IsWrite       bool
	Optional      bool
	Substitutions []Substitution
}

// Label identifies the target in messages.
func (t ResolvedTarget) Label() string {
	if t.Path != "" {
		return t.Path
	}
	return t.Glob
}

// Plan is a rule set rendered for one project.
type Plan struct {
	Targets    []ResolvedTarget
	PostRename []ResolvedTarget
}

// Resolve renders every template in the rule set with data.
func (rs RuleSet) Resolve(data Data) (Plan, error) {
	pre, err := resolveTargets(rs.Targets, data)
	if err != nil {
		return Plan{}, err
	}
	post, err := resolveTargets(rs.PostRename, data)
	if err != nil {
		return Plan{}, err
	}
	return Plan{Targets: pre, PostRename: post}, nil
}

func resolveTargets(targets []Target, data Data) ([]ResolvedTarget, error) {
	out := make([]ResolvedTarget, 0, len(targets))
	for _, t := range targets {
		resolved := ResolvedTarget{
			Path:     t.Path,
			Glob:     t.Glob,
			IsWrite:  t.IsWrite(),
			Optional: t.Optional,
		}
		if t.IsWrite() {
			content, err := renderString(t.Write, data)
			if err != nil {
				return nil, fmt.Errorf("%s: write: %w", t.Label(), err)
			}
			resolved.Write = content
		}
		for i, r := range t.Rules {
			sub, err := r.Resolve(data)
			if err != nil {
				return nil, fmt.Errorf("%s: rule %d: %w", t.Label(), i, err)
			}
			resolved.Substitutions = append(resolved.Substitutions, sub)
		}
		out = append(out, resolved)
	}
	return out, nil
}

// Resolve compiles the pattern and renders the replacement.
func (r Rule) Resolve(data Data) (Substitution, error) {
	re, err := regexp.Compile(r.Pattern)
	if err != nil {
		return Substitution{}, fmt.Errorf("compile pattern: %w", err)
	}
	replacement, err := renderString(r.Replace, data)
	if err != nil {
		return Substitution{}, fmt.Errorf("render replacement: %w", err)
	}
	return Substitution{Pattern: re, Replacement: replacement, Expand: r.Expand}, nil
}

func (r Rule) compile() (*regexp.Regexp, error) {
	re, err := regexp.Compile(r.Pattern)
	if err != nil {
		return nil, fmt.Errorf("compile pattern: %w", err)
	}
	if _, err := parseTemplate(r.Replace); err != nil {
		return nil, fmt.Errorf("parse replacement: %w", err)
	}
	return re, nil
}

func funcMap() template.FuncMap {
	funcs := sprig.TxtFuncMap()
	funcs["nextMinor"] = project.NextMinor
	return funcs
}

func parseTemplate(text string) (*template.Template, error) {
	return template.New("replace").
		Option("missingkey=error").
		Funcs(funcMap()).
		Parse(text)
}

func renderString(text string, data Data) (string, error) {
	tmpl, err := parseTemplate(text)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
