// Where: internal/workflows/init.go
// What: Template initialization workflow.
// Why: Run the precondition, prompt, rewrite, rename, license and cleanup steps in order.
package workflows

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/poruru-code/projinit/internal/domain/project"
	"github.com/poruru-code/projinit/internal/domain/rules"
	"github.com/poruru-code/projinit/internal/infra/fileops"
	"github.com/poruru-code/projinit/internal/infra/license"
	"github.com/poruru-code/projinit/internal/infra/substitute"
	"github.com/poruru-code/projinit/internal/infra/ui"
	"github.com/poruru-code/projinit/internal/meta"
)

// ErrNotTemplateRoot is returned when required template files are missing.
var ErrNotTemplateRoot = errors.New("must be run from the template root directory")

const defaultFetchTimeout = 10 * time.Second

// ConfigCollector produces the validated project configuration.
type ConfigCollector interface {
	Collect() (project.Config, error)
}

// InitRequest captures inputs for initializing a template.
type InitRequest struct {
	Root     string
	Rules    rules.RuleSet
	SelfPath string
}

// InitResult reports what the workflow did.
type InitResult struct {
	Config         project.Config
	Changed        []string
	LicenseWritten bool
}

// InitWorkflow customizes a template project in place.
type InitWorkflow struct {
	Collector     ConfigCollector
	Fetcher       license.Fetcher
	UserInterface ui.UserInterface
	Now           func() time.Time
	Remove        func(path string) error
	FetchTimeout  time.Duration
}

// Run executes the workflow. Filesystem errors abort the run and leave any
// files already rewritten as they are; license and cleanup failures only warn.
func (w InitWorkflow) Run(ctx context.Context, req InitRequest) (InitResult, error) {
	if w.Collector == nil {
		return InitResult{}, errors.New("collector not configured")
	}
	root := req.Root
	if root == "" {
		root = "."
	}
	if missing := fileops.MissingPaths(root, req.Rules.Required); len(missing) > 0 {
		return InitResult{}, fmt.Errorf("%w (missing: %s)", ErrNotTemplateRoot, strings.Join(missing, ", "))
	}

	cfg, err := w.Collector.Collect()
	if err != nil {
		return InitResult{}, fmt.Errorf("collect project config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return InitResult{}, err
	}
	result := InitResult{Config: cfg}

	w.info("")
	w.info("Initializing project...")
	now := w.now()
	plan, err := req.Rules.Resolve(rules.NewData(cfg, now))
	if err != nil {
		return result, fmt.Errorf("resolve rules: %w", err)
	}

	changed, err := substitute.Apply(root, plan.Targets)
	result.Changed = append(result.Changed, changed...)
	if err != nil {
		return result, err
	}

	if err := renamePackage(root, req.Rules.PackageDir, cfg.Name); err != nil {
		return result, err
	}

	changed, err = substitute.Apply(root, plan.PostRename)
	result.Changed = append(result.Changed, changed...)
	if err != nil {
		return result, err
	}

	written, err := w.writeLicense(ctx, root, req.Rules.LicenseOutput(), cfg, now)
	result.LicenseWritten = written
	if err != nil {
		return result, err
	}
	if written {
		result.Changed = append(result.Changed, req.Rules.LicenseOutput())
	}

	w.report(result)
	w.info("Setup successfully completed. Removing initializer...")
	w.cleanup(root, req)
	w.nextSteps(cfg)
	return result, nil
}

func renamePackage(root, packageDir, name string) error {
	if packageDir == "" || packageDir == name {
		return nil
	}
	src := filepath.Join(root, packageDir)
	dst := filepath.Join(root, name)
	if err := fileops.RenameDir(src, dst); err != nil {
		return fmt.Errorf("rename package directory: %w", err)
	}
	return nil
}

func (w InitWorkflow) writeLicense(
	ctx context.Context,
	root string,
	output string,
	cfg project.Config,
	now time.Time,
) (bool, error) {
	if !cfg.HasLicense() {
		return false, nil
	}
	if w.Fetcher == nil {
		w.licenseFallback(cfg.License, errors.New("license fetcher not configured"))
		return false, nil
	}

	timeout := w.FetchTimeout
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	fetchCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	body, err := w.Fetcher.Fetch(fetchCtx, cfg.License)
	if err != nil {
		w.licenseFallback(cfg.License, err)
		return false, nil
	}
	text := license.Render(body, cfg.AuthorName, now.Year())
	if err := fileops.WriteText(filepath.Join(root, output), text); err != nil {
		return false, fmt.Errorf("write license: %w", err)
	}
	w.success("License file created successfully.")
	return true, nil
}

func (w InitWorkflow) licenseFallback(key string, err error) {
	w.warn(fmt.Sprintf("Could not fetch license text: %v", err))
	w.warn("Could not create license file automatically.")
	w.info(fmt.Sprintf("Please visit "+meta.LicenseHelpURL+" to get the license text.", key))
}

func (w InitWorkflow) cleanup(root string, req InitRequest) {
	remove := w.Remove
	if remove == nil {
		remove = fileops.RemovePath
	}
	for _, rel := range cleanupTargets(root, req) {
		if err := remove(filepath.Join(root, rel)); err != nil {
			w.warn(fmt.Sprintf("Could not remove setup script: %v", err))
			w.warn(fmt.Sprintf("You may want to delete %s manually.", rel))
		}
	}
}

// cleanupTargets lists root-relative paths to delete: the rule-set cleanup
// entries plus the running executable when it lives inside root.
func cleanupTargets(root string, req InitRequest) []string {
	targets := append([]string(nil), req.Rules.Cleanup...)
	if req.SelfPath == "" {
		return targets
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return targets
	}
	absSelf, err := filepath.Abs(req.SelfPath)
	if err != nil {
		return targets
	}
	rel, err := filepath.Rel(absRoot, absSelf)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return targets
	}
	return append(targets, rel)
}

func (w InitWorkflow) report(result InitResult) {
	if w.UserInterface == nil {
		return
	}
	cfg := result.Config
	w.UserInterface.Block("📦", "Project", []ui.KeyValue{
		{Key: "Name", Value: cfg.Name},
		{Key: "Version", Value: cfg.Version},
		{Key: "License", Value: cfg.License},
	})
	if len(result.Changed) > 0 {
		w.UserInterface.List("📝", "Updated files", result.Changed)
	}
}

func (w InitWorkflow) nextSteps(cfg project.Config) {
	if w.UserInterface == nil {
		return
	}
	steps := []string{"Follow the setup instructions in README.md"}
	if cfg.HasLicense() {
		steps = append(steps, "Review the generated license file")
	}
	w.UserInterface.List("👉", "Next steps", steps)
}

func (w InitWorkflow) now() time.Time {
	if w.Now != nil {
		return w.Now()
	}
	return time.Now()
}

func (w InitWorkflow) info(msg string) {
	if w.UserInterface != nil {
		w.UserInterface.Info(msg)
	}
}

func (w InitWorkflow) warn(msg string) {
	if w.UserInterface != nil {
		w.UserInterface.Warn(msg)
	}
}

func (w InitWorkflow) success(msg string) {
	if w.UserInterface != nil {
		w.UserInterface.Success(msg)
	}
}
