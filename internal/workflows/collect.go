// Where: internal/workflows/collect.go
// What: Interactive collection of the project configuration.
// Why: Re-prompt each field until it validates, independent of the prompt backend.
package workflows

import (
	"fmt"
	"strings"

	"github.com/poruru-code/projinit/internal/domain/project"
	"github.com/poruru-code/projinit/internal/infra/interaction"
	"github.com/poruru-code/projinit/internal/infra/ui"
)

const (
	invalidNameMsg    = "Invalid project name. Use only letters, numbers, and underscores. Must start with a letter."
	invalidVersionMsg = "Invalid choice. Please enter a number from the list."
	invalidLicenseMsg = "Invalid choice. Please enter one of the listed keys."
)

// Defaults are fallbacks used when the user leaves a field empty.
type Defaults struct {
	AuthorName  string
	AuthorEmail string
	Version     string
	License     string
}

// Collector prompts for a project.Config.
type Collector struct {
	Prompter interaction.Prompter
	UI       ui.UserInterface
	Defaults Defaults
}

// Collect prompts for every field. Invalid answers are reported and asked
// again without limit; only a prompt error ends the loop early.
func (c Collector) Collect() (project.Config, error) {
	if c.Prompter == nil {
		return project.Config{}, fmt.Errorf("prompter not configured")
	}
	c.info("=== Project Initialization ===")

	name, err := c.promptName()
	if err != nil {
		return project.Config{}, err
	}
	description, err := c.input("Project description", "")
	if err != nil {
		return project.Config{}, err
	}
	authorName, err := c.input("Author name", c.Defaults.AuthorName)
	if err != nil {
		return project.Config{}, err
	}
	authorEmail, err := c.input("Author email", c.Defaults.AuthorEmail)
	if err != nil {
		return project.Config{}, err
	}
	version, err := c.chooseVersion()
	if err != nil {
		return project.Config{}, err
	}
	license, err := c.chooseLicense()
	if err != nil {
		return project.Config{}, err
	}

	return project.Config{
		Name:        name,
		Description: description,
		AuthorName:  authorName,
		AuthorEmail: authorEmail,
		Version:     version,
		License:     license,
	}, nil
}

func (c Collector) promptName() (string, error) {
	for {
		raw, err := c.Prompter.Input("Project name", nil)
		if err != nil {
			return "", err
		}
		if name, ok := project.NormalizeName(raw); ok {
			return name, nil
		}
		c.warn(invalidNameMsg)
	}
}

func (c Collector) input(title, fallback string) (string, error) {
	var suggestions []string
	if fallback != "" {
		suggestions = []string{fallback}
	}
	raw, err := c.Prompter.Input(title, suggestions)
	if err != nil {
		return "", err
	}
	value := strings.TrimSpace(raw)
	if value == "" {
		value = fallback
	}
	return value, nil
}

func (c Collector) chooseVersion() (string, error) {
	options := make([]interaction.SelectOption, len(project.RuntimeVersions))
	for i, v := range project.RuntimeVersions {
		options[i] = interaction.SelectOption{
			Label: fmt.Sprintf("%d. %s", i+1, v),
			Value: fmt.Sprint(i + 1),
		}
	}
	fallback := ""
	if project.IsRuntimeVersion(c.Defaults.Version) {
		fallback = c.Defaults.Version
	}
	for {
		raw, err := c.Prompter.SelectValue(withHint("Choose Python version (enter number)", fallback), options)
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(raw) == "" && fallback != "" {
			return fallback, nil
		}
		if version, ok := project.ResolveVersionChoice(raw); ok {
			return version, nil
		}
		c.warn(invalidVersionMsg)
	}
}

func (c Collector) chooseLicense() (string, error) {
	options := make([]interaction.SelectOption, len(project.Licenses))
	for i, opt := range project.Licenses {
		options[i] = interaction.SelectOption{
			Label: fmt.Sprintf("- %s: %s", opt.Key, opt.Description),
			Value: opt.Key,
		}
	}
	fallback := ""
	if project.IsLicense(c.Defaults.License) {
		fallback = c.Defaults.License
	}
	for {
		raw, err := c.Prompter.SelectValue(withHint("Choose license (enter key)", fallback), options)
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(raw) == "" && fallback != "" {
			return fallback, nil
		}
		if key, ok := project.ResolveLicense(raw); ok {
			return key, nil
		}
		c.warn(invalidLicenseMsg)
	}
}

func withHint(title, fallback string) string {
	if fallback == "" {
		return title
	}
	return fmt.Sprintf("%s [%s]", title, fallback)
}

func (c Collector) info(msg string) {
	if c.UI != nil {
		c.UI.Info(msg)
	}
}

func (c Collector) warn(msg string) {
	if c.UI != nil {
		c.UI.Warn(msg)
	}
}
