// Where: internal/command/init.go
// What: init command adapter.
// Why: Wire prompts, rules, license client and user config into the init workflow.
package command

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/poruru-code/projinit/internal/constants"
	"github.com/poruru-code/projinit/internal/domain/project"
	"github.com/poruru-code/projinit/internal/domain/rules"
	"github.com/poruru-code/projinit/internal/infra/config"
	"github.com/poruru-code/projinit/internal/infra/interaction"
	"github.com/poruru-code/projinit/internal/infra/license"
	"github.com/poruru-code/projinit/internal/infra/ui"
	"github.com/poruru-code/projinit/internal/workflows"
)

func runInit(cli CLI, deps Dependencies) int {
	out := ui.NewConsoleUI(deps.Out, emojiEnabled(cli, deps.Out))

	rs, err := rules.Load(cli.Rules)
	if err != nil {
		return exitWithError(deps.Out, err)
	}

	configPath, userCfg := loadUserConfig(deps, out)

	prompter := deps.Prompter
	if prompter == nil {
		prompter = interaction.NewPrompter(deps.In, deps.Out)
	}
	fetcher := deps.Fetcher
	if fetcher == nil {
		fetcher = license.NewClient(os.Getenv(constants.EnvLicenseAPI), os.Getenv(constants.EnvGitHubToken))
	}

	workflow := workflows.InitWorkflow{
		Collector: workflows.Collector{
			Prompter: prompter,
			UI:       out,
			Defaults: workflows.Defaults{
				AuthorName:  userCfg.AuthorName,
				AuthorEmail: userCfg.AuthorEmail,
				Version:     userCfg.LastVersion,
				License:     userCfg.LastLicense,
			},
		},
		Fetcher:       fetcher,
		UserInterface: out,
		Now:           deps.Now,
	}

	result, err := workflow.Run(context.Background(), workflows.InitRequest{
		Root:     cli.Dir,
		Rules:    rs,
		SelfPath: deps.SelfPath,
	})
	if err != nil {
		if errors.Is(err, workflows.ErrNotTemplateRoot) {
			plainUI(deps.Out).Info("Error: Must be run from the template root directory")
			plainUI(deps.ErrOut).Info(err.Error())
			return 1
		}
		return exitWithError(deps.Out, err)
	}

	if !cli.Init.NoSave && configPath != "" {
		saveUserConfig(configPath, userCfg, result.Config, out)
	}
	return 0
}

func loadUserConfig(deps Dependencies, out ui.UserInterface) (string, config.UserConfig) {
	resolve := deps.ConfigPath
	if resolve == nil {
		resolve = config.UserConfigPath
	}
	path, err := resolve()
	if err != nil {
		out.Warn(fmt.Sprintf("Warning: user config unavailable: %v", err))
		return "", config.DefaultUserConfig().ApplyEnv()
	}
	cfg, err := config.LoadUserConfig(path)
	if err != nil {
		out.Warn(fmt.Sprintf("Warning: ignoring user config: %v", err))
		cfg = config.DefaultUserConfig()
	}
	return path, cfg.ApplyEnv()
}

func saveUserConfig(path string, current config.UserConfig, chosen project.Config, out ui.UserInterface) {
	current.AuthorName = chosen.AuthorName
	current.AuthorEmail = chosen.AuthorEmail
	current.LastLicense = chosen.License
	current.LastVersion = chosen.Version
	if err := config.SaveUserConfig(path, current); err != nil {
		out.Warn(fmt.Sprintf("Warning: could not save defaults: %v", err))
	}
}
