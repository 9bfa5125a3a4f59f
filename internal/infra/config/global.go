// Where: internal/infra/config/global.go
// What: User config load/save.
// Why: Remember author details and last choices between runs.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/poruru-code/projinit/internal/constants"
	"github.com/poruru-code/projinit/internal/meta"
	"gopkg.in/yaml.v3"
)

// UserConfig represents ~/.projinit/config.yaml.
type UserConfig struct {
	Version     int    `yaml:"version"`
	AuthorName  string `yaml:"author_name,omitempty"`
	AuthorEmail string `yaml:"author_email,omitempty"`
	LastLicense string `yaml:"last_license,omitempty"`
	LastVersion string `yaml:"last_version,omitempty"`
}

// DefaultUserConfig returns an empty UserConfig with version set.
func DefaultUserConfig() UserConfig {
	return UserConfig{Version: 1}
}

var userHomeDir = os.UserHomeDir

// UserConfigPath resolves the config file path. PROJINIT_HOME replaces the
// ~/.projinit directory when set.
func UserConfigPath() (string, error) {
	if dir := strings.TrimSpace(os.Getenv(constants.EnvHome)); dir != "" {
		return filepath.Join(dir, meta.ConfigFileName), nil
	}
	home, err := userHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, meta.HomeDir, meta.ConfigFileName), nil
}

// LoadUserConfig reads and parses the config file.
// A missing file yields DefaultUserConfig without error.
func LoadUserConfig(path string) (UserConfig, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultUserConfig(), nil
		}
		return UserConfig{}, fmt.Errorf("read user config: %w", err)
	}

	cfg := DefaultUserConfig()
	if err := yaml.Unmarshal(payload, &cfg); err != nil {
		return UserConfig{}, fmt.Errorf("decode user config: %w", err)
	}
	return cfg, nil
}

// SaveUserConfig writes cfg to path, creating the directory.
func SaveUserConfig(path string, cfg UserConfig) error {
	payload, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("encode user config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create user config dir: %w", err)
	}

	if err := os.WriteFile(path, payload, 0o600); err != nil {
		return fmt.Errorf("write user config: %w", err)
	}
	return nil
}

// ApplyEnv overlays PROJINIT_AUTHOR_NAME and PROJINIT_AUTHOR_EMAIL.
func (c UserConfig) ApplyEnv() UserConfig {
	if v := strings.TrimSpace(os.Getenv(constants.EnvAuthorName)); v != "" {
		c.AuthorName = v
	}
	if v := strings.TrimSpace(os.Getenv(constants.EnvAuthorEmail)); v != "" {
		c.AuthorEmail = v
	}
	return c
}
