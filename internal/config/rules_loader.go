package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"memofiler/internal/analyzer/rules"
)

// defaultRulesDir is the subdirectory within the user's config directory
// where a rules override file is looked up by default.
const defaultRulesDir = ".config/memofiler"

// LoadRules returns the analysis rule set: the built-in defaults with any
// fields from the configured YAML file layered on top. An empty path with no
// file at the default location yields the plain defaults.
func LoadRules(configuredPath string) (*rules.RuleSet, error) {
	rs := rules.Default()

	path, err := resolveRulesPath(configuredPath)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return rs, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read rules file '%s': %w", path, err)
	}
	if err := v.Unmarshal(rs); err != nil {
		return nil, fmt.Errorf("failed to parse rules file '%s': %w", path, err)
	}
	if len(rs.Categories) == 0 {
		return nil, fmt.Errorf("rules file '%s' defines no categories", path)
	}
	return rs, nil
}

// resolveRulesPath maps a configured path to an absolute one. Relative and
// empty paths resolve against ~/.config/memofiler/; a missing file at the
// default location is not an error unless the user named one explicitly.
func resolveRulesPath(configuredPath string) (string, error) {
	if filepath.IsAbs(configuredPath) {
		return configuredPath, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	filename := configuredPath
	explicit := filename != ""
	if !explicit {
		filename = "rules.yaml"
	}

	path := filepath.Join(homeDir, defaultRulesDir, filename)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if explicit {
			return "", fmt.Errorf("rules file not found at '%s'", path)
		}
		return "", nil
	}
	return path, nil
}
