package config

import (
	"errors"
	"fmt"
)

func (c *Config) Validate() error {
	if c.Vault.Root == "" {
		return errors.New("vault.root is required (set MEMOFILER_VAULT or vault.root in config.yaml)")
	}
	if c.Vault.Inbox == "" {
		return errors.New("vault.inbox must not be empty")
	}
	if c.Vault.MaxFiles < 0 {
		return errors.New("vault.max_files must not be negative")
	}

	switch c.Oracle.Provider {
	case "", "none":
	case "gemini":
		if c.Oracle.GoogleApiKey == "" {
			return errors.New("oracle.google_api_key is required when oracle.provider is gemini")
		}
	case "openai":
		if c.Oracle.OpenaiApiKey == "" {
			return errors.New("oracle.openai_api_key is required when oracle.provider is openai")
		}
	default:
		return fmt.Errorf("oracle.provider '%s' is not supported (gemini, openai, none)", c.Oracle.Provider)
	}

	return nil
}
