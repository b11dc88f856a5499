package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Vault struct {
		Root     string   `mapstructure:"root"`
		Inbox    string   `mapstructure:"inbox"`
		Sources  []string `mapstructure:"sources"`   // folders the organizer sweeps, defaults to the inbox
		MaxFiles int      `mapstructure:"max_files"` // corpus scan bound, 0 means unbounded
	} `mapstructure:"vault"`

	Oracle struct {
		Provider     string `mapstructure:"provider"` // "gemini", "openai" or "none"
		Model        string `mapstructure:"model"`
		GoogleApiKey string `mapstructure:"google_api_key"`
		OpenaiApiKey string `mapstructure:"openai_api_key"`
	} `mapstructure:"oracle"`

	History struct {
		DSN string `mapstructure:"dsn"` // sqlite path, empty disables history
	} `mapstructure:"history"`

	Server struct {
		Address string `mapstructure:"address"`
	} `mapstructure:"server"`

	// RulesFile points at a YAML file overriding the built-in analysis rules.
	// Relative paths resolve against ~/.config/memofiler/.
	RulesFile string `mapstructure:"rules_file"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.config/memofiler")

	viper.AutomaticEnv()
	// API keys come from the conventional env vars when the file omits them.
	viper.BindEnv("oracle.openai_api_key", "OPENAI_API_KEY")
	viper.BindEnv("oracle.google_api_key", "GEMINI_API_KEY")
	viper.BindEnv("vault.root", "MEMOFILER_VAULT")

	viper.SetDefault("vault.inbox", "02_Inbox")
	viper.SetDefault("vault.max_files", 500)
	viper.SetDefault("oracle.provider", "none")
	viper.SetDefault("server.address", ":8787")

	if err := viper.ReadInConfig(); err != nil {
		// Missing file is fine, env vars and defaults carry the config.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
