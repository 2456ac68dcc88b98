// Package config loads application configuration from an optional YAML
// file, environment variables, and built-in defaults.
package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	App      App      `mapstructure:"app"`
	Feeds    Feeds    `mapstructure:"feeds"`
	Catalogs Catalogs `mapstructure:"catalogs"`
	Pipeline Pipeline `mapstructure:"pipeline"`
}

// App holds general application configuration.
type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// Feeds holds feed-fetching configuration.
type Feeds struct {
	URLs           []string `mapstructure:"urls"`
	TimeoutSeconds int      `mapstructure:"timeout_seconds"`
}

// Catalogs holds the two classification catalogs. Both are fixed for the
// process lifetime; changing them requires a restart so the topic vector
// space can be rebuilt.
type Catalogs struct {
	Companies []string `mapstructure:"companies"`
	Topics    []string `mapstructure:"topics"`
}

// Pipeline holds processing configuration.
type Pipeline struct {
	Workers int `mapstructure:"workers"`
}

// Load reads configuration, layering defaults, an optional config file,
// and NEWSPROC_* environment variables. A .env file is honored when
// present.
func Load(cfgFile string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("app.log_level", "info")
	v.SetDefault("feeds.urls", DefaultFeedURLs)
	v.SetDefault("feeds.timeout_seconds", 30)
	v.SetDefault("catalogs.companies", DefaultCompanies)
	v.SetDefault("catalogs.topics", DefaultTopics)
	v.SetDefault("pipeline.workers", 8)

	v.SetEnvPrefix("NEWSPROC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	} else {
		v.SetConfigName("newsproc")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/newsproc")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}
