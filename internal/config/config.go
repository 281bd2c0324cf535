// This file defines the configuration structure for the application.
package config

import (
	// use Viper for loading the config.yml file.
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration settings for the application.
// It maps directly to the structure of config.yml.
type Config struct {
	Port              int `mapstructure:"port"`
	CacheWarmInterval int `mapstructure:"cache_warm_interval"` // hours between Quran cache refreshes; 0 disables
	Database          struct {
		Path string `mapstructure:"path"`
	} `mapstructure:"database"`
	Providers struct {
		QuranBaseURL   string `mapstructure:"quran_base_url"`
		HadithBaseURL  string `mapstructure:"hadith_base_url"`
		HadithAPIKey   string `mapstructure:"hadith_api_key"`
		AladhanBaseURL string `mapstructure:"aladhan_base_url"`
	} `mapstructure:"providers"`
	Assistant struct {
		BaseURL string `mapstructure:"base_url"`
		APIKey  string `mapstructure:"api_key"`
		Model   string `mapstructure:"model"`
	} `mapstructure:"assistant"`
}

// Load reads configuration from a file named "config.yml" in the
// current directory and unmarshals it into a Config struct.
func Load() (*Config, error) {
	viper.SetConfigName("config") // name of config file (without extension)
	viper.SetConfigType("yml")    // or "yaml"
	viper.AddConfigPath(".")      // looking for config in the current directory

	// --- Environment Variable Overrides ---
	// This tells Viper to look for environment variables with a "NURANIA_" prefix.
	// e.g., NURANIA_DATABASE_PATH will override the `database.path` key.
	viper.SetEnvPrefix("NURANIA")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Set default values
	viper.SetDefault("port", 8080)
	viper.SetDefault("cache_warm_interval", 24)
	viper.SetDefault("database.path", "./nurania.db")
	viper.SetDefault("providers.quran_base_url", "https://quranapi.pages.dev/api")
	viper.SetDefault("providers.hadith_base_url", "https://hadithapi.com/api")
	viper.SetDefault("providers.aladhan_base_url", "https://api.aladhan.com/v1")
	viper.SetDefault("assistant.base_url", "https://generativelanguage.googleapis.com/v1beta")
	viper.SetDefault("assistant.model", "gemini-2.5-flash")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found; ignore error and use defaults
		} else {
			// Config file was found but another error was produced
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
