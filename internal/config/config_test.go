// This new test file verifies the configuration loading logic using Viper.

package config

import (
	"os"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Defaults when no config file", func(t *testing.T) {
		// Ensure no config file exists for this test
		os.Remove("config.yml")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() returned an error: %v", err)
		}

		// Check if default values are set
		if cfg.Port != 8080 {
			t.Errorf("Expected default port 8080, got %d", cfg.Port)
		}
		if cfg.Database.Path != "./nurania.db" {
			t.Errorf("Expected default db path './nurania.db', got '%s'", cfg.Database.Path)
		}
		if cfg.Providers.QuranBaseURL != "https://quranapi.pages.dev/api" {
			t.Errorf("Unexpected default quran base URL: '%s'", cfg.Providers.QuranBaseURL)
		}
		if cfg.Assistant.Model != "gemini-2.5-flash" {
			t.Errorf("Unexpected default assistant model: '%s'", cfg.Assistant.Model)
		}
	})

	t.Run("Loads from config file", func(t *testing.T) {
		// Create a temporary config file for this test
		configContent := `
port: 9999
database:
  path: "/tmp/test.db"
providers:
  hadith_api_key: "secret"
unknown_setting: "should be ignored"
`
		// Create the config file in the current directory so Viper can find it.
		// Note: `t.TempDir()` is not used here because Viper looks in the CWD.
		configPath := "config.yml"
		if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
			t.Fatalf("Failed to write test config file: %v", err)
		}
		// Clean up the file after the test
		defer os.Remove(configPath)

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() returned an error: %v", err)
		}

		// Check if values from the file were loaded
		if cfg.Port != 9999 {
			t.Errorf("Expected port 9999, got %d", cfg.Port)
		}
		if cfg.Database.Path != "/tmp/test.db" {
			t.Errorf("Expected db path '/tmp/test.db', got '%s'", cfg.Database.Path)
		}
		if cfg.Providers.HadithAPIKey != "secret" {
			t.Errorf("Expected hadith API key 'secret', got '%s'", cfg.Providers.HadithAPIKey)
		}
		if cfg.CacheWarmInterval != 24 {
			t.Errorf("Expected default cache warm interval of 24, got %d", cfg.CacheWarmInterval)
		}
	})
}
