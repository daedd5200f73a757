package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"webpreview/log"
)

const (
	ConfigFileName = "config.json"
	DefaultURL     = "http://localhost:3000"
)

// GetConfigDir returns the path to the application's configuration directory
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config home directory: %w", err)
	}
	return filepath.Join(homeDir, ".webpreview"), nil
}

// DefaultMediaScreens are the device presets available before any are configured.
var DefaultMediaScreens = map[string]string{
	"iPhone SE":  "375x667",
	"iPhone 14":  "390x844",
	"Pixel 7":    "412x915",
	"iPad Mini":  "768x1024",
	"Laptop":     "1366",
	"Desktop HD": "1920",
}

// Config represents the application configuration
type Config struct {
	// URL is the page opened when no previous URL is restored.
	URL string `json:"url"`
	// MediaScreenOverride makes the most specific MediaScreen mapping replace
	// the others instead of being merged into them.
	MediaScreenOverride bool `json:"media_screen_override"`
	// MediaScreen maps preset names to "WIDTHxHEIGHT" or "WIDTH".
	MediaScreen map[string]string `json:"media_screen,omitempty"`
	// RelayAddr is the listen address of the browser relay. Empty disables it.
	RelayAddr string `json:"relay_addr,omitempty"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		URL:                 DefaultURL,
		MediaScreenOverride: false,
	}
}

// LoadConfig loads the global configuration, creating it with defaults when
// missing. A corrupt file is backed up and the defaults are used.
func LoadConfig() *Config {
	configDir, err := GetConfigDir()
	if err != nil {
		log.ErrorLog.Printf("failed to get config directory: %v", err)
		return DefaultConfig()
	}

	configPath := filepath.Join(configDir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			defaultCfg := DefaultConfig()
			if saveErr := saveConfig(defaultCfg); saveErr != nil {
				log.WarningLog.Printf("failed to save default config: %v", saveErr)
			}
			return defaultCfg
		}

		log.WarningLog.Printf("failed to get config file: %v", err)
		return DefaultConfig()
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		preview := string(data)
		if len(preview) > 200 {
			preview = preview[:200] + "..."
		}
		log.ErrorLog.Printf("failed to parse config file at %s: %v\nConfig content preview: %s", configPath, err, preview)

		// Backup the corrupted config before falling back to defaults
		backupPath := configPath + ".corrupt." + time.Now().Format("20060102-150405")
		if backupErr := os.WriteFile(backupPath, data, 0644); backupErr == nil {
			log.InfoLog.Printf("Backed up corrupted config to: %s", backupPath)
		}

		return DefaultConfig()
	}

	return config
}

// saveConfig saves the configuration to disk
func saveConfig(config *Config) error {
	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(configDir, ConfigFileName)
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(configPath, data, 0644)
}

// SaveConfig exports the saveConfig function for use by other packages
func SaveConfig(config *Config) error {
	return saveConfig(config)
}
